package scenario

import (
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"
)

// documentRecord mirrors Document with every section optional so that a
// stored record missing a section can be detected.
type documentRecord struct {
	Cell        *CellSection       `yaml:"cell"`
	Subscriber  *SubscriberSection `yaml:"subscriber"`
	UserPlane   *UserPlaneSection  `yaml:"userPlane"`
	Traffic     *TrafficSection    `yaml:"traffic"`
	Mobility    *MobilitySection   `yaml:"mobility"`
	Settings    *SettingsSection   `yaml:"settings"`
	CurrentStep *int               `yaml:"currentStep"`
}

// Encode serialises the document into its persisted YAML form.
func Encode(doc Document) ([]byte, error) {
	data, err := yaml.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal scenario: %w", err)
	}
	return data, nil
}

// EncodeJSON serialises the document as indented JSON.
func EncodeJSON(doc Document) ([]byte, error) {
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal scenario: %w", err)
	}
	return data, nil
}

// Decode restores a document from a stored record. YAML and JSON records are
// both accepted.
//
// Sections that are missing, or whose list is empty, are replaced by their
// defaults and reported in repaired. The step cursor is clamped to the valid
// range. If the record cannot be parsed at all, the default document is
// returned together with a decode error.
func Decode(data []byte) (doc Document, repaired []Section, err error) {
	var rec documentRecord
	if err := yaml.Unmarshal(data, &rec); err != nil {
		return Default(), nil, NewDecodeError("stored scenario is not valid YAML or JSON", err)
	}

	doc = Default()

	if rec.Cell != nil && len(rec.Cell.Cells) > 0 {
		doc.Cell = *rec.Cell
	} else {
		repaired = append(repaired, SectionCell)
	}
	if rec.Subscriber != nil && len(rec.Subscriber.Ranges) > 0 {
		doc.Subscriber = *rec.Subscriber
	} else {
		repaired = append(repaired, SectionSubscriber)
	}
	if rec.UserPlane != nil && len(rec.UserPlane.Profiles) > 0 {
		doc.UserPlane = *rec.UserPlane
	} else {
		repaired = append(repaired, SectionUserPlane)
	}
	if rec.Traffic != nil {
		doc.Traffic = *rec.Traffic
	} else {
		repaired = append(repaired, SectionTraffic)
	}
	if rec.Mobility != nil {
		doc.Mobility = *rec.Mobility
	} else {
		repaired = append(repaired, SectionMobility)
	}
	if rec.Settings != nil {
		doc.Settings = *rec.Settings
	} else {
		repaired = append(repaired, SectionSettings)
	}

	if rec.CurrentStep != nil {
		doc.CurrentStep = clampStep(*rec.CurrentStep)
	}

	return doc, repaired, nil
}

func clampStep(step int) int {
	if step < FirstStep {
		return FirstStep
	}
	if step > LastStep {
		return LastStep
	}
	return step
}
