package scenario

import (
	"encoding/json"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// DataPayload is the type-dependent part of a user-plane profile. It is
// either RawThroughput or VoiceCall, so a profile can never carry both a
// transport protocol and a call type.
type DataPayload interface {
	DataType() DataType
	isDataPayload()
}

// RawThroughput is the IPERF payload.
type RawThroughput struct {
	Protocol TransportProtocol
}

func (RawThroughput) DataType() DataType { return DataIPERF }
func (RawThroughput) isDataPayload()     {}

// VoiceCall is the VOLTE/VILTE payload.
type VoiceCall struct {
	Call CallType
}

func (VoiceCall) DataType() DataType { return DataVoice }
func (VoiceCall) isDataPayload()     {}

// DefaultPayload returns the payload a profile gets when its data type is
// switched to dt. Unknown data types return nil.
func DefaultPayload(dt DataType) DataPayload {
	switch dt {
	case DataIPERF:
		return RawThroughput{Protocol: ProtocolTCP}
	case DataVoice:
		return VoiceCall{Call: CallAudio}
	default:
		return nil
	}
}

// RangeRef points at one subscriber range or at all of them. The zero value
// points at nothing and fails validation.
type RangeRef struct {
	all bool
	id  string
}

// AllRanges targets every subscriber range.
func AllRanges() RangeRef {
	return RangeRef{all: true}
}

// SpecificRange targets a single subscriber range by id.
func SpecificRange(id string) RangeRef {
	return RangeRef{id: id}
}

// IsAll reports whether r targets every range.
func (r RangeRef) IsAll() bool { return r.all }

// RangeID returns the targeted range id, or "" for AllRanges.
func (r RangeRef) RangeID() string { return r.id }

// IsSet reports whether r targets anything.
func (r RangeRef) IsSet() bool { return r.all || r.id != "" }

// String renders r for display.
func (r RangeRef) String() string {
	switch {
	case r.all:
		return "Apply to All"
	case r.id != "":
		return r.id
	default:
		return ""
	}
}

// rangeRefWire is the persisted form of a RangeRef.
type rangeRefWire struct {
	All   bool   `yaml:"all,omitempty" json:"all,omitempty"`
	Range string `yaml:"range,omitempty" json:"range,omitempty"`
}

func (r RangeRef) wire() rangeRefWire {
	return rangeRefWire{All: r.all, Range: r.id}
}

func (w rangeRefWire) ref() RangeRef {
	if w.All {
		return AllRanges()
	}
	return SpecificRange(w.Range)
}

// refFromLegacy maps a bare string reference. Records written by the browser
// form used "ApplyToAll" and "Apply to All" as sentinels.
func refFromLegacy(s string) RangeRef {
	s = strings.TrimSpace(s)
	switch strings.ToLower(strings.ReplaceAll(s, " ", "")) {
	case "applytoall":
		return AllRanges()
	}
	return SpecificRange(s)
}

// MarshalYAML implements yaml.Marshaler.
func (r RangeRef) MarshalYAML() (interface{}, error) {
	return r.wire(), nil
}

// UnmarshalYAML implements yaml.Unmarshaler. Both the mapping form and a
// bare string are accepted.
func (r *RangeRef) UnmarshalYAML(value *yaml.Node) error {
	switch value.Kind {
	case yaml.ScalarNode:
		var s string
		if err := value.Decode(&s); err != nil {
			return err
		}
		*r = refFromLegacy(s)
		return nil
	case yaml.MappingNode:
		var w rangeRefWire
		if err := value.Decode(&w); err != nil {
			return err
		}
		*r = w.ref()
		return nil
	default:
		return fmt.Errorf("range reference: unexpected YAML node kind %d", value.Kind)
	}
}

// MarshalJSON implements json.Marshaler.
func (r RangeRef) MarshalJSON() ([]byte, error) {
	return json.Marshal(r.wire())
}

// UnmarshalJSON implements json.Unmarshaler.
func (r *RangeRef) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*r = refFromLegacy(s)
		return nil
	}
	var w rangeRefWire
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}
	*r = w.ref()
	return nil
}

// Bitrate is one direction's bitrate entry. Either field may still be empty
// while the user is filling the form in.
type Bitrate struct {
	Value string
	Unit  BitrateUnit
}

// Complete reports whether both value and unit are present.
func (b *Bitrate) Complete() bool {
	return b != nil && b.Value != "" && b.Unit != ""
}

func (b *Bitrate) String() string {
	if b == nil {
		return ""
	}
	return strings.TrimSpace(b.Value + " " + string(b.Unit))
}
