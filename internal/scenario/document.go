package scenario

import (
	"encoding/json"

	"gopkg.in/yaml.v3"

	"github.com/muurk/netscen/internal/bands"
)

// Document is the whole test-case configuration: six sections plus the
// wizard step cursor.
type Document struct {
	Cell        CellSection       `yaml:"cell" json:"cell"`
	Subscriber  SubscriberSection `yaml:"subscriber" json:"subscriber"`
	UserPlane   UserPlaneSection  `yaml:"userPlane" json:"userPlane"`
	Traffic     TrafficSection    `yaml:"traffic" json:"traffic"`
	Mobility    MobilitySection   `yaml:"mobility" json:"mobility"`
	Settings    SettingsSection   `yaml:"settings" json:"settings"`
	CurrentStep int               `yaml:"currentStep" json:"currentStep"`
}

// CellSection describes the radio side of the scenario.
type CellSection struct {
	RatType  RatType      `yaml:"ratType" json:"ratType"`
	Mobility bool         `yaml:"mobility" json:"mobility"`
	Cells    []CellConfig `yaml:"cells" json:"cells"`
}

// CellConfig is one simulated cell.
type CellConfig struct {
	ID         string           `yaml:"id" json:"id"`
	CellType   bands.Technology `yaml:"cellType" json:"cellType"`
	DuplexMode bands.DuplexMode `yaml:"duplexMode" json:"duplexMode"`
	Band       bands.Band       `yaml:"band" json:"band"`
	DLEarfcn   string           `yaml:"dlEarfcn" json:"dlEarfcn"`
	ULEarfcn   string           `yaml:"ulEarfcn" json:"ulEarfcn"`
	SSBNrArfcn string           `yaml:"ssbNrArfcn,omitempty" json:"ssbNrArfcn,omitempty"`
}

// SubscriberSection holds the simulated UE population.
type SubscriberSection struct {
	TotalUEs int               `yaml:"totalUEs" json:"totalUEs"`
	Ranges   []SubscriberRange `yaml:"ranges" json:"ranges"`
}

// SubscriberRange is a contiguous SUPI window served by one cell.
type SubscriberRange struct {
	ID           string `yaml:"id" json:"id"`
	NumberOfUEs  int    `yaml:"numberOfUEs" json:"numberOfUEs"`
	ServingCell  string `yaml:"servingCell" json:"servingCell"`
	StartingSUPI string `yaml:"startingSUPI" json:"startingSUPI"`
	SharedKey    string `yaml:"sharedKey" json:"sharedKey"`
	MNCDigits    string `yaml:"mncDigits" json:"mncDigits"`
}

// UserPlaneSection holds the user-plane data profiles.
type UserPlaneSection struct {
	ProfileType ProfileType        `yaml:"profileType" json:"profileType"`
	Profiles    []UserPlaneProfile `yaml:"profiles" json:"profiles"`
}

// UserPlaneProfile is one user-plane traffic profile. Payload carries the
// data-type specific field; Downlink and Uplink are nil when absent.
type UserPlaneProfile struct {
	ID           string
	Target       RangeRef
	Payload      DataPayload
	StartingPort string
	APNName      string
	StartDelay   string
	Duration     string
	Direction    Direction
	Downlink     *Bitrate
	Uplink       *Bitrate
}

// TrafficSection is the attach profile of the scenario.
type TrafficSection struct {
	ProfileRange    RangeRef   `yaml:"profileRange" json:"profileRange"`
	AttachType      AttachType `yaml:"attachType" json:"attachType"`
	AttachRate      string     `yaml:"attachRate" json:"attachRate"`
	AttachDelay     string     `yaml:"attachDelay" json:"attachDelay"`
	PowerOnDuration string     `yaml:"powerOnDuration" json:"powerOnDuration"`
	StaggerTime     string     `yaml:"staggerTime,omitempty" json:"staggerTime,omitempty"`
}

// MobilitySection is the mobility profile, only meaningful when
// CellSection.Mobility is set.
type MobilitySection struct {
	UEGroup  RangeRef `yaml:"ueGroup" json:"ueGroup"`
	TripType TripType `yaml:"tripType" json:"tripType"`
	Delay    string   `yaml:"delay" json:"delay"`
	Duration string   `yaml:"duration" json:"duration"`
	WaitTime string   `yaml:"waitTime" json:"waitTime"`
}

type SettingsSection struct {
	TestCaseName    string          `yaml:"testCaseName" json:"testCaseName"`
	LogSetting      LogSetting      `yaml:"logSetting" json:"logSetting"`
	SuccessSettings SuccessCriteria `yaml:"successSettings" json:"successSettings"`
}

// Clone returns a deep copy of the document.
func (d Document) Clone() Document {
	out := d
	out.Cell.Cells = cloneSlice(d.Cell.Cells)
	out.Subscriber.Ranges = cloneSlice(d.Subscriber.Ranges)
	out.UserPlane.Profiles = cloneProfiles(d.UserPlane.Profiles)
	return out
}

// Clone returns a deep copy of the profile.
func (p UserPlaneProfile) Clone() UserPlaneProfile {
	out := p
	if p.Downlink != nil {
		dl := *p.Downlink
		out.Downlink = &dl
	}
	if p.Uplink != nil {
		ul := *p.Uplink
		out.Uplink = &ul
	}
	return out
}

// DataType returns the data type implied by the payload.
func (p UserPlaneProfile) DataType() DataType {
	if p.Payload == nil {
		return ""
	}
	return p.Payload.DataType()
}

// SetDirection changes the direction and drops the bitrate entry of any
// direction that is no longer carried. Dropped entries are not restored when
// the direction is widened again.
func (p *UserPlaneProfile) SetDirection(d Direction) {
	p.Direction = d
	if !d.NeedsDownlink() {
		p.Downlink = nil
	}
	if !d.NeedsUplink() {
		p.Uplink = nil
	}
}

func cloneSlice[T any](in []T) []T {
	if in == nil {
		return nil
	}
	out := make([]T, len(in))
	copy(out, in)
	return out
}

func cloneProfiles(in []UserPlaneProfile) []UserPlaneProfile {
	if in == nil {
		return nil
	}
	out := make([]UserPlaneProfile, len(in))
	for i, p := range in {
		out[i] = p.Clone()
	}
	return out
}

// userPlaneProfileWire is the flat persisted layout of a user-plane profile.
type userPlaneProfileWire struct {
	ID                string            `yaml:"id" json:"id"`
	SubscriberRange   RangeRef          `yaml:"subscriberRange" json:"subscriberRange"`
	DataType          DataType          `yaml:"dataType" json:"dataType"`
	TransportProtocol TransportProtocol `yaml:"transportProtocol,omitempty" json:"transportProtocol,omitempty"`
	CallType          CallType          `yaml:"callType,omitempty" json:"callType,omitempty"`
	StartingPort      string            `yaml:"startingPort" json:"startingPort"`
	APNName           string            `yaml:"apnName" json:"apnName"`
	StartDelay        string            `yaml:"startDelay" json:"startDelay"`
	Duration          string            `yaml:"duration" json:"duration"`
	DataDirection     Direction         `yaml:"dataDirection" json:"dataDirection"`
	DLBitrate         string            `yaml:"dlBitrate,omitempty" json:"dlBitrate,omitempty"`
	DLBitrateUnit     BitrateUnit       `yaml:"dlBitrateUnit,omitempty" json:"dlBitrateUnit,omitempty"`
	ULBitrate         string            `yaml:"ulBitrate,omitempty" json:"ulBitrate,omitempty"`
	ULBitrateUnit     BitrateUnit       `yaml:"ulBitrateUnit,omitempty" json:"ulBitrateUnit,omitempty"`
}

func (p UserPlaneProfile) wire() userPlaneProfileWire {
	w := userPlaneProfileWire{
		ID:              p.ID,
		SubscriberRange: p.Target,
		StartingPort:    p.StartingPort,
		APNName:         p.APNName,
		StartDelay:      p.StartDelay,
		Duration:        p.Duration,
		DataDirection:   p.Direction,
	}
	switch payload := p.Payload.(type) {
	case RawThroughput:
		w.DataType = DataIPERF
		w.TransportProtocol = payload.Protocol
	case VoiceCall:
		w.DataType = DataVoice
		w.CallType = payload.Call
	}
	if p.Downlink != nil {
		w.DLBitrate = p.Downlink.Value
		w.DLBitrateUnit = p.Downlink.Unit
	}
	if p.Uplink != nil {
		w.ULBitrate = p.Uplink.Value
		w.ULBitrateUnit = p.Uplink.Unit
	}
	return w
}

func (w userPlaneProfileWire) profile() UserPlaneProfile {
	p := UserPlaneProfile{
		ID:           w.ID,
		Target:       w.SubscriberRange,
		StartingPort: w.StartingPort,
		APNName:      w.APNName,
		StartDelay:   w.StartDelay,
		Duration:     w.Duration,
		Direction:    w.DataDirection,
	}
	switch w.DataType {
	case DataIPERF:
		p.Payload = RawThroughput{Protocol: w.TransportProtocol}
	case DataVoice:
		p.Payload = VoiceCall{Call: w.CallType}
	}
	if w.DLBitrate != "" || w.DLBitrateUnit != "" {
		p.Downlink = &Bitrate{Value: w.DLBitrate, Unit: w.DLBitrateUnit}
	}
	if w.ULBitrate != "" || w.ULBitrateUnit != "" {
		p.Uplink = &Bitrate{Value: w.ULBitrate, Unit: w.ULBitrateUnit}
	}
	return p
}

// MarshalYAML implements yaml.Marshaler.
func (p UserPlaneProfile) MarshalYAML() (interface{}, error) {
	return p.wire(), nil
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (p *UserPlaneProfile) UnmarshalYAML(value *yaml.Node) error {
	var w userPlaneProfileWire
	if err := value.Decode(&w); err != nil {
		return err
	}
	*p = w.profile()
	return nil
}

// MarshalJSON implements json.Marshaler.
func (p UserPlaneProfile) MarshalJSON() ([]byte, error) {
	return json.Marshal(p.wire())
}

// UnmarshalJSON implements json.Unmarshaler.
func (p *UserPlaneProfile) UnmarshalJSON(data []byte) error {
	var w userPlaneProfileWire
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}
	*p = w.profile()
	return nil
}
