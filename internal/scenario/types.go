package scenario

// Section names one of the six wizard sections. Its integer value is the
// wizard step index.
type Section int

const (
	SectionCell Section = iota
	SectionSubscriber
	SectionUserPlane
	SectionTraffic
	SectionMobility
	SectionSettings
)

// Sections lists every section in wizard order.
var Sections = []Section{
	SectionCell,
	SectionSubscriber,
	SectionUserPlane,
	SectionTraffic,
	SectionMobility,
	SectionSettings,
}

const (
	// FirstStep and LastStep bound the step cursor.
	FirstStep = int(SectionCell)
	LastStep  = int(SectionSettings)
)

// String returns the document key of the section.
func (s Section) String() string {
	switch s {
	case SectionCell:
		return "cell"
	case SectionSubscriber:
		return "subscriber"
	case SectionUserPlane:
		return "userPlane"
	case SectionTraffic:
		return "traffic"
	case SectionMobility:
		return "mobility"
	case SectionSettings:
		return "settings"
	default:
		return "unknown"
	}
}

// Label returns the human-readable step label.
func (s Section) Label() string {
	switch s {
	case SectionCell:
		return "Cell"
	case SectionSubscriber:
		return "Subscriber"
	case SectionUserPlane:
		return "User Plane"
	case SectionTraffic:
		return "Traffic"
	case SectionMobility:
		return "Mobility"
	case SectionSettings:
		return "Settings"
	default:
		return "Unknown"
	}
}

// SectionAt returns the section for a step index.
func SectionAt(step int) (Section, bool) {
	if step < FirstStep || step > LastStep {
		return 0, false
	}
	return Section(step), true
}

// RatType is the top-level radio-access type of the scenario.
type RatType string

const (
	Rat4G    RatType = "4G"
	Rat5GSA  RatType = "5G:SA"
	Rat5GNSA RatType = "5G:NSA"
)

var RatTypes = []RatType{Rat4G, Rat5GSA, Rat5GNSA}

// MaxNSACells caps the cell list for 5G non-standalone.
const MaxNSACells = 2

type ProfileType string

const (
	ProfileSingle ProfileType = "Single"
	ProfileMixed  ProfileType = "Mixed"
)

var ProfileTypes = []ProfileType{ProfileSingle, ProfileMixed}

// DataType selects which DataPayload variant a user-plane profile carries.
type DataType string

const (
	DataIPERF DataType = "IPERF"
	DataVoice DataType = "VOLTE/VILTE"
)

var DataTypes = []DataType{DataIPERF, DataVoice}

type TransportProtocol string

const (
	ProtocolTCP TransportProtocol = "TCP"
	ProtocolUDP TransportProtocol = "UDP"
)

var TransportProtocols = []TransportProtocol{ProtocolTCP, ProtocolUDP}

type CallType string

const (
	CallAudio CallType = "Audio"
	CallVideo CallType = "Video"
)

var CallTypes = []CallType{CallAudio, CallVideo}

// Direction selects which bitrate pairs a user-plane profile needs.
type Direction string

const (
	DirectionBoth     Direction = "Both"
	DirectionDownlink Direction = "Downlink"
	DirectionUplink   Direction = "Uplink"
)

var Directions = []Direction{DirectionBoth, DirectionDownlink, DirectionUplink}

// NeedsDownlink reports whether the direction carries downlink traffic.
func (d Direction) NeedsDownlink() bool {
	return d == DirectionBoth || d == DirectionDownlink
}

// NeedsUplink reports whether the direction carries uplink traffic.
func (d Direction) NeedsUplink() bool {
	return d == DirectionBoth || d == DirectionUplink
}

type BitrateUnit string

const (
	UnitMbps BitrateUnit = "Mbps"
	UnitKbps BitrateUnit = "Kbps"
)

var BitrateUnits = []BitrateUnit{UnitMbps, UnitKbps}

type AttachType string

const (
	AttachBursty    AttachType = "Bursty"
	AttachStaggered AttachType = "Staggered"
)

var AttachTypes = []AttachType{AttachBursty, AttachStaggered}

type TripType string

const (
	TripBidirectional  TripType = "Bidirectional"
	TripStationary     TripType = "Stationary"
	TripUnidirectional TripType = "Unidirectional"
)

var TripTypes = []TripType{TripBidirectional, TripStationary, TripUnidirectional}

type LogSetting string

const (
	LogDebug    LogSetting = "debug"
	LogError    LogSetting = "error"
	LogRRCDebug LogSetting = "rrc_debug"
)

var LogSettings = []LogSetting{LogDebug, LogError, LogRRCDebug}

type SuccessCriteria string

const (
	SuccessNew21      SuccessCriteria = "new21"
	SuccessBler       SuccessCriteria = "Bler Success"
	SuccessThroughput SuccessCriteria = "Throughput Success"
)

var SuccessCriterias = []SuccessCriteria{SuccessNew21, SuccessBler, SuccessThroughput}

// MNCDigitOptions lists the accepted mobile-network-code lengths.
var MNCDigitOptions = []string{"2", "3"}

// Ptr returns a pointer to v. Patches use it for optional scalar fields.
func Ptr[T any](v T) *T {
	return &v
}

func contains[T comparable](list []T, v T) bool {
	for _, item := range list {
		if item == v {
			return true
		}
	}
	return false
}
