package scenario

import (
	"fmt"

	"github.com/muurk/netscen/internal/bands"
)

// Seed values used for a fresh document and for new list entries.
const (
	DefaultStartingSUPI = "001010123456001"
	DefaultSharedKey    = "00112233445566778899aabbccddeeff"
	DefaultMNCDigits    = "2"
)

// DefaultLTECell returns the default legacy cell with the given id. It seeds
// the 4G radio-access type and every added cell.
func DefaultLTECell(id string) CellConfig {
	return legacyCell(id, bands.TechLTE)
}

// DefaultAnchorCell returns the 4G anchor cell of a 5G:NSA layout.
func DefaultAnchorCell(id string) CellConfig {
	return legacyCell(id, bands.Tech4G)
}

func legacyCell(id string, tech bands.Technology) CellConfig {
	return CellConfig{
		ID:         id,
		CellType:   tech,
		DuplexMode: bands.FDD,
		Band:       bands.BandN1,
		DLEarfcn:   "300",
		ULEarfcn:   "18300",
	}
}

// Default5GCell returns the default NR cell with the given id.
func Default5GCell(id string) CellConfig {
	return CellConfig{
		ID:         id,
		CellType:   bands.Tech5G,
		DuplexMode: bands.FDD,
		Band:       bands.BandN1,
		DLEarfcn:   "42800",
		ULEarfcn:   "39000",
		SSBNrArfcn: "39000",
	}
}

// DefaultCells returns the cell list that replaces the current one when the
// radio-access type changes.
func DefaultCells(rat RatType) []CellConfig {
	switch rat {
	case Rat5GSA:
		return []CellConfig{Default5GCell(CellID(0))}
	case Rat5GNSA:
		return []CellConfig{DefaultAnchorCell(CellID(0)), Default5GCell(CellID(1))}
	default:
		return []CellConfig{DefaultLTECell(CellID(0))}
	}
}

// CellID returns the sequential id of the cell at index i ("cell1" for 0).
func CellID(i int) string { return fmt.Sprintf("cell%d", i+1) }

// RangeID returns the sequential id of the range at index i.
func RangeID(i int) string { return fmt.Sprintf("range%d", i+1) }

// ProfileID returns the sequential id of the user-plane profile at index i.
func ProfileID(i int) string { return fmt.Sprintf("profile%d", i+1) }

// DefaultRange returns a freshly seeded subscriber range.
func DefaultRange(id, servingCell, startingSUPI string) SubscriberRange {
	return SubscriberRange{
		ID:           id,
		NumberOfUEs:  1,
		ServingCell:  servingCell,
		StartingSUPI: startingSUPI,
		SharedKey:    DefaultSharedKey,
		MNCDigits:    DefaultMNCDigits,
	}
}

// DefaultProfile returns a user-plane profile with the form's initial values.
func DefaultProfile(id string, target RangeRef) UserPlaneProfile {
	return UserPlaneProfile{
		ID:           id,
		Target:       target,
		Payload:      RawThroughput{Protocol: ProtocolTCP},
		StartingPort: "5000",
		APNName:      "",
		StartDelay:   "5",
		Duration:     "600",
		Direction:    DirectionBoth,
		Downlink:     &Bitrate{Value: "150", Unit: UnitMbps},
		Uplink:       &Bitrate{Value: "50", Unit: UnitMbps},
	}
}

// DefaultCellSection returns the initial cell section.
func DefaultCellSection() CellSection {
	return CellSection{
		RatType:  Rat4G,
		Mobility: false,
		Cells:    DefaultCells(Rat4G),
	}
}

func DefaultSubscriberSection() SubscriberSection {
	return SubscriberSection{
		TotalUEs: 1,
		Ranges:   []SubscriberRange{DefaultRange(RangeID(0), CellID(0), DefaultStartingSUPI)},
	}
}

func DefaultUserPlaneSection() UserPlaneSection {
	return UserPlaneSection{
		ProfileType: ProfileSingle,
		Profiles:    []UserPlaneProfile{DefaultProfile(ProfileID(0), SpecificRange(RangeID(0)))},
	}
}

func DefaultTrafficSection() TrafficSection {
	return TrafficSection{
		ProfileRange:    AllRanges(),
		AttachType:      AttachBursty,
		AttachRate:      "1",
		AttachDelay:     "0",
		PowerOnDuration: "605",
		StaggerTime:     "0",
	}
}

func DefaultMobilitySection() MobilitySection {
	return MobilitySection{
		UEGroup:  AllRanges(),
		TripType: TripBidirectional,
		Delay:    "5",
		Duration: "600",
		WaitTime: "0",
	}
}

func DefaultSettingsSection() SettingsSection {
	return SettingsSection{
		TestCaseName:    "",
		LogSetting:      LogDebug,
		SuccessSettings: SuccessNew21,
	}
}

// Default returns the document a new session starts with.
func Default() Document {
	return Document{
		Cell:        DefaultCellSection(),
		Subscriber:  DefaultSubscriberSection(),
		UserPlane:   DefaultUserPlaneSection(),
		Traffic:     DefaultTrafficSection(),
		Mobility:    DefaultMobilitySection(),
		Settings:    DefaultSettingsSection(),
		CurrentStep: FirstStep,
	}
}
