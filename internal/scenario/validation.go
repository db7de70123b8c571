package scenario

import (
	"encoding/hex"
	"fmt"
	"strconv"
	"strings"

	"github.com/muurk/netscen/internal/bands"
)

// SectionValid reports whether a section passes validation. This is the
// gate used for forward navigation.
func SectionValid(doc Document, s Section) bool {
	return len(CheckSection(doc, s)) == 0
}

// CheckSection validates one section of doc and returns every problem found.
// It never modifies doc.
func CheckSection(doc Document, s Section) []error {
	switch s {
	case SectionCell:
		return checkCell(doc.Cell)
	case SectionSubscriber:
		return checkSubscriber(doc.Subscriber)
	case SectionUserPlane:
		return checkUserPlane(doc.UserPlane)
	case SectionTraffic:
		return checkTraffic(doc.Traffic)
	case SectionMobility:
		return checkMobility(doc.Cell.Mobility, doc.Mobility)
	case SectionSettings:
		return checkSettings(doc.Settings)
	default:
		return []error{NewValidationError(s, "", "unknown section")}
	}
}

// CheckDocument validates every section, in wizard order.
func CheckDocument(doc Document) map[Section][]error {
	out := make(map[Section][]error)
	for _, s := range Sections {
		if errs := CheckSection(doc, s); len(errs) > 0 {
			out[s] = errs
		}
	}
	return out
}

func checkCell(c CellSection) []error {
	var errs []error
	add := func(field, msg string) {
		errs = append(errs, NewValidationError(SectionCell, field, msg))
	}

	if !contains(RatTypes, c.RatType) {
		add("ratType", fmt.Sprintf("unknown radio-access type %q", c.RatType))
	}
	if len(c.Cells) == 0 {
		add("cells", "at least one cell is required")
	}
	if c.RatType == Rat5GNSA && len(c.Cells) > MaxNSACells {
		add("cells", fmt.Sprintf("5G:NSA allows at most %d cells, got %d", MaxNSACells, len(c.Cells)))
	}

	seen := make(map[string]bool)
	for i, cell := range c.Cells {
		field := func(name string) string { return fmt.Sprintf("cells[%d].%s", i, name) }

		if cell.ID == "" {
			add(field("id"), "is required")
		} else if seen[cell.ID] {
			add(field("id"), fmt.Sprintf("duplicate cell id %q", cell.ID))
		}
		seen[cell.ID] = true

		if !contains(bands.Technologies, cell.CellType) {
			add(field("cellType"), "is required")
		}
		if !contains(bands.DuplexModes, cell.DuplexMode) {
			add(field("duplexMode"), "is required")
		}
		if !cell.Band.Valid() {
			add(field("band"), "is required")
		} else if contains(bands.DuplexModes, cell.DuplexMode) && !bands.InDuplexFamily(cell.Band, cell.DuplexMode) {
			add(field("band"), fmt.Sprintf("band %s is not a %s band", cell.Band, cell.DuplexMode))
		}
		if cell.DLEarfcn == "" {
			add(field("dlEarfcn"), "is required")
		}
		if cell.ULEarfcn == "" {
			add(field("ulEarfcn"), "is required")
		}
		if cell.CellType.IsNR() && cell.SSBNrArfcn == "" {
			add(field("ssbNrArfcn"), "is required for 5G cells")
		}
	}

	return errs
}

func checkSubscriber(s SubscriberSection) []error {
	var errs []error
	add := func(field, msg string) {
		errs = append(errs, NewValidationError(SectionSubscriber, field, msg))
	}

	if s.TotalUEs <= 0 {
		add("totalUEs", "must be greater than zero")
	}
	if len(s.Ranges) == 0 {
		add("ranges", "at least one range is required")
	}

	sum := 0
	seen := make(map[string]bool)
	windows := make([]supiWindow, 0, len(s.Ranges))
	owners := make([]string, 0, len(s.Ranges))

	for i, r := range s.Ranges {
		field := func(name string) string { return fmt.Sprintf("ranges[%d].%s", i, name) }

		if r.ID == "" {
			add(field("id"), "is required")
		} else if seen[r.ID] {
			add(field("id"), fmt.Sprintf("duplicate range id %q", r.ID))
		}
		seen[r.ID] = true

		if r.NumberOfUEs <= 0 {
			add(field("numberOfUEs"), "must be greater than zero")
		} else {
			sum += r.NumberOfUEs
		}
		if r.ServingCell == "" {
			add(field("servingCell"), "is required")
		}
		if r.StartingSUPI == "" {
			add(field("startingSUPI"), "is required")
		} else if _, err := ParseSUPI(r.StartingSUPI); err != nil {
			add(field("startingSUPI"), err.Error())
		}
		if r.SharedKey != "" {
			if _, err := hex.DecodeString(r.SharedKey); err != nil {
				add(field("sharedKey"), "must be a hex string")
			}
		}
		if r.MNCDigits != "" && !contains(MNCDigitOptions, r.MNCDigits) {
			add(field("mncDigits"), fmt.Sprintf("must be one of %s", strings.Join(MNCDigitOptions, ", ")))
		}

		if w, ok := windowOf(r); ok {
			for j, other := range windows {
				if w.overlaps(other) {
					add(field("startingSUPI"), fmt.Sprintf("SUPI window overlaps %s", owners[j]))
				}
			}
			windows = append(windows, w)
			owners = append(owners, r.ID)
		}
	}

	if s.TotalUEs > 0 && sum > s.TotalUEs {
		add("ranges", fmt.Sprintf("ranges hold %d UEs but total is %d", sum, s.TotalUEs))
	}

	return errs
}

func checkUserPlane(u UserPlaneSection) []error {
	var errs []error
	add := func(field, msg string) {
		errs = append(errs, NewValidationError(SectionUserPlane, field, msg))
	}

	if !contains(ProfileTypes, u.ProfileType) {
		add("profileType", "is required")
	}
	if len(u.Profiles) == 0 {
		add("profiles", "at least one profile is required")
	}
	if u.ProfileType == ProfileSingle && len(u.Profiles) > 1 {
		add("profiles", "single profile type allows exactly one profile")
	}

	for i, p := range u.Profiles {
		field := func(name string) string { return fmt.Sprintf("profiles[%d].%s", i, name) }

		if !p.Target.IsSet() {
			add(field("subscriberRange"), "is required")
		}

		switch payload := p.Payload.(type) {
		case RawThroughput:
			if !contains(TransportProtocols, payload.Protocol) {
				add(field("transportProtocol"), "is required for IPERF")
			}
		case VoiceCall:
			if !contains(CallTypes, payload.Call) {
				add(field("callType"), "is required for VOLTE/VILTE")
			}
		default:
			add(field("dataType"), "is required")
		}

		if p.StartingPort == "" {
			add(field("startingPort"), "is required")
		} else if port, err := strconv.Atoi(p.StartingPort); err != nil || port < 1 || port > 65535 {
			add(field("startingPort"), "must be a port number between 1 and 65535")
		}
		checkNumber(add, field("startDelay"), p.StartDelay, true)
		checkNumber(add, field("duration"), p.Duration, true)

		if !contains(Directions, p.Direction) {
			add(field("dataDirection"), "is required")
			continue
		}
		if p.Direction.NeedsDownlink() {
			checkBitrate(add, field("dlBitrate"), field("dlBitrateUnit"), p.Downlink)
		}
		if p.Direction.NeedsUplink() {
			checkBitrate(add, field("ulBitrate"), field("ulBitrateUnit"), p.Uplink)
		}
	}

	return errs
}

func checkBitrate(add func(field, msg string), valueField, unitField string, b *Bitrate) {
	if b == nil || b.Value == "" {
		add(valueField, "is required")
	} else if v, err := strconv.ParseFloat(b.Value, 64); err != nil || v <= 0 {
		add(valueField, "must be a positive number")
	}
	if b == nil || !contains(BitrateUnits, b.Unit) {
		add(unitField, "is required")
	}
}

func checkTraffic(t TrafficSection) []error {
	var errs []error
	add := func(field, msg string) {
		errs = append(errs, NewValidationError(SectionTraffic, field, msg))
	}

	if !t.ProfileRange.IsSet() {
		add("profileRange", "is required")
	}
	if !contains(AttachTypes, t.AttachType) {
		add("attachType", "is required")
	}
	checkNumber(add, "attachRate", t.AttachRate, true)
	checkNumber(add, "attachDelay", t.AttachDelay, true)
	checkNumber(add, "powerOnDuration", t.PowerOnDuration, true)
	checkNumber(add, "staggerTime", t.StaggerTime, t.AttachType == AttachStaggered)

	return errs
}

func checkMobility(enabled bool, m MobilitySection) []error {
	if !enabled {
		return nil
	}

	var errs []error
	add := func(field, msg string) {
		errs = append(errs, NewValidationError(SectionMobility, field, msg))
	}

	if !m.UEGroup.IsSet() {
		add("ueGroup", "is required")
	}
	if !contains(TripTypes, m.TripType) {
		add("tripType", "is required")
	}
	checkNumber(add, "delay", m.Delay, true)
	checkNumber(add, "duration", m.Duration, true)
	checkNumber(add, "waitTime", m.WaitTime, false)

	return errs
}

func checkSettings(s SettingsSection) []error {
	var errs []error
	add := func(field, msg string) {
		errs = append(errs, NewValidationError(SectionSettings, field, msg))
	}

	if strings.TrimSpace(s.TestCaseName) == "" {
		add("testCaseName", "is required")
	}
	if !contains(LogSettings, s.LogSetting) {
		add("logSetting", "is required")
	}
	if !contains(SuccessCriterias, s.SuccessSettings) {
		add("successSettings", "is required")
	}

	return errs
}

// checkNumber validates a non-negative numeric form field. Empty values are
// only reported when required.
func checkNumber(add func(field, msg string), field, value string, required bool) {
	if value == "" {
		if required {
			add(field, "is required")
		}
		return
	}
	if v, err := strconv.ParseFloat(value, 64); err != nil || v < 0 {
		add(field, "must be a non-negative number")
	}
}

// FormatValidationErrors formats a slice of validation errors into a user-friendly message.
func FormatValidationErrors(errs []error) string {
	if len(errs) == 0 {
		return "No validation errors"
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Validation failed with %d error(s):\n", len(errs)))

	for i, err := range errs {
		sb.WriteString(fmt.Sprintf("  %d. %s\n", i+1, GetShortErrorMessage(err)))
	}

	return sb.String()
}
