package scenario

import (
	"fmt"
	"strings"
)

// Summary returns a one-line summary of the scenario
func (d Document) Summary() string {
	name := d.Settings.TestCaseName
	if name == "" {
		name = "(unnamed)"
	}
	return fmt.Sprintf("%s: %s, %d cell(s), %d UE(s) in %d range(s), %d profile(s)",
		name, d.Cell.RatType, len(d.Cell.Cells), d.Subscriber.TotalUEs,
		len(d.Subscriber.Ranges), len(d.UserPlane.Profiles))
}

// FormatCell returns the cell section as text
func (d Document) FormatCell() string {
	var b strings.Builder

	b.WriteString("=== Cell ===\n")
	b.WriteString(fmt.Sprintf("RAT Type: %s\n", d.Cell.RatType))
	b.WriteString(fmt.Sprintf("Mobility: %s\n", YesNo(d.Cell.Mobility)))
	for _, c := range d.Cell.Cells {
		b.WriteString(fmt.Sprintf("  %-6s %-3s %s %-4s DL %-7s UL %-7s",
			c.ID, c.CellType, c.DuplexMode, c.Band, c.DLEarfcn, c.ULEarfcn))
		if c.CellType.IsNR() {
			b.WriteString(fmt.Sprintf(" SSB %s", c.SSBNrArfcn))
		}
		b.WriteString("\n")
	}

	return b.String()
}

// FormatSubscriber returns the subscriber section as text
func (d Document) FormatSubscriber() string {
	var b strings.Builder

	b.WriteString("=== Subscriber ===\n")
	b.WriteString(fmt.Sprintf("Total UEs: %d\n", d.Subscriber.TotalUEs))
	for _, r := range d.Subscriber.Ranges {
		b.WriteString(fmt.Sprintf("  %-8s %3d UE(s) on %-6s SUPI %s MNC %s digit(s)\n",
			r.ID, r.NumberOfUEs, r.ServingCell, r.StartingSUPI, r.MNCDigits))
	}

	return b.String()
}

// FormatUserPlane returns the user-plane section as text
func (d Document) FormatUserPlane() string {
	var b strings.Builder

	b.WriteString("=== User Plane ===\n")
	b.WriteString(fmt.Sprintf("Profile Type: %s\n", d.UserPlane.ProfileType))
	for _, p := range d.UserPlane.Profiles {
		b.WriteString(fmt.Sprintf("  %-9s -> %-12s %s", p.ID, p.Target, FormatPayload(p.Payload)))
		b.WriteString(fmt.Sprintf(" port %s, delay %ss, duration %ss, %s",
			p.StartingPort, p.StartDelay, p.Duration, p.Direction))
		if p.Downlink != nil {
			b.WriteString(fmt.Sprintf(", DL %s", p.Downlink))
		}
		if p.Uplink != nil {
			b.WriteString(fmt.Sprintf(", UL %s", p.Uplink))
		}
		if p.APNName != "" {
			b.WriteString(fmt.Sprintf(", APN %s", p.APNName))
		}
		b.WriteString("\n")
	}

	return b.String()
}

// FormatTraffic returns the traffic section as text
func (d Document) FormatTraffic() string {
	var b strings.Builder
	t := d.Traffic

	b.WriteString("=== Traffic ===\n")
	b.WriteString(fmt.Sprintf("Range:             %s\n", t.ProfileRange))
	b.WriteString(fmt.Sprintf("Attach Type:       %s\n", t.AttachType))
	b.WriteString(fmt.Sprintf("Attach Rate:       %s\n", t.AttachRate))
	b.WriteString(fmt.Sprintf("Attach Delay:      %s\n", t.AttachDelay))
	b.WriteString(fmt.Sprintf("Power On Duration: %s\n", t.PowerOnDuration))
	if t.AttachType == AttachStaggered {
		b.WriteString(fmt.Sprintf("Stagger Time:      %s\n", t.StaggerTime))
	}

	return b.String()
}

// FormatMobility returns the mobility section as text
func (d Document) FormatMobility() string {
	var b strings.Builder

	b.WriteString("=== Mobility ===\n")
	if !d.Cell.Mobility {
		b.WriteString("Disabled (cell mobility is off)\n")
		return b.String()
	}
	m := d.Mobility
	b.WriteString(fmt.Sprintf("UE Group:  %s\n", m.UEGroup))
	b.WriteString(fmt.Sprintf("Trip Type: %s\n", m.TripType))
	b.WriteString(fmt.Sprintf("Delay:     %s\n", m.Delay))
	b.WriteString(fmt.Sprintf("Duration:  %s\n", m.Duration))
	b.WriteString(fmt.Sprintf("Wait Time: %s\n", m.WaitTime))

	return b.String()
}

// FormatSettings returns the settings section as text
func (d Document) FormatSettings() string {
	var b strings.Builder

	b.WriteString("=== Settings ===\n")
	b.WriteString(fmt.Sprintf("Test Case Name:   %s\n", d.Settings.TestCaseName))
	b.WriteString(fmt.Sprintf("Log Setting:      %s\n", d.Settings.LogSetting))
	b.WriteString(fmt.Sprintf("Success Criteria: %s\n", d.Settings.SuccessSettings))

	return b.String()
}

// FormatCompact returns a compact multi-line format suitable for terminal display
func (d Document) FormatCompact() string {
	var b strings.Builder

	b.WriteString(d.Summary())
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("Step:     %d/%d (%s)\n", d.CurrentStep+1, LastStep+1, Section(d.CurrentStep).Label()))
	b.WriteString(fmt.Sprintf("Traffic:  %s to %s\n", d.Traffic.AttachType, d.Traffic.ProfileRange))
	b.WriteString(fmt.Sprintf("Mobility: %s\n", YesNo(d.Cell.Mobility)))
	b.WriteString(fmt.Sprintf("Logging:  %s, success on %s\n", d.Settings.LogSetting, d.Settings.SuccessSettings))

	return b.String()
}

// FormatDetailed returns every section in wizard order
func (d Document) FormatDetailed() string {
	parts := []string{
		d.FormatCell(),
		d.FormatSubscriber(),
		d.FormatUserPlane(),
		d.FormatTraffic(),
		d.FormatMobility(),
		d.FormatSettings(),
	}
	return strings.Join(parts, "\n")
}

// FormatPayload renders a data payload for display
func FormatPayload(p DataPayload) string {
	switch v := p.(type) {
	case RawThroughput:
		return fmt.Sprintf("IPERF/%s", v.Protocol)
	case VoiceCall:
		return fmt.Sprintf("VOLTE/VILTE %s", v.Call)
	default:
		return "(no data type)"
	}
}

// YesNo renders a flag the way the form shows it.
func YesNo(v bool) string {
	if v {
		return "Yes"
	}
	return "No"
}
