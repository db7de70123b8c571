package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/muurk/netscen/internal/bands"
	"github.com/muurk/netscen/internal/scenario"
	"github.com/muurk/netscen/internal/wizard"
)

// fieldKind selects how a field is edited.
type fieldKind int

const (
	fieldText   fieldKind = iota // free text, edited with a textinput
	fieldChoice                  // cycles through a fixed option list
	fieldAction                  // a button, e.g. "Add Cell"
)

// field is one editable row of a section form. Fields are rebuilt from the
// document after every change, so the closures always act on fresh data.
type field struct {
	group   string // group header shown above the first field of a group
	label   string
	kind    fieldKind
	value   string
	options []string
	index   int // selected option, -1 when the value is not among them
	choose  func(i int)
	set     func(v string)
	action  func()
}

// controllers bundles the six section controllers over one session.
type controllers struct {
	cell       *wizard.CellController
	subscriber *wizard.SubscriberController
	userPlane  *wizard.UserPlaneController
	traffic    *wizard.TrafficController
	mobility   *wizard.MobilityController
	settings   *wizard.SettingsController
}

func newControllers(store wizard.DocumentStore) controllers {
	return controllers{
		cell:       wizard.NewCellController(store),
		subscriber: wizard.NewSubscriberController(store),
		userPlane:  wizard.NewUserPlaneController(store),
		traffic:    wizard.NewTrafficController(store),
		mobility:   wizard.NewMobilityController(store),
		settings:   wizard.NewSettingsController(store),
	}
}

// fieldsFor builds the form of a section.
func (c controllers) fieldsFor(sec scenario.Section) []field {
	switch sec {
	case scenario.SectionCell:
		return c.cellFields()
	case scenario.SectionSubscriber:
		return c.subscriberFields()
	case scenario.SectionUserPlane:
		return c.userPlaneFields()
	case scenario.SectionTraffic:
		return c.trafficFields()
	case scenario.SectionMobility:
		return c.mobilityFields()
	case scenario.SectionSettings:
		return c.settingsFields()
	default:
		return nil
	}
}

// add triggers the add-entry affordance of a section, if it has one and it
// is currently offered.
func (c controllers) add(sec scenario.Section) bool {
	switch sec {
	case scenario.SectionCell:
		return c.cell.AddCell()
	case scenario.SectionSubscriber:
		return c.subscriber.AddRange()
	case scenario.SectionUserPlane:
		return c.userPlane.AddProfile()
	default:
		return false
	}
}

func (c controllers) cellFields() []field {
	data := c.cell.Data()
	fields := []field{
		choiceOf("RAT Type", scenario.RatTypes, data.RatType, func(v scenario.RatType) { c.cell.SetRatType(v) }),
		yesNo("Mobility", data.Mobility, c.cell.SetMobility),
	}

	for i, cell := range data.Cells {
		group := fmt.Sprintf("Cell #%d", i+1)

		fields = append(fields,
			grouped(group, choiceOf("Cell Type", bands.Technologies, cell.CellType, func(v bands.Technology) { c.cell.SetCellType(i, v) })),
			choiceOf("Duplex Mode", bands.DuplexModes, cell.DuplexMode, func(v bands.DuplexMode) { c.cell.SetDuplexMode(i, v) }),
			choiceOf("Band", c.cell.BandOptions(i), cell.Band, func(v bands.Band) { c.cell.SetBand(i, v) }),
		)

		channel := "EARFCN"
		if cell.CellType.IsNR() {
			channel = "NR-ARFCN"
		}
		fields = append(fields,
			textOf("DL "+channel, cell.DLEarfcn, func(v string) { c.cell.SetDLEarfcn(i, v) }),
			textOf("UL "+channel, cell.ULEarfcn, func(v string) { c.cell.SetULEarfcn(i, v) }),
		)
		if cell.CellType.IsNR() {
			fields = append(fields, textOf("SSB NR-ARFCN", cell.SSBNrArfcn, func(v string) { c.cell.SetSSBNrArfcn(i, v) }))
		}
	}

	if c.cell.CanAddCell() {
		fields = append(fields, actionOf("+ Add Cell", func() { c.cell.AddCell() }))
	}
	return fields
}

func (c controllers) subscriberFields() []field {
	data := c.subscriber.Data()
	fields := []field{
		textOf("Total UEs", strconv.Itoa(data.TotalUEs), func(v string) { c.subscriber.SetTotalUEs(parseCount(v)) }),
	}

	cellOpts := c.subscriber.CellOptions()
	for i, r := range data.Ranges {
		group := fmt.Sprintf("Range #%d", i+1)

		fields = append(fields,
			grouped(group, textOf("Number of UEs", strconv.Itoa(r.NumberOfUEs), func(v string) { c.subscriber.SetNumberOfUEs(i, parseCount(v)) })),
			optionsOf("Serving Cell", cellOpts, r.ServingCell, func(v string) { c.subscriber.SetServingCell(i, v) }),
			textOf("Starting SUPI", r.StartingSUPI, func(v string) { c.subscriber.SetStartingSUPI(i, v) }),
			textOf("Shared Key", r.SharedKey, func(v string) { c.subscriber.SetSharedKey(i, v) }),
			choiceOf("MNC Digits", scenario.MNCDigitOptions, r.MNCDigits, func(v string) { c.subscriber.SetMNCDigits(i, v) }),
		)
	}

	if c.subscriber.CanAddRange() {
		fields = append(fields, actionOf("+ Add Range", func() { c.subscriber.AddRange() }))
	}
	return fields
}

func (c controllers) userPlaneFields() []field {
	data := c.userPlane.Data()
	fields := []field{
		choiceOf("Profile Type", scenario.ProfileTypes, data.ProfileType, func(v scenario.ProfileType) { c.userPlane.SetProfileType(v) }),
	}

	rangeOpts := c.userPlane.RangeOptions()
	for i, p := range data.Profiles {
		group := fmt.Sprintf("Profile #%d", i+1)

		fields = append(fields,
			grouped(group, rangeChoice("Subscriber Range", rangeOpts, p.Target, func(v scenario.RangeRef) { c.userPlane.SetTarget(i, v) })),
			choiceOf("Data Type", scenario.DataTypes, p.DataType(), func(v scenario.DataType) { c.userPlane.SetDataType(i, v) }),
		)

		switch payload := p.Payload.(type) {
		case scenario.RawThroughput:
			fields = append(fields, choiceOf("Transport Protocol", scenario.TransportProtocols, payload.Protocol,
				func(v scenario.TransportProtocol) { c.userPlane.SetTransportProtocol(i, v) }))
		case scenario.VoiceCall:
			fields = append(fields, choiceOf("Call Type", scenario.CallTypes, payload.Call,
				func(v scenario.CallType) { c.userPlane.SetCallType(i, v) }))
		}

		fields = append(fields,
			textOf("Starting Port", p.StartingPort, func(v string) { c.userPlane.SetStartingPort(i, v) }),
			textOf("APN Name", p.APNName, func(v string) { c.userPlane.SetAPNName(i, v) }),
			textOf("Start Delay (s)", p.StartDelay, func(v string) { c.userPlane.SetStartDelay(i, v) }),
			textOf("Duration (s)", p.Duration, func(v string) { c.userPlane.SetDuration(i, v) }),
			choiceOf("Data Direction", scenario.Directions, p.Direction, func(v scenario.Direction) { c.userPlane.SetDirection(i, v) }),
		)

		if p.Direction.NeedsDownlink() {
			var dl scenario.Bitrate
			if p.Downlink != nil {
				dl = *p.Downlink
			}
			fields = append(fields,
				textOf("DL Bitrate", dl.Value, func(v string) { c.userPlane.SetDownlinkBitrate(i, v) }),
				choiceOf("DL Bitrate Unit", scenario.BitrateUnits, dl.Unit, func(v scenario.BitrateUnit) { c.userPlane.SetDownlinkUnit(i, v) }),
			)
		}
		if p.Direction.NeedsUplink() {
			var ul scenario.Bitrate
			if p.Uplink != nil {
				ul = *p.Uplink
			}
			fields = append(fields,
				textOf("UL Bitrate", ul.Value, func(v string) { c.userPlane.SetUplinkBitrate(i, v) }),
				choiceOf("UL Bitrate Unit", scenario.BitrateUnits, ul.Unit, func(v scenario.BitrateUnit) { c.userPlane.SetUplinkUnit(i, v) }),
			)
		}
	}

	if c.userPlane.CanAddProfile() {
		fields = append(fields, actionOf("+ Add Profile", func() { c.userPlane.AddProfile() }))
	}
	return fields
}

func (c controllers) trafficFields() []field {
	data := c.traffic.Data()
	fields := []field{
		rangeChoice("Profile Range", c.traffic.RangeOptions(), data.ProfileRange, c.traffic.SetProfileRange),
		choiceOf("Attach Type", scenario.AttachTypes, data.AttachType, c.traffic.SetAttachType),
		textOf("Attach Rate", data.AttachRate, c.traffic.SetAttachRate),
		textOf("Attach Delay", data.AttachDelay, c.traffic.SetAttachDelay),
		textOf("Power On Duration", data.PowerOnDuration, c.traffic.SetPowerOnDuration),
	}
	if c.traffic.Staggered() {
		fields = append(fields, textOf("Stagger Time", data.StaggerTime, c.traffic.SetStaggerTime))
	}
	return fields
}

// mobilityFields is empty while mobility is switched off in the cell section.
func (c controllers) mobilityFields() []field {
	if !c.mobility.Enabled() {
		return nil
	}
	data := c.mobility.Data()
	return []field{
		rangeChoice("UE Group", c.mobility.RangeOptions(), data.UEGroup, c.mobility.SetUEGroup),
		choiceOf("Trip Type", scenario.TripTypes, data.TripType, c.mobility.SetTripType),
		textOf("Delay", data.Delay, c.mobility.SetDelay),
		textOf("Duration", data.Duration, c.mobility.SetDuration),
		textOf("Wait Time", data.WaitTime, c.mobility.SetWaitTime),
	}
}

func (c controllers) settingsFields() []field {
	data := c.settings.Data()
	return []field{
		textOf("Test Case Name", data.TestCaseName, c.settings.SetTestCaseName),
		choiceOf("Log Setting", scenario.LogSettings, data.LogSetting, c.settings.SetLogSetting),
		choiceOf("Success Settings", scenario.SuccessCriterias, data.SuccessSettings, c.settings.SetSuccessSettings),
	}
}

func textOf(label, value string, set func(string)) field {
	return field{label: label, kind: fieldText, value: value, set: set}
}

func actionOf(label string, action func()) field {
	return field{label: label, kind: fieldAction, action: action}
}

func grouped(group string, f field) field {
	f.group = group
	return f
}

// choiceOf builds a choice field over a list of comparable values.
func choiceOf[T comparable](label string, opts []T, current T, set func(T)) field {
	names := make([]string, len(opts))
	index := -1
	for i, o := range opts {
		names[i] = fmt.Sprint(o)
		if o == current {
			index = i
		}
	}
	return field{
		label:   label,
		kind:    fieldChoice,
		value:   fmt.Sprint(current),
		options: names,
		index:   index,
		choose:  func(i int) { set(opts[i]) },
	}
}

func yesNo(label string, current bool, set func(bool)) field {
	f := choiceOf(label, []bool{true, false}, current, set)
	f.options = []string{"Yes", "No"}
	f.value = scenario.YesNo(current)
	return f
}

func optionsOf(label string, opts []wizard.Option, current string, set func(string)) field {
	names := make([]string, len(opts))
	index := -1
	value := current
	for i, o := range opts {
		names[i] = o.Label
		if o.Value == current {
			index = i
			value = o.Label
		}
	}
	return field{
		label:   label,
		kind:    fieldChoice,
		value:   value,
		options: names,
		index:   index,
		choose:  func(i int) { set(opts[i].Value) },
	}
}

func rangeChoice(label string, opts []wizard.RangeOption, current scenario.RangeRef, set func(scenario.RangeRef)) field {
	names := make([]string, len(opts))
	index := -1
	value := current.String()
	for i, o := range opts {
		names[i] = o.Label
		if o.Ref == current {
			index = i
			value = o.Label
		}
	}
	return field{
		label:   label,
		kind:    fieldChoice,
		value:   value,
		options: names,
		index:   index,
		choose:  func(i int) { set(opts[i].Ref) },
	}
}

// parseCount reads a device count. Anything that is not a number counts as
// zero, which validation then rejects.
func parseCount(v string) int {
	n, err := strconv.Atoi(strings.TrimSpace(v))
	if err != nil {
		return 0
	}
	return n
}
