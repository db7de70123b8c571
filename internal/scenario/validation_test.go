package scenario

import (
	"strings"
	"testing"

	"github.com/muurk/netscen/internal/bands"
)

func validDocument() Document {
	doc := Default()
	doc.Settings.TestCaseName = "smoke"
	return doc
}

func TestDefaultDocumentValidity(t *testing.T) {
	doc := Default()

	for _, s := range []Section{SectionCell, SectionSubscriber, SectionUserPlane, SectionTraffic, SectionMobility} {
		if errs := CheckSection(doc, s); len(errs) != 0 {
			t.Errorf("CheckSection(default, %s) = %v, want none", s, errs)
		}
	}

	// The test case name starts empty and must be entered.
	if SectionValid(doc, SectionSettings) {
		t.Error("SectionValid(default, settings) = true, want false")
	}
	if !SectionValid(validDocument(), SectionSettings) {
		t.Error("SectionValid(named, settings) = false, want true")
	}
}

func TestCheckSection_Cell(t *testing.T) {
	tests := []struct {
		name      string
		mutate    func(d *Document)
		wantField string
	}{
		{"no cells", func(d *Document) { d.Cell.Cells = nil }, "cells"},
		{"missing dl", func(d *Document) { d.Cell.Cells[0].DLEarfcn = "" }, "cells[0].dlEarfcn"},
		{"missing ul", func(d *Document) { d.Cell.Cells[0].ULEarfcn = "" }, "cells[0].ulEarfcn"},
		{"missing band", func(d *Document) { d.Cell.Cells[0].Band = bands.BandUnknown }, "cells[0].band"},
		{"band outside duplex family", func(d *Document) { d.Cell.Cells[0].DuplexMode = bands.TDD }, "cells[0].band"},
		{"5G without ssb", func(d *Document) {
			d.Cell.Cells = []CellConfig{Default5GCell("cell1")}
			d.Cell.Cells[0].SSBNrArfcn = ""
		}, "cells[0].ssbNrArfcn"},
		{"duplicate id", func(d *Document) {
			d.Cell.Cells = append(d.Cell.Cells, DefaultLTECell("cell1"))
		}, "cells[1].id"},
		{"nsa over cap", func(d *Document) {
			d.Cell.RatType = Rat5GNSA
			d.Cell.Cells = []CellConfig{DefaultAnchorCell("cell1"), Default5GCell("cell2"), DefaultLTECell("cell3")}
		}, "cells"},
		{"bad rat", func(d *Document) { d.Cell.RatType = "3G" }, "ratType"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := validDocument()
			tt.mutate(&doc)
			assertHasField(t, CheckSection(doc, SectionCell), tt.wantField)
		})
	}
}

func TestCheckSection_Subscriber(t *testing.T) {
	tests := []struct {
		name      string
		mutate    func(d *Document)
		wantField string
	}{
		{"zero total", func(d *Document) { d.Subscriber.TotalUEs = 0 }, "totalUEs"},
		{"sum exceeds total", func(d *Document) { d.Subscriber.Ranges[0].NumberOfUEs = 2 }, "ranges"},
		{"zero UEs", func(d *Document) { d.Subscriber.Ranges[0].NumberOfUEs = 0 }, "ranges[0].numberOfUEs"},
		{"missing serving cell", func(d *Document) { d.Subscriber.Ranges[0].ServingCell = "" }, "ranges[0].servingCell"},
		{"missing supi", func(d *Document) { d.Subscriber.Ranges[0].StartingSUPI = "" }, "ranges[0].startingSUPI"},
		{"short supi", func(d *Document) { d.Subscriber.Ranges[0].StartingSUPI = "12345" }, "ranges[0].startingSUPI"},
		{"bad key", func(d *Document) { d.Subscriber.Ranges[0].SharedKey = "zz" }, "ranges[0].sharedKey"},
		{"bad mnc", func(d *Document) { d.Subscriber.Ranges[0].MNCDigits = "4" }, "ranges[0].mncDigits"},
		{"overlapping windows", func(d *Document) {
			d.Subscriber.TotalUEs = 10
			d.Subscriber.Ranges[0].NumberOfUEs = 5
			d.Subscriber.Ranges = append(d.Subscriber.Ranges,
				DefaultRange("range2", "cell1", "001010123456003"))
		}, "ranges[1].startingSUPI"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := validDocument()
			tt.mutate(&doc)
			assertHasField(t, CheckSection(doc, SectionSubscriber), tt.wantField)
		})
	}
}

func TestCheckSection_SubscriberAdjacentWindows(t *testing.T) {
	doc := validDocument()
	doc.Subscriber.TotalUEs = 3
	doc.Subscriber.Ranges[0].NumberOfUEs = 2
	doc.Subscriber.Ranges = append(doc.Subscriber.Ranges,
		DefaultRange("range2", "cell1", "001010123456003"))

	if errs := CheckSection(doc, SectionSubscriber); len(errs) != 0 {
		t.Errorf("CheckSection() = %v, want none", errs)
	}
}

func TestCheckSection_UserPlane(t *testing.T) {
	tests := []struct {
		name      string
		mutate    func(p *UserPlaneProfile)
		wantField string
	}{
		{"no target", func(p *UserPlaneProfile) { p.Target = RangeRef{} }, "profiles[0].subscriberRange"},
		{"no payload", func(p *UserPlaneProfile) { p.Payload = nil }, "profiles[0].dataType"},
		{"iperf without protocol", func(p *UserPlaneProfile) { p.Payload = RawThroughput{} }, "profiles[0].transportProtocol"},
		{"voice without call type", func(p *UserPlaneProfile) { p.Payload = VoiceCall{} }, "profiles[0].callType"},
		{"missing port", func(p *UserPlaneProfile) { p.StartingPort = "" }, "profiles[0].startingPort"},
		{"port out of range", func(p *UserPlaneProfile) { p.StartingPort = "70000" }, "profiles[0].startingPort"},
		{"missing start delay", func(p *UserPlaneProfile) { p.StartDelay = "" }, "profiles[0].startDelay"},
		{"missing duration", func(p *UserPlaneProfile) { p.Duration = "" }, "profiles[0].duration"},
		{"missing direction", func(p *UserPlaneProfile) { p.Direction = "" }, "profiles[0].dataDirection"},
		{"both without uplink", func(p *UserPlaneProfile) { p.Uplink = nil }, "profiles[0].ulBitrate"},
		{"both without dl unit", func(p *UserPlaneProfile) { p.Downlink.Unit = "" }, "profiles[0].dlBitrateUnit"},
		{"uplink without uplink", func(p *UserPlaneProfile) {
			p.SetDirection(DirectionUplink)
			p.Uplink = nil
		}, "profiles[0].ulBitrate"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := validDocument()
			tt.mutate(&doc.UserPlane.Profiles[0])
			assertHasField(t, CheckSection(doc, SectionUserPlane), tt.wantField)
		})
	}
}

func TestCheckSection_UserPlaneDirectionGating(t *testing.T) {
	doc := validDocument()
	doc.UserPlane.Profiles[0].SetDirection(DirectionDownlink)

	if errs := CheckSection(doc, SectionUserPlane); len(errs) != 0 {
		t.Errorf("downlink-only profile: CheckSection() = %v, want none", errs)
	}

	doc.UserPlane.Profiles[0].SetDirection(DirectionBoth)
	if SectionValid(doc, SectionUserPlane) {
		t.Error("Both after Downlink should require uplink bitrate again")
	}
}

func TestCheckSection_UserPlaneSingleWithTwoProfiles(t *testing.T) {
	doc := validDocument()
	doc.UserPlane.Profiles = append(doc.UserPlane.Profiles, DefaultProfile("profile2", AllRanges()))

	assertHasField(t, CheckSection(doc, SectionUserPlane), "profiles")

	doc.UserPlane.ProfileType = ProfileMixed
	if errs := CheckSection(doc, SectionUserPlane); len(errs) != 0 {
		t.Errorf("mixed profiles: CheckSection() = %v, want none", errs)
	}
}

func TestCheckSection_Traffic(t *testing.T) {
	doc := validDocument()
	doc.Traffic.AttachType = AttachStaggered
	doc.Traffic.StaggerTime = ""
	assertHasField(t, CheckSection(doc, SectionTraffic), "staggerTime")

	doc.Traffic.AttachType = AttachBursty
	if errs := CheckSection(doc, SectionTraffic); len(errs) != 0 {
		t.Errorf("bursty without stagger time: CheckSection() = %v, want none", errs)
	}

	doc.Traffic.AttachRate = "fast"
	assertHasField(t, CheckSection(doc, SectionTraffic), "attachRate")

	doc = validDocument()
	doc.Traffic.ProfileRange = RangeRef{}
	assertHasField(t, CheckSection(doc, SectionTraffic), "profileRange")
}

func TestCheckSection_MobilityDisabledAlwaysValid(t *testing.T) {
	doc := validDocument()
	doc.Mobility = MobilitySection{}

	if !SectionValid(doc, SectionMobility) {
		t.Error("mobility off: SectionValid() = false, want true")
	}

	doc.Cell.Mobility = true
	errs := CheckSection(doc, SectionMobility)
	assertHasField(t, errs, "ueGroup")
	assertHasField(t, errs, "tripType")
	assertHasField(t, errs, "delay")
	assertHasField(t, errs, "duration")
}

func TestCheckSection_DoesNotMutate(t *testing.T) {
	doc := Default()
	doc.Cell.Cells[0].DLEarfcn = ""
	before := doc.Clone()

	for _, s := range Sections {
		CheckSection(doc, s)
	}

	if doc.Cell.Cells[0].DLEarfcn != before.Cell.Cells[0].DLEarfcn {
		t.Error("CheckSection() modified the document")
	}
}

func TestCheckDocument(t *testing.T) {
	problems := CheckDocument(Default())
	if len(problems) != 1 {
		t.Fatalf("CheckDocument(default) reported %d sections, want 1", len(problems))
	}
	if _, ok := problems[SectionSettings]; !ok {
		t.Errorf("CheckDocument(default) = %v, want settings only", problems)
	}
}

func TestFormatValidationErrors(t *testing.T) {
	if got := FormatValidationErrors(nil); got != "No validation errors" {
		t.Errorf("FormatValidationErrors(nil) = %q", got)
	}

	errs := CheckSection(Default(), SectionSettings)
	got := FormatValidationErrors(errs)
	if !strings.Contains(got, "1 error(s)") || !strings.Contains(got, "testCaseName") {
		t.Errorf("FormatValidationErrors() = %q", got)
	}
}

func assertHasField(t *testing.T, errs []error, field string) {
	t.Helper()
	for _, err := range errs {
		e, ok := err.(*Error)
		if !ok {
			t.Fatalf("unexpected error type %T", err)
		}
		if e.Type != ErrTypeValidation {
			t.Errorf("error type = %v, want %v", e.Type, ErrTypeValidation)
		}
		if e.Field == field {
			return
		}
	}
	t.Errorf("no validation error for field %q in %v", field, errs)
}
