package scenario

import (
	"strings"
	"testing"
)

func TestDocument_Summary(t *testing.T) {
	doc := Default()
	if got, want := doc.Summary(), "(unnamed): 4G, 1 cell(s), 1 UE(s) in 1 range(s), 1 profile(s)"; got != want {
		t.Errorf("Summary() = %q, want %q", got, want)
	}

	doc.Settings.TestCaseName = "handover"
	doc.Cell = CellSection{RatType: Rat5GNSA, Cells: DefaultCells(Rat5GNSA)}
	if got := doc.Summary(); !strings.HasPrefix(got, "handover: 5G:NSA, 2 cell(s)") {
		t.Errorf("Summary() = %q", got)
	}
}

func TestDocument_FormatCompact(t *testing.T) {
	doc := Default()
	doc.Settings.TestCaseName = "smoke"
	doc.CurrentStep = int(SectionTraffic)

	got := doc.FormatCompact()
	for _, want := range []string{
		"smoke: 4G, 1 cell(s)",
		"Step:     4/6 (Traffic)\n",
		"Traffic:  Bursty to Apply to All\n",
		"Mobility: No\n",
		"Logging:  debug, success on new21\n",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("FormatCompact() missing %q:\n%s", want, got)
		}
	}
}

func TestDocument_FormatCell(t *testing.T) {
	tests := []struct {
		name    string
		rat     RatType
		want    []string
		wantSSB bool
	}{
		{"lte", Rat4G, []string{"RAT Type: 4G\n", "cell1  LTE FDD n1   DL 300     UL 18300"}, false},
		{"sa", Rat5GSA, []string{"RAT Type: 5G:SA\n", "cell1  5G  FDD n1   DL 42800", "SSB 39000"}, true},
		{"nsa", Rat5GNSA, []string{"cell1  4G  FDD", "cell2  5G  FDD"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := Default()
			doc.Cell = CellSection{RatType: tt.rat, Mobility: true, Cells: DefaultCells(tt.rat)}

			got := doc.FormatCell()
			if !strings.HasPrefix(got, "=== Cell ===\n") {
				t.Errorf("FormatCell() has no header:\n%s", got)
			}
			if !strings.Contains(got, "Mobility: Yes\n") {
				t.Errorf("FormatCell() missing the mobility flag:\n%s", got)
			}
			for _, want := range tt.want {
				if !strings.Contains(got, want) {
					t.Errorf("FormatCell() missing %q:\n%s", want, got)
				}
			}
			if strings.Contains(got, "SSB") != tt.wantSSB {
				t.Errorf("FormatCell() SSB shown = %v, want %v:\n%s", !tt.wantSSB, tt.wantSSB, got)
			}
		})
	}
}

func TestDocument_FormatSubscriber(t *testing.T) {
	got := Default().FormatSubscriber()
	for _, want := range []string{
		"=== Subscriber ===\n",
		"Total UEs: 1\n",
		"range1     1 UE(s) on cell1  SUPI 001010123456001 MNC 2 digit(s)\n",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("FormatSubscriber() missing %q:\n%s", want, got)
		}
	}
	if strings.Contains(got, DefaultSharedKey) {
		t.Error("FormatSubscriber() prints the shared key")
	}
}

func TestDocument_FormatUserPlane(t *testing.T) {
	tests := []struct {
		name      string
		direction Direction
		want      []string
		notWant   []string
	}{
		{"both", DirectionBoth, []string{"Both, DL 150 Mbps, UL 50 Mbps\n"}, nil},
		{"downlink", DirectionDownlink, []string{"Downlink, DL 150 Mbps\n"}, []string{", UL "}},
		{"uplink", DirectionUplink, []string{"Uplink, UL 50 Mbps\n"}, []string{", DL "}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := Default()
			doc.UserPlane.Profiles[0].SetDirection(tt.direction)

			got := doc.FormatUserPlane()
			if !strings.Contains(got, "profile1  -> range1       IPERF/TCP port 5000, delay 5s, duration 600s") {
				t.Errorf("FormatUserPlane() profile line:\n%s", got)
			}
			for _, want := range tt.want {
				if !strings.Contains(got, want) {
					t.Errorf("FormatUserPlane() missing %q:\n%s", want, got)
				}
			}
			for _, bad := range tt.notWant {
				if strings.Contains(got, bad) {
					t.Errorf("FormatUserPlane() contains %q:\n%s", bad, got)
				}
			}
		})
	}
}

func TestDocument_FormatUserPlane_VoiceAndAPN(t *testing.T) {
	doc := Default()
	doc.UserPlane.ProfileType = ProfileMixed
	voice := DefaultProfile(ProfileID(1), AllRanges())
	voice.Payload = VoiceCall{Call: CallAudio}
	voice.APNName = "ims"
	doc.UserPlane.Profiles = append(doc.UserPlane.Profiles, voice)

	got := doc.FormatUserPlane()
	for _, want := range []string{
		"Profile Type: Mixed\n",
		"profile2  -> Apply to All VOLTE/VILTE Audio",
		", APN ims\n",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("FormatUserPlane() missing %q:\n%s", want, got)
		}
	}
}

func TestDocument_FormatTraffic(t *testing.T) {
	doc := Default()
	if got := doc.FormatTraffic(); strings.Contains(got, "Stagger Time") {
		t.Errorf("bursty traffic shows a stagger time:\n%s", got)
	}

	doc.Traffic.AttachType = AttachStaggered
	doc.Traffic.StaggerTime = "3"
	got := doc.FormatTraffic()
	for _, want := range []string{
		"=== Traffic ===\n",
		"Attach Type:       Staggered\n",
		"Power On Duration: 605\n",
		"Stagger Time:      3\n",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("FormatTraffic() missing %q:\n%s", want, got)
		}
	}
}

func TestDocument_FormatMobility(t *testing.T) {
	doc := Default()
	if got, want := doc.FormatMobility(), "=== Mobility ===\nDisabled (cell mobility is off)\n"; got != want {
		t.Errorf("FormatMobility() = %q, want %q", got, want)
	}

	doc.Cell.Mobility = true
	got := doc.FormatMobility()
	for _, want := range []string{"UE Group:  Apply to All\n", "Trip Type: Bidirectional\n", "Wait Time: 0\n"} {
		if !strings.Contains(got, want) {
			t.Errorf("FormatMobility() missing %q:\n%s", want, got)
		}
	}
}

func TestDocument_FormatSettings(t *testing.T) {
	doc := Default()
	doc.Settings.TestCaseName = "smoke"
	doc.Settings.SuccessSettings = SuccessBler

	want := "=== Settings ===\n" +
		"Test Case Name:   smoke\n" +
		"Log Setting:      debug\n" +
		"Success Criteria: Bler Success\n"
	if got := doc.FormatSettings(); got != want {
		t.Errorf("FormatSettings() = %q, want %q", got, want)
	}
}

func TestDocument_FormatDetailed(t *testing.T) {
	got := Default().FormatDetailed()

	last := -1
	for _, header := range []string{"=== Cell ===", "=== Subscriber ===", "=== User Plane ===", "=== Traffic ===", "=== Mobility ===", "=== Settings ==="} {
		i := strings.Index(got, header)
		if i < 0 {
			t.Fatalf("FormatDetailed() missing %q", header)
		}
		if i < last {
			t.Errorf("%q is out of wizard order", header)
		}
		last = i
	}
}

func TestFormatPayload(t *testing.T) {
	tests := []struct {
		name    string
		payload DataPayload
		want    string
	}{
		{"iperf", RawThroughput{Protocol: ProtocolUDP}, "IPERF/UDP"},
		{"voice", VoiceCall{Call: CallVideo}, "VOLTE/VILTE Video"},
		{"nil", nil, "(no data type)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatPayload(tt.payload); got != tt.want {
				t.Errorf("FormatPayload() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestDocument_FormatUserPlane_NilPayload(t *testing.T) {
	doc := Default()
	doc.UserPlane.Profiles[0].Payload = nil

	if got := doc.FormatUserPlane(); !strings.Contains(got, "-> range1       (no data type) port 5000") {
		t.Errorf("FormatUserPlane() with no payload:\n%s", got)
	}
}
