package wizard

import (
	"fmt"
	"strings"

	"github.com/muurk/netscen/internal/scenario"
)

// RangeOption is one entry of a subscriber-range picker.
type RangeOption struct {
	Label string
	Ref   scenario.RangeRef
}

// RangeOptions lists "Apply to All" followed by every subscriber range.
func RangeOptions(doc scenario.Document) []RangeOption {
	out := make([]RangeOption, 0, len(doc.Subscriber.Ranges)+1)
	out = append(out, RangeOption{Label: "Apply to All", Ref: scenario.AllRanges()})
	for _, r := range doc.Subscriber.Ranges {
		out = append(out, RangeOption{
			Label: fmt.Sprintf("Range #%s", strings.TrimPrefix(r.ID, "range")),
			Ref:   scenario.SpecificRange(r.ID),
		})
	}
	return out
}

// UserPlaneController edits the user-plane section.
type UserPlaneController struct {
	store DocumentStore
}

func NewUserPlaneController(store DocumentStore) *UserPlaneController {
	return &UserPlaneController{store: store}
}

// Data returns the current user-plane section.
func (c *UserPlaneController) Data() scenario.UserPlaneSection {
	return c.store.Document().UserPlane
}

// SetProfileType switches between Single and Mixed. Switching to Single
// keeps only the first profile.
func (c *UserPlaneController) SetProfileType(pt scenario.ProfileType) {
	patch := scenario.UserPlanePatch{ProfileType: &pt}
	if pt == scenario.ProfileSingle {
		if profiles := c.Data().Profiles; len(profiles) > 1 {
			patch.Profiles = profiles[:1]
		}
	}
	c.store.Update(patch)
}

// CanAddProfile reports whether profiles can be added; only Mixed allows it.
func (c *UserPlaneController) CanAddProfile() bool {
	return c.Data().ProfileType == scenario.ProfileMixed
}

// AddProfile appends a default profile targeting the first range.
func (c *UserPlaneController) AddProfile() bool {
	if !c.CanAddProfile() {
		return false
	}
	profiles := c.Data().Profiles
	profiles = append(profiles, scenario.DefaultProfile(
		scenario.ProfileID(len(profiles)),
		scenario.SpecificRange(scenario.RangeID(0)),
	))
	c.store.Update(scenario.UserPlanePatch{Profiles: profiles})
	return true
}

func (c *UserPlaneController) SetTarget(i int, ref scenario.RangeRef) bool {
	return c.updateProfile(i, func(p *scenario.UserPlaneProfile) { p.Target = ref })
}

// SetDataType switches the payload variant and resets its secondary field:
// IPERF gets TCP, VOLTE/VILTE gets an audio call.
func (c *UserPlaneController) SetDataType(i int, dt scenario.DataType) bool {
	payload := scenario.DefaultPayload(dt)
	if payload == nil {
		return false
	}
	return c.updateProfile(i, func(p *scenario.UserPlaneProfile) { p.Payload = payload })
}

func (c *UserPlaneController) SetTransportProtocol(i int, proto scenario.TransportProtocol) bool {
	return c.updateProfile(i, func(p *scenario.UserPlaneProfile) {
		p.Payload = scenario.RawThroughput{Protocol: proto}
	})
}

func (c *UserPlaneController) SetCallType(i int, call scenario.CallType) bool {
	return c.updateProfile(i, func(p *scenario.UserPlaneProfile) {
		p.Payload = scenario.VoiceCall{Call: call}
	})
}

func (c *UserPlaneController) SetStartingPort(i int, v string) bool {
	return c.updateProfile(i, func(p *scenario.UserPlaneProfile) { p.StartingPort = strings.TrimSpace(v) })
}

func (c *UserPlaneController) SetAPNName(i int, v string) bool {
	return c.updateProfile(i, func(p *scenario.UserPlaneProfile) { p.APNName = strings.TrimSpace(v) })
}

func (c *UserPlaneController) SetStartDelay(i int, v string) bool {
	return c.updateProfile(i, func(p *scenario.UserPlaneProfile) { p.StartDelay = strings.TrimSpace(v) })
}

func (c *UserPlaneController) SetDuration(i int, v string) bool {
	return c.updateProfile(i, func(p *scenario.UserPlaneProfile) { p.Duration = strings.TrimSpace(v) })
}

// SetDirection changes the data direction. A single direction drops the
// opposite bitrate; widening back to Both does not bring it back.
func (c *UserPlaneController) SetDirection(i int, d scenario.Direction) bool {
	return c.updateProfile(i, func(p *scenario.UserPlaneProfile) { p.SetDirection(d) })
}

// SetDownlinkBitrate sets the downlink value. It fails when the profile's
// direction carries no downlink traffic.
func (c *UserPlaneController) SetDownlinkBitrate(i int, v string) bool {
	return c.updateBitrate(i, true, func(b *scenario.Bitrate) { b.Value = strings.TrimSpace(v) })
}

func (c *UserPlaneController) SetDownlinkUnit(i int, u scenario.BitrateUnit) bool {
	return c.updateBitrate(i, true, func(b *scenario.Bitrate) { b.Unit = u })
}

func (c *UserPlaneController) SetUplinkBitrate(i int, v string) bool {
	return c.updateBitrate(i, false, func(b *scenario.Bitrate) { b.Value = strings.TrimSpace(v) })
}

func (c *UserPlaneController) SetUplinkUnit(i int, u scenario.BitrateUnit) bool {
	return c.updateBitrate(i, false, func(b *scenario.Bitrate) { b.Unit = u })
}

// RangeOptions lists the ranges a profile can target.
func (c *UserPlaneController) RangeOptions() []RangeOption {
	return RangeOptions(c.store.Document())
}

func (c *UserPlaneController) Validate() bool {
	return scenario.SectionValid(c.store.Document(), scenario.SectionUserPlane)
}

func (c *UserPlaneController) updateBitrate(i int, downlink bool, fn func(*scenario.Bitrate)) bool {
	profiles := c.Data().Profiles
	if i < 0 || i >= len(profiles) {
		return false
	}
	p := &profiles[i]

	slot := &p.Uplink
	carried := p.Direction.NeedsUplink()
	if downlink {
		slot = &p.Downlink
		carried = p.Direction.NeedsDownlink()
	}
	if !carried {
		return false
	}
	if *slot == nil {
		*slot = &scenario.Bitrate{}
	}
	fn(*slot)

	c.store.Update(scenario.UserPlanePatch{Profiles: profiles})
	return true
}

func (c *UserPlaneController) updateProfile(i int, fn func(*scenario.UserPlaneProfile)) bool {
	profiles := c.Data().Profiles
	if i < 0 || i >= len(profiles) {
		return false
	}
	fn(&profiles[i])
	c.store.Update(scenario.UserPlanePatch{Profiles: profiles})
	return true
}
