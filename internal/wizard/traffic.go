package wizard

import (
	"strings"

	"github.com/muurk/netscen/internal/scenario"
)

// TrafficController edits the attach profile.
type TrafficController struct {
	store DocumentStore
}

func NewTrafficController(store DocumentStore) *TrafficController {
	return &TrafficController{store: store}
}

func (c *TrafficController) Data() scenario.TrafficSection {
	return c.store.Document().Traffic
}

func (c *TrafficController) SetProfileRange(ref scenario.RangeRef) {
	c.store.Update(scenario.TrafficPatch{ProfileRange: &ref})
}

func (c *TrafficController) SetAttachType(t scenario.AttachType) {
	c.store.Update(scenario.TrafficPatch{AttachType: &t})
}

func (c *TrafficController) SetAttachRate(v string) {
	c.store.Update(scenario.TrafficPatch{AttachRate: trimmed(v)})
}

func (c *TrafficController) SetAttachDelay(v string) {
	c.store.Update(scenario.TrafficPatch{AttachDelay: trimmed(v)})
}

func (c *TrafficController) SetPowerOnDuration(v string) {
	c.store.Update(scenario.TrafficPatch{PowerOnDuration: trimmed(v)})
}

// SetStaggerTime sets the stagger interval, which only matters for a
// staggered attach.
func (c *TrafficController) SetStaggerTime(v string) {
	c.store.Update(scenario.TrafficPatch{StaggerTime: trimmed(v)})
}

// Staggered reports whether the stagger time field applies.
func (c *TrafficController) Staggered() bool {
	return c.Data().AttachType == scenario.AttachStaggered
}

func (c *TrafficController) RangeOptions() []RangeOption {
	return RangeOptions(c.store.Document())
}

func (c *TrafficController) Validate() bool {
	return scenario.SectionValid(c.store.Document(), scenario.SectionTraffic)
}

func trimmed(v string) *string {
	return scenario.Ptr(strings.TrimSpace(v))
}
