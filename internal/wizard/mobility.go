package wizard

import "github.com/muurk/netscen/internal/scenario"

// MobilityController edits the mobility profile. The profile is only in use
// when the cell section has mobility switched on.
type MobilityController struct {
	store DocumentStore
}

func NewMobilityController(store DocumentStore) *MobilityController {
	return &MobilityController{store: store}
}

func (c *MobilityController) Data() scenario.MobilitySection {
	return c.store.Document().Mobility
}

// Enabled reports whether the cell section has mobility switched on.
func (c *MobilityController) Enabled() bool {
	return c.store.Document().Cell.Mobility
}

func (c *MobilityController) SetUEGroup(ref scenario.RangeRef) {
	c.store.Update(scenario.MobilityPatch{UEGroup: &ref})
}

func (c *MobilityController) SetTripType(t scenario.TripType) {
	c.store.Update(scenario.MobilityPatch{TripType: &t})
}

func (c *MobilityController) SetDelay(v string) {
	c.store.Update(scenario.MobilityPatch{Delay: trimmed(v)})
}

func (c *MobilityController) SetDuration(v string) {
	c.store.Update(scenario.MobilityPatch{Duration: trimmed(v)})
}

func (c *MobilityController) SetWaitTime(v string) {
	c.store.Update(scenario.MobilityPatch{WaitTime: trimmed(v)})
}

func (c *MobilityController) RangeOptions() []RangeOption {
	return RangeOptions(c.store.Document())
}

// Validate always passes while mobility is switched off.
func (c *MobilityController) Validate() bool {
	return scenario.SectionValid(c.store.Document(), scenario.SectionMobility)
}
