package scenario

// Patch is a partial update of exactly one section. Nil fields are left
// untouched. A non-nil slice replaces the whole list, even when empty.
type Patch interface {
	Section() Section
	applyTo(d *Document)
}

// CellPatch updates the cell section.
type CellPatch struct {
	RatType  *RatType
	Mobility *bool
	Cells    []CellConfig
}

func (CellPatch) Section() Section { return SectionCell }

func (p CellPatch) applyTo(d *Document) {
	if p.RatType != nil {
		d.Cell.RatType = *p.RatType
	}
	if p.Mobility != nil {
		d.Cell.Mobility = *p.Mobility
	}
	if p.Cells != nil {
		d.Cell.Cells = cloneSlice(p.Cells)
	}
}

// SubscriberPatch updates the subscriber section.
type SubscriberPatch struct {
	TotalUEs *int
	Ranges   []SubscriberRange
}

func (SubscriberPatch) Section() Section { return SectionSubscriber }

func (p SubscriberPatch) applyTo(d *Document) {
	if p.TotalUEs != nil {
		d.Subscriber.TotalUEs = *p.TotalUEs
	}
	if p.Ranges != nil {
		d.Subscriber.Ranges = cloneSlice(p.Ranges)
	}
}

// UserPlanePatch updates the user-plane section.
type UserPlanePatch struct {
	ProfileType *ProfileType
	Profiles    []UserPlaneProfile
}

func (UserPlanePatch) Section() Section { return SectionUserPlane }

func (p UserPlanePatch) applyTo(d *Document) {
	if p.ProfileType != nil {
		d.UserPlane.ProfileType = *p.ProfileType
	}
	if p.Profiles != nil {
		d.UserPlane.Profiles = cloneProfiles(p.Profiles)
	}
}

// TrafficPatch updates the traffic section.
type TrafficPatch struct {
	ProfileRange    *RangeRef
	AttachType      *AttachType
	AttachRate      *string
	AttachDelay     *string
	PowerOnDuration *string
	StaggerTime     *string
}

func (TrafficPatch) Section() Section { return SectionTraffic }

func (p TrafficPatch) applyTo(d *Document) {
	t := &d.Traffic
	if p.ProfileRange != nil {
		t.ProfileRange = *p.ProfileRange
	}
	if p.AttachType != nil {
		t.AttachType = *p.AttachType
	}
	setIf(&t.AttachRate, p.AttachRate)
	setIf(&t.AttachDelay, p.AttachDelay)
	setIf(&t.PowerOnDuration, p.PowerOnDuration)
	setIf(&t.StaggerTime, p.StaggerTime)
}

// MobilityPatch updates the mobility section.
type MobilityPatch struct {
	UEGroup  *RangeRef
	TripType *TripType
	Delay    *string
	Duration *string
	WaitTime *string
}

func (MobilityPatch) Section() Section { return SectionMobility }

func (p MobilityPatch) applyTo(d *Document) {
	m := &d.Mobility
	if p.UEGroup != nil {
		m.UEGroup = *p.UEGroup
	}
	if p.TripType != nil {
		m.TripType = *p.TripType
	}
	setIf(&m.Delay, p.Delay)
	setIf(&m.Duration, p.Duration)
	setIf(&m.WaitTime, p.WaitTime)
}

// SettingsPatch updates the settings section.
type SettingsPatch struct {
	TestCaseName    *string
	LogSetting      *LogSetting
	SuccessSettings *SuccessCriteria
}

func (SettingsPatch) Section() Section { return SectionSettings }

func (p SettingsPatch) applyTo(d *Document) {
	s := &d.Settings
	setIf(&s.TestCaseName, p.TestCaseName)
	if p.LogSetting != nil {
		s.LogSetting = *p.LogSetting
	}
	if p.SuccessSettings != nil {
		s.SuccessSettings = *p.SuccessSettings
	}
}

func setIf(dst *string, v *string) {
	if v != nil {
		*dst = *v
	}
}

// ApplySectionUpdate merges p into the section it names and returns the new
// document. The input document is not modified and all other sections are
// carried over unchanged. Applying the same patch twice yields the same
// document as applying it once.
func ApplySectionUpdate(doc Document, p Patch) Document {
	out := doc.Clone()
	if p != nil {
		p.applyTo(&out)
	}
	return out
}
