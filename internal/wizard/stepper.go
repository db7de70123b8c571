package wizard

import "github.com/muurk/netscen/internal/scenario"

// StepStatus is how a step indicator is drawn.
type StepStatus int

const (
	StepPending StepStatus = iota
	StepActive
	StepCompleted
)

func (s StepStatus) String() string {
	switch s {
	case StepActive:
		return "active"
	case StepCompleted:
		return "completed"
	default:
		return "pending"
	}
}

// Step is one entry of the step indicator.
type Step struct {
	Index   int
	Section scenario.Section
	Label   string
	Status  StepStatus
}

// Steps returns the step indicator for the current cursor. Every step
// before the cursor is completed, which is also true after a direct jump.
func (s *Session) Steps() []Step {
	return StepsAt(s.doc.CurrentStep)
}

// StepsAt returns the step indicator for cursor.
func StepsAt(cursor int) []Step {
	steps := make([]Step, len(scenario.Sections))
	for i, sec := range scenario.Sections {
		status := StepPending
		switch {
		case i < cursor:
			status = StepCompleted
		case i == cursor:
			status = StepActive
		}
		steps[i] = Step{
			Index:   i,
			Section: sec,
			Label:   sec.Label(),
			Status:  status,
		}
	}
	return steps
}
