package wizard

import (
	"strings"

	"go.uber.org/zap"

	"github.com/muurk/netscen/internal/logging"
	"github.com/muurk/netscen/internal/scenario"
)

// SubscriberController edits the subscriber section.
type SubscriberController struct {
	store DocumentStore
}

func NewSubscriberController(store DocumentStore) *SubscriberController {
	return &SubscriberController{store: store}
}

// Data returns the current subscriber section.
func (c *SubscriberController) Data() scenario.SubscriberSection {
	return c.store.Document().Subscriber
}

func (c *SubscriberController) SetTotalUEs(n int) {
	c.store.Update(scenario.SubscriberPatch{TotalUEs: &n})
}

func (c *SubscriberController) SetNumberOfUEs(i, n int) bool {
	return c.updateRange(i, func(r *scenario.SubscriberRange) { r.NumberOfUEs = n })
}

func (c *SubscriberController) SetServingCell(i int, cellID string) bool {
	return c.updateRange(i, func(r *scenario.SubscriberRange) { r.ServingCell = cellID })
}

func (c *SubscriberController) SetStartingSUPI(i int, supi string) bool {
	return c.updateRange(i, func(r *scenario.SubscriberRange) { r.StartingSUPI = strings.TrimSpace(supi) })
}

func (c *SubscriberController) SetSharedKey(i int, key string) bool {
	return c.updateRange(i, func(r *scenario.SubscriberRange) { r.SharedKey = strings.TrimSpace(key) })
}

func (c *SubscriberController) SetMNCDigits(i int, digits string) bool {
	return c.updateRange(i, func(r *scenario.SubscriberRange) { r.MNCDigits = digits })
}

// CanAddRange reports whether another range may be added: there must be
// fewer ranges than devices.
func (c *SubscriberController) CanAddRange() bool {
	sub := c.Data()
	return len(sub.Ranges) < sub.TotalUEs
}

// AddRange appends a range whose SUPI window starts right after the last
// range's window. The new range is served by the first range's cell. If the
// last range's SUPI cannot be parsed the new range starts with an empty
// SUPI for the user to fill in.
func (c *SubscriberController) AddRange() bool {
	if !c.CanAddRange() {
		return false
	}
	ranges := c.Data().Ranges

	var servingCell, supi string
	if len(ranges) > 0 {
		last := ranges[len(ranges)-1]
		servingCell = ranges[0].ServingCell
		next, err := scenario.NextSUPI(last.StartingSUPI, last.NumberOfUEs)
		if err != nil {
			logging.Debug("Cannot seed starting SUPI for new range",
				zap.String("after", last.ID),
				zap.Error(err),
			)
		}
		supi = next
	} else {
		servingCell = scenario.CellID(0)
		supi = scenario.DefaultStartingSUPI
	}

	ranges = append(ranges, scenario.DefaultRange(scenario.RangeID(len(ranges)), servingCell, supi))
	c.store.Update(scenario.SubscriberPatch{Ranges: ranges})
	return true
}

// CellOptions lists the cells a range can be served by.
func (c *SubscriberController) CellOptions() []Option {
	return CellOptions(c.store.Document())
}

func (c *SubscriberController) Validate() bool {
	return scenario.SectionValid(c.store.Document(), scenario.SectionSubscriber)
}

func (c *SubscriberController) updateRange(i int, fn func(*scenario.SubscriberRange)) bool {
	ranges := c.Data().Ranges
	if i < 0 || i >= len(ranges) {
		return false
	}
	fn(&ranges[i])
	c.store.Update(scenario.SubscriberPatch{Ranges: ranges})
	return true
}
