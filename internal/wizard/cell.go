package wizard

import (
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/muurk/netscen/internal/bands"
	"github.com/muurk/netscen/internal/logging"
	"github.com/muurk/netscen/internal/scenario"
)

// Option is one entry of a picker: a display label and the stored value.
type Option struct {
	Label string
	Value string
}

// CellController edits the cell section.
type CellController struct {
	store DocumentStore
}

func NewCellController(store DocumentStore) *CellController {
	return &CellController{store: store}
}

// Data returns the current cell section.
func (c *CellController) Data() scenario.CellSection {
	return c.store.Document().Cell
}

// SetRatType replaces the whole cell list with the default set for rat.
// Any customised cells are discarded.
func (c *CellController) SetRatType(rat scenario.RatType) {
	c.store.Update(scenario.CellPatch{
		RatType: &rat,
		Cells:   scenario.DefaultCells(rat),
	})
}

func (c *CellController) SetMobility(enabled bool) {
	c.store.Update(scenario.CellPatch{Mobility: &enabled})
}

func (c *CellController) SetCellType(i int, tech bands.Technology) bool {
	return c.updateCell(i, func(cell *scenario.CellConfig) {
		cell.CellType = tech
	})
}

// SetDuplexMode switches the cell to mode, selects the first band of that
// mode's family and re-derives the channel numbers for it.
func (c *CellController) SetDuplexMode(i int, mode bands.DuplexMode) bool {
	return c.updateCell(i, func(cell *scenario.CellConfig) {
		cell.DuplexMode = mode
		if first, ok := bands.FirstBand(mode); ok {
			cell.Band = first
		}
		deriveChannels(cell)
	})
}

// SetBand selects a band and re-derives the channel numbers for the cell's
// duplex mode and technology.
func (c *CellController) SetBand(i int, band bands.Band) bool {
	return c.updateCell(i, func(cell *scenario.CellConfig) {
		cell.Band = band
		deriveChannels(cell)
	})
}

func (c *CellController) SetDLEarfcn(i int, v string) bool {
	return c.updateCell(i, func(cell *scenario.CellConfig) { cell.DLEarfcn = strings.TrimSpace(v) })
}

func (c *CellController) SetULEarfcn(i int, v string) bool {
	return c.updateCell(i, func(cell *scenario.CellConfig) { cell.ULEarfcn = strings.TrimSpace(v) })
}

func (c *CellController) SetSSBNrArfcn(i int, v string) bool {
	return c.updateCell(i, func(cell *scenario.CellConfig) { cell.SSBNrArfcn = strings.TrimSpace(v) })
}

// CanAddCell reports whether another cell may be added. 5G:NSA is capped at
// two cells.
func (c *CellController) CanAddCell() bool {
	cell := c.Data()
	return cell.RatType != scenario.Rat5GNSA || len(cell.Cells) < scenario.MaxNSACells
}

// AddCell appends a default LTE cell with the next sequential id.
func (c *CellController) AddCell() bool {
	if !c.CanAddCell() {
		return false
	}
	cells := c.Data().Cells
	cells = append(cells, scenario.DefaultLTECell(scenario.CellID(len(cells))))
	c.store.Update(scenario.CellPatch{Cells: cells})
	return true
}

// BandOptions lists the bands offered to cell i, which depend on its duplex
// mode.
func (c *CellController) BandOptions(i int) []bands.Band {
	cells := c.Data().Cells
	if i < 0 || i >= len(cells) {
		return nil
	}
	return bands.BandsFor(cells[i].DuplexMode)
}

// Validate reports whether the cell section may be left forward.
func (c *CellController) Validate() bool {
	return scenario.SectionValid(c.store.Document(), scenario.SectionCell)
}

func (c *CellController) updateCell(i int, fn func(*scenario.CellConfig)) bool {
	cells := c.Data().Cells
	if i < 0 || i >= len(cells) {
		return false
	}
	fn(&cells[i])
	c.store.Update(scenario.CellPatch{Cells: cells})
	return true
}

// deriveChannels fills the channel numbers from the lookup tables. When the
// band has no entry the existing numbers are kept.
func deriveChannels(cell *scenario.CellConfig) {
	ch, ok := bands.Lookup(cell.Band, cell.DuplexMode, cell.CellType)
	if !ok {
		logging.Debug("No channel numbers for band, keeping current values",
			zap.String("cell", cell.ID),
			zap.Stringer("band", cell.Band),
			zap.String("duplex", string(cell.DuplexMode)),
			zap.String("tech", string(cell.CellType)),
		)
		return
	}
	cell.DLEarfcn = ch.DL
	cell.ULEarfcn = ch.UL
	if cell.CellType.IsNR() {
		cell.SSBNrArfcn = ch.SSB
	}
}

// CellOptions lists the cells a subscriber range can be served by.
func CellOptions(doc scenario.Document) []Option {
	out := make([]Option, len(doc.Cell.Cells))
	for i, cell := range doc.Cell.Cells {
		out[i] = Option{
			Label: fmt.Sprintf("Cell #%s", strings.TrimPrefix(cell.ID, "cell")),
			Value: cell.ID,
		}
	}
	return out
}
