// Package wizard drives the six-step scenario wizard.
//
// A Session owns the scenario document and the step cursor and implements
// the navigation transitions:
//
//   - Advance validates the current section, persists the document and moves
//     forward, or submits on the last section.
//   - Retreat persists and moves back without validating.
//   - Jump moves the cursor directly, without validating or persisting.
//   - Submit persists and signals completion; it may be repeated.
//   - Reset clears the stored record and restores the defaults.
//
// Each section has a controller (CellController, SubscriberController, ...)
// that reads the document through the DocumentStore interface and writes
// back through section patches. Controllers also carry the derived-field
// rules, for example re-deriving channel numbers when a band changes or
// seeding the SUPI of a new subscriber range.
//
// Persistence is a full snapshot written to a storage.KV after every
// confirmed transition. Write failures are logged and otherwise ignored.
//
// # Usage Example
//
//	kv := storage.NewMemoryKV()
//	s := wizard.NewSession(kv, "networkScenarioData", nil)
//	cells := wizard.NewCellController(s)
//	cells.SetRatType(scenario.Rat5GNSA)
//	if s.Advance() == wizard.Blocked {
//	    // fix the cell section first
//	}
package wizard
