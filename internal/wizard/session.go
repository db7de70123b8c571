package wizard

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/muurk/netscen/internal/logging"
	"github.com/muurk/netscen/internal/scenario"
	"github.com/muurk/netscen/internal/storage"
)

// SubmitMessage is the toast shown after a successful submission.
const SubmitMessage = "Network scenario configuration created successfully!"

// DocumentStore is the narrow view of the session that section controllers
// get. Reads always see the latest document; writes go through the section
// merge.
type DocumentStore interface {
	Document() scenario.Document
	Update(p scenario.Patch)
}

// Outcome is the result of an Advance request.
type Outcome int

const (
	// Blocked means the current section failed validation; nothing changed.
	Blocked Outcome = iota
	// Advanced means the document was persisted and the cursor moved forward.
	Advanced
	// Submitted means the last section was confirmed and the scenario submitted.
	Submitted
)

func (o Outcome) String() string {
	switch o {
	case Blocked:
		return "blocked"
	case Advanced:
		return "advanced"
	case Submitted:
		return "submitted"
	default:
		return fmt.Sprintf("Outcome(%d)", o)
	}
}

// Session owns the scenario document and the step cursor. It is the only
// writer of both; controllers reach it through DocumentStore.
//
// Session is not safe for concurrent use. The wizard drives it from a single
// event loop.
type Session struct {
	doc    scenario.Document
	kv     storage.KV
	key    string
	notify Notifier
}

// NewSession restores the document stored under key, or starts from the
// defaults when there is none. A record that cannot be read is replaced by
// the defaults and a record with missing sections is repaired; both cases
// are logged and never fail the session.
func NewSession(kv storage.KV, key string, notify Notifier) *Session {
	if notify == nil {
		notify = NopNotifier{}
	}
	s := &Session{
		doc:    scenario.Default(),
		kv:     kv,
		key:    key,
		notify: notify,
	}
	s.restore()
	return s
}

func (s *Session) restore() {
	raw, ok, err := s.kv.Get(s.key)
	if err != nil {
		logging.Warn("Failed to read stored scenario, starting from defaults",
			zap.String("key", s.key),
			zap.Error(err),
		)
		return
	}
	if !ok {
		logging.Debug("No stored scenario, starting from defaults", zap.String("key", s.key))
		return
	}

	doc, repaired, err := scenario.Decode([]byte(raw))
	if err != nil {
		logging.Warn("Stored scenario is unreadable, starting from defaults",
			zap.String("key", s.key),
			zap.Error(err),
		)
	}
	if len(repaired) > 0 && err == nil {
		names := make([]string, len(repaired))
		for i, sec := range repaired {
			names[i] = sec.String()
		}
		logging.Warn("Stored scenario was incomplete, defaults restored",
			zap.String("key", s.key),
			zap.Strings("sections", names),
		)
	}
	s.doc = doc
	logging.Info("Scenario restored",
		zap.String("key", s.key),
		zap.Int("step", s.doc.CurrentStep),
	)
}

// Document returns a copy of the current document.
func (s *Session) Document() scenario.Document {
	return s.doc.Clone()
}

// Update merges a section patch into the document.
func (s *Session) Update(p scenario.Patch) {
	s.doc = scenario.ApplySectionUpdate(s.doc, p)
}

// Step returns the cursor.
func (s *Session) Step() int {
	return s.doc.CurrentStep
}

// Section returns the section under the cursor.
func (s *Session) Section() scenario.Section {
	return scenario.Section(s.doc.CurrentStep)
}

// IsLast reports whether the cursor is on the final section.
func (s *Session) IsLast() bool {
	return s.doc.CurrentStep == scenario.LastStep
}

// Advance validates the current section. On success the document is
// persisted and the cursor moves forward, or, on the last section, the
// scenario is submitted. A failed validation changes nothing.
func (s *Session) Advance() Outcome {
	sec := s.Section()
	if problems := scenario.CheckSection(s.doc, sec); len(problems) > 0 {
		logging.LogValidation(sec.String(), problems)
		return Blocked
	}

	s.save(sec)

	if s.IsLast() {
		s.Submit()
		return Submitted
	}

	from := s.doc.CurrentStep
	s.doc.CurrentStep++
	logging.LogTransition("advance", from, s.doc.CurrentStep)
	return Advanced
}

// Retreat persists the document and moves the cursor back one step. It never
// validates and is a no-op on the first step.
func (s *Session) Retreat() bool {
	if s.doc.CurrentStep <= scenario.FirstStep {
		return false
	}

	s.save(s.Section())

	from := s.doc.CurrentStep
	s.doc.CurrentStep--
	logging.LogTransition("retreat", from, s.doc.CurrentStep)
	return true
}

// Jump moves the cursor to step without validating or persisting. Steps
// outside the wizard are ignored.
func (s *Session) Jump(step int) bool {
	if _, ok := scenario.SectionAt(step); !ok {
		return false
	}
	from := s.doc.CurrentStep
	s.doc.CurrentStep = step
	logging.LogTransition("jump", from, step)
	return true
}

// Submit persists the document and signals completion. It can be called any
// number of times and leaves the cursor where it is.
func (s *Session) Submit() {
	s.persist()
	logging.Info("Scenario submitted",
		zap.String("key", s.key),
		zap.String("test_case", s.doc.Settings.TestCaseName),
	)
	s.notify.Success(SubmitMessage)
}

// Reset removes the stored record and starts over from the defaults.
func (s *Session) Reset() {
	if err := s.kv.Remove(s.key); err != nil {
		logging.Warn("Failed to remove stored scenario",
			zap.String("key", s.key),
			zap.Error(err),
		)
	}
	s.doc = scenario.Default()
	logging.Info("Scenario reset", zap.String("key", s.key))
}

func (s *Session) save(sec scenario.Section) {
	s.persist()
	s.notify.Success(fmt.Sprintf("%s data saved successfully!", sec))
}

// persist writes a full snapshot of the document. Failures are logged and
// otherwise dropped; the in-memory document stays authoritative.
func (s *Session) persist() {
	data, err := scenario.Encode(s.doc)
	if err == nil {
		err = s.kv.Set(s.key, string(data))
	}
	logging.LogPersist(s.key, len(data), err)
}
