package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/muurk/netscen/internal/scenario"
	"github.com/muurk/netscen/internal/storage"
	"github.com/muurk/netscen/internal/wizard"
)

// toastDuration is how long a save or submit toast stays visible.
const toastDuration = 3 * time.Second

// clearToastMsg hides the toast with the given id, unless a newer one replaced it.
type clearToastMsg struct {
	id int
}

// toastQueue collects notifications from the session between two updates.
type toastQueue struct {
	pending []string
}

func (q *toastQueue) Success(msg string) {
	q.pending = append(q.pending, msg)
}

func (q *toastQueue) drain() []string {
	out := q.pending
	q.pending = nil
	return out
}

// wizardKeyMap defines key bindings for the wizard screen
type wizardKeyMap struct {
	Up    key.Binding
	Down  key.Binding
	Left  key.Binding
	Right key.Binding
	Enter key.Binding
	Next  key.Binding
	Back  key.Binding
	Jump  key.Binding
	Add   key.Binding
	Reset key.Binding
	Help  key.Binding
	Quit  key.Binding
}

// ShortHelp returns keybindings to be shown in the mini help view
func (k wizardKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Enter, k.Next, k.Back, k.Help, k.Quit}
}

// FullHelp returns keybindings for the expanded help view
func (k wizardKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Left, k.Right, k.Enter},
		{k.Next, k.Back, k.Jump, k.Add},
		{k.Reset, k.Help, k.Quit},
	}
}

func newWizardKeyMap() wizardKeyMap {
	return wizardKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		Left: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←/h", "previous option"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("→/l", "next option"),
		),
		Enter: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter", "edit"),
		),
		Next: key.NewBinding(
			key.WithKeys("n", "tab"),
			key.WithHelp("n/tab", "next/create"),
		),
		Back: key.NewBinding(
			key.WithKeys("b", "shift+tab"),
			key.WithHelp("b", "back"),
		),
		Jump: key.NewBinding(
			key.WithKeys("1", "2", "3", "4", "5", "6"),
			key.WithHelp("1-6", "jump to step"),
		),
		Add: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "add entry"),
		),
		Reset: key.NewBinding(
			key.WithKeys("ctrl+r"),
			key.WithHelp("ctrl+r", "reset"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// AppModel is the wizard screen: step indicator, the form of the current
// section, and the navigation bar.
type AppModel struct {
	Session *wizard.Session
	toasts  *toastQueue
	ctl     controllers

	// Form state
	Fields  []field
	Cursor  int
	Editing bool
	Input   textinput.Model

	// Feedback
	Problems  []error // why the last Advance was blocked
	Toast     string
	toastID   int
	Submitted bool

	// Overlays
	ShowingHelp  bool
	ConfirmReset bool

	// UI state
	Width  int
	Height int

	Help help.Model
	Keys wizardKeyMap
}

// NewAppModel restores the session stored under key and builds the wizard.
func NewAppModel(kv storage.KV, key string) AppModel {
	toasts := &toastQueue{}
	session := wizard.NewSession(kv, key, toasts)

	input := textinput.New()
	input.CharLimit = 64
	input.Width = 40

	m := AppModel{
		Session: session,
		toasts:  toasts,
		ctl:     newControllers(session),
		Input:   input,
		Width:   100,
		Height:  40,
		Help:    help.New(),
		Keys:    newWizardKeyMap(),
	}
	m.refresh()
	return m
}

// Run starts the wizard on the terminal and blocks until the user quits.
func Run(kv storage.KV, key string) error {
	p := tea.NewProgram(NewAppModel(kv, key), tea.WithAltScreen())
	_, err := p.Run()
	return err
}

// Init initializes the wizard
func (m AppModel) Init() tea.Cmd {
	return nil
}

// Update handles messages and updates the model
func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.Height = msg.Height
		m.Help.Width = msg.Width
		return m, nil

	case clearToastMsg:
		if msg.id == m.toastID {
			m.Toast = ""
		}
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		switch {
		case m.ShowingHelp:
			m.ShowingHelp = false
			return m, nil
		case m.ConfirmReset:
			return m.updateConfirmReset(msg)
		case m.Editing:
			return m.updateEditor(msg)
		default:
			return m.updateNormalMode(msg)
		}
	}

	return m, nil
}

// updateNormalMode handles keys while no field is being edited
func (m AppModel) updateNormalMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.Keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.Keys.Help):
		m.ShowingHelp = true
		return m, nil

	case key.Matches(msg, m.Keys.Up):
		if len(m.Fields) > 0 {
			m.Cursor = (m.Cursor - 1 + len(m.Fields)) % len(m.Fields)
		}
		return m, nil

	case key.Matches(msg, m.Keys.Down):
		if len(m.Fields) > 0 {
			m.Cursor = (m.Cursor + 1) % len(m.Fields)
		}
		return m, nil

	case key.Matches(msg, m.Keys.Left):
		return m.cycle(-1)

	case key.Matches(msg, m.Keys.Right):
		return m.cycle(1)

	case key.Matches(msg, m.Keys.Enter):
		return m.activate()

	case key.Matches(msg, m.Keys.Next):
		return m.advance()

	case key.Matches(msg, m.Keys.Back):
		m.Problems = nil
		m.Session.Retreat()
		m.Cursor = 0
		return m.afterChange()

	case key.Matches(msg, m.Keys.Jump):
		step := int(msg.Runes[0] - '1')
		if m.Session.Jump(step) {
			m.Problems = nil
			m.Cursor = 0
		}
		return m.afterChange()

	case key.Matches(msg, m.Keys.Add):
		if m.ctl.add(m.Session.Section()) {
			m.refresh()
			m.Cursor = len(m.Fields) - 1
		}
		return m, nil

	case key.Matches(msg, m.Keys.Reset):
		m.ConfirmReset = true
		return m, nil
	}

	return m, nil
}

// updateEditor handles keys while a text field is open
func (m AppModel) updateEditor(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		if f, ok := m.current(); ok && f.set != nil {
			f.set(m.Input.Value())
		}
		m.Editing = false
		m.Input.Blur()
		return m.afterChange()

	case "esc":
		m.Editing = false
		m.Input.Blur()
		return m, nil
	}

	var cmd tea.Cmd
	m.Input, cmd = m.Input.Update(msg)
	return m, cmd
}

// updateConfirmReset handles the reset confirmation overlay
func (m AppModel) updateConfirmReset(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.ConfirmReset = false
	switch msg.String() {
	case "y", "Y":
		m.Session.Reset()
		m.Problems = nil
		m.Submitted = false
		m.Cursor = 0
		m.refresh()
		return m.showToast("Scenario reset to defaults")
	}
	return m, nil
}

// activate opens the focused field: text fields get the editor, choices
// move to the next option and actions run.
func (m AppModel) activate() (tea.Model, tea.Cmd) {
	f, ok := m.current()
	if !ok {
		return m, nil
	}
	switch f.kind {
	case fieldText:
		m.Editing = true
		m.Input.SetValue(f.value)
		m.Input.CursorEnd()
		return m, m.Input.Focus()
	case fieldChoice:
		return m.cycle(1)
	case fieldAction:
		f.action()
		return m.afterChange()
	}
	return m, nil
}

// cycle moves a choice field by delta options, wrapping around.
func (m AppModel) cycle(delta int) (tea.Model, tea.Cmd) {
	f, ok := m.current()
	if !ok || f.kind != fieldChoice || len(f.options) == 0 {
		return m, nil
	}
	next := 0
	if f.index >= 0 {
		next = (f.index + delta + len(f.options)) % len(f.options)
	}
	f.choose(next)
	return m.afterChange()
}

func (m AppModel) advance() (tea.Model, tea.Cmd) {
	sec := m.Session.Section()
	switch m.Session.Advance() {
	case wizard.Blocked:
		m.Problems = scenario.CheckSection(m.Session.Document(), sec)
		return m, nil
	case wizard.Submitted:
		m.Submitted = true
	case wizard.Advanced:
		m.Cursor = 0
	}
	m.Problems = nil
	return m.afterChange()
}

// afterChange rebuilds the form and shows any toast the session raised.
func (m AppModel) afterChange() (tea.Model, tea.Cmd) {
	m.refresh()
	msgs := m.toasts.drain()
	if len(msgs) == 0 {
		return m, nil
	}
	return m.showToast(msgs[len(msgs)-1])
}

func (m AppModel) showToast(text string) (tea.Model, tea.Cmd) {
	m.toastID++
	m.Toast = text
	id := m.toastID
	return m, tea.Tick(toastDuration, func(time.Time) tea.Msg {
		return clearToastMsg{id: id}
	})
}

func (m *AppModel) refresh() {
	m.Fields = m.ctl.fieldsFor(m.Session.Section())
	if m.Cursor >= len(m.Fields) {
		m.Cursor = len(m.Fields) - 1
	}
	if m.Cursor < 0 {
		m.Cursor = 0
	}
}

func (m AppModel) current() (field, bool) {
	if m.Cursor < 0 || m.Cursor >= len(m.Fields) {
		return field{}, false
	}
	return m.Fields[m.Cursor], true
}

// View renders the wizard
func (m AppModel) View() string {
	if m.ShowingHelp {
		return RenderModal(m.renderHelpContent(), m.Width, m.Height)
	}
	if m.ConfirmReset {
		return RenderModal(m.renderConfirmContent(), m.Width, m.Height)
	}
	return RenderApplicationContainer(m.buildContent(), m.Help.View(m.Keys), m.Width, m.Height)
}

func (m AppModel) buildContent() string {
	var b strings.Builder

	b.WriteString(renderStepper(m.Session.Steps()))
	b.WriteString("\n")

	sec := m.Session.Section()
	b.WriteString(RenderTitle(sectionTitle(sec)))
	b.WriteString("\n")

	if sec == scenario.SectionMobility && !m.ctl.mobility.Enabled() {
		b.WriteString(DisabledStyle.Render("Mobility is disabled in the Cell section; nothing to configure."))
		b.WriteString("\n")
	}

	for i, f := range m.Fields {
		if f.group != "" {
			b.WriteString(GroupHeaderStyle.Render(f.group))
			b.WriteString("\n")
		}
		b.WriteString(m.renderField(f, i == m.Cursor))
		b.WriteString("\n")
	}

	if len(m.Problems) > 0 {
		b.WriteString("\n")
		b.WriteString(RenderError(scenario.FormatValidationErrors(m.Problems)))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.renderNavigation())

	if m.Toast != "" {
		b.WriteString("\n\n")
		b.WriteString(RenderSuccess(m.Toast))
	}

	return b.String()
}

func (m AppModel) renderField(f field, selected bool) string {
	if f.kind == fieldAction {
		return RenderMenuItem(f.label, selected)
	}

	value := f.value
	switch {
	case selected && m.Editing:
		value = InlineEditorStyle().Render(m.Input.View())
	case f.kind == fieldChoice:
		value = "‹ " + value + " ›"
	case value == "":
		value = BlurredInputStyle.Render("(empty)")
	}

	line := fmt.Sprintf("%-20s %s", f.label+":", value)
	if selected && !m.Editing {
		return SelectedMenuItemStyle.Render("→ ") + ExpandedFieldStyle().Render(line)
	}
	return RenderMenuItem(line, false)
}

func (m AppModel) renderNavigation() string {
	var parts []string
	if m.Session.Step() > scenario.FirstStep {
		parts = append(parts, "[b] Back")
	}
	if m.Session.IsLast() {
		parts = append(parts, "[n] Create")
	} else {
		parts = append(parts, "[n] Next")
	}
	nav := FocusedInputStyle.Render(strings.Join(parts, "   "))
	if m.Submitted {
		nav += "   " + SuccessBoxStyle.Render("submitted")
	}
	return nav
}

func (m AppModel) renderHelpContent() string {
	h := m.Help
	h.ShowAll = true

	var b strings.Builder
	b.WriteString(RenderTitle("Keyboard shortcuts"))
	b.WriteString("\n")
	b.WriteString(h.View(m.Keys))
	b.WriteString("\n\n")
	b.WriteString(RenderSubtitle("Jumping to a step skips validation; Next validates and saves."))
	b.WriteString("\n\n")
	b.WriteString(RenderHelp("Press any key to close"))
	return BoxStyle.Render(b.String())
}

func (m AppModel) renderConfirmContent() string {
	var b strings.Builder
	b.WriteString(WarningBoxStyle.Render("Reset the scenario?"))
	b.WriteString("\n\n")
	b.WriteString("The stored record is removed and every section returns to its defaults.\n\n")
	b.WriteString(RenderHelp("y - reset    any other key - cancel"))
	return BoxStyle.Render(b.String())
}

// renderStepper draws the step indicator.
func renderStepper(steps []wizard.Step) string {
	parts := make([]string, len(steps))
	for i, s := range steps {
		text := fmt.Sprintf("%d %s", s.Index+1, s.Label)
		switch s.Status {
		case wizard.StepCompleted:
			parts[i] = StepCompletedStyle.Render("✓ " + text)
		case wizard.StepActive:
			parts[i] = StepActiveStyle.Render(text)
		default:
			parts[i] = StepPendingStyle.Render(text)
		}
	}
	return strings.Join(parts, StepPendingStyle.Render(" ─ "))
}

func sectionTitle(sec scenario.Section) string {
	switch sec {
	case scenario.SectionCell:
		return "Cell Configuration"
	case scenario.SectionSubscriber:
		return "Subscriber Configuration"
	case scenario.SectionUserPlane:
		return "User Plane Configuration"
	case scenario.SectionTraffic:
		return "Traffic Profile"
	case scenario.SectionMobility:
		return "Mobility Profile"
	case scenario.SectionSettings:
		return "Test Settings"
	default:
		return sec.Label()
	}
}
