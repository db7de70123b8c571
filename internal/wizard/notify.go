package wizard

// Notifier receives transient success feedback. The TUI renders it as a
// toast; the CLI prints it.
type Notifier interface {
	Success(msg string)
}

// NotifierFunc adapts a function to Notifier.
type NotifierFunc func(msg string)

// Success calls f(msg).
func (f NotifierFunc) Success(msg string) { f(msg) }

// NopNotifier drops every message.
type NopNotifier struct{}

// Success does nothing.
func (NopNotifier) Success(string) {}
