package session

// Kind classifies a notification for presentation.
type Kind string

// Notification kinds
const (
	KindInfo    Kind = "info"
	KindSuccess Kind = "success"
	KindError   Kind = "error"
)

// Notifier surfaces session lifecycle events to the user. The session
// layer announces what happened; how it is rendered (styled terminal
// output, TUI status bar) is the caller's concern.
type Notifier interface {
	Notify(kind Kind, message string)
}

// NopNotifier discards all notifications.
type NopNotifier struct{}

// Notify implements Notifier.
func (NopNotifier) Notify(Kind, string) {}
