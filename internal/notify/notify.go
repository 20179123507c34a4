// Package notify carries user-facing toast notifications out of the
// stores. The sink is fire-and-forget; stores never wait on it.
package notify

import "log"

// Severity distinguishes routine confirmations from failures the user
// should act on.
type Severity string

const (
	SeverityInfo        Severity = "info"
	SeverityDestructive Severity = "destructive"
)

// Notification is a single toast.
type Notification struct {
	Title       string
	Description string
	Severity    Severity
}

// Notifier receives notifications. Implementations must not block.
type Notifier interface {
	Notify(n Notification)
}

// Info builds a routine notification.
func Info(title, description string) Notification {
	return Notification{Title: title, Description: description, Severity: SeverityInfo}
}

// Destructive builds a failure notification.
func Destructive(title, description string) Notification {
	return Notification{Title: title, Description: description, Severity: SeverityDestructive}
}

// Logger writes notifications to the process log. It is the default
// sink for the demo binary.
type Logger struct{}

func (Logger) Notify(n Notification) {
	log.Printf("[Notify] %s: %s (%s)", n.Title, n.Description, n.Severity)
}
