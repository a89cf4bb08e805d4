// Package notify defines the user-facing notification types shared by the
// terminal UI and the CLI.
package notify

import "time"

// Level represents the severity of a notification.
type Level string

const (
	LevelInfo    Level = "info"
	LevelSuccess Level = "success"
	LevelWarning Level = "warning"
	LevelError   Level = "error"
)

// Notification represents a single notification event.
type Notification struct {
	Level   Level
	Message string
	// Duration is how long the notification stays visible. Zero means the
	// sink's default.
	Duration  time.Duration
	CreatedAt time.Time
}

// Publisher is a fire-and-forget sink for notifications.
type Publisher interface {
	Publish(n Notification)
}

// PublisherFunc adapts a function to the Publisher interface.
type PublisherFunc func(Notification)

func (f PublisherFunc) Publish(n Notification) { f(n) }

// Discard is a Publisher that drops every notification.
var Discard Publisher = PublisherFunc(func(Notification) {})
