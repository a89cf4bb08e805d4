package notify

import (
	"fmt"
	"sync"
	"time"

	"github.com/radxishan/digest/internal/core/notify"
)

// Subscriber is a callback invoked when a notification is published.
type Subscriber func(notify.Notification)

// Bus is a synchronous in-process notification bus. It dispatches
// notifications to subscribers inline. The Bus is safe for use from the
// Bubble Tea Update loop (single-threaded).
type Bus struct {
	subscribers []Subscriber
	mu          sync.Mutex
}

// NewBus creates an empty notification bus.
func NewBus() *Bus {
	return &Bus{}
}

// Subscribe registers a callback that will be invoked on every Publish.
func (b *Bus) Subscribe(fn Subscriber) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.subscribers = append(b.subscribers, fn)
}

// Publish dispatches a notification to all subscribers.
func (b *Bus) Publish(n notify.Notification) {
	if n.CreatedAt.IsZero() {
		n.CreatedAt = time.Now()
	}

	b.mu.Lock()
	subs := make([]Subscriber, len(b.subscribers))
	copy(subs, b.subscribers)
	b.mu.Unlock()

	for _, fn := range subs {
		fn(n)
	}
}

// Errorf publishes an error-level notification.
func (b *Bus) Errorf(format string, args ...any) {
	b.Publish(notify.Notification{
		Level:   notify.LevelError,
		Message: fmt.Sprintf(format, args...),
	})
}

// Warnf publishes a warning-level notification.
func (b *Bus) Warnf(format string, args ...any) {
	b.Publish(notify.Notification{
		Level:   notify.LevelWarning,
		Message: fmt.Sprintf(format, args...),
	})
}

// Infof publishes an info-level notification.
func (b *Bus) Infof(format string, args ...any) {
	b.Publish(notify.Notification{
		Level:   notify.LevelInfo,
		Message: fmt.Sprintf(format, args...),
	})
}

// Successf publishes a success-level notification.
func (b *Bus) Successf(format string, args ...any) {
	b.Publish(notify.Notification{
		Level:   notify.LevelSuccess,
		Message: fmt.Sprintf(format, args...),
	})
}
