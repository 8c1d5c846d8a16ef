// Package notify is the application-facing hook for raising toasts.
package notify

import (
	"fmt"
	"sync"
	"time"

	"github.com/colonyops/toast/internal/core/toast"
)

// Subscriber is a callback invoked when a toast is published.
type Subscriber func(toast.Input)

// Bus dispatches toast requests to subscribers. The usual subscriber is a
// Buffer that carries them into the Bubble Tea loop. Bus is safe for
// concurrent use.
type Bus struct {
	mu          sync.Mutex
	subscribers []Subscriber
	duration    time.Duration
}

// NewBus creates a bus whose Success and Error use duration. A non-positive
// duration means toast.DefaultDuration.
func NewBus(duration time.Duration) *Bus {
	if duration <= 0 {
		duration = toast.DefaultDuration
	}
	return &Bus{duration: duration}
}

// Subscribe registers a callback that will be invoked on every Publish.
func (b *Bus) Subscribe(fn Subscriber) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.subscribers = append(b.subscribers, fn)
}

// Publish dispatches in to all subscribers. Inputs are normalized later, by
// the store, so any toast.Input is accepted as is.
func (b *Bus) Publish(in toast.Input) {
	b.mu.Lock()
	subs := make([]Subscriber, len(b.subscribers))
	copy(subs, b.subscribers)
	b.mu.Unlock()

	for _, fn := range subs {
		fn(in)
	}
}

// Success shows a success toast for the default duration.
func (b *Bus) Success(text string) {
	b.SuccessFor(text, b.duration)
}

// Error shows an error toast for the default duration.
func (b *Bus) Error(text string) {
	b.ErrorFor(text, b.duration)
}

// SuccessFor shows a success toast for d.
func (b *Bus) SuccessFor(text string, d time.Duration) {
	b.Publish(toast.Record{Kind: toast.KindSuccess, Text: text, Duration: d})
}

// ErrorFor shows an error toast for d.
func (b *Bus) ErrorFor(text string, d time.Duration) {
	b.Publish(toast.Record{Kind: toast.KindError, Text: text, Duration: d})
}

// Successf formats and shows a success toast.
func (b *Bus) Successf(format string, args ...any) {
	b.Success(fmt.Sprintf(format, args...))
}

// Errorf formats and shows an error toast.
func (b *Bus) Errorf(format string, args ...any) {
	b.Error(fmt.Sprintf(format, args...))
}

// Duration returns the default duration used by Success and Error.
func (b *Bus) Duration() time.Duration {
	return b.duration
}
