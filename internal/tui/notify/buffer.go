package notify

import (
	"sync"

	tea "charm.land/bubbletea/v2"

	"github.com/colonyops/toast/internal/core/toast"
)

// DrainMsg tells the Update loop that buffered toasts are ready.
type DrainMsg struct{}

// Buffer buffers toast requests published from any goroutine and emits
// coalesced drain signals for the Update loop.
type Buffer struct {
	mu      sync.Mutex
	pending []toast.Input
	signal  chan struct{}
}

// NewBuffer constructs a buffer for async toast delivery.
func NewBuffer() *Buffer {
	return &Buffer{
		pending: make([]toast.Input, 0),
		signal:  make(chan struct{}, 1),
	}
}

// Push appends a request and emits a non-blocking drain signal. Its
// signature matches Subscriber so it can be passed to Bus.Subscribe.
func (b *Buffer) Push(in toast.Input) {
	b.mu.Lock()
	b.pending = append(b.pending, in)
	b.mu.Unlock()

	select {
	case b.signal <- struct{}{}:
	default:
	}
}

// Drain returns all buffered requests in publish order and clears the buffer.
func (b *Buffer) Drain() []toast.Input {
	b.mu.Lock()
	defer b.mu.Unlock()

	if len(b.pending) == 0 {
		return nil
	}

	out := make([]toast.Input, len(b.pending))
	copy(out, b.pending)
	b.pending = b.pending[:0]
	return out
}

// WaitForSignal blocks until there are requests ready to drain.
func (b *Buffer) WaitForSignal() tea.Cmd {
	return func() tea.Msg {
		<-b.signal
		return DrainMsg{}
	}
}
