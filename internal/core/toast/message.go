// Package toast holds the display-independent core of the toast overlay:
// the message model, the newest-first queue store and the per-message
// dismissal countdown.
package toast

import (
	"strconv"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog"
)

// Kind is the visual category of a toast.
type Kind string

const (
	KindSuccess Kind = "success"
	KindError   Kind = "error"
)

// IsValid reports whether k is a known kind.
func (k Kind) IsValid() bool {
	return k == KindSuccess || k == KindError
}

const (
	// DefaultDuration is the hook's default visible lifetime.
	DefaultDuration = 4 * time.Second
	// FallbackDuration applies when an input carries no usable duration.
	FallbackDuration = 6 * time.Second
)

// ID identifies a message within a Store.
type ID uint64

func (id ID) String() string {
	return strconv.FormatUint(uint64(id), 10)
}

// Message is a single queued toast. Messages are values; the Store hands
// out copies.
type Message struct {
	ID        ID
	Kind      Kind
	Text      string
	Duration  time.Duration
	CreatedAt time.Time
}

// MarshalZerologObject implements zerolog.LogObjectMarshaler.
func (m Message) MarshalZerologObject(e *zerolog.Event) {
	e.Stringer("id", m.ID).
		Str("kind", string(m.Kind)).
		Dur("duration", m.Duration)
}

// Sequence generates unique, strictly increasing ids. Safe for concurrent use.
type Sequence struct {
	last atomic.Uint64
}

// Next returns the next id. The first id is 1.
func (s *Sequence) Next() ID {
	return ID(s.last.Add(1))
}
