package toast

import (
	"slices"
	"time"
)

// Store is the ordered collection of active messages, newest first.
//
// Store is not safe for concurrent use; it is owned by a single UI loop.
// Only the id sequence may be shared across goroutines.
type Store struct {
	messages []Message
	ids      *Sequence
	now      func() time.Time
}

// NewStore creates an empty store with its own id sequence. now stamps
// CreatedAt; nil means time.Now.
func NewStore(now func() time.Time) *Store {
	if now == nil {
		now = time.Now
	}
	return &Store{
		ids: &Sequence{},
		now: now,
	}
}

// Messages returns a copy of the queue, newest first.
func (s *Store) Messages() []Message {
	return slices.Clone(s.messages)
}

// Len returns the number of queued messages.
func (s *Store) Len() int {
	return len(s.messages)
}

// Get returns the message with the given id.
func (s *Store) Get(id ID) (Message, bool) {
	i := s.index(id)
	if i < 0 {
		return Message{}, false
	}
	return s.messages[i], true
}

// Enqueue normalizes in, assigns a fresh id and prepends the message.
func (s *Store) Enqueue(in Input) Message {
	r := Normalize(in)
	msg := Message{
		ID:        s.ids.Next(),
		Kind:      r.Kind,
		Text:      r.Text,
		Duration:  r.Duration,
		CreatedAt: s.now(),
	}

	s.messages = slices.Insert(s.messages, 0, msg)
	return msg
}

// Dismiss removes the message with the given id. It reports whether a
// message was removed; unknown ids are a no-op.
func (s *Store) Dismiss(id ID) bool {
	before := len(s.messages)
	s.Update(func(msgs []Message) []Message {
		return slices.DeleteFunc(msgs, func(m Message) bool { return m.ID == id })
	})
	return len(s.messages) != before
}

// Update replaces the queue with fn applied to a copy of it. Messages with a
// repeated id are dropped, keeping the first occurrence.
func (s *Store) Update(fn func([]Message) []Message) {
	next := fn(s.Messages())

	seen := make(map[ID]struct{}, len(next))
	out := next[:0]
	for _, m := range next {
		if _, dup := seen[m.ID]; dup {
			continue
		}
		seen[m.ID] = struct{}{}
		out = append(out, m)
	}
	s.messages = out
}

// Clear removes every message.
func (s *Store) Clear() {
	s.messages = nil
}

func (s *Store) index(id ID) int {
	return slices.IndexFunc(s.messages, func(m Message) bool { return m.ID == id })
}
