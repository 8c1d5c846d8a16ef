package toast

import "time"

// Input is anything that can be turned into a queued message. It is a closed
// set: Text and Record.
type Input interface {
	record() Record
}

// Text is a bare message string. It is shown as a success toast with the
// fallback duration.
type Text string

func (t Text) record() Record {
	return Record{Text: string(t)}
}

// Record is a fully described message request.
type Record struct {
	Kind     Kind
	Text     string
	Duration time.Duration
}

func (r Record) record() Record {
	return r
}

// Normalize converts any Input into a Record with a valid kind and a
// positive duration.
func Normalize(in Input) Record {
	if in == nil {
		return Record{Kind: KindSuccess, Duration: FallbackDuration}
	}

	r := in.record()
	if !r.Kind.IsValid() {
		r.Kind = KindSuccess
	}
	if r.Duration <= 0 {
		r.Duration = FallbackDuration
	}
	return r
}
