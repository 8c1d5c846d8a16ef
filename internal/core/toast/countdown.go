package toast

import "time"

// State is a countdown's lifecycle stage.
type State int

const (
	StatePending   State = iota // entrance transition, countdown not started
	StateRunning                // counting down
	StatePaused                 // frozen by a hold
	StateCompleted              // expired or dismissed
)

func (s State) String() string {
	switch s {
	case StatePending:
		return "pending"
	case StateRunning:
		return "running"
	case StatePaused:
		return "paused"
	case StateCompleted:
		return "completed"
	default:
		return "unknown"
	}
}

// Countdown is the interruptible dismissal timer of one message. It does not
// schedule anything itself; callers pass the current time into every
// transition and schedule callbacks for Deadline.
//
// Transitions:
//
//	Pending -> Running      Start
//	Running -> Paused       Pause
//	Paused  -> Running      Resume
//	any     -> Completed    Complete
//
// A Pause while Pending is remembered as a hold, so Start lands in Paused and
// the countdown begins on Resume.
type Countdown struct {
	duration  time.Duration
	state     State
	elapsed   time.Duration // accumulated while running, excluding the current run
	resumedAt time.Time     // start of the current run
	held      bool
	gen       uint64
}

// NewCountdown returns a pending countdown for d. Non-positive durations
// complete as soon as they start.
func NewCountdown(d time.Duration) *Countdown {
	return &Countdown{duration: max(d, 0)}
}

// State returns the current lifecycle stage.
func (c *Countdown) State() State {
	return c.state
}

// Generation changes every time a new run begins. A scheduled expiry is
// valid only if it carries the generation current at scheduling time.
func (c *Countdown) Generation() uint64 {
	return c.gen
}

// Duration returns the full countdown length.
func (c *Countdown) Duration() time.Duration {
	return c.duration
}

// Start ends the entrance stage. It reports whether a new run began.
func (c *Countdown) Start(now time.Time) bool {
	if c.state != StatePending {
		return false
	}
	if c.held {
		c.held = false
		c.state = StatePaused
		return false
	}
	c.run(now)
	return true
}

// Pause freezes progress. Pausing a pending countdown defers its start until
// Resume. It reports whether the state changed.
func (c *Countdown) Pause(now time.Time) bool {
	switch c.state {
	case StatePending:
		if c.held {
			return false
		}
		c.held = true
		return true
	case StateRunning:
		c.elapsed = min(c.elapsed+max(now.Sub(c.resumedAt), 0), c.duration)
		c.state = StatePaused
		return true
	default:
		return false
	}
}

// Resume continues a paused countdown for its remaining time. On a pending
// countdown it only clears the hold. It reports whether a new run began.
func (c *Countdown) Resume(now time.Time) bool {
	switch c.state {
	case StatePending:
		c.held = false
		return false
	case StatePaused:
		c.run(now)
		return true
	default:
		return false
	}
}

// Complete moves the countdown to Completed. It reports whether this call
// made the transition, so removal happens once.
func (c *Countdown) Complete() bool {
	if c.state == StateCompleted {
		return false
	}
	c.state = StateCompleted
	c.held = false
	c.gen++
	return true
}

// Held reports whether a hold is waiting for the entrance stage to finish.
func (c *Countdown) Held() bool {
	return c.held
}

// Elapsed returns the counted time at now, clamped to the duration.
func (c *Countdown) Elapsed(now time.Time) time.Duration {
	switch c.state {
	case StateRunning:
		return min(c.elapsed+max(now.Sub(c.resumedAt), 0), c.duration)
	case StateCompleted:
		return c.duration
	default:
		return c.elapsed
	}
}

// Remaining returns the time left at now. Never negative.
func (c *Countdown) Remaining(now time.Time) time.Duration {
	return c.duration - c.Elapsed(now)
}

// Fraction returns elapsed/duration in [0, 1].
func (c *Countdown) Fraction(now time.Time) float64 {
	if c.duration == 0 {
		if c.state == StatePending {
			return 0
		}
		return 1
	}
	return float64(c.Elapsed(now)) / float64(c.duration)
}

// Expired reports whether a running countdown has no time left.
func (c *Countdown) Expired(now time.Time) bool {
	return c.state == StateRunning && c.Remaining(now) <= 0
}

// Deadline returns when the current run ends. ok is false unless running.
func (c *Countdown) Deadline() (deadline time.Time, ok bool) {
	if c.state != StateRunning {
		return time.Time{}, false
	}
	return c.resumedAt.Add(c.duration - c.elapsed), true
}

func (c *Countdown) run(now time.Time) {
	c.state = StateRunning
	c.resumedAt = now
	c.gen++
}
