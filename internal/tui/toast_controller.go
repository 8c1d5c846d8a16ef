package tui

import (
	"time"

	tea "charm.land/bubbletea/v2"
	"github.com/rs/zerolog"

	"github.com/colonyops/toast/internal/core/logging"
	"github.com/colonyops/toast/internal/core/toast"
)

const (
	defaultEntrance      = 400 * time.Millisecond
	defaultFrameInterval = 50 * time.Millisecond
)

// toastEnteredMsg ends the entrance stage of one toast.
type toastEnteredMsg struct {
	id toast.ID
}

// toastExpiredMsg fires when a countdown run should be over. gen ties it to
// the run that scheduled it.
type toastExpiredMsg struct {
	id  toast.ID
	gen uint64
}

// toastFrameMsg redraws progress indicators.
type toastFrameMsg struct{}

// Scheduler returns a command that delivers msg after d.
type Scheduler func(d time.Duration, msg tea.Msg) tea.Cmd

func tickScheduler(d time.Duration, msg tea.Msg) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg {
		return msg
	})
}

// ToastOptions configures a ToastController. Zero values select defaults.
type ToastOptions struct {
	Duration      time.Duration // used for records without a duration
	Entrance      time.Duration // negative disables the entrance stage
	FrameInterval time.Duration
	Now           func() time.Time
	Schedule      Scheduler
	Logger        *zerolog.Logger
}

// ToastController owns the toast queue and one countdown per message. It is
// the provider scope of the overlay: construct one per program, feed it
// messages from Update and call Close when the program ends.
//
// All methods must be called from the Bubble Tea Update goroutine.
type ToastController struct {
	store    *toast.Store
	timers   map[toast.ID]*toast.Countdown
	held     map[toast.ID]struct{}
	ticking  bool
	duration time.Duration
	entrance time.Duration
	frame    time.Duration
	now      func() time.Time
	schedule Scheduler
	log      zerolog.Logger
}

// NewToastController creates an empty controller, filling zero options with
// defaults.
func NewToastController(opts ToastOptions) *ToastController {
	c := &ToastController{
		timers:   make(map[toast.ID]*toast.Countdown),
		held:     make(map[toast.ID]struct{}),
		duration: opts.Duration,
		entrance: opts.Entrance,
		frame:    opts.FrameInterval,
		now:      opts.Now,
		schedule: opts.Schedule,
	}

	if c.duration <= 0 {
		c.duration = toast.DefaultDuration
	}
	if c.entrance == 0 {
		c.entrance = defaultEntrance
	}
	if c.frame <= 0 {
		c.frame = defaultFrameInterval
	}
	if c.now == nil {
		c.now = time.Now
	}
	if c.schedule == nil {
		c.schedule = tickScheduler
	}
	if opts.Logger != nil {
		c.log = *opts.Logger
	} else {
		c.log = logging.Component("toast")
	}

	c.store = toast.NewStore(c.now)
	return c
}

// Push enqueues a toast and starts its entrance stage.
func (c *ToastController) Push(in toast.Input) (toast.Message, tea.Cmd) {
	if r, ok := in.(toast.Record); ok && r.Duration == 0 {
		r.Duration = c.duration
		in = r
	}

	msg := c.store.Enqueue(in)
	c.timers[msg.ID] = toast.NewCountdown(msg.Duration)
	c.log.Debug().Object("toast", msg).Msg("toast pushed")

	var stage tea.Cmd
	if c.entrance > 0 {
		stage = c.schedule(c.entrance, toastEnteredMsg{id: msg.ID})
	} else {
		stage = c.start(msg.ID)
	}

	return msg, tea.Batch(stage, c.ensureTick())
}

// Dismiss removes a toast immediately, whatever its timer state. It reports
// whether the toast was present.
func (c *ToastController) Dismiss(id toast.ID) bool {
	if cd, ok := c.timers[id]; ok {
		cd.Complete()
		delete(c.timers, id)
	}
	delete(c.held, id)

	removed := c.store.Dismiss(id)
	if removed {
		c.log.Debug().Stringer("id", id).Msg("toast dismissed")
	}
	return removed
}

// DismissNewest removes the most recent toast.
func (c *ToastController) DismissNewest() bool {
	msgs := c.store.Messages()
	if len(msgs) == 0 {
		return false
	}
	return c.Dismiss(msgs[0].ID)
}

// DismissAll removes every toast.
func (c *ToastController) DismissAll() {
	for _, m := range c.store.Messages() {
		c.Dismiss(m.ID)
	}
}

// Hold freezes a toast's countdown, as when it is pressed. It reports whether
// the toast was running or entering.
func (c *ToastController) Hold(id toast.ID) bool {
	cd, ok := c.timers[id]
	if !ok || !cd.Pause(c.now()) {
		return false
	}
	c.held[id] = struct{}{}
	c.log.Debug().Stringer("id", id).Dur("remaining", cd.Remaining(c.now())).Msg("toast held")
	return true
}

// Release resumes a held toast for its remaining time.
func (c *ToastController) Release(id toast.ID) tea.Cmd {
	delete(c.held, id)

	cd, ok := c.timers[id]
	if !ok || !cd.Resume(c.now()) {
		return nil
	}
	c.log.Debug().Stringer("id", id).Dur("remaining", cd.Remaining(c.now())).Msg("toast released")
	return c.scheduleExpiry(id, cd)
}

// ReleaseHeld releases every held toast.
func (c *ToastController) ReleaseHeld() tea.Cmd {
	ids := c.Held()
	if len(ids) == 0 {
		return nil
	}

	cmds := make([]tea.Cmd, 0, len(ids))
	for _, id := range ids {
		cmds = append(cmds, c.Release(id))
	}
	return tea.Batch(cmds...)
}

// ToggleHold holds a running toast or releases a held one.
func (c *ToastController) ToggleHold(id toast.ID) tea.Cmd {
	cd, ok := c.timers[id]
	if !ok {
		return nil
	}
	if cd.State() == toast.StatePaused || cd.Held() {
		return c.Release(id)
	}
	c.Hold(id)
	return nil
}

// Held returns the held toasts, newest first.
func (c *ToastController) Held() []toast.ID {
	if len(c.held) == 0 {
		return nil
	}

	ids := make([]toast.ID, 0, len(c.held))
	for _, m := range c.store.Messages() {
		if _, ok := c.held[m.ID]; ok {
			ids = append(ids, m.ID)
		}
	}
	return ids
}

// Update handles the controller's own scheduled messages. handled is false
// for any other message.
func (c *ToastController) Update(msg tea.Msg) (cmd tea.Cmd, handled bool) {
	switch msg := msg.(type) {
	case toastEnteredMsg:
		return c.handleEntered(msg), true
	case toastExpiredMsg:
		return c.handleExpired(msg), true
	case toastFrameMsg:
		return c.handleFrame(), true
	}
	return nil, false
}

func (c *ToastController) handleEntered(msg toastEnteredMsg) tea.Cmd {
	if _, ok := c.timers[msg.id]; !ok {
		return nil
	}
	return c.start(msg.id)
}

func (c *ToastController) handleExpired(msg toastExpiredMsg) tea.Cmd {
	cd, ok := c.timers[msg.id]
	if !ok {
		c.log.Debug().Stringer("id", msg.id).Msg("ignoring expiry for removed toast")
		return nil
	}
	if msg.gen != cd.Generation() {
		c.log.Debug().Stringer("id", msg.id).Msg("ignoring stale expiry")
		return nil
	}

	now := c.now()
	if cd.Expired(now) {
		c.Dismiss(msg.id)
		return nil
	}
	// Delivered early; wait out the rest of this run.
	if cd.State() == toast.StateRunning {
		return c.scheduleExpiry(msg.id, cd)
	}
	return nil
}

func (c *ToastController) handleFrame() tea.Cmd {
	c.ticking = false
	return c.ensureTick()
}

// ensureTick starts the frame chain when toasts are visible and no chain is
// running. The chain stops by itself once the queue is empty.
func (c *ToastController) ensureTick() tea.Cmd {
	if c.ticking || !c.HasToasts() {
		return nil
	}
	c.ticking = true
	return c.schedule(c.frame, toastFrameMsg{})
}

func (c *ToastController) start(id toast.ID) tea.Cmd {
	cd := c.timers[id]
	if !cd.Start(c.now()) {
		return nil
	}
	return c.scheduleExpiry(id, cd)
}

func (c *ToastController) scheduleExpiry(id toast.ID, cd *toast.Countdown) tea.Cmd {
	return c.schedule(cd.Remaining(c.now()), toastExpiredMsg{id: id, gen: cd.Generation()})
}

// Messages returns the queue, newest first.
func (c *ToastController) Messages() []toast.Message {
	return c.store.Messages()
}

// HasToasts returns true if there are any active toasts.
func (c *ToastController) HasToasts() bool {
	return c.store.Len() > 0
}

// Progress returns the elapsed fraction of a toast's countdown.
func (c *ToastController) Progress(id toast.ID) float64 {
	cd, ok := c.timers[id]
	if !ok {
		return 0
	}
	return cd.Fraction(c.now())
}

// State returns the countdown stage of a toast.
func (c *ToastController) State(id toast.ID) (toast.State, bool) {
	cd, ok := c.timers[id]
	if !ok {
		return toast.StateCompleted, false
	}
	return cd.State(), true
}

// Paused reports whether a toast is frozen, including a hold placed while
// it was still entering.
func (c *ToastController) Paused(id toast.ID) bool {
	cd, ok := c.timers[id]
	return ok && (cd.State() == toast.StatePaused || cd.Held())
}

// Ticking returns whether the frame chain is currently running.
func (c *ToastController) Ticking() bool {
	return c.ticking
}

// Close tears the scope down: every countdown is completed and the queue is
// emptied, so callbacks still in flight find nothing to act on.
func (c *ToastController) Close() {
	for id, cd := range c.timers {
		cd.Complete()
		delete(c.timers, id)
	}
	c.store.Clear()
	clear(c.held)
}
