// Package tui implements the terminal surface of the toast overlay: the
// controller that owns queue and timers, the view that draws the stack, and
// a small demo host program.
package tui

import (
	"strconv"
	"strings"
	"time"

	"charm.land/bubbles/v2/help"
	"charm.land/bubbles/v2/key"
	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	lipgloss "charm.land/lipgloss/v2"
	"github.com/rs/zerolog"

	"github.com/colonyops/toast/internal/core/config"
	"github.com/colonyops/toast/internal/core/logging"
	"github.com/colonyops/toast/internal/core/styles"
	"github.com/colonyops/toast/internal/core/toast"
	"github.com/colonyops/toast/internal/tui/notify"
)

const emptyInputMessage = "Type a message first"

// Options configures the demo model.
type Options struct {
	// Bus is the notification hook. A bus is created from the config when nil.
	// New subscribes the model's buffer to it.
	Bus *notify.Bus
	// Seeds are shown as soon as the program starts.
	Seeds []toast.Input
	// Version is shown next to the title.
	Version string

	Now      func() time.Time
	Schedule Scheduler
	Logger   *zerolog.Logger
}

// Model is the demo host: a text input whose contents become success or
// error toasts, with the toast stack drawn over it.
type Model struct {
	toasts    *ToastController
	toastView *ToastView
	bus       *notify.Bus
	buffer    *notify.Buffer
	seeds     []toast.Input
	input     textinput.Model
	help      help.Model
	keys      keyMap
	version   string
	log       zerolog.Logger

	width    int
	height   int
	quitting bool
}

// New creates the demo model.
func New(cfg *config.Config, opts Options) Model {
	log := logging.Component("tui")
	if opts.Logger != nil {
		log = *opts.Logger
	}

	ctrl := NewToastController(ToastOptions{
		Duration:      cfg.Toast.Duration,
		Entrance:      entranceOption(cfg.Toast.Entrance),
		FrameInterval: cfg.Toast.FrameInterval,
		Now:           opts.Now,
		Schedule:      opts.Schedule,
		Logger:        opts.Logger,
	})

	bus := opts.Bus
	if bus == nil {
		bus = notify.NewBus(cfg.Toast.Duration)
	}
	buffer := notify.NewBuffer()
	bus.Subscribe(buffer.Push)

	input := textinput.New()
	input.Placeholder = "Write a toast message"
	input.SetWidth(max(cfg.Toast.Width, 20))
	input.Focus()

	return Model{
		toasts:    ctrl,
		toastView: NewToastView(ctrl, cfg.Toast.Width, cfg.Toast.Position),
		bus:       bus,
		buffer:    buffer,
		seeds:     opts.Seeds,
		input:     input,
		help:      help.New(),
		keys:      defaultKeyMap(),
		version:   opts.Version,
		log:       log,
	}
}

// entranceOption maps a configured entrance of zero to "no entrance stage";
// the controller reads zero as "use the default".
func entranceOption(d time.Duration) time.Duration {
	if d == 0 {
		return -1
	}
	return d
}

// Toasts exposes the controller, mainly for tests and embedding hosts.
func (m Model) Toasts() *ToastController {
	return m.toasts
}

func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{m.buffer.WaitForSignal(), textinput.Blink}
	for _, seed := range m.seeds {
		cmds = append(cmds, notify.Cmd(seed))
	}
	return tea.Batch(cmds...)
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if cmd, handled := m.toasts.Update(msg); handled {
		return m, cmd
	}

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.SetWidth(msg.Width)
		return m, nil
	case notify.DrainMsg:
		return m.handleDrain()
	case notify.Msg:
		_, cmd := m.toasts.Push(msg.Input)
		return m, cmd
	case tea.MouseClickMsg:
		return m.handleClick(msg)
	case tea.MouseReleaseMsg:
		return m, m.toasts.ReleaseHeld()
	case tea.KeyPressMsg:
		return m.handleKey(msg)
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// handleDrain pushes everything published on the bus since the last drain and
// re-arms the signal listener.
func (m Model) handleDrain() (tea.Model, tea.Cmd) {
	cmds := []tea.Cmd{m.buffer.WaitForSignal()}
	for _, in := range m.buffer.Drain() {
		_, cmd := m.toasts.Push(in)
		cmds = append(cmds, cmd)
	}
	return m, tea.Batch(cmds...)
}

func (m Model) handleKey(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		m.toasts.Close()
		return m, tea.Quit
	case key.Matches(msg, m.keys.Success):
		return m.submit(toast.KindSuccess), nil
	case key.Matches(msg, m.keys.Error):
		return m.submit(toast.KindError), nil
	case key.Matches(msg, m.keys.Dismiss):
		m.toasts.DismissNewest()
		return m, nil
	case key.Matches(msg, m.keys.DismissAll):
		m.toasts.DismissAll()
		return m, nil
	case key.Matches(msg, m.keys.Hold):
		msgs := m.toasts.Messages()
		if len(msgs) == 0 {
			return m, nil
		}
		return m, m.toasts.ToggleHold(msgs[0].ID)
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// submit publishes the input through the hook. Delivery comes back as a
// DrainMsg, the same path any other goroutine would use.
func (m Model) submit(kind toast.Kind) Model {
	text := strings.TrimSpace(m.input.Value())
	if text == "" {
		m.bus.Error(emptyInputMessage)
		return m
	}

	if kind == toast.KindError {
		m.bus.Error(text)
	} else {
		m.bus.Success(text)
	}
	m.log.Debug().Str("kind", string(kind)).Msg("toast submitted")
	m.input.Reset()
	return m
}

func (m Model) handleClick(msg tea.MouseClickMsg) (tea.Model, tea.Cmd) {
	if msg.Button != tea.MouseLeft {
		return m, nil
	}

	w, h := m.size()
	id, onClose, ok := m.toastView.HitTest(msg.X, msg.Y, w, h)
	if !ok {
		return m, nil
	}
	if onClose {
		m.toasts.Dismiss(id)
		return m, nil
	}
	m.toasts.Hold(id)
	return m, nil
}

func (m Model) size() (int, int) {
	w, h := m.width, m.height
	if w == 0 {
		w = 80
	}
	if h == 0 {
		h = 24
	}
	return w, h
}

func (m Model) View() tea.View {
	if m.quitting {
		return tea.NewView("")
	}

	w, h := m.size()
	main := lipgloss.Place(w, h, lipgloss.Left, lipgloss.Top, m.renderMain())

	v := tea.NewView(m.toastView.Overlay(main, w, h))
	v.AltScreen = true
	v.MouseMode = tea.MouseModeCellMotion
	return v
}

func (m Model) renderMain() string {
	status := styles.MutedStyle.Render("no toasts")
	if n := len(m.toasts.Messages()); n > 0 {
		status = styles.MutedStyle.Render(pluralize(n, "toast") + " showing")
	}

	title := styles.TitleStyle.Render("Toast demo")
	if m.version != "" {
		title += " " + styles.MutedStyle.Render(m.version)
	}

	return lipgloss.JoinVertical(
		lipgloss.Left,
		title,
		"",
		m.input.View(),
		"",
		status,
		"",
		m.help.View(m.keys),
	)
}

func pluralize(n int, word string) string {
	if n == 1 {
		return "1 " + word
	}
	return strconv.Itoa(n) + " " + word + "s"
}
