package notify

import (
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/colonyops/toast/internal/core/toast"
)

// Msg asks the host model to show a toast. Child components return it from
// a tea.Cmd instead of holding a Bus.
type Msg struct {
	Input toast.Input
}

// Cmd creates a tea.Cmd that produces a Msg for in.
func Cmd(in toast.Input) tea.Cmd {
	return func() tea.Msg {
		return Msg{Input: in}
	}
}

// SuccessCmd requests a success toast. A zero duration uses the host's
// default duration.
func SuccessCmd(text string, d time.Duration) tea.Cmd {
	return Cmd(toast.Record{Kind: toast.KindSuccess, Text: text, Duration: d})
}

// ErrorCmd requests an error toast.
func ErrorCmd(text string, d time.Duration) tea.Cmd {
	return Cmd(toast.Record{Kind: toast.KindError, Text: text, Duration: d})
}
