package tui

import (
	"strings"
	"testing"

	lipgloss "charm.land/lipgloss/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/colonyops/toast/internal/core/config"
	"github.com/colonyops/toast/internal/core/styles"
	"github.com/colonyops/toast/internal/core/toast"
	"github.com/colonyops/toast/pkg/tuitest"
)

func TestToastView_View_empty(t *testing.T) {
	c, _, _ := newTestController()
	v := NewToastView(c, 40, config.PositionTop)

	assert.Empty(t, v.View())
}

func TestToastView_View_renders_each_kind(t *testing.T) {
	tests := []struct {
		kind toast.Kind
		icon string
	}{
		{toast.KindSuccess, styles.IconSuccess},
		{toast.KindError, styles.IconError},
	}

	for _, tt := range tests {
		t.Run(string(tt.kind), func(t *testing.T) {
			c, _, _ := newTestController()
			v := NewToastView(c, 40, config.PositionTop)

			c.Push(toast.Record{Kind: tt.kind, Text: "test msg"})

			out := tuitest.StripANSI(v.View())
			require.NotEmpty(t, out)
			assert.Contains(t, out, tt.icon+" test msg")
			assert.Contains(t, out, styles.IconClose)
		})
	}
}

func TestToastView_View_newest_first(t *testing.T) {
	c, _, _ := newTestController()
	v := NewToastView(c, 40, config.PositionTop)

	c.Push(toast.Text("first"))
	c.Push(toast.Text("second"))

	out := v.View()
	firstIdx := strings.Index(out, "first")
	secondIdx := strings.Index(out, "second")

	require.NotEqual(t, -1, firstIdx)
	require.NotEqual(t, -1, secondIdx)
	assert.Less(t, secondIdx, firstIdx)
}

func TestToastView_View_bottom_puts_newest_nearest_edge(t *testing.T) {
	c, _, _ := newTestController()
	v := NewToastView(c, 40, config.PositionBottom)

	c.Push(toast.Text("first"))
	c.Push(toast.Text("second"))

	out := v.View()
	assert.Less(t, strings.Index(out, "first"), strings.Index(out, "second"))
}

func TestToastView_View_fixed_width(t *testing.T) {
	c, _, _ := newTestController()
	v := NewToastView(c, 30, config.PositionTop)

	c.Push(toast.Record{
		Kind: toast.KindError,
		Text: "a message that is much too long to fit\non a single toast line",
	})

	out := v.View()
	lines := strings.Split(out, "\n")
	require.Len(t, lines, toastHeight)
	for _, line := range lines {
		assert.Equal(t, 30, lipgloss.Width(line))
	}
	assert.Contains(t, tuitest.StripANSI(out), "…")
	assert.Contains(t, tuitest.StripANSI(out), styles.IconClose, "close affordance survives truncation")
}

func TestToastView_View_paused_icon(t *testing.T) {
	c, _, _ := newTestController()
	v := NewToastView(c, 40, config.PositionTop)

	msg, _ := c.Push(toast.Record{Kind: toast.KindSuccess, Text: "held"})
	enter(t, c, msg.ID)
	c.Hold(msg.ID)

	out := tuitest.StripANSI(v.View())
	assert.Contains(t, out, styles.IconPaused+" held")
	assert.NotContains(t, out, styles.IconSuccess)
}

func TestToastView_defaults(t *testing.T) {
	c, _, _ := newTestController()
	v := NewToastView(c, 0, config.Position("sideways"))

	assert.Equal(t, defaultToastWidth, v.Width())
	assert.Equal(t, config.PositionTop, v.position)
}

func TestToastView_Overlay_empty_returns_background(t *testing.T) {
	c, _, _ := newTestController()
	v := NewToastView(c, 40, config.PositionTop)

	assert.Equal(t, "background", v.Overlay("background", 80, 24))
}

func TestToastView_Overlay_top_right(t *testing.T) {
	c, _, _ := newTestController()
	v := NewToastView(c, 40, config.PositionTop)
	c.Push(toast.Text("overlaid"))

	bg := lipgloss.Place(80, 24, lipgloss.Left, lipgloss.Top, "background text")
	lines := tuitest.Lines(v.Overlay(bg, 80, 24))

	require.GreaterOrEqual(t, len(lines), 3)
	assert.Contains(t, lines[0], "background text")
	assert.Contains(t, lines[2], "overlaid")
	assert.True(t, strings.HasSuffix(strings.TrimRight(lines[2], " "), styles.IconClose))
}

func TestToastView_Overlay_bottom_right(t *testing.T) {
	c, _, _ := newTestController()
	v := NewToastView(c, 40, config.PositionBottom)
	c.Push(toast.Text("overlaid"))

	bg := lipgloss.Place(80, 24, lipgloss.Left, lipgloss.Top, "")
	out := v.Overlay(bg, 80, 24)
	lines := strings.Split(out, "\n")

	require.Len(t, lines, 24)
	// Rows 21-22 with a one-row margin below; text is the second row.
	assert.Contains(t, tuitest.StripANSI(lines[22]), "overlaid")
}

func TestToastView_HitTest(t *testing.T) {
	c, _, _ := newTestController()
	v := NewToastView(c, 40, config.PositionTop)
	older, _ := c.Push(toast.Text("older"))
	newer, _ := c.Push(toast.Text("newer"))

	// 80x24 screen, width 40: x spans 39..78, rows 1..4.
	tests := []struct {
		name    string
		x, y    int
		wantID  toast.ID
		onClose bool
		ok      bool
	}{
		{name: "left of stack", x: 38, y: 1},
		{name: "above stack", x: 50, y: 0},
		{name: "below stack", x: 50, y: 5},
		{name: "right margin", x: 79, y: 2},
		{name: "newest progress row", x: 39, y: 1, wantID: newer.ID, ok: true},
		{name: "newest body", x: 50, y: 2, wantID: newer.ID, ok: true},
		{name: "newest close", x: 77, y: 2, wantID: newer.ID, onClose: true, ok: true},
		{name: "progress row is not close", x: 77, y: 1, wantID: newer.ID, ok: true},
		{name: "older body", x: 50, y: 4, wantID: older.ID, ok: true},
		{name: "older close edge", x: 76, y: 4, wantID: older.ID, onClose: true, ok: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id, onClose, ok := v.HitTest(tt.x, tt.y, 80, 24)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.wantID, id)
			assert.Equal(t, tt.onClose, onClose)
		})
	}
}

func TestToastView_HitTest_bottom(t *testing.T) {
	c, _, _ := newTestController()
	v := NewToastView(c, 40, config.PositionBottom)
	msg, _ := c.Push(toast.Text("only"))

	id, onClose, ok := v.HitTest(77, 22, 80, 24)
	require.True(t, ok)
	assert.Equal(t, msg.ID, id)
	assert.True(t, onClose)

	_, _, ok = v.HitTest(77, 23, 80, 24)
	assert.False(t, ok)
}

func TestToastView_HitTest_empty(t *testing.T) {
	c, _, _ := newTestController()
	v := NewToastView(c, 40, config.PositionTop)

	_, _, ok := v.HitTest(50, 1, 80, 24)
	assert.False(t, ok)
}
