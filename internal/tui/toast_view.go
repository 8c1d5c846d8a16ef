package tui

import (
	"image/color"
	"strings"

	"charm.land/bubbles/v2/progress"
	lipgloss "charm.land/lipgloss/v2"
	"github.com/charmbracelet/x/ansi"

	"github.com/colonyops/toast/internal/core/config"
	"github.com/colonyops/toast/internal/core/styles"
	"github.com/colonyops/toast/internal/core/toast"
)

const (
	defaultToastWidth = 50
	// toastHeight is the number of rows per toast: progress line and text line.
	toastHeight = 2
	// closeZoneWidth is the number of rightmost columns that act as the close
	// affordance.
	closeZoneWidth = 3
	// toastMargin is the gap kept between the stack and the screen edge.
	toastMargin = 1
)

// ToastView renders toast notifications and composites them as an overlay.
type ToastView struct {
	controller *ToastController
	width      int
	position   config.Position
	bars       map[toast.Kind]progress.Model
}

// NewToastView creates a view of controller. width <= 0 selects the default
// width; an invalid position falls back to the top.
func NewToastView(controller *ToastController, width int, position config.Position) *ToastView {
	if width <= 0 {
		width = defaultToastWidth
	}
	if !position.IsValid() {
		position = config.PositionTop
	}

	return &ToastView{
		controller: controller,
		width:      width,
		position:   position,
		bars: map[toast.Kind]progress.Model{
			toast.KindSuccess: newToastBar(width, styles.ColorSuccess),
			toast.KindError:   newToastBar(width, styles.ColorError),
		},
	}
}

func newToastBar(width int, fill color.Color) progress.Model {
	bar := progress.New(
		progress.WithWidth(width),
		progress.WithoutPercentage(),
		progress.WithColors(fill),
		progress.WithFillCharacters('━', '─'),
	)
	bar.EmptyColor = styles.ColorSurface
	return bar
}

// Width returns the rendered width of a single toast.
func (v *ToastView) Width() int {
	return v.width
}

// View renders the toast stack as a single string, newest first. With the
// bottom position the newest toast sits nearest the bottom edge instead.
func (v *ToastView) View() string {
	msgs := v.ordered()
	if len(msgs) == 0 {
		return ""
	}

	rendered := make([]string, 0, len(msgs))
	for _, m := range msgs {
		rendered = append(rendered, v.renderToast(m))
	}
	return strings.Join(rendered, "\n")
}

// ordered returns the messages in screen order, top row first.
func (v *ToastView) ordered() []toast.Message {
	msgs := v.controller.Messages()
	if v.position == config.PositionBottom {
		for i, j := 0, len(msgs)-1; i < j; i, j = i+1, j-1 {
			msgs[i], msgs[j] = msgs[j], msgs[i]
		}
	}
	return msgs
}

func (v *ToastView) renderToast(m toast.Message) string {
	state, _ := v.controller.State(m.ID)
	paused := v.controller.Paused(m.ID)

	icon := styles.IconSuccess
	style := styles.ToastSuccessStyle
	if m.Kind == toast.KindError {
		icon = styles.IconError
		style = styles.ToastErrorStyle
	}
	if paused {
		icon = styles.IconPaused
	}
	if state == toast.StatePending && !paused {
		style = styles.ToastEnteringStyle
	}

	bar, ok := v.bars[m.Kind]
	if !ok {
		bar = v.bars[toast.KindSuccess]
	}
	progressLine := bar.ViewAs(v.controller.Progress(m.ID))

	// Padding(0, 1) takes one column each side; the close glyph and its
	// leading space take two more.
	textWidth := max(v.width-2-2, 1)
	text := ansi.Truncate(icon+" "+singleLine(m.Text), textWidth, "…")
	gap := max(textWidth-lipgloss.Width(text), 0)
	body := text + strings.Repeat(" ", gap) + " " + styles.ToastCloseStyle.Render(styles.IconClose)

	return progressLine + "\n" + style.Width(v.width).Render(body)
}

func singleLine(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// origin returns the top-left cell of the stack on a width x height screen.
func (v *ToastView) origin(stackHeight, width, height int) (x, y int) {
	x = max(width-v.width-toastMargin, 0)
	if v.position == config.PositionBottom {
		return x, max(height-stackHeight-toastMargin, 0)
	}
	return x, min(toastMargin, max(height-stackHeight, 0))
}

// Overlay composites the toast stack over background. Each toast is its own
// layer so stacking never disturbs the background between toasts.
func (v *ToastView) Overlay(background string, width, height int) string {
	msgs := v.ordered()
	if len(msgs) == 0 {
		return background
	}

	x, y := v.origin(len(msgs)*toastHeight, width, height)

	layers := make([]*lipgloss.Layer, 0, len(msgs)+1)
	layers = append(layers, lipgloss.NewLayer(background))
	for i, m := range msgs {
		layers = append(layers, lipgloss.NewLayer(v.renderToast(m)).
			X(x).
			Y(y+i*toastHeight).
			Z(2))
	}

	return lipgloss.NewCompositor(layers...).Render()
}

// HitTest maps a screen cell to the toast drawn there. onClose is true when the
// cell lies on the close affordance.
func (v *ToastView) HitTest(cellX, cellY, width, height int) (id toast.ID, onClose bool, ok bool) {
	msgs := v.ordered()
	if len(msgs) == 0 {
		return 0, false, false
	}

	x, y := v.origin(len(msgs)*toastHeight, width, height)
	if cellX < x || cellX >= x+v.width || cellY < y || cellY >= y+len(msgs)*toastHeight {
		return 0, false, false
	}

	m := msgs[(cellY-y)/toastHeight]
	onClose = (cellY-y)%toastHeight == toastHeight-1 && cellX >= x+v.width-closeZoneWidth
	return m.ID, onClose, true
}
