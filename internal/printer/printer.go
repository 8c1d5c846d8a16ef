// Package printer writes styled, line-oriented status output for CLI commands.
package printer

import (
	"context"
	"fmt"
	"io"
	"os"

	lipgloss "charm.land/lipgloss/v2"

	"github.com/colonyops/toast/internal/core/styles"
)

type ctxKey struct{}

// Printer prefixes status lines with a colored glyph.
type Printer struct {
	w io.Writer
}

func New(w io.Writer) *Printer {
	return &Printer{w: w}
}

// WithContext returns a context carrying p.
func WithContext(ctx context.Context, p *Printer) context.Context {
	return context.WithValue(ctx, ctxKey{}, p)
}

// Ctx returns the printer stored in ctx, or one writing to stderr.
func Ctx(ctx context.Context) *Printer {
	if p, ok := ctx.Value(ctxKey{}).(*Printer); ok && p != nil {
		return p
	}
	return New(os.Stderr)
}

func (p *Printer) Printf(format string, args ...any) {
	_, _ = fmt.Fprintf(p.w, format+"\n", args...)
}

func (p *Printer) Successf(format string, args ...any) {
	p.line(lipgloss.NewStyle().Foreground(styles.ColorSuccess), styles.IconSuccess, format, args...)
}

func (p *Printer) Infof(format string, args ...any) {
	p.line(lipgloss.NewStyle().Foreground(styles.ColorPrimary), "•", format, args...)
}

func (p *Printer) Warnf(format string, args ...any) {
	p.line(lipgloss.NewStyle().Foreground(styles.ColorMuted), "!", format, args...)
}

func (p *Printer) Errorf(format string, args ...any) {
	p.line(lipgloss.NewStyle().Foreground(styles.ColorError), styles.IconError, format, args...)
}

func (p *Printer) line(style lipgloss.Style, glyph, format string, args ...any) {
	_, _ = fmt.Fprintln(p.w, style.Render(glyph)+" "+fmt.Sprintf(format, args...))
}
