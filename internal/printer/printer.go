// Package printer writes styled status lines for CLI subcommands. A Printer
// also serves as the notification sink when controllers run outside the TUI.
package printer

import (
	"context"
	"fmt"
	"io"
	"os"

	lipgloss "charm.land/lipgloss/v2"

	"github.com/radxishan/digest/internal/core/notify"
	"github.com/radxishan/digest/internal/core/styles"
)

// Printer writes to an output and an error stream.
type Printer struct {
	out io.Writer
	err io.Writer
}

var _ notify.Publisher = (*Printer)(nil)

// New creates a Printer. Success and info lines go to out, warnings and
// errors to errOut.
func New(out, errOut io.Writer) *Printer {
	return &Printer{out: out, err: errOut}
}

type ctxKey struct{}

// NewContext returns a copy of ctx carrying p.
func NewContext(ctx context.Context, p *Printer) context.Context {
	return context.WithValue(ctx, ctxKey{}, p)
}

// Ctx returns the Printer stored in ctx, or one bound to stdout/stderr.
func Ctx(ctx context.Context) *Printer {
	if p, ok := ctx.Value(ctxKey{}).(*Printer); ok {
		return p
	}
	return New(os.Stdout, os.Stderr)
}

func (p *Printer) line(w io.Writer, style lipgloss.Style, icon, msg string) {
	_, _ = fmt.Fprintln(w, style.Render(icon)+" "+msg)
}

// Printf writes an unstyled line to the output stream.
func (p *Printer) Printf(format string, args ...any) {
	_, _ = fmt.Fprintf(p.out, format+"\n", args...)
}

// Successf writes a success line.
func (p *Printer) Successf(format string, args ...any) {
	p.line(p.out, styles.SuccessStyle, styles.IconCheck, fmt.Sprintf(format, args...))
}

// Infof writes an informational line.
func (p *Printer) Infof(format string, args ...any) {
	p.line(p.out, styles.InfoStyle, styles.IconInfo, fmt.Sprintf(format, args...))
}

// Warnf writes a warning line to the error stream.
func (p *Printer) Warnf(format string, args ...any) {
	p.line(p.err, lipgloss.NewStyle().Foreground(styles.ColorWarning), styles.IconWarning, fmt.Sprintf(format, args...))
}

// Errorf writes an error line to the error stream.
func (p *Printer) Errorf(format string, args ...any) {
	p.line(p.err, styles.ErrorStyle, styles.IconCross, fmt.Sprintf(format, args...))
}

// Publish prints n according to its level. Durations are meaningless on a
// terminal stream and are ignored.
func (p *Printer) Publish(n notify.Notification) {
	switch n.Level {
	case notify.LevelSuccess:
		p.Successf("%s", n.Message)
	case notify.LevelWarning:
		p.Warnf("%s", n.Message)
	case notify.LevelError:
		p.Errorf("%s", n.Message)
	default:
		p.Infof("%s", n.Message)
	}
}
