// Package diagfmt renders diagnostics, token streams, and parse trees for
// the CLI.
package diagfmt

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/fatih/color"

	"cesium/internal/diag"
)

// PrettyOpts controls human-readable diagnostic output.
type PrettyOpts struct {
	Color bool
}

var (
	errColor  = color.New(color.FgRed, color.Bold)
	warnColor = color.New(color.FgYellow, color.Bold)
	infoColor = color.New(color.FgCyan)

	summaryStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
)

// Pretty writes each message on one line:
// <source>(<line>,<col>): <severity> CSnnnn: <text>
func Pretty(w io.Writer, msgs []*diag.Message, opts PrettyOpts) {
	for _, m := range msgs {
		if !opts.Color {
			fmt.Fprintln(w, m.String())
			continue
		}
		var c *color.Color
		switch m.Severity {
		case diag.SevError:
			c = errColor
		case diag.SevWarning:
			c = warnColor
		default:
			c = infoColor
		}
		head := ""
		if m.Source != "" {
			head = fmt.Sprintf("%s(%d,%d): ", m.Source, m.Pos.Line, m.Pos.Col)
		}
		fmt.Fprintf(w, "%s%s %s: %s\n",
			head, c.Sprint(m.Severity.String()), m.Code.ID(), m.Text)
	}
}

// Summary writes a one-line count of errors and warnings.
func Summary(w io.Writer, msgs *diag.Collection, opts PrettyOpts) {
	errs, warns := 0, 0
	for _, m := range msgs.Items() {
		switch m.Severity {
		case diag.SevError:
			errs++
		case diag.SevWarning:
			warns++
		}
	}
	line := fmt.Sprintf("%d error(s), %d warning(s)", errs, warns)
	if opts.Color {
		line = summaryStyle.Render(line)
	}
	fmt.Fprintln(w, line)
}
