// Package ui prints status lines for the CLI, styled with lipgloss when
// color is enabled.
package ui

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
)

// Palette.
const (
	colorGreen  = "#3FB950"
	colorYellow = "#D29922"
	colorRed    = "#FF6B6B"
	colorBlue   = "#5B8DEF"
	colorGray   = "#888888"
)

// ColorAllowed reports whether styling should be used given the config
// setting. NO_COLOR always wins.
func ColorAllowed(configColor bool) bool {
	if _, ok := os.LookupEnv("NO_COLOR"); ok {
		return false
	}
	return configColor
}

// Printer writes prefixed, optionally styled lines to w.
type Printer struct {
	w     io.Writer
	color bool

	success lipgloss.Style
	warn    lipgloss.Style
	fail    lipgloss.Style
	title   lipgloss.Style
	faint   lipgloss.Style
}

// New returns a Printer writing to w.
func New(w io.Writer, color bool) *Printer {
	r := lipgloss.NewRenderer(w)
	return &Printer{
		w:       w,
		color:   color,
		success: r.NewStyle().Foreground(lipgloss.Color(colorGreen)),
		warn:    r.NewStyle().Foreground(lipgloss.Color(colorYellow)),
		fail:    r.NewStyle().Bold(true).Foreground(lipgloss.Color(colorRed)),
		title:   r.NewStyle().Bold(true).Foreground(lipgloss.Color(colorBlue)),
		faint:   r.NewStyle().Foreground(lipgloss.Color(colorGray)),
	}
}

func (p *Printer) style(s lipgloss.Style, text string) string {
	if !p.color {
		return text
	}
	return s.Render(text)
}

// Success prints "✓ msg".
func (p *Printer) Success(format string, args ...any) {
	fmt.Fprintf(p.w, "%s %s\n", p.style(p.success, "✓"), fmt.Sprintf(format, args...))
}

// Warn prints "! msg".
func (p *Printer) Warn(format string, args ...any) {
	fmt.Fprintf(p.w, "%s %s\n", p.style(p.warn, "!"), fmt.Sprintf(format, args...))
}

// Error prints "✗ msg".
func (p *Printer) Error(format string, args ...any) {
	fmt.Fprintf(p.w, "%s %s\n", p.style(p.fail, "✗"), fmt.Sprintf(format, args...))
}

// Title prints a bold heading.
func (p *Printer) Title(format string, args ...any) {
	fmt.Fprintln(p.w, p.style(p.title, fmt.Sprintf(format, args...)))
}

// Item prints an indented list entry.
func (p *Printer) Item(format string, args ...any) {
	fmt.Fprintf(p.w, "  %s\n", fmt.Sprintf(format, args...))
}

// Faint returns text in the muted color.
func (p *Printer) Faint(text string) string {
	return p.style(p.faint, text)
}
