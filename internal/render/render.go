// Package render draws a probability report as a terminal grid: men as rows,
// women as columns, cells shaded by probability with locked (1.0) and
// excluded (0.0) pairs set apart.
package render

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/katalvlaran/matchprob/match"
)

// Tokyo Night inspired palette, shared register with the pack's TUIs.
var (
	colorHeader = lipgloss.Color("#7aa2f7") // blue
	colorLocked = lipgloss.Color("#9ece6a") // green — pair certain
	colorHigh   = lipgloss.Color("#e0af68") // yellow — likely
	colorMuted  = lipgloss.Color("#565f89") // gray — unlikely/excluded

	headerStyle = lipgloss.NewStyle().Foreground(colorHeader).Bold(true)
	lockedStyle = lipgloss.NewStyle().Foreground(colorLocked).Bold(true)
	highStyle   = lipgloss.NewStyle().Foreground(colorHigh)
	mutedStyle  = lipgloss.NewStyle().Foreground(colorMuted)
)

// cellWidth fits "0.000" plus one space gutter.
const cellWidth = 7

// Grid renders the probability matrix as aligned rows with a styled header.
func Grid(o match.Output) string {
	var b strings.Builder

	nameWidth := 0
	for _, m := range o.Men {
		if w := runewidth.StringWidth(m); w > nameWidth {
			nameWidth = w
		}
	}

	// Header row: women across the top.
	b.WriteString(strings.Repeat(" ", nameWidth))
	for _, w := range o.Women {
		b.WriteString(headerStyle.Render(pad(w, cellWidth)))
	}
	b.WriteByte('\n')

	for i, man := range o.Men {
		b.WriteString(headerStyle.Render(padRight(man, nameWidth)))
		for j := range o.Women {
			b.WriteString(cell(o.Probabilities[i][j]))
		}
		b.WriteByte('\n')
	}

	return b.String()
}

// cell shades one probability: certain pairs green, the likely half yellow,
// the rest gray.
func cell(p float64) string {
	text := pad(fmt.Sprintf("%.3f", p), cellWidth)
	switch {
	case p >= 1:
		return lockedStyle.Render(text)
	case p >= 0.5:
		return highStyle.Render(text)
	default:
		return mutedStyle.Render(text)
	}
}

// pad left-pads s to width display cells, truncating names that overflow.
// Widths are rune widths, so multi-byte and wide characters stay aligned.
func pad(s string, width int) string {
	s = runewidth.Truncate(s, width-1, "")

	return strings.Repeat(" ", width-runewidth.StringWidth(s)) + s
}

// padRight right-pads s to width display cells.
func padRight(s string, width int) string {
	return s + strings.Repeat(" ", width-runewidth.StringWidth(s))
}
