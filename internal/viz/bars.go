package viz

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/san-kum/sortviz/internal/render"
	"github.com/san-kum/sortviz/internal/sorting"
)

const (
	barGlyph   = "█"
	scopeGlyph = "▔"
)

// barWidth is the number of terminal cells per bar including a one-cell gap
// when there is room for it.
func barWidth(n, cols int) (fill, gap int) {
	if n == 0 {
		return 0, 0
	}
	w := max(cols/n, 1)
	if w >= 3 {
		return w - 1, 1
	}
	return w, 0
}

// DrawBars renders a step as colored block columns cols wide and rows tall,
// plus one row underneath marking the scope range.
func DrawBars(step sorting.Step, theme Theme, cols, rows int) string {
	n := len(step.Array)
	if n == 0 || rows <= 0 {
		return blank(cols)
	}

	fill, gap := barWidth(n, cols)
	heights := render.Columns(step, rows)
	frame := theme.Palette().Bars(step, render.Layout{Width: float64(n * (fill+gap)), Height: float64(rows)})

	styles := make([]lipgloss.Style, n)
	for i, bar := range frame.Bars {
		styles[i] = lipgloss.NewStyle().Foreground(lipgloss.Color(bar.Fill.Hex()))
	}

	var b strings.Builder
	cell := strings.Repeat(barGlyph, fill)
	empty := blank(fill)
	for r := rows; r > 0; r-- {
		for i := range step.Array {
			if heights[i] >= r {
				b.WriteString(styles[i].Render(cell))
			} else {
				b.WriteString(empty)
			}
			b.WriteString(blank(gap))
		}
		b.WriteString("\n")
	}

	border := lipgloss.NewStyle().Foreground(theme.Border)
	for i := range step.Array {
		if step.Scope.Contains(i) {
			b.WriteString(border.Render(strings.Repeat(scopeGlyph, fill+gap)))
		} else {
			b.WriteString(blank(fill+gap))
		}
	}
	return b.String()
}
