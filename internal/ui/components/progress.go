package components

import (
	"fmt"
	"image/color"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/prepiq/internal/ui/theme"
)

const (
	minBarCells  = 4
	percentCells = 6 // "  100%"
)

// ProgressBar is a labelled 0..100 bar that fills exactly Width cells.
type ProgressBar struct {
	Label      string
	LabelWidth int
	Percent    int
	Width      int
	Color      color.Color
}

// NewProgressBar returns a bar colored by its score band.
func NewProgressBar(label string, percent, width int) ProgressBar {
	return ProgressBar{Label: label, Percent: percent, Width: width, Color: theme.ScoreColor(percent)}
}

func (p ProgressBar) View() string {
	var b strings.Builder
	if p.Label != "" {
		st := lipgloss.NewStyle().Foreground(theme.Text)
		if p.LabelWidth > 0 {
			st = st.Width(p.LabelWidth)
		}
		b.WriteString(st.Render(p.Label) + "  ")
	}

	cells := max(p.Width-lipgloss.Width(b.String())-percentCells, minBarCells)
	filled := min(max(cells*p.Percent/100, 0), cells)

	fill := p.Color
	if fill == nil {
		fill = theme.Secondary
	}
	b.WriteString(lipgloss.NewStyle().Background(fill).Render(strings.Repeat(" ", filled)))
	b.WriteString(lipgloss.NewStyle().Background(theme.Border).Render(strings.Repeat(" ", cells-filled)))
	b.WriteString(lipgloss.NewStyle().Foreground(theme.TextDim).Render(fmt.Sprintf("  %3d%%", p.Percent)))
	return b.String()
}
