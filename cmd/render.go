package cmd

import (
	"image/color"
	"io"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/prepiq/internal/ui/theme"
)

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(theme.Primary)
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(theme.TextDim)
	hintStyle   = lipgloss.NewStyle().Foreground(theme.TextDim)
)

func colored(c color.Color, s string) string {
	return lipgloss.NewStyle().Foreground(c).Render(s)
}

func printTitle(w io.Writer, title string) {
	lipgloss.Fprintln(w, titleStyle.Render(title))
}

func printHeader(w io.Writer, header string) {
	lipgloss.Fprintln(w, headerStyle.Render(header))
	lipgloss.Fprintln(w, headerStyle.Render(strings.Repeat("─", lipgloss.Width(header))))
}
