// Package layout renders the frame around every screen: a status bar on
// top, the key hints at the bottom and the screen in between.
package layout

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/prepiq/internal/ui/theme"
)

const (
	MinWidth  = 80
	MinHeight = 24

	// Below this width screens stack their panels vertically.
	CompactWidthThreshold = 100
)

// KeyHint is one "key action" pair in the footer.
type KeyHint struct {
	Key         string
	Description string
}

func IsCompactWidth(width int) bool {
	return width < CompactWidthThreshold
}

func IsTooSmall(width, height int) bool {
	return width < MinWidth || height < MinHeight
}

// RenderMinSizeMessage asks for a larger terminal.
func RenderMinSizeMessage(width, height int) string {
	body := lipgloss.JoinVertical(lipgloss.Center,
		lipgloss.NewStyle().Foreground(theme.Warning).Bold(true).Render("Window too small"),
		"",
		theme.Body.Render(fmt.Sprintf("PrepIQ needs %dx%d", MinWidth, MinHeight)),
		theme.Hint.Render(fmt.Sprintf("now %dx%d", width, height)),
	)
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, body)
}

var barStyle = lipgloss.NewStyle().
	Background(theme.BgCard).
	Padding(0, 1)

// spread places left and right at the two ends of a line of width.
func spread(left, right string, width int) string {
	gap := max(width-lipgloss.Width(left)-lipgloss.Width(right), 1)
	return left + strings.Repeat(" ", gap) + right
}

// RenderHeader draws the status bar: product name and screen title on the
// left, overall readiness and roadmap progress on the right.
func RenderHeader(title string, readiness, progress int, width int) string {
	left := lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render("PrepIQ")
	if title != "" {
		left += theme.Hint.Render(" / ") + theme.Body.Render(title)
	}

	right := lipgloss.NewStyle().Foreground(theme.ScoreColor(readiness)).
		Render(fmt.Sprintf("Ready %d%%", readiness)) +
		"  " +
		lipgloss.NewStyle().Foreground(theme.Accent).
			Render(fmt.Sprintf("Roadmap %d%%", progress))

	inner := max(width-barStyle.GetHorizontalFrameSize(), 0)
	line := barStyle.Width(width).Render(spread(left, right, inner))
	rule := lipgloss.NewStyle().Foreground(theme.Border).Render(strings.Repeat("─", max(width, 0)))
	return line + "\n" + rule
}

// RenderFooter draws the key hints separated by dots.
func RenderFooter(hints []KeyHint, width int) string {
	key := lipgloss.NewStyle().Foreground(theme.Text).Bold(true)
	desc := lipgloss.NewStyle().Foreground(theme.TextDim)

	parts := make([]string, 0, len(hints))
	for _, h := range hints {
		parts = append(parts, key.Render(h.Key)+" "+desc.Render(h.Description))
	}
	return barStyle.Width(width).Render(strings.Join(parts, desc.Render(" · ")))
}

// RenderFrame stacks header, content and footer, sizing the content to
// the space that is left.
func RenderFrame(header, content, footer string, width, height int) string {
	rest := max(height-lipgloss.Height(header)-lipgloss.Height(footer), 0)
	body := lipgloss.NewStyle().Width(width).Height(rest).MaxHeight(rest).Render(content)
	return lipgloss.JoinVertical(lipgloss.Left, header, body, footer)
}
