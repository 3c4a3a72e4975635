// Package theme holds the dashboard palette and shared text styles. The
// same styles render the TUI and the CLI tables.
package theme

import (
	"image/color"

	"charm.land/lipgloss/v2"
)

var (
	Primary   = lipgloss.Color("#38BDF8") // sky
	Secondary = lipgloss.Color("#2DD4BF") // teal
	Accent    = lipgloss.Color("#A78BFA") // mock interview days
	Text      = lipgloss.Color("#E2E8F0")
	TextDim   = lipgloss.Color("#8090A8")
	BgCard    = lipgloss.Color("#172033")
	Border    = lipgloss.Color("#2B3A52")

	// Score bands, shared by classifications and percentages.
	Success = lipgloss.Color("#4ADE80")
	Warning = lipgloss.Color("#FBBF24")
	Error   = lipgloss.Color("#F87171")
)

var (
	Title    = lipgloss.NewStyle().Foreground(Primary).Bold(true).Align(lipgloss.Center)
	Subtitle = lipgloss.NewStyle().Foreground(TextDim).Align(lipgloss.Center)
	Body     = lipgloss.NewStyle().Foreground(Text)
	Hint     = lipgloss.NewStyle().Foreground(TextDim).Italic(true)

	Selected   = lipgloss.NewStyle().Foreground(Primary).Bold(true)
	Unselected = lipgloss.NewStyle().Foreground(Text)
	Done       = lipgloss.NewStyle().Foreground(Success)

	Card = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(Border).
		Background(BgCard).
		Padding(1, 2)
)

var classColors = map[string]color.Color{
	"Weak":    Error,
	"Average": Warning,
	"Strong":  Success,
}

// ClassificationColor returns the band color for a weakness
// classification label.
func ClassificationColor(label string) color.Color {
	if c, ok := classColors[label]; ok {
		return c
	}
	return Text
}

var verdictColors = map[string]color.Color{
	"Pass": Success,
	"Avg":  Warning,
	"Fail": Error,
}

// VerdictColor returns the color for a mock-test verdict label.
func VerdictColor(verdict string) color.Color {
	if c, ok := verdictColors[verdict]; ok {
		return c
	}
	return Text
}

// ScoreColor bands a 0..100 score at 40 and 70.
func ScoreColor(score int) color.Color {
	switch {
	case score < 40:
		return Error
	case score < 70:
		return Warning
	}
	return Success
}
