package screen

import (
	"context"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/prepiq/internal/dashboard"
	"github.com/abhisek/prepiq/internal/ui/layout"
)

// Screen defines the interface for all application screens.
type Screen interface {
	// Init returns an initial command when the screen is first created.
	Init() tea.Cmd

	// Update handles messages and returns updated screen + command.
	Update(msg tea.Msg) (Screen, tea.Cmd)

	// View renders the screen content (excluding header/footer).
	View(width, height int) string

	// Title returns the screen name for the header.
	Title() string
}

// KeyHintProvider is an optional interface that screens can implement
// to provide custom footer key hints.
type KeyHintProvider interface {
	KeyHints() []layout.KeyHint
}

// ReportMsg carries a freshly built dashboard report. The app updates its
// header from it and forwards it to the active screen.
type ReportMsg struct {
	Report *dashboard.Report
	Err    error
}

// LoadReport builds a report in the background.
func LoadReport(svc *dashboard.Service) tea.Cmd {
	return func() tea.Msg {
		r, err := svc.Report(context.Background())
		return ReportMsg{Report: r, Err: err}
	}
}

// Modal is implemented by screens that consume Esc themselves while an
// input is open, instead of letting the app pop them.
type Modal interface {
	Modal() bool
}
