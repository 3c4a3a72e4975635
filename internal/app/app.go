// Package app hosts the interactive dashboard: a screen stack framed by a
// header carrying the latest readiness and roadmap figures.
package app

import (
	"context"
	"fmt"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/prepiq/internal/dashboard"
	"github.com/abhisek/prepiq/internal/router"
	"github.com/abhisek/prepiq/internal/screen"
	"github.com/abhisek/prepiq/internal/screens/home"
	"github.com/abhisek/prepiq/internal/ui/layout"
)

var (
	rootHints = []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "1-5", Description: "Jump"},
		{Key: "Enter", Description: "Select"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
	childHints = []layout.KeyHint{
		{Key: "Esc", Description: "Back"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
)

// AppModel is the root tea.Model.
type AppModel struct {
	router *router.Router
	svc    *dashboard.Service

	// Header figures from the last good report.
	readiness int
	progress  int

	width, height int
}

func newAppModel(svc *dashboard.Service) AppModel {
	return AppModel{router: router.New(home.New(svc)), svc: svc}
}

func (m AppModel) Init() tea.Cmd {
	return screen.LoadReport(m.svc)
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		return m, nil
	case screen.ReportMsg:
		if msg.Err == nil && msg.Report != nil {
			m.readiness, m.progress = msg.Report.Overall, msg.Report.Progress
		}
	case tea.KeyMsg:
		if cmd, handled := m.handleKey(msg.String()); handled {
			return m, cmd
		}
	}
	return m, m.router.Update(msg)
}

// handleKey takes the global keys. Esc belongs to the active screen while
// it has an input open.
func (m AppModel) handleKey(key string) (tea.Cmd, bool) {
	switch key {
	case "ctrl+c":
		return tea.Quit, true
	case "esc":
		if modal, ok := m.router.Active().(screen.Modal); ok && modal.Modal() {
			return nil, false
		}
		if m.router.Depth() == 1 {
			return nil, true
		}
		return func() tea.Msg { return router.PopScreenMsg{} }, true
	}
	return nil, false
}

func (m AppModel) hints() []layout.KeyHint {
	if p, ok := m.router.Active().(screen.KeyHintProvider); ok {
		return p.KeyHints()
	}
	if m.router.Depth() > 1 {
		return childHints
	}
	return rootHints
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true
	switch {
	case m.width == 0 || m.height == 0:
	case layout.IsTooSmall(m.width, m.height):
		v.SetContent(layout.RenderMinSizeMessage(m.width, m.height))
	default:
		v.SetContent(m.render())
	}
	return v
}

func (m AppModel) render() string {
	var title string
	if s := m.router.Active(); s != nil {
		title = s.Title()
	}
	header := layout.RenderHeader(title, m.readiness, m.progress, m.width)
	footer := layout.RenderFooter(m.hints(), m.width)

	body := max(m.height-lipgloss.Height(header)-lipgloss.Height(footer), 0)
	content := m.router.View(m.width, body)
	return layout.RenderFrame(header, content, footer, m.width, m.height)
}

// Run blocks until the dashboard exits or ctx is cancelled.
func Run(ctx context.Context, svc *dashboard.Service) error {
	if _, err := tea.NewProgram(newAppModel(svc), tea.WithContext(ctx)).Run(); err != nil {
		return fmt.Errorf("run dashboard: %w", err)
	}
	return nil
}
