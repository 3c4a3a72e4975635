package app

import (
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/prepiq/internal/dashboard"
	"github.com/abhisek/prepiq/internal/dataset"
	"github.com/abhisek/prepiq/internal/router"
	"github.com/abhisek/prepiq/internal/screen"
	"github.com/abhisek/prepiq/internal/screens/problems"
	"github.com/abhisek/prepiq/internal/store"
)

var keyEsc = tea.KeyPressMsg{Code: tea.KeyEscape}

func newTestModel() AppModel {
	clock := func() time.Time { return time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC) }
	svc := dashboard.New(store.NewMemoryKV(), dataset.Default(),
		dashboard.Sources{Seed: 1, Now: clock}, dashboard.Options{}, nil)
	return newAppModel(svc)
}

func update(m AppModel, msg tea.Msg) (AppModel, tea.Cmd) {
	next, cmd := m.Update(msg)
	return next.(AppModel), cmd
}

func TestInitUpdatesHeader(t *testing.T) {
	m := newTestModel()

	msg, ok := m.Init()().(screen.ReportMsg)
	if !ok {
		t.Fatal("Init should load a report")
	}
	m, _ = update(m, msg)

	if m.readiness != msg.Report.Overall {
		t.Errorf("expected readiness %d, got %d", msg.Report.Overall, m.readiness)
	}
	if m.progress != 0 {
		t.Errorf("expected no progress, got %d", m.progress)
	}
}

func TestEscPopsScreens(t *testing.T) {
	m := newTestModel()

	_, cmd := update(m, keyEsc)
	if cmd != nil {
		t.Error("esc on home should do nothing")
	}

	m, _ = update(m, router.PushScreenMsg{Screen: problems.New(m.svc)})
	if m.router.Depth() != 2 {
		t.Fatalf("expected depth 2, got %d", m.router.Depth())
	}

	_, cmd = update(m, keyEsc)
	if cmd == nil {
		t.Fatal("esc should pop")
	}
	if _, ok := cmd().(router.PopScreenMsg); !ok {
		t.Error("expected PopScreenMsg")
	}
}

func TestEscGoesToModalScreen(t *testing.T) {
	m := newTestModel()
	ps := problems.New(m.svc)
	m, _ = update(m, router.PushScreenMsg{Screen: ps})
	m, _ = update(m, ps.Init()())

	m, _ = update(m, tea.KeyPressMsg{Code: '/', Text: "/"})
	if !ps.Modal() {
		t.Fatal("search should be open")
	}

	m, cmd := update(m, keyEsc)
	if cmd != nil {
		if _, ok := cmd().(router.PopScreenMsg); ok {
			t.Fatal("esc should close the input, not pop the screen")
		}
	}
	if ps.Modal() {
		t.Error("search should be closed")
	}
	if m.router.Depth() != 2 {
		t.Error("screen should stay on the stack")
	}
}

func TestWindowSize(t *testing.T) {
	m := newTestModel()
	m, _ = update(m, tea.WindowSizeMsg{Width: 120, Height: 40})
	if m.width != 120 || m.height != 40 {
		t.Errorf("unexpected size %dx%d", m.width, m.height)
	}
	_ = m.View()
}
