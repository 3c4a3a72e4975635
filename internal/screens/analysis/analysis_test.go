package analysis

import (
	"errors"
	"strings"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/prepiq/internal/dashboard"
	"github.com/abhisek/prepiq/internal/dataset"
	"github.com/abhisek/prepiq/internal/screen"
	"github.com/abhisek/prepiq/internal/store"
)

func newTestScreen() *AnalysisScreen {
	clock := func() time.Time { return time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC) }
	svc := dashboard.New(store.NewMemoryKV(), dataset.Default(),
		dashboard.Sources{Seed: 1, Now: clock}, dashboard.Options{}, nil)
	return New(svc)
}

func TestInitLoadsReport(t *testing.T) {
	a := newTestScreen()

	cmd := a.Init()
	if cmd == nil {
		t.Fatal("Init should load a report")
	}
	msg, ok := cmd().(screen.ReportMsg)
	if !ok {
		t.Fatalf("expected ReportMsg, got %T", cmd())
	}
	if msg.Err != nil {
		t.Fatalf("unexpected error: %v", msg.Err)
	}

	a.Update(msg)
	view := a.View(140, 40)
	for _, want := range []string{"Graph", "Weak", "Google", "Overall", "weak"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}
}

func TestLoadingAndError(t *testing.T) {
	a := newTestScreen()
	if !strings.Contains(a.View(80, 24), "Analyzing") {
		t.Error("expected loading message")
	}

	a.Update(screen.ReportMsg{Err: errors.New("boom")})
	if !strings.Contains(a.View(80, 24), "boom") {
		t.Error("expected error message")
	}
}

func TestRefreshKey(t *testing.T) {
	a := newTestScreen()
	_, cmd := a.Update(tea.KeyPressMsg{Code: 'r', Text: "r"})
	if cmd == nil {
		t.Fatal("r should reload the report")
	}
	if _, ok := cmd().(screen.ReportMsg); !ok {
		t.Error("expected ReportMsg")
	}
}
