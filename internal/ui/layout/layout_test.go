package layout

import (
	"strings"
	"testing"

	"charm.land/lipgloss/v2"
)

func TestSizeThresholds(t *testing.T) {
	if !IsTooSmall(MinWidth-1, MinHeight) || !IsTooSmall(MinWidth, MinHeight-1) {
		t.Error("below minimum should be too small")
	}
	if IsTooSmall(MinWidth, MinHeight) {
		t.Error("minimum size should fit")
	}
	if !IsCompactWidth(CompactWidthThreshold-1) || IsCompactWidth(CompactWidthThreshold) {
		t.Error("compact threshold is exclusive")
	}
}

func TestRenderHeader(t *testing.T) {
	h := RenderHeader("Roadmap", 64, 20, 100)
	for _, want := range []string{"PrepIQ", "Roadmap", "Ready 64%", "Roadmap 20%"} {
		if !strings.Contains(h, want) {
			t.Errorf("header missing %q", want)
		}
	}
	if got := lipgloss.Height(h); got != 2 {
		t.Errorf("header height = %d, want 2", got)
	}
}

func TestRenderFooter(t *testing.T) {
	f := RenderFooter([]KeyHint{{Key: "Enter", Description: "Select"}, {Key: "Esc", Description: "Back"}}, 80)
	if !strings.Contains(f, "Enter") || !strings.Contains(f, "Back") {
		t.Error("footer missing hints")
	}
}

func TestRenderFrameFillsHeight(t *testing.T) {
	header := RenderHeader("Home", 0, 0, 80)
	footer := RenderFooter(nil, 80)
	frame := RenderFrame(header, "body", footer, 80, 30)
	if got := lipgloss.Height(frame); got != 30 {
		t.Errorf("frame height = %d, want 30", got)
	}
}

func TestRenderMinSizeMessage(t *testing.T) {
	msg := RenderMinSizeMessage(40, 10)
	if !strings.Contains(msg, "40x10") {
		t.Error("message should show the current size")
	}
}
