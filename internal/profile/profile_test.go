package profile

import "testing"

func TestGetUnknownFallsBackToTelegramWebview(t *testing.T) {
	p := Get("nonexistent")
	if p.Name != "nonexistent" {
		t.Errorf("name: got %q, want preserved requested name", p.Name)
	}
	if p.Quality != profiles["telegram-webview"].Quality {
		t.Errorf("quality: got %d, want telegram-webview's %d", p.Quality, profiles["telegram-webview"].Quality)
	}
}

func TestMinimalHasPinnedComponents(t *testing.T) {
	p := Get("minimal")
	if p.Components != [2]int{3, 3} {
		t.Errorf("minimal components: got %v, want [3 3]", p.Components)
	}
}

func TestEffectiveWidthsRetina(t *testing.T) {
	p := Get("telegram-webview")
	widths := p.EffectiveWidths(2000)
	seen := map[int]bool{}
	for _, w := range widths {
		if seen[w] {
			t.Errorf("duplicate width %d", w)
		}
		seen[w] = true
	}
	if !seen[640] || !seen[1280] {
		t.Errorf("expected both base and retina widths, got %v", widths)
	}
}
