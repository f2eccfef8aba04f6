package screens

import (
	"testing"

	"github.com/zshcatsandevops/switchone/capture"
	"github.com/zshcatsandevops/switchone/console"
)

// TestNewRegistry_CoversAllScreens verifies every screen id has a renderer
// so the fallback card can only appear through a future wiring mistake.
func TestNewRegistry_CoversAllScreens(t *testing.T) {
	r := NewRegistry(capture.NewMemStore())

	for id := console.ScreenID(0); id < console.ScreenCount; id++ {
		if _, ok := r.Renderer(id); !ok {
			t.Errorf("screen %v has no renderer", id)
		}
	}
}

// TestRegistry_UnknownScreen verifies ids past the table report no
// renderer rather than panicking.
func TestRegistry_UnknownScreen(t *testing.T) {
	r := NewRegistry(capture.NewMemStore())

	if _, ok := r.Renderer(console.ScreenCount); ok {
		t.Error("expected no renderer past the last id")
	}
	if _, ok := r.Renderer(console.ScreenID(-1)); ok {
		t.Error("expected no renderer for a negative id")
	}
}
