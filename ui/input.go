package ui

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/zshcatsandevops/switchone/console"
)

// Translator converts ebiten's polled input into the abstract event stream
// the machine consumes. One native edge becomes at most one event; cursor
// motion emits PointerMove so hover stays current between clicks.
type Translator struct {
	lastPos image.Point
	primed  bool
}

// NewTranslator creates a translator with no cursor history.
func NewTranslator() *Translator {
	return &Translator{}
}

// Poll reads this frame's input state and returns the events in apply
// order. quit reports a window close request; the frame's other input is
// dropped with it.
func (t *Translator) Poll() (events []console.Event, quit bool) {
	if ebiten.IsWindowBeingClosed() {
		return nil, true
	}

	pos := cursorPos()
	if !t.primed || pos != t.lastPos {
		t.primed = true
		t.lastPos = pos
		events = append(events, console.PointerMove(pos))
	}

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		events = append(events, console.PointerDown(pos))
	}
	if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) {
		events = append(events, console.PointerUp(pos))
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyC) {
		events = append(events, console.KeyPress(console.KeyCapture))
	}
	return events, false
}

// cursorPos clamps the cursor to the window so drags that leave the window
// keep feeding bounded coordinates to the sliders.
func cursorPos() image.Point {
	x, y := ebiten.CursorPosition()
	if x < 0 {
		x = 0
	}
	if x >= console.WindowW {
		x = console.WindowW - 1
	}
	if y < 0 {
		y = 0
	}
	if y >= console.WindowH {
		y = console.WindowH - 1
	}
	return image.Pt(x, y)
}
