package console

import "image"

// EventKind discriminates the abstract input events the machine consumes.
type EventKind int

const (
	EventPointerMove EventKind = iota
	EventPointerDown
	EventPointerUp
	EventPointerClick
	EventKeyPress
)

// Key identifies a keyboard action. The capture key is the only one the
// machine reacts to.
type Key int

// KeyCapture takes a screenshot of the inner display.
const KeyCapture Key = iota

// Event is a single abstract input event. Pointer positions are window
// coordinates, pre-clamped to the window bounds by the translator.
type Event struct {
	Kind EventKind
	Pos  image.Point
	Key  Key
}

// PointerMove reports the cursor at p.
func PointerMove(p image.Point) Event {
	return Event{Kind: EventPointerMove, Pos: p}
}

// PointerDown reports the primary button pressed at p.
func PointerDown(p image.Point) Event {
	return Event{Kind: EventPointerDown, Pos: p}
}

// PointerUp reports the primary button released at p.
func PointerUp(p image.Point) Event {
	return Event{Kind: EventPointerUp, Pos: p}
}

// PointerClick reports a click at p. The machine handles it exactly like
// PointerDown; activation fires on the press edge.
func PointerClick(p image.Point) Event {
	return Event{Kind: EventPointerClick, Pos: p}
}

// KeyPress reports key k pressed.
func KeyPress(k Key) Event {
	return Event{Kind: EventKeyPress, Key: k}
}
