package input

import (
	"fmt"
	"image"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/Garsondee/grid-painter/internal/grid"
)

// EventKind is the type of a pointer event.
type EventKind uint8

const (
	Down  EventKind = iota // button pressed
	Move                   // cursor moved over the canvas
	Up                     // button released, anywhere in the window
	Leave                  // cursor left the canvas
)

func (k EventKind) String() string {
	switch k {
	case Down:
		return "down"
	case Move:
		return "move"
	case Up:
		return "up"
	case Leave:
		return "leave"
	default:
		return fmt.Sprintf("EventKind(%d)", uint8(k))
	}
}

// Event is one pointer event in window pixels.
type Event struct {
	Kind EventKind
	Pos  grid.Pixel // unused for Leave
}

func (e Event) String() string {
	return fmt.Sprintf("%s%s", e.Kind, e.Pos)
}

// Tracker derives pointer events from per-frame mouse samples. Moves are
// only reported over the canvas; releases are reported wherever they happen.
type Tracker struct {
	canvas      image.Rectangle
	prevPressed bool
	prevPos     grid.Pixel
	prevInside  bool
	sampled     bool
	buf         []Event
}

// NewTracker creates a tracker for a canvas at the given window bounds.
func NewTracker(canvas image.Rectangle) *Tracker {
	return &Tracker{canvas: canvas, buf: make([]Event, 0, 4)}
}

// Sample feeds one frame of mouse state and returns the resulting events in
// order. The returned slice is reused by the next call.
func (t *Tracker) Sample(pressed bool, x, y int) []Event {
	t.buf = t.buf[:0]
	pos := grid.Pixel{X: float64(x), Y: float64(y)}
	inside := image.Pt(x, y).In(t.canvas)

	moved := !t.sampled || pos != t.prevPos
	if inside && moved {
		t.buf = append(t.buf, Event{Kind: Move, Pos: pos})
	}
	if t.prevInside && !inside {
		t.buf = append(t.buf, Event{Kind: Leave})
	}
	switch {
	case pressed && !t.prevPressed:
		t.buf = append(t.buf, Event{Kind: Down, Pos: pos})
	case !pressed && t.prevPressed:
		t.buf = append(t.buf, Event{Kind: Up, Pos: pos})
	}

	t.prevPressed = pressed
	t.prevPos = pos
	t.prevInside = inside
	t.sampled = true
	return t.buf
}

// Poll samples the left mouse button and cursor from ebiten. Call it once
// per Update.
func (t *Tracker) Poll() []Event {
	x, y := ebiten.CursorPosition()
	return t.Sample(ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft), x, y)
}
