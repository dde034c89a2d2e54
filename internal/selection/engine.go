// Package selection implements the rectangular drag-selection state machine
// that paints ground and entities onto a grid.Board.
package selection

import (
	"errors"
	"fmt"
	"io"

	"github.com/sirupsen/logrus"

	"github.com/Garsondee/grid-painter/internal/grid"
)

// ErrInvalidTransition is returned when an operation is called in a state
// that does not accept it. The engine is left unchanged.
var ErrInvalidTransition = errors.New("invalid selection transition")

// State is the drag state of an Engine.
type State uint8

const (
	Idle      State = iota // no drag in progress
	Selecting              // pointer held, rectangle tracking the cursor
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Selecting:
		return "selecting"
	default:
		return fmt.Sprintf("State(%d)", uint8(s))
	}
}

// Selection is the rectangle spanned by a drag and the cells it covers.
type Selection struct {
	Anchor  grid.Vec
	Cursor  grid.Vec
	Covered []*grid.Cell // row-major, clamped to the board
}

// Rect returns the normalized corners of the selection.
func (s Selection) Rect() (topLeft, bottomRight grid.Vec) {
	return Normalize(s.Anchor, s.Cursor)
}

// Normalize returns the top-left and bottom-right corners of the rectangle
// spanned by two cells, whatever order they were given in.
func Normalize(a, b grid.Vec) (topLeft, bottomRight grid.Vec) {
	topLeft = grid.Vec{X: min(a.X, b.X), Y: min(a.Y, b.Y)}
	bottomRight = grid.Vec{X: max(a.X, b.X), Y: max(a.Y, b.Y)}
	return topLeft, bottomRight
}

// Applied describes a committed selection.
type Applied struct {
	TopLeft     grid.Vec
	BottomRight grid.Vec
	Paint       grid.Paint
	Covered     int // cells inside the clamped rectangle
	Changed     int // cells whose value actually changed
}

// Engine tracks one drag at a time over a single board. It is not safe for
// concurrent use; the owning session drives it from one goroutine.
type Engine struct {
	board     *grid.Board
	state     State
	selection Selection
	log       logrus.FieldLogger
}

// New creates an idle engine for board. A nil logger discards output.
func New(board *grid.Board, log logrus.FieldLogger) *Engine {
	if log == nil {
		l := logrus.New()
		l.SetOutput(io.Discard)
		log = l
	}
	return &Engine{board: board, log: log}
}

// State returns the current drag state.
func (e *Engine) State() State { return e.state }

// Active reports whether a drag is in progress.
func (e *Engine) Active() bool { return e.state == Selecting }

// Selection returns the current selection. Covered aliases engine memory and
// must be treated as read-only.
func (e *Engine) Selection() Selection { return e.selection }

// Covered returns the cells currently under the selection rectangle.
func (e *Engine) Covered() []*grid.Cell { return e.selection.Covered }

// Begin starts a drag anchored at cell.
func (e *Engine) Begin(cell grid.Vec) error {
	if e.state != Idle {
		return e.reject("begin", cell)
	}
	e.selection.Anchor = cell
	e.selection.Cursor = cell
	e.selection.Covered = nil
	if c := e.board.CellAt(cell); c != nil {
		e.selection.Covered = append(e.selection.Covered, c)
	}
	e.state = Selecting
	e.log.WithFields(logrus.Fields{"cell": cell, "covered": len(e.selection.Covered)}).Debug("selection begin")
	return nil
}

// Update moves the drag cursor to cell and recomputes the covered cells.
func (e *Engine) Update(cell grid.Vec) error {
	if e.state != Selecting {
		return e.reject("update", cell)
	}
	e.selection.Cursor = cell
	tl, br := e.selection.Rect()
	e.selection.Covered = e.board.CellsInRect(tl, br)
	return nil
}

// End finishes the drag at cell and writes p into every covered cell.
// Calling End while idle does nothing. An invalid paint is reported before
// anything changes; the drag stays active.
func (e *Engine) End(cell grid.Vec, p grid.Paint) (Applied, error) {
	if e.state != Selecting {
		return Applied{}, e.reject("end", cell)
	}
	if err := p.Validate(); err != nil {
		e.log.WithError(err).WithField("paint", p).Error("selection end rejected")
		return Applied{}, err
	}
	if err := e.Update(cell); err != nil {
		return Applied{}, err
	}

	tl, br := e.selection.Rect()
	changed, err := e.board.Apply(e.selection.Covered, p)
	if err != nil {
		return Applied{}, err
	}
	res := Applied{
		TopLeft:     tl,
		BottomRight: br,
		Paint:       p,
		Covered:     len(e.selection.Covered),
		Changed:     changed,
	}
	e.reset()
	e.log.WithFields(logrus.Fields{
		"from":    res.TopLeft,
		"to":      res.BottomRight,
		"paint":   res.Paint,
		"covered": res.Covered,
		"changed": res.Changed,
	}).Debug("selection applied")
	return res, nil
}

// Cancel drops the current drag without painting. It reports whether a
// drag was in progress.
func (e *Engine) Cancel() bool {
	if e.state != Selecting {
		return false
	}
	e.reset()
	e.log.Debug("selection cancelled")
	return true
}

func (e *Engine) reset() {
	e.state = Idle
	e.selection.Covered = nil
}

func (e *Engine) reject(op string, cell grid.Vec) error {
	e.log.WithFields(logrus.Fields{"op": op, "state": e.state, "cell": cell}).Debug("selection transition ignored")
	return fmt.Errorf("%w: %s while %s", ErrInvalidTransition, op, e.state)
}
