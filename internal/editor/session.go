package editor

import (
	"errors"
	"fmt"
	"image"
	"image/color"

	"github.com/sirupsen/logrus"

	"github.com/Garsondee/grid-painter/internal/config"
	"github.com/Garsondee/grid-painter/internal/grid"
	"github.com/Garsondee/grid-painter/internal/input"
	"github.com/Garsondee/grid-painter/internal/selection"
)

// Session is one open editor: the board, the drag engine and the current
// paint. Everything runs on the ebiten update goroutine.
type Session struct {
	board    *grid.Board
	engine   *selection.Engine
	mapper   input.Mapper
	paint    grid.Paint
	hovered  *grid.Cell
	activity *ActivityLog
	log      logrus.FieldLogger
	frame    int
}

// NewSession creates the board described by cfg with its canvas at origin.
func NewSession(cfg config.Config, origin image.Point, log logrus.FieldLogger) (*Session, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	board, err := grid.NewBoard(cfg.Width, cfg.Height)
	if err != nil {
		return nil, err
	}
	if log == nil {
		log = logrus.StandardLogger()
	}
	log = log.WithField("component", "session")
	s := &Session{
		board:    board,
		engine:   selection.New(board, log),
		mapper:   input.NewMapper(origin, cfg.CellSize, cfg.Width, cfg.Height),
		paint:    grid.GroundPaint(grid.GroundDirt),
		activity: NewActivityLog(),
		log:      log,
	}
	log.WithFields(logrus.Fields{"width": cfg.Width, "height": cfg.Height, "cell": cfg.CellSize}).Info("board created")
	return s, nil
}

// Board returns the session's board.
func (s *Session) Board() *grid.Board { return s.board }

// Engine returns the drag engine.
func (s *Session) Engine() *selection.Engine { return s.engine }

// Mapper returns the canvas mapping.
func (s *Session) Mapper() input.Mapper { return s.mapper }

// Activity returns the activity log.
func (s *Session) Activity() *ActivityLog { return s.activity }

// Paint returns the paint applied on the next commit.
func (s *Session) Paint() grid.Paint { return s.paint }

// SetPaint selects the paint for subsequent commits.
func (s *Session) SetPaint(p grid.Paint) error {
	if err := p.Validate(); err != nil {
		return err
	}
	if p != s.paint {
		s.log.WithField("paint", p).Debug("paint selected")
	}
	s.paint = p
	return nil
}

// Hovered returns the cell under the pointer, or nil when the pointer is off
// the canvas.
func (s *Session) Hovered() *grid.Cell { return s.hovered }

// Tick advances the frame counter used to stamp activity entries.
func (s *Session) Tick() { s.frame++ }

// HandleEvent feeds one pointer event through the mapper into the engine.
// The only error returned is grid.ErrInvalidPaintValue, which is fatal.
func (s *Session) HandleEvent(ev input.Event) error {
	switch ev.Kind {
	case input.Down:
		if !s.mapper.Inside(ev.Pos) {
			return nil
		}
		return s.ignoreTransition(s.engine.Begin(s.mapper.Cell(ev.Pos)))

	case input.Move:
		cell := s.mapper.Cell(ev.Pos)
		s.hovered = s.board.CellAt(cell)
		if s.engine.Active() {
			return s.ignoreTransition(s.engine.Update(cell))
		}
		return nil

	case input.Up:
		// A release off the canvas commits the last rectangle seen over it.
		cell := s.engine.Selection().Cursor
		if s.mapper.Inside(ev.Pos) {
			cell = s.mapper.Cell(ev.Pos)
		}
		res, err := s.engine.End(cell, s.paint)
		if err != nil {
			return s.ignoreTransition(err)
		}
		s.activity.Add(s.frame, paintColor(res.Paint), fmt.Sprintf("%s %s-%s x%d",
			res.Paint, res.TopLeft, res.BottomRight, res.Changed))
		s.log.WithFields(logrus.Fields{
			"paint":   res.Paint,
			"covered": res.Covered,
			"changed": res.Changed,
		}).Info("selection painted")
		return nil

	case input.Leave:
		// The drag stays alive; only the hover highlight goes.
		s.hovered = nil
		return nil

	default:
		return fmt.Errorf("unknown pointer event %v", ev.Kind)
	}
}

// Cancel drops an in-progress drag without painting.
func (s *Session) Cancel() {
	if s.engine.Cancel() {
		s.activity.Add(s.frame, color.RGBA{}, "drag cancelled")
		s.log.Info("selection cancelled")
	}
}

// ignoreTransition swallows out-of-order pointer events; the engine already
// logged them.
func (s *Session) ignoreTransition(err error) error {
	if errors.Is(err, selection.ErrInvalidTransition) {
		return nil
	}
	return err
}

func paintColor(p grid.Paint) color.RGBA {
	if g, ok := p.Ground(); ok {
		return g.Color()
	}
	if e, ok := p.Entity(); ok {
		c, _ := e.Color()
		return c
	}
	return color.RGBA{}
}
