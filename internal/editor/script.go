package editor

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/Garsondee/grid-painter/internal/grid"
	"github.com/Garsondee/grid-painter/internal/input"
)

// Stroke is one scripted drag in cell space.
type Stroke struct {
	From  grid.Vec
	To    grid.Vec
	Paint grid.Paint
}

func (s Stroke) String() string {
	return fmt.Sprintf("%d,%d:%d,%d=%s", s.From.X, s.From.Y, s.To.X, s.To.Y, s.Paint)
}

// ParseStroke parses "x0,y0:x1,y1=KIND" where KIND is accepted by
// grid.ParsePaint. A single cell may be written "x,y=KIND".
func ParseStroke(raw string) (Stroke, error) {
	span, kind, ok := strings.Cut(raw, "=")
	if !ok {
		return Stroke{}, fmt.Errorf("stroke %q: missing \"=KIND\"", raw)
	}
	paint, err := grid.ParsePaint(kind)
	if err != nil {
		return Stroke{}, fmt.Errorf("stroke %q: %w", raw, err)
	}
	fromRaw, toRaw, ranged := strings.Cut(span, ":")
	if !ranged {
		toRaw = fromRaw
	}
	from, err := parseVec(fromRaw)
	if err != nil {
		return Stroke{}, fmt.Errorf("stroke %q: %w", raw, err)
	}
	to, err := parseVec(toRaw)
	if err != nil {
		return Stroke{}, fmt.Errorf("stroke %q: %w", raw, err)
	}
	return Stroke{From: from, To: to, Paint: paint}, nil
}

// ParseCell parses "x,y".
func ParseCell(raw string) (grid.Vec, error) {
	return parseVec(raw)
}

func parseVec(raw string) (grid.Vec, error) {
	xs, ys, ok := strings.Cut(strings.TrimSpace(raw), ",")
	if !ok {
		return grid.Vec{}, fmt.Errorf("cell %q: want \"x,y\"", raw)
	}
	x, err := strconv.Atoi(strings.TrimSpace(xs))
	if err != nil {
		return grid.Vec{}, fmt.Errorf("cell %q: %w", raw, err)
	}
	y, err := strconv.Atoi(strings.TrimSpace(ys))
	if err != nil {
		return grid.Vec{}, fmt.Errorf("cell %q: %w", raw, err)
	}
	return grid.Vec{X: x, Y: y}, nil
}

// Replay performs each stroke as press, move, release at cell centers,
// going through the same tracker and mapper as live mouse input. Cells off
// the board map to pixels off the canvas and behave like a real pointer
// there.
func (s *Session) Replay(strokes ...Stroke) error {
	tr := input.NewTracker(s.mapper.Canvas)
	for _, st := range strokes {
		if err := s.SetPaint(st.Paint); err != nil {
			return err
		}
		from, to := s.windowPixel(st.From), s.windowPixel(st.To)
		samples := []struct {
			pressed bool
			at      grid.Pixel
		}{
			{false, from},
			{true, from},
			{true, to},
			{false, to},
		}
		for _, smp := range samples {
			s.Tick()
			for _, ev := range tr.Sample(smp.pressed, int(smp.at.X), int(smp.at.Y)) {
				if err := s.HandleEvent(ev); err != nil {
					return fmt.Errorf("stroke %s: %w", st, err)
				}
			}
		}
	}
	return nil
}

// windowPixel returns the window position of the center of cell v.
func (s *Session) windowPixel(v grid.Vec) grid.Pixel {
	c := input.CellToPixelCenter(v, s.mapper.CellSize)
	return grid.Pixel{X: c.X + float64(s.mapper.Canvas.Min.X), Y: c.Y + float64(s.mapper.Canvas.Min.Y)}
}
