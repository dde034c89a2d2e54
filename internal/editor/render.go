package editor

import (
	"bytes"
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/Garsondee/grid-painter/internal/grid"
)

var (
	outlineColor  = color.NRGBA{R: 0, G: 0, B: 0, A: 128}
	coveredShade  = color.NRGBA{R: 255, G: 255, B: 255, A: 13}
	hoveredShade  = color.NRGBA{R: 255, G: 255, B: 255, A: 51}
	selectionEdge = color.NRGBA{R: 255, G: 255, B: 255, A: 160}
)

// Renderer draws a session. It never mutates the board or the selection
// apart from draining the board's dirty set.
type Renderer struct {
	cellSize int
	boardBuf *ebiten.Image // board at 1 cell = cellSize px, origin (0,0)
	face     *text.GoTextFace
}

// NewRenderer allocates the board buffer and loads the UI font.
func NewRenderer(board *grid.Board, cellSize int) (*Renderer, error) {
	src, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		return nil, fmt.Errorf("load ui font: %w", err)
	}
	board.MarkAllDirty()
	return &Renderer{
		cellSize: cellSize,
		boardBuf: ebiten.NewImage(board.Width()*cellSize, board.Height()*cellSize),
		face:     &text.GoTextFace{Source: src, Size: 13},
	}, nil
}

// Face returns the UI font face.
func (r *Renderer) Face() text.Face { return r.face }

// Draw renders the board, the drag overlay and the hover highlight.
func (r *Renderer) Draw(screen *ebiten.Image, s *Session) {
	b := s.Board()
	size := float32(r.cellSize)

	// Only changed cells are repainted into the cached board.
	b.DrainDirty(func(c *grid.Cell) {
		drawCell(r.boardBuf, c, float32(c.Pos.X)*size, float32(c.Pos.Y)*size, size)
	})

	m := s.Mapper()
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(m.Canvas.Min.X), float64(m.Canvas.Min.Y))
	screen.DrawImage(r.boardBuf, op)

	covered := s.Engine().Covered()
	for _, c := range covered {
		x, y, w, h := m.CellRect(c.Pos)
		drawCell(screen, c, x, y, w)
		vector.FillRect(screen, x, y, w, h, coveredShade, false)
	}
	if len(covered) > 0 {
		first, last := covered[0], covered[len(covered)-1]
		x0, y0, _, _ := m.CellRect(first.Pos)
		x1, y1, w, h := m.CellRect(last.Pos)
		vector.StrokeRect(screen, x0, y0, x1+w-x0, y1+h-y0, 2, selectionEdge, false)
	}

	if hc := s.Hovered(); hc != nil && !s.Engine().Active() {
		x, y, w, h := m.CellRect(hc.Pos)
		drawCell(screen, hc, x, y, w)
		vector.FillRect(screen, x, y, w, h, hoveredShade, false)
	}
}

// drawCell paints one cell: ground fill, entity disc, outline.
func drawCell(dst *ebiten.Image, c *grid.Cell, x, y, size float32) {
	vector.FillRect(dst, x, y, size, size, c.Ground.Color(), false)
	if ec, ok := c.Entity.Color(); ok {
		cx, cy := x+size/2, y+size/2
		vector.FillCircle(dst, cx, cy, size/3, ec, true)
		vector.StrokeCircle(dst, cx, cy, size/3, 1, outlineColor, true)
	}
	vector.StrokeRect(dst, x+0.5, y+0.5, size-1, size-1, 1, outlineColor, false)
}
