// Package input converts raw pointer positions into board coordinates and
// turns per-frame mouse samples into pointer events.
package input

import (
	"image"
	"math"

	"github.com/Garsondee/grid-painter/internal/grid"
)

// PixelToCell maps a canvas-local pixel position to the cell containing it.
// There is no bounds check; callers clamp against the board.
func PixelToCell(p grid.Pixel, cellSize float64) grid.Vec {
	return grid.Vec{
		X: int(math.Floor(p.X / cellSize)),
		Y: int(math.Floor(p.Y / cellSize)),
	}
}

// CellToPixelCenter returns the canvas-local pixel at the center of cell v.
func CellToPixelCenter(v grid.Vec, cellSize float64) grid.Pixel {
	return grid.Pixel{
		X: (float64(v.X) + 0.5) * cellSize,
		Y: (float64(v.Y) + 0.5) * cellSize,
	}
}

// EventToLocalPixel converts a window position into canvas-local pixels by
// subtracting the canvas origin.
func EventToLocalPixel(raw grid.Pixel, canvas image.Rectangle) grid.Pixel {
	return raw.Sub(grid.Pixel{X: float64(canvas.Min.X), Y: float64(canvas.Min.Y)})
}

// Mapper bundles the canvas placement and cell size used for conversions.
type Mapper struct {
	CellSize float64
	Canvas   image.Rectangle // canvas bounds in window pixels
}

// NewMapper places a cols x rows board of square cells at origin.
func NewMapper(origin image.Point, cellSize, cols, rows int) Mapper {
	return Mapper{
		CellSize: float64(cellSize),
		Canvas:   image.Rect(origin.X, origin.Y, origin.X+cols*cellSize, origin.Y+rows*cellSize),
	}
}

// Local converts a window position to canvas-local pixels.
func (m Mapper) Local(raw grid.Pixel) grid.Pixel {
	return EventToLocalPixel(raw, m.Canvas)
}

// Cell returns the cell under a window position.
func (m Mapper) Cell(raw grid.Pixel) grid.Vec {
	return PixelToCell(m.Local(raw), m.CellSize)
}

// Inside reports whether a window position falls on the canvas.
func (m Mapper) Inside(raw grid.Pixel) bool {
	return raw.X >= float64(m.Canvas.Min.X) && raw.X < float64(m.Canvas.Max.X) &&
		raw.Y >= float64(m.Canvas.Min.Y) && raw.Y < float64(m.Canvas.Max.Y)
}

// CellRect returns the window-space rectangle covered by cell v.
func (m Mapper) CellRect(v grid.Vec) (x, y, w, h float32) {
	s := float32(m.CellSize)
	return float32(m.Canvas.Min.X) + float32(v.X)*s, float32(m.Canvas.Min.Y) + float32(v.Y)*s, s, s
}
