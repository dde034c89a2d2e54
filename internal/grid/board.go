package grid

import (
	"fmt"
	"iter"

	"github.com/kamstrup/intmap"
)

// Cell is one grid location. Cells are owned by their Board and only
// change through Board.Apply.
type Cell struct {
	Pos    Vec
	Ground GroundKind
	Entity EntityKind // EntityEmpty if nothing is placed
}

// HasEntity reports whether an entity other than EntityEmpty sits on the cell.
func (c *Cell) HasEntity() bool {
	return c.Entity != EntityEmpty
}

// Board is a fixed-size grid of cells.
type Board struct {
	width  int
	height int
	cells  []Cell // row-major: index = y*width + x

	// dirty holds indices of cells changed since the last DrainDirty.
	dirty *intmap.Set[int]
}

// NewBoard creates a width x height board of dirt cells with no entities.
func NewBoard(width, height int) (*Board, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidDimension, width, height)
	}
	cells := make([]Cell, width*height)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			cells[y*width+x] = Cell{Pos: Vec{X: x, Y: y}, Ground: GroundDirt, Entity: EntityEmpty}
		}
	}
	return &Board{
		width:  width,
		height: height,
		cells:  cells,
		dirty:  intmap.NewSet[int](width * height),
	}, nil
}

// Width returns the number of columns.
func (b *Board) Width() int { return b.width }

// Height returns the number of rows.
func (b *Board) Height() int { return b.height }

// Len returns the number of cells, always Width()*Height().
func (b *Board) Len() int { return len(b.cells) }

// InBounds reports whether v lies on the board.
func (b *Board) InBounds(v Vec) bool {
	return v.X >= 0 && v.X < b.width && v.Y >= 0 && v.Y < b.height
}

// CellAt returns the cell at v, or nil if v is off the board.
func (b *Board) CellAt(v Vec) *Cell {
	if !b.InBounds(v) {
		return nil
	}
	return &b.cells[v.Y*b.width+v.X]
}

// Cell is CellAt with an ErrOutOfBounds error instead of a nil result.
func (b *Board) Cell(v Vec) (*Cell, error) {
	c := b.CellAt(v)
	if c == nil {
		return nil, fmt.Errorf("%w: %s on %dx%d board", ErrOutOfBounds, v, b.width, b.height)
	}
	return c, nil
}

// CellsInRect returns the cells inside the closed rectangle
// [topLeft.X, bottomRight.X] x [topLeft.Y, bottomRight.Y], clamped to the
// board, in row-major order. Rectangles off the board yield no cells.
func (b *Board) CellsInRect(topLeft, bottomRight Vec) []*Cell {
	x0 := max(topLeft.X, 0)
	y0 := max(topLeft.Y, 0)
	x1 := min(bottomRight.X, b.width-1)
	y1 := min(bottomRight.Y, b.height-1)
	if x0 > x1 || y0 > y1 {
		return nil
	}
	out := make([]*Cell, 0, (x1-x0+1)*(y1-y0+1))
	for y := y0; y <= y1; y++ {
		row := y * b.width
		for x := x0; x <= x1; x++ {
			out = append(out, &b.cells[row+x])
		}
	}
	return out
}

// All yields every cell in row-major order. The sequence can be ranged over
// any number of times.
func (b *Board) All() iter.Seq[*Cell] {
	return func(yield func(*Cell) bool) {
		for i := range b.cells {
			if !yield(&b.cells[i]) {
				return
			}
		}
	}
}

// Apply writes p into every given cell and returns how many cells actually
// changed. An invalid paint is rejected before any cell is touched.
// Cells must belong to b.
func (b *Board) Apply(cells []*Cell, p Paint) (int, error) {
	if err := p.Validate(); err != nil {
		return 0, err
	}
	changed := 0
	for _, c := range cells {
		if p.paint(c) {
			b.dirty.Add(c.Pos.Y*b.width + c.Pos.X)
			changed++
		}
	}
	return changed, nil
}

// MarkAllDirty flags every cell for redraw.
func (b *Board) MarkAllDirty() {
	for i := range b.cells {
		b.dirty.Add(i)
	}
}

// DirtyCount returns the number of cells changed since the last DrainDirty.
func (b *Board) DirtyCount() int { return b.dirty.Len() }

// DrainDirty calls fn for each changed cell, then clears the dirty set.
func (b *Board) DrainDirty(fn func(*Cell)) {
	b.dirty.ForEach(func(i int) bool {
		fn(&b.cells[i])
		return true
	})
	b.dirty.Clear()
}
