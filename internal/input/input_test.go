package input

import (
	"image"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Garsondee/grid-painter/internal/grid"
)

func TestPixelToCell(t *testing.T) {
	tests := []struct {
		p    grid.Pixel
		want grid.Vec
	}{
		{grid.Pixel{X: 0, Y: 0}, grid.V(0, 0)},
		{grid.Pixel{X: 44.9, Y: 44.9}, grid.V(0, 0)},
		{grid.Pixel{X: 45, Y: 90}, grid.V(1, 2)},
		{grid.Pixel{X: 899.5, Y: 10}, grid.V(19, 0)},
		{grid.Pixel{X: -0.1, Y: -45}, grid.V(-1, -1)},
		{grid.Pixel{X: -46, Y: 2000}, grid.V(-2, 44)},
	}
	for _, tt := range tests {
		t.Run(tt.p.String(), func(t *testing.T) {
			assert.Equal(t, tt.want, PixelToCell(tt.p, 45))
		})
	}
}

func TestCellCenterRoundTrip(t *testing.T) {
	for _, size := range []float64{1, 7, 16, 45, 64.5} {
		for x := 0; x < 20; x++ {
			for y := 0; y < 20; y++ {
				v := grid.V(x, y)
				assert.Equal(t, v, PixelToCell(CellToPixelCenter(v, size), size), "size=%v v=%s", size, v)
			}
		}
	}
}

func TestEventToLocalPixel(t *testing.T) {
	canvas := image.Rect(24, 30, 924, 930)
	got := EventToLocalPixel(grid.Pixel{X: 100, Y: 40.5}, canvas)
	assert.Equal(t, grid.Pixel{X: 76, Y: 10.5}, got)
}

func TestMapper(t *testing.T) {
	m := NewMapper(image.Pt(10, 20), 45, 4, 3)
	assert.Equal(t, image.Rect(10, 20, 190, 155), m.Canvas)

	assert.Equal(t, grid.V(0, 0), m.Cell(grid.Pixel{X: 10, Y: 20}))
	assert.Equal(t, grid.V(3, 2), m.Cell(grid.Pixel{X: 189, Y: 154}))
	assert.Equal(t, grid.V(-1, 0), m.Cell(grid.Pixel{X: 9, Y: 20}))

	assert.True(t, m.Inside(grid.Pixel{X: 10, Y: 20}))
	assert.False(t, m.Inside(grid.Pixel{X: 190, Y: 20}))
	assert.False(t, m.Inside(grid.Pixel{X: 50, Y: 155}))

	x, y, w, h := m.CellRect(grid.V(2, 1))
	assert.Equal(t, []float32{100, 65, 45, 45}, []float32{x, y, w, h})
}

func kinds(evs []Event) []EventKind {
	out := make([]EventKind, len(evs))
	for i, e := range evs {
		out[i] = e.Kind
	}
	return out
}

func TestTracker_DragInsideCanvas(t *testing.T) {
	tr := NewTracker(image.Rect(0, 0, 100, 100))

	assert.Equal(t, []EventKind{Move}, kinds(tr.Sample(false, 10, 10)))
	assert.Empty(t, tr.Sample(false, 10, 10), "no motion, no events")

	evs := tr.Sample(true, 10, 10)
	assert.Equal(t, []Event{{Kind: Down, Pos: grid.Pixel{X: 10, Y: 10}}}, evs)

	assert.Empty(t, tr.Sample(true, 10, 10), "held without motion")
	assert.Equal(t, []EventKind{Move}, kinds(tr.Sample(true, 50, 60)))

	evs = tr.Sample(false, 50, 60)
	assert.Equal(t, []Event{{Kind: Up, Pos: grid.Pixel{X: 50, Y: 60}}}, evs)
}

func TestTracker_ReleaseOutsideCanvas(t *testing.T) {
	tr := NewTracker(image.Rect(0, 0, 100, 100))
	tr.Sample(false, 90, 90)
	tr.Sample(true, 90, 90)

	assert.Equal(t, []EventKind{Leave}, kinds(tr.Sample(true, 150, 90)))
	assert.Empty(t, tr.Sample(true, 160, 95), "moves off canvas are not reported")

	evs := tr.Sample(false, 170, 95)
	assert.Equal(t, []Event{{Kind: Up, Pos: grid.Pixel{X: 170, Y: 95}}}, evs)
}

func TestTracker_PressOutsideCanvasStillReportsDown(t *testing.T) {
	tr := NewTracker(image.Rect(0, 0, 100, 100))
	evs := tr.Sample(true, 300, 10)
	assert.Equal(t, []Event{{Kind: Down, Pos: grid.Pixel{X: 300, Y: 10}}}, evs)
}

func TestTracker_MoveAndPressSameFrame(t *testing.T) {
	tr := NewTracker(image.Rect(0, 0, 100, 100))
	tr.Sample(false, 5, 5)
	assert.Equal(t, []EventKind{Move, Down}, kinds(tr.Sample(true, 20, 20)))
}
