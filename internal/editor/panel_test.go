package editor

import (
	"fmt"
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Garsondee/grid-painter/internal/grid"
	"github.com/Garsondee/grid-painter/internal/input"
)

func TestPalette_OneButtonPerKind(t *testing.T) {
	p := NewPalette(image.Pt(950, 24), 260)
	require.Len(t, p.buttons, len(grid.GroundKinds())+len(grid.EntityKinds()))

	seen := map[grid.Paint]bool{}
	for _, b := range p.buttons {
		assert.NoError(t, b.paint.Validate())
		assert.False(t, seen[b.paint], "duplicate %s", b.paint)
		seen[b.paint] = true

		center := image.Pt((b.rect.Min.X+b.rect.Max.X)/2, (b.rect.Min.Y+b.rect.Max.Y)/2)
		got, ok := p.Hit(center)
		assert.True(t, ok)
		assert.Equal(t, b.paint, got)
		assert.True(t, center.In(p.Bounds()))
	}
	assert.True(t, seen[grid.EntityPaint(grid.EntityEmpty)], "erase button present")
}

func TestPalette_ButtonsDoNotOverlap(t *testing.T) {
	p := NewPalette(image.Pt(0, 0), 200)
	for i, a := range p.buttons {
		for _, b := range p.buttons[i+1:] {
			assert.True(t, a.rect.Intersect(b.rect).Empty(), "%s overlaps %s", a.label, b.label)
		}
	}
	_, ok := p.Hit(image.Pt(-5, 10))
	assert.False(t, ok)
	_, ok = p.Hit(image.Pt(10, 2)) // header row
	assert.False(t, ok)
}

func TestActivityLog_RingBuffer(t *testing.T) {
	al := NewActivityLog()
	assert.Empty(t, al.Recent())

	for i := 0; i < activityMaxEntries+5; i++ {
		al.Add(i, color.RGBA{}, fmt.Sprintf("entry %d", i))
	}
	got := al.Recent()
	require.Len(t, got, activityMaxEntries)
	assert.Equal(t, "entry 5", got[0].Message)
	assert.Equal(t, fmt.Sprintf("entry %d", activityMaxEntries+4), got[len(got)-1].Message)
	for i := 1; i < len(got); i++ {
		assert.Equal(t, got[i-1].Frame+1, got[i].Frame)
	}
}

func TestInspectorLines(t *testing.T) {
	s, _ := newSession(t)
	lines := inspectorLines(s)
	assert.Equal(t, []string{"paint: ground:DIRT", "cell:  -", "state: idle"}, lines)

	require.NoError(t, s.HandleEvent(input.Event{Kind: input.Move, Pos: at(s, 2, 3)}))
	require.NoError(t, s.HandleEvent(input.Event{Kind: input.Down, Pos: at(s, 2, 3)}))
	require.NoError(t, s.HandleEvent(input.Event{Kind: input.Move, Pos: at(s, 5, 4)}))

	lines = inspectorLines(s)
	assert.Contains(t, lines, "cell:  (5,4)")
	assert.Contains(t, lines, "ground: DIRT")
	assert.Contains(t, lines, "entity: -")
	assert.Contains(t, lines, "drag:  (2,3)-(5,4)")
	assert.Contains(t, lines, "       4x2, 8 cells")
}

func TestPaintColor(t *testing.T) {
	assert.Equal(t, grid.GroundGrass.Color(), paintColor(grid.GroundPaint(grid.GroundGrass)))
	tree, _ := grid.EntityTree.Color()
	assert.Equal(t, tree, paintColor(grid.EntityPaint(grid.EntityTree)))
	assert.Equal(t, color.RGBA{}, paintColor(grid.EntityPaint(grid.EntityEmpty)))
	assert.Equal(t, color.RGBA{}, paintColor(grid.Paint{}))
}
