package editor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Garsondee/grid-painter/internal/grid"
)

func TestParseStroke(t *testing.T) {
	tests := []struct {
		raw  string
		want Stroke
	}{
		{"2,2:4,4=GRASS", Stroke{From: grid.V(2, 2), To: grid.V(4, 4), Paint: grid.GroundPaint(grid.GroundGrass)}},
		{"4, 4 : 2,2=entity:tree", Stroke{From: grid.V(4, 4), To: grid.V(2, 2), Paint: grid.EntityPaint(grid.EntityTree)}},
		{"7,1=WATER", Stroke{From: grid.V(7, 1), To: grid.V(7, 1), Paint: grid.GroundPaint(grid.GroundWater)}},
		{"-3,0:25,25=EMPTY", Stroke{From: grid.V(-3, 0), To: grid.V(25, 25), Paint: grid.EntityPaint(grid.EntityEmpty)}},
	}
	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got, err := ParseStroke(tt.raw)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	for _, bad := range []string{"2,2:4,4", "2,2:4,4=LAVA", "2:4,4=GRASS", "a,2=GRASS", "1,2:3,b=GRASS"} {
		_, err := ParseStroke(bad)
		assert.Error(t, err, "input %q", bad)
	}
}

func TestReplay_ScenarioD(t *testing.T) {
	s, _ := newSession(t)
	require.NoError(t, s.Replay(Stroke{From: grid.V(2, 2), To: grid.V(4, 4), Paint: grid.GroundPaint(grid.GroundGrass)}))

	for c := range s.Board().All() {
		in := c.Pos.X >= 2 && c.Pos.X <= 4 && c.Pos.Y >= 2 && c.Pos.Y <= 4
		assert.Equal(t, in, c.Ground == grid.GroundGrass, "cell %s", c.Pos)
	}
	assert.False(t, s.Engine().Active())
}

func TestReplay_CursorBeyondEdgeClamps(t *testing.T) {
	s, _ := newSession(t)
	require.NoError(t, s.Replay(Stroke{From: grid.V(19, 19), To: grid.V(25, 25), Paint: grid.GroundPaint(grid.GroundSnow)}))

	assert.Equal(t, 1, groundsIn(s.Board(), grid.GroundSnow))
	assert.Equal(t, grid.GroundSnow, s.Board().CellAt(grid.V(19, 19)).Ground)
}

func TestReplay_LayersAndOrder(t *testing.T) {
	s, _ := newSession(t)
	require.NoError(t, s.Replay(
		Stroke{From: grid.V(0, 0), To: grid.V(3, 0), Paint: grid.GroundPaint(grid.GroundWater)},
		Stroke{From: grid.V(1, 0), To: grid.V(1, 0), Paint: grid.EntityPaint(grid.EntityRock)},
		Stroke{From: grid.V(3, 0), To: grid.V(2, 0), Paint: grid.GroundPaint(grid.GroundSand)},
	))

	b := s.Board()
	assert.Equal(t, grid.GroundWater, b.CellAt(grid.V(0, 0)).Ground)
	assert.Equal(t, grid.GroundWater, b.CellAt(grid.V(1, 0)).Ground)
	assert.Equal(t, grid.EntityRock, b.CellAt(grid.V(1, 0)).Entity)
	assert.Equal(t, grid.GroundSand, b.CellAt(grid.V(2, 0)).Ground)
	assert.Equal(t, grid.GroundSand, b.CellAt(grid.V(3, 0)).Ground)
	last, ok := s.Paint().Ground()
	require.True(t, ok)
	assert.Equal(t, grid.GroundSand, last)
	assert.Equal(t, 3, s.Activity().Len())
}
