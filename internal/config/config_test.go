package config

import (
	"flag"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Garsondee/grid-painter/internal/grid"
)

func TestParseBoardSize(t *testing.T) {
	tests := []struct {
		raw     string
		w, h    int
		wantErr string
	}{
		{raw: "20 20", w: 20, h: 20},
		{raw: "  8\t3 ", w: 8, h: 3},
		{raw: "1 1", w: 1, h: 1},
		{raw: "20", wantErr: "wrong number of arguments"},
		{raw: "", wantErr: "wrong number of arguments"},
		{raw: "1 2 3", wantErr: "wrong number of arguments"},
		{raw: "a 5", wantErr: "values provided are not numbers"},
		{raw: "5 2.5", wantErr: "values provided are not numbers"},
		{raw: "0 5", wantErr: "values must be positive"},
		{raw: "5 -1", wantErr: "values must be positive"},
	}
	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			w, h, err := ParseBoardSize(tt.raw)
			if tt.wantErr != "" {
				assert.ErrorIs(t, err, grid.ErrInvalidDimension)
				assert.ErrorContains(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.w, w)
			assert.Equal(t, tt.h, h)
		})
	}
}

func TestDefault(t *testing.T) {
	cfg := Default()
	assert.Equal(t, Config{Width: 20, Height: 20, CellSize: 45, Title: DefaultTitle}, cfg)
	assert.NoError(t, cfg.Validate())
}

func TestFromFlags(t *testing.T) {
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	cfg, err := FromFlags(fs, []string{"-size", "12 7", "-cell", "32"})
	require.NoError(t, err)
	assert.Equal(t, 12, cfg.Width)
	assert.Equal(t, 7, cfg.Height)
	assert.Equal(t, 32, cfg.CellSize)
}

func TestFromFlags_Errors(t *testing.T) {
	for _, args := range [][]string{
		{"-size", "12"},
		{"-size", "x y"},
		{"-cell", "0"},
		{"-bogus"},
	} {
		fs := flag.NewFlagSet("test", flag.ContinueOnError)
		fs.SetOutput(io.Discard)
		_, err := FromFlags(fs, args)
		assert.Error(t, err, "args %v", args)
	}
}
