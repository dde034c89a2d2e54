// Package config holds editor start-up settings and the board size parser.
package config

import (
	"errors"
	"flag"
	"fmt"
	"strconv"
	"strings"

	"github.com/Garsondee/grid-painter/internal/grid"
)

const (
	// DefaultBoardSize is used when no -size flag is given.
	DefaultBoardSize = "20 20"
	// DefaultCellSize is the edge length of one cell in pixels.
	DefaultCellSize = 45
	// DefaultTitle is the window title.
	DefaultTitle = "Grid Painter"
)

// Config is the validated start-up configuration.
type Config struct {
	Width    int // board columns
	Height   int // board rows
	CellSize int // pixels per cell edge
	Title    string
}

// Default returns a 20x20 board at 45px per cell.
func Default() Config {
	w, h, _ := ParseBoardSize(DefaultBoardSize)
	return Config{Width: w, Height: h, CellSize: DefaultCellSize, Title: DefaultTitle}
}

// Validate checks dimensions and cell size.
func (c Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("%w: %dx%d", grid.ErrInvalidDimension, c.Width, c.Height)
	}
	if c.CellSize <= 0 {
		return fmt.Errorf("cell size must be > 0, got %d", c.CellSize)
	}
	return nil
}

// ParseBoardSize parses "W H" into two positive integers. Every failure
// wraps grid.ErrInvalidDimension.
func ParseBoardSize(raw string) (width, height int, err error) {
	fields := strings.Fields(raw)
	if len(fields) != 2 {
		return 0, 0, fmt.Errorf("%w: wrong number of arguments: want \"W H\", got %q", grid.ErrInvalidDimension, raw)
	}
	width, errW := strconv.Atoi(fields[0])
	height, errH := strconv.Atoi(fields[1])
	if err := errors.Join(errW, errH); err != nil {
		return 0, 0, fmt.Errorf("%w: values provided are not numbers: %q", grid.ErrInvalidDimension, raw)
	}
	if width <= 0 || height <= 0 {
		return 0, 0, fmt.Errorf("%w: values must be positive: %q", grid.ErrInvalidDimension, raw)
	}
	return width, height, nil
}

// FromFlags registers -size, -cell and -title on fs, parses args and
// returns the resulting configuration.
func FromFlags(fs *flag.FlagSet, args []string) (Config, error) {
	cfg := Default()
	var size string
	fs.StringVar(&size, "size", DefaultBoardSize, `board size as "W H"`)
	fs.IntVar(&cfg.CellSize, "cell", DefaultCellSize, "cell edge length in pixels")
	fs.StringVar(&cfg.Title, "title", DefaultTitle, "window title")
	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	w, h, err := ParseBoardSize(size)
	if err != nil {
		return Config{}, err
	}
	cfg.Width, cfg.Height = w, h
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
