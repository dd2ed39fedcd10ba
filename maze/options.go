package maze

import (
	"fmt"
	"io"
	"log/slog"
)

// Option configures a Maze via functional arguments.
// An invalid Option is recorded and surfaced as ErrOptionViolation by New.
type Option func(*Options)

// Options holds the construction parameters of a Maze.
type Options struct {
	// Mode selects flat or cube layout.
	Mode Mode

	// Size is the number of cells along each side of every grid.
	Size int

	// CellSize is the spatial width of a cell, used by CellAt/PositionOf.
	CellSize float64

	// Origin is the centre of cell (0,0) in every face plane.
	Origin Position

	// Seed drives weights and random choices. Zero selects the default seed.
	Seed int64

	// FullCoverage makes IsValid require every cell to be visited.
	FullCoverage bool

	// Logger receives debug events. Defaults to a discarding logger.
	Logger *slog.Logger

	err error
}

// DefaultOptions returns a 4×4 flat maze with unit cells, seed 0,
// no coverage requirement and a discarding logger.
func DefaultOptions() Options {
	return Options{
		Mode:     ModeFlat,
		Size:     4,
		CellSize: 1,
		Logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

// WithMode selects ModeFlat or ModeCube.
func WithMode(m Mode) Option {
	return func(o *Options) {
		if m != ModeFlat && m != ModeCube {
			o.err = fmt.Errorf("%w: unknown mode %d", ErrOptionViolation, uint8(m))
			return
		}
		o.Mode = m
	}
}

// WithSize sets the side length of every grid.
//
//	n >= 1: accepted (cube mode additionally needs n >= 2, checked by New)
//	n < 1:  ErrOptionViolation
func WithSize(n int) Option {
	return func(o *Options) {
		if n < 1 {
			o.err = fmt.Errorf("%w: size must be positive (%d)", ErrOptionViolation, n)
			return
		}
		o.Size = n
	}
}

// WithCellSize sets the spatial width of a cell; it must be positive.
func WithCellSize(s float64) Option {
	return func(o *Options) {
		if !(s > 0) {
			o.err = fmt.Errorf("%w: cell size must be positive (%v)", ErrOptionViolation, s)
			return
		}
		o.CellSize = s
	}
}

// WithOrigin sets the centre of cell (0,0).
func WithOrigin(p Position) Option {
	return func(o *Options) {
		o.Origin = p
	}
}

// WithSeed fixes the random stream.
func WithSeed(seed int64) Option {
	return func(o *Options) {
		o.Seed = seed
	}
}

// WithFullCoverage toggles the every-cell-visited requirement of IsValid.
func WithFullCoverage(on bool) Option {
	return func(o *Options) {
		o.FullCoverage = on
	}
}

// WithLogger sets the debug logger; nil is ignored.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}
