package frontier

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
)

// ErrDimensions indicates a lattice side shorter than 3 blocks.
var ErrDimensions = errors.New("frontier: every dimension must be at least 3")

// ErrOptionViolation indicates an invalid Option passed to New.
var ErrOptionViolation = errors.New("frontier: invalid option supplied")

// ErrAlreadyCarved indicates Carve was called on a carved lattice.
var ErrAlreadyCarved = errors.New("frontier: lattice already carved")

// Point addresses a block of the lattice.
type Point struct {
	X, Y, Z int
}

// Add returns p shifted by (dx,dy,dz).
func (p Point) Add(dx, dy, dz int) Point {
	return Point{p.X + dx, p.Y + dy, p.Z + dz}
}

func (p Point) String() string {
	return fmt.Sprintf("(%d,%d,%d)", p.X, p.Y, p.Z)
}

// State is the content of one block.
type State uint8

const (
	// Boundary blocks enclose the lattice and are never carved.
	Boundary State = iota
	// Wall blocks are interior and still solid.
	Wall
	// Open blocks have been carved.
	Open
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case Boundary:
		return "boundary"
	case Wall:
		return "wall"
	case Open:
		return "open"
	}
	return fmt.Sprintf("State(%d)", uint8(s))
}

// Default weight bounds: weights are drawn from [DefaultMinWeight, DefaultMaxWeight).
const (
	DefaultMinWeight = 1
	DefaultMaxWeight = 199
)

// Options configures a Lattice.
type Options struct {
	// Seed drives weights and the seed block. Zero selects seed 1.
	Seed int64

	// MinWeight and MaxWeight bound block weights: [MinWeight, MaxWeight).
	MinWeight, MaxWeight int

	// Logger receives a debug summary of each carve.
	Logger *slog.Logger

	err error
}

// Option configures Options.
type Option func(*Options)

// DefaultOptions returns seed 0, weights in [1,199) and a discarding logger.
func DefaultOptions() Options {
	return Options{
		MinWeight: DefaultMinWeight,
		MaxWeight: DefaultMaxWeight,
		Logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

// WithSeed fixes the random stream.
func WithSeed(seed int64) Option {
	return func(o *Options) {
		o.Seed = seed
	}
}

// WithWeightRange sets the half-open weight interval [lo, hi).
// Requires 0 <= lo < hi.
func WithWeightRange(lo, hi int) Option {
	return func(o *Options) {
		if lo < 0 || hi <= lo {
			o.err = fmt.Errorf("%w: weight range [%d,%d)", ErrOptionViolation, lo, hi)
			return
		}
		o.MinWeight, o.MaxWeight = lo, hi
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
