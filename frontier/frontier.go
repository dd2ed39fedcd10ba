package frontier

import (
	"fmt"
	"log/slog"
	"math/rand"
)

// faceSteps lists the six face-adjacent offsets.
var faceSteps = [6][3]int{
	{-1, 0, 0}, {1, 0, 0},
	{0, -1, 0}, {0, 1, 0},
	{0, 0, -1}, {0, 0, 1},
}

// Lattice is an x×y×z block box carved by Carve.
//
// A Lattice is not safe for concurrent use.
type Lattice struct {
	nx, ny, nz int
	state      []State
	weight     []int
	carved     []Point
	rng        *rand.Rand
	log        *slog.Logger
	done       bool
}

// New builds a fully walled lattice. Interior blocks draw their weights
// immediately, in index order.
//
// Errors: ErrDimensions, ErrOptionViolation.
func New(x, y, z int, opts ...Option) (*Lattice, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if x < 3 || y < 3 || z < 3 {
		return nil, fmt.Errorf("%w: %dx%dx%d", ErrDimensions, x, y, z)
	}

	seed := o.Seed
	if seed == 0 {
		seed = 1
	}
	l := &Lattice{
		nx: x, ny: y, nz: z,
		state:  make([]State, x*y*z),
		weight: make([]int, x*y*z),
		rng:    rand.New(rand.NewSource(seed)),
		log:    o.Logger,
	}
	for i := range l.state {
		p := l.point(i)
		if l.onBoundary(p) {
			continue
		}
		l.state[i] = Wall
		l.weight[i] = o.MinWeight + l.rng.Intn(o.MaxWeight-o.MinWeight)
	}
	return l, nil
}

// Dimensions returns the lattice size.
func (l *Lattice) Dimensions() (x, y, z int) {
	return l.nx, l.ny, l.nz
}

// InBounds reports whether p lies inside the lattice.
func (l *Lattice) InBounds(p Point) bool {
	return p.X >= 0 && p.X < l.nx && p.Y >= 0 && p.Y < l.ny && p.Z >= 0 && p.Z < l.nz
}

func (l *Lattice) index(p Point) int {
	return (p.Z*l.ny+p.Y)*l.nx + p.X
}

func (l *Lattice) point(i int) Point {
	return Point{X: i % l.nx, Y: (i / l.nx) % l.ny, Z: i / (l.nx * l.ny)}
}

func (l *Lattice) onBoundary(p Point) bool {
	return p.X == 0 || p.Y == 0 || p.Z == 0 || p.X == l.nx-1 || p.Y == l.ny-1 || p.Z == l.nz-1
}

// State returns the state of p; false when p is outside the lattice.
func (l *Lattice) State(p Point) (State, bool) {
	if !l.InBounds(p) {
		return Boundary, false
	}
	return l.state[l.index(p)], true
}

// IsOpen reports whether p has been carved.
func (l *Lattice) IsOpen(p Point) bool {
	s, ok := l.State(p)
	return ok && s == Open
}

// Weight returns the carving weight of an interior block.
func (l *Lattice) Weight(p Point) (int, bool) {
	if !l.InBounds(p) || l.onBoundary(p) {
		return 0, false
	}
	return l.weight[l.index(p)], true
}

// Carved returns the carve order so far.
func (l *Lattice) Carved() []Point {
	return append([]Point(nil), l.carved...)
}

// Layer returns the states of horizontal layer y, indexed [z][x].
func (l *Lattice) Layer(y int) ([][]State, bool) {
	if y < 0 || y >= l.ny {
		return nil, false
	}
	rows := make([][]State, l.nz)
	for z := range rows {
		rows[z] = make([]State, l.nx)
		for x := range rows[z] {
			rows[z][x] = l.state[l.index(Point{x, y, z})]
		}
	}
	return rows, true
}

// openFaceNeighbors counts the carved blocks face-adjacent to p.
func (l *Lattice) openFaceNeighbors(p Point) int {
	n := 0
	for _, s := range faceSteps {
		if l.IsOpen(p.Add(s[0], s[1], s[2])) {
			n++
		}
	}
	return n
}

// Carve opens the lattice and returns the carve order.
//
// Steps:
//  1. Open a random Wall block that is face-adjacent to the boundary.
//  2. For every open block still in the scan, in carve order, visit its 26
//     neighbours in (dx,dy,dz) order. A Wall neighbour with exactly one open
//     face neighbour is a candidate; keep the lightest, first found on ties.
//     An open block whose neighbours are all open, boundary, or Walls with
//     two or more open face neighbours leaves the scan for good.
//  3. Open the chosen candidate and repeat until none is found.
//
// Errors: ErrAlreadyCarved.
func (l *Lattice) Carve() ([]Point, error) {
	if l.done {
		return nil, ErrAlreadyCarved
	}
	l.done = true

	// Collect Wall blocks that touch the boundary
	var seeds []Point
	for i, s := range l.state {
		if s != Wall {
			continue
		}
		p := l.point(i)
		for _, st := range faceSteps {
			if l.onBoundary(p.Add(st[0], st[1], st[2])) {
				seeds = append(seeds, p)
				break
			}
		}
	}
	if len(seeds) == 0 {
		return nil, nil
	}
	// Open the seed block
	l.open(seeds[l.rng.Intn(len(seeds))])

	// Main loop
	active := []Point{l.carved[0]}
	for {
		best, found := Point{}, false
		bestWeight := 0
		kept := active[:0]
		// Scan open blocks in carve order; retire the exhausted ones
		for _, c := range active {
			alive := false
			for dx := -1; dx <= 1; dx++ {
				for dy := -1; dy <= 1; dy++ {
					for dz := -1; dz <= 1; dz++ {
						if dx == 0 && dy == 0 && dz == 0 {
							continue
						}
						n := c.Add(dx, dy, dz)
						if s, _ := l.State(n); s != Wall {
							continue
						}
						// A Wall with two open faces would form a loop
						k := l.openFaceNeighbors(n)
						if k >= 2 {
							continue
						}
						alive = true
						if k != 1 {
							continue
						}
						if w := l.weight[l.index(n)]; !found || w < bestWeight {
							best, bestWeight, found = n, w, true
						}
					}
				}
			}
			if alive {
				kept = append(kept, c)
			}
		}
		active = kept
		if !found {
			break
		}
		// Open the lightest candidate
		l.open(best)
		active = append(active, best)
	}

	l.log.Debug("lattice carved",
		"size", fmt.Sprintf("%dx%dx%d", l.nx, l.ny, l.nz),
		"carved", len(l.carved),
		"seed_block", l.carved[0].String(),
	)
	return l.Carved(), nil
}

func (l *Lattice) open(p Point) {
	l.state[l.index(p)] = Open
	l.carved = append(l.carved, p)
}
