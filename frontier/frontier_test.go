package frontier_test

import (
	"testing"

	"github.com/katalvlaran/mazecube/frontier"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var faceSteps = [6]frontier.Point{
	{X: -1}, {X: 1}, {Y: -1}, {Y: 1}, {Z: -1}, {Z: 1},
}

func carved(t *testing.T, x, y, z int, opts ...frontier.Option) (*frontier.Lattice, []frontier.Point) {
	t.Helper()
	l, err := frontier.New(x, y, z, opts...)
	require.NoError(t, err)
	order, err := l.Carve()
	require.NoError(t, err)
	require.NotEmpty(t, order)
	return l, order
}

func openFaceNeighbors(l *frontier.Lattice, p frontier.Point) int {
	n := 0
	for _, s := range faceSteps {
		if l.IsOpen(p.Add(s.X, s.Y, s.Z)) {
			n++
		}
	}
	return n
}

// TestNew_Errors covers rejected dimensions and options.
func TestNew_Errors(t *testing.T) {
	cases := []struct {
		name    string
		x, y, z int
		opts    []frontier.Option
		want    error
	}{
		{"FlatX", 2, 3, 3, nil, frontier.ErrDimensions},
		{"FlatY", 5, 1, 5, nil, frontier.ErrDimensions},
		{"Negative", 5, 5, -4, nil, frontier.ErrDimensions},
		{"EmptyRange", 5, 3, 5, []frontier.Option{frontier.WithWeightRange(4, 4)}, frontier.ErrOptionViolation},
		{"NegativeRange", 5, 3, 5, []frontier.Option{frontier.WithWeightRange(-1, 4)}, frontier.ErrOptionViolation},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			l, err := frontier.New(tc.x, tc.y, tc.z, tc.opts...)
			assert.Nil(t, l)
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

// TestNew_Layout checks boundary, walls and weights before carving.
func TestNew_Layout(t *testing.T) {
	l, err := frontier.New(5, 4, 6, frontier.WithSeed(8))
	require.NoError(t, err)
	x, y, z := l.Dimensions()
	assert.Equal(t, [3]int{5, 4, 6}, [3]int{x, y, z})

	for px := 0; px < x; px++ {
		for py := 0; py < y; py++ {
			for pz := 0; pz < z; pz++ {
				p := frontier.Point{X: px, Y: py, Z: pz}
				s, ok := l.State(p)
				require.True(t, ok)
				w, interior := l.Weight(p)
				edge := px == 0 || py == 0 || pz == 0 || px == x-1 || py == y-1 || pz == z-1
				if edge {
					assert.Equal(t, frontier.Boundary, s, "%s", p)
					assert.False(t, interior)
					continue
				}
				assert.Equal(t, frontier.Wall, s, "%s", p)
				assert.True(t, interior)
				assert.GreaterOrEqual(t, w, frontier.DefaultMinWeight)
				assert.Less(t, w, frontier.DefaultMaxWeight)
			}
		}
	}

	_, ok := l.State(frontier.Point{X: 9})
	assert.False(t, ok)
	assert.False(t, l.IsOpen(frontier.Point{X: -1}))
}

// TestCarve_SingleBlock: a 3×3×3 lattice has exactly one carvable block.
func TestCarve_SingleBlock(t *testing.T) {
	_, order := carved(t, 3, 3, 3)
	assert.Equal(t, []frontier.Point{{X: 1, Y: 1, Z: 1}}, order)
}

// TestCarve_Invariants replays the carve order and checks that every block
// joined the region through exactly one open face, that the boundary stayed
// closed, and that the result is maximal.
func TestCarve_Invariants(t *testing.T) {
	dims := [][3]int{{9, 3, 9}, {7, 5, 6}, {12, 3, 4}}
	for _, d := range dims {
		l, order := carved(t, d[0], d[1], d[2], frontier.WithSeed(int64(d[0]*d[2])))

		seen := make(map[frontier.Point]bool, len(order))
		for i, p := range order {
			assert.False(t, seen[p], "carved twice: %s", p)
			w, interior := l.Weight(p)
			assert.True(t, interior, "boundary carved: %s", p)
			assert.Positive(t, w)
			if i > 0 {
				n := 0
				for _, s := range faceSteps {
					if seen[p.Add(s.X, s.Y, s.Z)] {
						n++
					}
				}
				assert.Equal(t, 1, n, "block %d %s", i, p)
			}
			seen[p] = true
			assert.True(t, l.IsOpen(p))
		}

		// Open blocks form a tree under face adjacency.
		edges := 0
		for p := range seen {
			for _, s := range []frontier.Point{{X: 1}, {Y: 1}, {Z: 1}} {
				if seen[p.Add(s.X, s.Y, s.Z)] {
					edges++
				}
			}
		}
		assert.Equal(t, len(order)-1, edges, "dims %v", d)

		// No Wall block is left with exactly one open face neighbour.
		for px := 1; px < d[0]-1; px++ {
			for py := 1; py < d[1]-1; py++ {
				for pz := 1; pz < d[2]-1; pz++ {
					p := frontier.Point{X: px, Y: py, Z: pz}
					if l.IsOpen(p) {
						continue
					}
					assert.NotEqual(t, 1, openFaceNeighbors(l, p), "missed candidate %s", p)
				}
			}
		}
	}
}

// TestCarve_LightestFirst checks the second block is the lightest face
// neighbour of the seed block.
func TestCarve_LightestFirst(t *testing.T) {
	l, order := carved(t, 9, 3, 9, frontier.WithSeed(21))
	require.GreaterOrEqual(t, len(order), 2)

	seed := order[0]
	best := -1
	for _, s := range faceSteps {
		w, ok := l.Weight(seed.Add(s.X, s.Y, s.Z))
		if ok && (best < 0 || w < best) {
			best = w
		}
	}
	w, _ := l.Weight(order[1])
	assert.Equal(t, best, w)
}

// TestCarve_Deterministic reproduces the carve order for a seed.
func TestCarve_Deterministic(t *testing.T) {
	_, a := carved(t, 11, 3, 11, frontier.WithSeed(5))
	_, b := carved(t, 11, 3, 11, frontier.WithSeed(5))
	_, c := carved(t, 11, 3, 11, frontier.WithSeed(6))
	_, d := carved(t, 11, 3, 11)
	_, e := carved(t, 11, 3, 11, frontier.WithSeed(1))
	assert.Equal(t, a, b)
	assert.NotEqual(t, a, c)
	assert.Equal(t, d, e, "seed 0 selects seed 1")
}

// TestCarve_Twice is rejected.
func TestCarve_Twice(t *testing.T) {
	l, first := carved(t, 5, 3, 5)
	again, err := l.Carve()
	assert.ErrorIs(t, err, frontier.ErrAlreadyCarved)
	assert.Nil(t, again)
	assert.Equal(t, first, l.Carved())
}

// TestLayer exposes one horizontal slice.
func TestLayer(t *testing.T) {
	l, order := carved(t, 6, 3, 5, frontier.WithSeed(2))
	rows, ok := l.Layer(1)
	require.True(t, ok)
	require.Len(t, rows, 5)
	open := 0
	for z, row := range rows {
		require.Len(t, row, 6)
		for x, s := range row {
			if s == frontier.Open {
				open++
				assert.True(t, l.IsOpen(frontier.Point{X: x, Y: 1, Z: z}))
			}
		}
	}
	assert.Equal(t, len(order), open, "single interior layer holds every open block")

	top, ok := l.Layer(2)
	require.True(t, ok)
	for _, row := range top {
		for _, s := range row {
			assert.Equal(t, frontier.Boundary, s)
		}
	}
	_, ok = l.Layer(3)
	assert.False(t, ok)
}
