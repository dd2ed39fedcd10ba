package maze_test

import (
	"testing"

	"github.com/katalvlaran/mazecube/maze"
	"github.com/katalvlaran/mazecube/topology"
	"github.com/stretchr/testify/require"
)

// generated builds and generates a maze, failing the test on error.
func generated(t testing.TB, opts ...maze.Option) *maze.Maze {
	t.Helper()
	m, err := maze.New(opts...)
	require.NoError(t, err)
	require.NoError(t, m.Generate())
	return m
}

// flat returns a generated flat maze of the given size.
func flat(t testing.TB, size int, opts ...maze.Option) *maze.Maze {
	t.Helper()
	return generated(t, append([]maze.Option{maze.WithSize(size)}, opts...)...)
}

// cube returns a generated cube maze of the given size.
func cube(t testing.TB, size int, opts ...maze.Option) *maze.Maze {
	t.Helper()
	return generated(t, append([]maze.Option{maze.WithMode(maze.ModeCube), maze.WithSize(size)}, opts...)...)
}

// cellAt returns the CellID of (x,z) on face f.
func cellAt(t testing.TB, m *maze.Maze, f topology.Face, x, z int) maze.CellID {
	t.Helper()
	g, ok := m.Grid(f)
	require.True(t, ok, "no grid for %s", f)
	id, ok := g.CellID(x, z)
	require.True(t, ok, "(%d,%d) outside %s", x, z, f)
	return id
}

// openAll removes every wall by walking each cell in every direction.
func openAll(t testing.TB, m *maze.Maze) {
	t.Helper()
	for id := 0; id < m.CellCount(); id++ {
		for _, d := range topology.Directions {
			_, err := m.MoveThroughWall(maze.CellID(id), d)
			require.NoError(t, err)
		}
	}
	require.Empty(t, m.Walls())
}

// crossesSeam reports whether consecutive cells of path lie on different faces.
func crossesSeam(m *maze.Maze, path []maze.CellID) bool {
	for i := 1; i < len(path); i++ {
		a, _ := m.Cell(path[i-1])
		b, _ := m.Cell(path[i])
		if a.Face != b.Face {
			return true
		}
	}
	return false
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
