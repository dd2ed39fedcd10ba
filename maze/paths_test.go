package maze_test

import (
	"testing"

	"github.com/katalvlaran/mazecube/maze"
	"github.com/katalvlaran/mazecube/topology"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestShortestPath_IntactWalls: nothing is passable before carving.
func TestShortestPath_IntactWalls(t *testing.T) {
	m := flat(t, 3)
	assert.Empty(t, m.ShortestPath(0, 8))
	assert.Empty(t, m.LongestPath(0))
	assert.Equal(t, []maze.CellID{0}, m.Reachable(0))
	assert.Equal(t, []maze.CellID{4}, m.ShortestPath(4, 4), "start == end")
}

// TestShortestPath_InvalidEndpoints yields empty paths.
func TestShortestPath_InvalidEndpoints(t *testing.T) {
	m := flat(t, 3)
	assert.Empty(t, m.ShortestPath(-1, 2))
	assert.Empty(t, m.ShortestPath(0, 9))
	assert.Empty(t, m.LongestPath(100))
	assert.Empty(t, m.Reachable(100))
}

// TestShortestPath_OpenFlat: with every wall gone, step counts are Manhattan
// distances and paths include both endpoints.
func TestShortestPath_OpenFlat(t *testing.T) {
	const size = 5
	m := flat(t, size)
	openAll(t, m)

	g, _ := m.Grid(topology.FaceNone)
	from := cellAt(t, m, topology.FaceNone, 1, 3)
	fx, fz, _ := g.Coordinate(from)
	for _, to := range g.Cells() {
		tx, tz, _ := g.Coordinate(to)
		path := m.ShortestPath(from, to)
		require.NotEmpty(t, path)
		assert.Equal(t, abs(tx-fx)+abs(tz-fz), len(path)-1, "to %d", to)
		assert.Equal(t, from, path[0])
		assert.Equal(t, to, path[len(path)-1])
	}

	longest := m.LongestPath(from)
	require.NotEmpty(t, longest)
	assert.Equal(t, 6, len(longest)-1, "farthest corner is (4,0)")
	assert.Len(t, m.Reachable(from), size*size)
}

// TestShortestPath_Steps checks consecutive cells are neighbours with no wall.
func TestShortestPath_Steps(t *testing.T) {
	m := cube(t, 4, maze.WithSeed(11))
	_, err := m.CarveSpanningTree(0)
	require.NoError(t, err)

	for _, to := range []maze.CellID{5, 37, 64, 95} {
		path := m.ShortestPath(0, to)
		require.NotEmpty(t, path, "perfect maze reaches %d", to)
		for i := 1; i < len(path); i++ {
			c, _ := m.Cell(path[i-1])
			assert.Contains(t, c.Neighbors(), path[i])
			_, walled := m.WallBetween(path[i-1], path[i])
			assert.False(t, walled)
		}
		assert.GreaterOrEqual(t, len(m.LongestPath(0)), len(path))
	}
}

// TestShortestPath_CubeAcrossFaces: Top centre to Bottom centre of an open
// 3-cube is six steps, through two seams.
func TestShortestPath_CubeAcrossFaces(t *testing.T) {
	m := cube(t, 3)
	openAll(t, m)

	from := cellAt(t, m, topology.FaceTop, 1, 1)
	to := cellAt(t, m, topology.FaceBottom, 1, 1)
	path := m.ShortestPath(from, to)
	require.Len(t, path, 7)
	assert.True(t, crossesSeam(m, path))
	assert.Len(t, m.LongestPath(from), 7, "the opposite centre is the farthest cell")

	corner := cellAt(t, m, topology.FaceTop, 0, 0)
	longest := m.LongestPath(corner)
	require.Len(t, longest, 9)
	assert.Equal(t, cellAt(t, m, topology.FaceBottom, 2, 0), longest[8], "first farthest cell in discovery order")

	require.True(t, m.PlaceStartCell(from))
	require.True(t, m.PlaceGoalCell(to))
	assert.True(t, m.IsValid())
	assert.Len(t, m.TrackedPath(), 7)
}

// TestWithFace keeps the search on one grid.
func TestWithFace(t *testing.T) {
	m := cube(t, 3)
	openAll(t, m)

	a := cellAt(t, m, topology.FaceTop, 0, 1)
	b := cellAt(t, m, topology.FaceTop, 2, 1)
	assert.Len(t, m.ShortestPath(a, b, maze.WithFace(topology.FaceTop)), 3)
	assert.Len(t, m.Reachable(a, maze.WithFace(topology.FaceTop)), 9)

	other := cellAt(t, m, topology.FaceLeft, 2, 2)
	assert.Empty(t, m.ShortestPath(a, other, maze.WithFace(topology.FaceTop)))
	assert.NotEmpty(t, m.ShortestPath(a, other))

	for _, id := range m.LongestPath(a, maze.WithFace(topology.FaceTop)) {
		c, _ := m.Cell(id)
		assert.Equal(t, topology.FaceTop, c.Face)
	}
}

// TestRefreshPath returns an empty path until both endpoints exist.
func TestRefreshPath(t *testing.T) {
	m := flat(t, 2)
	openAll(t, m)
	assert.Empty(t, m.RefreshPath())
	require.True(t, m.PlaceStartCell(0))
	assert.Empty(t, m.RefreshPath())
	require.True(t, m.PlaceGoalCell(3))
	assert.Len(t, m.RefreshPath(), 3)

	p := m.TrackedPath()
	p[0] = 99
	assert.Equal(t, maze.CellID(0), m.TrackedPath()[0], "TrackedPath returns a copy")
}
