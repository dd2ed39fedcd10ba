package maze_test

import (
	"testing"

	"github.com/katalvlaran/mazecube/maze"
	"github.com/katalvlaran/mazecube/topology"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestIsValid_FullCoverage requires every cell visited when enabled.
func TestIsValid_FullCoverage(t *testing.T) {
	m := flat(t, 2, maze.WithFullCoverage(true))
	require.True(t, m.PlaceStartCell(0))
	require.True(t, m.PlaceGoalCell(1))
	_, err := m.MoveThroughWall(0, topology.Right)
	require.NoError(t, err)
	assert.False(t, m.IsValid(), "cells 2 and 3 unvisited")

	m.MarkVisited(2)
	m.MarkVisited(3)
	assert.True(t, m.IsValid())
}

// TestIsValid_Unreachable fails while the goal is walled off.
func TestIsValid_Unreachable(t *testing.T) {
	m := flat(t, 3)
	require.True(t, m.PlaceStartCell(0))
	require.True(t, m.PlaceGoalCell(8))
	assert.False(t, m.IsValid())

	empty, err := maze.New()
	require.NoError(t, err)
	assert.False(t, empty.IsValid())
	assert.False(t, empty.MeetsStructuralRequirements())
	assert.False(t, empty.IsPerfect())
}

// TestMeetsStructuralRequirements fails once a junction loses all walls.
func TestMeetsStructuralRequirements(t *testing.T) {
	m := flat(t, 3)
	assert.True(t, m.MeetsStructuralRequirements())

	// Open the square around the junction top-right of (0,0).
	moves := []struct {
		from maze.CellID
		d    topology.Direction
	}{
		{0, topology.Right},
		{0, topology.Top},
		{1, topology.Top},
	}
	for _, mv := range moves {
		_, err := m.MoveThroughWall(mv.from, mv.d)
		require.NoError(t, err)
	}
	assert.True(t, m.MeetsStructuralRequirements(), "one wall left")

	_, err := m.MoveThroughWall(3, topology.Right)
	require.NoError(t, err)
	assert.False(t, m.MeetsStructuralRequirements())

	c := cube(t, 3)
	openAll(t, c)
	assert.False(t, c.MeetsStructuralRequirements())
	assert.False(t, c.IsPerfect(), "loops everywhere")
	assert.Len(t, c.Components(), 1)
}

// TestComponents partitions by open passages.
func TestComponents(t *testing.T) {
	m := flat(t, 3)
	comps := m.Components()
	require.Len(t, comps, 9)
	for i, comp := range comps {
		assert.Equal(t, []maze.CellID{maze.CellID(i)}, comp)
	}

	_, err := m.MoveThroughWall(0, topology.Right)
	require.NoError(t, err)
	_, err = m.MoveThroughWall(4, topology.Right)
	require.NoError(t, err)
	comps = m.Components()
	require.Len(t, comps, 7)
	assert.Equal(t, []maze.CellID{0, 1}, comps[0])
	assert.Equal(t, []maze.CellID{4, 5}, comps[3])
}

// TestPercentVisited tracks the whole maze and single faces.
func TestPercentVisited(t *testing.T) {
	m := cube(t, 2)
	assert.Zero(t, m.PercentVisited())
	g, _ := m.Grid(topology.FaceTop)
	for _, id := range g.Cells() {
		m.MarkVisited(id)
	}
	assert.InDelta(t, 1.0/6, m.PercentVisited(), 1e-9)

	p, ok := m.FacePercentVisited(topology.FaceTop)
	require.True(t, ok)
	assert.Equal(t, 1.0, p)
	p, ok = m.FacePercentVisited(topology.FaceBack)
	require.True(t, ok)
	assert.Zero(t, p)
	_, ok = m.FacePercentVisited(topology.FaceNone)
	assert.False(t, ok)
}

// TestPercentLongestPath compares the goal route to the longest route.
func TestPercentLongestPath(t *testing.T) {
	cases := []struct {
		name       string
		goalX      int
		goalZ      int
		wantFactor float64
	}{
		{"FarCorner", 4, 4, 1.0},
		{"Quarter", 2, 0, 0.25},
		{"Neighbour", 0, 1, 0.125},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			m := flat(t, 5)
			openAll(t, m)
			assert.Zero(t, m.PercentLongestPath(), "no endpoints")
			require.True(t, m.PlaceStartCell(cellAt(t, m, topology.FaceNone, 0, 0)))
			assert.Zero(t, m.PercentLongestPath(), "no goal")
			require.True(t, m.PlaceGoalCell(cellAt(t, m, topology.FaceNone, tc.goalX, tc.goalZ)))
			assert.InDelta(t, tc.wantFactor, m.PercentLongestPath(), 1e-9)
		})
	}

	m := flat(t, 3)
	require.True(t, m.PlaceStartCell(0))
	require.True(t, m.PlaceGoalCell(8))
	assert.Zero(t, m.PercentLongestPath(), "unreachable goal")
}

// TestSnapshot copies the current state.
func TestSnapshot(t *testing.T) {
	m := flat(t, 3, maze.WithSeed(5))
	_, err := m.CarveSpanningTree(0)
	require.NoError(t, err)
	require.True(t, m.PlaceStartCell(0))
	require.True(t, m.PlaceGoalCell(8))

	s := m.Snapshot()
	assert.Equal(t, m.ID(), s.Episode)
	assert.Equal(t, maze.ModeFlat, s.Mode)
	assert.Equal(t, 3, s.Size)
	assert.Len(t, s.Cells, 9)
	assert.Len(t, s.Walls, 12-8)
	assert.Len(t, s.Corners, 4)
	assert.Equal(t, maze.CellID(0), s.Start)
	assert.Equal(t, maze.CellID(8), s.End)
	assert.Equal(t, m.TrackedPath(), s.Path)
	for _, c := range s.Cells {
		assert.True(t, c.Visited)
	}

	s.Corners[0].Cells[0] = 42
	cn, _ := m.Corner(0)
	assert.NotEqual(t, maze.CellID(42), cn.Cells[0], "snapshot is detached")
}
