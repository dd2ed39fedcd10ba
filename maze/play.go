package maze

import (
	"fmt"
	"slices"

	"github.com/katalvlaran/mazecube/topology"
)

// PlaceStart resolves p on face f and makes that cell the start.
// The first successful placement of an episode is sticky: later calls
// return false without changing anything. Returns false if the maze is not
// ready or p resolves to no cell.
func (m *Maze) PlaceStart(f topology.Face, p Position) bool {
	id, ok := m.resolve(f, p)
	if !ok {
		return false
	}
	return m.PlaceStartCell(id)
}

// PlaceStartCell is PlaceStart for a known cell.
func (m *Maze) PlaceStartCell(id CellID) bool {
	if m.phase != PhaseReady || !m.validCell(id) || m.start != NoCell {
		return false
	}
	m.start = id
	m.gridOf(id).start = id
	m.log.Debug("start placed", "episode", m.id, "cell", id, "face", m.cells[id].Face.String())
	return true
}

// PlaceGoal resolves p on face f and makes that cell the goal.
// It is rejected (false) before a start exists, when it resolves to the
// start cell, or once a goal has been placed this episode.
func (m *Maze) PlaceGoal(f topology.Face, p Position) bool {
	id, ok := m.resolve(f, p)
	if !ok {
		return false
	}
	return m.PlaceGoalCell(id)
}

// PlaceGoalCell is PlaceGoal for a known cell.
func (m *Maze) PlaceGoalCell(id CellID) bool {
	if m.phase != PhaseReady || !m.validCell(id) {
		return false
	}
	if m.start == NoCell || m.end != NoCell || id == m.start {
		return false
	}
	m.end = id
	m.gridOf(id).end = id
	m.RefreshPath()
	m.log.Debug("goal placed", "episode", m.id, "cell", id, "face", m.cells[id].Face.String())
	return true
}

func (m *Maze) resolve(f topology.Face, p Position) (CellID, bool) {
	g, ok := m.Grid(f)
	if !ok {
		return NoCell, false
	}
	return g.CellAt(p)
}

// MarkVisited flags a cell as visited. It reports whether the flag changed;
// marking an already visited or unknown cell is a no-op.
func (m *Maze) MarkVisited(id CellID) bool {
	if !m.validCell(id) || m.cells[id].Visited {
		return false
	}
	m.cells[id].Visited = true
	return true
}

// MoveThroughWall steps from a cell in direction d, crossing a face seam if
// needed. A standing wall between the two cells is removed from every grid
// that references it. Both cells end up visited unless the move is blocked.
//
// Returns CrossBlocked when no neighbour exists (flat boundary),
// CrossOpened when a wall was removed, CrossPassed when the passage was
// already open. Errors: ErrNotReady, ErrCellNotFound. An invalid d panics.
func (m *Maze) MoveThroughWall(from CellID, d topology.Direction) (CrossResult, error) {
	if m.phase != PhaseReady {
		return CrossBlocked, ErrNotReady
	}
	if !m.validCell(from) {
		return CrossBlocked, fmt.Errorf("%w: %d", ErrCellNotFound, from)
	}
	if d > topology.Bottom {
		panic(fmt.Sprintf("maze: invalid direction %d", uint8(d)))
	}

	to := m.cells[from].neighbors[d]
	if to == NoCell {
		return CrossBlocked, nil
	}

	result := CrossPassed
	if w, ok := m.WallBetween(from, to); ok {
		m.removeWall(w)
		result = CrossOpened
	}
	m.MarkVisited(from)
	m.MarkVisited(to)
	if result == CrossOpened && m.end != NoCell {
		m.RefreshPath()
	}
	return result, nil
}

// AttemptCross is MoveThroughWall under the name used by agent layers.
func (m *Maze) AttemptCross(from CellID, d topology.Direction) (CrossResult, error) {
	return m.MoveThroughWall(from, d)
}

// removeWall detaches w from its cells, its corners and every grid that
// registered it. It reports false if w was already removed.
func (m *Maze) removeWall(w WallID) bool {
	wall := &m.walls[w]
	if wall.Removed {
		return false
	}
	wall.Removed = true
	for _, id := range wall.Cells {
		c := &m.cells[id]
		c.walls = slices.DeleteFunc(c.walls, func(x WallID) bool { return x == w })
	}
	for _, cid := range wall.corners {
		cn := &m.corners[cid]
		cn.walls = slices.DeleteFunc(cn.walls, func(x WallID) bool { return x == w })
	}
	for _, f := range wall.Faces {
		if g, ok := m.Grid(f); ok {
			g.walls.Remove(w)
		}
	}
	return true
}
