package maze

import "github.com/katalvlaran/mazecube/topology"

// IsValid reports whether the maze is solvable in its current state:
//
//  1. with FullCoverage, every cell of every grid is visited;
//  2. start and goal are both placed;
//  3. the goal is reachable from the start, crossing seams freely.
//
// It stops at the first failed condition.
func (m *Maze) IsValid() bool {
	if m.phase != PhaseReady {
		return false
	}
	if m.opts.FullCoverage {
		for i := range m.cells {
			if !m.cells[i].Visited {
				return false
			}
		}
	}
	if m.start == NoCell || m.end == NoCell {
		return false
	}
	return len(m.ShortestPath(m.start, m.end)) > 0
}

// MeetsStructuralRequirements reports whether every corner still has at
// least one wall, i.e. no junction has opened into a room.
func (m *Maze) MeetsStructuralRequirements() bool {
	if m.phase != PhaseReady {
		return false
	}
	for i := range m.corners {
		if len(m.corners[i].walls) == 0 {
			return false
		}
	}
	return true
}

// PercentVisited returns the visited fraction of all cells, in [0,1].
func (m *Maze) PercentVisited() float64 {
	if len(m.cells) == 0 {
		return 0
	}
	n := 0
	for i := range m.cells {
		if m.cells[i].Visited {
			n++
		}
	}
	return float64(n) / float64(len(m.cells))
}

// FacePercentVisited returns the visited fraction of one grid.
func (m *Maze) FacePercentVisited(f topology.Face) (float64, bool) {
	g, ok := m.Grid(f)
	if !ok {
		return 0, false
	}
	n := 0
	for _, id := range g.Cells() {
		if m.cells[id].Visited {
			n++
		}
	}
	return float64(n) / float64(g.size*g.size), true
}

// PercentLongestPath compares the start→goal route with the longest route
// out of start: steps(shortest)/steps(longest), in [0,1]. Returns 0 while
// either endpoint is missing or the goal is unreachable.
func (m *Maze) PercentLongestPath() float64 {
	if m.start == NoCell || m.end == NoCell {
		return 0
	}
	sp := m.ShortestPath(m.start, m.end)
	lp := m.LongestPath(m.start)
	if len(sp) < 2 || len(lp) < 2 {
		return 0
	}
	r := float64(len(sp)-1) / float64(len(lp)-1)
	if r > 1 {
		r = 1
	}
	return r
}

// Components partitions all cells into regions connected by open passages.
// Regions are listed by their smallest CellID; cells within a region are in
// discovery order.
//
// Complexity: O(V).
func (m *Maze) Components() [][]CellID {
	seen := make([]bool, len(m.cells))
	var comps [][]CellID
	for i := range m.cells {
		if seen[i] {
			continue
		}
		seen[i] = true
		comp := []CellID{CellID(i)}
		for qi := 0; qi < len(comp); qi++ {
			u := comp[qi]
			for _, v := range m.cells[u].neighbors {
				if v == NoCell || seen[v] || !m.passable(u, v) {
					continue
				}
				seen[v] = true
				comp = append(comp, v)
			}
		}
		comps = append(comps, comp)
	}
	return comps
}

// IsPerfect reports whether the open passages form a spanning tree: every
// cell connected and no loops.
func (m *Maze) IsPerfect() bool {
	if m.phase != PhaseReady || len(m.cells) == 0 {
		return false
	}
	return m.RemovedCount() == len(m.cells)-1 && len(m.Components()) == 1
}
