package maze

import (
	"github.com/katalvlaran/mazecube/topology"
	"github.com/zyedidia/generic/queue"
)

// PathOption restricts a path query.
type PathOption func(*pathOptions)

type pathOptions struct {
	face       topology.Face
	restricted bool
}

// WithFace keeps the search on one grid: seams are not crossed and both
// endpoints must lie on face f.
func WithFace(f topology.Face) PathOption {
	return func(o *pathOptions) {
		o.face = f
		o.restricted = true
	}
}

// walk holds the outcome of one breadth-first search over passable edges.
type walk struct {
	order  []CellID
	depth  []int
	parent []CellID
}

func (w *walk) reached(id CellID) bool {
	return w.depth[id] >= 0
}

// pathTo rebuilds start→dest from the parent links. dest must be reached.
func (w *walk) pathTo(dest CellID) []CellID {
	path := make([]CellID, w.depth[dest]+1)
	for i, cur := len(path)-1, dest; i >= 0; i, cur = i-1, w.parent[cur] {
		path[i] = cur
	}
	return path
}

// bfs explores from start in topology.Directions order, so the visit
// sequence is reproducible. An edge is passable unless either grid it
// touches still registers its wall.
//
// Complexity: O(V) time and memory; each edge test is O(1).
func (m *Maze) bfs(start CellID, o pathOptions) *walk {
	// Prepare walker
	n := len(m.cells)
	w := &walk{
		order:  make([]CellID, 0, n),
		depth:  make([]int, n),
		parent: make([]CellID, n),
	}
	for i := range w.depth {
		w.depth[i] = -1
		w.parent[i] = NoCell
	}

	// Seed queue with start cell (no parent)
	q := queue.New[CellID]()
	w.depth[start] = 0
	q.Enqueue(start)

	// Main loop
	for !q.Empty() {
		cur := q.Dequeue()
		w.order = append(w.order, cur)
		for _, nb := range m.cells[cur].neighbors {
			if nb == NoCell || w.reached(nb) {
				continue
			}
			// Stay on one face when restricted
			if o.restricted && m.cells[nb].Face != o.face {
				continue
			}
			if !m.passable(cur, nb) {
				continue
			}
			w.depth[nb] = w.depth[cur] + 1
			w.parent[nb] = cur
			q.Enqueue(nb)
		}
	}
	return w
}

// passable reports whether the edge a–b carries no wall in either grid.
func (m *Maze) passable(a, b CellID) bool {
	w, ok := m.wallIndex[keyOf(a, b)]
	if !ok {
		return true
	}
	return !m.gridOf(a).walls.Has(w) && !m.gridOf(b).walls.Has(w)
}

func (m *Maze) pathOpts(opts []PathOption) pathOptions {
	var o pathOptions
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

func (m *Maze) allowed(id CellID, o pathOptions) bool {
	return m.validCell(id) && (!o.restricted || m.cells[id].Face == o.face)
}

// ShortestPath returns the fewest-step route from start to end, both
// included. A path of n cells takes n-1 steps; start == end yields [start].
// An unreachable or invalid endpoint yields an empty path.
//
// Complexity: O(V).
func (m *Maze) ShortestPath(start, end CellID, opts ...PathOption) []CellID {
	o := m.pathOpts(opts)
	if !m.allowed(start, o) || !m.allowed(end, o) {
		return nil
	}
	if start == end {
		return []CellID{start}
	}
	w := m.bfs(start, o)
	if !w.reached(end) {
		return nil
	}
	return w.pathTo(end)
}

// LongestPath returns the route from start to the reachable cell farthest
// from it (in steps). Ties go to the cell discovered first. Returns an empty
// path when nothing besides start is reachable.
//
// Complexity: O(V).
func (m *Maze) LongestPath(start CellID, opts ...PathOption) []CellID {
	o := m.pathOpts(opts)
	if !m.allowed(start, o) {
		return nil
	}
	w := m.bfs(start, o)
	best := start
	for _, id := range w.order {
		if w.depth[id] > w.depth[best] {
			best = id
		}
	}
	if best == start {
		return nil
	}
	return w.pathTo(best)
}

// Reachable returns the cells reachable from start in discovery order.
func (m *Maze) Reachable(start CellID, opts ...PathOption) []CellID {
	o := m.pathOpts(opts)
	if !m.allowed(start, o) {
		return nil
	}
	return m.bfs(start, o).order
}

// TrackedPath returns the path last computed by RefreshPath.
func (m *Maze) TrackedPath() []CellID {
	return append([]CellID(nil), m.tracked...)
}

// RefreshPath recomputes the tracked start→goal path and returns it.
// The tracked path is empty until both endpoints are placed.
func (m *Maze) RefreshPath() []CellID {
	m.tracked = nil
	if m.start != NoCell && m.end != NoCell {
		m.tracked = m.ShortestPath(m.start, m.end)
	}
	return m.TrackedPath()
}
