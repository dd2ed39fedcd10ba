package maze

import (
	"fmt"

	"github.com/zyedidia/generic/heap"
)

// frontierEdge is a candidate passage: entering cell through wall.
type frontierEdge struct {
	weight int
	seq    int
	cell   CellID
	wall   WallID
}

// CarveSpanningTree carves a randomized spanning tree out of the walls,
// growing from cell from in the manner of Prim's algorithm: every cell draws
// a fixed weight in [1,199) and the lightest cell on the frontier is always
// joined next, through the wall that put it on the frontier.
//
// Steps:
//  1. Draw one weight per cell in CellID order.
//  2. Grow the tree from from: mark it visited, push its walled neighbours
//     and follow its open passages into the tree without removing a wall.
//  3. Pop the lightest (weight, push order) entry; skip cells already in the
//     tree; otherwise remove its wall and grow the tree from that cell.
//
// On a fully walled maze the result is a perfect maze: every cell visited
// and exactly CellCount()-1 walls removed. Passages already open are kept,
// loops among them included, and the carve still joins every cell. Returns
// the removal order, which is identical for identical seeds.
//
// Errors: ErrNotReady, ErrCellNotFound.
// Complexity: O(E log E) time, O(V + E) memory.
func (m *Maze) CarveSpanningTree(from CellID) ([]WallID, error) {
	if m.phase != PhaseReady {
		return nil, ErrNotReady
	}
	if !m.validCell(from) {
		return nil, fmt.Errorf("%w: %d", ErrCellNotFound, from)
	}

	weights := make([]int, len(m.cells))
	for i := range weights {
		weights[i] = drawWeight(m.rng)
	}

	inTree := make([]bool, len(m.cells))
	frontier := heap.New(func(a, b frontierEdge) bool {
		if a.weight != b.weight {
			return a.weight < b.weight
		}
		return a.seq < b.seq
	})
	seq := 0
	var stack []CellID
	grow := func(id CellID) {
		stack = append(stack[:0], id)
		for len(stack) > 0 {
			cur := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			if inTree[cur] {
				continue
			}
			inTree[cur] = true
			m.MarkVisited(cur)
			for _, nb := range m.cells[cur].neighbors {
				if nb == NoCell || inTree[nb] {
					continue
				}
				if w, ok := m.WallBetween(cur, nb); ok {
					frontier.Push(frontierEdge{weight: weights[nb], seq: seq, cell: nb, wall: w})
					seq++
					continue
				}
				// Open passage: joins the tree as is.
				stack = append(stack, nb)
			}
		}
	}

	removed := make([]WallID, 0, len(m.cells)-1)
	grow(from)

	// Main loop
	for frontier.Size() > 0 {
		e, _ := frontier.Pop()
		if inTree[e.cell] {
			continue
		}
		if m.removeWall(e.wall) {
			removed = append(removed, e.wall)
		}
		grow(e.cell)
	}

	m.log.Debug("spanning tree carved",
		"episode", m.id,
		"from", from,
		"removed", len(removed),
		"visited", m.PercentVisited(),
	)
	return removed, nil
}
