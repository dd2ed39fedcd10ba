package maze

import (
	"fmt"
	"slices"

	"github.com/katalvlaran/mazecube/topology"
)

// Generate runs the full construction pipeline:
//
//  1. Allocate every grid and its cells.
//  2. LinkGrid on every grid: neighbours, then walls.
//  3. BuildCorners on every grid, once all walls of all faces exist.
//
// Returns ErrPhaseOrder if the maze is not empty.
// Complexity: O(F·S²) time and memory for F faces of side S.
func (m *Maze) Generate() error {
	if err := m.Allocate(); err != nil {
		return err
	}
	for _, g := range m.grids {
		if err := m.LinkGrid(g.face); err != nil {
			return err
		}
	}
	for _, g := range m.grids {
		if err := m.BuildCorners(g.face); err != nil {
			return err
		}
	}
	m.log.Debug("maze generated",
		"episode", m.id,
		"mode", m.opts.Mode.String(),
		"size", m.opts.Size,
		"cells", len(m.cells),
		"walls", len(m.walls),
		"corners", len(m.corners),
	)
	return nil
}

// Allocate creates one grid per face and all cells, unlinked.
// Requires PhaseEmpty.
func (m *Maze) Allocate() error {
	if m.phase != PhaseEmpty {
		return fmt.Errorf("%w: allocate in phase %s", ErrPhaseOrder, m.phase)
	}
	faces := []topology.Face{topology.FaceNone}
	if m.opts.Mode == ModeCube {
		faces = topology.CubeFaces[:]
	}

	size := m.opts.Size
	perGrid := size * size
	m.cells = make([]Cell, 0, len(faces)*perGrid)
	for i, f := range faces {
		base := CellID(i * perGrid)
		m.grids = append(m.grids, newGrid(f, size, base, m.opts))
		m.faceIndex[f] = i
		for z := 0; z < size; z++ {
			for x := 0; x < size; x++ {
				m.cells = append(m.cells, Cell{
					ID:        base + CellID(z*size+x),
					Face:      f,
					X:         x,
					Z:         z,
					neighbors: [4]CellID{NoCell, NoCell, NoCell, NoCell},
					corners:   [4]CornerID{NoCorner, NoCorner, NoCorner, NoCorner},
				})
			}
		}
	}
	m.phase = PhaseAllocated
	return nil
}

// LinkGrid resolves the neighbours of every cell of face f and creates the
// walls not already created by another grid.
// Requires the maze in PhaseAllocated and the grid not yet linked.
func (m *Maze) LinkGrid(f topology.Face) error {
	// Validate phase and face
	if m.phase == PhaseEmpty {
		return fmt.Errorf("%w: link %s before allocate", ErrPhaseOrder, f)
	}
	g, ok := m.Grid(f)
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownFace, f)
	}
	if m.phase != PhaseAllocated || g.phase != PhaseAllocated {
		return fmt.Errorf("%w: link %s in phase %s (grid %s)", ErrPhaseOrder, f, m.phase, g.phase)
	}

	// Resolve neighbours, crossing seams where the face has them
	for _, id := range g.Cells() {
		c := &m.cells[id]
		for _, d := range topology.Directions {
			c.neighbors[d] = m.resolveNeighbor(g, c, d)
		}
	}
	// One wall per neighbouring pair; seam walls may already exist
	for _, id := range g.Cells() {
		for _, d := range topology.Directions {
			if n := m.cells[id].neighbors[d]; n != NoCell {
				m.ensureWall(id, n, d)
			}
		}
	}

	// Advance the maze once every grid is linked
	g.phase = PhaseLinked
	if m.allGridsIn(PhaseLinked) {
		m.phase = PhaseLinked
	}
	return nil
}

// resolveNeighbor links inside the grid, or across a seam in cube mode.
func (m *Maze) resolveNeighbor(g *Grid, c *Cell, d topology.Direction) CellID {
	dx, dz := d.Delta()
	if id, ok := g.CellID(c.X+dx, c.Z+dz); ok {
		return id
	}
	if g.face == topology.FaceNone {
		return NoCell
	}
	face, x, z := topology.EdgeCell(g.face, d, c.X, c.Z, g.size)
	other, ok := m.Grid(face)
	if !ok {
		return NoCell
	}
	id, _ := other.CellID(x, z)
	return id
}

// ensureWall creates the wall between a and b unless one already exists
// for that unordered cell pair.
func (m *Maze) ensureWall(a, b CellID, d topology.Direction) {
	key := keyOf(a, b)
	if _, exists := m.wallIndex[key]; exists {
		return
	}
	kind := Horizontal
	if d.Horizontal() {
		kind = Vertical
	}
	id := WallID(len(m.walls))
	m.walls = append(m.walls, Wall{
		ID:    id,
		Kind:  kind,
		Cells: [2]CellID{a, b},
		Faces: [2]topology.Face{m.cells[a].Face, m.cells[b].Face},
		Dir:   d,
	})
	m.wallIndex[key] = id
	m.cells[a].walls = append(m.cells[a].walls, id)
	m.cells[b].walls = append(m.cells[b].walls, id)
	m.gridOf(a).walls.Put(id)
	m.gridOf(b).walls.Put(id)
}

// BuildCorners creates the junctions reachable from the cells of face f.
// A junction already built from another grid is skipped, so each junction
// is owned by exactly one grid.
// Requires every grid linked and this grid not yet cornered.
func (m *Maze) BuildCorners(f topology.Face) error {
	// Validate phase and face
	if m.phase == PhaseEmpty {
		return fmt.Errorf("%w: corners of %s before allocate", ErrPhaseOrder, f)
	}
	g, ok := m.Grid(f)
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownFace, f)
	}
	if m.phase != PhaseLinked || g.phase != PhaseLinked {
		return fmt.Errorf("%w: corners of %s in phase %s (grid %s)", ErrPhaseOrder, f, m.phase, g.phase)
	}

	// Visit every junction of every cell; addCorner drops duplicates
	for _, id := range g.Cells() {
		for _, cp := range cornerPositions {
			members, ok := m.junction(id, cp.v, cp.h)
			if ok {
				m.addCorner(g, members)
			}
		}
	}

	// Advance the maze once every grid is ready
	g.phase = PhaseReady
	if m.allGridsIn(PhaseReady) {
		m.phase = PhaseReady
	}
	return nil
}

// junction collects the cells meeting at the (v,h) junction of cell id:
// the cell, its h and v neighbours, and their common neighbour. At a cube
// vertex the h and v neighbours touch each other and only three cells meet.
func (m *Maze) junction(id CellID, v, h topology.Direction) ([]CellID, bool) {
	c := &m.cells[id]
	hn, vn := c.neighbors[h], c.neighbors[v]
	if hn == NoCell || vn == NoCell {
		return nil, false
	}
	if _, touching := m.cells[vn].directionTo(hn); touching {
		return []CellID{id, hn, vn}, true
	}
	for _, cand := range m.cells[hn].neighbors {
		if cand == NoCell || cand == id {
			continue
		}
		if _, ok := m.cells[vn].directionTo(cand); ok {
			return []CellID{id, hn, vn, cand}, true
		}
	}
	return nil, false
}

// addCorner registers a junction once, attaching it to its cells and walls.
func (m *Maze) addCorner(g *Grid, members []CellID) {
	sorted := slices.Clone(members)
	slices.Sort(sorted)
	key := cornerKey{NoCell, NoCell, NoCell, NoCell}
	copy(key[:], sorted)
	if _, exists := m.cornerIndex[key]; exists {
		return
	}

	id := CornerID(len(m.corners))
	corner := Corner{ID: id, Face: g.face, Cells: sorted}
	for i, a := range sorted {
		for _, b := range sorted[i+1:] {
			if _, adjacent := m.cells[a].directionTo(b); !adjacent {
				continue
			}
			if w, ok := m.WallBetween(a, b); ok {
				corner.walls = append(corner.walls, w)
				m.walls[w].corners = append(m.walls[w].corners, id)
			}
		}
	}
	m.corners = append(m.corners, corner)
	m.cornerIndex[key] = id
	g.corners = append(g.corners, id)

	for _, a := range sorted {
		m.registerCorner(a, sorted, id)
	}
}

// registerCorner stores the corner on cell a at the position given by the
// directions, in a's own frame, of the junction cells adjacent to it.
func (m *Maze) registerCorner(a CellID, members []CellID, id CornerID) {
	c := &m.cells[a]
	var v, h topology.Direction
	var hasV, hasH bool
	for _, b := range members {
		if b == a {
			continue
		}
		d, ok := c.directionTo(b)
		if !ok {
			continue
		}
		if d.Horizontal() {
			h, hasH = d, true
		} else {
			v, hasV = d, true
		}
	}
	if hasV && hasH {
		c.corners[cornerPosOf(v, h)] = id
	}
}

func (m *Maze) allGridsIn(p Phase) bool {
	for _, g := range m.grids {
		if g.phase != p {
			return false
		}
	}
	return true
}
