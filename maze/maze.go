package maze

import (
	"fmt"
	"log/slog"
	"math/rand"

	"github.com/google/uuid"
	"github.com/katalvlaran/mazecube/topology"
)

// Maze owns one Grid per face (or a single flat Grid) and the arenas of
// cells, walls and corners those grids address.
//
// A Maze is single-writer: it holds no locks and must be owned by one
// goroutine. The zero value is not usable; construct with New.
type Maze struct {
	opts  Options
	log   *slog.Logger
	rng   *rand.Rand
	id    uuid.UUID
	phase Phase

	grids     []*Grid
	faceIndex map[topology.Face]int

	cells       []Cell
	walls       []Wall
	wallIndex   map[pairKey]WallID
	corners     []Corner
	cornerIndex map[cornerKey]CornerID

	start, end CellID
	tracked    []CellID
}

// New validates opts and returns an empty Maze (PhaseEmpty).
// Call Generate, or the staged Allocate/LinkGrid/BuildCorners, before use.
//
// Returns ErrOptionViolation for invalid options, including cube mode with
// Size < 2.
func New(opts ...Option) (*Maze, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if o.Mode == ModeCube && o.Size < 2 {
		return nil, fmt.Errorf("%w: cube mode needs size >= 2 (%d)", ErrOptionViolation, o.Size)
	}

	m := &Maze{
		opts: o,
		log:  o.Logger,
		rng:  rngFromSeed(o.Seed),
	}
	m.clear()
	return m, nil
}

// clear drops every arena and starts a new episode.
func (m *Maze) clear() {
	m.id = uuid.New()
	m.phase = PhaseEmpty
	m.grids = nil
	m.faceIndex = make(map[topology.Face]int)
	m.cells = nil
	m.walls = nil
	m.wallIndex = make(map[pairKey]WallID)
	m.corners = nil
	m.cornerIndex = make(map[cornerKey]CornerID)
	m.start, m.end = NoCell, NoCell
	m.tracked = nil
}

// ID identifies the current episode; Reset assigns a new one.
func (m *Maze) ID() uuid.UUID { return m.id }

// Options returns the options the maze was built with.
func (m *Maze) Options() Options { return m.opts }

// Phase returns the construction phase.
func (m *Maze) Phase() Phase { return m.phase }

// Faces returns the faces that own a grid, in construction order.
func (m *Maze) Faces() []topology.Face {
	out := make([]topology.Face, len(m.grids))
	for i, g := range m.grids {
		out[i] = g.face
	}
	return out
}

// Grid returns the grid of face f.
func (m *Maze) Grid(f topology.Face) (*Grid, bool) {
	i, ok := m.faceIndex[f]
	if !ok {
		return nil, false
	}
	return m.grids[i], true
}

// Grids returns all grids in construction order.
func (m *Maze) Grids() []*Grid {
	return append([]*Grid(nil), m.grids...)
}

// CellCount returns the total number of cells across all grids.
func (m *Maze) CellCount() int { return len(m.cells) }

// Cell returns the cell with the given id.
// The returned pointer aliases the arena; treat it as read-only.
func (m *Maze) Cell(id CellID) (*Cell, bool) {
	if !m.validCell(id) {
		return nil, false
	}
	return &m.cells[id], true
}

// Wall returns the wall with the given id, including removed walls.
func (m *Maze) Wall(id WallID) (*Wall, bool) {
	if id < 0 || int(id) >= len(m.walls) {
		return nil, false
	}
	return &m.walls[id], true
}

// Corner returns the corner with the given id.
func (m *Maze) Corner(id CornerID) (*Corner, bool) {
	if id < 0 || int(id) >= len(m.corners) {
		return nil, false
	}
	return &m.corners[id], true
}

// CornerCount returns the number of corners across all grids.
func (m *Maze) CornerCount() int { return len(m.corners) }

// WallBetween returns the standing wall between a and b, if any.
func (m *Maze) WallBetween(a, b CellID) (WallID, bool) {
	w, ok := m.wallIndex[keyOf(a, b)]
	if !ok || m.walls[w].Removed {
		return NoWall, false
	}
	return w, true
}

// Walls returns every standing wall in ascending id order.
func (m *Maze) Walls() []WallID {
	out := make([]WallID, 0, len(m.walls))
	for i := range m.walls {
		if !m.walls[i].Removed {
			out = append(out, m.walls[i].ID)
		}
	}
	return out
}

// RemovedCount returns how many walls have been removed this episode.
func (m *Maze) RemovedCount() int {
	n := 0
	for i := range m.walls {
		if m.walls[i].Removed {
			n++
		}
	}
	return n
}

// Start returns the start cell, or NoCell.
func (m *Maze) Start() CellID { return m.start }

// End returns the goal cell, or NoCell.
func (m *Maze) End() CellID { return m.end }

func (m *Maze) validCell(id CellID) bool {
	return id >= 0 && int(id) < len(m.cells)
}

// gridOf returns the grid that owns id. id must be valid.
func (m *Maze) gridOf(id CellID) *Grid {
	return m.grids[m.faceIndex[m.cells[id].Face]]
}

// Reset clears the maze and generates it again under a new episode id.
// The random stream continues, so successive episodes differ while a fixed
// seed still reproduces the whole sequence.
func (m *Maze) Reset() error {
	prev := m.id
	m.clear()
	m.log.Debug("maze reset", "previous", prev, "episode", m.id)
	return m.Generate()
}
