package maze

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/mazecube/topology"
)

// Sentinel errors for maze operations.
var (
	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("maze: invalid option supplied")

	// ErrPhaseOrder is returned when a construction stage runs out of order.
	ErrPhaseOrder = errors.New("maze: construction phase out of order")

	// ErrNotReady is returned when an operation needs a fully generated maze.
	ErrNotReady = errors.New("maze: maze is not generated")

	// ErrCellNotFound is returned when a CellID does not belong to the maze.
	ErrCellNotFound = errors.New("maze: cell not found")

	// ErrUnknownFace is returned when a face has no grid in this maze.
	ErrUnknownFace = errors.New("maze: face has no grid")
)

// CellID, WallID and CornerID index the arenas owned by a Maze.
type (
	CellID   int
	WallID   int
	CornerID int
)

// Sentinels for absent links.
const (
	NoCell   CellID   = -1
	NoWall   WallID   = -1
	NoCorner CornerID = -1
)

// Mode selects a single flat grid or six grids folded into a cube.
type Mode uint8

const (
	// ModeFlat builds one grid with FaceNone.
	ModeFlat Mode = iota
	// ModeCube builds one grid per topology.CubeFaces entry.
	ModeCube
)

// String returns the mode name.
func (m Mode) String() string {
	switch m {
	case ModeFlat:
		return "flat"
	case ModeCube:
		return "cube"
	}
	return fmt.Sprintf("Mode(%d)", uint8(m))
}

// Phase tracks the staged construction of a Maze and of each Grid.
type Phase uint8

const (
	// PhaseEmpty: nothing allocated.
	PhaseEmpty Phase = iota
	// PhaseAllocated: grids and cells exist, no links.
	PhaseAllocated
	// PhaseLinked: neighbours and walls are built.
	PhaseLinked
	// PhaseReady: corners are built; the maze accepts carving and queries.
	PhaseReady
)

var phaseNames = [...]string{"empty", "allocated", "linked", "ready"}

// String returns the phase name.
func (p Phase) String() string {
	if int(p) < len(phaseNames) {
		return phaseNames[p]
	}
	return fmt.Sprintf("Phase(%d)", uint8(p))
}

// WallKind is a rendering hint: Vertical walls separate Left/Right
// neighbours, Horizontal walls separate Top/Bottom neighbours.
type WallKind uint8

const (
	Horizontal WallKind = iota
	Vertical
)

// String returns the kind name.
func (k WallKind) String() string {
	if k == Vertical {
		return "vertical"
	}
	return "horizontal"
}

// CornerPos locates a junction relative to a cell in that cell's own frame.
type CornerPos uint8

const (
	TopLeft CornerPos = iota
	TopRight
	BottomLeft
	BottomRight
)

// cornerPositions pairs each CornerPos with its vertical and horizontal step.
var cornerPositions = [4]struct {
	pos  CornerPos
	v, h topology.Direction
}{
	{TopLeft, topology.Top, topology.Left},
	{TopRight, topology.Top, topology.Right},
	{BottomLeft, topology.Bottom, topology.Left},
	{BottomRight, topology.Bottom, topology.Right},
}

func cornerPosOf(v, h topology.Direction) CornerPos {
	for _, cp := range cornerPositions {
		if cp.v == v && cp.h == h {
			return cp.pos
		}
	}
	panic(fmt.Sprintf("maze: no corner position for %s/%s", v, h))
}

// CrossResult reports the outcome of MoveThroughWall.
type CrossResult uint8

const (
	// CrossBlocked: no neighbour exists in that direction.
	CrossBlocked CrossResult = iota
	// CrossOpened: a wall stood between the cells and was removed.
	CrossOpened
	// CrossPassed: the passage was already open.
	CrossPassed
)

// String returns the result name.
func (r CrossResult) String() string {
	switch r {
	case CrossOpened:
		return "opened"
	case CrossPassed:
		return "passed"
	default:
		return "blocked"
	}
}

// Position is a point in the plane of one face.
type Position struct {
	X, Z float64
}

// Cell is one lattice position of a grid.
//
// Link data (neighbours, walls, corners) is populated during construction
// and read through methods; Visited is mutated by carving and traversal.
type Cell struct {
	ID      CellID
	Face    topology.Face
	X, Z    int
	Visited bool

	neighbors [4]CellID
	walls     []WallID
	corners   [4]CornerID
}

// Neighbor returns the cell beyond d, or NoCell.
func (c *Cell) Neighbor(d topology.Direction) CellID {
	return c.neighbors[d]
}

// Neighbors returns the existing neighbours in topology.Directions order.
func (c *Cell) Neighbors() []CellID {
	out := make([]CellID, 0, 4)
	for _, n := range c.neighbors {
		if n != NoCell {
			out = append(out, n)
		}
	}
	return out
}

// Walls returns a copy of the walls still attached to the cell.
func (c *Cell) Walls() []WallID {
	return append([]WallID(nil), c.walls...)
}

// Corner returns the corner registered at pos, or NoCorner.
func (c *Cell) Corner(pos CornerPos) CornerID {
	return c.corners[pos]
}

// directionTo returns the direction of n from c.
func (c *Cell) directionTo(n CellID) (topology.Direction, bool) {
	for _, d := range topology.Directions {
		if c.neighbors[d] == n {
			return d, true
		}
	}
	return 0, false
}

// Wall separates two adjacent cells, possibly on different faces.
//
// Cells[0] is the originating cell and Dir the direction from it to Cells[1].
type Wall struct {
	ID      WallID
	Kind    WallKind
	Cells   [2]CellID
	Faces   [2]topology.Face
	Dir     topology.Direction
	Removed bool

	corners []CornerID
}

// Corners returns the corners that reference this wall.
func (w *Wall) Corners() []CornerID {
	return append([]CornerID(nil), w.corners...)
}

// Corner is a lattice junction: three or four cells and the walls between them.
type Corner struct {
	ID    CornerID
	Face  topology.Face
	Cells []CellID

	walls []WallID
}

// Walls returns a copy of the walls still bounding the junction.
func (c *Corner) Walls() []WallID {
	return append([]WallID(nil), c.walls...)
}

// WallCount returns the number of walls still bounding the junction.
func (c *Corner) WallCount() int {
	return len(c.walls)
}

// pairKey identifies a wall by its unordered cell pair.
type pairKey struct {
	lo, hi CellID
}

func keyOf(a, b CellID) pairKey {
	if a > b {
		a, b = b, a
	}
	return pairKey{a, b}
}

// cornerKey identifies a junction by its sorted cell set, padded with NoCell.
type cornerKey [4]CellID
