package maze

import (
	"math"
	"slices"

	"github.com/katalvlaran/mazecube/topology"
	"github.com/zyedidia/generic/mapset"
)

// Grid is one face of a maze: a size×size block of the Maze cell arena plus
// the walls and corners registered on that face.
//
// Cells are addressed row-major: CellID = base + z*size + x.
// A wall on a seam between two faces is registered in both grids.
type Grid struct {
	face     topology.Face
	size     int
	base     CellID
	cellSize float64
	origin   Position
	phase    Phase

	walls   mapset.Set[WallID]
	corners []CornerID

	start, end CellID
}

func newGrid(face topology.Face, size int, base CellID, o Options) *Grid {
	return &Grid{
		face:     face,
		size:     size,
		base:     base,
		cellSize: o.CellSize,
		origin:   o.Origin,
		phase:    PhaseAllocated,
		walls:    mapset.New[WallID](),
		start:    NoCell,
		end:      NoCell,
	}
}

// Face returns the face this grid covers (FaceNone in flat mode).
func (g *Grid) Face() topology.Face { return g.face }

// Size returns the side length in cells.
func (g *Grid) Size() int { return g.size }

// Phase returns the construction phase of this grid.
func (g *Grid) Phase() Phase { return g.phase }

// Start returns the start cell if it was placed on this grid, else NoCell.
func (g *Grid) Start() CellID { return g.start }

// End returns the goal cell if it was placed on this grid, else NoCell.
func (g *Grid) End() CellID { return g.end }

// InBounds reports whether (x,z) lies within the grid.
// Complexity: O(1).
func (g *Grid) InBounds(x, z int) bool {
	return x >= 0 && x < g.size && z >= 0 && z < g.size
}

// Contains reports whether id belongs to this grid.
func (g *Grid) Contains(id CellID) bool {
	return id >= g.base && id < g.base+CellID(g.size*g.size)
}

// CellID maps (x,z) to its arena index.
func (g *Grid) CellID(x, z int) (CellID, bool) {
	if !g.InBounds(x, z) {
		return NoCell, false
	}
	return g.base + CellID(z*g.size+x), true
}

// Coordinate converts an arena index of this grid back to (x,z).
func (g *Grid) Coordinate(id CellID) (x, z int, ok bool) {
	if !g.Contains(id) {
		return 0, 0, false
	}
	local := int(id - g.base)
	return local % g.size, local / g.size, true
}

// Cells returns every CellID of the grid in row-major order.
func (g *Grid) Cells() []CellID {
	out := make([]CellID, g.size*g.size)
	for i := range out {
		out[i] = g.base + CellID(i)
	}
	return out
}

// CellAt maps a position in the face plane to the cell whose half-open
// square [centre-cellSize/2, centre+cellSize/2) contains it.
// Returns (NoCell, false) when the position falls outside the grid.
//
// Complexity: O(1).
func (g *Grid) CellAt(p Position) (CellID, bool) {
	fx := (p.X-g.origin.X)/g.cellSize + 0.5
	fz := (p.Z-g.origin.Z)/g.cellSize + 0.5
	if math.IsNaN(fx) || math.IsNaN(fz) {
		return NoCell, false
	}
	x, z := math.Floor(fx), math.Floor(fz)
	if x < 0 || z < 0 || x >= float64(g.size) || z >= float64(g.size) {
		return NoCell, false
	}
	return g.CellID(int(x), int(z))
}

// PositionOf returns the centre of a cell of this grid.
func (g *Grid) PositionOf(id CellID) (Position, bool) {
	x, z, ok := g.Coordinate(id)
	if !ok {
		return Position{}, false
	}
	return Position{
		X: g.origin.X + float64(x)*g.cellSize,
		Z: g.origin.Z + float64(z)*g.cellSize,
	}, true
}

// HasWall reports whether w is still registered on this grid.
func (g *Grid) HasWall(w WallID) bool {
	return g.walls.Has(w)
}

// WallCount returns the number of walls still registered on this grid.
func (g *Grid) WallCount() int {
	return g.walls.Size()
}

// Walls returns the registered walls in ascending id order.
func (g *Grid) Walls() []WallID {
	out := make([]WallID, 0, g.walls.Size())
	g.walls.Each(func(w WallID) { out = append(out, w) })
	slices.Sort(out)
	return out
}

// Corners returns the corners owned by this grid.
func (g *Grid) Corners() []CornerID {
	return append([]CornerID(nil), g.corners...)
}
