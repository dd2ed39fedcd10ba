package maze

import (
	"github.com/google/uuid"
	"github.com/katalvlaran/mazecube/topology"
)

// CellView is the rendering/agent view of one cell.
type CellView struct {
	ID      CellID
	Face    topology.Face
	X, Z    int
	Visited bool
}

// WallView is the rendering/agent view of one standing wall.
type WallView struct {
	ID    WallID
	Kind  WallKind
	Cells [2]CellID
	Faces [2]topology.Face
}

// CornerView is the rendering/agent view of one junction.
type CornerView struct {
	ID    CornerID
	Face  topology.Face
	Cells []CellID
	Walls []WallID
}

// Snapshot is a detached copy of the maze topology and episode state.
type Snapshot struct {
	Episode uuid.UUID
	Mode    Mode
	Size    int
	Cells   []CellView
	Walls   []WallView
	Corners []CornerView
	Start   CellID
	End     CellID
	Path    []CellID
}

// Snapshot copies cells, standing walls, corners, endpoints and the tracked
// path. Mutating the result does not affect the maze.
func (m *Maze) Snapshot() Snapshot {
	s := Snapshot{
		Episode: m.id,
		Mode:    m.opts.Mode,
		Size:    m.opts.Size,
		Cells:   make([]CellView, len(m.cells)),
		Walls:   make([]WallView, 0, len(m.walls)),
		Corners: make([]CornerView, len(m.corners)),
		Start:   m.start,
		End:     m.end,
		Path:    m.TrackedPath(),
	}
	for i := range m.cells {
		c := &m.cells[i]
		s.Cells[i] = CellView{ID: c.ID, Face: c.Face, X: c.X, Z: c.Z, Visited: c.Visited}
	}
	for i := range m.walls {
		w := &m.walls[i]
		if w.Removed {
			continue
		}
		s.Walls = append(s.Walls, WallView{ID: w.ID, Kind: w.Kind, Cells: w.Cells, Faces: w.Faces})
	}
	for i := range m.corners {
		c := &m.corners[i]
		s.Corners[i] = CornerView{
			ID:    c.ID,
			Face:  c.Face,
			Cells: append([]CellID(nil), c.Cells...),
			Walls: c.Walls(),
		}
	}
	return s
}
