// Package maze builds and queries mazes laid out on a flat grid or on the
// six faces of a cube.
//
// What:
//
//   - Maze owns one Grid per face (ModeCube) or a single Grid (ModeFlat),
//     plus arenas of Cells, Walls and Corners addressed by CellID, WallID and
//     CornerID. Links between them are indices, never pointers.
//   - Construction is staged: Allocate → LinkGrid (neighbours, walls) for
//     every grid → BuildCorners for every grid. Generate runs all three;
//     calling a stage out of order returns ErrPhaseOrder.
//   - Carving happens live through MoveThroughWall, or all at once through
//     CarveSpanningTree (randomized Prim over cell weights).
//   - Queries: ShortestPath, LongestPath, Reachable, Components, IsValid,
//     IsPerfect, MeetsStructuralRequirements, PercentVisited,
//     PercentLongestPath, Snapshot.
//
// Cube seams:
//
//	Edge cells link to cells of other faces through topology.EdgeCell, so
//	neighbour relations are symmetric across seams. A wall on a seam is
//	registered in both grids and removing it removes it from both.
//
// Corners:
//
//	A corner is a lattice junction with the cells that meet there and the
//	walls between them. Flat mazes only have interior junctions (four cells,
//	four walls). A cube of side S has 6·S²+2 junctions; the eight cube
//	vertices join three cells and three walls.
//
// Determinism:
//
//	Neighbours are visited in topology.Directions order and every random
//	choice comes from the seeded stream, so a fixed seed reproduces the same
//	maze and the same wall-removal order.
//
// Errors:
//
//   - ErrOptionViolation  invalid Option passed to New.
//   - ErrPhaseOrder       construction stage called out of order.
//   - ErrNotReady         carving before Generate finished.
//   - ErrCellNotFound     CellID outside the arena.
//   - ErrUnknownFace      face without a grid.
//
// Lookups that find nothing (CellAt outside the grid, unreachable goal)
// return false or an empty path rather than an error. Rejected placements
// return false and leave state unchanged.
//
// Concurrency:
//
//	A Maze is not safe for concurrent use. Give each worker its own Maze.
//
// Usage:
//
//	m, err := maze.New(maze.WithMode(maze.ModeCube), maze.WithSize(5), maze.WithSeed(7))
//	if err != nil {
//		// ErrOptionViolation
//	}
//	if err := m.Generate(); err != nil {
//		// ErrPhaseOrder
//	}
//	g, _ := m.Grid(topology.FaceTop)
//	from, _ := g.CellID(0, 0)
//	order, _ := m.CarveSpanningTree(from)
//	_ = order
package maze
