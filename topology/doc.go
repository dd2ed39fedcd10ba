// Package topology describes how the six faces of a cube-surface maze are
// stitched together.
//
// What:
//
//   - Face enumerates the six cube faces plus FaceNone, the sentinel used by
//     flat (single-grid) mazes.
//   - Direction enumerates the four planar directions of a face grid:
//     Left (-x), Right (+x), Top (+z) and Bottom (-z).
//   - Cross(face, dir) returns the Seam beyond an edge: the neighbouring face,
//     the edge of that face the seam enters through, and whether the
//     along-edge index runs backwards on the other side.
//
// Why:
//
//   - A maze grid needs to link its edge cells to cells of other faces.
//     Entry and Reversed let it compute the exact neighbouring cell without
//     any 3D geometry at runtime.
//
// Folding:
//
//	            +-------+
//	            |  Top  |
//	    +-------+-------+-------+-------+
//	    | Left  | Front | Right | Back  |
//	    +-------+-------+-------+-------+
//	            |Bottom |
//	            +-------+
//
// Each face keeps its own (x, z) frame, so the table is not symmetric in
// names: from Back, Left leads to Right. It is involutive in full:
// Cross(Cross(f, d).Face, Cross(f, d).Entry) always leads back to (f, d).
//
// Errors:
//
//	Faces and directions come from closed enumerations. Passing FaceNone or a
//	value outside the enumeration to Cross or Neighbor panics.
//
// Complexity: every lookup is O(1).
package topology
