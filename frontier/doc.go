// Package frontier carves a block lattice into a maze by growing a carved
// region one block at a time, always taking the lightest eligible block.
//
// What:
//
//   - A Lattice is an x×y×z box of blocks. Blocks on the box surface are
//     Boundary and can never be carved. Every interior block starts as a
//     Wall with a fixed random weight.
//   - Carve opens one random interior block that touches the boundary, then
//     repeatedly opens the lightest candidate: a Wall block with exactly one
//     open face-adjacent neighbour. Candidates are discovered by scanning the
//     26-neighbourhood of every open block, in carve order.
//   - Carving stops when no candidate remains. The open blocks then form a
//     tree under face adjacency, so the carve order is a spanning structure
//     in the sense of Prim's algorithm with block weights as costs.
//
// A lattice with y == 3 has a single interior layer and yields a flat maze;
// taller lattices yield stacked, connected layers.
//
// Determinism:
//
//	Weights are drawn in index order (x fastest, then y, then z) from the
//	seeded stream, then the seed block is drawn. Neighbourhoods are scanned
//	in (dx,dy,dz) lexicographic order and ties keep the first candidate
//	found, so one seed always gives one carve order.
//
// Errors:
//
//   - ErrDimensions       a side shorter than 3.
//   - ErrOptionViolation  invalid Option passed to New.
//   - ErrAlreadyCarved    Carve called twice on one Lattice.
//
// Complexity: O(N·A) for N interior blocks and A blocks still in the scan.
package frontier
