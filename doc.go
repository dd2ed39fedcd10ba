// Package mazecube builds, carves and checks mazes laid out on a flat grid
// or wrapped around the six faces of a cube.
//
// 🚀 What is mazecube?
//
//	An in-memory maze engine that brings together:
//		• Topology: the fixed cube-face seam table and edge-cell mapping
//		• Maze: cells, walls and junctions in index arenas, staged construction
//		• Carving: live wall removal and a randomized Prim spanning tree
//		• Queries: shortest and longest paths, validity, coverage, components
//		• Frontier: a Prim-style carver over an x×y×z block lattice
//		• Textmap: plain and coloured text rendering for terminals and tests
//
// Under the hood the module is organized into small packages:
//
//	topology/     Face, Direction, Cross and EdgeCell
//	maze/         Maze, Grid, Cell, Wall, Corner and every query
//	frontier/     Lattice and its carver
//	textmap/      Render, RenderAll, RenderLayer
//	cmd/mazegen   host program driven by flags and an HCL file
//
// Quick ASCII example, a carved 2×2 flat maze:
//
//	+---+---+
//	| G   . |
//	+   +---+
//	| S   . |
//	+---+---+
//
// A cube of side S has 6·S² cells, 12·S² walls and 6·S²+2 junctions.
//
//	go get github.com/katalvlaran/mazecube/maze
package mazecube
