package maze_test

import (
	"testing"

	"github.com/katalvlaran/mazecube/maze"
)

// BenchmarkGenerate_Cube measures construction of a 32-cube (6144 cells).
func BenchmarkGenerate_Cube(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		m, _ := maze.New(maze.WithMode(maze.ModeCube), maze.WithSize(32))
		_ = m.Generate()
	}
}

// BenchmarkCarveSpanningTree_Flat carves a 64×64 flat maze.
func BenchmarkCarveSpanningTree_Flat(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		b.StopTimer()
		m, _ := maze.New(maze.WithSize(64), maze.WithSeed(int64(i+1)))
		_ = m.Generate()
		b.StartTimer()
		_, _ = m.CarveSpanningTree(0)
	}
}

// BenchmarkLongestPath_Cube runs the farthest-cell search on a carved 16-cube.
func BenchmarkLongestPath_Cube(b *testing.B) {
	m, _ := maze.New(maze.WithMode(maze.ModeCube), maze.WithSize(16), maze.WithSeed(7))
	_ = m.Generate()
	_, _ = m.CarveSpanningTree(0)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = m.LongestPath(0)
	}
}
