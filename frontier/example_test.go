package frontier_test

import (
	"fmt"

	"github.com/katalvlaran/mazecube/frontier"
)

// ExampleLattice_Carve carves the smallest lattice, which has a single
// interior block.
func ExampleLattice_Carve() {
	l, err := frontier.New(3, 3, 3)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	order, _ := l.Carve()
	fmt.Println(order)
	fmt.Println(l.IsOpen(frontier.Point{X: 1, Y: 1, Z: 1}))
	// Output:
	// [(1,1,1)]
	// true
}
