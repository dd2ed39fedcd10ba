package maze

import "math/rand"

// defaultSeed replaces a zero seed so that unseeded mazes stay reproducible.
const defaultSeed int64 = 1

// minWeight and maxWeight bound carving weights: [minWeight, maxWeight).
const (
	minWeight = 1
	maxWeight = 199
)

// rngFromSeed returns a deterministic *rand.Rand.
// Policy: seed==0 ⇒ defaultSeed; otherwise the seed is used verbatim.
//
// math/rand.Rand is not goroutine-safe; each Maze owns its own stream.
func rngFromSeed(seed int64) *rand.Rand {
	if seed == 0 {
		seed = defaultSeed
	}
	return rand.New(rand.NewSource(seed))
}

// drawWeight returns a weight in [minWeight, maxWeight).
func drawWeight(r *rand.Rand) int {
	return minWeight + r.Intn(maxWeight-minWeight)
}
