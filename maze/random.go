package maze

import "math/rand"

// Chooser is the seeded random capability the generators draw from.
// *rand.Rand satisfies it.
type Chooser interface {
	// Intn returns a uniform choice in [0, n).
	Intn(n int) int
	// Shuffle permutes n elements through swap.
	Shuffle(n int, swap func(i, j int))
}

// NewChooser returns a replayable generator for seed. Each maze owns its own one.
func NewChooser(seed int64) Chooser {
	return rand.New(rand.NewSource(seed))
}
