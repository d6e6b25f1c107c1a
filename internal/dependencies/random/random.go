package random

import (
	"math/rand/v2"
)

// Random provides the randomness a game needs: IDs and who moves first
type Random interface {
	// Intn returns a random int in [0, n), or 0 when n <= 0
	Intn(n int) int

	// String generates a random string of the given length from the given alphabet
	String(length int, alphabet string) string
}

// SourceRandom implements Random on top of a math/rand/v2 source
type SourceRandom struct {
	rng *rand.Rand
}

// New creates a SourceRandom seeded from the runtime
func New() *SourceRandom {
	return &SourceRandom{rng: rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))}
}

// NewSeeded creates a SourceRandom with a fixed seed, for reproducible runs
func NewSeeded(seed uint64) *SourceRandom {
	return &SourceRandom{rng: rand.New(rand.NewPCG(seed, seed))}
}

func (r *SourceRandom) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	return r.rng.IntN(n)
}

func (r *SourceRandom) String(length int, alphabet string) string {
	if length <= 0 || len(alphabet) == 0 {
		return ""
	}
	result := make([]byte, length)
	for i := range result {
		result[i] = alphabet[r.Intn(len(alphabet))]
	}
	return string(result)
}
