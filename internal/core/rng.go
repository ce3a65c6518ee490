package core

import "math/rand/v2"

// Rand is the randomness consumed by simulation rules. *rand.Rand from
// math/rand/v2 satisfies it.
type Rand interface {
	IntN(n int) int
	Float64() float64
}

// RNG is a thin convenience wrapper around math/rand/v2 for seeded runs.
type RNG struct {
	r *rand.Rand
}

// NewRNG creates an RNG using the provided seed.
func NewRNG(seed int64) *RNG {
	return &RNG{r: rand.New(rand.NewPCG(uint64(seed), 0))}
}

// Reseed restarts the generator from seed.
func (r *RNG) Reseed(seed int64) {
	r.r = rand.New(rand.NewPCG(uint64(seed), 0))
}

// IntN returns a random int in [0, n). It returns 0 when n <= 0.
func (r *RNG) IntN(n int) int {
	if n <= 0 {
		return 0
	}
	return r.r.IntN(n)
}

// Float64 returns a random float in [0, 1).
func (r *RNG) Float64() float64 { return r.r.Float64() }

// Sequence replays fixed values in order, wrapping around at the end. It lets
// tests pin every random decision. Empty sequences yield zero.
type Sequence struct {
	Ints   []int
	Floats []float64

	nextInt   int
	nextFloat int
}

// IntN returns the next configured int reduced into [0, n).
func (s *Sequence) IntN(n int) int {
	if n <= 0 || len(s.Ints) == 0 {
		return 0
	}
	v := s.Ints[s.nextInt%len(s.Ints)]
	s.nextInt++
	v %= n
	if v < 0 {
		v += n
	}
	return v
}

// Float64 returns the next configured float.
func (s *Sequence) Float64() float64 {
	if len(s.Floats) == 0 {
		return 0
	}
	v := s.Floats[s.nextFloat%len(s.Floats)]
	s.nextFloat++
	return v
}
