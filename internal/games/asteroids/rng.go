package asteroids

// Random is the source of every random draw the simulation makes.
// It is injected so runs are reproducible under a seed.
type Random interface {
	// Float64 returns a value in [0, 1).
	Float64() float64
}

// SimpleRNG is a deterministic pseudo-random number generator.
// Uses a 64-bit LCG (Knuth MMIX constants).
type SimpleRNG struct {
	state uint64
}

// NewSimpleRNG creates a new RNG with the given seed.
func NewSimpleRNG(seed int64) *SimpleRNG {
	s := uint64(seed) //#nosec G115 -- intentional conversion for RNG seeding
	if s == 0 {
		s = 1
	}
	return &SimpleRNG{state: s}
}

// Next generates the next random uint64.
func (r *SimpleRNG) Next() uint64 {
	r.state = r.state*6364136223846793005 + 1442695040888963407
	return r.state
}

// Float64 returns a random float64 in [0, 1).
// Uses the top 53 bits so the result can never round up to 1.
func (r *SimpleRNG) Float64() float64 {
	return float64(r.Next()>>11) / (1 << 53)
}

// State returns the internal generator state.
func (r *SimpleRNG) State() uint64 {
	return r.state
}

// stater is implemented by random sources whose position can be hashed.
type stater interface {
	State() uint64
}

var _ Random = (*SimpleRNG)(nil)
