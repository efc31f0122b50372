package hypotest

// DPRNG is a Deterministic Pseudo-Random Number Generator based on the xorshift* algorithm
// (see https://en.wikipedia.org/wiki/Xorshift#xorshift*).
// The sequence of numbers it generates is fully determined by its seed and has a period
// of 2^64-1. It satisfies math/rand/v2.Source, so it can drive the gonum distuv samplers.
// This random number generator is not cryptographically secure.
// This random number generator is not thread-safe.
// The state must not be zero.
type DPRNG struct {
	State uint64
	Round uint64 // for debugging purposes
}

// NewDPRNG returns a DPRNG seeded with seed. If no seed or a zero seed is given, the
// state is initialized from a CPRNG.
func NewDPRNG(seed ...uint64) *DPRNG {
	var s uint64
	if len(seed) > 0 {
		s = seed[0]
	}
	if s == 0 {
		c := NewCPRNG(64)
		for s == 0 {
			s = c.Uint64()
		}
	}
	return &DPRNG{State: s}
}

// Uint64 returns the next pseudo-random number in the sequence.
// It has a constant runtime and a high probability to be inlined by the compiler.
func (thisState *DPRNG) Uint64() uint64 {
	x := thisState.State
	x ^= x >> 12
	x ^= x << 25
	x ^= x >> 27
	thisState.State = x
	thisState.Round++
	return x * 0x2545F4914F6CDD1D
}
