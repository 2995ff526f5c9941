// Package scramble provides the xor-shift mixing function used for
// repeatable index derivation. It is fast and deterministic, nothing more:
// not cryptographically secure and not statistically uniform.
package scramble

import (
	"math"
	"math/rand"
)

// Scramble applies the 13/17/5 xor-shift sequence to x and returns the
// absolute value of the result. The right shift is arithmetic.
func Scramble(x int32) int32 {
	x ^= x << 13
	x ^= x >> 17
	x ^= x << 5
	return abs32(x)
}

// abs32 clamps MinInt32, which has no positive counterpart, to MaxInt32.
func abs32(x int32) int32 {
	if x == math.MinInt32 {
		return math.MaxInt32
	}
	if x < 0 {
		return -x
	}
	return x
}

// Mix ORs a fresh draw from rng into state and scrambles the result. The OR
// is a deliberately weak combination kept for behavioural parity.
func Mix(state int32, rng *rand.Rand) int32 {
	return Scramble(state | rng.Int31())
}

// Index reduces a non-negative state to [0, n).
func Index(state int32, n int) int {
	return int(state) % n
}

// Stream threads scrambler state through a sequence of index draws. A Stream
// is a plain value owned by one call; it must not be shared across
// goroutines.
type Stream struct {
	state int32
	rng   *rand.Rand
}

// NewStream seeds a stream the way the swap and greedy operators do: the
// initial state is Scramble(seed) reduced modulo n.
func NewStream(seed int32, n int, rng *rand.Rand) Stream {
	return Stream{state: int32(Index(Scramble(seed), n)), rng: rng}
}

// Next advances the state with a fresh external draw and returns an index in
// [0, n).
func (s *Stream) Next(n int) int {
	s.state = Mix(s.state, s.rng)
	return Index(s.state, n)
}

// State returns the current scrambler state.
func (s *Stream) State() int32 {
	return s.state
}

// Draw returns one index in [0, n) from a single mixed draw with no carried
// state, as the crossover cut-point search does.
func Draw(rng *rand.Rand, n int) int {
	return Index(Scramble(rng.Int31()), n)
}
