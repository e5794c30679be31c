package randstr

import (
	"math/rand/v2"
	"time"

	"github.com/pkg/errors"
)

// FastSource draws indexes from a xorshift128+ generator. It is fast but NOT
// cryptographically secure: the output is predictable once the seed or the
// internal state is known. Use it only where that is acceptable.
//
// FastSource must not be shared between goroutines.
type FastSource struct {
	rng *rand.Rand
}

// NewFastSource returns a FastSource seeded from the current time.
func NewFastSource() *FastSource {
	return NewSeededFastSource(uint64(time.Now().UnixNano()))
}

// NewSeededFastSource returns a FastSource with a fixed seed. Equal seeds
// produce equal draw sequences, which makes generation reproducible.
func NewSeededFastSource(seed uint64) *FastSource {
	return &FastSource{rng: rand.New(newXorshift128(seed))}
}

// IntN returns a uniformly distributed int in [0, n). It fails only with
// ErrInvalidBound when n is outside [1, MaxAlphabetSize].
func (f *FastSource) IntN(n int) (int, error) {
	if n < 1 || n > MaxAlphabetSize {
		return 0, errors.Wrapf(ErrInvalidBound, "bound %d", n)
	}

	return f.rng.IntN(n), nil
}

// xorshift128 implements xorshift128+ (Vigna, "Further scramblings of
// Marsaglia's xorshift generators") as a math/rand/v2 Source. The bound
// reduction is left to rand.Rand, which keeps the draws bias free.
type xorshift128 struct {
	s0, s1 uint64
}

func newXorshift128(seed uint64) *xorshift128 {
	// splitmix64 expands the one-word seed into two well-mixed state words.
	x := &xorshift128{s0: splitmix64(&seed), s1: splitmix64(&seed)}
	if x.s0 == 0 && x.s1 == 0 {
		// The all-zero state is a fixed point of the recurrence.
		x.s1 = 1
	}

	return x
}

// Uint64 advances the state and returns the next value of the sequence.
func (x *xorshift128) Uint64() uint64 {
	s1 := x.s0
	s0 := x.s1
	result := s0 + s1

	x.s0 = s0
	s1 ^= s1 << 23
	x.s1 = s1 ^ s0 ^ (s1 >> 18) ^ (s0 >> 5)

	return result
}

func splitmix64(state *uint64) uint64 {
	*state += 0x9e3779b97f4a7c15

	z := *state
	z = (z ^ (z >> 30)) * 0xbf58476d1ce4e5b9
	z = (z ^ (z >> 27)) * 0x94d049bb133111eb

	return z ^ (z >> 31)
}
