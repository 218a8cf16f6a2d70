package txlog

import (
	"time"
)

const defaultSeed = uint64(0xdeadbeefcafebabe)

// Coin is the source of randomness used to pick node levels. Each Flip is
// expected to return true with probability P.
type Coin interface {
	Flip() bool
}

// CoinFunc adapts an ordinary function to the Coin interface.
type CoinFunc func() bool

// Flip implements Coin.
func (f CoinFunc) Flip() bool {
	return f()
}

func newRandomSeed() uint64 {
	seed := uint64(time.Now().UnixNano())
	if seed == 0 {
		seed = defaultSeed
	}
	return seed
}

// RNG is a xorshift64* generator that serves coin flips one bit at a time.
// It is not safe for concurrent use.
type RNG struct {
	seed  uint64
	bits  uint64
	avail int
}

// NewRNG returns a generator seeded from the clock.
func NewRNG() *RNG {
	return NewRNGWithSeed(newRandomSeed())
}

// NewRNGWithSeed returns a generator with a fixed seed. A zero seed is
// replaced by a non-zero default since xorshift never leaves the zero state.
func NewRNGWithSeed(seed uint64) *RNG {
	if seed == 0 {
		seed = defaultSeed
	}
	return &RNG{seed: seed}
}

func (r *RNG) nextRandom64() uint64 {
	x := r.seed
	x ^= x >> 12
	x ^= x << 25
	x ^= x >> 27
	if x == 0 {
		x = defaultSeed
	}
	r.seed = x
	return x * 2685821657736338717
}

// Flip implements Coin.
func (r *RNG) Flip() bool {
	if r.avail == 0 {
		r.bits = r.nextRandom64()
		r.avail = 64
	}
	// High bits of xorshift64* have the best statistical quality.
	bit := r.bits>>63 == 1
	r.bits <<= 1
	r.avail--
	return bit
}
