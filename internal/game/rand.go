package game

import (
	"math/rand"
	"time"
)

// Source yields uniform floats in [0, 1). *rand.Rand satisfies it.
type Source interface {
	Float64() float64
}

// Rand wraps a Source with the bounded helpers the simulation uses
type Rand struct {
	src Source
}

// NewRand returns a Rand over src, or over a time-seeded source if src is nil
func NewRand(src Source) *Rand {
	if src == nil {
		src = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Rand{src: src}
}

// Between returns a uniform value in [a, b)
func (r *Rand) Between(a, b float64) float64 {
	return a + r.src.Float64()*(b-a)
}

// Sign returns 1 or -1 with equal probability
func (r *Rand) Sign() float64 {
	if r.src.Float64() < 0.5 {
		return 1
	}
	return -1
}

// Chance reports true with probability p
func (r *Rand) Chance(p float64) bool {
	return r.src.Float64() < p
}

// Index returns a uniform index in [0, n)
func (r *Rand) Index(n int) int {
	if n <= 0 {
		return 0
	}
	i := int(r.src.Float64() * float64(n))
	if i >= n {
		i = n - 1
	}
	return i
}

func clampF(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
