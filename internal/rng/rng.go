package rng

import (
	"math"
	"math/rand"
)

// Source produces standard normal variates from a seeded uniform stream
// using the Box-Muller transform. A Source is not safe for concurrent
// use; give each parallel run its own Source.
type Source struct {
	uniform *rand.Rand
}

func New(seed int64) *Source {
	return &Source{uniform: rand.New(rand.NewSource(seed))}
}

// Norm returns one draw from N(0, 1).
func (s *Source) Norm() float64 {
	u := s.uniform.Float64()
	for u == 0 {
		// log(0) is undefined; redraw
		u = s.uniform.Float64()
	}
	v := s.uniform.Float64()
	return math.Sqrt(-2*math.Log(u)) * math.Cos(2*math.Pi*v)
}

// Uniform returns one draw from U[0, 1).
func (s *Source) Uniform() float64 {
	return s.uniform.Float64()
}
