package prng

import "math/rand"

// Source adapts Generator to math/rand.Source64.
// Zero seed is replaced with DefaultSeed. When stream itself reaches zero state
// (it does after 4227866623), zero is returned once, and state falls back to DefaultSeed.
type Source struct {
	g Generator
}

var _ rand.Source64 = (*Source)(nil)

// NewSource returns Source seeded with seed.
func NewSource(seed uint32) *Source {
	if seed == 0 {
		seed = DefaultSeed
	}
	return &Source{g: Generator{state: seed}}
}

// Seed implements rand.Source.Seed.
// Seed is truncated to 32 bits, zero is replaced with DefaultSeed.
func (s *Source) Seed(seed int64) {
	v := uint32(seed)
	if v == 0 {
		v = DefaultSeed
	}
	s.g.state = v
}

// Uint32 returns next value of underlying generator.
func (s *Source) Uint32() uint32 {
	v, err := s.g.Next()
	if err != nil {
		// state were zeroed through Generator()
		panic(err)
	}
	if v == 0 {
		s.g.state = DefaultSeed
	}
	return v
}

// Uint64 implements rand.Source64.Uint64 with two consecutive draws, high half first.
func (s *Source) Uint64() uint64 {
	hi := s.Uint32()
	lo := s.Uint32()
	return uint64(hi)<<32 | uint64(lo)
}

// Int63 implements rand.Source.Int63.
func (s *Source) Int63() int64 {
	return int64(s.Uint64() >> 1)
}

// Generator returns underlying generator, useful for SaveState/RestoreState.
// Restoring zero state through it makes Source panic on next draw.
func (s *Source) Generator() *Generator {
	return &s.g
}
