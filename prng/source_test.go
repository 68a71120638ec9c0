package prng_test

import (
	"math/rand"
	"testing"

	. "github.com/joomcode/xorshift32/prng"
	"github.com/stretchr/testify/assert"
)

func TestSource(t *testing.T) {
	s := NewSource(123456)
	assert.Equal(t, uint64(13075762693044135793), s.Uint64())
	assert.Equal(t, uint32(372467569), s.Generator().SaveState())

	s.Generator().RestoreState(123456)
	assert.Equal(t, int64(6537881346522067896), s.Int63())
}

func TestSourceZeroSeed(t *testing.T) {
	s := NewSource(0)
	assert.Equal(t, DefaultSeed, s.Generator().SaveState())
	assert.Equal(t, uint32(270369), s.Uint32())

	s.Seed(1 << 32)
	assert.Equal(t, DefaultSeed, s.Generator().SaveState())

	s.Seed(-1)
	assert.Equal(t, uint32(0xffffffff), s.Generator().SaveState())

	s.Generator().RestoreState(0)
	assert.Panics(t, func() { s.Uint32() })
}

func TestSourceStreamReachesZero(t *testing.T) {
	s := NewSource(4227866623)
	assert.Equal(t, uint32(0), s.Uint32())
	assert.Equal(t, DefaultSeed, s.Generator().SaveState())
	assert.Equal(t, uint32(270369), s.Uint32())

	r := rand.New(NewSource(4227866623))
	assert.NotPanics(t, func() {
		for i := 0; i < 100; i++ {
			r.Int63()
		}
	})
}

func TestSourceWithRand(t *testing.T) {
	a := rand.New(NewSource(77))
	b := rand.New(NewSource(77))
	for i := 0; i < 100; i++ {
		v := a.Intn(10)
		assert.True(t, v >= 0 && v < 10)
		assert.Equal(t, v, b.Intn(10))
	}
	assert.Equal(t, a.Perm(20), b.Perm(20))
	for i := 0; i < 100; i++ {
		assert.True(t, a.Int63() >= 0)
	}
}
