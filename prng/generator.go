package prng

// DefaultSeed is used when no seed is given.
const DefaultSeed uint32 = 1

// floatDivisor is 2^32-1. Advance never yields 0xffffffff (step 2 clears bit 31),
// so 1.0 is allowed by the formula but never returned.
const floatDivisor = 0xffffffff

// Opts is options for generator.
type Opts struct {
	// Logger receives generator events. nil means no logging.
	// Use DefaultLogger{} to print events with standard log.
	Logger Logger
}

// Generator is a Xorshift32 generator.
// Zero value has zero state, and must be restored before use.
type Generator struct {
	state  uint32
	logger Logger
}

// New returns generator seeded with seed.
// Zero seed is accepted, but any draw will fail until nonzero state is restored.
func New(seed uint32) *Generator {
	return &Generator{state: seed}
}

// NewDefault returns generator seeded with DefaultSeed.
func NewDefault() *Generator {
	return New(DefaultSeed)
}

// NewFromInt returns generator seeded with seed truncated to 32 bits.
// Negative seeds are taken in two's complement, ie -1 becomes 0xffffffff.
func NewFromInt(seed int64) *Generator {
	return New(uint32(seed))
}

// NewWithOpts returns generator seeded with seed and configured with opts.
func NewWithOpts(seed uint32, opts Opts) *Generator {
	return &Generator{state: seed, logger: opts.Logger}
}

// Next advances state and returns it.
// Advance may reach zero: seed 4227866623 gives 0, and following call fails.
// It fails with ErrInvalidState if state is zero, state is not changed then.
func (g *Generator) Next() (uint32, error) {
	if g.state == 0 {
		g.report(LogZeroState)
		return 0, errZeroState()
	}
	g.state = step(g.state)
	return g.state, nil
}

// step is single xor-shift transform. Middle shift is arithmetic.
func step(x uint32) uint32 {
	x ^= x << 13
	x ^= uint32(int32(x) >> 17)
	x ^= x << 5
	return x
}

// NextInRange returns value in [min, max).
// Range is checked before advancing, so failed call doesn't change state.
// Value is taken modulo range width without rejection, therefore small bias
// is present for widths not dividing 2^32.
func (g *Generator) NextInRange(min, max int) (int, error) {
	if max <= min {
		g.report(LogInvalidRange, min, max)
		return 0, errEmptyRange(min, max)
	}
	v, err := g.Next()
	if err != nil {
		return 0, err
	}
	// exact even when max-min overflows int
	width := uint64(max) - uint64(min)
	return min + int(uint64(v)%width), nil
}

// NextFloat returns value in [0, 1].
func (g *Generator) NextFloat() (float64, error) {
	v, err := g.Next()
	if err != nil {
		return 0, err
	}
	return float64(v) / floatDivisor, nil
}

// SaveState returns current state.
func (g *Generator) SaveState() uint32 {
	return g.state
}

// RestoreState overwrites state with value and returns generator itself.
// Value is not validated: restoring zero succeeds, but next draw fails.
func (g *Generator) RestoreState(value uint32) *Generator {
	prev := g.state
	g.state = value
	g.report(LogRestored, prev, value)
	return g
}
