package prng

// Initialize returns new generator seeded with seed.
func Initialize(seed uint32) *Generator {
	return New(seed)
}

// SaveState returns state of g.
func SaveState(g *Generator) uint32 {
	return g.SaveState()
}

// LoadState restores state of g.
func LoadState(g *Generator, state uint32) *Generator {
	return g.RestoreState(state)
}

// GenerateInteger advances g and returns new state.
func GenerateInteger(g *Generator) (uint32, error) {
	return g.Next()
}

// GenerateInRange returns value from g in [min, max).
func GenerateInRange(g *Generator, min, max int) (int, error) {
	if max <= min {
		return 0, errEmptyRange(min, max)
	}
	return g.NextInRange(min, max)
}

// GenerateFloat returns value from g in [0, 1].
func GenerateFloat(g *Generator) (float64, error) {
	return g.NextFloat()
}
