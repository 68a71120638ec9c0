package prng

import "sync"

// Locked is a Generator guarded by mutex.
// All callers share one stream, so draw order between goroutines is not deterministic.
// Prefer separate Generator per goroutine when reproducibility matters.
type Locked struct {
	mu sync.Mutex
	g  Generator
}

// NewLocked returns Locked seeded with seed.
// opts.Logger is called while lock is held, so it must not call back into Locked.
func NewLocked(seed uint32, opts Opts) *Locked {
	return &Locked{g: Generator{state: seed, logger: opts.Logger}}
}

// Next is a locked Generator.Next.
func (l *Locked) Next() (uint32, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.g.Next()
}

// NextInRange is a locked Generator.NextInRange.
func (l *Locked) NextInRange(min, max int) (int, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.g.NextInRange(min, max)
}

// NextFloat is a locked Generator.NextFloat.
func (l *Locked) NextFloat() (float64, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.g.NextFloat()
}

// Perm is a locked Generator.Perm.
func (l *Locked) Perm(n int) ([]int, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.g.Perm(n)
}

// SaveState is a locked Generator.SaveState.
func (l *Locked) SaveState() uint32 {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.g.SaveState()
}

// RestoreState is a locked Generator.RestoreState.
func (l *Locked) RestoreState(value uint32) *Locked {
	l.mu.Lock()
	l.g.RestoreState(value)
	l.mu.Unlock()
	return l
}
