package prng

import "sort"

type permItem struct {
	key   uint32
	index int
}

// Perm returns permutation of [0, n).
// It draws n values, and orders indices by drawn value (ties keep index order).
// So the permutation depends only on state, and is reproducible after RestoreState.
// On error state is left as it was before the call.
func (g *Generator) Perm(n int) ([]int, error) {
	if n < 0 {
		return nil, ErrInvalidRange.New("permutation length is negative").WithProperty(EKCount, n)
	}
	start := g.state
	items := make([]permItem, n)
	for i := range items {
		v, err := g.Next()
		if err != nil {
			// stream reached zero state midway
			g.state = start
			return nil, err
		}
		items[i] = permItem{key: v, index: i}
	}

	sort.SliceStable(items, func(i, j int) bool {
		return items[i].key < items[j].key
	})

	perm := make([]int, n)
	for i, item := range items {
		perm[i] = item.index
	}
	return perm, nil
}
