package memo

import "sync"

// table is a bounded two-generation map.
// When the head generation is full the older generation is dropped and the
// generations swap, so lookups still see the most recent maxSize..2*maxSize entries.
type table struct {
	mu      sync.Mutex
	gens    [2]map[any]any
	head    int
	size    int
	maxSize int
}

func newTable(maxSize int) *table {
	if maxSize <= 0 {
		panic("maxSize should be greater than 0")
	}
	return &table{
		gens:    [2]map[any]any{{}, {}},
		maxSize: maxSize,
	}
}

func (t *table) load(key any) (any, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if v, ok := t.gens[t.head][key]; ok {
		return v, true
	}
	v, ok := t.gens[1-t.head][key]
	return v, ok
}

func (t *table) store(key, value any) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if _, ok := t.gens[t.head][key]; ok {
		t.gens[t.head][key] = value
		return
	}
	if t.size >= t.maxSize {
		t.head = 1 - t.head
		t.gens[t.head] = make(map[any]any, t.maxSize)
		t.size = 0
	}
	t.gens[t.head][key] = value
	t.size++
}
