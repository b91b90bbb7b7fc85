package engine

import "github.com/121yaseen/westworld/chessmg"

// hintTable is a fixed-size hash table mapping position keys to the best move
// found there on an earlier visit. It only steers move ordering; scores are
// never cut off from it, so search results do not depend on its contents.
type hintTable struct {
	entries []hintEntry
	mask    uint64
}

type hintEntry struct {
	key  uint64
	move chessmg.Move
}

// newHintTable allocates a table with 1<<bits slots.
func newHintTable(bits uint) *hintTable {
	size := uint64(1) << bits
	return &hintTable{
		entries: make([]hintEntry, size),
		mask:    size - 1,
	}
}

// store records the best move for a position, replacing any previous tenant.
func (t *hintTable) store(key uint64, m chessmg.Move) {
	if m == 0 {
		return
	}
	t.entries[key&t.mask] = hintEntry{key: key, move: m}
}

// probe returns the remembered move for key, if the slot still holds it.
func (t *hintTable) probe(key uint64) (chessmg.Move, bool) {
	e := t.entries[key&t.mask]
	if e.key == key && e.move != 0 {
		return e.move, true
	}
	return 0, false
}

func (t *hintTable) clear() {
	for i := range t.entries {
		t.entries[i] = hintEntry{}
	}
}
