package engine

import "github.com/121yaseen/westworld/chessmg"

const maxPly = 128

// killerTable remembers up to two quiet moves per ply that caused beta
// cutoffs, giving cheap ordering for sibling nodes.
type killerTable [maxPly][2]chessmg.Move

func (k *killerTable) insert(ply int, m chessmg.Move) {
	if ply >= maxPly || k[ply][0] == m {
		return
	}
	k[ply][1] = k[ply][0]
	k[ply][0] = m
}

func (k *killerTable) slot(ply int, m chessmg.Move) int {
	if ply >= maxPly {
		return -1
	}
	switch m {
	case k[ply][0]:
		return 0
	case k[ply][1]:
		return 1
	}
	return -1
}

func (k *killerTable) clear() {
	*k = killerTable{}
}

// historyTable accumulates quiet move success by side, from and to square.
// Scores are halved when a counter saturates so recent cutoffs dominate.
type historyTable [2][64][64]int32

const historyCap = 1 << 14

func (h *historyTable) bump(c chessmg.Color, m chessmg.Move, depth int) {
	entry := &h[c][m.From()][m.To()]
	*entry += int32(depth * depth)
	if *entry >= historyCap {
		h.age(c)
	}
}

func (h *historyTable) age(c chessmg.Color) {
	for from := 0; from < 64; from++ {
		for to := 0; to < 64; to++ {
			h[c][from][to] /= 2
		}
	}
}

func (h *historyTable) score(c chessmg.Color, m chessmg.Move) int32 {
	return h[c][m.From()][m.To()]
}

func (h *historyTable) clear() {
	*h = historyTable{}
}
