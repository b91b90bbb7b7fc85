package engine

import "time"

// timeControl tracks the optional wall-clock budget of one search.
type timeControl struct {
	limited  bool
	deadline time.Time
}

func (tc *timeControl) arm(budget time.Duration) {
	if budget <= 0 {
		*tc = timeControl{}
		return
	}
	tc.limited = true
	tc.deadline = time.Now().Add(budget)
}

func (tc *timeControl) expired() bool {
	return tc.limited && !time.Now().Before(tc.deadline)
}
