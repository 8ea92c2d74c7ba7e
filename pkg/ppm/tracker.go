package ppm

import "golang.org/x/exp/constraints"

// IntervalTracker turns a stream of absolute pulse-start timestamps into
// inter-pulse intervals. Subtraction is modular over the unsigned timestamp
// type, so a counter that wrapped between two observations still yields the
// true interval.
//
// Precondition: the counter wraps at most once between observations. The
// tracker cannot detect multiple silent wraps; callers must observe pulses
// more often than one full counter period.
type IntervalTracker[T constraints.Unsigned] struct {
	prev   T
	primed bool
}

// Observe records a pulse-start timestamp and returns the interval since
// the previous one. The first observation after construction or Reset only
// establishes the reference point and reports false.
func (t *IntervalTracker[T]) Observe(ts T) (T, bool) {
	if !t.primed {
		t.prev = ts
		t.primed = true
		return 0, false
	}
	d := ts - t.prev // unsigned wraparound is defined in Go; this is the modular distance
	t.prev = ts
	return d, true
}

// Reset discards the reference point, as if no pulse had been observed.
func (t *IntervalTracker[T]) Reset() {
	t.primed = false
}
