/* Copyright (c) 2021 David Bulkow */

// Package timespan converts human duration expressions to seconds and
// computes the pair of instants those seconds keep apart.
package timespan

import "time"

// Resolve computes the two instants delta seconds apart, anchored at
// now shifted by shift seconds. An absent shift is represented by zero:
// after is then exactly now. The returned pair always satisfies
// before <= after; a negative delta lands the pair in the future
// rather than breaking the ordering.
func Resolve(now time.Time, delta, shift int64) (before, after time.Time) {
	after = now.Add(time.Duration(shift) * time.Second)
	before = after.Add(-time.Duration(delta) * time.Second)

	if before.After(after) {
		before, after = after, before
	}

	return before, after
}
