// Copyright ©2026 The MHGo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mh

// ObjectiveCache implements the cached-objective half of the Solution
// contract (Objective, Invalidate, ToMaximize). Concrete encodings in
// package solution embed it and supply Calc, a closure computing the
// objective from scratch over the embedding type's own state — the same
// optional-function-field shape the scheduler's MHMethodFunc and the
// delta-evaluation hooks use elsewhere in this module.
type ObjectiveCache struct {
	// Calc recomputes the objective from the current solution state.
	// Set once at construction; must not be nil before first use.
	Calc func() float64

	maximize bool
	value    float64
	valid    bool
}

// NewObjectiveCache returns a cache for a problem optimizing in the given
// direction, with calc supplying the recompute path.
func NewObjectiveCache(maximize bool, calc func() float64) ObjectiveCache {
	return ObjectiveCache{Calc: calc, maximize: maximize}
}

// Objective returns the cached value, recomputing via Calc if invalid.
func (c *ObjectiveCache) Objective() float64 {
	if !c.valid {
		c.value = c.Calc()
		c.valid = true
	}
	return c.value
}

// Invalidate marks the cache stale. Idempotent: calling it twice in a row
// leaves the cache in the same invalid state as calling it once, and the
// next Objective() call recomputes exactly once.
func (c *ObjectiveCache) Invalidate() {
	c.valid = false
}

// ToMaximize reports the fixed optimization direction.
func (c *ObjectiveCache) ToMaximize() bool {
	return c.maximize
}

// CachedValue reports the cache's current value and whether it is valid,
// without forcing a recompute. Check() implementations use this to verify
// the cache against a from-scratch recomputation.
func (c *ObjectiveCache) CachedValue() (value float64, valid bool) {
	return c.value, c.valid
}

// CloneState copies src's cached value/valid flag into c, leaving Calc
// and the optimization direction untouched. Copy()/CopyFrom()
// implementations use this to avoid an unnecessary recompute right after
// duplicating the rest of the solution's state.
func (c *ObjectiveCache) CloneState(src ObjectiveCache) {
	c.value = src.value
	c.valid = src.valid
}
