// Copyright ©2026 The MHGo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mh

import "fmt"

// Solution is the polymorphic candidate-solution contract consumed by the
// scheduling core. Every concrete encoding in package solution (vector,
// boolean vector, permutation, subset) implements it.
type Solution interface {
	// Objective returns the cached objective value, recomputing it first
	// if the cache has been invalidated since the last mutation.
	Objective() float64

	// Invalidate marks the cached objective stale. Must be called after
	// any mutation that may change the objective value.
	Invalidate()

	// ToMaximize reports the optimization direction. Fixed per problem
	// type; never changes over the lifetime of a solution.
	ToMaximize() bool

	// IsBetter reports whether the receiver is strictly better than
	// other, consistent with ToMaximize.
	IsBetter(other Solution) bool
	// IsWorse reports whether the receiver is strictly worse than other.
	IsWorse(other Solution) bool
	// IsEqual reports whether the receiver and other are obj-equal and
	// state-equal (encoding-specific).
	IsEqual(other Solution) bool

	// Dist returns a semantic distance between the receiver and other.
	Dist(other Solution) float64

	// Check validates internal invariants, re-deriving the objective
	// from scratch to verify the cache. Returns a non-nil error
	// describing the first violation found.
	Check() error

	// Copy returns an independent deep copy of the receiver.
	Copy() Solution
	// CopyFrom overwrites the receiver in place with the state of src,
	// reusing the receiver's own backing storage where possible.
	CopyFrom(src Solution)
}

// IsBetterObj compares two bare objective values under the given
// optimization direction, independent of any Solution instance. Scheduler
// bookkeeping (incumbent comparison, success accounting) is expressed in
// terms of this so it never has to materialize a Solution just to compare
// two float64s.
func IsBetterObj(toMaximize bool, v1, v2 float64) bool {
	if toMaximize {
		return v1 > v2
	}
	return v1 < v2
}

// IsWorseObj is the dual of IsBetterObj.
func IsWorseObj(toMaximize bool, v1, v2 float64) bool {
	return IsBetterObj(toMaximize, v2, v1)
}

// MHMethodFunc is the operator contract presented to problem code: a
// construction/local-improvement/shaking/destroy/repair operator mutates
// sol in place, using param (typically a neighborhood size or strength),
// and reports outcome via result.
type MHMethodFunc func(sol Solution, param int, result *Result)

// MHMethod is a named, immutable reference to an operator. Name must be
// unique within a single driver's method table.
type MHMethod struct {
	Name  string
	Func  MHMethodFunc
	Param int
}

// String implements fmt.Stringer for log output.
func (m MHMethod) String() string {
	return fmt.Sprintf("%s(%d)", m.Name, m.Param)
}

// Apply invokes the method's function on sol, populating and returning a
// fresh Result. It does not touch statistics or incumbents; callers use
// schedule.Scheduler.PerformMethod for that.
func (m MHMethod) Apply(sol Solution) Result {
	var res Result
	m.Func(sol, m.Param, &res)
	return res
}

// Result is the per-application outcome an operator reports back.
type Result struct {
	// Changed reports whether the operator modified sol.
	Changed bool
	// Terminate signals that the run should stop after this
	// application, independent of the scheduler's own termination
	// conditions.
	Terminate bool
	// LogInfo is free-form text the operator wants attached to the
	// iteration log line.
	LogInfo string
	// LocalOptimum reports that the solution the operator leaves behind is
	// a local optimum of its own neighborhood (not merely "no change this
	// call"). When such an application improves the solution, gvns's VND
	// procedure continues to the next li method instead of restarting the
	// pass; on a non-improving application VND moves on either way.
	LocalOptimum bool
}
