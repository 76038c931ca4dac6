// Copyright ©2026 The MHGo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package solution

import (
	"math/rand"

	"gonum.org/v1/gonum/stat/combin"

	"github.com/ac-tuwien/mhgo/mh"
)

// BoolVectorSolution specializes VectorSolution[bool]. Dist is Hamming
// distance rather than the identity-or-1 default.
//
// FlipVariableFunc is the delta-evaluation hook a concrete problem
// overrides to maintain the objective incrementally; left nil, FlipVariable
// falls back to a plain bit flip plus Invalidate.
type BoolVectorSolution struct {
	*VectorSolution[bool]

	// FlipVariableFunc, if set, is called instead of the default flip+
	// invalidate behavior. It must itself flip Seq[pos] and update the
	// objective (incrementally or by invalidating).
	FlipVariableFunc func(pos int)
}

// NewBoolVectorSolution builds a BoolVectorSolution of the given length,
// all false, whose objective is computed from scratch by calc.
func NewBoolVectorSolution(maximize bool, n int, calc func([]bool) float64) *BoolVectorSolution {
	return &BoolVectorSolution{VectorSolution: NewVectorSolution(maximize, make([]bool, n), calc)}
}

// Dist returns the Hamming distance between the receiver and other.
func (b *BoolVectorSolution) Dist(other mh.Solution) float64 {
	ob := other.(*BoolVectorSolution)
	d := 0
	for i, v := range b.Seq {
		if v != ob.Seq[i] {
			d++
		}
	}
	return float64(d)
}

// Copy returns an independent deep copy of the receiver.
func (b *BoolVectorSolution) Copy() mh.Solution {
	base := b.VectorSolution.Copy().(*VectorSolution[bool])
	return &BoolVectorSolution{VectorSolution: base, FlipVariableFunc: b.FlipVariableFunc}
}

// CopyFrom overwrites the receiver in place with src's state.
func (b *BoolVectorSolution) CopyFrom(src mh.Solution) {
	o := src.(*BoolVectorSolution)
	b.VectorSolution.CopyFrom(o.VectorSolution)
	b.FlipVariableFunc = o.FlipVariableFunc
}

// Initialize fills Seq with an independent uniform-random boolean draw per
// position and invalidates the cache.
func (b *BoolVectorSolution) Initialize(rng *rand.Rand) {
	for i := range b.Seq {
		b.Seq[i] = rng.Intn(2) == 1
	}
	b.Invalidate()
}

// FlipVariable flips the bit at pos, delegating to FlipVariableFunc if set,
// otherwise performing a plain flip and invalidating the cache.
func (b *BoolVectorSolution) FlipVariable(pos int) {
	if b.FlipVariableFunc != nil {
		b.FlipVariableFunc(pos)
		return
	}
	b.Seq[pos] = !b.Seq[pos]
	b.Invalidate()
}

// KRandomFlips flips k independently chosen positions (with repetition
// possible, matching the source's "k independently chosen positions") and
// invalidates the cache.
func (b *BoolVectorSolution) KRandomFlips(rng *rand.Rand, k int) {
	for i := 0; i < k; i++ {
		b.FlipVariable(rng.Intn(len(b.Seq)))
	}
}

// KFlipNeighborhoodSearch enumerates every k-subset of positions (via
// combin.Combinations over a random permutation of indices, so the subset
// *order* explored is randomized even though the subsets themselves are
// enumerated in combinatorial order) and flips each subset as a unit,
// keeping the first improving subset found (firstImprovement) or the best
// one seen (bestImprovement otherwise). Returns whether the solution
// improved; final state reflects the kept neighbor.
func (b *BoolVectorSolution) KFlipNeighborhoodSearch(rng *rand.Rand, k int, bestImprovement bool) bool {
	n := len(b.Seq)
	if k <= 0 || k > n {
		return false
	}
	perm := rng.Perm(n)
	subsets := combin.Combinations(n, k)

	objBefore := b.Objective()
	bestObj := objBefore
	var bestSubset []int
	improved := false

	applySubset := func(idxInPerm []int) {
		for _, j := range idxInPerm {
			b.FlipVariable(perm[j])
		}
	}

	for _, subset := range subsets {
		applySubset(subset)
		cur := b.Objective()
		if mh.IsBetterObj(b.ToMaximize(), cur, objBefore) {
			improved = true
			if !bestImprovement {
				return true
			}
			if mh.IsBetterObj(b.ToMaximize(), cur, bestObj) {
				bestObj = cur
				bestSubset = append([]int(nil), subset...)
			}
		}
		applySubset(subset) // revert: flipping the same positions again undoes the move
	}

	if bestImprovement && improved {
		applySubset(bestSubset)
	}
	return improved
}
