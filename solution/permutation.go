// Copyright ©2026 The MHGo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package solution

import (
	"math/rand"

	"github.com/ac-tuwien/mhgo/mh"
)

// PermutationSolution holds a sequence that must always be a permutation
// of a fixed set of distinct elements, except temporarily during a
// destroy/repair pair where elements may be stashed out via
// RandomRemoveElements and must be returned via RandomReinsertRemoved (or
// an equivalent repair) before the invariant is checked again.
//
// TwoOptMoveDeltaEvalFunc, if set, computes the objective delta of
// reversing the subrange [p1,p2] without performing the reversal; left
// nil, the 2-opt search falls back to invalidating and recomputing from
// scratch after applying each candidate move.
type PermutationSolution struct {
	*VectorSolution[int]

	// destroyed holds elements removed by RandomRemoveElements, pending
	// RandomReinsertRemoved.
	destroyed []int

	TwoOptMoveDeltaEvalFunc func(p1, p2 int) float64
}

// NewPermutationSolution builds a PermutationSolution over a copy of
// elems (used as the initial, and permanent, element set).
func NewPermutationSolution(maximize bool, elems []int, calc func([]int) float64) *PermutationSolution {
	seq := make([]int, len(elems))
	copy(seq, elems)
	return &PermutationSolution{VectorSolution: NewVectorSolution(maximize, seq, calc)}
}

// Copy returns an independent deep copy of the receiver.
func (p *PermutationSolution) Copy() mh.Solution {
	base := p.VectorSolution.Copy().(*VectorSolution[int])
	cp := &PermutationSolution{VectorSolution: base, TwoOptMoveDeltaEvalFunc: p.TwoOptMoveDeltaEvalFunc}
	cp.destroyed = append([]int(nil), p.destroyed...)
	return cp
}

// CopyFrom overwrites the receiver in place with src's state.
func (p *PermutationSolution) CopyFrom(src mh.Solution) {
	o := src.(*PermutationSolution)
	p.VectorSolution.CopyFrom(o.VectorSolution)
	p.TwoOptMoveDeltaEvalFunc = o.TwoOptMoveDeltaEvalFunc
	p.destroyed = append(p.destroyed[:0], o.destroyed...)
}

// Initialize shuffles Seq into a uniform-random permutation and
// invalidates the cache.
func (p *PermutationSolution) Initialize(rng *rand.Rand) {
	rng.Shuffle(len(p.Seq), func(i, j int) { p.Seq[i], p.Seq[j] = p.Seq[j], p.Seq[i] })
	p.Invalidate()
}

// twoOptMoveDeltaEval computes the objective delta of ApplyTwoOptMove(p,
// p1, p2): via the override if set, otherwise by applying the move,
// recomputing the objective from scratch, and reverting the move.
func (p *PermutationSolution) twoOptMoveDeltaEval(p1, p2 int) float64 {
	if p.TwoOptMoveDeltaEvalFunc != nil {
		return p.TwoOptMoveDeltaEvalFunc(p1, p2)
	}
	before := p.Objective()
	ApplyTwoOptMove(p, p1, p2)
	after := p.Objective()
	ApplyTwoOptMove(p, p1, p2)
	p.Invalidate()
	return after - before
}

// ApplyTwoOptMove reverses the subrange Seq[p1:p2+1] in place and
// invalidates the cache. It is its own inverse: applying it twice with the
// same (p1, p2) restores the original sequence.
func ApplyTwoOptMove(p *PermutationSolution, p1, p2 int) {
	for i, j := p1, p2; i < j; i, j = i+1, j-1 {
		p.Seq[i], p.Seq[j] = p.Seq[j], p.Seq[i]
	}
	p.Invalidate()
}

// TwoOptNeighborhoodSearch enumerates unordered pairs (p1, p2) in a
// randomized order, evaluating each via twoOptMoveDeltaEval. With
// bestImprovement false, applies and returns on the first improving move;
// otherwise applies the best improving move found after a full scan (or no
// move, if none improves). Returns whether the solution improved.
func (p *PermutationSolution) TwoOptNeighborhoodSearch(rng *rand.Rand, bestImprovement bool) bool {
	n := len(p.Seq)
	if n < 2 {
		return false
	}
	type pair struct{ p1, p2 int }
	pairs := make([]pair, 0, n*(n-1)/2)
	for i := 0; i < n-1; i++ {
		for j := i + 1; j < n; j++ {
			pairs = append(pairs, pair{i, j})
		}
	}
	rng.Shuffle(len(pairs), func(i, j int) { pairs[i], pairs[j] = pairs[j], pairs[i] })

	bestDelta := 0.0
	bestPair := pair{-1, -1}
	for _, pr := range pairs {
		delta := p.twoOptMoveDeltaEval(pr.p1, pr.p2)
		if mh.IsBetterObj(p.ToMaximize(), p.Objective()+delta, p.Objective()) {
			if !bestImprovement {
				ApplyTwoOptMove(p, pr.p1, pr.p2)
				return true
			}
			if bestPair.p1 == -1 || mh.IsBetterObj(p.ToMaximize(), p.Objective()+delta, p.Objective()+bestDelta) {
				bestDelta = delta
				bestPair = pr
			}
		}
	}
	if bestPair.p1 == -1 {
		return false
	}
	ApplyTwoOptMove(p, bestPair.p1, bestPair.p2)
	return true
}

// RandomTwoExchangeMoves performs n random swaps of distinct positions and
// invalidates the cache.
func (p *PermutationSolution) RandomTwoExchangeMoves(rng *rand.Rand, n int) {
	l := len(p.Seq)
	if l < 2 {
		return
	}
	for i := 0; i < n; i++ {
		a := rng.Intn(l)
		b := rng.Intn(l - 1)
		if b >= a {
			b++
		}
		p.Seq[a], p.Seq[b] = p.Seq[b], p.Seq[a]
	}
	p.Invalidate()
}

// RandomRemoveElements moves n randomly chosen positions into the owned
// destroyed stash and compacts Seq, temporarily shrinking it below the
// full element set. Invalidates the cache.
func (p *PermutationSolution) RandomRemoveElements(rng *rand.Rand, n int) {
	l := len(p.Seq)
	if n > l {
		n = l
	}
	idx := rng.Perm(l)[:n]
	remove := make(map[int]bool, n)
	for _, i := range idx {
		remove[i] = true
	}
	kept := p.Seq[:0]
	var removed []int
	for i, v := range p.Seq {
		if remove[i] {
			removed = append(removed, v)
		} else {
			kept = append(kept, v)
		}
	}
	// Seq and kept alias the same backing array; kept must be copied out
	// before Seq is further mutated, since they share storage.
	newSeq := make([]int, len(kept))
	copy(newSeq, kept)
	p.Seq = newSeq
	p.destroyed = append(p.destroyed, removed...)
	p.Invalidate()
}

// RandomReinsertRemoved reinserts all stashed elements (in shuffled order)
// at random positions, restoring the permutation invariant. Invalidates
// the cache.
func (p *PermutationSolution) RandomReinsertRemoved(rng *rand.Rand) {
	rng.Shuffle(len(p.destroyed), func(i, j int) { p.destroyed[i], p.destroyed[j] = p.destroyed[j], p.destroyed[i] })
	for _, v := range p.destroyed {
		pos := 0
		if len(p.Seq) > 0 {
			pos = rng.Intn(len(p.Seq) + 1)
		}
		p.Seq = append(p.Seq, 0)
		copy(p.Seq[pos+1:], p.Seq[pos:len(p.Seq)-1])
		p.Seq[pos] = v
	}
	p.destroyed = p.destroyed[:0]
	p.Invalidate()
}
