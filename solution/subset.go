// Copyright ©2026 The MHGo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package solution

import (
	"fmt"
	"math/rand"
	"sort"

	"github.com/ac-tuwien/mhgo/mh"
)

// SubsetVectorSolution partitions Seq into a selected prefix of length Sel
// and an extension-pool suffix Seq[Sel:]. All elements are distinct; the
// selected prefix is kept sorted after every change that modifies it.
//
// ElementAddedDeltaEvalFunc and ElementRemovedDeltaEvalFunc are the
// delta-evaluation hooks a concrete problem overrides to maintain the
// objective and any incidental bookkeeping incrementally. Left nil, they
// fall back to invalidating the cache (and, for additions, reporting the
// candidate as feasible unconditionally).
type SubsetVectorSolution struct {
	*VectorSolution[int]
	// Sel is the number of selected elements: Seq[:Sel] is the selected
	// set, Seq[Sel:] is the extension pool.
	Sel int

	// extendible is a performance hint: false once a Fill pass has
	// scanned the whole pool without accepting anything, so a
	// subsequent Fill with an unchanged pool can return immediately.
	// Reset to true by RemoveSome, since removed elements reenter the
	// pool and may now be addable.
	extendible bool

	ElementAddedDeltaEvalFunc   func(elem int) (delta float64, feasible bool)
	ElementRemovedDeltaEvalFunc func(elem int) float64
}

// NewSubsetVectorSolution builds a SubsetVectorSolution over a copy of
// universe with an empty selection (the whole universe starts in the
// extension pool).
func NewSubsetVectorSolution(maximize bool, universe []int, calc func([]int) float64) *SubsetVectorSolution {
	seq := make([]int, len(universe))
	copy(seq, universe)
	return &SubsetVectorSolution{
		VectorSolution: NewVectorSolution(maximize, seq, calc),
		extendible:     true,
	}
}

// Copy returns an independent deep copy of the receiver.
func (s *SubsetVectorSolution) Copy() mh.Solution {
	base := s.VectorSolution.Copy().(*VectorSolution[int])
	return &SubsetVectorSolution{
		VectorSolution:              base,
		Sel:                         s.Sel,
		extendible:                  s.extendible,
		ElementAddedDeltaEvalFunc:   s.ElementAddedDeltaEvalFunc,
		ElementRemovedDeltaEvalFunc: s.ElementRemovedDeltaEvalFunc,
	}
}

// CopyFrom overwrites the receiver in place with src's state.
func (s *SubsetVectorSolution) CopyFrom(src mh.Solution) {
	o := src.(*SubsetVectorSolution)
	s.VectorSolution.CopyFrom(o.VectorSolution)
	s.Sel = o.Sel
	s.extendible = o.extendible
	s.ElementAddedDeltaEvalFunc = o.ElementAddedDeltaEvalFunc
	s.ElementRemovedDeltaEvalFunc = o.ElementRemovedDeltaEvalFunc
}

// Check validates the selected/pool partition invariant in addition to the
// base VectorSolution cache check: Sel in range, no duplicates anywhere,
// and the selected prefix sorted.
func (s *SubsetVectorSolution) Check() error {
	if err := s.VectorSolution.Check(); err != nil {
		return err
	}
	if s.Sel < 0 || s.Sel > len(s.Seq) {
		return fmt.Errorf("solution: Sel %d out of range [0,%d]", s.Sel, len(s.Seq))
	}
	if !sort.IntsAreSorted(s.Seq[:s.Sel]) {
		return fmt.Errorf("solution: selected prefix %v is not sorted", s.Seq[:s.Sel])
	}
	seen := make(map[int]bool, len(s.Seq))
	for _, v := range s.Seq {
		if seen[v] {
			return fmt.Errorf("solution: duplicate element %d", v)
		}
		seen[v] = true
	}
	return nil
}

func (s *SubsetVectorSolution) elementAdded(elem int) (delta float64, feasible bool) {
	if s.ElementAddedDeltaEvalFunc != nil {
		return s.ElementAddedDeltaEvalFunc(elem)
	}
	s.Invalidate()
	return 0, true
}

func (s *SubsetVectorSolution) elementRemoved(elem int) float64 {
	if s.ElementRemovedDeltaEvalFunc != nil {
		return s.ElementRemovedDeltaEvalFunc(elem)
	}
	s.Invalidate()
	return 0
}

// sortSelected restores the sorted-prefix invariant after Sel has grown or
// an element within the prefix has changed.
func (s *SubsetVectorSolution) sortSelected() {
	sort.Ints(s.Seq[:s.Sel])
}

// selectAt moves the pool element at index poolIdx (relative to Seq[Sel:])
// into the selected prefix, keeping the prefix sorted.
func (s *SubsetVectorSolution) selectAt(poolIdx int) {
	i := s.Sel + poolIdx
	s.Seq[i], s.Seq[s.Sel] = s.Seq[s.Sel], s.Seq[i]
	s.Sel++
	s.sortSelected()
}

// deselectAt moves the selected element at index selIdx (within
// Seq[:Sel]) into the pool.
func (s *SubsetVectorSolution) deselectAt(selIdx int) {
	s.Sel--
	s.Seq[selIdx], s.Seq[s.Sel] = s.Seq[s.Sel], s.Seq[selIdx]
	s.sortSelected()
}

// Fill extends the selection by scanning the extension pool — in random
// order if randomize is set, in current order otherwise — invoking
// elementAdded for each candidate and accepting those reported feasible.
func (s *SubsetVectorSolution) Fill(rng *rand.Rand, randomize bool) {
	if !s.extendible {
		return
	}
	// Snapshot the pool elements themselves, not their positions: selectAt
	// moves an accepted element below Sel and shifts later pool entries
	// into its old slot, so indexing by a fixed offset would skip or
	// repeat candidates. Re-locating each element by value keeps the scan
	// correct regardless of earlier accepts in this pass.
	poolElems := append([]int(nil), s.Seq[s.Sel:]...)
	if randomize {
		rng.Shuffle(len(poolElems), func(i, j int) { poolElems[i], poolElems[j] = poolElems[j], poolElems[i] })
	}

	anyAdded := false
	for _, elem := range poolElems {
		pos := s.poolIndexOf(elem)
		if pos < 0 {
			continue // already selected by an earlier accept in this pass
		}
		if _, feasible := s.elementAdded(elem); feasible {
			s.selectAt(pos)
			anyAdded = true
		}
	}
	if !anyAdded {
		s.extendible = false
	}
}

func (s *SubsetVectorSolution) poolIndexOf(elem int) int {
	for i := s.Sel; i < len(s.Seq); i++ {
		if s.Seq[i] == elem {
			return i - s.Sel
		}
	}
	return -1
}

// RemoveSome removes min(k, Sel) randomly chosen selected elements,
// invoking elementRemoved for each. Temporary infeasibility is allowed.
func (s *SubsetVectorSolution) RemoveSome(rng *rand.Rand, k int) {
	if k > s.Sel {
		k = s.Sel
	}
	idx := rng.Perm(s.Sel)[:k]
	sort.Sort(sort.Reverse(sort.IntSlice(idx)))
	for _, i := range idx {
		elem := s.Seq[i]
		s.elementRemoved(elem)
		s.deselectAt(i)
	}
	s.extendible = true
}

// TwoExchangeRandomFillNeighborhoodSearch swaps each selected element with
// each pool element, greedily re-filling after each trial swap, and keeps
// the first improving move found (bestImprovement false) or the best one
// seen (bestImprovement true). Worst case O(|selected| * |pool|) moves.
// Returns whether the solution improved.
//
// Each trial swap is evaluated against a snapshot of Seq/Sel so a rejected
// trial is restored exactly; the corresponding inverse elementAdded /
// elementRemoved hook calls are issued around the restore so a problem's
// incidental bookkeeping stays consistent with the elements that are
// actually selected once the trial is undone.
func (s *SubsetVectorSolution) TwoExchangeRandomFillNeighborhoodSearch(rng *rand.Rand, bestImprovement bool) bool {
	objBefore := s.Objective()
	bestObj := objBefore
	var bestSeq []int
	bestSel := s.Sel
	improved := false

	selElems := append([]int(nil), s.Seq[:s.Sel]...)
	poolElems := append([]int(nil), s.Seq[s.Sel:]...)

	for _, selElem := range selElems {
		for _, poolElem := range poolElems {
			if s.poolIndexOf(poolElem) < 0 {
				continue // already pulled into the selection by an earlier trial's Fill
			}
			si := s.indexOf(selElem)
			if si < 0 || si >= s.Sel {
				continue // selElem no longer selected (evicted by an earlier trial)
			}
			snapshotSeq := append([]int(nil), s.Seq...)
			snapshotSel := s.Sel
			snapshotExtendible := s.extendible
			preSelected := make(map[int]bool, s.Sel)
			for _, e := range s.Seq[:s.Sel] {
				preSelected[e] = true
			}

			s.elementRemoved(selElem)
			s.deselectAt(si)
			if pos := s.poolIndexOf(poolElem); pos >= 0 {
				if _, feasible := s.elementAdded(poolElem); feasible {
					s.selectAt(pos)
				}
			}
			s.extendible = true // the swap changed the pool
			s.Fill(rng, false)

			cur := s.Objective()
			keep := mh.IsBetterObj(s.ToMaximize(), cur, objBefore)
			if keep {
				improved = true
				if !bestImprovement {
					return true
				}
				if mh.IsBetterObj(s.ToMaximize(), cur, bestObj) {
					bestObj = cur
					bestSeq = append([]int(nil), s.Seq...)
					bestSel = s.Sel
				}
			}

			// Undo: signal removal of everything newly selected in this
			// trial, signal re-addition of selElem, then restore the
			// exact pre-trial layout.
			for _, e := range s.Seq[:s.Sel] {
				if !preSelected[e] {
					s.elementRemoved(e)
				}
			}
			s.elementAdded(selElem)
			s.Seq = snapshotSeq
			s.Sel = snapshotSel
			s.extendible = snapshotExtendible
			s.Invalidate()
		}
	}

	if bestImprovement && improved {
		s.Seq = bestSeq
		s.Sel = bestSel
		s.extendible = true
		s.Invalidate()
	}
	return improved
}

// indexOf returns the index of elem within Seq, or -1 if absent.
func (s *SubsetVectorSolution) indexOf(elem int) int {
	for i, v := range s.Seq {
		if v == elem {
			return i
		}
	}
	return -1
}
