// Copyright ©2026 The MHGo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package solution

import (
	"fmt"

	"github.com/ac-tuwien/mhgo/mh"
)

// VectorSolution is a candidate solution holding an ordered sequence of T.
// Equality (IsEqual) requires both objective and sequence equality.
type VectorSolution[T comparable] struct {
	mh.ObjectiveCache
	Seq []T

	calc func([]T) float64
}

// NewVectorSolution builds a VectorSolution over seq (not copied), whose
// objective is recomputed from scratch by calc whenever the cache is
// invalid.
func NewVectorSolution[T comparable](maximize bool, seq []T, calc func([]T) float64) *VectorSolution[T] {
	v := &VectorSolution[T]{Seq: seq, calc: calc}
	v.ObjectiveCache = mh.NewObjectiveCache(maximize, func() float64 { return v.calc(v.Seq) })
	return v
}

// IsBetter reports whether the receiver's objective is strictly better
// than other's.
func (v *VectorSolution[T]) IsBetter(other mh.Solution) bool {
	return mh.IsBetterObj(v.ToMaximize(), v.Objective(), other.Objective())
}

// IsWorse reports whether the receiver's objective is strictly worse than
// other's.
func (v *VectorSolution[T]) IsWorse(other mh.Solution) bool {
	return mh.IsWorseObj(v.ToMaximize(), v.Objective(), other.Objective())
}

// sequencer is implemented by any solution exposing its backing sequence,
// whether that is a *VectorSolution[T] itself or a type embedding one
// (BoolVectorSolution, PermutationSolution, SubsetVectorSolution). IsEqual
// and Dist assert against this instead of the concrete *VectorSolution[T]
// type, since other's dynamic type is the outermost embedding type, not
// the embedded base.
type sequencer[T comparable] interface {
	Sequence() []T
}

// Sequence returns the receiver's backing sequence.
func (v *VectorSolution[T]) Sequence() []T {
	return v.Seq
}

// IsEqual reports whether the receiver and other have equal objective and
// equal underlying sequence.
func (v *VectorSolution[T]) IsEqual(other mh.Solution) bool {
	ov, ok := other.(sequencer[T])
	if !ok || v.Objective() != other.Objective() {
		return false
	}
	oseq := ov.Sequence()
	if len(v.Seq) != len(oseq) {
		return false
	}
	for i, x := range v.Seq {
		if x != oseq[i] {
			return false
		}
	}
	return true
}

// Dist returns the identity-or-1 default distance: 0 if the sequences are
// identical, 1 otherwise.
func (v *VectorSolution[T]) Dist(other mh.Solution) float64 {
	if v.IsEqual(other) {
		return 0
	}
	return 1
}

// Check validates the cache by recomputing the objective from scratch and
// comparing it against the cached value, if any.
func (v *VectorSolution[T]) Check() error {
	if cached, valid := v.CachedValue(); valid {
		if want := v.calc(v.Seq); want != cached {
			return fmt.Errorf("solution: cached objective %v does not match recomputed %v", cached, want)
		}
	}
	return nil
}

// Copy returns an independent deep copy of the receiver.
func (v *VectorSolution[T]) Copy() mh.Solution {
	seq := make([]T, len(v.Seq))
	copy(seq, v.Seq)
	cp := NewVectorSolution(v.ToMaximize(), seq, v.calc)
	cp.CloneState(v.ObjectiveCache)
	return cp
}

// CopyFrom overwrites the receiver in place with src's state, reusing the
// receiver's backing array when it has enough capacity.
func (v *VectorSolution[T]) CopyFrom(src mh.Solution) {
	o := src.(*VectorSolution[T])
	if cap(v.Seq) < len(o.Seq) {
		v.Seq = make([]T, len(o.Seq))
	} else {
		v.Seq = v.Seq[:len(o.Seq)]
	}
	copy(v.Seq, o.Seq)
	v.calc = o.calc
	v.CloneState(o.ObjectiveCache)
}
