// Copyright ©2026 The MHGo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package solution

import (
	"math/rand"
	"testing"

	"github.com/ac-tuwien/mhgo/mh"
)

func oneMaxCalc(seq []bool) float64 {
	var n float64
	for _, b := range seq {
		if b {
			n++
		}
	}
	return n
}

func TestBoolVectorSolutionInitialize(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	b := NewBoolVectorSolution(true, 20, oneMaxCalc)
	b.Initialize(rng)
	if _, valid := b.CachedValue(); valid {
		t.Fatalf("cache still valid right after Initialize")
	}
	// Objective must be in range and consistent with Seq.
	want := oneMaxCalc(b.Seq)
	if got := b.Objective(); got != want {
		t.Fatalf("Objective() = %v, want %v", got, want)
	}
}

func TestBoolVectorSolutionFlipVariableDefault(t *testing.T) {
	b := NewBoolVectorSolution(true, 4, oneMaxCalc)
	before := b.Objective()
	b.FlipVariable(0)
	if b.Seq[0] != true {
		t.Fatalf("Seq[0] = %v, want true after flip", b.Seq[0])
	}
	if got := b.Objective(); got != before+1 {
		t.Fatalf("Objective() = %v, want %v", got, before+1)
	}
}

func TestBoolVectorSolutionFlipVariableOverride(t *testing.T) {
	b := NewBoolVectorSolution(true, 4, oneMaxCalc)
	var flipped []int
	b.FlipVariableFunc = func(pos int) {
		b.Seq[pos] = !b.Seq[pos]
		flipped = append(flipped, pos)
		b.Invalidate()
	}
	b.FlipVariable(2)
	if len(flipped) != 1 || flipped[0] != 2 {
		t.Fatalf("override hook not invoked as expected: %v", flipped)
	}
}

func TestBoolVectorSolutionDistHamming(t *testing.T) {
	a := NewBoolVectorSolution(true, 4, oneMaxCalc)
	b := NewBoolVectorSolution(true, 4, oneMaxCalc)
	a.Seq = []bool{true, false, true, false}
	b.Seq = []bool{true, true, true, true}
	a.Invalidate()
	b.Invalidate()
	if got := a.Dist(b); got != 2 {
		t.Fatalf("Dist() = %v, want 2", got)
	}
}

func TestBoolVectorSolutionKRandomFlips(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	b := NewBoolVectorSolution(true, 10, oneMaxCalc)
	b.KRandomFlips(rng, 5)
	if err := b.Check(); err != nil {
		t.Fatalf("Check() = %v after KRandomFlips", err)
	}
}

// TestBoolVectorSolutionKFlipNeverWorsens checks the core neighborhood-
// search invariant: the returned solution's objective is never worse than
// before the call, for both first- and best-improvement modes.
func TestBoolVectorSolutionKFlipNeverWorsens(t *testing.T) {
	for _, bestImprovement := range []bool{false, true} {
		rng := rand.New(rand.NewSource(3))
		b := NewBoolVectorSolution(true, 8, oneMaxCalc)
		b.Initialize(rng)
		before := b.Objective()
		b.KFlipNeighborhoodSearch(rng, 2, bestImprovement)
		after := b.Objective()
		if mh.IsWorseObj(true, after, before) {
			t.Fatalf("bestImprovement=%v: objective worsened from %v to %v", bestImprovement, before, after)
		}
		if err := b.Check(); err != nil {
			t.Fatalf("bestImprovement=%v: Check() = %v", bestImprovement, err)
		}
	}
}

func TestBoolVectorSolutionKFlipFindsImprovementOnAllFalse(t *testing.T) {
	rng := rand.New(rand.NewSource(5))
	b := NewBoolVectorSolution(true, 6, oneMaxCalc) // all false, objective 0
	improved := b.KFlipNeighborhoodSearch(rng, 1, true)
	if !improved {
		t.Fatalf("KFlipNeighborhoodSearch did not improve an all-false OneMax vector")
	}
	if b.Objective() <= 0 {
		t.Fatalf("Objective() = %v, want > 0 after improving flip", b.Objective())
	}
}

func TestBoolVectorSolutionCopyRoundTrip(t *testing.T) {
	rng := rand.New(rand.NewSource(2))
	a := NewBoolVectorSolution(true, 10, oneMaxCalc)
	a.Initialize(rng)
	a.Objective()

	b := a.Copy().(*BoolVectorSolution)
	b.CopyFrom(a)
	if !a.IsEqual(b) {
		t.Fatalf("a.IsEqual(b) = false after copy round-trip")
	}
	b.Seq[0] = !b.Seq[0]
	b.Invalidate()
	if a.Seq[0] == b.Seq[0] {
		t.Fatalf("mutating the copy affected the original")
	}
}
