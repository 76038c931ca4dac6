// Copyright ©2026 The MHGo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gvns

import (
	"math/rand"
	"testing"

	"github.com/ac-tuwien/mhgo/mh"
	"github.com/ac-tuwien/mhgo/schedule"
	"github.com/ac-tuwien/mhgo/solution"
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

// TestOneMaxGVNS covers scenario 1: maximize count-of-true-bits over a
// length-10 boolean vector, titer=10, with a 1-flip best-improvement local
// search and three k-random-flip shaking methods.
func TestOneMaxGVNS(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	n := 10

	construction := mh.MHMethod{Name: "init", Func: func(s mh.Solution, param int, result *mh.Result) {
		s.(*solution.BoolVectorSolution).Initialize(rng)
	}}
	li1 := mh.MHMethod{Name: "li1", Func: func(s mh.Solution, param int, result *mh.Result) {
		v := s.(*solution.BoolVectorSolution)
		improved := v.KFlipNeighborhoodSearch(rng, 1, true)
		result.Changed = improved
		result.LocalOptimum = !improved
	}}
	shake := func(name string, k int) mh.MHMethod {
		return mh.MHMethod{Name: name, Func: func(s mh.Solution, param int, result *mh.Result) {
			v := s.(*solution.BoolVectorSolution)
			v.KRandomFlips(rng, k)
			result.Changed = true
		}}
	}

	params := schedule.DefaultParameters()
	params.TIter = 10
	sched, err := schedule.New([]mh.MHMethod{construction, li1, shake("sh1", 1), shake("sh2", 2), shake("sh3", 3)}, params, nil)
	if err != nil {
		t.Fatalf("schedule.New() = %v", err)
	}

	d := New(sched, []mh.MHMethod{construction}, []mh.MHMethod{li1},
		[]mh.MHMethod{shake("sh1", 1), shake("sh2", 2), shake("sh3", 3)}, false, rng)

	template := solution.NewBoolVectorSolution(true, n, oneMaxCalc)
	final := d.Run(template)

	obj := final.Objective()
	if obj < 0 || obj > float64(n) {
		t.Fatalf("final objective %v out of range [0,%d]", obj, n)
	}

	rows, _ := sched.Summary()
	total := 0
	for _, r := range rows {
		if r.Name == "init" {
			continue
		}
		total += r.Applications
	}
	if total > 10 {
		t.Fatalf("non-construction applications = %d, want <= 10 (titer=10)", total)
	}
}

func TestEmptyLISkipsVND(t *testing.T) {
	rng := rand.New(rand.NewSource(2))
	shakeCalled := false
	shake := mh.MHMethod{Name: "sh", Func: func(s mh.Solution, param int, result *mh.Result) {
		shakeCalled = true
		result.Terminate = true
	}}

	params := schedule.DefaultParameters()
	params.TIter = 5
	sched, err := schedule.New([]mh.MHMethod{shake}, params, nil)
	if err != nil {
		t.Fatalf("schedule.New() = %v", err)
	}
	d := New(sched, nil, nil, []mh.MHMethod{shake}, true, rng)

	template := solution.NewBoolVectorSolution(true, 8, oneMaxCalc)
	d.Run(template)

	if !shakeCalled {
		t.Fatalf("shaking method was never invoked; GVNS with empty LI must still run shaking")
	}
}

func TestNoShakingRunsVNDOnly(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	liCalls := 0
	li := mh.MHMethod{Name: "li", Func: func(s mh.Solution, param int, result *mh.Result) {
		liCalls++
		v := s.(*solution.BoolVectorSolution)
		improved := v.KFlipNeighborhoodSearch(rng, 1, true)
		result.LocalOptimum = !improved
	}}
	params := schedule.DefaultParameters()
	params.TIter = 100
	sched, err := schedule.New([]mh.MHMethod{li}, params, nil)
	if err != nil {
		t.Fatalf("schedule.New() = %v", err)
	}
	d := New(sched, nil, []mh.MHMethod{li}, nil, true, rng)

	template := solution.NewBoolVectorSolution(true, 8, oneMaxCalc)
	result := d.Run(template)

	if liCalls == 0 {
		t.Fatalf("li method was never invoked")
	}
	// With no shaking methods, VND alone should drive an all-false OneMax
	// vector to its optimum (all true) well before titer=100 is exhausted.
	if got := result.Objective(); got != 8 {
		t.Fatalf("Objective() = %v, want 8 (VND-only run should reach the OneMax optimum)", got)
	}
}
