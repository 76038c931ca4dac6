// Copyright ©2026 The MHGo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gvns

import (
	"math/rand"

	"github.com/ac-tuwien/mhgo/mh"
	"github.com/ac-tuwien/mhgo/schedule"
)

// Driver runs construction followed by GVNS (VND optionally wrapped in a
// shaking loop) atop a schedule.Scheduler, as described in spec §4.2.
type Driver struct {
	Scheduler *schedule.Scheduler

	Construction []mh.MHMethod
	// LI is the ordered list of local-improvement methods VND iterates.
	LI []mh.MHMethod
	// Shaking is the ordered list of perturbation methods the GVNS outer
	// loop cycles through. May be empty, in which case Run performs a
	// single VND pass and returns.
	Shaking []mh.MHMethod

	// ConsiderInitialSol, if true, skips running Construction and treats
	// the template passed to Run as already a valid initial solution.
	ConsiderInitialSol bool

	Rng *rand.Rand
}

// New builds a Driver. scheduler must already be constructed over the
// union of construction, li, and shaking methods.
func New(scheduler *schedule.Scheduler, construction, li, shaking []mh.MHMethod, considerInitialSol bool, rng *rand.Rand) *Driver {
	if rng == nil {
		rng = rand.New(rand.NewSource(1))
	}
	return &Driver{
		Scheduler:          scheduler,
		Construction:       construction,
		LI:                 li,
		Shaking:            shaking,
		ConsiderInitialSol: considerInitialSol,
		Rng:                rng,
	}
}

// Run executes construction (unless ConsiderInitialSol) followed by GVNS
// on a copy of template, returning the best solution found.
func (d *Driver) Run(template mh.Solution) mh.Solution {
	best := template.Copy()
	d.Scheduler.Init(best, d.ConsiderInitialSol)

	if !d.ConsiderInitialSol {
		if d.Scheduler.PerformSequentially(best, d.Construction) {
			return best
		}
	}

	d.runGVNS(best)
	return best
}

// runGVNS implements spec §4.2's GVNS procedure in place on best.
func (d *Driver) runGVNS(best mh.Solution) {
	if len(d.LI) > 0 {
		if d.vnd(best) {
			return
		}
	}
	if len(d.Shaking) == 0 {
		return
	}
	useVND := len(d.LI) > 0

	working := best.Copy()
	i := 0
	for {
		if d.Scheduler.Terminated() {
			return
		}
		method := d.Shaking[i]
		working.CopyFrom(best)
		objOld := working.Objective()

		tStart := d.Scheduler.Clock()
		result := d.Scheduler.PerformMethod(method, working, useVND)

		terminate := result.Terminate
		if useVND {
			if d.vnd(working) {
				terminate = true
			}
			d.Scheduler.DelayedSuccessUpdate(method, objOld, tStart, working)
		}

		improved := mh.IsBetterObj(working.ToMaximize(), working.Objective(), best.Objective())
		if improved {
			best.CopyFrom(working)
		}

		if terminate {
			return
		}
		if improved {
			i = 0
			continue
		}
		i++
		if i >= len(d.Shaking) {
			return
		}
	}
}

// vnd runs Variable Neighborhood Descent on a working copy of best,
// updating best in place whenever the working copy strictly improves it,
// and returns whether a terminate signal was raised.
func (d *Driver) vnd(best mh.Solution) bool {
	if d.Scheduler.Terminated() {
		return true
	}
	working := best.Copy()
	i := 0
	for i < len(d.LI) {
		method := d.LI[i]
		result := d.Scheduler.PerformMethod(method, working, false)

		improved := mh.IsBetterObj(working.ToMaximize(), working.Objective(), best.Objective())
		if improved {
			best.CopyFrom(working)
		} else {
			working.CopyFrom(best)
		}

		if result.Terminate {
			return true
		}

		switch {
		case improved && !result.LocalOptimum:
			i = 0
		default:
			i++
		}
	}
	return false
}
