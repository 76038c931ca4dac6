// Copyright ©2026 The MHGo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lns

import (
	"math"
	"math/rand"

	"github.com/ac-tuwien/mhgo/mh"
	"github.com/ac-tuwien/mhgo/schedule"
	"github.com/ac-tuwien/mhgo/selector"
)

// Driver runs the destroy+repair loop described in spec §4.3 atop a
// schedule.Scheduler.
type Driver struct {
	Scheduler *schedule.Scheduler

	Construction []mh.MHMethod
	Destroy      []mh.MHMethod
	Repair       []mh.MHMethod

	// Compat[d][r] reports whether repair r may follow destroy d. Nil
	// means every repair is compatible with every destroy.
	Compat [][]bool

	// ConsiderInitialSol, if true, skips running Construction and treats
	// the template passed to Run as already a valid initial solution.
	ConsiderInitialSol bool

	Selector selector.Selector
	Params   Parameters
	Rng      *rand.Rand

	temperature float64
	sNew        mh.Solution
}

// New validates and builds a Driver. It returns ErrEmptyConstruction,
// ErrNoMethods, ErrCompatibilityShape, or ErrAllFalseRow for the
// corresponding configuration errors from spec §7; all are fatal at
// construction.
func New(
	construction, destroy, repair []mh.MHMethod,
	compat [][]bool,
	considerInitialSol bool,
	schedulerParams schedule.Parameters,
	lnsParams Parameters,
	sel selector.Selector,
	logger schedule.Logger,
	rng *rand.Rand,
) (*Driver, error) {
	if !considerInitialSol && len(construction) == 0 {
		return nil, ErrEmptyConstruction
	}
	if len(destroy) == 0 || len(repair) == 0 {
		return nil, ErrNoMethods
	}
	if compat != nil {
		if len(compat) != len(destroy) {
			return nil, ErrCompatibilityShape{GotRows: len(compat), WantRows: len(destroy), GotCols: colsOf(compat), WantCols: len(repair)}
		}
		for d, row := range compat {
			if len(row) != len(repair) {
				return nil, ErrCompatibilityShape{GotRows: len(compat), WantRows: len(destroy), GotCols: len(row), WantCols: len(repair)}
			}
			if !anyTrue(row) {
				return nil, ErrAllFalseRow{DestroyIdx: d}
			}
		}
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(1))
	}
	if sel == nil {
		sel = selector.UniformRandomSelector{}
	}

	all := make([]mh.MHMethod, 0, len(construction)+len(destroy)+len(repair))
	all = append(all, construction...)
	all = append(all, destroy...)
	all = append(all, repair...)
	sched, err := schedule.New(all, schedulerParams, logger)
	if err != nil {
		return nil, err
	}

	return &Driver{
		Scheduler:          sched,
		Construction:       construction,
		Destroy:            destroy,
		Repair:             repair,
		Compat:             compat,
		ConsiderInitialSol: considerInitialSol,
		Selector:           sel,
		Params:             lnsParams,
		Rng:                rng,
	}, nil
}

func colsOf(m [][]bool) int {
	if len(m) == 0 {
		return 0
	}
	return len(m[0])
}

func anyTrue(row []bool) bool {
	for _, v := range row {
		if v {
			return true
		}
	}
	return false
}

// Run executes the LNS loop on a copy of template until termination
// fires, and returns the final current solution (which, on normal
// termination, has already been overwritten with the incumbent per spec
// §4.3 step 7).
func (d *Driver) Run(template mh.Solution) mh.Solution {
	sCurrent := template.Copy()
	d.Scheduler.Init(sCurrent, d.ConsiderInitialSol)

	if !d.ConsiderInitialSol {
		d.Scheduler.PerformSequentially(sCurrent, d.Construction)
	}

	d.sNew = sCurrent.Copy()
	d.Selector.Init(d.Scheduler.Iteration())
	d.temperature = math.Abs(sCurrent.Objective())*d.Params.InitTempFactor + temperatureEpsilon

	destroyCandidates := indexRange(len(d.Destroy))

	for !d.Scheduler.Terminated() {
		d.sNew.CopyFrom(sCurrent)

		destroyIdx := d.Selector.Select(d.Rng, destroyCandidates, true)
		repairCandidates := d.repairCandidatesFor(destroyIdx)
		repairIdx := d.Selector.Select(d.Rng, repairCandidates, false)

		objCurrentBefore := sCurrent.Objective()
		incumbentValidBefore := d.Scheduler.IncumbentValid()
		var objIncumbentBefore float64
		if incumbentValidBefore {
			objIncumbentBefore = d.Scheduler.Incumbent().Objective()
		}

		result := d.Scheduler.PerformMethodPair(d.Destroy[destroyIdx], d.Repair[repairIdx], d.sNew)
		objNew := d.sNew.Objective()
		toMax := sCurrent.ToMaximize()

		var outcome selector.Case
		switch {
		case !incumbentValidBefore || mh.IsBetterObj(toMax, objNew, objIncumbentBefore):
			outcome = selector.BetterThanIncumbent
			sCurrent.CopyFrom(d.sNew)
		case mh.IsBetterObj(toMax, objNew, objCurrentBefore):
			outcome = selector.BetterThanCurrent
			sCurrent.CopyFrom(d.sNew)
		case mh.IsWorseObj(toMax, objNew, objCurrentBefore) && d.metropolisAccept(toMax, objNew, objCurrentBefore):
			outcome = selector.AcceptedAlthoughWorse
			sCurrent.CopyFrom(d.sNew)
		default:
			outcome = selector.Rejected
		}

		d.Selector.Update(d.Scheduler.Iteration(), destroyIdx, repairIdx, outcome)

		if result.Terminate {
			sCurrent.CopyFrom(d.Scheduler.Incumbent())
			break
		}

		d.temperature *= d.Params.TempDecFactor
	}

	return sCurrent
}

// repairCandidatesFor returns the absolute repair indices compatible with
// destroyIdx: every repair index if Compat is nil, else those with
// Compat[destroyIdx][r] set.
func (d *Driver) repairCandidatesFor(destroyIdx int) []int {
	if d.Compat == nil {
		return indexRange(len(d.Repair))
	}
	row := d.Compat[destroyIdx]
	candidates := make([]int, 0, len(row))
	for r, ok := range row {
		if ok {
			candidates = append(candidates, r)
		}
	}
	return candidates
}

// metropolisAccept accepts a strictly-worse candidate with probability
// exp(-|objNew-objCurrent|/T): the Metropolis criterion from spec §4.3.
// Run only calls it once objNew is known to be strictly worse than
// objCurrent, so it is only ever asked to accept a loss; a candidate with
// an equal objective is rejected without consulting it.
func (d *Driver) metropolisAccept(toMax bool, objNew, objCurrent float64) bool {
	delta := math.Abs(objNew - objCurrent)
	p := math.Exp(-delta / d.temperature)
	return d.Rng.Float64() < p
}

func indexRange(n int) []int {
	r := make([]int, n)
	for i := range r {
		r[i] = i
	}
	return r
}

// GetNumberToDestroy returns a random integer in
// [max(minAbs, floor(minRatio*n)), min(maxAbs, floor(maxRatio*n))], or
// maxAbs+1 if that interval is empty. Problem-specific destroy operators
// use this to size their perturbation from the method's Param (typically
// plugged in as one of minAbs/maxAbs).
func GetNumberToDestroy(rng *rand.Rand, n, minAbs, maxAbs int, minRatio, maxRatio float64) int {
	lo := minAbs
	if r := int(math.Floor(minRatio * float64(n))); r > lo {
		lo = r
	}
	hi := maxAbs
	if r := int(math.Floor(maxRatio * float64(n))); r < hi {
		hi = r
	}
	if lo > hi {
		return maxAbs + 1
	}
	return lo + rng.Intn(hi-lo+1)
}
