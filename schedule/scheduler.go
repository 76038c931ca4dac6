// Copyright ©2026 The MHGo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package schedule

import (
	"fmt"
	"time"

	"gonum.org/v1/gonum/floats"

	"github.com/ac-tuwien/mhgo/mh"
)

// Scheduler is the sole gateway through which operators are applied to
// solutions. It times, counts, and logs every application while
// maintaining the incumbent and evaluating termination.
type Scheduler struct {
	// Methods is the full table of methods this Scheduler knows about.
	Methods []mh.MHMethod
	Params  Parameters
	Logger  Logger

	// Clock is consulted for all timing; defaults to time.Now. Tests can
	// replace it with a fake clock to make ttime/tctime deterministic.
	Clock func() time.Time

	stats map[string]*MethodStatistics
	order []string

	incumbent      mh.Solution
	incumbentValid bool
	incumbentIter  int
	incumbentTime  time.Duration

	iteration int
	startTime time.Time
	runTime   time.Duration
}

// New builds a Scheduler over methods with the given parameters and
// logger (logger may be nil to disable logging). Returns ErrEmptyMethods
// if methods is empty and ErrDuplicateMethodName if two methods share a
// name.
func New(methods []mh.MHMethod, params Parameters, logger Logger) (*Scheduler, error) {
	if len(methods) == 0 {
		return nil, ErrEmptyMethods
	}
	s := &Scheduler{
		Methods: methods,
		Params:  params,
		Logger:  logger,
		Clock:   time.Now,
		stats:   make(map[string]*MethodStatistics, len(methods)),
		order:   make([]string, 0, len(methods)),
	}
	for _, m := range methods {
		if _, dup := s.stats[m.Name]; dup {
			return nil, ErrDuplicateMethodName{Name: m.Name}
		}
		s.stats[m.Name] = &MethodStatistics{}
		s.order = append(s.order, m.Name)
	}
	return s, nil
}

// Init starts the run clock and, if initialValid, installs sol as the
// first incumbent at iteration 0.
func (s *Scheduler) Init(sol mh.Solution, initialValid bool) {
	s.startTime = s.Clock()
	s.iteration = 0
	if initialValid {
		s.incumbent = sol.Copy()
		s.incumbentValid = true
		s.incumbentIter = 0
		s.incumbentTime = 0
	}
}

// Incumbent returns the best solution seen so far, or nil if none has
// been installed yet.
func (s *Scheduler) Incumbent() mh.Solution { return s.incumbent }

// IncumbentValid reports whether an incumbent has been installed.
func (s *Scheduler) IncumbentValid() bool { return s.incumbentValid }

// IncumbentIteration is the iteration at which the current incumbent was
// found.
func (s *Scheduler) IncumbentIteration() int { return s.incumbentIter }

// IncumbentTime is the elapsed run time at which the current incumbent
// was found.
func (s *Scheduler) IncumbentTime() time.Duration { return s.incumbentTime }

// Iteration is the current iteration counter.
func (s *Scheduler) Iteration() int { return s.iteration }

// RunTime is the elapsed run time, frozen at the value observed when the
// run terminated once a termination condition has fired.
func (s *Scheduler) RunTime() time.Duration { return s.runTime }

// MethodStats returns a copy of the statistics recorded for the named
// method, or ErrUnknownMethod if no such method was registered.
func (s *Scheduler) MethodStats(name string) (MethodStatistics, error) {
	st, ok := s.stats[name]
	if !ok {
		return MethodStatistics{}, ErrUnknownMethod{Name: name}
	}
	return *st, nil
}

// Terminated reports whether any configured termination condition holds
// given the Scheduler's current state. Drivers check this both before
// entering a method-application loop (so TIter=0 stops before any method
// ever runs) and PerformMethod checks it again after every application.
func (s *Scheduler) Terminated() bool {
	if s.Params.TIter >= 0 && s.iteration >= s.Params.TIter {
		return true
	}
	if s.Params.TCIter >= 0 && s.iteration-s.incumbentIter >= s.Params.TCIter {
		return true
	}
	elapsed := s.Clock().Sub(s.startTime)
	if s.Params.TTime >= 0 && elapsed >= s.Params.TTime {
		return true
	}
	if s.Params.TCTime >= 0 && elapsed-s.incumbentTime >= s.Params.TCTime {
		return true
	}
	if s.Params.TObjEnabled && s.incumbentValid {
		obj := s.incumbent.Objective()
		if !mh.IsWorseObj(s.incumbent.ToMaximize(), obj, s.Params.TObj) {
			return true
		}
	}
	return false
}

// updateIncumbent copies sol into the incumbent if it is the first
// solution seen or strictly improves on the current incumbent. Returns
// whether the incumbent changed.
func (s *Scheduler) updateIncumbent(sol mh.Solution) bool {
	if !s.incumbentValid || mh.IsBetterObj(sol.ToMaximize(), sol.Objective(), s.incumbent.Objective()) {
		if s.incumbent == nil {
			s.incumbent = sol.Copy()
		} else {
			s.incumbent.CopyFrom(sol)
		}
		s.incumbentValid = true
		s.incumbentIter = s.iteration
		s.incumbentTime = s.Clock().Sub(s.startTime)
		return true
	}
	return false
}

// PerformMethod applies method to sol, recording statistics, updating the
// incumbent, evaluating termination, and logging the iteration per the
// configured filtering policy. When delayedSuccess is true, the success/
// brutto-time accounting is deferred to a later DelayedSuccessUpdate call
// (used by GVNS when a shaking method's success is only known once VND has
// run on its result).
func (s *Scheduler) PerformMethod(method mh.MHMethod, sol mh.Solution, delayedSuccess bool) mh.Result {
	stat := s.mustStats(method.Name)

	objOld := sol.Objective()
	start := s.Clock()
	var result mh.Result
	method.Func(sol, method.Param, &result)
	elapsed := s.Clock().Sub(start)
	objNew := sol.Objective()

	stat.Applications++
	stat.NettoTime += elapsed
	if !delayedSuccess {
		stat.BruttoTime += elapsed
		if mh.IsBetterObj(sol.ToMaximize(), objNew, objOld) {
			stat.Successes++
			stat.ObjGain += objNew - objOld
		}
	}

	s.iteration++
	newIncumbent := s.updateIncumbent(sol)

	if s.Params.CheckIt {
		if err := sol.Check(); err != nil {
			panic(fmt.Sprintf("schedule: invariant violation after %s: %v", method.Name, err))
		}
	}

	if s.Terminated() {
		result.Terminate = true
		s.runTime = s.Clock().Sub(s.startTime)
	}

	s.logIteration(method.Name, objOld, objNew, elapsed, newIncumbent, result.LogInfo, false)

	return result
}

// DelayedSuccessUpdate completes the brutto-time and success accounting
// for a method previously applied with delayedSuccess=true, once the
// downstream step's outcome (and elapsed time) is known. tStart is the
// time taken just before PerformMethod was called for the deferred method,
// so the brutto time added here covers the operator itself plus the
// downstream step.
func (s *Scheduler) DelayedSuccessUpdate(method mh.MHMethod, objOld float64, tStart time.Time, sol mh.Solution) {
	stat := s.mustStats(method.Name)
	stat.BruttoTime += s.Clock().Sub(tStart)
	objNew := sol.Objective()
	if mh.IsBetterObj(sol.ToMaximize(), objNew, objOld) {
		stat.Successes++
		stat.ObjGain += objNew - objOld
	}
}

// PerformMethodPair times destroy and repair individually but counts the
// pair as a single iteration, as required by the LNS driver. If either
// operator signals terminate, the pair is still counted and an update to
// the incumbent is still applied from whatever state sol is left in.
func (s *Scheduler) PerformMethodPair(destroy, repair mh.MHMethod, sol mh.Solution) mh.Result {
	dStat := s.mustStats(destroy.Name)
	rStat := s.mustStats(repair.Name)

	objOld := sol.Objective()

	dStart := s.Clock()
	var dResult mh.Result
	destroy.Func(sol, destroy.Param, &dResult)
	dElapsed := s.Clock().Sub(dStart)
	dStat.Applications++
	dStat.NettoTime += dElapsed
	dStat.BruttoTime += dElapsed

	rStart := s.Clock()
	var rResult mh.Result
	repair.Func(sol, repair.Param, &rResult)
	rElapsed := s.Clock().Sub(rStart)
	rStat.Applications++
	rStat.NettoTime += rElapsed
	rStat.BruttoTime += rElapsed

	objNew := sol.Objective()
	if mh.IsBetterObj(sol.ToMaximize(), objNew, objOld) {
		dStat.Successes++
		dStat.ObjGain += objNew - objOld
		rStat.Successes++
		rStat.ObjGain += objNew - objOld
	}

	s.iteration++
	newIncumbent := s.updateIncumbent(sol)

	if s.Params.CheckIt {
		if err := sol.Check(); err != nil {
			panic(fmt.Sprintf("schedule: invariant violation after %s/%s: %v", destroy.Name, repair.Name, err))
		}
	}

	result := mh.Result{Changed: dResult.Changed || rResult.Changed, LogInfo: rResult.LogInfo}
	if dResult.Terminate || rResult.Terminate {
		result.Terminate = true
	}
	if s.Terminated() {
		result.Terminate = true
		s.runTime = s.Clock().Sub(s.startTime)
	}

	s.logIteration(destroy.Name+"+"+repair.Name, objOld, objNew, dElapsed+rElapsed, newIncumbent, result.LogInfo, false)

	return result
}

// PerformSequentially applies each method in methods once, in order,
// updating the incumbent after each and stopping (without running the
// remaining methods) as soon as Terminated or a method signals terminate.
func (s *Scheduler) PerformSequentially(sol mh.Solution, methods []mh.MHMethod) bool {
	for _, m := range methods {
		if s.Terminated() {
			return true
		}
		res := s.PerformMethod(m, sol, false)
		if res.Terminate {
			return true
		}
	}
	return false
}

// NextMethod returns a pull-style iterator over methods: each call to the
// returned function yields the next method and true, or a zero MHMethod
// and false once the sequence is exhausted. If randomize is set, the
// sequence (or each repeated pass, if repeat is set) is shuffled
// independently. If repeat is set, the sequence never exhausts on its own;
// callers must stop pulling based on their own loop condition (typically
// Scheduler.Terminated or a full non-improving pass).
func (s *Scheduler) NextMethod(rng rng, methods []mh.MHMethod, randomize, repeat bool) func() (mh.MHMethod, bool) {
	order := make([]int, len(methods))
	for i := range order {
		order[i] = i
	}
	shuffle := func() {
		if randomize {
			rng.Shuffle(len(order), func(i, j int) { order[i], order[j] = order[j], order[i] })
		}
	}
	shuffle()
	pos := 0
	return func() (mh.MHMethod, bool) {
		if len(methods) == 0 {
			return mh.MHMethod{}, false
		}
		if pos >= len(order) {
			if !repeat {
				return mh.MHMethod{}, false
			}
			pos = 0
			shuffle()
		}
		m := methods[order[pos]]
		pos++
		return m, true
	}
}

// rng is the minimal randomness surface NextMethod needs, satisfied by
// *math/rand.Rand.
type rng interface {
	Shuffle(n int, swap func(i, j int))
}

func (s *Scheduler) mustStats(name string) *MethodStatistics {
	st, ok := s.stats[name]
	if !ok {
		panic(fmt.Sprintf("schedule: method %q was not registered with this Scheduler", name))
	}
	return st
}

// logIteration applies the iteration-log filtering policy from spec §4.1
// and emits a line via Logger if selected.
func (s *Scheduler) logIteration(method string, objOld, objNew float64, elapsed time.Duration, newIncumbent bool, info string, forced bool) {
	if s.Logger == nil {
		return
	}
	if !ShouldLogIteration(s.iteration, newIncumbent, forced, s.Params) {
		return
	}
	incObj := objNew
	if s.incumbentValid {
		incObj = s.incumbent.Objective()
	}
	s.Logger.LogIteration(IterationRecord{
		Iteration:    s.iteration,
		IncumbentObj: incObj,
		ObjOld:       objOld,
		ObjNew:       objNew,
		Elapsed:      s.Clock().Sub(s.startTime),
		Method:       method,
		Info:         info,
	})
}

// Summary builds the method-statistics report rows and the main-results
// block, in Methods order, for the two LogSummary streams.
func (s *Scheduler) Summary() ([]MethodStatsRow, MainResults) {
	var totalSuccesses int
	var totalNetto, totalBrutto time.Duration
	for _, name := range s.order {
		st := s.stats[name]
		totalSuccesses += st.Successes
		totalNetto += st.NettoTime
		totalBrutto += st.BruttoTime
	}
	totalRun := s.runTime
	if totalRun == 0 {
		totalRun = s.Clock().Sub(s.startTime)
	}

	rows := make([]MethodStatsRow, 0, len(s.order))
	for _, name := range s.order {
		st := s.stats[name]
		row := MethodStatsRow{
			Name:         name,
			Applications: st.Applications,
			Successes:    st.Successes,
			SuccessRate:  st.SuccessRate(),
			TotalGain:    st.ObjGain,
			AvgGain:      st.AvgGain(),
			NettoTime:    st.NettoTime,
			BruttoTime:   st.BruttoTime,
		}
		if totalSuccesses > 0 {
			row.ShareOfSuccesses = float64(st.Successes) / float64(totalSuccesses)
		} else {
			row.ShareOfSuccesses = nan()
		}
		if totalRun > 0 {
			row.NettoPct = float64(st.NettoTime) / float64(totalRun) * 100
			row.BruttoPct = float64(st.BruttoTime) / float64(totalRun) * 100
		}
		rows = append(rows, row)
	}

	gains := make([]float64, len(s.order))
	for i, name := range s.order {
		gains[i] = s.stats[name].ObjGain
	}
	main := MainResults{
		BestIteration:   s.incumbentIter,
		TotalIterations: s.iteration,
		BestTime:        s.incumbentTime,
		TotalTime:       totalRun,
		TotalObjGain:    floats.Sum(gains),
	}
	if len(gains) > 0 {
		main.BestMethodGain = floats.Max(gains)
	}
	if s.incumbentValid {
		main.BestObj = s.incumbent.Objective()
	}
	return rows, main
}
