// Copyright ©2026 The MHGo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package selector

import "math/rand"

// Parameters groups the ALNS reweighting parameters into one immutable-
// after-construction record, following the same pattern as
// schedule.Parameters.
type Parameters struct {
	// SegmentSize is the number of iterations between weight updates.
	// Default 100.
	SegmentSize int
	// Gamma is the weight-update smoothing factor in [0,1]. Default
	// 0.025.
	Gamma float64
	// Sigma1, Sigma2, Sigma3 are the per-outcome scores added to an
	// applied method's running score: BetterThanIncumbent,
	// BetterThanCurrent, AcceptedAlthoughWorse respectively. Rejected
	// contributes 0. Defaults 10, 9, 3.
	Sigma1, Sigma2, Sigma3 float64
}

// DefaultParameters returns the ALNS defaults documented above.
func DefaultParameters() Parameters {
	return Parameters{SegmentSize: 100, Gamma: 0.025, Sigma1: 10, Sigma2: 9, Sigma3: 3}
}

// scoreData is the per-method bookkeeping ALNSSelector maintains between
// weight updates: current weight, accumulated score this segment, and how
// many times the method was applied this segment.
type scoreData struct {
	weight  float64
	score   float64
	applied int
}

// ALNSSelector adaptively reweights destroy and repair operators from
// their recent performance, recomputing weights at fixed-length segment
// boundaries.
type ALNSSelector struct {
	Params Parameters

	destroy []scoreData
	repair  []scoreData

	nextSegment int
}

// NewALNSSelector builds an ALNSSelector for nDestroy destroy methods and
// nRepair repair methods, all starting at weight 1.
func NewALNSSelector(params Parameters, nDestroy, nRepair int) *ALNSSelector {
	a := &ALNSSelector{Params: params}
	a.destroy = make([]scoreData, nDestroy)
	a.repair = make([]scoreData, nRepair)
	for i := range a.destroy {
		a.destroy[i].weight = 1
	}
	for i := range a.repair {
		a.repair[i].weight = 1
	}
	return a
}

// Init sets the first segment boundary relative to the iteration the LNS
// loop begins at.
func (a *ALNSSelector) Init(iteration int) {
	a.nextSegment = iteration + a.Params.SegmentSize
}

// Select samples an absolute index from candidates proportionally to the
// current weight of each candidate method.
func (a *ALNSSelector) Select(rng *rand.Rand, candidates []int, isDestroy bool) int {
	data := a.destroy
	if !isDestroy {
		data = a.repair
	}
	weights := make([]float64, len(data))
	for i, d := range data {
		weights[i] = d.weight
	}
	return sampleWeighted(rng, candidates, weights)
}

// Update records the outcome against the applied destroy and repair
// methods' running score and applied count, and performs the segment
// reweighting pass when iteration reaches the next segment boundary.
func (a *ALNSSelector) Update(iteration, destroyIdx, repairIdx int, outcome Case) {
	score := a.scoreFor(outcome)
	a.destroy[destroyIdx].applied++
	a.destroy[destroyIdx].score += score
	a.repair[repairIdx].applied++
	a.repair[repairIdx].score += score

	if iteration == a.nextSegment {
		reweight(a.destroy, a.Params.Gamma)
		reweight(a.repair, a.Params.Gamma)
		a.nextSegment += a.Params.SegmentSize
	}
}

func (a *ALNSSelector) scoreFor(outcome Case) float64 {
	switch outcome {
	case BetterThanIncumbent:
		return a.Params.Sigma1
	case BetterThanCurrent:
		return a.Params.Sigma2
	case AcceptedAlthoughWorse:
		return a.Params.Sigma3
	default:
		return 0
	}
}

// reweight applies weight ← weight·(1−γ) + γ·score/applied to every method
// with at least one application this segment, then resets score/applied.
func reweight(data []scoreData, gamma float64) {
	for i := range data {
		if data[i].applied > 0 {
			data[i].weight = data[i].weight*(1-gamma) + gamma*data[i].score/float64(data[i].applied)
		}
		data[i].score = 0
		data[i].applied = 0
	}
}

// Weights exposes the current destroy/repair weight vectors, primarily
// for tests asserting the segment-boundary reweighting law.
func (a *ALNSSelector) Weights() (destroy, repair []float64) {
	destroy = make([]float64, len(a.destroy))
	for i, d := range a.destroy {
		destroy[i] = d.weight
	}
	repair = make([]float64, len(a.repair))
	for i, d := range a.repair {
		repair[i] = d.weight
	}
	return destroy, repair
}
