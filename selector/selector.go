// Copyright ©2026 The MHGo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package selector

import (
	"math/rand"

	"gonum.org/v1/gonum/stat/distuv"
)

// Case classifies the outcome of one destroy+repair iteration, as
// reported by an LNS driver to Update after every PerformMethodPair call.
type Case int

const (
	// Rejected is the default: the candidate was not accepted.
	Rejected Case = iota
	// AcceptedAlthoughWorse: strictly worse than the current solution,
	// but accepted by the acceptance rule (e.g. Metropolis).
	AcceptedAlthoughWorse
	// BetterThanCurrent: strictly improves on the current solution, but
	// not on the best-seen incumbent.
	BetterThanCurrent
	// BetterThanIncumbent: strictly improves on the best-seen
	// incumbent.
	BetterThanIncumbent
)

// Selector is the method-selection strategy an LNS driver consults at
// every iteration: which destroy index to use, then (given that destroy's
// compatible repairs) which repair index to use.
//
// The LNS driver, not the Selector, owns the *rand.Rand and the iteration
// counter; both are passed explicitly to every call rather than handing a
// Selector implementation the whole driver, so this package never needs
// to import package lns (which in turn imports this package to consult a
// Selector) — an import cycle the source's lns<->selector two-way
// dependency doesn't have to avoid, but Go does.
type Selector interface {
	// Init is called once, before the LNS loop starts, with the
	// iteration count the loop begins at (normally 0).
	Init(iteration int)
	// Select returns one element of candidates: an absolute destroy
	// index when isDestroy is true, else an absolute repair index.
	// candidates holds the absolute indices eligible at this step (all
	// of them, or those compatible with the destroy already chosen).
	Select(rng *rand.Rand, candidates []int, isDestroy bool) int
	// Update is called after every destroy+repair iteration with the
	// absolute indices used and the resulting Case.
	Update(iteration, destroyIdx, repairIdx int, outcome Case)
}

// UniformRandomSelector samples candidates uniformly, ignoring outcomes.
type UniformRandomSelector struct{}

func (UniformRandomSelector) Init(int) {}

func (UniformRandomSelector) Select(rng *rand.Rand, candidates []int, isDestroy bool) int {
	return candidates[rng.Intn(len(candidates))]
}

func (UniformRandomSelector) Update(int, int, int, Case) {}

// WeightedRandomSelector samples destroy/repair indices proportionally to
// static weight vectors fixed at construction; outcomes never change the
// weights.
type WeightedRandomSelector struct {
	// WDestroy and WRepair are weight vectors indexed by absolute
	// destroy/repair method index.
	WDestroy []float64
	WRepair  []float64
}

func (WeightedRandomSelector) Init(int) {}

func (s WeightedRandomSelector) Select(rng *rand.Rand, candidates []int, isDestroy bool) int {
	weights := s.WDestroy
	if !isDestroy {
		weights = s.WRepair
	}
	return sampleWeighted(rng, candidates, weights)
}

func (WeightedRandomSelector) Update(int, int, int, Case) {}

// sampleWeighted draws an absolute index from candidates proportionally to
// weights[candidates[i]], via distuv.Categorical over the candidate
// subset's weights.
func sampleWeighted(rng *rand.Rand, candidates []int, weights []float64) int {
	if len(candidates) == 1 {
		return candidates[0]
	}
	subset := make([]float64, len(candidates))
	for i, c := range candidates {
		subset[i] = weights[c]
	}
	cat := distuv.NewCategorical(subset, rng)
	return candidates[int(cat.Rand())]
}
