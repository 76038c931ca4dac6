// Copyright ©2026 The MHGo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package schedule

import "time"

// Parameters groups a Scheduler's run configuration into one immutable-
// after-construction record, the way optimize.Settings groups a gonum
// optimize.Minimize call's configuration: built once per run and passed to
// the constructor, never stored in a package-global.
type Parameters struct {
	// TIter caps the iteration count: terminates once the iteration
	// counter reaches TIter. Negative disables it. Default 100. TIter=0
	// terminates before any method is ever applied.
	TIter int
	// TCIter caps iterations since the last incumbent improvement; <0
	// disables it. Default -1.
	TCIter int
	// TTime caps total wall-clock runtime; <0 disables it. Default -1.
	TTime time.Duration
	// TCTime caps wall-clock time since the last incumbent improvement;
	// <0 disables it. Default -1.
	TCTime time.Duration
	// TObj is a target incumbent objective (directional: reached when
	// the incumbent is at least as good). The check runs only when
	// TObjEnabled is true; the sign of TObj has no effect (a negative TObj
	// does not disable the check and a non-negative one does not enable
	// it). Default: disabled.
	TObj        float64
	TObjEnabled bool
	// LNewInc logs an iteration line on every new incumbent. Default
	// true.
	LNewInc bool
	// LFreq controls the periodic iteration log: 0 disables it, a
	// positive value logs every LFreq-th iteration, a negative value
	// logs at 1, 2, 5, 10, 20, 50, 100, ... (logarithmic). Default 0.
	LFreq int
	// CheckIt invokes Solution.Check() after every operator application,
	// for debugging. Default false.
	CheckIt bool
}

// DefaultParameters returns the Scheduler defaults documented above.
func DefaultParameters() Parameters {
	return Parameters{
		TIter:   100,
		TCIter:  -1,
		TTime:   -1,
		TCTime:  -1,
		LNewInc: true,
		LFreq:   0,
		CheckIt: false,
	}
}
