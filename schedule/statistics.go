// Copyright ©2026 The MHGo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package schedule

import "time"

// MethodStatistics holds the mutable per-method counters the Scheduler
// maintains across a run: applications, successes (strict improvements),
// accumulated objective gain, and the netto/brutto time split.
//
// NettoTime measures the operator call itself; BruttoTime additionally
// covers any downstream step charged to the same application via
// DelayedSuccessUpdate (e.g. the VND run following a GVNS shaking call).
// The invariant NettoTime <= BruttoTime and Applications >= Successes
// holds after every update.
type MethodStatistics struct {
	Applications int
	Successes    int
	ObjGain      float64
	NettoTime    time.Duration
	BruttoTime   time.Duration
}

// SuccessRate returns Successes/Applications, or NaN (surfaced as "NaN" in
// reports) if the method was never applied.
func (m MethodStatistics) SuccessRate() float64 {
	if m.Applications == 0 {
		return nan()
	}
	return float64(m.Successes) / float64(m.Applications)
}

// AvgGain returns ObjGain/Successes, or NaN if the method never succeeded.
func (m MethodStatistics) AvgGain() float64 {
	if m.Successes == 0 {
		return nan()
	}
	return m.ObjGain / float64(m.Successes)
}

func nan() float64 {
	var zero float64
	return zero / zero
}
