// Copyright ©2026 The MHGo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package schedule

import "testing"

func TestMethodStatisticsRatesNaNWhenUnused(t *testing.T) {
	var m MethodStatistics
	if sr := m.SuccessRate(); sr == sr {
		t.Fatalf("SuccessRate() = %v, want NaN for an unapplied method", sr)
	}
	if ag := m.AvgGain(); ag == ag {
		t.Fatalf("AvgGain() = %v, want NaN for a method with no successes", ag)
	}
}

func TestMethodStatisticsRates(t *testing.T) {
	m := MethodStatistics{Applications: 4, Successes: 2, ObjGain: 10}
	if got := m.SuccessRate(); got != 0.5 {
		t.Fatalf("SuccessRate() = %v, want 0.5", got)
	}
	if got := m.AvgGain(); got != 5 {
		t.Fatalf("AvgGain() = %v, want 5", got)
	}
}
