// Copyright ©2026 The MHGo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package schedule

import (
	"bytes"
	"testing"
)

func TestShouldLogIterationForced(t *testing.T) {
	params := Parameters{}
	if !ShouldLogIteration(5, false, true, params) {
		t.Fatalf("forced=true did not force a log line")
	}
}

func TestShouldLogIterationNewIncumbent(t *testing.T) {
	params := Parameters{LNewInc: true}
	if !ShouldLogIteration(5, true, false, params) {
		t.Fatalf("newIncumbent=true with LNewInc=true did not log")
	}
	params.LNewInc = false
	if ShouldLogIteration(5, true, false, params) {
		t.Fatalf("newIncumbent=true with LNewInc=false logged anyway")
	}
}

func TestShouldLogIterationPeriodic(t *testing.T) {
	params := Parameters{LFreq: 5}
	for _, it := range []int{5, 10, 15} {
		if !ShouldLogIteration(it, false, false, params) {
			t.Errorf("iteration %d not logged with LFreq=5", it)
		}
	}
	for _, it := range []int{1, 4, 6} {
		if ShouldLogIteration(it, false, false, params) {
			t.Errorf("iteration %d logged with LFreq=5, want not logged", it)
		}
	}
}

func TestIsLogarithmicIteration(t *testing.T) {
	want := map[int]bool{
		1: true, 2: true, 5: true, 10: true, 20: true, 50: true, 100: true, 200: true,
		3: false, 4: false, 6: false, 11: false, 99: false, 0: false,
	}
	for it, want := range want {
		if got := isLogarithmicIteration(it); got != want {
			t.Errorf("isLogarithmicIteration(%d) = %v, want %v", it, got, want)
		}
	}
}

func TestFormatRatioNaN(t *testing.T) {
	nanVal := nan()
	if got := formatRatio(nanVal); got != "NaN" {
		t.Errorf("formatRatio(NaN) = %q, want %q", got, "NaN")
	}
	if got := formatRatio(0.5); got != "0.5" {
		t.Errorf("formatRatio(0.5) = %q, want %q", got, "0.5")
	}
}

func TestTextLoggerLogIterationWritesHeadingOnce(t *testing.T) {
	var buf bytes.Buffer
	l := &TextLogger{Writer: &buf, HeadingInterval: 100}
	l.LogIteration(IterationRecord{Iteration: 1, Method: "m"})
	l.LogIteration(IterationRecord{Iteration: 2, Method: "m"})
	out := buf.String()
	if got := bytesCount(out, "Iter"); got != 1 {
		t.Fatalf("heading line appeared %d times in two iterations under HeadingInterval, want 1", got)
	}
}

func bytesCount(s, substr string) int {
	count := 0
	for i := 0; i+len(substr) <= len(s); i++ {
		if s[i:i+len(substr)] == substr {
			count++
		}
	}
	return count
}
