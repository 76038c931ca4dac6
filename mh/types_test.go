// Copyright ©2026 The MHGo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mh

import "testing"

func TestIsBetterObj(t *testing.T) {
	cases := []struct {
		toMaximize bool
		v1, v2     float64
		want       bool
	}{
		{true, 5, 3, true},
		{true, 3, 5, false},
		{true, 3, 3, false},
		{false, 3, 5, true},
		{false, 5, 3, false},
		{false, 3, 3, false},
	}
	for _, c := range cases {
		if got := IsBetterObj(c.toMaximize, c.v1, c.v2); got != c.want {
			t.Errorf("IsBetterObj(%v, %v, %v) = %v, want %v", c.toMaximize, c.v1, c.v2, got, c.want)
		}
		// IsWorseObj is the dual with arguments swapped.
		if got := IsWorseObj(c.toMaximize, c.v2, c.v1); got != c.want {
			t.Errorf("IsWorseObj(%v, %v, %v) = %v, want %v", c.toMaximize, c.v2, c.v1, got, c.want)
		}
	}
}

func TestMHMethodApply(t *testing.T) {
	calls := 0
	m := MHMethod{
		Name: "noop",
		Func: func(sol Solution, param int, result *Result) {
			calls++
			result.Changed = param > 0
		},
		Param: 3,
	}
	res := m.Apply(nil)
	if calls != 1 {
		t.Fatalf("Func called %d times, want 1", calls)
	}
	if !res.Changed {
		t.Errorf("Result.Changed = false, want true")
	}
	if got := m.String(); got != "noop(3)" {
		t.Errorf("String() = %q, want %q", got, "noop(3)")
	}
}

func TestResultZeroValue(t *testing.T) {
	var r Result
	if r.Changed || r.Terminate || r.LocalOptimum || r.LogInfo != "" {
		t.Errorf("zero Result is not all-zero: %+v", r)
	}
}
