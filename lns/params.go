// Copyright ©2026 The MHGo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lns

// Parameters groups the LNS acceptance-rule configuration.
type Parameters struct {
	// InitTempFactor scales the initial Metropolis temperature:
	// T0 = |initial objective| * InitTempFactor + epsilon. Default 0.0,
	// meaning only strict improvements are ever accepted unless a
	// caller raises this.
	InitTempFactor float64
	// TempDecFactor is the geometric cooling rate applied after every
	// iteration: T <- T * TempDecFactor. Default 0.99. A value of 1
	// keeps the temperature constant.
	TempDecFactor float64
}

// DefaultParameters returns the LNS defaults documented above.
func DefaultParameters() Parameters {
	return Parameters{InitTempFactor: 0.0, TempDecFactor: 0.99}
}

// temperatureEpsilon guards against a zero or negative initial
// temperature (the numeric edge case called out in spec §7): with
// InitTempFactor=0 or an initial objective of 0, T0 would otherwise be
// exactly 0, making every strictly-worse candidate's acceptance
// probability exp(-delta/0) undefined.
const temperatureEpsilon = 1e-10
