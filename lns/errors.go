// Copyright ©2026 The MHGo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lns

import (
	"errors"
	"fmt"
)

// ErrEmptyConstruction signifies a Driver was built with
// ConsiderInitialSol=false and no construction methods, so no solution
// could ever be produced to start the loop from.
var ErrEmptyConstruction = errors.New("lns: no construction methods and ConsiderInitialSol is false")

// ErrNoMethods signifies a Driver was built with no destroy methods or no
// repair methods.
var ErrNoMethods = errors.New("lns: destroy and repair method lists must both be non-empty")

// ErrCompatibilityShape signifies the compatibility matrix's dimensions
// don't match the destroy/repair method counts.
type ErrCompatibilityShape struct {
	GotRows, WantRows, GotCols, WantCols int
}

func (e ErrCompatibilityShape) Error() string {
	return fmt.Sprintf("lns: compatibility matrix is %dx%d, want %dx%d", e.GotRows, e.GotCols, e.WantRows, e.WantCols)
}

// ErrAllFalseRow signifies a destroy method has no compatible repair at
// all, which would strand the loop with no repair candidates once that
// destroy is selected.
type ErrAllFalseRow struct {
	DestroyIdx int
}

func (e ErrAllFalseRow) Error() string {
	return fmt.Sprintf("lns: destroy method %d is compatible with no repair method", e.DestroyIdx)
}
