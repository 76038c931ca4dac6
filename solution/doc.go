// Copyright ©2026 The MHGo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package solution provides reusable candidate-solution encodings and the
// neighborhood operators that act on them: an ordered vector, a boolean
// vector with k-flip/k-random-flip search, a permutation with 2-opt and
// exchange moves, and a subset with a selected-prefix/extension-pool split
// and two-exchange-with-fill search.
//
// Every type here implements mh.Solution. Delta-evaluation hooks
// (FlipVariableFunc, TwoOptMoveDeltaEvalFunc, ElementAddedDeltaEvalFunc,
// ElementRemovedDeltaEvalFunc) are optional function fields a concrete
// problem sets to maintain an incremental objective; left nil, the
// corresponding operator falls back to invalidating the cache and paying
// for a full recompute on the next Objective() call.
package solution
