// Copyright ©2026 The MHGo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package mh defines the core contracts shared by every driver in the
// module: the Solution a metaheuristic operates on, the MHMethod it
// applies, and the Result each application reports back.
//
// Concrete solution encodings live in package solution. The scheduling
// engine and its drivers (package schedule, gvns, lns, selector) depend
// only on the interfaces defined here, never on a concrete encoding.
package mh
