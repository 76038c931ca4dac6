// Copyright ©2026 The MHGo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package schedule implements the sole gateway through which operators are
// applied to solutions: Scheduler times, counts, and logs every method
// application, maintains the incumbent, and evaluates the configurable
// termination conditions. Drivers (package gvns, lns) are built on top of
// it; they never mutate a solution directly.
package schedule
