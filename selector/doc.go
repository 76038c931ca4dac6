// Copyright ©2026 The MHGo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package selector implements the strategy abstraction an LNS driver
// consults to pick destroy/repair method indices: a uniform-random
// selector, a static-weight selector, and an adaptive (ALNS) selector that
// reweights operators from recent performance over fixed-length segments.
package selector
