// Copyright ©2026 The MHGo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package lns implements the Large Neighborhood Search driver: a
// destroy+repair loop with a Metropolis acceptance rule and geometric
// cooling, built atop package schedule and consulting a package selector
// Selector to choose the destroy and repair method at every iteration.
package lns
