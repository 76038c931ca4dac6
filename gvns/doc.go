// Copyright ©2026 The MHGo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package gvns implements the (General) Variable Neighborhood Search
// driver: a Variable Neighborhood Descent (VND) procedure over an
// ordered list of local-improvement methods, optionally wrapped in a
// shaking loop that escapes local optima by perturbing the current
// solution before re-running VND.
package gvns
