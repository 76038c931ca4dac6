// Copyright ©2026 The MHGo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package schedule

import "errors"

// ErrEmptyMethods signifies a Scheduler was constructed with no methods at
// all, which makes NextMethod's lazy sequence immediately exhausted.
var ErrEmptyMethods = errors.New("schedule: method list is empty")

// ErrDuplicateMethodName signifies two methods in the same Scheduler share
// a Name, violating the MHMethod contract (name unique within a driver).
type ErrDuplicateMethodName struct {
	Name string
}

func (e ErrDuplicateMethodName) Error() string {
	return "schedule: duplicate method name " + e.Name
}

// ErrUnknownMethod signifies a caller referenced a method name the
// Scheduler has no statistics entry for.
type ErrUnknownMethod struct {
	Name string
}

func (e ErrUnknownMethod) Error() string {
	return "schedule: unknown method " + e.Name
}
