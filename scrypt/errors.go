// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scrypt

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidParameter is returned when N, r, p or the key length are out
	// of range. It is reported before any memory is allocated.
	ErrInvalidParameter = errors.New("scrypt: invalid parameter")

	// ErrIndexOutOfRange is returned when a segment outside [0, p) is
	// requested from a Buffer.
	ErrIndexOutOfRange = errors.New("scrypt: segment index out of range")

	// ErrMixingFailure is matched by every error produced by a failed mixing
	// unit.
	ErrMixingFailure = errors.New("scrypt: mixing failed")

	// ErrSchedulerFailure is returned when a unit could not be submitted to
	// the scheduler or the scheduler failed to run it.
	ErrSchedulerFailure = errors.New("scrypt: scheduler failure")
)

// UnitError reports the failure of the mixing unit assigned to one segment.
// It matches ErrMixingFailure and unwraps to the underlying cause.
type UnitError struct {
	Segment int
	Err     error
}

func (e *UnitError) Error() string {
	return fmt.Sprintf("scrypt: mixing segment %d: %v", e.Segment, e.Err)
}

func (e *UnitError) Unwrap() error { return e.Err }

func (e *UnitError) Is(target error) bool { return target == ErrMixingFailure }
