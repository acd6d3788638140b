// SPDX-License-Identifier: MIT
// Package stride: sentinel error set.
// This file defines ONLY package-level sentinel errors used across the stride
// package. Operations return these sentinels (optionally wrapped with call-site
// context) and tests check them via errors.Is.
//
// Element reads and writes never surface errors: Get/Set and friends degrade to
// a not-found result or a no-op. Errors are reserved for construction, index
// math, slicing and structural changes.

package stride

import (
	"errors"
	"fmt"
)

var (
	// ErrBadShape is returned when a dimension vector is empty, holds a size < 1,
	// or describes more elements than an int can address. ExtendAxis also returns
	// it for a negative amount.
	ErrBadShape = errors.New("stride: invalid shape")

	// ErrRankMismatch indicates a coordinate, pattern or direction whose length
	// differs from the array rank.
	ErrRankMismatch = errors.New("stride: rank mismatch")

	// ErrOutOfRange indicates a coordinate axis value outside [1, dim] or a flat
	// index outside [0, Len()-1].
	ErrOutOfRange = errors.New("stride: index out of range")

	// ErrAxisOutOfRange indicates an axis number outside [1, Rank()].
	// It signals a static programming error rather than a data condition.
	ErrAxisOutOfRange = errors.New("stride: no such axis")

	// ErrStrideMismatch indicates a record whose strides break the recurrence
	// stride[0]=1, stride[i]=stride[i-1]*dim[i-1].
	ErrStrideMismatch = errors.New("stride: strides do not match dimensions")

	// ErrLengthMismatch indicates a record whose data length differs from the
	// product of its dimensions.
	ErrLengthMismatch = errors.New("stride: data length does not match dimensions")

	// ErrBadOffset indicates a negative offset in a record.
	ErrBadOffset = errors.New("stride: offset must be >= 0")
)

// ---------- error context tags ----------

const (
	ctxNew       = "New"
	ctxToIndex   = "CoordinateToIndex"
	ctxToCoord   = "IndexToCoordinate"
	ctxSlice     = "Slice"
	ctxExtend    = "ExtendAxis"
	ctxValidate  = "Record.Validate"
	ctxNumbering = "NewNumbered"
)

// arrayErrorf attaches method context and the offending arguments to a sentinel.
// The sentinel is preserved via %w so errors.Is keeps matching.
func arrayErrorf(method string, args []int, err error) error {
	return fmt.Errorf("Array.%s(%v): %w", method, args, err)
}
