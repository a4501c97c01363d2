// SPDX-License-Identifier: MIT

// Package hmat: sentinel error set.
// All functions return these sentinels directly or wrapped once with
// fmt.Errorf("Op: %w", ErrX); callers match with errors.Is.
package hmat

import "errors"

var (
	// ErrNaNInf signals a NaN or ±Inf entry.
	ErrNaNInf = errors.New("hmat: NaN or Inf encountered")

	// ErrBadLastRow signals that row 3 is not exactly [0,0,0,1].
	ErrBadLastRow = errors.New("hmat: last row is not [0 0 0 1]")

	// ErrNotRigid signals that the rotation block is not orthonormal with
	// determinant +1 within the requested tolerance.
	ErrNotRigid = errors.New("hmat: rotation block is not a proper rotation")

	// ErrDegenerate signals that MakeValid could not recover any axis
	// pair from the rotation block (zero X column, or both hints parallel to X).
	ErrDegenerate = errors.New("hmat: degenerate rotation block")

	// ErrZeroQuaternion signals a quaternion whose norm is below vec3.Epsilon.
	ErrZeroQuaternion = errors.New("hmat: zero quaternion")
)
