// SPDX-License-Identifier: MIT

// Package: hmat
//
// Purpose:
//   - One canonical place for the checks a transform may need before use.
//   - Return sentinels wrapped with the validator tag so call sites can
//     wrap once more and callers still match with errors.Is.
//
// Determinism & Performance:
//   - All checks are pure and allocate nothing on success.
//
// Note:
//   - ValidateRigid runs the fixed sequence Finite → LastRow → orthonormal
//     columns → determinant sign.

package hmat

import (
	"fmt"
	"math"
)

// validatorErrorf wraps an underlying sentinel with the validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateFinite rejects matrices holding NaN or ±Inf.
// Complexity: O(1).
func ValidateFinite(m MatrixH3D) error {
	if !IsFinite(m) {
		return validatorErrorf("ValidateFinite", ErrNaNInf)
	}

	return nil
}

// ValidateLastRow requires row 3 to be exactly [0,0,0,1].
func ValidateLastRow(m MatrixH3D) error {
	if m[3] != lastRow {
		return validatorErrorf("ValidateLastRow", ErrBadLastRow)
	}

	return nil
}

// ValidateRigid checks that m is a proper rigid transform within tol:
// finite entries, exact last row, unit and mutually orthogonal rotation
// columns, and a positive determinant.
//
// Inputs:
//   - tol: absolute tolerance on |col|-1, col·col' and det-1.
//
// Errors: ErrNaNInf, ErrBadLastRow, ErrNotRigid (wrapped).
// Complexity: O(1).
func ValidateRigid(m MatrixH3D, tol float64) error {
	if err := ValidateFinite(m); err != nil {
		return validatorErrorf("ValidateRigid", err)
	}
	if err := ValidateLastRow(m); err != nil {
		return validatorErrorf("ValidateRigid", err)
	}

	x, y, z := m.Column(0), m.Column(1), m.Column(2)
	dots := [6]float64{
		x[0]*x[0] + x[1]*x[1] + x[2]*x[2] - 1,
		y[0]*y[0] + y[1]*y[1] + y[2]*y[2] - 1,
		z[0]*z[0] + z[1]*z[1] + z[2]*z[2] - 1,
		x[0]*y[0] + x[1]*y[1] + x[2]*y[2],
		y[0]*z[0] + y[1]*z[1] + y[2]*z[2],
		z[0]*x[0] + z[1]*x[1] + z[2]*x[2],
	}
	for _, d := range dots {
		if math.Abs(d) > tol {
			return validatorErrorf("ValidateRigid: orthonormality", ErrNotRigid)
		}
	}
	if math.Abs(Det3(m)-1) > tol {
		return validatorErrorf("ValidateRigid: determinant", ErrNotRigid)
	}

	return nil
}
