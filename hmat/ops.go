// SPDX-License-Identifier: MIT

package hmat

import (
	"fmt"
	"math"

	"github.com/katalvlaran/lvpose/vec3"
	"gonum.org/v1/gonum/floats/scalar"
)

// Mul returns the product a·b.
//
// Implementation:
//   - Stage 1: rows 0–2 are computed with the fixed bottom row of b in
//     mind: r[i][j] = Σk<3 a[i][k]·b[k][j] (+ a[i][3] for j == 3).
//   - Stage 2: row 3 is written literally as [0,0,0,1].
//
// Behavior highlights:
//   - b's row 3 is never read, so an operand with a drifted bottom row
//     cannot leak rounding into the result.
//
// Complexity: O(1), 36 multiply-adds.
func Mul(a, b MatrixH3D) MatrixH3D {
	var r MatrixH3D
	for i := 0; i < 3; i++ {
		for j := 0; j < 4; j++ {
			r[i][j] = a[i][0]*b[0][j] + a[i][1]*b[1][j] + a[i][2]*b[2][j]
		}
		r[i][3] += a[i][3]
	}
	r[3] = lastRow

	return r
}

// Inverse returns the rigid-transform inverse [Rᵗ | -Rᵗt].
//
// Precondition: the rotation block of m is (approximately) orthonormal.
// For any other input the result is meaningless; repair it with
// MakeValid or use InverseChecked.
//
// Complexity: O(1).
func Inverse(m MatrixH3D) MatrixH3D {
	var r MatrixH3D
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			r[i][j] = m[j][i]
		}
	}
	for i := 0; i < 3; i++ {
		r[i][3] = -(r[i][0]*m[0][3] + r[i][1]*m[1][3] + r[i][2]*m[2][3])
	}
	r[3] = lastRow

	return r
}

// InverseChecked validates m with ValidateRigid(m, tol) and then returns
// Inverse(m).
//
// Errors: ErrNaNInf, ErrBadLastRow or ErrNotRigid (wrapped).
func InverseChecked(m MatrixH3D, tol float64) (MatrixH3D, error) {
	if err := ValidateRigid(m, tol); err != nil {
		return MatrixH3D{}, fmt.Errorf("InverseChecked: %w", err)
	}

	return Inverse(m), nil
}

// Transpose3 returns m with its rotation block transposed and its
// translation column cleared.
func Transpose3(m MatrixH3D) MatrixH3D {
	r := Identity()
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			r[i][j] = m[j][i]
		}
	}

	return r
}

// Det3 returns the determinant of the rotation block.
func Det3(m MatrixH3D) float64 {
	return vec3.Dot(m.Column(0), vec3.Cross(m.Column(1), m.Column(2)))
}

// TransformPoint applies m to the point p (rotation then translation).
func TransformPoint(m MatrixH3D, p vec3.Vector3) vec3.Vector3 {
	return vec3.Add(TransformVector(m, p), m.TranslationOf())
}

// TransformVector applies only the rotation block of m to v.
func TransformVector(m MatrixH3D, v vec3.Vector3) vec3.Vector3 {
	return vec3.Vector3{
		m[0][0]*v[0] + m[0][1]*v[1] + m[0][2]*v[2],
		m[1][0]*v[0] + m[1][1]*v[1] + m[1][2]*v[2],
		m[2][0]*v[0] + m[2][1]*v[1] + m[2][2]*v[2],
	}
}

// ApproxEqual reports whether all 16 entries of a and b differ by at most tol.
func ApproxEqual(a, b MatrixH3D, tol float64) bool {
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			if !scalar.EqualWithinAbs(a[i][j], b[i][j], tol) {
				return false
			}
		}
	}

	return true
}

// IsFinite reports whether m has no NaN or ±Inf entry.
func IsFinite(m MatrixH3D) bool {
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			if math.IsNaN(m[i][j]) || math.IsInf(m[i][j], 0) {
				return false
			}
		}
	}

	return true
}
