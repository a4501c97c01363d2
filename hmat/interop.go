// SPDX-License-Identifier: MIT

package hmat

import (
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/katalvlaran/lvpose/vec3"
	"gonum.org/v1/gonum/num/quat"
)

// ToMgl converts m to a go-gl mgl64.Mat4 (column-major storage).
func ToMgl(m MatrixH3D) mgl64.Mat4 {
	var g mgl64.Mat4
	for r := 0; r < 4; r++ {
		for c := 0; c < 4; c++ {
			g[c*4+r] = m[r][c]
		}
	}

	return g
}

// FromMgl converts an mgl64.Mat4. Row 3 is forced to [0,0,0,1]; mgl64
// matrices with a projective bottom row are not rigid transforms.
func FromMgl(g mgl64.Mat4) MatrixH3D {
	var m MatrixH3D
	for r := 0; r < 3; r++ {
		for c := 0; c < 4; c++ {
			m[r][c] = g[c*4+r]
		}
	}
	m[3] = lastRow

	return m
}

// Quaternion returns the unit quaternion of the rotation block of m.
//
// Implementation: branch on the trace and the largest diagonal entry so
// the square root argument stays well away from zero, then normalise.
// The rotation block must be orthonormal (see MakeValid).
//
// Complexity: O(1).
func Quaternion(m MatrixH3D) quat.Number {
	var q quat.Number
	r := m.Rotation()
	if tr := r[0][0] + r[1][1] + r[2][2]; tr > 0 {
		s := 0.5 / math.Sqrt(tr+1)
		q = quat.Number{Real: 0.25 / s, Imag: (r[2][1] - r[1][2]) * s, Jmag: (r[0][2] - r[2][0]) * s, Kmag: (r[1][0] - r[0][1]) * s}
	} else if r[0][0] > r[1][1] && r[0][0] > r[2][2] {
		s := 2 * math.Sqrt(1+r[0][0]-r[1][1]-r[2][2])
		q = quat.Number{Real: (r[2][1] - r[1][2]) / s, Imag: 0.25 * s, Jmag: (r[0][1] + r[1][0]) / s, Kmag: (r[0][2] + r[2][0]) / s}
	} else if r[1][1] > r[2][2] {
		s := 2 * math.Sqrt(1+r[1][1]-r[0][0]-r[2][2])
		q = quat.Number{Real: (r[0][2] - r[2][0]) / s, Imag: (r[0][1] + r[1][0]) / s, Jmag: 0.25 * s, Kmag: (r[1][2] + r[2][1]) / s}
	} else {
		s := 2 * math.Sqrt(1+r[2][2]-r[0][0]-r[1][1])
		q = quat.Number{Real: (r[1][0] - r[0][1]) / s, Imag: (r[0][2] + r[2][0]) / s, Jmag: (r[1][2] + r[2][1]) / s, Kmag: 0.25 * s}
	}

	// normalise so callers always get a unit quaternion
	n := quat.Abs(q)

	return quat.Scale(1/n, q)
}

// FromQuaternion builds a transform from rotation q and translation t.
// q need not be unit length; it is normalised first.
//
// Errors: ErrZeroQuaternion if |q| < vec3.Epsilon.
func FromQuaternion(q quat.Number, t vec3.Vector3) (MatrixH3D, error) {
	n := quat.Abs(q)
	if n < vec3.Epsilon {
		return MatrixH3D{}, fmt.Errorf("FromQuaternion: %w", ErrZeroQuaternion)
	}
	q = quat.Scale(1/n, q)
	w, x, y, z := q.Real, q.Imag, q.Jmag, q.Kmag

	r := [3][3]float64{
		{1 - 2*(y*y+z*z), 2 * (x*y - z*w), 2 * (x*z + y*w)},
		{2 * (x*y + z*w), 1 - 2*(x*x+z*z), 2 * (y*z - x*w)},
		{2 * (x*z - y*w), 2 * (y*z + x*w), 1 - 2*(x*x+y*y)},
	}

	return FromRotationTranslation(r, t), nil
}
