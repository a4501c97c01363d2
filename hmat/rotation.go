// SPDX-License-Identifier: MIT

package hmat

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/katalvlaran/lvpose/vec3"
)

// RotX returns a pure rotation of deg degrees about the X axis.
func RotX(deg float64) MatrixH3D {
	s, c := math.Sincos(mgl64.DegToRad(deg))
	m := Identity()
	m[1][1], m[1][2] = c, -s
	m[2][1], m[2][2] = s, c

	return m
}

// RotY returns a pure rotation of deg degrees about the Y axis.
func RotY(deg float64) MatrixH3D {
	s, c := math.Sincos(mgl64.DegToRad(deg))
	m := Identity()
	m[0][0], m[0][2] = c, s
	m[2][0], m[2][2] = -s, c

	return m
}

// RotZ returns a pure rotation of deg degrees about the Z axis.
func RotZ(deg float64) MatrixH3D {
	s, c := math.Sincos(mgl64.DegToRad(deg))
	m := Identity()
	m[0][0], m[0][1] = c, -s
	m[1][0], m[1][1] = s, c

	return m
}

// Translation returns a pure translation by t.
func Translation(t vec3.Vector3) MatrixH3D {
	return Identity().WithColumn(3, t)
}

// FromAxes assembles a transform whose rotation columns are x, y, z and
// whose translation is t. The axes are taken as given.
func FromAxes(x, y, z, t vec3.Vector3) MatrixH3D {
	m := Identity()
	m = m.WithColumn(0, x)
	m = m.WithColumn(1, y)
	m = m.WithColumn(2, z)

	return m.WithColumn(3, t)
}

// FromRotationTranslation builds a transform from a row-major 3×3
// rotation block and a translation.
func FromRotationTranslation(r [3][3]float64, t vec3.Vector3) MatrixH3D {
	return MatrixH3D{
		{r[0][0], r[0][1], r[0][2], t[0]},
		{r[1][0], r[1][1], r[1][2], t[1]},
		{r[2][0], r[2][1], r[2][2], t[2]},
		lastRow,
	}
}
