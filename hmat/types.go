// SPDX-License-Identifier: MIT

package hmat

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/lvpose/vec3"
)

// MatrixH3D is a row-major homogeneous transform. Rows 0–2 hold
// [rotation | translation]; row 3 is [0,0,0,1].
type MatrixH3D [4][4]float64

// lastRow is the fixed bottom row of every homogeneous transform.
var lastRow = [4]float64{0, 0, 0, 1}

// Identity returns the identity transform.
func Identity() MatrixH3D {
	return MatrixH3D{
		{1, 0, 0, 0},
		{0, 1, 0, 0},
		{0, 0, 1, 0},
		lastRow,
	}
}

// Column returns the first three entries of column c (0..3).
// Columns 0–2 are the frame axes, column 3 is the translation.
func (m MatrixH3D) Column(c int) vec3.Vector3 {
	return vec3.Vector3{m[0][c], m[1][c], m[2][c]}
}

// WithColumn returns a copy of m with rows 0–2 of column c replaced by v.
func (m MatrixH3D) WithColumn(c int, v vec3.Vector3) MatrixH3D {
	m[0][c], m[1][c], m[2][c] = v[0], v[1], v[2]

	return m
}

// TranslationOf returns the translation column.
func (m MatrixH3D) TranslationOf() vec3.Vector3 { return m.Column(3) }

// Rotation returns the 3×3 rotation block.
func (m MatrixH3D) Rotation() [3][3]float64 {
	return [3][3]float64{
		{m[0][0], m[0][1], m[0][2]},
		{m[1][0], m[1][1], m[1][2]},
		{m[2][0], m[2][1], m[2][2]},
	}
}

// String renders the matrix one row per line.
func (m MatrixH3D) String() string {
	var sb strings.Builder
	for r := 0; r < 4; r++ {
		if r > 0 {
			sb.WriteByte('\n')
		}
		fmt.Fprintf(&sb, "[%g %g %g %g]", m[r][0], m[r][1], m[r][2], m[r][3])
	}

	return sb.String()
}
