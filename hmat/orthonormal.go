// SPDX-License-Identifier: MIT

package hmat

import (
	"fmt"

	"github.com/katalvlaran/lvpose/vec3"
)

// MakeValid repairs a drifted rotation block into an exactly orthonormal,
// right-handed one.
//
// Implementation (axis priority is fixed):
//   - Stage 1: X is authoritative: x = unit(col0).
//   - Stage 2: the old Z column is the hint: y = unit(zHint × x),
//     z = x × y. Z ends up in the plane of x and zHint, on zHint's side.
//   - Stage 3: if zHint is zero or parallel to x, the old Y column is the
//     hint instead: z = unit(x × yHint), y = z × x.
//   - Stage 4: translation is copied, row 3 is written as [0,0,0,1].
//
// Behavior highlights:
//   - Deterministic and idempotent: an orthonormal input comes back
//     unchanged up to round-off, so MakeValid(MakeValid(m)) == MakeValid(m).
//   - A mirrored (left-handed) block keeps X and the Z hint direction;
//     Y is the axis that flips.
//
// Errors:
//   - ErrNaNInf if any entry is NaN or ±Inf (ValidateFinite).
//   - ErrDegenerate if col0 is zero (vec3.IsZero) or both hints are
//     zero/parallel to X.
//
// Complexity: O(1).
func MakeValid(m MatrixH3D) (MatrixH3D, error) {
	if err := ValidateFinite(m); err != nil {
		return MatrixH3D{}, fmt.Errorf("MakeValid: %w", err)
	}

	x := m.Column(0)
	if vec3.IsZero(x) {
		return MatrixH3D{}, fmt.Errorf("MakeValid: X axis: %w", ErrDegenerate)
	}
	x = vec3.Unit(x)

	var y, z vec3.Vector3
	if yRaw := vec3.Cross(m.Column(2), x); !vec3.IsZero(yRaw) {
		y = vec3.Unit(yRaw)
		z = vec3.Cross(x, y)
	} else if zRaw := vec3.Cross(x, m.Column(1)); !vec3.IsZero(zRaw) {
		z = vec3.Unit(zRaw)
		y = vec3.Cross(z, x)
	} else {
		return MatrixH3D{}, fmt.Errorf("MakeValid: Y/Z hints: %w", ErrDegenerate)
	}

	return FromAxes(x, y, z, m.TranslationOf()), nil
}
