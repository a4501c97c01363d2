// SPDX-License-Identifier: MIT

package vec3

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats/scalar"
)

// Add returns a + b.
func Add(a, b Vector3) Vector3 { return Vector3{a[0] + b[0], a[1] + b[1], a[2] + b[2]} }

// Sub returns a - b.
func Sub(a, b Vector3) Vector3 { return Vector3{a[0] - b[0], a[1] - b[1], a[2] - b[2]} }

// Scale returns s·v.
func Scale(v Vector3, s float64) Vector3 { return Vector3{v[0] * s, v[1] * s, v[2] * s} }

// Neg returns -v.
func Neg(v Vector3) Vector3 { return Vector3{-v[0], -v[1], -v[2]} }

// Cross returns the right-handed cross product a × b.
//
// Complexity: O(1).
func Cross(a, b Vector3) Vector3 {
	return Vector3{
		a[1]*b[2] - a[2]*b[1],
		a[2]*b[0] - a[0]*b[2],
		a[0]*b[1] - a[1]*b[0],
	}
}

// Dot returns the inner product a · b.
func Dot(a, b Vector3) float64 {
	return a[0]*b[0] + a[1]*b[1] + a[2]*b[2]
}

// MagnitudeSQ returns the squared Euclidean length of v.
// Overflows to +Inf for components beyond about 1e154; Magnitude does not.
func MagnitudeSQ(v Vector3) float64 { return Dot(v, v) }

// Magnitude returns the Euclidean length of v. Hypot scales by the larger
// operand, so the result is finite for any finite v.
func Magnitude(v Vector3) float64 { return math.Hypot(math.Hypot(v[0], v[1]), v[2]) }

// IsFinite reports whether no component is NaN or ±Inf.
func IsFinite(v Vector3) bool {
	for _, x := range v {
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return false
		}
	}

	return true
}

// Distance returns |a - b|.
func Distance(a, b Vector3) float64 { return Magnitude(Sub(a, b)) }

// IsZero reports whether Magnitude(v) < Epsilon.
// It is the single zero test used for degenerate inputs across lvpose.
func IsZero(v Vector3) bool { return Magnitude(v) < Epsilon }

// Unit returns v / |v|.
//
// Behavior highlights:
//   - If IsZero(v) the zero vector is returned unchanged. For finite v the
//     result is never NaN or Inf. Use UnitChecked when a zero or
//     non-finite input is a failure.
//
// Complexity: O(1).
func Unit(v Vector3) Vector3 {
	m := Magnitude(v)
	if m < Epsilon {
		return Zero
	}

	return Vector3{v[0] / m, v[1] / m, v[2] / m}
}

// UnitChecked is Unit that reports ErrNonFinite or ErrZeroVector.
func UnitChecked(v Vector3) (Vector3, error) {
	if !IsFinite(v) {
		return Zero, fmt.Errorf("UnitChecked: %w", ErrNonFinite)
	}
	if IsZero(v) {
		return Zero, fmt.Errorf("UnitChecked: %w", ErrZeroVector)
	}

	return Unit(v), nil
}

// AngleDeg returns the angle between a and b in degrees, in [0, 180].
//
// Implementation:
//   - Stage 1: reject non-finite (ErrNonFinite) and zero (ErrZeroVector)
//     operands.
//   - Stage 2: cos = unit(a) · unit(b), clamped to [-1, 1] so round-off
//     never pushes acos out of its domain.
//   - Stage 3: acos, converted to degrees.
//
// Complexity: O(1).
func AngleDeg(a, b Vector3) (float64, error) {
	if !IsFinite(a) || !IsFinite(b) {
		return 0, fmt.Errorf("AngleDeg: %w", ErrNonFinite)
	}
	if IsZero(a) || IsZero(b) {
		return 0, fmt.Errorf("AngleDeg: %w", ErrZeroVector)
	}
	cos := Dot(Unit(a), Unit(b))
	cos = math.Max(-1, math.Min(1, cos))

	return math.Acos(cos) * 180 / math.Pi, nil
}

// ApproxEqual reports whether every component of a and b differs by at
// most tol.
func ApproxEqual(a, b Vector3, tol float64) bool {
	for i := range a {
		if !scalar.EqualWithinAbs(a[i], b[i], tol) {
			return false
		}
	}

	return true
}
