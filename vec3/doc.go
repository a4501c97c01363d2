// SPDX-License-Identifier: MIT

// Package vec3 provides the 3-vector algebra underneath every pose
// operation in lvpose.
//
// What is in here?
//
//	Vector3 is a fixed-size [3]float64 value (x, y, z). All functions are
//	pure, allocate nothing and are safe to call from any goroutine.
//
//	  • Products:   Cross (right-handed), Dot
//	  • Lengths:    MagnitudeSQ, Magnitude, Distance
//	  • Direction:  Unit, UnitChecked, AngleDeg
//	  • Tests:      IsZero, ApproxEqual
//	  • Interop:    FromR3 / R3 for github.com/golang/geo/r3
//
// Numeric policy:
//
//	Epsilon (1e-9) is the one tolerance used for every degenerate-case
//	check in lvpose: zero vectors here, coincident/collinear points in
//	frame, the default gimbal-lock threshold in euler and the fallback
//	decisions of hmat.MakeValid.
//
// Degenerate inputs:
//
//	Unit of a zero vector returns the zero vector unchanged; it never
//	divides by zero. UnitChecked and AngleDeg report ErrZeroVector instead.
//
// Usage:
//
//	x := vec3.Vector3{1, 0, 0}
//	y := vec3.Vector3{0, 1, 0}
//	z := vec3.Cross(x, y)           // {0, 0, 1}
//	deg, err := vec3.AngleDeg(x, y) // 90, nil
package vec3
