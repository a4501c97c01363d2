// SPDX-License-Identifier: MIT

// Package euler converts robot poses between Euler-angle coordinates and
// homogeneous transforms.
//
// Conventions:
//
//	A Coordinate is a Pose6 {x, y, z, a, b, c} plus a Type. Translation
//	comes first; the three angles (degrees) follow in the order of the
//	type name and compose intrinsically:
//
//	    ZYZ:  R = Rz(a)·Ry(b)·Rz(c)
//	    ZYX:  R = Rz(a)·Ry(b)·Rx(c)
//	    XYZ:  R = Rx(a)·Ry(b)·Rz(c)
//
// Two solutions:
//
//	Every rotation away from gimbal lock has two angle triples. The
//	primary branch (the default) keeps the middle angle in [0°, 180°] for
//	ZYZ and in [-90°, 90°] for ZYX/XYZ. WithFlip(true) returns the other
//	one: first and third angles +180°, middle angle reflected (ZYZ: -b,
//	ZYX/XYZ: 180°-b). All extracted angles lie in (-180°, 180°].
//
// Gimbal lock:
//
//	ZYZ locks when |sin b| < eps (b ≈ 0° or 180°), ZYX/XYZ when
//	|cos b| < eps (b ≈ ±90°). eps defaults to vec3.Epsilon. Only the
//	sum or difference of a and c is then defined; the policy is c = 0,
//	the whole coupled rotation goes into a, and b is snapped to its exact
//	value. WithFlip has no effect at the singularity.
//
// Composition:
//
//	Mul(a, b, ref) = FromMatrix(ToMatrix(a)·ToMatrix(b), ref): b is
//	expressed in a's frame. Inverse and Convert round-trip through the
//	matrix form, so the rigid transform is preserved exactly up to
//	floating precision and branch choice.
package euler
