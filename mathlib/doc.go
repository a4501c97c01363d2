// SPDX-License-Identifier: MIT

// Package mathlib exposes the whole pose-math contract through one value.
//
// UI screens and services of the task-programming host do not import
// vec3/hmat/euler/frame individually; they obtain a *Library (usually
// Default(), the process-wide instance a service registry hands out) and
// call the operations by their contract names:
//
//	lib := mathlib.Default()
//	m, err := lib.CalculateMatrixUsingThreePoints(o, px, pxy)
//	pose := lib.MatrixToEulerZYZ(m, false)
//
// A Library holds only immutable extraction options, so one instance is
// safe for any number of concurrent callers.
package mathlib
