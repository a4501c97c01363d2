// SPDX-License-Identifier: MIT

// Package lvpose is rigid-pose math for robot task programming: the
// vectors, homogeneous transforms and Euler angles behind every taught
// point, user frame and tool offset.
//
// 🚀 What is in lvpose?
//
//	A small, pure-Go, allocation-free library that brings together:
//		• vec3    — cross/dot/magnitude/unit/angle on fixed [3]float64 vectors
//		• hmat    — 4×4 rigid transforms: product, closed-form inverse,
//		            orthonormal repair (MakeValid), validators, mgl64/quat interop
//		• euler   — ZYZ, ZYX and XYZ ⇄ matrix, with flip branch selection and
//		            a deterministic gimbal-lock policy; pose Mul/Inverse/Convert
//		• frame   — user frame from three taught points
//		• mathlib — the whole contract behind one concurrent-safe value
//
// ✨ Why lvpose?
//
//   - Interoperable – angle order, branch choice and degenerate cases are
//     fixed and documented, so poses round-trip with existing robot data.
//   - Total – degenerate inputs return sentinel errors, never NaN.
//   - Stateless – every function is pure; share freely across goroutines.
//
// Layout:
//
//	vec3/     — 3-vector algebra and the shared Epsilon
//	hmat/     — homogeneous matrices
//	euler/    — Euler conventions and pose composition
//	frame/    — three-point frame construction
//	mathlib/  — contract facade + Default() instance
//	examples/ — runnable walkthroughs
//
//	go get github.com/katalvlaran/lvpose
package lvpose
