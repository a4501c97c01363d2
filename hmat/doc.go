// SPDX-License-Identifier: MIT

// Package hmat implements homogeneous 4×4 rigid-transform algebra for
// robot poses.
//
// 🚀 What is a MatrixH3D?
//
//	A row-major [4][4]float64:
//
//	    ┌ r00 r01 r02 │ tx ┐
//	    │ r10 r11 r12 │ ty │   rows 0–2 = [rotation | translation]
//	    │ r20 r21 r22 │ tz │
//	    └  0   0   0  │  1 ┘   row 3 is written as [0,0,0,1] by every operation
//
//	A valid pose has an orthonormal rotation block with determinant +1.
//
// ✨ Key features:
//   - Mul: product with the last row produced literally, not recomputed.
//   - Inverse: closed form [Rᵗ | -Rᵗt]; InverseChecked validates first.
//   - MakeValid: deterministic Gram–Schmidt repair of a drifted rotation
//     block (X authoritative, Z hint, Y hint fallback).
//   - RotX/RotY/RotZ (degrees), Translation, TransformPoint, Det3.
//   - Validators: ValidateFinite, ValidateLastRow, ValidateRigid.
//   - Interop: ToMgl/FromMgl (go-gl mgl64, column-major) and
//     Quaternion/FromQuaternion (gonum quat).
//
// Precondition of Inverse:
//
//	The rotation block must be (approximately) orthonormal. For matrices
//	coming from external data or from long chains of products, run
//	MakeValid first or call InverseChecked.
//
// All functions are pure, allocation-free and safe for concurrent use.
package hmat
