// SPDX-License-Identifier: MIT

// Package hmat_test contains test helpers
//
// Purpose:
//   - Deterministic random rigid transforms for property tests.
//   - Keep all data finite and well-formed.
package hmat_test

import (
	"math/rand"

	"github.com/katalvlaran/lvpose/hmat"
	"github.com/katalvlaran/lvpose/vec3"
)

// tol is the absolute tolerance for products of a handful of rigid transforms.
const tol = 1e-9

// randomRigid builds Rz·Ry·Rx with angles in [-180, 180) and a translation
// in [-1000, 1000)^3.
func randomRigid(rng *rand.Rand) hmat.MatrixH3D {
	a := rng.Float64()*360 - 180
	b := rng.Float64()*360 - 180
	c := rng.Float64()*360 - 180
	t := vec3.Vector3{rng.Float64()*2000 - 1000, rng.Float64()*2000 - 1000, rng.Float64()*2000 - 1000}
	r := hmat.Mul(hmat.RotZ(a), hmat.Mul(hmat.RotY(b), hmat.RotX(c)))

	return r.WithColumn(3, t)
}

// perturb adds uniform noise of amplitude amp to the rotation block.
func perturb(rng *rand.Rand, m hmat.MatrixH3D, amp float64) hmat.MatrixH3D {
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			m[i][j] += (rng.Float64()*2 - 1) * amp
		}
	}

	return m
}
