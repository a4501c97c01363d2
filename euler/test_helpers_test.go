// SPDX-License-Identifier: MIT

// Package euler_test contains test helpers for the Euler conversions.
package euler_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/lvpose/euler"
	"github.com/katalvlaran/lvpose/hmat"
	"github.com/katalvlaran/lvpose/vec3"
	"github.com/stretchr/testify/require"
)

const (
	angTol = 1e-7 // degrees
	linTol = 1e-9 // translation units
	matTol = 1e-9
)

var allTypes = []euler.Type{euler.ZYZ, euler.ZYX, euler.XYZ}

// angleDiff returns the signed difference a-b folded into (-180, 180].
func angleDiff(a, b float64) float64 {
	return euler.NormalizeDeg(a - b)
}

// requirePoseEqual compares translations exactly within linTol and angles modulo 360°.
func requirePoseEqual(t *testing.T, want, got euler.Coordinate) {
	t.Helper()
	require.Equal(t, want.Type, got.Type)
	for i := 0; i < 3; i++ {
		require.InDelta(t, want.Pose[i], got.Pose[i], linTol, "translation[%d]: want %v got %v", i, want, got)
	}
	for i := 3; i < 6; i++ {
		require.InDelta(t, 0, angleDiff(want.Pose[i], got.Pose[i]), angTol, "angle[%d]: want %v got %v", i-3, want, got)
	}
}

// requireSameTransform compares two Coordinates through their matrices.
func requireSameTransform(t *testing.T, want, got euler.Coordinate) {
	t.Helper()
	mw, err := euler.ToMatrix(want)
	require.NoError(t, err)
	mg, err := euler.ToMatrix(got)
	require.NoError(t, err)
	require.True(t, hmat.ApproxEqual(mw, mg, matTol), "want %v\n%v\ngot %v\n%v", want, mw, got, mg)
}

// randomPrimary returns a pose of type t in the primary branch, at least
// margin degrees away from gimbal lock.
func randomPrimary(rng *rand.Rand, t euler.Type, margin float64) euler.Coordinate {
	a := rng.Float64()*359.98 - 179.99
	c := rng.Float64()*359.98 - 179.99
	var b float64
	if t == euler.ZYZ {
		b = margin + rng.Float64()*(180-2*margin)
	} else {
		b = -90 + margin + rng.Float64()*(180-2*margin)
	}
	tr := vec3.Vector3{rng.Float64()*2000 - 1000, rng.Float64()*2000 - 1000, rng.Float64()*2000 - 1000}

	return euler.NewCoordinate(tr, a, b, c, t)
}
