// SPDX-License-Identifier: MIT

package euler_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/katalvlaran/lvpose/euler"
	"github.com/katalvlaran/lvpose/hmat"
	"github.com/katalvlaran/lvpose/vec3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/num/quat"
)

// TestMul_MatchesMatrixProduct checks Mul against hmat.Mul for mixed conventions.
func TestMul_MatchesMatrixProduct(t *testing.T) {
	t.Parallel()

	rng := rand.New(rand.NewSource(31))
	for i := 0; i < 300; i++ {
		a := randomPrimary(rng, allTypes[i%3], 1)
		b := randomPrimary(rng, allTypes[(i+1)%3], 1)
		ref := allTypes[(i+2)%3]

		got, err := euler.Mul(a, b, ref)
		require.NoError(t, err)
		require.Equal(t, ref, got.Type)

		ma, _ := euler.ToMatrix(a)
		mb, _ := euler.ToMatrix(b)
		mg, _ := euler.ToMatrix(got)
		require.True(t, hmat.ApproxEqual(hmat.Mul(ma, mb), mg, 1e-8), "a=%v b=%v got=%v", a, b, got)
	}
}

// TestMul_Known composes a base rotated 90° about Z with a tool offset along X.
func TestMul_Known(t *testing.T) {
	t.Parallel()

	base := euler.Coordinate{Pose: euler.Pose6{100, 0, 0, 90, 0, 0}, Type: euler.ZYX}
	tool := euler.Coordinate{Pose: euler.Pose6{10, 0, 0, 0, 0, 0}, Type: euler.ZYX}

	got, err := euler.Mul(base, tool, euler.ZYX)
	require.NoError(t, err)
	requirePoseEqual(t, euler.Coordinate{Pose: euler.Pose6{100, 10, 0, 90, 0, 0}, Type: euler.ZYX}, got)
}

// TestMul_UnknownType reports which operand was wrong.
func TestMul_UnknownType(t *testing.T) {
	t.Parallel()

	ok := euler.Coordinate{Type: euler.ZYZ}
	bad := euler.Coordinate{Type: euler.Type(9)}

	for _, tc := range []struct {
		name      string
		a, b      euler.Coordinate
		ref       euler.Type
		wantInMsg string
	}{
		{"lhs", bad, ok, euler.ZYX, "lhs"},
		{"rhs", ok, bad, euler.ZYX, "rhs"},
		{"ref", ok, ok, euler.Type(5), "FromMatrix"},
	} {
		_, err := euler.Mul(tc.a, tc.b, tc.ref)
		require.ErrorIs(t, err, euler.ErrUnknownType, tc.name)
		assert.Contains(t, err.Error(), tc.wantInMsg, tc.name)
	}
}

// TestInverse checks c·inverse(c) = identity and a hand-computed case.
func TestInverse(t *testing.T) {
	t.Parallel()

	c := euler.Coordinate{Pose: euler.Pose6{100, 0, 0, 90, 0, 0}, Type: euler.ZYX}
	inv, err := euler.Inverse(c)
	require.NoError(t, err)
	requirePoseEqual(t, euler.Coordinate{Pose: euler.Pose6{0, 100, 0, -90, 0, 0}, Type: euler.ZYX}, inv)

	rng := rand.New(rand.NewSource(32))
	for _, typ := range allTypes {
		for i := 0; i < 200; i++ {
			p := randomPrimary(rng, typ, 1)
			inv, err := euler.Inverse(p)
			require.NoError(t, err)
			require.Equal(t, typ, inv.Type, "inverse keeps the convention")

			id, err := euler.Mul(p, inv, typ)
			require.NoError(t, err)
			m, _ := euler.ToMatrix(id)
			require.True(t, hmat.ApproxEqual(hmat.Identity(), m, 1e-8), "p=%v inv=%v", p, inv)
		}
	}

	_, err = euler.Inverse(euler.Coordinate{Type: euler.Type(4)})
	require.ErrorIs(t, err, euler.ErrUnknownType)
}

// TestConvert_RoundTrip checks convert(convert(p, t2), p.Type) == p.
func TestConvert_RoundTrip(t *testing.T) {
	t.Parallel()

	rng := rand.New(rand.NewSource(33))
	for _, from := range allTypes {
		for _, to := range allTypes {
			from, to := from, to
			seed := rng.Int63()
			t.Run(from.String()+"->"+to.String(), func(t *testing.T) {
				t.Parallel()
				local := rand.New(rand.NewSource(seed))
				for i := 0; i < 200; i++ {
					p := randomPrimary(local, from, 1)
					mid, err := euler.Convert(p, to)
					require.NoError(t, err)
					require.Equal(t, to, mid.Type)
					requireSameTransform(t, p, mid)

					back, err := euler.Convert(mid, from)
					require.NoError(t, err)
					requirePoseEqual(t, p, back)
				}
			})
		}
	}
}

// TestConvert_Known checks a pure rotation about Z in every convention.
func TestConvert_Known(t *testing.T) {
	t.Parallel()

	p := euler.NewCoordinate(vec3.Vector3{1, 2, 3}, 40, 0, 0, euler.ZYX)

	xyz, err := euler.Convert(p, euler.XYZ)
	require.NoError(t, err)
	requirePoseEqual(t, euler.NewCoordinate(vec3.Vector3{1, 2, 3}, 0, 0, 40, euler.XYZ), xyz)

	// pure Z rotation is a ZYZ gimbal case: folded into a
	zyz, err := euler.Convert(p, euler.ZYZ)
	require.NoError(t, err)
	requirePoseEqual(t, euler.NewCoordinate(vec3.Vector3{1, 2, 3}, 40, 0, 0, euler.ZYZ), zyz)
}

// TestQuaternion_RoundTrip checks ToQuaternion/FromQuaternion against the matrix form.
func TestQuaternion_RoundTrip(t *testing.T) {
	t.Parallel()

	rng := rand.New(rand.NewSource(34))
	for _, typ := range allTypes {
		for i := 0; i < 100; i++ {
			p := randomPrimary(rng, typ, 1)
			q, err := euler.ToQuaternion(p)
			require.NoError(t, err)
			require.InDelta(t, 1, quat.Abs(q), 1e-12)

			back, err := euler.FromQuaternion(q, p.Translation(), typ)
			require.NoError(t, err)
			requirePoseEqual(t, p, back)
		}
	}

	q, err := euler.ToQuaternion(euler.NewCoordinate(vec3.Zero, 0, 0, 90, euler.XYZ))
	require.NoError(t, err)
	assert.InDelta(t, math.Sqrt2/2, math.Abs(q.Real), 1e-12)
	assert.InDelta(t, math.Sqrt2/2, math.Abs(q.Kmag), 1e-12)

	_, err = euler.FromQuaternion(quat.Number{}, vec3.Zero, euler.ZYX)
	require.ErrorIs(t, err, hmat.ErrZeroQuaternion)
}

// TestCoordinateString covers the formatting helpers.
func TestCoordinateString(t *testing.T) {
	t.Parallel()

	c := euler.Coordinate{Pose: euler.Pose6{100, 0, 0, 30, 45, 0}, Type: euler.ZYX}
	assert.Equal(t, "ZYX[100 0 0 | 30 45 0]", c.String())
	assert.Equal(t, [3]float64{30, 45, 0}, c.Angles())
}
