// SPDX-License-Identifier: MIT

package euler_test

import (
	"testing"

	"github.com/katalvlaran/lvpose/euler"
)

var sinkC euler.Coordinate

// BenchmarkRoundTrip measures ToMatrix + FromMatrix for each convention.
func BenchmarkRoundTrip(b *testing.B) {
	for _, typ := range allTypes {
		p := euler.Coordinate{Pose: euler.Pose6{100, -50, 300, 30, 45, -60}, Type: typ}
		b.Run(typ.String(), func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				m, _ := euler.ToMatrix(p)
				sinkC, _ = euler.FromMatrix(m, typ)
			}
		})
	}
}

// BenchmarkMul measures pose composition.
func BenchmarkMul(b *testing.B) {
	x := euler.Coordinate{Pose: euler.Pose6{100, -50, 300, 30, 45, -60}, Type: euler.ZYZ}
	y := euler.Coordinate{Pose: euler.Pose6{10, 20, 30, -10, 80, 5}, Type: euler.ZYX}
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		sinkC, _ = euler.Mul(x, y, euler.XYZ)
	}
}
