// SPDX-License-Identifier: MIT

package vec3_test

import (
	"testing"

	"github.com/katalvlaran/lvpose/vec3"
)

var sinkVec vec3.Vector3
var sinkF float64

// BenchmarkCross measures the cross product.
func BenchmarkCross(b *testing.B) {
	a, c := vec3.Vector3{1, 2, 3}, vec3.Vector3{-4, 5, 0.5}
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		sinkVec = vec3.Cross(a, c)
	}
}

// BenchmarkAngleDeg measures the clamped angle computation.
func BenchmarkAngleDeg(b *testing.B) {
	a, c := vec3.Vector3{1, 2, 3}, vec3.Vector3{-4, 5, 0.5}
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		sinkF, _ = vec3.AngleDeg(a, c)
	}
}
