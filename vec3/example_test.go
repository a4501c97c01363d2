// SPDX-License-Identifier: MIT

package vec3_test

import (
	"fmt"

	"github.com/katalvlaran/lvpose/vec3"
)

// ExampleCross shows the right-handed basis relation and the angle between axes.
func ExampleCross() {
	x := vec3.Vector3{1, 0, 0}
	y := vec3.Vector3{0, 1, 0}

	z := vec3.Cross(x, y)
	deg, _ := vec3.AngleDeg(x, y)
	fmt.Println("x × y =", z)
	fmt.Println("x · y =", vec3.Dot(x, y))
	fmt.Printf("angle = %.0f°\n", deg)
	// Output:
	// x × y = (0, 0, 1)
	// x · y = 0
	// angle = 90°
}

// ExampleUnit shows that a zero vector is passed through instead of producing NaN.
func ExampleUnit() {
	fmt.Println(vec3.Unit(vec3.Vector3{0, 3, 4}))
	fmt.Println(vec3.Unit(vec3.Vector3{}))
	// Output:
	// (0, 0.6, 0.8)
	// (0, 0, 0)
}
