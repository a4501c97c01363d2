// SPDX-License-Identifier: MIT

package vec3

import (
	"errors"
	"fmt"
)

// Epsilon is the magnitude below which a vector is treated as zero.
// Every degenerate-case check in lvpose uses this value.
const Epsilon = 1e-9

// ErrZeroVector indicates an operation needed a direction but got a
// vector with magnitude below Epsilon.
var ErrZeroVector = errors.New("vec3: zero-length vector")

// ErrNonFinite indicates a NaN or ±Inf component.
var ErrNonFinite = errors.New("vec3: NaN or Inf component")

// Vector3 is an ordered (x, y, z) triple.
type Vector3 [3]float64

// Zero is the zero vector.
var Zero = Vector3{}

// Unit axes.
var (
	UnitX = Vector3{1, 0, 0}
	UnitY = Vector3{0, 1, 0}
	UnitZ = Vector3{0, 0, 1}
)

// X returns the first component.
func (v Vector3) X() float64 { return v[0] }

// Y returns the second component.
func (v Vector3) Y() float64 { return v[1] }

// Z returns the third component.
func (v Vector3) Z() float64 { return v[2] }

// String formats the vector as "(x, y, z)".
func (v Vector3) String() string {
	return fmt.Sprintf("(%g, %g, %g)", v[0], v[1], v[2])
}
