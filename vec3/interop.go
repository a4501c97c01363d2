// SPDX-License-Identifier: MIT

package vec3

import "github.com/golang/geo/r3"

// FromR3 converts a golang/geo r3.Vector.
func FromR3(v r3.Vector) Vector3 { return Vector3{v.X, v.Y, v.Z} }

// R3 converts v to a golang/geo r3.Vector.
func (v Vector3) R3() r3.Vector { return r3.Vector{X: v[0], Y: v[1], Z: v[2]} }
