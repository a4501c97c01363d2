// SPDX-License-Identifier: MIT

package euler

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/lvpose/vec3"
)

// ErrUnknownType indicates a Type value outside {ZYZ, ZYX, XYZ}.
var ErrUnknownType = errors.New("euler: unknown euler type")

// Type selects the rotation composition order and the extraction formulas.
type Type int

const (
	// ZYZ composes Rz(a)·Ry(b)·Rz(c).
	ZYZ Type = iota

	// ZYX composes Rz(a)·Ry(b)·Rx(c).
	ZYX

	// XYZ composes Rx(a)·Ry(b)·Rz(c).
	XYZ
)

// Valid reports whether t is one of the three supported conventions.
func (t Type) Valid() bool { return t == ZYZ || t == ZYX || t == XYZ }

// String returns the convention name.
func (t Type) String() string {
	switch t {
	case ZYZ:
		return "ZYZ"
	case ZYX:
		return "ZYX"
	case XYZ:
		return "XYZ"
	default:
		return fmt.Sprintf("Type(%d)", int(t))
	}
}

// Pose6 is {x, y, z, a, b, c}: translation, then three angles in degrees.
type Pose6 [6]float64

// Coordinate is a pose together with the convention its angles follow.
type Coordinate struct {
	Pose Pose6
	Type Type
}

// NewCoordinate builds a Coordinate from a translation and three angles.
func NewCoordinate(t vec3.Vector3, a, b, c float64, typ Type) Coordinate {
	return Coordinate{Pose: Pose6{t[0], t[1], t[2], a, b, c}, Type: typ}
}

// Translation returns {x, y, z}.
func (c Coordinate) Translation() vec3.Vector3 {
	return vec3.Vector3{c.Pose[0], c.Pose[1], c.Pose[2]}
}

// Angles returns {a, b, c} in degrees.
func (c Coordinate) Angles() [3]float64 {
	return [3]float64{c.Pose[3], c.Pose[4], c.Pose[5]}
}

// String renders e.g. "ZYX[100 0 0 | 30 45 0]".
func (c Coordinate) String() string {
	p := c.Pose
	return fmt.Sprintf("%s[%g %g %g | %g %g %g]", c.Type, p[0], p[1], p[2], p[3], p[4], p[5])
}
