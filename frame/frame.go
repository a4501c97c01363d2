// SPDX-License-Identifier: MIT

package frame

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/lvpose/euler"
	"github.com/katalvlaran/lvpose/hmat"
	"github.com/katalvlaran/lvpose/vec3"
)

var (
	// ErrDegenerateFrame is the parent of every frame construction failure.
	ErrDegenerateFrame = errors.New("frame: points do not define a frame")

	// ErrCoincidentPoints indicates pointAlongX is within vec3.Epsilon of origin.
	ErrCoincidentPoints = fmt.Errorf("%w: X point coincides with origin", ErrDegenerateFrame)

	// ErrCollinearPoints indicates the plane point lies on the X axis line.
	ErrCollinearPoints = fmt.Errorf("%w: plane point is collinear with the X axis", ErrDegenerateFrame)
)

// FromThreePoints returns the frame at origin whose X axis points to
// pointAlongX and whose XY plane contains pointOnXYPlane.
//
// Implementation:
//   - Stage 0: every point must be finite (vec3.ErrNonFinite).
//   - Stage 1: X = unit(pointAlongX - origin); zero → ErrCoincidentPoints.
//   - Stage 2: Z = unit(X × (pointOnXYPlane - origin)); zero → ErrCollinearPoints.
//   - Stage 3: Y = Z × X, already unit length.
//   - Stage 4: columns [X, Y, Z], translation = origin.
//
// Complexity: O(1).
func FromThreePoints(origin, pointAlongX, pointOnXYPlane vec3.Vector3) (hmat.MatrixH3D, error) {
	if !vec3.IsFinite(origin) || !vec3.IsFinite(pointAlongX) || !vec3.IsFinite(pointOnXYPlane) {
		return hmat.MatrixH3D{}, fmt.Errorf("FromThreePoints: %w", vec3.ErrNonFinite)
	}

	xRaw := vec3.Sub(pointAlongX, origin)
	if vec3.IsZero(xRaw) {
		return hmat.MatrixH3D{}, ErrCoincidentPoints
	}
	x := vec3.Unit(xRaw)

	zRaw := vec3.Cross(x, vec3.Sub(pointOnXYPlane, origin))
	if vec3.IsZero(zRaw) {
		return hmat.MatrixH3D{}, ErrCollinearPoints
	}
	z := vec3.Unit(zRaw)
	y := vec3.Cross(z, x)

	return hmat.FromAxes(x, y, z, origin), nil
}

// CoordinateFromThreePoints is FromThreePoints expressed as an Euler
// Coordinate of type t (primary branch unless opts say otherwise).
//
// Errors: vec3.ErrNonFinite, ErrDegenerateFrame family, euler.ErrUnknownType.
func CoordinateFromThreePoints(origin, pointAlongX, pointOnXYPlane vec3.Vector3, t euler.Type, opts ...euler.Option) (euler.Coordinate, error) {
	m, err := FromThreePoints(origin, pointAlongX, pointOnXYPlane)
	if err != nil {
		return euler.Coordinate{}, fmt.Errorf("CoordinateFromThreePoints: %w", err)
	}

	return euler.FromMatrix(m, t, opts...)
}
