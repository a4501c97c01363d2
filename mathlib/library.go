// SPDX-License-Identifier: MIT

package mathlib

import (
	"sync"

	"github.com/katalvlaran/lvpose/euler"
	"github.com/katalvlaran/lvpose/frame"
	"github.com/katalvlaran/lvpose/hmat"
	"github.com/katalvlaran/lvpose/vec3"
)

// Library is the contract surface. The zero value is not usable; build
// one with New or take Default.
type Library struct {
	opts euler.Options // resolved once in New
}

var (
	defaultOnce sync.Once
	defaultLib  *Library
)

// New returns a Library whose Euler extractions use opts
// (e.g. euler.WithEpsilon). The flip argument of the MatrixToEuler
// methods always overrides any euler.WithFlip given here.
func New(opts ...euler.Option) *Library {
	return &Library{opts: euler.NewOptions(opts...)}
}

// Default returns the process-wide Library with default options.
// The instance is created on first use.
func Default() *Library {
	defaultOnce.Do(func() { defaultLib = New() })

	return defaultLib
}

// CrossProduct returns a × b.
func (l *Library) CrossProduct(a, b vec3.Vector3) vec3.Vector3 { return vec3.Cross(a, b) }

// DotProduct returns a · b.
func (l *Library) DotProduct(a, b vec3.Vector3) float64 { return vec3.Dot(a, b) }

// Magnitude returns |v|.
func (l *Library) Magnitude(v vec3.Vector3) float64 { return vec3.Magnitude(v) }

// MagnitudeSQ returns |v|².
func (l *Library) MagnitudeSQ(v vec3.Vector3) float64 { return vec3.MagnitudeSQ(v) }

// IsVectorZero reports |v| < vec3.Epsilon.
func (l *Library) IsVectorZero(v vec3.Vector3) bool { return vec3.IsZero(v) }

// UnitVector returns v/|v|, or the zero vector for a zero input.
func (l *Library) UnitVector(v vec3.Vector3) vec3.Vector3 { return vec3.Unit(v) }

// CalculateDegreeAngleBetweenTwoVector returns the angle in degrees.
// Errors: vec3.ErrZeroVector.
func (l *Library) CalculateDegreeAngleBetweenTwoVector(a, b vec3.Vector3) (float64, error) {
	return vec3.AngleDeg(a, b)
}

// MakeValidMatrix orthonormalises the rotation block (see hmat.MakeValid).
func (l *Library) MakeValidMatrix(m hmat.MatrixH3D) (hmat.MatrixH3D, error) {
	return hmat.MakeValid(m)
}

// MatMul returns a·b.
func (l *Library) MatMul(a, b hmat.MatrixH3D) hmat.MatrixH3D { return hmat.Mul(a, b) }

// Inverse returns the closed-form rigid inverse; m must be rigid.
func (l *Library) Inverse(m hmat.MatrixH3D) hmat.MatrixH3D { return hmat.Inverse(m) }

// EulerToMatrix converts c according to c.Type.
func (l *Library) EulerToMatrix(c euler.Coordinate) (hmat.MatrixH3D, error) {
	return euler.ToMatrix(c)
}

// EulerZYZToMatrix reads c.Pose as ZYZ whatever c.Type says.
func (l *Library) EulerZYZToMatrix(c euler.Coordinate) hmat.MatrixH3D {
	return euler.ZYZToMatrix(c.Pose)
}

// EulerZYXToMatrix reads c.Pose as ZYX whatever c.Type says.
func (l *Library) EulerZYXToMatrix(c euler.Coordinate) hmat.MatrixH3D {
	return euler.ZYXToMatrix(c.Pose)
}

// EulerXYZToMatrix reads c.Pose as XYZ whatever c.Type says.
func (l *Library) EulerXYZToMatrix(c euler.Coordinate) hmat.MatrixH3D {
	return euler.XYZToMatrix(c.Pose)
}

// MatrixToEulerZYZ extracts ZYZ angles; flip selects the secondary branch.
func (l *Library) MatrixToEulerZYZ(m hmat.MatrixH3D, flip bool) euler.Coordinate {
	return l.opts.Flipped(flip).MatrixToZYZ(m)
}

// MatrixToEulerZYX extracts ZYX angles; flip selects the secondary branch.
func (l *Library) MatrixToEulerZYX(m hmat.MatrixH3D, flip bool) euler.Coordinate {
	return l.opts.Flipped(flip).MatrixToZYX(m)
}

// MatrixToEulerXYZ extracts XYZ angles; flip selects the secondary branch.
func (l *Library) MatrixToEulerXYZ(m hmat.MatrixH3D, flip bool) euler.Coordinate {
	return l.opts.Flipped(flip).MatrixToXYZ(m)
}

// EulerMul composes a·b and returns it in convention ref.
func (l *Library) EulerMul(a, b euler.Coordinate, ref euler.Type) (euler.Coordinate, error) {
	return l.opts.Mul(a, b, ref)
}

// InverseEuler inverts c, keeping c.Type.
func (l *Library) InverseEuler(c euler.Coordinate) (euler.Coordinate, error) {
	return l.opts.Inverse(c)
}

// ConvertEuler re-expresses c in convention t (primary branch).
func (l *Library) ConvertEuler(c euler.Coordinate, t euler.Type) (euler.Coordinate, error) {
	return l.opts.Convert(c, t)
}

// CalculateMatrixUsingThreePoints builds a frame from origin, a point on
// +X and a point in the XY plane. Errors: frame.ErrDegenerateFrame family.
func (l *Library) CalculateMatrixUsingThreePoints(origin, pointAlongX, pointOnXYPlane vec3.Vector3) (hmat.MatrixH3D, error) {
	return frame.FromThreePoints(origin, pointAlongX, pointOnXYPlane)
}
