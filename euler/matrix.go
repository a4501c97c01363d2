// SPDX-License-Identifier: MIT

package euler

import (
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/katalvlaran/lvpose/hmat"
	"github.com/katalvlaran/lvpose/vec3"
)

// ZYZToMatrix returns the transform of p read as ZYZ: Rz(a)·Ry(b)·Rz(c).
func ZYZToMatrix(p Pose6) hmat.MatrixH3D {
	r := hmat.Mul(hmat.RotZ(p[3]), hmat.Mul(hmat.RotY(p[4]), hmat.RotZ(p[5])))

	return r.WithColumn(3, vec3.Vector3{p[0], p[1], p[2]})
}

// ZYXToMatrix returns the transform of p read as ZYX: Rz(a)·Ry(b)·Rx(c).
func ZYXToMatrix(p Pose6) hmat.MatrixH3D {
	r := hmat.Mul(hmat.RotZ(p[3]), hmat.Mul(hmat.RotY(p[4]), hmat.RotX(p[5])))

	return r.WithColumn(3, vec3.Vector3{p[0], p[1], p[2]})
}

// XYZToMatrix returns the transform of p read as XYZ: Rx(a)·Ry(b)·Rz(c).
func XYZToMatrix(p Pose6) hmat.MatrixH3D {
	r := hmat.Mul(hmat.RotX(p[3]), hmat.Mul(hmat.RotY(p[4]), hmat.RotZ(p[5])))

	return r.WithColumn(3, vec3.Vector3{p[0], p[1], p[2]})
}

// ToMatrix dispatches on c.Type.
//
// Errors: ErrUnknownType.
func ToMatrix(c Coordinate) (hmat.MatrixH3D, error) {
	switch c.Type {
	case ZYZ:
		return ZYZToMatrix(c.Pose), nil
	case ZYX:
		return ZYXToMatrix(c.Pose), nil
	case XYZ:
		return XYZToMatrix(c.Pose), nil
	default:
		return hmat.MatrixH3D{}, fmt.Errorf("ToMatrix: %v: %w", c.Type, ErrUnknownType)
	}
}

// MatrixToZYZ extracts ZYZ angles from m.
//
// Implementation:
//   - sb = √(r02² + r12²) = |sin b|.
//   - Gimbal (sb < eps): c = 0, b = 0° if r22 > 0 else 180°, and
//     a = atan2(r10, r00) or atan2(-r10, -r00) respectively.
//   - Primary: b = atan2(sb, r22) ∈ [0°,180°], a = atan2(r12, r02),
//     c = atan2(r21, -r20).
//   - Flip: b = -b, a = atan2(-r12, -r02), c = atan2(-r21, r20).
//
// Complexity: O(1).
func MatrixToZYZ(m hmat.MatrixH3D, opts ...Option) Coordinate {
	return gatherOptions(opts...).MatrixToZYZ(m)
}

// MatrixToZYZ is the package-level MatrixToZYZ with o already resolved.
func (o Options) MatrixToZYZ(m hmat.MatrixH3D) Coordinate {
	var a, b, c float64

	sb := math.Hypot(m[0][2], m[1][2])
	switch {
	case sb < o.eps && m[2][2] > 0:
		a, b = deg(math.Atan2(m[1][0], m[0][0])), 0
	case sb < o.eps:
		a, b = deg(math.Atan2(-m[1][0], -m[0][0])), 180
	case !o.flip:
		a = deg(math.Atan2(m[1][2], m[0][2]))
		b = deg(math.Atan2(sb, m[2][2]))
		c = deg(math.Atan2(m[2][1], -m[2][0]))
	default:
		a = deg(math.Atan2(-m[1][2], -m[0][2]))
		b = deg(math.Atan2(-sb, m[2][2]))
		c = deg(math.Atan2(-m[2][1], m[2][0]))
	}

	return assemble(m, a, b, c, ZYZ)
}

// MatrixToZYX extracts ZYX angles from m.
//
// Implementation:
//   - cb = √(r00² + r10²) = |cos b|.
//   - Gimbal (cb < eps): c = 0, b = ±90° with the sign of -r20,
//     a = atan2(-r01, r11).
//   - Primary: b = atan2(-r20, cb) ∈ [-90°,90°], a = atan2(r10, r00),
//     c = atan2(r21, r22).
//   - Flip: b = atan2(-r20, -cb), a = atan2(-r10, -r00), c = atan2(-r21, -r22).
//
// Complexity: O(1).
func MatrixToZYX(m hmat.MatrixH3D, opts ...Option) Coordinate {
	return gatherOptions(opts...).MatrixToZYX(m)
}

// MatrixToZYX is the package-level MatrixToZYX with o already resolved.
func (o Options) MatrixToZYX(m hmat.MatrixH3D) Coordinate {
	var a, b, c float64

	cb := math.Hypot(m[0][0], m[1][0])
	switch {
	case cb < o.eps:
		a = deg(math.Atan2(-m[0][1], m[1][1]))
		b = math.Copysign(90, -m[2][0])
	case !o.flip:
		a = deg(math.Atan2(m[1][0], m[0][0]))
		b = deg(math.Atan2(-m[2][0], cb))
		c = deg(math.Atan2(m[2][1], m[2][2]))
	default:
		a = deg(math.Atan2(-m[1][0], -m[0][0]))
		b = deg(math.Atan2(-m[2][0], -cb))
		c = deg(math.Atan2(-m[2][1], -m[2][2]))
	}

	return assemble(m, a, b, c, ZYX)
}

// MatrixToXYZ extracts XYZ angles from m.
//
// Implementation:
//   - cb = √(r00² + r01²) = |cos b|.
//   - Gimbal (cb < eps): c = 0, b = ±90° with the sign of r02,
//     a = atan2(r21, r11).
//   - Primary: b = atan2(r02, cb) ∈ [-90°,90°], a = atan2(-r12, r22),
//     c = atan2(-r01, r00).
//   - Flip: b = atan2(r02, -cb), a = atan2(r12, -r22), c = atan2(r01, -r00).
//
// Complexity: O(1).
func MatrixToXYZ(m hmat.MatrixH3D, opts ...Option) Coordinate {
	return gatherOptions(opts...).MatrixToXYZ(m)
}

// MatrixToXYZ is the package-level MatrixToXYZ with o already resolved.
func (o Options) MatrixToXYZ(m hmat.MatrixH3D) Coordinate {
	var a, b, c float64

	cb := math.Hypot(m[0][0], m[0][1])
	switch {
	case cb < o.eps:
		a = deg(math.Atan2(m[2][1], m[1][1]))
		b = math.Copysign(90, m[0][2])
	case !o.flip:
		a = deg(math.Atan2(-m[1][2], m[2][2]))
		b = deg(math.Atan2(m[0][2], cb))
		c = deg(math.Atan2(-m[0][1], m[0][0]))
	default:
		a = deg(math.Atan2(m[1][2], -m[2][2]))
		b = deg(math.Atan2(m[0][2], -cb))
		c = deg(math.Atan2(m[0][1], -m[0][0]))
	}

	return assemble(m, a, b, c, XYZ)
}

// FromMatrix dispatches to MatrixToZYZ/ZYX/XYZ.
//
// Errors: ErrUnknownType.
func FromMatrix(m hmat.MatrixH3D, t Type, opts ...Option) (Coordinate, error) {
	return gatherOptions(opts...).FromMatrix(m, t)
}

// FromMatrix dispatches to o.MatrixToZYZ/ZYX/XYZ.
//
// Errors: ErrUnknownType.
func (o Options) FromMatrix(m hmat.MatrixH3D, t Type) (Coordinate, error) {
	switch t {
	case ZYZ:
		return o.MatrixToZYZ(m), nil
	case ZYX:
		return o.MatrixToZYX(m), nil
	case XYZ:
		return o.MatrixToXYZ(m), nil
	default:
		return Coordinate{}, fmt.Errorf("FromMatrix: %v: %w", t, ErrUnknownType)
	}
}

// deg converts an atan2 result to degrees.
func deg(rad float64) float64 { return mgl64.RadToDeg(rad) }

// assemble normalises the angles (degrees) and copies the translation.
func assemble(m hmat.MatrixH3D, a, b, c float64, t Type) Coordinate {
	return NewCoordinate(m.TranslationOf(), NormalizeDeg(a), NormalizeDeg(b), NormalizeDeg(c), t)
}

// NormalizeDeg maps deg into (-180, 180]. Negative zero becomes zero.
func NormalizeDeg(deg float64) float64 {
	deg = math.Mod(deg, 360)
	switch {
	case deg > 180:
		deg -= 360
	case deg <= -180:
		deg += 360
	}
	if deg == 0 {
		return 0
	}

	return deg
}
