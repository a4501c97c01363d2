// SPDX-License-Identifier: MIT

package euler

import (
	"fmt"

	"github.com/katalvlaran/lvpose/hmat"
	"github.com/katalvlaran/lvpose/vec3"
	"gonum.org/v1/gonum/num/quat"
)

// Mul composes two poses: ToMatrix(a)·ToMatrix(b), extracted as ref.
// Each operand is read in its own convention; b is expressed in a's frame.
//
// Errors: ErrUnknownType for any of a.Type, b.Type, ref.
func Mul(a, b Coordinate, ref Type, opts ...Option) (Coordinate, error) {
	return gatherOptions(opts...).Mul(a, b, ref)
}

// Mul is the package-level Mul with o already resolved.
func (o Options) Mul(a, b Coordinate, ref Type) (Coordinate, error) {
	ma, err := ToMatrix(a)
	if err != nil {
		return Coordinate{}, fmt.Errorf("Mul: lhs: %w", err)
	}
	mb, err := ToMatrix(b)
	if err != nil {
		return Coordinate{}, fmt.Errorf("Mul: rhs: %w", err)
	}
	out, err := o.FromMatrix(hmat.Mul(ma, mb), ref)
	if err != nil {
		return Coordinate{}, fmt.Errorf("Mul: %w", err)
	}

	return out, nil
}

// Inverse returns the inverse pose in c's own convention.
//
// Errors: ErrUnknownType.
func Inverse(c Coordinate, opts ...Option) (Coordinate, error) {
	return gatherOptions(opts...).Inverse(c)
}

// Inverse is the package-level Inverse with o already resolved.
func (o Options) Inverse(c Coordinate) (Coordinate, error) {
	m, err := ToMatrix(c)
	if err != nil {
		return Coordinate{}, fmt.Errorf("Inverse: %w", err)
	}

	return o.FromMatrix(hmat.Inverse(m), c.Type)
}

// Convert re-expresses c in convention t. The rigid transform is
// unchanged; the angles follow the branch chosen by opts (primary by default).
//
// Errors: ErrUnknownType.
func Convert(c Coordinate, t Type, opts ...Option) (Coordinate, error) {
	return gatherOptions(opts...).Convert(c, t)
}

// Convert is the package-level Convert with o already resolved.
func (o Options) Convert(c Coordinate, t Type) (Coordinate, error) {
	m, err := ToMatrix(c)
	if err != nil {
		return Coordinate{}, fmt.Errorf("Convert: %w", err)
	}
	out, err := o.FromMatrix(m, t)
	if err != nil {
		return Coordinate{}, fmt.Errorf("Convert: %w", err)
	}

	return out, nil
}

// ToQuaternion returns the unit quaternion of c's rotation.
//
// Errors: ErrUnknownType.
func ToQuaternion(c Coordinate) (quat.Number, error) {
	m, err := ToMatrix(c)
	if err != nil {
		return quat.Number{}, fmt.Errorf("ToQuaternion: %w", err)
	}

	return hmat.Quaternion(m), nil
}

// FromQuaternion builds a Coordinate of type t from rotation q and translation tr.
//
// Errors: hmat.ErrZeroQuaternion, ErrUnknownType.
func FromQuaternion(q quat.Number, tr vec3.Vector3, t Type, opts ...Option) (Coordinate, error) {
	m, err := hmat.FromQuaternion(q, tr)
	if err != nil {
		return Coordinate{}, fmt.Errorf("FromQuaternion: %w", err)
	}

	return FromMatrix(m, t, opts...)
}
