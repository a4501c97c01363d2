// SPDX-License-Identifier: MIT

// Package euler: functional configuration for matrix → Euler extraction.
//
// Design goals:
//   - Deterministic behavior: no global state.
//   - Safe by construction: panic only on invalid parameters (programmer error).
package euler

import (
	"math"

	"github.com/katalvlaran/lvpose/vec3"
)

const (
	// DefaultFlip selects the primary branch.
	DefaultFlip = false

	// DefaultEpsilon is the gimbal-lock threshold on |sin b| (ZYZ) or
	// |cos b| (ZYX, XYZ).
	DefaultEpsilon = vec3.Epsilon
)

const panicEpsilonInvalid = "euler: WithEpsilon: eps must be finite, non-negative"

// Option mutates extraction options. Safe to apply repeatedly.
type Option func(*Options)

// Options holds the effective extraction configuration. The zero value has
// a zero epsilon; build one with NewOptions.
type Options struct {
	flip bool    // DefaultFlip
	eps  float64 // DefaultEpsilon
}

// WithFlip selects the secondary branch when flip is true.
func WithFlip(flip bool) Option {
	return func(o *Options) { o.flip = flip }
}

// WithEpsilon sets the gimbal-lock threshold.
// Panics if eps is NaN, ±Inf or negative.
func WithEpsilon(eps float64) Option {
	if math.IsNaN(eps) || math.IsInf(eps, 0) || eps < 0 {
		panic(panicEpsilonInvalid)
	}

	return func(o *Options) { o.eps = eps }
}

// NewOptions resolves opts over the defaults once. The result is a plain
// value: hold on to it and call its methods to extract repeatedly without
// re-applying options.
func NewOptions(opts ...Option) Options { return gatherOptions(opts...) }

// Flip reports whether the secondary branch is selected.
func (o Options) Flip() bool { return o.flip }

// Epsilon returns the gimbal-lock threshold.
func (o Options) Epsilon() float64 { return o.eps }

// Flipped returns a copy of o with the branch set to flip.
func (o Options) Flipped(flip bool) Options {
	o.flip = flip

	return o
}

// gatherOptions applies opts over the defaults.
// With no opts the defaults are returned without touching a closure.
func gatherOptions(opts ...Option) Options {
	if len(opts) == 0 {
		return Options{flip: DefaultFlip, eps: DefaultEpsilon}
	}

	o := Options{flip: DefaultFlip, eps: DefaultEpsilon}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}
