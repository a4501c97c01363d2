// SPDX-License-Identifier: MIT

// Package frame builds a pose from three taught points.
//
// The operator teaches an origin, a point along the new X axis and any
// point in the new XY plane (on the +Y side). FromThreePoints turns them
// into an orthonormal right-handed frame:
//
//	X = unit(pointAlongX - origin)
//	v = pointOnXYPlane - origin
//	Z = unit(X × v)
//	Y = Z × X
//	M = [X Y Z | origin]
//
// Coincident or collinear points cannot define a frame and are reported
// as ErrCoincidentPoints / ErrCollinearPoints (both match
// ErrDegenerateFrame); no NaN-filled matrix is ever returned.
package frame
