// Copyright 2026 The GDM Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package f32

import (
	"fmt"

	"github.com/chewxy/math32"
)

// Add returns the component-wise sum v + u.
func (v Vec3) Add(u Vec3) Vec3 {
	return Vec3{v[0] + u[0], v[1] + u[1], v[2] + u[2]}
}

// Sub returns the component-wise difference v - u.
func (v Vec3) Sub(u Vec3) Vec3 {
	return Vec3{v[0] - u[0], v[1] - u[1], v[2] - u[2]}
}

// Neg returns -v.
func (v Vec3) Neg() Vec3 {
	return Vec3{-v[0], -v[1], -v[2]}
}

// Scale returns v scaled by s.
func (v Vec3) Scale(s float32) Vec3 {
	return Vec3{v[0] * s, v[1] * s, v[2] * s}
}

// MulComp returns the component-wise product of v and u.
func (v Vec3) MulComp(u Vec3) Vec3 {
	return Vec3{v[0] * u[0], v[1] * u[1], v[2] * u[2]}
}

// Dot returns the dot product of v and u.
func (v Vec3) Dot(u Vec3) float32 {
	return v[0]*u[0] + v[1]*u[1] + v[2]*u[2]
}

// Cross returns the cross product of v and u, following the right-hand
// rule.
func (v Vec3) Cross(u Vec3) Vec3 {
	return Vec3{
		v[1]*u[2] - v[2]*u[1],
		v[2]*u[0] - v[0]*u[2],
		v[0]*u[1] - v[1]*u[0],
	}
}

// Len returns the Euclidean length of v.
func (v Vec3) Len() float32 {
	return math32.Sqrt(v.Dot(v))
}

// Normalize returns v scaled to unit length.
//
// There is no zero-length guard: normalizing the zero vector yields NaN
// components.
func (v Vec3) Normalize() Vec3 {
	return v.Scale(1 / v.Len())
}

// Distance returns the Euclidean distance between v and u.
func (v Vec3) Distance(u Vec3) float32 {
	return v.Sub(u).Len()
}

// Lerp returns the linear interpolation between v and u at parameter t,
// where t=0 yields v and t=1 yields u.
func (v Vec3) Lerp(u Vec3, t float32) Vec3 {
	return Vec3{
		v[0] + t*(u[0]-v[0]),
		v[1] + t*(u[1]-v[1]),
		v[2] + t*(u[2]-v[2]),
	}
}

// String returns a human-readable representation of v, for debugging. The
// format is not stable.
func (v Vec3) String() string {
	return fmt.Sprintf("(%g, %g, %g)", v[0], v[1], v[2])
}
