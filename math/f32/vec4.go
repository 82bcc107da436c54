// Copyright 2026 The GDM Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package f32

import (
	"fmt"

	"github.com/chewxy/math32"
)

// Add returns the component-wise sum v + u.
func (v Vec4) Add(u Vec4) Vec4 {
	return Vec4{v[0] + u[0], v[1] + u[1], v[2] + u[2], v[3] + u[3]}
}

// Sub returns the component-wise difference v - u.
func (v Vec4) Sub(u Vec4) Vec4 {
	return Vec4{v[0] - u[0], v[1] - u[1], v[2] - u[2], v[3] - u[3]}
}

// Neg returns -v.
func (v Vec4) Neg() Vec4 {
	return Vec4{-v[0], -v[1], -v[2], -v[3]}
}

// Scale returns v scaled by s.
func (v Vec4) Scale(s float32) Vec4 {
	return Vec4{v[0] * s, v[1] * s, v[2] * s, v[3] * s}
}

// Dot returns the dot product of v and u.
func (v Vec4) Dot(u Vec4) float32 {
	return v[0]*u[0] + v[1]*u[1] + v[2]*u[2] + v[3]*u[3]
}

// Len returns the Euclidean length of v.
func (v Vec4) Len() float32 {
	return math32.Sqrt(v.Dot(v))
}

// Normalize returns v scaled to unit length.
//
// As with Vec3.Normalize, normalizing the zero vector yields NaN
// components.
func (v Vec4) Normalize() Vec4 {
	return v.Scale(1 / v.Len())
}

// Vec3 returns v's first three components, dropping w.
func (v Vec4) Vec3() Vec3 {
	return Vec3{v[0], v[1], v[2]}
}

// String returns a human-readable representation of v, for debugging. The
// format is not stable.
func (v Vec4) String() string {
	return fmt.Sprintf("(%g, %g, %g, %g)", v[0], v[1], v[2], v[3])
}
