// Copyright 2026 The GDM Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package f32

import "github.com/chewxy/math32"

// Translate returns m with v added to its translation row. The translation
// accumulates: row 3 becomes [tx+v[0], ty+v[1], tz+v[2], w], with w left
// untouched.
func Translate(m Mat4, v Vec3) Mat4 {
	t := m.Row(3)
	t[0] += v[0]
	t[1] += v[1]
	t[2] += v[2]

	return FromRows(m.Row(0), m.Row(1), m.Row(2), t)
}

// Rotate returns m with its upper-left 3x3 block replaced by the rotation
// of angle radians about axis, built by Rodrigues' formula. The axis must
// be normalized by the caller; no normalization is performed. Row 3 and
// column 3 of m pass through unchanged.
func Rotate(m Mat4, angle float32, axis Vec3) Mat4 {
	cos := math32.Cos(angle)
	sin := math32.Sin(angle)
	d := 1 - cos

	x := axis[0] * d
	y := axis[1] * d
	z := axis[2] * d
	axay := x * axis[1]
	axaz := x * axis[2]
	ayaz := y * axis[2]

	return Mat4{
		cos + x*axis[0], axay - sin*axis[2], axaz + sin*axis[1], m[3],
		axay + sin*axis[2], cos + y*axis[1], ayaz - sin*axis[0], m[7],
		axaz - sin*axis[1], ayaz + sin*axis[0], cos + z*axis[2], m[11],
		m[12], m[13], m[14], m[15],
	}
}

// Scale returns m with its basis-vector lengths scaled: entries (0,0),
// (1,1) and (2,2) are multiplied by v's components. Every other entry,
// the translation row included, passes through unchanged. This is not a
// general scale-matrix multiply.
func Scale(m Mat4, v Vec3) Mat4 {
	s := m
	s[0] *= v[0]
	s[5] *= v[1]
	s[10] *= v[2]

	return s
}
