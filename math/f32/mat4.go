// Copyright 2026 The GDM Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package f32

import (
	"fmt"

	"github.com/chewxy/math32"

	"github.com/gdmath/gdm/math/mathbase"
)

// Identity returns the 4x4 identity matrix.
func Identity() Mat4 {
	return Mat4{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	}
}

// Diagonal returns the matrix with s on every diagonal entry and zero
// elsewhere.
func Diagonal(s float32) Mat4 {
	return Mat4{
		s, 0, 0, 0,
		0, s, 0, 0,
		0, 0, s, 0,
		0, 0, 0, s,
	}
}

// FromRows returns the matrix whose rows are r0, r1, r2 and r3.
func FromRows(r0, r1, r2, r3 Vec4) Mat4 {
	return Mat4{
		r0[0], r0[1], r0[2], r0[3],
		r1[0], r1[1], r1[2], r1[3],
		r2[0], r2[1], r2[2], r2[3],
		r3[0], r3[1], r3[2], r3[3],
	}
}

// At returns the element in row i, column j. Both indices must be in
// [0, 3]; there is no bounds checking beyond the underlying array's own.
func (m Mat4) At(i, j int) float32 {
	return m[4*i+j]
}

// Set assigns the element in row i, column j. Both indices must be in
// [0, 3].
func (m *Mat4) Set(i, j int, v float32) {
	m[4*i+j] = v
}

// Row returns row i of m. i must be in [0, 3].
func (m Mat4) Row(i int) Vec4 {
	return Vec4{m[4*i], m[4*i+1], m[4*i+2], m[4*i+3]}
}

// Col returns column j of m. j must be in [0, 3].
func (m Mat4) Col(j int) Vec4 {
	return Vec4{m[j], m[4+j], m[8+j], m[12+j]}
}

// Mul returns the matrix product m*n, with entry (r, c) equal to the dot
// product of m's row r and n's column c. Under the package's row-vector
// convention, v*(m.Mul(n)) applies m's transform first, then n's.
func (m Mat4) Mul(n Mat4) Mat4 {
	var p Mat4
	for r := 0; r < 4; r++ {
		for c := 0; c < 4; c++ {
			var sum float32
			for i := 0; i < 4; i++ {
				sum += m[4*r+i] * n[4*i+c]
			}
			p[4*r+c] = sum
		}
	}
	return p
}

// MulVec4 returns m*v with v taken as a column vector on the right.
//
// This is the opposite convention from the affine helpers, which transform
// row vectors as v*M. Both usages are part of the API: applying MulVec4
// with a matrix built by the helpers applies the transpose of the
// transform those helpers describe.
func (m Mat4) MulVec4(v Vec4) Vec4 {
	return Vec4{
		m[0]*v[0] + m[1]*v[1] + m[2]*v[2] + m[3]*v[3],
		m[4]*v[0] + m[5]*v[1] + m[6]*v[2] + m[7]*v[3],
		m[8]*v[0] + m[9]*v[1] + m[10]*v[2] + m[11]*v[3],
		m[12]*v[0] + m[13]*v[1] + m[14]*v[2] + m[15]*v[3],
	}
}

// Det returns the determinant of m.
//
// It expands the six 2x2 minors of rows 0-1 against the six complementary
// minors of rows 2-3. This is the general Laplace expansion, valid for any
// 4x4 matrix, not only affine ones.
func (m Mat4) Det() float32 {
	a0 := m[0]*m[5] - m[1]*m[4]
	a1 := m[0]*m[6] - m[2]*m[4]
	a2 := m[0]*m[7] - m[3]*m[4]
	a3 := m[1]*m[6] - m[2]*m[5]
	a4 := m[1]*m[7] - m[3]*m[5]
	a5 := m[2]*m[7] - m[3]*m[6]
	b0 := m[8]*m[13] - m[9]*m[12]
	b1 := m[8]*m[14] - m[10]*m[12]
	b2 := m[8]*m[15] - m[11]*m[12]
	b3 := m[9]*m[14] - m[10]*m[13]
	b4 := m[9]*m[15] - m[11]*m[13]
	b5 := m[10]*m[15] - m[11]*m[14]

	return a0*b5 - a1*b4 + a2*b3 + a3*b2 - a4*b1 + a5*b0
}

// Invertible reports whether m's determinant is far enough from zero, per
// mathbase.Tolerance, for Inverse to produce a meaningful result.
func (m Mat4) Invertible() bool {
	return math32.Abs(m.Det()) > mathbase.Tolerance
}

// Inverse returns the inverse of m.
//
// If m is singular (Invertible reports false), Inverse returns the
// identity matrix instead of signaling failure. A caller that needs to
// distinguish a singular input from one whose inverse happens to be the
// identity must check Invertible first.
//
// The inverse is computed by the cross-product block decomposition: the
// upper 3x3 columns a, b, c and the fourth column d are combined with the
// bottom row through cross and dot products. The method is valid for any
// invertible 4x4 matrix.
func (m Mat4) Inverse() Mat4 {
	if !m.Invertible() {
		return Identity()
	}

	a := Vec3{m[0], m[4], m[8]}
	b := Vec3{m[1], m[5], m[9]}
	c := Vec3{m[2], m[6], m[10]}
	d := Vec3{m[3], m[7], m[11]}

	x := m[12]
	y := m[13]
	z := m[14]
	w := m[15]

	s := a.Cross(b)
	t := c.Cross(d)
	u := a.Scale(y).Sub(b.Scale(x))
	v := c.Scale(w).Sub(d.Scale(z))

	invDet := 1 / (s.Dot(v) + t.Dot(u))
	s = s.Scale(invDet)
	t = t.Scale(invDet)
	u = u.Scale(invDet)
	v = v.Scale(invDet)

	r0 := b.Cross(v).Add(t.Scale(y))
	r1 := v.Cross(a).Sub(t.Scale(x))
	r2 := d.Cross(u).Add(s.Scale(w))
	r3 := u.Cross(c).Sub(s.Scale(z))

	return Mat4{
		r0[0], r0[1], r0[2], -b.Dot(t),
		r1[0], r1[1], r1[2], a.Dot(t),
		r2[0], r2[1], r2[2], -d.Dot(s),
		r3[0], r3[1], r3[2], c.Dot(s),
	}
}

// Transpose returns m with rows and columns swapped.
func (m Mat4) Transpose() Mat4 {
	return Mat4{
		m[0], m[4], m[8], m[12],
		m[1], m[5], m[9], m[13],
		m[2], m[6], m[10], m[14],
		m[3], m[7], m[11], m[15],
	}
}

// String returns a multi-line human-readable representation of m, for
// debugging. The format is not stable.
func (m Mat4) String() string {
	return fmt.Sprintf("Mat4 {\n%g %g %g %g\n%g %g %g %g\n%g %g %g %g\n%g %g %g %g\n}\n",
		m[0], m[1], m[2], m[3],
		m[4], m[5], m[6], m[7],
		m[8], m[9], m[10], m[11],
		m[12], m[13], m[14], m[15])
}
