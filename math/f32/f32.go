// Copyright 2026 The GDM Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package f32 implements float32 vector and matrix types for 3-D
// transforms.
//
// Vectors are treated as rows. A point is transformed as v*M, and the
// translation components tx, ty, tz of an affine matrix live in its last
// row:
//
//	1   0   0   0
//	0   1   0   0
//	0   0   1   0
//	tx  ty  tz  1
//
// The affine helpers Translate, Rotate and Scale follow that convention.
// Mat4.MulVec4 instead applies the matrix to a column vector on the right;
// see its documentation.
package f32 // import "github.com/gdmath/gdm/math/f32"

// Vec2 is a 2-element vector.
type Vec2 [2]float32

// Vec3 is a 3-element vector.
type Vec3 [3]float32

// Vec4 is a 4-element vector.
type Vec4 [4]float32

// Mat3 is a 3x3 matrix in row major order.
//
// m[3*r + c] is the element in the r'th row and c'th column.
type Mat3 [9]float32

// Mat4 is a 4x4 matrix in row major order.
//
// m[4*r + c] is the element in the r'th row and c'th column.
type Mat4 [16]float32
