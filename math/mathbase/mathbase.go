// Copyright 2026 The GDM Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package mathbase provides numeric constants and comparison helpers shared
// by the gdm math packages.
package mathbase // import "github.com/gdmath/gdm/math/mathbase"

import "github.com/chewxy/math32"

// Tolerance is the epsilon below which a float32 quantity is treated as
// zero. The matrix packages use it to decide whether a determinant is too
// close to zero for inversion.
const Tolerance = 1e-5

// EqualWithin reports whether a and b differ by at most tol.
func EqualWithin(a, b, tol float32) bool {
	return math32.Abs(a-b) <= tol
}

// Equal reports whether a and b differ by at most Tolerance.
func Equal(a, b float32) bool {
	return EqualWithin(a, b, Tolerance)
}
