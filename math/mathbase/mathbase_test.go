// Copyright 2026 The GDM Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mathbase

import "testing"

func TestEqualWithin(t *testing.T) {
	testCases := []struct {
		a, b, tol float32
		want      bool
	}{
		{0, 0, 0, true},
		{1, 1.5, 0.5, true},
		{1, 1.5, 0.4, false},
		{-2, 2, 4, true},
		{-2, 2, 3.9, false},
	}
	for _, tc := range testCases {
		if got := EqualWithin(tc.a, tc.b, tc.tol); got != tc.want {
			t.Errorf("EqualWithin(%v, %v, %v): got %v, want %v", tc.a, tc.b, tc.tol, got, tc.want)
		}
	}
}

func TestEqual(t *testing.T) {
	if !Equal(1, 1+Tolerance/2) {
		t.Errorf("Equal(1, 1+Tolerance/2): got false, want true")
	}
	if Equal(1, 1+2*Tolerance) {
		t.Errorf("Equal(1, 1+2*Tolerance): got true, want false")
	}
}
