// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package iconvg

// Matrix2x3 is an affine transformation matrix. The elements are given in
// row-major order:
//
//	Elems[0][0]  Elems[0][1]  Elems[0][2]
//	Elems[1][0]  Elems[1][1]  Elems[1][2]
//
// Matrix multiplication transforms (oldX, oldY) to produce (newX, newY):
//
//	newX = (oldX * Elems[0][0]) + (oldY * Elems[0][1]) + Elems[0][2]
//	newY = (oldX * Elems[1][0]) + (oldY * Elems[1][1]) + Elems[1][2]
//
// The 2x3 matrix is equivalent to a 3x3 matrix whose bottom row is
// [0, 0, 1].
type Matrix2x3 struct {
	Elems [2][3]float64
}

// Determinant returns self's determinant.
func (m Matrix2x3) Determinant() float64 {
	return (m.Elems[0][0] * m.Elems[1][1]) - (m.Elems[0][1] * m.Elems[1][0])
}

// Inverse returns self's inverse. The result is meaningless if self's
// determinant is zero.
func (m Matrix2x3) Inverse() Matrix2x3 {
	invDet := 1 / m.Determinant()
	a, b, c := m.Elems[0][0], m.Elems[0][1], m.Elems[0][2]
	d, e, f := m.Elems[1][0], m.Elems[1][1], m.Elems[1][2]
	return Matrix2x3{Elems: [2][3]float64{
		{+e * invDet, -b * invDet, ((b * f) - (c * e)) * invDet},
		{-d * invDet, +a * invDet, ((c * d) - (a * f)) * invDet},
	}}
}

// OverrideSecondRow sets self's second row (the bottom row of the 2x3
// matrix) such that self has a non-zero determinant and is therefore
// invertible.
//
// IconVG linear gradients range from x=0 to x=1 in pattern space,
// independent of y, so the second row of such a gradient's matrix doesn't
// matter and is conventionally [0, 0, 0]. Some consumers, however, need an
// invertible matrix, so this method fills in a second row that is
// orthogonal to the first.
//
// If the first row's leading 2x2 part ([Elems[0][0], Elems[0][1]]) is
// itself the zero vector, the first row is also replaced.
func (m *Matrix2x3) OverrideSecondRow() {
	if m.Determinant() != 0 {
		return
	}
	a, b := m.Elems[0][0], m.Elems[0][1]
	if a == 0 && b == 0 {
		m.Elems[0][0], m.Elems[0][1] = 1, 0
		a, b = 1, 0
	}
	m.Elems[1][0], m.Elems[1][1], m.Elems[1][2] = -b, a, 0
}
