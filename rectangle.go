// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package iconvg

import "math"

// Rectangle is an axis-aligned rectangle with float32 coordinates.
//
// It is valid for MinX to be greater than or equal to MaxX (likewise for Y),
// or for any field to be NaN, in which case the rectangle is empty. There
// are multiple ways to represent an empty rectangle, but the canonical
// representation, DefaultEmptyRectangle, has all four fields set to
// positive zero.
type Rectangle struct {
	MinX, MinY, MaxX, MaxY float32
}

// DefaultEmptyRectangle is the canonical empty Rectangle.
var DefaultEmptyRectangle = Rectangle{}

// DefaultViewBox is the view box assumed when an IconVG graphic's metadata
// does not contain an explicit ViewBox chunk.
var DefaultViewBox = Rectangle{MinX: -32, MinY: -32, MaxX: +32, MaxY: +32}

// WidthF64 returns self's width as a float64. It is zero, not negative, for
// an empty rectangle.
func (r Rectangle) WidthF64() float64 {
	w := float64(r.MaxX) - float64(r.MinX)
	if !(w > 0) {
		return 0
	}
	return w
}

// HeightF64 returns self's height as a float64. It is zero, not negative,
// for an empty rectangle.
func (r Rectangle) HeightF64() float64 {
	h := float64(r.MaxY) - float64(r.MinY)
	if !(h > 0) {
		return 0
	}
	return h
}

// IsFiniteAndNotEmpty reports whether self is finite (none of its fields are
// infinite or NaN) and non-empty (its width and height are both positive).
func (r Rectangle) IsFiniteAndNotEmpty() bool {
	if math.IsInf(float64(r.MinX), 0) || math.IsInf(float64(r.MinY), 0) ||
		math.IsInf(float64(r.MaxX), 0) || math.IsInf(float64(r.MaxY), 0) {
		return false
	}
	return (r.MinX < r.MaxX) && (r.MinY < r.MaxY)
}
