// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package iconvg

import (
	"image"
	"image/draw"
	"testing"
)

// makeLinearGradientPaint builds a Paint backed by a gradient-valued CREG
// entry (constructed the same way the styling-mode interpreter reinterprets
// a nonsensical flat color, per doc.go's "Colors and Gradients" section),
// ranging from stop0 at offset 0 to stop1 at offset 1, with the
// graphic->gradient matrix set so that offset = x / width.
func makeLinearGradientPaint(width float64, stop0, stop1 PremulColor) *Paint {
	var creg [64]PremulColor
	var nreg [64]float32

	const (
		descIdx = 2
		cbase   = 0
		nbase   = 10
	)
	creg[cbase+0] = stop0
	creg[cbase+1] = stop1
	nreg[nbase+0] = 0
	nreg[nbase+1] = 1

	// [a b c; d e f], graphic (viewBox) space -> gradient space.
	nreg[nbase-6] = float32(1 / width) // a
	nreg[nbase-5] = 0                  // b
	nreg[nbase-4] = 0                  // c
	nreg[nbase-3] = 0                  // d
	nreg[nbase-2] = 0                  // e
	nreg[nbase-1] = 0                  // f

	creg[descIdx] = PremulColor{
		R: 2,           // NSTOPS
		G: 0x40 | 0,    // GradientSpreadPad<<6 | CBASE
		B: 0x80 | 0x0A, // gradient marker | linear shape | NBASE
		A: 0,
	}

	return &Paint{
		rgba:          creg[descIdx],
		customPalette: &DefaultPalette,
		creg:          &creg,
		nreg:          &nreg,
		d2sScaleX:     1, d2sBiasX: 0,
		d2sScaleY: 1, d2sBiasY: 0,
	}
}

func TestPaintLinearGradientAccessors(t *testing.T) {
	red := PremulColor{R: 0xff, A: 0xff}
	blue := PremulColor{B: 0xff, A: 0xff}
	p := makeLinearGradientPaint(8, red, blue)

	if got, want := p.Type(), PaintTypeLinearGradient; got != want {
		t.Fatalf("Type: got %v, want %v", got, want)
	}
	if got, want := p.GradientSpread(), GradientSpreadPad; got != want {
		t.Errorf("GradientSpread: got %v, want %v", got, want)
	}
	if got, want := p.GradientNumberOfStops(), uint32(2); got != want {
		t.Errorf("GradientNumberOfStops: got %v, want %v", got, want)
	}
	if got, want := p.GradientStopColorAsPremulColor(0), red; got != want {
		t.Errorf("stop 0 color: got %+v, want %+v", got, want)
	}
	if got, want := p.GradientStopColorAsPremulColor(1), blue; got != want {
		t.Errorf("stop 1 color: got %+v, want %+v", got, want)
	}
	if got, want := p.GradientStopOffset(0), float32(0); got != want {
		t.Errorf("stop 0 offset: got %v, want %v", got, want)
	}
	if got, want := p.GradientStopOffset(1), float32(1); got != want {
		t.Errorf("stop 1 offset: got %v, want %v", got, want)
	}

	m := p.GradientTransformationMatrix()
	want := Matrix2x3{Elems: [2][3]float64{{1.0 / 8, 0, 0}, {0, 0, 0}}}
	if m != want {
		t.Errorf("GradientTransformationMatrix: got %+v, want %+v", m, want)
	}
}

// TestRasterizerLinearGradientFill exercises the full gradient-paint
// pipeline — Rasterizer.resolveFill, internal/gradient.Gradient, and the
// Paint gradient accessors — by filling a path with a linear gradient and
// checking that the painted pixels vary spatially the way the gradient's
// stops say they should.
func TestRasterizerLinearGradientFill(t *testing.T) {
	const width = 8
	red := PremulColor{R: 0xff, A: 0xff}
	blue := PremulColor{B: 0xff, A: 0xff}
	paint := makeLinearGradientPaint(width, red, blue)

	dst := image.NewRGBA(image.Rect(0, 0, width, 1))
	var z Rasterizer
	z.SetDstImage(dst, dst.Bounds(), draw.Src)

	if err := z.BeginDrawing(); err != nil {
		t.Fatalf("BeginDrawing: %v", err)
	}
	if err := z.BeginPath(0, 0); err != nil {
		t.Fatalf("BeginPath: %v", err)
	}
	for _, pt := range [][2]float32{{width, 0}, {width, 1}, {0, 1}} {
		if err := z.PathLineTo(pt[0], pt[1]); err != nil {
			t.Fatalf("PathLineTo: %v", err)
		}
	}
	if err := z.EndPath(); err != nil {
		t.Fatalf("EndPath: %v", err)
	}
	if err := z.EndDrawing(paint); err != nil {
		t.Fatalf("EndDrawing: %v", err)
	}

	first := dst.RGBAAt(0, 0)
	last := dst.RGBAAt(width-1, 0)
	if first.R <= last.R {
		t.Errorf("pixel 0's red channel (%d) should exceed pixel %d's (%d): near stop 0 should be redder", first.R, width-1, last.R)
	}
	if first.B >= last.B {
		t.Errorf("pixel 0's blue channel (%d) should be less than pixel %d's (%d): near stop 1 should be bluer", first.B, width-1, last.B)
	}
}

func TestResolveFillInvalidPaint(t *testing.T) {
	var z Rasterizer
	if _, ok := z.resolveFill(&Paint{}); ok {
		t.Errorf("resolveFill of an invalid Paint should report ok=false")
	}
}
