// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package iconvg

import (
	"image"
	"image/color"
	"image/draw"

	"golang.org/x/image/math/f32"
	"golang.org/x/image/math/f64"
	"golang.org/x/image/vector"

	"github.com/Hixie/iconvg/internal/gradient"
)

// Rasterizer is a Canvas that draws an IconVG graphic onto a raster image,
// including flat-color and gradient fills.
//
// The zero value is usable, in that it has no raster image to draw onto, so
// that decoding with this Canvas checks the encoded form for errors without
// painting anything. Call SetDstImage to set the raster image before
// decoding.
//
// Unlike the old per-command abs/rel API this type used to implement,
// Decode's interpreter already resolves every coordinate (and every
// implicit smooth-curve control point) to dst-image space before it calls
// any Rasterizer method, so Rasterizer itself holds no transform state.
type Rasterizer struct {
	z vector.Rasterizer

	dst    draw.Image
	r      image.Rectangle
	drawOp draw.Op

	// disabled is set by BeginDrawing when there is no dst image to paint
	// onto, so that the rest of a drawing's calls become no-ops.
	disabled bool
}

// SetDstImage sets the Rasterizer to draw onto a destination image, given by
// dst and r, with the given compositing operator.
//
// The IconVG graphic does not have a fixed size in pixels; Decode's caller
// picks dstRect to fit r, and every coordinate the Rasterizer receives is
// already scaled into r's coordinate space.
func (z *Rasterizer) SetDstImage(dst draw.Image, r image.Rectangle, drawOp draw.Op) {
	z.dst = dst
	if r.Empty() {
		r = image.Rectangle{}
	}
	z.r = r
	z.drawOp = drawOp
}

func (z *Rasterizer) BeginDecode(dstRect Rectangle) error { return nil }

func (z *Rasterizer) EndDecode(err error, numBytesConsumed, numBytesRemaining int) error {
	return err
}

func (z *Rasterizer) BeginDrawing() error {
	z.disabled = z.dst == nil || z.r.Empty()
	if z.disabled {
		return nil
	}
	z.z.Reset(z.r.Dx(), z.r.Dy())
	z.z.DrawOp = z.drawOp
	return nil
}

// EndDrawing rasterizes and composites every path accumulated since the
// matching BeginDrawing call, filled according to paint.
func (z *Rasterizer) EndDrawing(paint *Paint) error {
	if z.disabled {
		return nil
	}
	fill, ok := z.resolveFill(paint)
	if !ok {
		return nil
	}
	z.z.Draw(z.dst, z.r, fill, image.Point{})
	return nil
}

func (z *Rasterizer) resolveFill(paint *Paint) (image.Image, bool) {
	switch paint.Type() {
	case PaintTypeFlatColor:
		c := paint.FlatColorAsPremulColor()
		return &image.Uniform{C: color.RGBA{R: c.R, G: c.G, B: c.B, A: c.A}}, true

	case PaintTypeLinearGradient, PaintTypeRadialGradient:
		shape := gradient.ShapeLinear
		if paint.Type() == PaintTypeRadialGradient {
			shape = gradient.ShapeRadial
		}
		n := paint.GradientNumberOfStops()
		stops := make([]gradient.Stop, n)
		for i := uint32(0); i < n; i++ {
			c := paint.GradientStopColorAsPremulColor(i)
			stops[i] = gradient.Stop{
				Offset: float64(paint.GradientStopOffset(i)),
				RGBA64: color.RGBA64{
					R: uint16(c.R) * 0x101,
					G: uint16(c.G) * 0x101,
					B: uint16(c.B) * 0x101,
					A: uint16(c.A) * 0x101,
				},
			}
		}
		m := paint.GradientTransformationMatrix()
		var g gradient.Gradient
		g.Init(shape, f64.Aff3{
			m.Elems[0][0], m.Elems[0][1], m.Elems[0][2],
			m.Elems[1][0], m.Elems[1][1], m.Elems[1][2],
		}, gradient.Spread(paint.GradientSpread()), stops)
		return &g, true

	default: // PaintTypeInvalid: Decode never starts a drawing with one, but
		// a Canvas should still behave sanely if called directly.
		return nil, false
	}
}

func (z *Rasterizer) BeginPath(x0, y0 float32) error {
	if z.disabled {
		return nil
	}
	z.z.MoveTo(f32.Vec2{x0, y0})
	return nil
}

func (z *Rasterizer) EndPath() error {
	if z.disabled {
		return nil
	}
	z.z.ClosePath()
	return nil
}

func (z *Rasterizer) PathLineTo(x1, y1 float32) error {
	if z.disabled {
		return nil
	}
	z.z.LineTo(f32.Vec2{x1, y1})
	return nil
}

func (z *Rasterizer) PathQuadTo(x1, y1, x2, y2 float32) error {
	if z.disabled {
		return nil
	}
	z.z.QuadTo(f32.Vec2{x1, y1}, f32.Vec2{x2, y2})
	return nil
}

func (z *Rasterizer) PathCubeTo(x1, y1, x2, y2, x3, y3 float32) error {
	if z.disabled {
		return nil
	}
	z.z.CubeTo(f32.Vec2{x1, y1}, f32.Vec2{x2, y2}, f32.Vec2{x3, y3})
	return nil
}

func (z *Rasterizer) OnMetadataViewBox(viewbox Rectangle) error { return nil }

func (z *Rasterizer) OnMetadataSuggestedPalette(suggestedPalette *Palette) error { return nil }
