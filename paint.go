// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package iconvg

// PaintType is what type of paint a Paint value holds.
type PaintType uint8

const (
	PaintTypeInvalid PaintType = iota
	PaintTypeFlatColor
	PaintTypeLinearGradient
	PaintTypeRadialGradient
)

// GradientSpread says how a gradient is painted for offsets outside of the
// 0.0 ..= 1.0 range.
type GradientSpread uint8

const (
	// GradientSpreadNone means offsets outside [0, 1] map to transparent
	// black.
	GradientSpreadNone GradientSpread = iota
	// GradientSpreadPad means offsets below 0 and above 1 map to the colors
	// that 0 and 1 would map to.
	GradientSpreadPad
	// GradientSpreadReflect means the offset mapping is reflected
	// start-to-end, end-to-start, start-to-end, etc.
	GradientSpreadReflect
	// GradientSpreadRepeat means the offset mapping is repeated
	// start-to-end, start-to-end, start-to-end, etc.
	GradientSpreadRepeat
)

// Paint is passed to a Canvas's EndDrawing method. It is either a flat color
// or a linear or radial gradient.
//
// A color register's alpha-premultiplied value is nonsensical (its red,
// green or blue channel value exceeds its alpha channel value) if it is a
// gradient. Specifically, any color register whose alpha is zero but whose
// blue channel is at least 128 is a gradient, and its remaining bits are
// reinterpreted:
//
//   - the low 6 bits of red are NSTOPS, the number of stops.
//   - the low 6 bits of green are CBASE, the CREG index of the first stop's
//     color.
//   - the high 2 bits of green are the GradientSpread.
//   - the low 6 bits of blue are NBASE, the NREG index of the first stop's
//     offset.
//   - the 0x40 bit of blue is the gradient shape (0 linear, 1 radial).
//
// The six numbers NREG[NBASE-6] ..= NREG[NBASE-1] form the affine
// transformation matrix from graphic (viewBox) coordinate space to gradient
// (pattern) coordinate space.
type Paint struct {
	rgba          PremulColor
	customPalette *Palette
	creg          *[64]PremulColor
	nreg          *[64]float32

	d2sScaleX, d2sBiasX float64
	d2sScaleY, d2sBiasY float64
}

func (p *Paint) isGradient() bool {
	return p.rgba.A == 0 && p.rgba.B >= 128
}

// Type returns what type of paint self is.
func (p *Paint) Type() PaintType {
	if !p.isGradient() {
		if p.rgba == (PremulColor{}) {
			return PaintTypeInvalid
		}
		return PaintTypeFlatColor
	}
	if p.rgba.B&0x40 != 0 {
		return PaintTypeRadialGradient
	}
	return PaintTypeLinearGradient
}

// FlatColorAsPremulColor returns self's color (as alpha-premultiplied),
// assuming self is a flat color. If self is not a flat color, the result
// may be nonsensical.
func (p *Paint) FlatColorAsPremulColor() PremulColor { return p.rgba }

// FlatColorAsNonPremulColor returns self's color (as non-alpha-
// premultiplied), assuming self is a flat color. If self is not a flat
// color, the result may be nonsensical.
func (p *Paint) FlatColorAsNonPremulColor() NonPremulColor { return p.rgba.asNonPremul() }

func (p *Paint) nstops() uint32 { return uint32(p.rgba.R & 0x3F) }
func (p *Paint) cbase() uint32  { return uint32(p.rgba.G & 0x3F) }
func (p *Paint) nbase() uint32  { return uint32(p.rgba.B & 0x3F) }

// GradientSpread returns how self is painted for offsets outside of the
// 0.0 ..= 1.0 range. If self is not a gradient, the result is still a valid
// enum value but otherwise nonsensical.
func (p *Paint) GradientSpread() GradientSpread {
	return GradientSpread(p.rgba.G >> 6)
}

// GradientNumberOfStops returns self's number of gradient stops, in the
// range 0 ..= 63 inclusive. If self is not a gradient, the result is still
// less than 64 but otherwise nonsensical.
func (p *Paint) GradientNumberOfStops() uint32 { return p.nstops() }

// GradientStopColorAsPremulColor returns the color (as alpha-premultiplied)
// of the i'th gradient stop, if i < GradientNumberOfStops().
func (p *Paint) GradientStopColorAsPremulColor(i uint32) PremulColor {
	return p.creg[(p.cbase()+i)&0x3F]
}

// GradientStopColorAsNonPremulColor returns the color (as non-alpha-
// premultiplied) of the i'th gradient stop, if i < GradientNumberOfStops().
func (p *Paint) GradientStopColorAsNonPremulColor(i uint32) NonPremulColor {
	return p.GradientStopColorAsPremulColor(i).asNonPremul()
}

// GradientStopOffset returns the offset (in the range 0.0 ..= 1.0 inclusive)
// of the i'th gradient stop, if i < GradientNumberOfStops().
func (p *Paint) GradientStopOffset(i uint32) float32 {
	return p.nreg[(p.nbase()+i)&0x3F]
}

// GradientTransformationMatrix returns the affine transformation matrix
// that converts from dst coordinate space (also known as user or canvas
// coordinate space) to pattern coordinate space (also known as paint or
// gradient coordinate space).
//
// Pattern coordinate space is where linear gradients always range from x=0
// to x=1 and radial gradients are always center=(0,0) and radius=1.
func (p *Paint) GradientTransformationMatrix() Matrix2x3 {
	nb := p.nbase()
	a := float64(p.nreg[(nb-6)&0x3F])
	b := float64(p.nreg[(nb-5)&0x3F])
	c := float64(p.nreg[(nb-4)&0x3F])
	d := float64(p.nreg[(nb-3)&0x3F])
	e := float64(p.nreg[(nb-2)&0x3F])
	f := float64(p.nreg[(nb-1)&0x3F])

	// Compose the graphic(src)->gradient matrix [a b c; d e f] with the
	// dst->src transform (a diagonal scale-and-bias) to get the dst->
	// gradient matrix that callers actually want.
	return Matrix2x3{Elems: [2][3]float64{
		{a * p.d2sScaleX, b * p.d2sScaleY, a*p.d2sBiasX + b*p.d2sBiasY + c},
		{d * p.d2sScaleX, e * p.d2sScaleY, d*p.d2sBiasX + e*p.d2sBiasY + f},
	}}
}
