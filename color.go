// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package iconvg

// NonPremulColor is a non-alpha-premultiplied RGBA color. Non-alpha-
// premultiplication means that {0x00, 0xFF, 0x00, 0xC0} represents a
// 75%-opaque, fully saturated green.
type NonPremulColor struct {
	R, G, B, A uint8
}

// PremulColor is an alpha-premultiplied RGBA color. Alpha-premultiplication
// means that {0x00, 0xC0, 0x00, 0xC0} represents a 75%-opaque, fully
// saturated green.
type PremulColor struct {
	R, G, B, A uint8
}

// Palette is a list of 64 alpha-premultiplied RGBA colors.
type Palette [64]PremulColor

// DefaultPalette is the palette assumed when an IconVG graphic's metadata
// does not contain a suggested palette: 64 opaque black colors.
var DefaultPalette = Palette{}

func init() {
	for i := range DefaultPalette {
		DefaultPalette[i] = PremulColor{A: 0xFF}
	}
}

// oneByteColors is the built-in table used to resolve one-byte color values
// in the range [0, 128). Byte values in [0, 125) encode RGB via the base-5
// digits of the byte value (digits 0, 1, 2, 3, 4 map to 0x00, 0x40, 0x80,
// 0xC0, 0xFF), with alpha 0xFF. Byte values 125, 126 and 127 are special:
// they map to 0xC0C0C0C0, 0x80808080 and 0x00000000 respectively (all
// already alpha-premultiplied, so premultiplied equals non-premultiplied for
// these three).
var oneByteColors = buildOneByteColors()

var base5Digit = [5]uint8{0x00, 0x40, 0x80, 0xC0, 0xFF}

func buildOneByteColors() [128]PremulColor {
	var t [128]PremulColor
	for u := 0; u < 125; u++ {
		d0 := u / 25
		d1 := (u / 5) % 5
		d2 := u % 5
		t[u] = PremulColor{R: base5Digit[d0], G: base5Digit[d1], B: base5Digit[d2], A: 0xFF}
	}
	t[125] = PremulColor{R: 0xC0, G: 0xC0, B: 0xC0, A: 0xC0}
	t[126] = PremulColor{R: 0x80, G: 0x80, B: 0x80, A: 0x80}
	t[127] = PremulColor{R: 0x00, G: 0x00, B: 0x00, A: 0x00}
	return t
}

// resolveOneByteColor resolves a one-byte color value u in the full [0, 256)
// range: the built-in table for [0, 128), the custom palette for [128, 192)
// (indexed by u-128), and CREG for [192, 256) (indexed by u-192).
func resolveOneByteColor(u uint8, customPalette *Palette, creg *[64]PremulColor) PremulColor {
	switch {
	case u < 0x80:
		return oneByteColors[u]
	case u < 0xC0:
		return customPalette[u-0x80]
	default:
		return creg[u-0xC0]
	}
}

// resolveSuggestedPaletteOneByteColor resolves a one-byte color value that
// appears inside a suggested-palette metadata chunk. Unlike
// resolveOneByteColor, values at or above 0x80 have no custom palette or
// CREG to refer to yet, so they default to opaque black.
func resolveSuggestedPaletteOneByteColor(u uint8) PremulColor {
	if u < 0x80 {
		return oneByteColors[u]
	}
	return PremulColor{A: 0xFF}
}

func nibble2Color(hi, lo uint8) PremulColor {
	return PremulColor{
		R: 0x11 * (hi >> 4),
		G: 0x11 * (hi & 0x0F),
		B: 0x11 * (lo >> 4),
		A: 0x11 * (lo & 0x0F),
	}
}

func blendOneByteColors(qBlend uint8, p, q PremulColor) PremulColor {
	pBlend := 255 - uint32(qBlend)
	qb := uint32(qBlend)
	blend := func(pc, qc uint8) uint8 {
		return uint8(((pBlend * uint32(pc)) + (qb * uint32(qc)) + 128) / 255)
	}
	return PremulColor{
		R: blend(p.R, q.R),
		G: blend(p.G, q.G),
		B: blend(p.B, q.B),
		A: blend(p.A, q.A),
	}
}

func (c PremulColor) asNonPremul() NonPremulColor {
	switch c.A {
	case 0x00:
		return NonPremulColor{}
	case 0xFF:
		return NonPremulColor{R: c.R, G: c.G, B: c.B, A: c.A}
	}
	a := uint32(c.A)
	unpremul := func(x uint8) uint8 {
		if v := uint32(x) * 0xFF / a; v < 0xFF {
			return uint8(v)
		}
		return 0xFF
	}
	return NonPremulColor{R: unpremul(c.R), G: unpremul(c.G), B: unpremul(c.B), A: c.A}
}
