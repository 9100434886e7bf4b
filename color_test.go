// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package iconvg

import "testing"

func TestResolveOneByteColorBuiltIn(t *testing.T) {
	for _, tc := range []struct {
		u    uint8
		want PremulColor
	}{
		{0x00, PremulColor{0x00, 0x00, 0x00, 0xff}},
		{0x30, PremulColor{0x40, 0xff, 0xc0, 0xff}},
		{0x7c, PremulColor{0xff, 0xff, 0xff, 0xff}},
		{0x7d, PremulColor{0xc0, 0xc0, 0xc0, 0xc0}},
		{0x7e, PremulColor{0x80, 0x80, 0x80, 0x80}},
		{0x7f, PremulColor{0x00, 0x00, 0x00, 0x00}},
	} {
		got := resolveOneByteColor(tc.u, &DefaultPalette, (*[64]PremulColor)(&DefaultPalette))
		if got != tc.want {
			t.Errorf("u=0x%02x: got %+v, want %+v", tc.u, got, tc.want)
		}
	}
}

func TestResolveOneByteColorCustomPalette(t *testing.T) {
	var pal Palette
	pal[0] = PremulColor{1, 2, 3, 4}
	pal[0x3f] = PremulColor{5, 6, 7, 8}

	if got, want := resolveOneByteColor(0x80, &pal, (*[64]PremulColor)(&DefaultPalette)), pal[0]; got != want {
		t.Errorf("u=0x80: got %+v, want %+v", got, want)
	}
	if got, want := resolveOneByteColor(0xbf, &pal, (*[64]PremulColor)(&DefaultPalette)), pal[0x3f]; got != want {
		t.Errorf("u=0xbf: got %+v, want %+v", got, want)
	}
}

func TestResolveOneByteColorCReg(t *testing.T) {
	var creg [64]PremulColor
	creg[0] = PremulColor{9, 10, 11, 12}
	creg[0x3f] = PremulColor{13, 14, 15, 16}

	if got, want := resolveOneByteColor(0xc0, &DefaultPalette, &creg), creg[0]; got != want {
		t.Errorf("u=0xc0: got %+v, want %+v", got, want)
	}
	if got, want := resolveOneByteColor(0xff, &DefaultPalette, &creg), creg[0x3f]; got != want {
		t.Errorf("u=0xff: got %+v, want %+v", got, want)
	}
}

func TestResolveSuggestedPaletteOneByteColor(t *testing.T) {
	if got, want := resolveSuggestedPaletteOneByteColor(0x30), (PremulColor{0x40, 0xff, 0xc0, 0xff}); got != want {
		t.Errorf("got %+v, want %+v", got, want)
	}
	if got, want := resolveSuggestedPaletteOneByteColor(0x80), (PremulColor{A: 0xff}); got != want {
		t.Errorf("got %+v, want %+v", got, want)
	}
}

func TestNibble2Color(t *testing.T) {
	got := nibble2Color(0x12, 0x34)
	want := PremulColor{R: 0x11, G: 0x22, B: 0x33, A: 0x44}
	if got != want {
		t.Errorf("got %+v, want %+v", got, want)
	}
}

func TestBlendOneByteColors(t *testing.T) {
	p := PremulColor{R: 0x00, G: 0x00, B: 0x00, A: 0xff}
	q := PremulColor{R: 0xff, G: 0xff, B: 0xff, A: 0xff}

	if got, want := blendOneByteColors(0x00, p, q), p; got != want {
		t.Errorf("qBlend=0: got %+v, want %+v", got, want)
	}
	if got, want := blendOneByteColors(0xff, p, q), q; got != want {
		t.Errorf("qBlend=255: got %+v, want %+v", got, want)
	}
}

func TestAsNonPremul(t *testing.T) {
	c := PremulColor{R: 1, G: 2, B: 3, A: 4}
	got := c.asNonPremul()
	want := NonPremulColor{R: 63, G: 127, B: 191, A: 4}
	if got != want {
		t.Errorf("got %+v, want %+v", got, want)
	}
}
