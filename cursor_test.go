// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package iconvg

import (
	"math"
	"testing"
)

var naturalTestCases = []struct {
	in     []byte
	want   uint32
	wantOK bool
	wantN  int
}{
	{nil, 0, false, 0},
	{[]byte{0x28}, 20, true, 1},
	{[]byte{0x59}, 0, false, 0},
	{[]byte{0x59, 0x83}, 8406, true, 2},
	{[]byte{0x07, 0x00, 0x80}, 0, false, 0},
	{[]byte{0x07, 0x00, 0x80, 0x3f}, 266338305, true, 4},
}

func TestDecodeNatural(t *testing.T) {
	for _, tc := range naturalTestCases {
		d := &decoder{data: tc.in}
		got, ok := d.decodeNatural()
		if got != tc.want || ok != tc.wantOK {
			t.Errorf("in=% x: got (%v, %v), want (%v, %v)", tc.in, got, ok, tc.want, tc.wantOK)
			continue
		}
		if gotN := len(tc.in) - d.len(); ok && gotN != tc.wantN {
			t.Errorf("in=% x: consumed %d bytes, want %d", tc.in, gotN, tc.wantN)
		}
	}
}

var realTestCases = []struct {
	in    []byte
	want  float32
	wantN int
}{
	{[]byte{0x28}, 20, 1},
	{[]byte{0x59, 0x83}, 8406, 2},
	{[]byte{0x07, 0x00, 0x80, 0x3f}, 1.000000476837158203125, 4},
}

func TestDecodeReal(t *testing.T) {
	for _, tc := range realTestCases {
		d := &decoder{data: tc.in}
		got, ok := d.decodeReal()
		if !ok || got != tc.want {
			t.Errorf("in=% x: got (%v, %v), want (%v, true)", tc.in, got, ok, tc.want)
			continue
		}
		if gotN := len(tc.in) - d.len(); gotN != tc.wantN {
			t.Errorf("in=% x: consumed %d bytes, want %d", tc.in, gotN, tc.wantN)
		}
	}
}

var coordinateTestCases = []struct {
	in    []byte
	want  float32
	wantN int
}{
	{[]byte{0x8e}, 7, 1},
	{[]byte{0x81, 0x87}, 7.5, 2},
	{[]byte{0x03, 0x00, 0xf0, 0x40}, 7.5, 4},
	{[]byte{0x07, 0x00, 0xf0, 0x40}, 7.5000019073486328125, 4},
}

func TestDecodeCoordinate(t *testing.T) {
	for _, tc := range coordinateTestCases {
		d := &decoder{data: tc.in}
		got, ok := d.decodeCoordinate()
		if !ok || got != tc.want {
			t.Errorf("in=% x: got (%v, %v), want (%v, true)", tc.in, got, ok, tc.want)
			continue
		}
		if gotN := len(tc.in) - d.len(); gotN != tc.wantN {
			t.Errorf("in=% x: consumed %d bytes, want %d", tc.in, gotN, tc.wantN)
		}
	}
}

func trunc(x float32) float32 {
	u := math.Float32bits(x)
	u &^= 0x03
	return math.Float32frombits(u)
}

var zeroToOneTestCases = []struct {
	in    []byte
	want  float32
	wantN int
}{
	{[]byte{0x0a}, 1.0 / 24, 1},
	{[]byte{0x41, 0x1a}, 1.0 / 9, 2},
	{[]byte{0x63, 0x0b, 0x36, 0x3b}, trunc(1.0 / 360), 4},
}

func TestDecodeZeroToOne(t *testing.T) {
	for _, tc := range zeroToOneTestCases {
		d := &decoder{data: tc.in}
		got, ok := d.decodeZeroToOne()
		if !ok || got != tc.want {
			t.Errorf("in=% x: got (%v, %v), want (%v, true)", tc.in, got, ok, tc.want)
			continue
		}
		if gotN := len(tc.in) - d.len(); gotN != tc.wantN {
			t.Errorf("in=% x: consumed %d bytes, want %d", tc.in, gotN, tc.wantN)
		}
	}
}

func TestDecodeMagicIdentifier(t *testing.T) {
	for _, tc := range []struct {
		in     []byte
		wantOK bool
	}{
		{nil, false},
		{[]byte{0x89, 0x49, 0x56}, false},
		{[]byte{0x00, 0x49, 0x56, 0x47}, false},
		{[]byte{0x89, 0x49, 0x56, 0x47}, true},
		{[]byte{0x89, 0x49, 0x56, 0x47, 0xff}, true},
	} {
		d := &decoder{data: tc.in}
		if ok := d.decodeMagicIdentifier(); ok != tc.wantOK {
			t.Errorf("in=% x: got %v, want %v", tc.in, ok, tc.wantOK)
		}
	}
}

func TestDecoderLimit(t *testing.T) {
	d := &decoder{data: []byte{1, 2, 3, 4, 5}}
	sub := d.limit(3)
	if got, want := sub.data, []byte{1, 2, 3}; string(got) != string(want) {
		t.Errorf("limit: got % x, want % x", got, want)
	}
	if d.len() != 5 {
		t.Errorf("limit should not consume from the original decoder, got len %d, want 5", d.len())
	}

	over := d.limit(100)
	if got, want := over.data, d.data; string(got) != string(want) {
		t.Errorf("limit(100): got % x, want % x", got, want)
	}
}

func TestDecoderSkipToEnd(t *testing.T) {
	d := &decoder{data: []byte{1, 2, 3}}
	d.skipToEnd()
	if d.len() != 0 {
		t.Errorf("got len %d, want 0", d.len())
	}
}
