// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package iconvg

import "math"

// decoder is a cursor over an encoded IconVG byte stream. Its decodeXxx
// methods consume bytes from the front and report whether there were enough
// well-formed bytes to do so.
//
// A decoder only ever shrinks: advancing past n bytes drops them for good.
// Sub-ranges (such as a single metadata chunk) are modeled by slicing data
// down to the chunk's length, decoding from that, and then discarding it —
// the caller resumes from its own cursor, which it has separately advanced
// past the whole chunk.
type decoder struct {
	data []byte
}

func (d *decoder) len() int { return len(d.data) }

// limit returns a decoder restricted to at most n of self's remaining
// bytes, without consuming them from self.
func (d *decoder) limit(n uint32) decoder {
	m := uint32(len(d.data))
	if n < m {
		m = n
	}
	return decoder{data: d.data[:m]}
}

// skipToEnd discards all of self's remaining bytes.
func (d *decoder) skipToEnd() { d.data = d.data[len(d.data):] }

func (d *decoder) decodeMagicIdentifier() bool {
	if len(d.data) < 4 || d.data[0] != 0x89 || d.data[1] != 0x49 || d.data[2] != 0x56 || d.data[3] != 0x47 {
		return false
	}
	d.data = d.data[4:]
	return true
}

func (d *decoder) decodeNatural() (u uint32, ok bool) {
	if len(d.data) < 1 {
		return 0, false
	}
	v := d.data[0]
	switch {
	case v&0x01 == 0:
		u, d.data = uint32(v)>>1, d.data[1:]
		return u, true
	case v&0x02 == 0:
		if len(d.data) < 2 {
			return 0, false
		}
		y := uint32(d.data[0]) | uint32(d.data[1])<<8
		u, d.data = y>>2, d.data[2:]
		return u, true
	default:
		if len(d.data) < 4 {
			return 0, false
		}
		y := uint32(d.data[0]) | uint32(d.data[1])<<8 | uint32(d.data[2])<<16 | uint32(d.data[3])<<24
		u, d.data = y>>2, d.data[4:]
		return u, true
	}
}

func (d *decoder) decodeReal() (f float32, ok bool) {
	if len(d.data) < 1 {
		return 0, false
	}
	v := d.data[0]
	switch {
	case v&0x01 == 0:
		u, _ := d.decodeNatural()
		return float32(u), true
	case v&0x02 == 0:
		if len(d.data) < 2 {
			return 0, false
		}
		u, _ := d.decodeNatural()
		return float32(u), true
	default:
		if len(d.data) < 4 {
			return 0, false
		}
		y := uint32(d.data[0]) | uint32(d.data[1])<<8 | uint32(d.data[2])<<16 | uint32(d.data[3])<<24
		d.data = d.data[4:]
		// TODO: reject NaNs?
		return math.Float32frombits(y &^ 3), true
	}
}

func (d *decoder) decodeCoordinate() (f float32, ok bool) {
	if len(d.data) < 1 {
		return 0, false
	}
	v := d.data[0]
	switch {
	case v&0x01 == 0:
		u, _ := d.decodeNatural()
		return float32(int32(u) - 64), true
	case v&0x02 == 0:
		if len(d.data) < 2 {
			return 0, false
		}
		u, _ := d.decodeNatural()
		return float32(int32(u)-64*128) / 64, true
	default:
		if len(d.data) < 4 {
			return 0, false
		}
		y := uint32(d.data[0]) | uint32(d.data[1])<<8 | uint32(d.data[2])<<16 | uint32(d.data[3])<<24
		f = math.Float32frombits(y &^ 3)
		if f != f { // Reject NaN.
			return 0, false
		}
		d.data = d.data[4:]
		return f, true
	}
}

func (d *decoder) decodeZeroToOne() (f float32, ok bool) {
	if len(d.data) < 1 {
		return 0, false
	}
	v := d.data[0]
	switch {
	case v&0x01 == 0:
		u, _ := d.decodeNatural()
		return float32(u) / 120, true
	case v&0x02 == 0:
		if len(d.data) < 2 {
			return 0, false
		}
		u, _ := d.decodeNatural()
		return float32(u) / 15120, true
	default:
		if len(d.data) < 4 {
			return 0, false
		}
		y := uint32(d.data[0]) | uint32(d.data[1])<<8 | uint32(d.data[2])<<16 | uint32(d.data[3])<<24
		d.data = d.data[4:]
		return math.Float32frombits(y &^ 3), true
	}
}
