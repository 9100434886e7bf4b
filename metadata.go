// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package iconvg

import "math"

// OptionalInt64 is the Go equivalent of C++'s std::optional<int64_t>.
type OptionalInt64 struct {
	Value    int64
	HasValue bool
}

// DecodeOptions holds the optional arguments to Decode.
type DecodeOptions struct {
	// HeightInPixels, if it HasValue, is the rasterization height in
	// pixels, which can affect whether IconVG paths meet Level of Detail
	// thresholds.
	//
	// If it does not have a value, the height (in pixels) is set to the
	// height (in dst coordinate space units) of the dstRect argument to
	// Decode, clamped to at most 1<<20.
	HeightInPixels OptionalInt64

	// Palette, if non-nil, is the custom palette used for rendering. If
	// nil, the IconVG file's suggested palette is used instead.
	Palette *Palette
}

const maxMetadataID = 1

func decodeMetadataViewbox(d *decoder) (Rectangle, bool) {
	var r Rectangle
	var ok bool
	if r.MinX, ok = d.decodeCoordinate(); !ok {
		return Rectangle{}, false
	}
	if r.MinY, ok = d.decodeCoordinate(); !ok {
		return Rectangle{}, false
	}
	if r.MaxX, ok = d.decodeCoordinate(); !ok {
		return Rectangle{}, false
	}
	if r.MaxY, ok = d.decodeCoordinate(); !ok {
		return Rectangle{}, false
	}
	if math.IsInf(float64(r.MinX), -1) || !(r.MinX <= r.MaxX) || math.IsInf(float64(r.MaxX), +1) ||
		math.IsInf(float64(r.MinY), -1) || !(r.MinY <= r.MaxY) || math.IsInf(float64(r.MaxY), +1) {
		return Rectangle{}, false
	}
	return r, true
}

func decodeMetadataSuggestedPalette(d *decoder) (Palette, bool) {
	if d.len() == 0 {
		return Palette{}, false
	}
	spec := d.data[0]
	d.data = d.data[1:]

	n := int(1 + (spec & 0x3F))
	bytesPerElem := int(1 + (spec >> 6))
	if d.len() != n*bytesPerElem {
		return Palette{}, false
	}

	dst := DefaultPalette
	switch bytesPerElem {
	case 1:
		for i := 0; i < n; i++ {
			dst[i] = resolveSuggestedPaletteOneByteColor(d.data[i])
		}
	case 2:
		for i := 0; i < n; i++ {
			dst[i] = nibble2Color(d.data[2*i], d.data[2*i+1])
		}
	case 3:
		for i := 0; i < n; i++ {
			p := d.data[3*i:]
			dst[i] = PremulColor{R: p[0], G: p[1], B: p[2], A: 0xFF}
		}
	case 4:
		for i := 0; i < n; i++ {
			p := d.data[4*i:]
			dst[i] = PremulColor{R: p[0], G: p[1], B: p[2], A: p[3]}
		}
	}
	d.skipToEnd()
	return dst, true
}

// metadataResult holds the metadata a full decode extracts before running
// the bytecode interpreter.
type metadataResult struct {
	viewbox       Rectangle
	customPalette Palette
}

// decodeMetadata consumes the magic identifier and every metadata chunk
// from d, dispatching MID 0 (ViewBox) and MID 1 (Suggested Palette) chunks.
// If onlyViewbox is true, the suggested-palette chunk is validated but not
// decoded into the result (used by DecodeViewbox, which has no use for the
// palette).
func decodeMetadata(d *decoder, onlyViewbox bool) (metadataResult, error) {
	result := metadataResult{
		viewbox:       DefaultViewBox,
		customPalette: DefaultPalette,
	}
	haveViewbox := false

	if !d.decodeMagicIdentifier() {
		return result, ErrBadMagicIdentifier
	}
	numChunks, ok := d.decodeNatural()
	if !ok {
		return result, ErrBadMetadata
	}

	previousMID := int64(-1)
	for ; numChunks > 0; numChunks-- {
		chunkLen, ok := d.decodeNatural()
		if !ok || chunkLen > uint32(d.len()) {
			return result, ErrBadMetadata
		}
		chunk := d.limit(chunkLen)
		d.data = d.data[chunkLen:]

		mid, ok := chunk.decodeNatural()
		if !ok {
			return result, ErrBadMetadata
		}
		if previousMID >= int64(mid) {
			return result, ErrBadMetadataIDOrder
		}

		switch mid {
		case 0: // ViewBox.
			vb, ok := decodeMetadataViewbox(&chunk)
			if !ok || chunk.len() != 0 {
				return result, ErrBadMetadataViewBox
			}
			result.viewbox = vb
			haveViewbox = true

		case 1: // Suggested Palette.
			pal, ok := decodeMetadataSuggestedPalette(&chunk)
			if !ok || chunk.len() != 0 {
				return result, ErrBadMetadataSuggestedPalette
			}
			if !onlyViewbox {
				result.customPalette = pal
			}

		default:
			return result, ErrBadMetadata
		}
		previousMID = int64(mid)
	}

	if !haveViewbox {
		result.viewbox = DefaultViewBox
	}
	return result, nil
}

// DecodeViewbox returns the ViewBox metadata from src, an IconVG-formatted
// byte slice, without requiring a Canvas or running the bytecode
// interpreter. If src has no explicit ViewBox chunk, DecodeViewbox returns
// DefaultViewBox.
func DecodeViewbox(src []byte) (Rectangle, error) {
	d := &decoder{data: src}
	result, err := decodeMetadata(d, true)
	if err != nil {
		return Rectangle{}, err
	}
	return result.viewbox, nil
}
