// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package iconvg_test

import (
	"fmt"
	"image"
	"image/draw"
	"math"

	"github.com/Hixie/iconvg"
)

func encodeNatural1(u uint32) byte {
	return byte(u << 1)
}

func encodeCoordinate4(f float32) [4]byte {
	bits := (math.Float32bits(f) &^ 3) | 3
	return [4]byte{byte(bits), byte(bits >> 8), byte(bits >> 16), byte(bits >> 24)}
}

func appendCoordinate(dst []byte, f float32) []byte {
	b := encodeCoordinate4(f)
	return append(dst, b[:]...)
}

// squareIcon builds the IconVG encoding of a single opaque black square,
// inscribed in the default [-32, +32] x [-32, +32] viewbox. The square's
// corners, at +-16 in each axis, land on exact pixel boundaries once scaled
// into a 24x24 destination rectangle (a scale factor of 0.375, times +-16,
// is +-6, an integer), so the rendered result has no partially-covered
// edge pixels to reason about.
func squareIcon() []byte {
	src := []byte{0x89, 0x49, 0x56, 0x47, encodeNatural1(0)} // Magic identifier, 0 metadata chunks.

	src = append(src, 0xC0) // Begin drawing, paint = CREG[0] (opaque black).
	src = appendCoordinate(src, -16)
	src = appendCoordinate(src, -16)

	src = append(src, 0x00) // Absolute line_to, 1 point.
	src = appendCoordinate(src, 16)
	src = appendCoordinate(src, -16)

	src = append(src, 0x00)
	src = appendCoordinate(src, 16)
	src = appendCoordinate(src, 16)

	src = append(src, 0x00)
	src = appendCoordinate(src, -16)
	src = appendCoordinate(src, 16)

	src = append(src, 0xE1) // 'z': close_path, end_drawing.
	return src
}

// Example decodes a tiny hand-built IconVG graphic (a filled square) onto a
// raster image, the same way a caller wiring a Rasterizer into an image
// pipeline would.
func Example() {
	ivgData := squareIcon()

	const width = 24
	dst := image.NewAlpha(image.Rect(0, 0, width, width))
	var z iconvg.Rasterizer
	z.SetDstImage(dst, dst.Bounds(), draw.Src)
	if err := iconvg.Decode(&z, iconvg.Rectangle{MaxX: width, MaxY: width}, ivgData, nil); err != nil {
		fmt.Println("decode error:", err)
		return
	}

	opaque, total := 0, width*width
	for _, a := range dst.Pix {
		if a == 0xff {
			opaque++
		}
	}
	fmt.Printf("%d of %d pixels fully opaque\n", opaque, total)

	// Output:
	// 144 of 576 pixels fully opaque
}
