// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package iconvg

import (
	"math"
	"testing"
)

var (
	_ Canvas = (*Rasterizer)(nil)
	_ Canvas = NoOpCanvas{}
	_ Canvas = brokenCanvas{}
)

func encodeNatural1(u uint32) byte {
	if u >= 128 {
		panic("u out of range for a 1 byte natural number")
	}
	return byte(u << 1)
}

func encodeFloat4(f float32) [4]byte {
	bits := (math.Float32bits(f) &^ 3) | 3
	return [4]byte{byte(bits), byte(bits >> 8), byte(bits >> 16), byte(bits >> 24)}
}

func appendFloat4(dst []byte, f float32) []byte {
	b := encodeFloat4(f)
	return append(dst, b[:]...)
}

func magicAndNumChunks(numChunks uint32) []byte {
	return []byte{0x89, 0x49, 0x56, 0x47, encodeNatural1(numChunks)}
}

func viewboxChunk(minX, minY, maxX, maxY float32) []byte {
	body := []byte{encodeNatural1(0)} // MID 0: ViewBox.
	body = appendFloat4(body, minX)
	body = appendFloat4(body, minY)
	body = appendFloat4(body, maxX)
	body = appendFloat4(body, maxY)
	return append([]byte{encodeNatural1(uint32(len(body)))}, body...)
}

func suggestedPaletteChunk1Byte(u uint8) []byte {
	body := []byte{encodeNatural1(1), 0x00, u} // MID 1, spec byte (n=1, bpe=1), 1 color byte.
	return append([]byte{encodeNatural1(uint32(len(body)))}, body...)
}

// recordingCanvas wraps NoOpCanvas, logging every BeginDrawing, BeginPath,
// EndPath and EndDrawing call it receives so tests can assert on the exact
// sequence of those calls that Decode produces. Its other methods are
// NoOpCanvas's and are not logged.
type recordingCanvas struct {
	NoOpCanvas
	calls     []string
	gotPaints []PaintType
}

func (r *recordingCanvas) BeginDrawing() error {
	r.calls = append(r.calls, "BeginDrawing")
	return nil
}

func (r *recordingCanvas) EndDrawing(p *Paint) error {
	r.calls = append(r.calls, "EndDrawing")
	r.gotPaints = append(r.gotPaints, p.Type())
	return nil
}

func (r *recordingCanvas) BeginPath(x0, y0 float32) error {
	r.calls = append(r.calls, "BeginPath")
	return nil
}

func (r *recordingCanvas) EndPath() error {
	r.calls = append(r.calls, "EndPath")
	return nil
}

func TestDecodeEmptyFileIsBadMagic(t *testing.T) {
	if err := Decode(nil, DefaultViewBox, nil, nil); err != ErrBadMagicIdentifier {
		t.Errorf("got %v, want %v", err, ErrBadMagicIdentifier)
	}
}

func TestDecodeTruncatedMagicIsBadMagic(t *testing.T) {
	src := []byte{0x89, 0x49, 0x56}
	if err := Decode(nil, DefaultViewBox, src, nil); err != ErrBadMagicIdentifier {
		t.Errorf("got %v, want %v", err, ErrBadMagicIdentifier)
	}
}

func TestDecodeMinimalFileSucceeds(t *testing.T) {
	src := magicAndNumChunks(0)
	c := &recordingCanvas{}
	if err := Decode(c, DefaultViewBox, src, nil); err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if len(c.calls) != 0 {
		t.Errorf("got %d recorded drawing calls, want 0: %v", len(c.calls), c.calls)
	}
}

func TestDecodeViewBoxOverride(t *testing.T) {
	src := append(magicAndNumChunks(1), viewboxChunk(-10, -20, 30, 40)...)

	vb, err := DecodeViewbox(src)
	if err != nil {
		t.Fatalf("DecodeViewbox: %v", err)
	}
	want := Rectangle{MinX: -10, MinY: -20, MaxX: 30, MaxY: 40}
	if vb != want {
		t.Errorf("got %+v, want %+v", vb, want)
	}

	c := &recordingCanvas{}
	if err := Decode(c, DefaultViewBox, src, nil); err != nil {
		t.Fatalf("Decode: %v", err)
	}
}

func TestDecodeReversedMetadataIDsFail(t *testing.T) {
	src := magicAndNumChunks(2)
	src = append(src, suggestedPaletteChunk1Byte(0)...) // MID 1.
	src = append(src, viewboxChunk(-1, -1, 1, 1)...)     // MID 0, out of order.
	if err := Decode(nil, DefaultViewBox, src, nil); err != ErrBadMetadataIDOrder {
		t.Errorf("got %v, want %v", err, ErrBadMetadataIDOrder)
	}
}

func TestDecodeBadStylingOpcode(t *testing.T) {
	src := append(magicAndNumChunks(0), 0xFF)
	if err := Decode(nil, DefaultViewBox, src, nil); err != ErrBadStylingOpcode {
		t.Errorf("got %v, want %v", err, ErrBadStylingOpcode)
	}
}

// minimalDrawing returns a bytecode sequence that begins a one-point path at
// (x, y) using CREG[0] (the default palette's opaque black) as the paint,
// and immediately closes it.
func minimalDrawing(x, y float32) []byte {
	body := []byte{0xC0} // Begin drawing, using CREG[0] as the paint.
	body = appendFloat4(body, x)
	body = appendFloat4(body, y)
	body = append(body, 0xE1) // 'z': close_path, end_drawing.
	return body
}

func TestDecodeMinimalDrawing(t *testing.T) {
	src := append(magicAndNumChunks(0), minimalDrawing(1, 2)...)
	c := &recordingCanvas{}
	if err := Decode(c, Rectangle{MaxX: 100, MaxY: 100}, src, nil); err != nil {
		t.Fatalf("Decode: %v", err)
	}
	want := []string{"BeginDrawing", "BeginPath", "EndPath", "EndDrawing"}
	if len(c.calls) != len(want) {
		t.Fatalf("got %v, want %v", c.calls, want)
	}
	for i := range want {
		if c.calls[i] != want[i] {
			t.Errorf("call %d: got %q, want %q", i, c.calls[i], want[i])
		}
	}
	if len(c.gotPaints) != 1 || c.gotPaints[0] != PaintTypeFlatColor {
		t.Errorf("got paints %v, want [FlatColor]", c.gotPaints)
	}
}

func TestDecodeBadDrawingOpcode(t *testing.T) {
	src := magicAndNumChunks(0)
	src = append(src, 0xC0)
	src = appendFloat4(src, 0)
	src = appendFloat4(src, 0)
	src = append(src, 0xEA) // Not a recognized drawing or singleton opcode.
	if err := Decode(nil, DefaultViewBox, src, nil); err != ErrBadDrawingOpcode {
		t.Errorf("got %v, want %v", err, ErrBadDrawingOpcode)
	}
}

func TestDecodePathUnfinished(t *testing.T) {
	src := magicAndNumChunks(0)
	src = append(src, 0xC0)
	src = appendFloat4(src, 0)
	src = appendFloat4(src, 0)
	// No opcode follows: the drawing is left unfinished.
	if err := Decode(nil, DefaultViewBox, src, nil); err != ErrBadPathUnfinished {
		t.Errorf("got %v, want %v", err, ErrBadPathUnfinished)
	}
}

func TestDecodeLevelOfDetailGating(t *testing.T) {
	src := magicAndNumChunks(0)
	src = append(src, 0xC7) // Set LOD bounds.
	src = appendFloat4(src, 100)
	src = appendFloat4(src, 200)
	src = append(src, minimalDrawing(1, 2)...)

	for _, tc := range []struct {
		height   int64
		wantDraw bool
	}{
		{height: 50, wantDraw: false},
		{height: 150, wantDraw: true},
		{height: 200, wantDraw: false}, // lod1 is exclusive.
	} {
		c := &recordingCanvas{}
		opts := &DecodeOptions{HeightInPixels: OptionalInt64{Value: tc.height, HasValue: true}}
		if err := Decode(c, Rectangle{MaxX: 100, MaxY: 100}, src, opts); err != nil {
			t.Fatalf("height %d: Decode: %v", tc.height, err)
		}
		gotDraw := len(c.calls) != 0
		if gotDraw != tc.wantDraw {
			t.Errorf("height %d: got drawn=%v, want %v (calls %v)", tc.height, gotDraw, tc.wantDraw, c.calls)
		}
	}
}

func TestDecodeViewboxDefaultsWhenAbsent(t *testing.T) {
	vb, err := DecodeViewbox(magicAndNumChunks(0))
	if err != nil {
		t.Fatalf("DecodeViewbox: %v", err)
	}
	if vb != DefaultViewBox {
		t.Errorf("got %+v, want %+v", vb, DefaultViewBox)
	}
}

func TestIsFileFormatError(t *testing.T) {
	if !IsFileFormatError(ErrBadMagicIdentifier) {
		t.Errorf("ErrBadMagicIdentifier should be a file format error")
	}
	if IsFileFormatError(ErrInvalidPaintType) {
		t.Errorf("ErrInvalidPaintType should not be a file format error")
	}
	if IsFileFormatError(ErrInvalidBackendNotEnabled) {
		t.Errorf("ErrInvalidBackendNotEnabled should not be a file format error")
	}
	if IsFileFormatError(nil) {
		t.Errorf("nil should not be a file format error")
	}
}
