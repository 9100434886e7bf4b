// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package iconvg

import (
	"fmt"
	"io"
)

// Canvas is the sink that Decode drives. Its methods are called in a
// well-defined sequence: exactly one BeginDecode call, then interleaved
// metadata and drawing calls, then exactly one EndDecode call.
//
// If src holds well-formed IconVG data and none of the methods returns an
// error, the err argument to EndDecode is nil. Otherwise, the sequence
// stops as soon as a non-nil error is encountered (whether a file format
// error or a Canvas method's own error), and that error becomes EndDecode's
// err argument.
type Canvas interface {
	BeginDecode(dstRect Rectangle) error
	EndDecode(err error, numBytesConsumed, numBytesRemaining int) error

	BeginDrawing() error
	EndDrawing(paint *Paint) error

	BeginPath(x0, y0 float32) error
	EndPath() error

	PathLineTo(x1, y1 float32) error
	PathQuadTo(x1, y1, x2, y2 float32) error
	PathCubeTo(x1, y1, x2, y2, x3, y3 float32) error

	OnMetadataViewBox(viewbox Rectangle) error
	OnMetadataSuggestedPalette(suggestedPalette *Palette) error
}

// NoOpCanvas is a Canvas whose methods all do nothing and return nil, except
// that EndDecode returns its own err argument unchanged. Its zero value is
// ready to use.
type NoOpCanvas struct{}

func (NoOpCanvas) BeginDecode(Rectangle) error { return nil }
func (NoOpCanvas) EndDecode(err error, numBytesConsumed, numBytesRemaining int) error {
	return err
}
func (NoOpCanvas) BeginDrawing() error                             { return nil }
func (NoOpCanvas) EndDrawing(*Paint) error                         { return nil }
func (NoOpCanvas) BeginPath(x0, y0 float32) error                  { return nil }
func (NoOpCanvas) EndPath() error                                  { return nil }
func (NoOpCanvas) PathLineTo(x1, y1 float32) error                 { return nil }
func (NoOpCanvas) PathQuadTo(x1, y1, x2, y2 float32) error         { return nil }
func (NoOpCanvas) PathCubeTo(x1, y1, x2, y2, x3, y3 float32) error { return nil }
func (NoOpCanvas) OnMetadataViewBox(Rectangle) error               { return nil }
func (NoOpCanvas) OnMetadataSuggestedPalette(*Palette) error       { return nil }

// brokenCanvas is a Canvas whose methods all do nothing other than return a
// fixed error (or nil, if that fixed error is nil).
type brokenCanvas struct {
	err error
}

// BrokenCanvas returns a Canvas whose methods all do nothing other than
// return err. If err is nil, all canvas methods are no-op successes.
func BrokenCanvas(err error) Canvas { return brokenCanvas{err: err} }

func (b brokenCanvas) BeginDecode(Rectangle) error { return b.err }
func (b brokenCanvas) EndDecode(err error, numBytesConsumed, numBytesRemaining int) error {
	return b.err
}
func (b brokenCanvas) BeginDrawing() error                             { return b.err }
func (b brokenCanvas) EndDrawing(*Paint) error                         { return b.err }
func (b brokenCanvas) BeginPath(x0, y0 float32) error                  { return b.err }
func (b brokenCanvas) EndPath() error                                  { return b.err }
func (b brokenCanvas) PathLineTo(x1, y1 float32) error                 { return b.err }
func (b brokenCanvas) PathQuadTo(x1, y1, x2, y2 float32) error         { return b.err }
func (b brokenCanvas) PathCubeTo(x1, y1, x2, y2, x3, y3 float32) error { return b.err }
func (b brokenCanvas) OnMetadataViewBox(Rectangle) error               { return b.err }
func (b brokenCanvas) OnMetadataSuggestedPalette(*Palette) error       { return b.err }

// debugCanvas logs every vtable call to w, prefixed by prefix, before
// forwarding the call to wrapped.
type debugCanvas struct {
	w       io.Writer
	prefix  string
	wrapped Canvas
}

// DebugCanvas returns a Canvas that logs vtable calls to w (prefixed by
// prefix) before forwarding the call on to wrapped. If wrapped is nil, the
// forwarded calls always succeed, except that EndDecode returns its own err
// argument unchanged.
func DebugCanvas(w io.Writer, prefix string, wrapped Canvas) Canvas {
	if wrapped == nil {
		wrapped = NoOpCanvas{}
	}
	return &debugCanvas{w: w, prefix: prefix, wrapped: wrapped}
}

func (d *debugCanvas) logf(format string, args ...interface{}) {
	if d.w == nil {
		return
	}
	fmt.Fprintf(d.w, "%s"+format+"\n", append([]interface{}{d.prefix}, args...)...)
}

func (d *debugCanvas) BeginDecode(dstRect Rectangle) error {
	d.logf("BeginDecode(%v)", dstRect)
	return d.wrapped.BeginDecode(dstRect)
}

func (d *debugCanvas) EndDecode(err error, numBytesConsumed, numBytesRemaining int) error {
	d.logf("EndDecode(%v, %d, %d)", err, numBytesConsumed, numBytesRemaining)
	return d.wrapped.EndDecode(err, numBytesConsumed, numBytesRemaining)
}

func (d *debugCanvas) BeginDrawing() error {
	d.logf("BeginDrawing()")
	return d.wrapped.BeginDrawing()
}

func (d *debugCanvas) EndDrawing(p *Paint) error {
	d.logf("EndDrawing(%v)", p.Type())
	return d.wrapped.EndDrawing(p)
}

func (d *debugCanvas) BeginPath(x0, y0 float32) error {
	d.logf("BeginPath(%v, %v)", x0, y0)
	return d.wrapped.BeginPath(x0, y0)
}

func (d *debugCanvas) EndPath() error {
	d.logf("EndPath()")
	return d.wrapped.EndPath()
}

func (d *debugCanvas) PathLineTo(x1, y1 float32) error {
	d.logf("PathLineTo(%v, %v)", x1, y1)
	return d.wrapped.PathLineTo(x1, y1)
}

func (d *debugCanvas) PathQuadTo(x1, y1, x2, y2 float32) error {
	d.logf("PathQuadTo(%v, %v, %v, %v)", x1, y1, x2, y2)
	return d.wrapped.PathQuadTo(x1, y1, x2, y2)
}

func (d *debugCanvas) PathCubeTo(x1, y1, x2, y2, x3, y3 float32) error {
	d.logf("PathCubeTo(%v, %v, %v, %v, %v, %v)", x1, y1, x2, y2, x3, y3)
	return d.wrapped.PathCubeTo(x1, y1, x2, y2, x3, y3)
}

func (d *debugCanvas) OnMetadataViewBox(viewbox Rectangle) error {
	d.logf("OnMetadataViewBox(%v)", viewbox)
	return d.wrapped.OnMetadataViewBox(viewbox)
}

func (d *debugCanvas) OnMetadataSuggestedPalette(suggestedPalette *Palette) error {
	d.logf("OnMetadataSuggestedPalette(...)")
	return d.wrapped.OnMetadataSuggestedPalette(suggestedPalette)
}
