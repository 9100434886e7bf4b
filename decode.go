// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package iconvg

import "math"

// adjustments are the ADJ values used by the CSEL/NSEL-relative styling
// opcodes: opcode&0x07 selects how many registers "back" from the current
// selector the opcode addresses, except that 7 is reserved to mean
// "address the current selector and then auto-increment it".
var adjustments = [8]uint32{0, 1, 2, 3, 4, 5, 6, 0}

// vm holds the mutable interpreter state threaded through a single Decode
// call: the register banks and the two coordinate transforms (source
// viewBox space to destination rect space, and back).
type vm struct {
	customPalette Palette
	creg          [64]PremulColor
	nreg          [64]float32

	heightInPixels int64

	s2dScaleX, s2dBiasX float64
	s2dScaleY, s2dBiasY float64
	d2sScaleX, d2sBiasX float64
	d2sScaleY, d2sBiasY float64
}

// pathState holds the cursor position and smoothing state threaded through
// the drawing-mode opcode loop, plus the CSEL/NSEL selectors and Level of
// Detail bounds threaded through the styling-mode opcode loop.
type pathState struct {
	currX, currY float32
	x1, y1       float32
	x2, y2       float32
	x3, y3       float32

	sel        [2]uint32
	lod0, lod1 float64
}

// Decode decodes the IconVG-formatted src, calling dst's methods to paint
// the decoded vector graphic. dstRect is the destination rectangle that the
// graphic's viewBox is mapped onto.
//
// The call sequence always begins with exactly one BeginDecode call and
// ends with exactly one EndDecode call. If dst is nil, NoOpCanvas is used
// instead.
func Decode(dst Canvas, dstRect Rectangle, src []byte, opts *DecodeOptions) error {
	if dst == nil {
		dst = NoOpCanvas{}
	}

	d := &decoder{data: src}
	err := dst.BeginDecode(dstRect)
	if err == nil {
		err = decodeBody(dst, dstRect, d, opts)
	}
	return dst.EndDecode(err, len(src)-d.len(), d.len())
}

func decodeBody(c Canvas, r Rectangle, d *decoder, opts *DecodeOptions) error {
	meta, err := decodeMetadata(d, false)
	if err != nil {
		return err
	}

	v := &vm{customPalette: meta.customPalette}
	if opts != nil && opts.HeightInPixels.HasValue {
		v.heightInPixels = opts.HeightInPixels.Value
	} else {
		h := r.HeightF64()
		if h <= 0x100000 {
			v.heightInPixels = int64(h)
		} else {
			v.heightInPixels = 0x100000
		}
	}

	if err := c.OnMetadataViewBox(meta.viewbox); err != nil {
		return err
	}
	if err := c.OnMetadataSuggestedPalette(&meta.customPalette); err != nil {
		return err
	}

	if opts != nil && opts.Palette != nil {
		meta.customPalette = *opts.Palette
	}
	v.customPalette = meta.customPalette
	v.creg = meta.customPalette

	return runBytecode(c, r, d, v, meta.viewbox)
}

// runBytecode alternates between the styling-mode and drawing-mode opcode
// loops, mirroring the two-label goto structure of a bytecode interpreter:
// styling mode ends either cleanly (the input is exhausted) or by starting
// a path, and drawing mode always ends by returning control to styling
// mode.
func runBytecode(outerCanvas Canvas, r Rectangle, d *decoder, v *vm, viewbox Rectangle) error {
	rw, rh := r.WidthF64(), r.HeightF64()
	vw, vh := viewbox.WidthF64(), viewbox.HeightF64()
	scaleX, biasX := 1.0, 0.0
	scaleY, biasY := 1.0, 0.0
	if rw > 0 && rh > 0 && vw > 0 && vh > 0 {
		scaleX = rw / vw
		scaleY = rh / vh
		biasX = float64(r.MinX) - float64(viewbox.MinX)*scaleX
		biasY = float64(r.MinY) - float64(viewbox.MinY)*scaleY
	}
	v.s2dScaleX, v.s2dBiasX = scaleX, biasX
	v.s2dScaleY, v.s2dBiasY = scaleY, biasY
	v.d2sScaleX = 1 / scaleX
	v.d2sBiasX = -biasX * v.d2sScaleX
	v.d2sScaleY = 1 / scaleY
	v.d2sBiasY = -biasY * v.d2sScaleY

	toDstX := func(x float32) float32 { return float32(float64(x)*scaleX + biasX) }
	toDstY := func(y float32) float32 { return float32(float64(y)*scaleY + biasY) }

	noOpCanvas := NoOpCanvas{}
	ps := &pathState{lod1: math.Inf(+1)}

	for {
		c, paint, err := runStylingMode(outerCanvas, noOpCanvas, d, v, ps, toDstX, toDstY)
		if err != nil {
			return err
		}
		if c == nil {
			return nil
		}
		if err := runDrawingMode(c, d, v, ps, paint, toDstX, toDstY); err != nil {
			return err
		}
	}
}

// runStylingMode runs the styling-mode opcode loop until either the input
// is exhausted (a clean end of decoding, reported as a nil Canvas and nil
// error) or an opcode switches to drawing mode, in which case it decodes
// the path's starting point, selects between outerCanvas and a no-op
// canvas according to the Level of Detail bounds, and calls BeginDrawing
// and BeginPath before returning.
func runStylingMode(
	outerCanvas Canvas, noOpCanvas NoOpCanvas,
	d *decoder, v *vm, ps *pathState,
	toDstX, toDstY func(float32) float32,
) (c Canvas, paint *Paint, err error) {
	sel := &ps.sel
	for {
		if d.len() == 0 {
			return nil, nil, nil
		}
		opcode := d.data[0]
		d.data = d.data[1:]

		switch {
		case opcode < 0x80:
			sel[opcode>>6] = uint32(opcode & 0x3F)

		case opcode < 0x88: // 1 byte color.
			if d.len() < 1 {
				return nil, nil, ErrBadColor
			}
			idx := (sel[0] - adjustments[opcode&0x07]) & 0x3F
			v.creg[idx] = resolveOneByteColor(d.data[0], &v.customPalette, &v.creg)
			d.data = d.data[1:]
			if opcode&0x07 == 0x07 {
				sel[0]++
			}

		case opcode < 0x90: // 2 byte color.
			if d.len() < 2 {
				return nil, nil, ErrBadColor
			}
			idx := (sel[0] - adjustments[opcode&0x07]) & 0x3F
			v.creg[idx] = nibble2Color(d.data[0], d.data[1])
			d.data = d.data[2:]
			if opcode&0x07 == 0x07 {
				sel[0]++
			}

		case opcode < 0x98: // 3 byte direct color.
			if d.len() < 3 {
				return nil, nil, ErrBadColor
			}
			idx := (sel[0] - adjustments[opcode&0x07]) & 0x3F
			v.creg[idx] = PremulColor{R: d.data[0], G: d.data[1], B: d.data[2], A: 0xFF}
			d.data = d.data[3:]
			if opcode&0x07 == 0x07 {
				sel[0]++
			}

		case opcode < 0xA0: // 4 byte direct color.
			if d.len() < 4 {
				return nil, nil, ErrBadColor
			}
			idx := (sel[0] - adjustments[opcode&0x07]) & 0x3F
			v.creg[idx] = PremulColor{R: d.data[0], G: d.data[1], B: d.data[2], A: d.data[3]}
			d.data = d.data[4:]
			if opcode&0x07 == 0x07 {
				sel[0]++
			}

		case opcode < 0xA8: // 3 byte indirect (blend) color.
			if d.len() < 3 {
				return nil, nil, ErrBadColor
			}
			idx := (sel[0] - adjustments[opcode&0x07]) & 0x3F
			p := resolveOneByteColor(d.data[1], &v.customPalette, &v.creg)
			q := resolveOneByteColor(d.data[2], &v.customPalette, &v.creg)
			v.creg[idx] = blendOneByteColors(d.data[0], p, q)
			d.data = d.data[3:]
			if opcode&0x07 == 0x07 {
				sel[0]++
			}

		case opcode < 0xB0: // Set NREG; real number.
			idx := (sel[1] - adjustments[opcode&0x07]) & 0x3F
			num, ok := d.decodeReal()
			if !ok {
				return nil, nil, ErrBadNumber
			}
			v.nreg[idx] = num
			if opcode&0x07 == 0x07 {
				sel[1]++
			}

		case opcode < 0xB8: // Set NREG; coordinate number.
			idx := (sel[1] - adjustments[opcode&0x07]) & 0x3F
			num, ok := d.decodeCoordinate()
			if !ok {
				return nil, nil, ErrBadCoordinate
			}
			v.nreg[idx] = num
			if opcode&0x07 == 0x07 {
				sel[1]++
			}

		case opcode < 0xC0: // Set NREG; zero-to-one number.
			idx := (sel[1] - adjustments[opcode&0x07]) & 0x3F
			num, ok := d.decodeZeroToOne()
			if !ok {
				return nil, nil, ErrBadNumber
			}
			v.nreg[idx] = num
			if opcode&0x07 == 0x07 {
				sel[1]++
			}

		case opcode < 0xC7: // Switch to drawing mode.
			idx := (sel[0] - adjustments[opcode&0x07]) & 0x3F
			p := &Paint{
				rgba:          v.creg[idx],
				customPalette: &v.customPalette,
				creg:          &v.creg,
				nreg:          &v.nreg,
				d2sScaleX:     v.d2sScaleX, d2sBiasX: v.d2sBiasX,
				d2sScaleY: v.d2sScaleY, d2sBiasY: v.d2sBiasY,
			}
			if p.Type() == PaintTypeInvalid {
				return nil, nil, ErrInvalidPaintType
			}
			cx, ok1 := d.decodeCoordinate()
			cy, ok2 := d.decodeCoordinate()
			if !ok1 || !ok2 {
				return nil, nil, ErrBadCoordinate
			}
			ps.currX, ps.currY = cx, cy
			ps.x1, ps.y1 = cx, cy

			h := float64(v.heightInPixels)
			if ps.lod0 <= h && h < ps.lod1 {
				c = outerCanvas
			} else {
				c = noOpCanvas
			}
			if err := c.BeginDrawing(); err != nil {
				return nil, nil, err
			}
			if err := c.BeginPath(toDstX(cx), toDstY(cy)); err != nil {
				return nil, nil, err
			}
			return c, p, nil

		case opcode < 0xC8: // Set Level of Detail bounds.
			lo, ok1 := d.decodeReal()
			hi, ok2 := d.decodeReal()
			if !ok1 || !ok2 {
				return nil, nil, ErrBadNumber
			}
			ps.lod0, ps.lod1 = float64(lo), float64(hi)

		default:
			return nil, nil, ErrBadStylingOpcode
		}
	}
}

// runDrawingMode runs the drawing-mode opcode loop for a single path (or a
// chain of paths joined by close-path-then-move-to opcodes), returning to
// the caller once an end-path-and-drawing opcode (0xE1) hands control back
// to styling mode.
func runDrawingMode(
	c Canvas, d *decoder, v *vm, ps *pathState, paint *Paint,
	toDstX, toDstY func(float32) float32,
) error {
	for {
		if d.len() == 0 {
			return ErrBadPathUnfinished
		}
		opcode := d.data[0]
		d.data = d.data[1:]

		switch family := opcode >> 4; family {
		case 0x00, 0x01: // 'L': absolute line_to.
			for reps := int(opcode & 0x1F); reps >= 0; reps-- {
				cx, ok1 := d.decodeCoordinate()
				cy, ok2 := d.decodeCoordinate()
				if !ok1 || !ok2 {
					return ErrBadCoordinate
				}
				ps.currX, ps.currY = cx, cy
				if err := c.PathLineTo(toDstX(ps.currX), toDstY(ps.currY)); err != nil {
					return err
				}
				ps.x1, ps.y1 = ps.currX, ps.currY
			}

		case 0x02, 0x03: // 'l': relative line_to.
			for reps := int(opcode & 0x1F); reps >= 0; reps-- {
				dx, ok1 := d.decodeCoordinate()
				dy, ok2 := d.decodeCoordinate()
				if !ok1 || !ok2 {
					return ErrBadCoordinate
				}
				ps.currX += dx
				ps.currY += dy
				if err := c.PathLineTo(toDstX(ps.currX), toDstY(ps.currY)); err != nil {
					return err
				}
				ps.x1, ps.y1 = ps.currX, ps.currY
			}

		case 0x04: // 'T': absolute smooth quad_to.
			for reps := int(opcode & 0x0F); reps >= 0; reps-- {
				nx, ok1 := d.decodeCoordinate()
				ny, ok2 := d.decodeCoordinate()
				if !ok1 || !ok2 {
					return ErrBadCoordinate
				}
				ps.x2, ps.y2 = nx, ny
				if err := c.PathQuadTo(toDstX(ps.x1), toDstY(ps.y1), toDstX(ps.x2), toDstY(ps.y2)); err != nil {
					return err
				}
				ps.currX, ps.currY = ps.x2, ps.y2
				ps.x1 = 2*ps.currX - ps.x1
				ps.y1 = 2*ps.currY - ps.y1
			}

		case 0x05: // 't': relative smooth quad_to.
			for reps := int(opcode & 0x0F); reps >= 0; reps-- {
				dx, ok1 := d.decodeCoordinate()
				dy, ok2 := d.decodeCoordinate()
				if !ok1 || !ok2 {
					return ErrBadCoordinate
				}
				ps.x2 = dx + ps.currX
				ps.y2 = dy + ps.currY
				if err := c.PathQuadTo(toDstX(ps.x1), toDstY(ps.y1), toDstX(ps.x2), toDstY(ps.y2)); err != nil {
					return err
				}
				ps.currX, ps.currY = ps.x2, ps.y2
				ps.x1 = 2*ps.currX - ps.x1
				ps.y1 = 2*ps.currY - ps.y1
			}

		case 0x06: // 'Q': absolute quad_to.
			for reps := int(opcode & 0x0F); reps >= 0; reps-- {
				coords, ok := decodeCoordinates(d, 4)
				if !ok {
					return ErrBadCoordinate
				}
				ps.x1, ps.y1, ps.x2, ps.y2 = coords[0], coords[1], coords[2], coords[3]
				if err := c.PathQuadTo(toDstX(ps.x1), toDstY(ps.y1), toDstX(ps.x2), toDstY(ps.y2)); err != nil {
					return err
				}
				ps.currX, ps.currY = ps.x2, ps.y2
				ps.x1 = 2*ps.currX - ps.x1
				ps.y1 = 2*ps.currY - ps.y1
			}

		case 0x07: // 'q': relative quad_to.
			for reps := int(opcode & 0x0F); reps >= 0; reps-- {
				coords, ok := decodeCoordinates(d, 4)
				if !ok {
					return ErrBadCoordinate
				}
				ps.x1 = coords[0] + ps.currX
				ps.y1 = coords[1] + ps.currY
				ps.x2 = coords[2] + ps.currX
				ps.y2 = coords[3] + ps.currY
				if err := c.PathQuadTo(toDstX(ps.x1), toDstY(ps.y1), toDstX(ps.x2), toDstY(ps.y2)); err != nil {
					return err
				}
				ps.currX, ps.currY = ps.x2, ps.y2
				ps.x1 = 2*ps.currX - ps.x1
				ps.y1 = 2*ps.currY - ps.y1
			}

		case 0x08: // 'S': absolute smooth cube_to.
			for reps := int(opcode & 0x0F); reps >= 0; reps-- {
				coords, ok := decodeCoordinates(d, 4)
				if !ok {
					return ErrBadCoordinate
				}
				ps.x2, ps.y2, ps.x3, ps.y3 = coords[0], coords[1], coords[2], coords[3]
				if err := c.PathCubeTo(toDstX(ps.x1), toDstY(ps.y1), toDstX(ps.x2), toDstY(ps.y2), toDstX(ps.x3), toDstY(ps.y3)); err != nil {
					return err
				}
				ps.currX, ps.currY = ps.x3, ps.y3
				ps.x1 = 2*ps.currX - ps.x2
				ps.y1 = 2*ps.currY - ps.y2
			}

		case 0x09: // 's': relative smooth cube_to.
			for reps := int(opcode & 0x0F); reps >= 0; reps-- {
				coords, ok := decodeCoordinates(d, 4)
				if !ok {
					return ErrBadCoordinate
				}
				ps.x2 = coords[0] + ps.currX
				ps.y2 = coords[1] + ps.currY
				ps.x3 = coords[2] + ps.currX
				ps.y3 = coords[3] + ps.currY
				if err := c.PathCubeTo(toDstX(ps.x1), toDstY(ps.y1), toDstX(ps.x2), toDstY(ps.y2), toDstX(ps.x3), toDstY(ps.y3)); err != nil {
					return err
				}
				ps.currX, ps.currY = ps.x3, ps.y3
				ps.x1 = 2*ps.currX - ps.x2
				ps.y1 = 2*ps.currY - ps.y2
			}

		case 0x0A: // 'C': absolute cube_to.
			for reps := int(opcode & 0x0F); reps >= 0; reps-- {
				coords, ok := decodeCoordinates(d, 6)
				if !ok {
					return ErrBadCoordinate
				}
				ps.x1, ps.y1, ps.x2, ps.y2, ps.x3, ps.y3 = coords[0], coords[1], coords[2], coords[3], coords[4], coords[5]
				if err := c.PathCubeTo(toDstX(ps.x1), toDstY(ps.y1), toDstX(ps.x2), toDstY(ps.y2), toDstX(ps.x3), toDstY(ps.y3)); err != nil {
					return err
				}
				ps.currX, ps.currY = ps.x3, ps.y3
				ps.x1 = 2*ps.currX - ps.x2
				ps.y1 = 2*ps.currY - ps.y2
			}

		case 0x0B: // 'c': relative cube_to.
			for reps := int(opcode & 0x0F); reps >= 0; reps-- {
				coords, ok := decodeCoordinates(d, 6)
				if !ok {
					return ErrBadCoordinate
				}
				ps.x1 = coords[0] + ps.currX
				ps.y1 = coords[1] + ps.currY
				ps.x2 = coords[2] + ps.currX
				ps.y2 = coords[3] + ps.currY
				ps.x3 = coords[4] + ps.currX
				ps.y3 = coords[5] + ps.currY
				if err := c.PathCubeTo(toDstX(ps.x1), toDstY(ps.y1), toDstX(ps.x2), toDstY(ps.y2), toDstX(ps.x3), toDstY(ps.y3)); err != nil {
					return err
				}
				ps.currX, ps.currY = ps.x3, ps.y3
				ps.x1 = 2*ps.currX - ps.x2
				ps.y1 = 2*ps.currY - ps.y2
			}

		case 0x0C: // 'A': absolute arc_to.
			for reps := int(opcode & 0x0F); reps >= 0; reps-- {
				if err := decodeArc(c, d, v, ps, false, toDstX, toDstY); err != nil {
					return err
				}
			}

		case 0x0D: // 'a': relative arc_to.
			for reps := int(opcode & 0x0F); reps >= 0; reps-- {
				if err := decodeArc(c, d, v, ps, true, toDstX, toDstY); err != nil {
					return err
				}
			}

		default:
			switch opcode {
			case 0xE1: // 'z': close_path, end_drawing, back to styling mode.
				if err := c.EndPath(); err != nil {
					return err
				}
				return c.EndDrawing(paint)

			case 0xE2: // 'z; M': close_path; absolute move_to.
				if err := c.EndPath(); err != nil {
					return err
				}
				cx, ok1 := d.decodeCoordinate()
				cy, ok2 := d.decodeCoordinate()
				if !ok1 || !ok2 {
					return ErrBadCoordinate
				}
				ps.currX, ps.currY = cx, cy
				if err := c.BeginPath(toDstX(ps.currX), toDstY(ps.currY)); err != nil {
					return err
				}
				ps.x1, ps.y1 = ps.currX, ps.currY

			case 0xE3: // 'z; m': close_path; relative move_to.
				if err := c.EndPath(); err != nil {
					return err
				}
				dx, ok1 := d.decodeCoordinate()
				dy, ok2 := d.decodeCoordinate()
				if !ok1 || !ok2 {
					return ErrBadCoordinate
				}
				ps.currX += dx
				ps.currY += dy
				if err := c.BeginPath(toDstX(ps.currX), toDstY(ps.currY)); err != nil {
					return err
				}
				ps.x1, ps.y1 = ps.currX, ps.currY

			case 0xE6: // 'H': absolute horizontal line_to.
				cx, ok := d.decodeCoordinate()
				if !ok {
					return ErrBadCoordinate
				}
				ps.currX = cx
				if err := c.PathLineTo(toDstX(ps.currX), toDstY(ps.currY)); err != nil {
					return err
				}
				ps.x1, ps.y1 = ps.currX, ps.currY

			case 0xE7: // 'h': relative horizontal line_to.
				dx, ok := d.decodeCoordinate()
				if !ok {
					return ErrBadCoordinate
				}
				ps.currX += dx
				if err := c.PathLineTo(toDstX(ps.currX), toDstY(ps.currY)); err != nil {
					return err
				}
				ps.x1, ps.y1 = ps.currX, ps.currY

			case 0xE8: // 'V': absolute vertical line_to.
				cy, ok := d.decodeCoordinate()
				if !ok {
					return ErrBadCoordinate
				}
				ps.currY = cy
				if err := c.PathLineTo(toDstX(ps.currX), toDstY(ps.currY)); err != nil {
					return err
				}
				ps.x1, ps.y1 = ps.currX, ps.currY

			case 0xE9: // 'v': relative vertical line_to.
				dy, ok := d.decodeCoordinate()
				if !ok {
					return ErrBadCoordinate
				}
				ps.currY += dy
				if err := c.PathLineTo(toDstX(ps.currX), toDstY(ps.currY)); err != nil {
					return err
				}
				ps.x1, ps.y1 = ps.currX, ps.currY

			default:
				return ErrBadDrawingOpcode
			}
		}
	}
}

// decodeCoordinates decodes n consecutive coordinate numbers from d.
func decodeCoordinates(d *decoder, n int) (coords []float32, ok bool) {
	coords = make([]float32, n)
	for i := range coords {
		if coords[i], ok = d.decodeCoordinate(); !ok {
			return nil, false
		}
	}
	return coords, true
}

// decodeArc decodes one arc_to opcode's operands (radii, x-axis rotation,
// flags, and endpoint) and feeds the resulting curve to c via pathArcTo.
// The radii are in source (viewBox) space and are scaled into dst space
// using the interpreter's s2d transform, matching how every other
// coordinate reaching a Canvas method is already in dst space.
func decodeArc(c Canvas, d *decoder, v *vm, ps *pathState, relative bool, toDstX, toDstY func(float32) float32) error {
	x0, y0 := ps.currX, ps.currY
	rx, ok1 := d.decodeCoordinate()
	ry, ok2 := d.decodeCoordinate()
	rot, ok3 := d.decodeZeroToOne()
	flags, ok4 := d.decodeNatural()
	px, ok5 := d.decodeCoordinate()
	py, ok6 := d.decodeCoordinate()
	if !ok1 || !ok2 || !ok3 || !ok4 || !ok5 || !ok6 {
		return ErrBadCoordinate
	}

	nx, ny := px, py
	if relative {
		nx += x0
		ny += y0
	}
	ps.currX, ps.currY = nx, ny

	absScaleX, absScaleY := math.Abs(v.s2dScaleX), math.Abs(v.s2dScaleY)
	err := pathArcTo(c,
		float64(toDstX(x0)), float64(toDstY(y0)),
		float64(rx)*absScaleX, float64(ry)*absScaleY,
		float64(rot), flags&0x01 != 0, flags&0x02 != 0,
		float64(toDstX(nx)), float64(toDstY(ny)),
	)
	ps.x1, ps.y1 = ps.currX, ps.currY
	return err
}
