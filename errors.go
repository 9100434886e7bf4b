// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package iconvg

// Error is an IconVG error. Unlike errors created by errors.New, two Errors
// with the same message compare equal, so that callers can switch on a
// specific error the way C code switches on a pointer-identity error
// constant.
type Error string

func (e Error) Error() string { return string(e) }

// File format errors: the source bytes are not IconVG.
const (
	ErrBadColor                    Error = "iconvg: bad color"
	ErrBadCoordinate               Error = "iconvg: bad coordinate"
	ErrBadDrawingOpcode            Error = "iconvg: bad drawing opcode"
	ErrBadMagicIdentifier          Error = "iconvg: bad magic identifier"
	ErrBadMetadata                 Error = "iconvg: bad metadata"
	ErrBadMetadataIDOrder          Error = "iconvg: bad metadata (id order)"
	ErrBadMetadataSuggestedPalette Error = "iconvg: bad metadata (suggested palette)"
	ErrBadMetadataViewBox          Error = "iconvg: bad metadata (viewbox)"
	ErrBadNumber                   Error = "iconvg: bad number"
	ErrBadPathUnfinished           Error = "iconvg: bad path (unfinished)"
	ErrBadStylingOpcode            Error = "iconvg: bad styling opcode"
)

// System failure. Not a file format error: the source bytes may be
// well-formed, but the system ran out of some resource while decoding them.
const ErrSystemFailureOutOfMemory Error = "iconvg: system failure: out of memory"

// Programming errors: something the caller did, not the file's contents.
const (
	ErrInvalidBackendNotEnabled   Error = "iconvg: invalid backend (not enabled)"
	ErrInvalidConstructorArgument Error = "iconvg: invalid constructor argument"
	ErrInvalidPaintType           Error = "iconvg: invalid paint type"
	ErrUnsupportedVTable          Error = "iconvg: unsupported vtable"
	ErrNullArgument               Error = "iconvg: null argument"
)

var fileFormatErrors = map[Error]bool{
	ErrBadColor:                    true,
	ErrBadCoordinate:               true,
	ErrBadDrawingOpcode:            true,
	ErrBadMagicIdentifier:          true,
	ErrBadMetadata:                 true,
	ErrBadMetadataIDOrder:          true,
	ErrBadMetadataSuggestedPalette: true,
	ErrBadMetadataViewBox:          true,
	ErrBadNumber:                   true,
	ErrBadPathUnfinished:           true,
	ErrBadStylingOpcode:            true,
}

// IsFileFormatError reports whether err indicates that the source bytes are
// not well-formed IconVG, as opposed to a system failure or a programming
// error (a caller misusing this package's API).
func IsFileFormatError(err error) bool {
	e, ok := err.(Error)
	return ok && fileFormatErrors[e]
}
