// File: doc.go
// Title: Package Documentation for transcode
// Description: Provides comprehensive documentation for the Unicode
//              transformation format conversion package.
// Version: v0.1.0
// Created: 2026-01-15
// Modified: 2026-01-15
//
// Change History:
// - 2026-01-15 v0.1.0: Initial documentation

// Package transcode converts text between the UTF-8, UTF-16 and UTF-32
// transformation formats with explicit control over byte order, byte
// order marks and the handling of malformed input.
//
// Package: github.com/msto63/grimm/transcode
// Title: Unicode Transformation Format Conversion
// Description: Allocation-free conversion between UTF-8 byte streams
//              and UTF-16/UTF-32 code unit slices, plus the code point
//              primitives and whitespace helpers built on top of them.
//
// # Overview
//
// The package deliberately avoids the conveniences of the standard
// library's unicode/utf8 and unicode/utf16 packages: those allocate
// result slices, pick the handling of malformed input for the caller,
// and offer no control over byte order or byte order marks. Here every
// conversion writes into a caller-supplied destination, reports exactly
// how much it read and wrote, and takes flags that choose between
// lenient substitution and strict rejection. That contract is what the
// lexer and the string packages are built on.
//
// # Conversion Model
//
// Each conversion family comes in two shapes that share one loop:
//
//   - Measuring: the Len functions (or any conversion with a nil
//     destination) return the unit count the content needs without
//     writing anything.
//   - Materializing: with a non-nil destination the conversion writes
//     converted units and fails with CodeOutOfSpace if the next code
//     point does not fit.
//
// Both shapes return (written, consumed, err). Measuring a source and
// then materializing it with the same flags into a destination of
// exactly the measured size always succeeds and fills it completely.
// Counts never include a terminator; the destination holds content
// only.
//
// # Byte Order
//
// UTF-16 and UTF-32 data lives in []uint16 and []uint32 whose values
// are read in host order. The NE variants treat source and destination
// as native order, the LE and BE variants as the named order, swapping
// units relative to the host as needed. The entry points without an
// endianness in their name take the byte order from a leading byte
// order mark and assume native order when there is none.
//
// A leading mark is skipped and counted in consumed but never
// converted; under ForbidBOM it is rejected with CodeBomRejected
// before anything is written.
//
// # Malformed Input
//
// By default malformed input is substituted with U+FFFD: an invalid
// UTF-8 lead consumes one byte, an unpaired surrogate one or two
// units, an out-of-range UTF-32 unit one unit. Under
// ErrorOnInvalidCodePoint the conversion fails with
// CodeInvalidCodePoint instead, with consumed stopping at the
// offending sequence. A multi-unit sequence cut short by the end of
// the source is an input sizing problem and always fails with
// CodeInvalidArgument. Two and three byte UTF-8 sequences are decoded
// structurally without validating the resulting value; only four byte
// sequences are range checked.
//
// # Usage Examples
//
// Converting UTF-8 to UTF-16 with exact sizing:
//
//	n, _, err := transcode.UTF8ToUTF16Len(src, 0)
//	if err != nil {
//		return err
//	}
//	dst := make([]uint16, n)
//	if _, _, err := transcode.UTF8ToUTF16(dst, src, 0); err != nil {
//		return err
//	}
//
// Rejecting instead of repairing malformed input:
//
//	_, _, err := transcode.UTF8ToUTF32(dst, src,
//		transcode.ForbidBOM|transcode.ErrorOnInvalidCodePoint)
//	if grimmerror.HasCode(err, grimmerror.CodeInvalidCodePoint) {
//		// src is not clean UTF-8
//	}
//
// # Whitespace Helpers
//
// IsWhitespace and IsNewline classify code points using the Unicode
// whitespace set rather than ASCII alone. The scanning helpers
// (LTrimOffset, RTrimOffset, NextWhitespace, NextLine,
// IsNullOrWhitespace) operate directly on UTF-8 bytes and are the
// basis of the lexer's token boundary detection.
//
// # Thread Safety
//
// All functions are pure and safe for concurrent use. The in-place
// SwapEndianUTF16 and SwapEndianUTF32 mutate their argument and need
// external synchronization if the slice is shared.
package transcode
