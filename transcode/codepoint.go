// File: codepoint.go
// Title: Code Point Primitives
// Description: Implements the code point level building blocks of the
//              conversion loops: validity checks, length calculation,
//              and encoding and decoding of single code points in the
//              three Unicode transformation formats.
// Version: v0.1.0
// Created: 2026-01-15
// Modified: 2026-01-15
//
// Change History:
// - 2026-01-15 v0.1.0: Initial implementation

package transcode

import (
	grimmerror "github.com/msto63/grimm/core/error"
)

const (
	// MaxCodePoint is the highest valid Unicode code point.
	MaxCodePoint = 0x10FFFF

	// ReplacementCodePoint is substituted for malformed input during
	// lenient conversion.
	ReplacementCodePoint = 0xFFFD

	// Encoded lengths of the replacement character, in code units.
	ReplacementLengthUTF8  = 3
	ReplacementLengthUTF16 = 1
	ReplacementLengthUTF32 = 1
)

// IsValidCodePoint reports whether cp is a valid Unicode code point,
// meaning it is at most MaxCodePoint and not a UTF-16 surrogate.
func IsValidCodePoint(cp uint32) bool {
	return cp <= MaxCodePoint && !IsSurrogate(cp)
}

// IsSurrogate reports whether cp falls in the UTF-16 surrogate range
// U+D800 through U+DFFF. Surrogates are not valid code points on their
// own; they only appear as pairs inside UTF-16 encoded data.
func IsSurrogate(cp uint32) bool {
	return cp >= 0xD800 && cp <= 0xDFFF
}

// IsHighSurrogate reports whether u is the leading unit of a UTF-16
// surrogate pair.
func IsHighSurrogate(u uint16) bool {
	return u >= 0xD800 && u <= 0xDBFF
}

// IsLowSurrogate reports whether u is the trailing unit of a UTF-16
// surrogate pair.
func IsLowSurrogate(u uint16) bool {
	return u >= 0xDC00 && u <= 0xDFFF
}

// IsInvalidUTF8Octet reports whether b can never appear in well formed
// UTF-8: the overlong leads 0xC0 and 0xC1 and the leads 0xF5 and above,
// which would encode values past MaxCodePoint.
func IsInvalidUTF8Octet(b byte) bool {
	return b == 0xC0 || b == 0xC1 || b >= 0xF5
}

// CodePointLengthUTF8 returns the number of bytes needed to encode cp
// in UTF-8, or 0 if cp is not a valid code point.
func CodePointLengthUTF8(cp uint32) int {
	switch {
	case !IsValidCodePoint(cp):
		return 0
	case cp <= 0x7F:
		return 1
	case cp <= 0x7FF:
		return 2
	case cp <= 0xFFFF:
		return 3
	default:
		return 4
	}
}

// CodePointLengthUTF16 returns the number of 16-bit units needed to
// encode cp in UTF-16, or 0 if cp is not a valid code point.
func CodePointLengthUTF16(cp uint32) int {
	switch {
	case !IsValidCodePoint(cp):
		return 0
	case cp <= 0xFFFF:
		return 1
	default:
		return 2
	}
}

// EncodeUTF8CodePoint encodes cp into dst and returns the number of
// bytes written. It returns 0 when cp is not a valid code point or dst
// is too small; dst is untouched in that case.
func EncodeUTF8CodePoint(dst []byte, cp uint32) int {
	n := CodePointLengthUTF8(cp)
	if n == 0 || len(dst) < n {
		return 0
	}

	switch n {
	case 1:
		dst[0] = byte(cp)
	case 2:
		dst[0] = 0xC0 | byte(cp>>6)
		dst[1] = 0x80 | byte(cp&0x3F)
	case 3:
		dst[0] = 0xE0 | byte(cp>>12)
		dst[1] = 0x80 | byte((cp>>6)&0x3F)
		dst[2] = 0x80 | byte(cp&0x3F)
	default:
		dst[0] = 0xF0 | byte(cp>>18)
		dst[1] = 0x80 | byte((cp>>12)&0x3F)
		dst[2] = 0x80 | byte((cp>>6)&0x3F)
		dst[3] = 0x80 | byte(cp&0x3F)
	}

	return n
}

// EncodeUTF16CodePoint encodes cp into dst in native byte order and
// returns the number of units written. It returns 0 when cp is not a
// valid code point or dst is too small; dst is untouched in that case.
func EncodeUTF16CodePoint(dst []uint16, cp uint32) int {
	n := CodePointLengthUTF16(cp)
	if n == 0 || len(dst) < n {
		return 0
	}

	if n == 1 {
		dst[0] = uint16(cp)
	} else {
		dst[0], dst[1] = EncodeUTF16Pair(cp)
	}

	return n
}

// EncodeUTF16Pair splits a supplementary code point (above U+FFFF) into
// its UTF-16 surrogate pair. The result is unspecified for code points
// that fit a single unit.
func EncodeUTF16Pair(cp uint32) (hi, lo uint16) {
	u := cp - 0x10000
	hi = uint16(0xD800 | ((u >> 10) & 0x3FF))
	lo = uint16(0xDC00 | (u & 0x3FF))
	return hi, lo
}

// DecodeUTF16Pair combines a surrogate pair into the code point it
// encodes. The result is unspecified if hi and lo are not a high and a
// low surrogate.
func DecodeUTF16Pair(hi, lo uint16) uint32 {
	return ((uint32(hi)&0x3FF)<<10 | (uint32(lo) & 0x3FF)) + 0x10000
}

// DecodeUTF8CodePoint decodes the first code point in b and returns it
// together with the number of bytes consumed. Malformed leading bytes
// decode as ReplacementCodePoint consuming one byte, and a decoded
// four-byte value outside the valid range decodes as
// ReplacementCodePoint consuming four bytes. An empty b fails with
// ErrEndOfInput and a sequence cut short by the end of b fails with
// CodeInvalidArgument; both leave cp and n zero.
//
// Two and three byte sequences are decoded structurally without
// checking the resulting value, matching the conversion loops.
func DecodeUTF8CodePoint(b []byte) (cp uint32, n int, err error) {
	if len(b) == 0 {
		return 0, 0, grimmerror.ErrEndOfInput
	}

	b0 := b[0]
	switch {
	case b0 < 0x80:
		return uint32(b0), 1, nil
	case IsInvalidUTF8Octet(b0):
		return ReplacementCodePoint, 1, nil
	case b0&0xE0 == 0xC0:
		if len(b) < 2 {
			return 0, 0, errTruncated("transcode.DecodeUTF8CodePoint", 0)
		}
		return uint32(b0&0x1F)<<6 | uint32(b[1]&0x3F), 2, nil
	case b0&0xF0 == 0xE0:
		if len(b) < 3 {
			return 0, 0, errTruncated("transcode.DecodeUTF8CodePoint", 0)
		}
		return uint32(b0&0x0F)<<12 | uint32(b[1]&0x3F)<<6 | uint32(b[2]&0x3F), 3, nil
	case b0&0xF8 == 0xF0:
		if len(b) < 4 {
			return 0, 0, errTruncated("transcode.DecodeUTF8CodePoint", 0)
		}
		cp = uint32(b0&0x07)<<18 | uint32(b[1]&0x3F)<<12 | uint32(b[2]&0x3F)<<6 | uint32(b[3]&0x3F)
		if !IsValidCodePoint(cp) {
			cp = ReplacementCodePoint
		}
		return cp, 4, nil
	default:
		// Continuation byte in lead position.
		return ReplacementCodePoint, 1, nil
	}
}
