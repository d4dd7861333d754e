// File: utf8.go
// Title: UTF-8 Source Conversions
// Description: Implements conversion from UTF-8 byte streams to UTF-16
//              and UTF-32 code unit slices, including the measuring
//              variants and the endian-specific output variants.
// Version: v0.1.0
// Created: 2026-01-15
// Modified: 2026-01-15
//
// Change History:
// - 2026-01-15 v0.1.0: Initial implementation

package transcode

// decodeUTF8 decodes the code point starting at src[i] for the
// conversion loops and returns it with the number of source bytes it
// spans. Malformed leads and continuation bytes in lead position
// substitute ReplacementCodePoint over one byte, and a four-byte value
// outside the valid range substitutes it over four bytes; in strict
// mode both fail instead. Two and three byte sequences are decoded
// structurally without checking the resulting value.
func decodeUTF8(src []byte, i int, strict bool, op string) (uint32, int, error) {
	b0 := src[i]
	switch {
	case b0 < 0x80:
		return uint32(b0), 1, nil

	case IsInvalidUTF8Octet(b0):
		if strict {
			return 0, 0, errInvalidCodePoint(op, i)
		}
		return ReplacementCodePoint, 1, nil

	case b0&0xE0 == 0xC0:
		if i+2 > len(src) {
			return 0, 0, errTruncated(op, i)
		}
		return uint32(b0&0x1F)<<6 | uint32(src[i+1]&0x3F), 2, nil

	case b0&0xF0 == 0xE0:
		if i+3 > len(src) {
			return 0, 0, errTruncated(op, i)
		}
		return uint32(b0&0x0F)<<12 | uint32(src[i+1]&0x3F)<<6 | uint32(src[i+2]&0x3F), 3, nil

	case b0&0xF8 == 0xF0:
		if i+4 > len(src) {
			return 0, 0, errTruncated(op, i)
		}
		cp := uint32(b0&0x07)<<18 | uint32(src[i+1]&0x3F)<<12 | uint32(src[i+2]&0x3F)<<6 | uint32(src[i+3]&0x3F)
		if !IsValidCodePoint(cp) {
			if strict {
				return 0, 0, errInvalidCodePoint(op, i)
			}
			cp = ReplacementCodePoint
		}
		return cp, 4, nil

	default:
		// Continuation byte in lead position.
		if strict {
			return 0, 0, errInvalidCodePoint(op, i)
		}
		return ReplacementCodePoint, 1, nil
	}
}

// utf8ToUTF16 is the conversion loop shared by all UTF-8 to UTF-16
// entry points. A nil dst measures instead of writing. swapOut selects
// output units in the byte order opposite the host.
func utf8ToUTF16(dst []uint16, src []byte, flags Flags, swapOut bool, op string) (written, consumed int, err error) {
	i := 0
	if UTF8HasBOM(src) {
		if flags&ForbidBOM != 0 {
			return 0, 0, errBomRejected(op)
		}
		i = 3
	}

	strict := flags&ErrorOnInvalidCodePoint != 0
	measure := dst == nil

	for i < len(src) {
		cp, srcN, err := decodeUTF8(src, i, strict, op)
		if err != nil {
			return written, i, err
		}

		// Sized by value range rather than CodePointLengthUTF16: an
		// unvalidated surrogate from a three byte sequence passes
		// through as a single unit.
		n := 1
		if cp > 0xFFFF {
			n = 2
		}
		if !measure {
			if len(dst)-written < n {
				return written, i, errOutOfSpace(op, i)
			}
			if n == 1 {
				dst[written] = swap16If(uint16(cp), swapOut)
			} else {
				hi, lo := EncodeUTF16Pair(cp)
				dst[written] = swap16If(hi, swapOut)
				dst[written+1] = swap16If(lo, swapOut)
			}
		}

		written += n
		i += srcN
	}

	return written, i, nil
}

// utf8ToUTF32 is the conversion loop shared by all UTF-8 to UTF-32
// entry points.
func utf8ToUTF32(dst []uint32, src []byte, flags Flags, swapOut bool, op string) (written, consumed int, err error) {
	i := 0
	if UTF8HasBOM(src) {
		if flags&ForbidBOM != 0 {
			return 0, 0, errBomRejected(op)
		}
		i = 3
	}

	strict := flags&ErrorOnInvalidCodePoint != 0
	measure := dst == nil

	for i < len(src) {
		cp, srcN, err := decodeUTF8(src, i, strict, op)
		if err != nil {
			return written, i, err
		}

		if !measure {
			if len(dst)-written < 1 {
				return written, i, errOutOfSpace(op, i)
			}
			dst[written] = swap32If(cp, swapOut)
		}

		written += 1
		i += srcN
	}

	return written, i, nil
}

// UTF8ToUTF16Len measures the conversion of src to UTF-16. It returns
// the number of 16-bit units the content needs, without any terminator
// and without the byte order mark, and the number of source bytes that
// measuring consumed. The unit count is independent of the output byte
// order, so a single measuring function serves all three variants.
//
// A leading byte order mark is skipped and included in consumed, or
// rejected with CodeBomRejected under ForbidBOM. Malformed input counts
// as the replacement character, or fails with CodeInvalidCodePoint
// under ErrorOnInvalidCodePoint; a sequence cut short by the end of src
// fails with CodeInvalidArgument. On failure consumed stops at the
// offending sequence.
func UTF8ToUTF16Len(src []byte, flags Flags) (utf16Len, consumed int, err error) {
	return utf8ToUTF16(nil, src, flags, false, "transcode.UTF8ToUTF16Len")
}

// UTF8ToUTF16NE converts src to UTF-16 in native byte order. It returns
// the number of units written and the number of source bytes consumed.
// The error behavior matches UTF8ToUTF16Len, with one addition: when
// dst is too small for the next code point the conversion fails with
// CodeOutOfSpace, keeping everything written so far and leaving the
// code point that did not fit out of consumed. A nil dst measures
// instead.
func UTF8ToUTF16NE(dst []uint16, src []byte, flags Flags) (written, consumed int, err error) {
	return utf8ToUTF16(dst, src, flags, false, "transcode.UTF8ToUTF16NE")
}

// UTF8ToUTF16LE converts src to UTF-16 with little endian units.
func UTF8ToUTF16LE(dst []uint16, src []byte, flags Flags) (written, consumed int, err error) {
	return utf8ToUTF16(dst, src, flags, !hostLittleEndian, "transcode.UTF8ToUTF16LE")
}

// UTF8ToUTF16BE converts src to UTF-16 with big endian units.
func UTF8ToUTF16BE(dst []uint16, src []byte, flags Flags) (written, consumed int, err error) {
	return utf8ToUTF16(dst, src, flags, hostLittleEndian, "transcode.UTF8ToUTF16BE")
}

// UTF8ToUTF16 converts src to UTF-16 in native byte order. It is the
// variant to use when the result stays in memory and the byte order
// does not matter.
func UTF8ToUTF16(dst []uint16, src []byte, flags Flags) (written, consumed int, err error) {
	return utf8ToUTF16(dst, src, flags, false, "transcode.UTF8ToUTF16")
}

// UTF8ToUTF32Len measures the conversion of src to UTF-32. Since every
// code point is one unit, the result is the code point count of the
// content. Error behavior matches UTF8ToUTF16Len.
func UTF8ToUTF32Len(src []byte, flags Flags) (utf32Len, consumed int, err error) {
	return utf8ToUTF32(nil, src, flags, false, "transcode.UTF8ToUTF32Len")
}

// UTF8ToUTF32NE converts src to UTF-32 in native byte order. Error
// behavior matches UTF8ToUTF16NE.
func UTF8ToUTF32NE(dst []uint32, src []byte, flags Flags) (written, consumed int, err error) {
	return utf8ToUTF32(dst, src, flags, false, "transcode.UTF8ToUTF32NE")
}

// UTF8ToUTF32LE converts src to UTF-32 with little endian units.
func UTF8ToUTF32LE(dst []uint32, src []byte, flags Flags) (written, consumed int, err error) {
	return utf8ToUTF32(dst, src, flags, !hostLittleEndian, "transcode.UTF8ToUTF32LE")
}

// UTF8ToUTF32BE converts src to UTF-32 with big endian units.
func UTF8ToUTF32BE(dst []uint32, src []byte, flags Flags) (written, consumed int, err error) {
	return utf8ToUTF32(dst, src, flags, hostLittleEndian, "transcode.UTF8ToUTF32BE")
}

// UTF8ToUTF32 converts src to UTF-32 in native byte order.
func UTF8ToUTF32(dst []uint32, src []byte, flags Flags) (written, consumed int, err error) {
	return utf8ToUTF32(dst, src, flags, false, "transcode.UTF8ToUTF32")
}
