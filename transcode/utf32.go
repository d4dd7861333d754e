// File: utf32.go
// Title: UTF-32 Source Conversions
// Description: Implements conversion from UTF-32 code unit slices to
//              UTF-8 and UTF-16, including the measuring variants, the
//              endian-specific variants and the endian-detecting entry
//              points that honor a leading byte order mark.
// Version: v0.1.0
// Created: 2026-01-15
// Modified: 2026-01-15
//
// Change History:
// - 2026-01-15 v0.1.0: Initial implementation

package transcode

// decodeUTF32 reads the unit at src[i] for the conversion loops. Every
// unit is one code point; values past MaxCodePoint and surrogates
// substitute ReplacementCodePoint, or fail in strict mode.
func decodeUTF32(src []uint32, i int, swapIn, strict bool, op string) (uint32, error) {
	cp := swap32If(src[i], swapIn)
	if !IsValidCodePoint(cp) {
		if strict {
			return 0, errInvalidCodePoint(op, i)
		}
		cp = ReplacementCodePoint
	}
	return cp, nil
}

// utf32ToUTF8 is the conversion loop shared by all UTF-32 to UTF-8
// entry points.
func utf32ToUTF8(dst []byte, src []uint32, flags Flags, swapIn bool, op string) (written, consumed int, err error) {
	i := 0
	if len(src) > 0 && isUTF32BOMUnit(src[0]) {
		if flags&ForbidBOM != 0 {
			return 0, 0, errBomRejected(op)
		}
		i = 1
	}

	strict := flags&ErrorOnInvalidCodePoint != 0
	measure := dst == nil

	for i < len(src) {
		cp, err := decodeUTF32(src, i, swapIn, strict, op)
		if err != nil {
			return written, i, err
		}

		n := CodePointLengthUTF8(cp)
		if !measure {
			if len(dst)-written < n {
				return written, i, errOutOfSpace(op, i)
			}
			EncodeUTF8CodePoint(dst[written:], cp)
		}

		written += n
		i += 1
	}

	return written, i, nil
}

// utf32ToUTF16 is the conversion loop shared by all UTF-32 to UTF-16
// entry points.
func utf32ToUTF16(dst []uint16, src []uint32, flags Flags, swapIn, swapOut bool, op string) (written, consumed int, err error) {
	i := 0
	if len(src) > 0 && isUTF32BOMUnit(src[0]) {
		if flags&ForbidBOM != 0 {
			return 0, 0, errBomRejected(op)
		}
		i = 1
	}

	strict := flags&ErrorOnInvalidCodePoint != 0
	measure := dst == nil

	for i < len(src) {
		cp, err := decodeUTF32(src, i, swapIn, strict, op)
		if err != nil {
			return written, i, err
		}

		n := CodePointLengthUTF16(cp)
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
		i += 1
	}

	return written, i, nil
}

// UTF32NEToUTF8Len measures the conversion of native order src to
// UTF-8. It returns the number of bytes the content needs, without any
// terminator and without the byte order mark, and the number of source
// units that measuring consumed.
//
// A leading byte order mark is skipped and included in consumed, or
// rejected with CodeBomRejected under ForbidBOM. Units past
// MaxCodePoint and surrogate values count as the replacement
// character, or fail with CodeInvalidCodePoint under
// ErrorOnInvalidCodePoint; on failure consumed stops at the offending
// unit.
func UTF32NEToUTF8Len(src []uint32, flags Flags) (utf8Len, consumed int, err error) {
	return utf32ToUTF8(nil, src, flags, false, "transcode.UTF32NEToUTF8Len")
}

// UTF32LEToUTF8Len measures the conversion of little endian src to
// UTF-8.
func UTF32LEToUTF8Len(src []uint32, flags Flags) (utf8Len, consumed int, err error) {
	return utf32ToUTF8(nil, src, flags, !hostLittleEndian, "transcode.UTF32LEToUTF8Len")
}

// UTF32BEToUTF8Len measures the conversion of big endian src to UTF-8.
func UTF32BEToUTF8Len(src []uint32, flags Flags) (utf8Len, consumed int, err error) {
	return utf32ToUTF8(nil, src, flags, hostLittleEndian, "transcode.UTF32BEToUTF8Len")
}

// UTF32ToUTF8Len measures the conversion of src to UTF-8, taking the
// byte order from a leading byte order mark. Without one the stream is
// assumed to be in native order.
func UTF32ToUTF8Len(src []uint32, flags Flags) (utf8Len, consumed int, err error) {
	const op = "transcode.UTF32ToUTF8Len"
	if len(src) > 0 && isUTF32BOMUnit(src[0]) {
		if flags&ForbidBOM != 0 {
			return 0, 0, errBomRejected(op)
		}
		utf8Len, consumed, err = utf32ToUTF8(nil, src[1:], flags|ForbidBOM, utf32SwapFromBOM(src[0]), op)
		return utf8Len, consumed + 1, err
	}
	return utf32ToUTF8(nil, src, flags, false, op)
}

// UTF32NEToUTF8 converts native order src to UTF-8. It returns the
// number of bytes written and the number of source units consumed. The
// error behavior matches UTF32NEToUTF8Len, with one addition: when dst
// is too small for the next code point the conversion fails with
// CodeOutOfSpace, keeping everything written so far and leaving the
// code point that did not fit out of consumed. A nil dst measures
// instead.
func UTF32NEToUTF8(dst []byte, src []uint32, flags Flags) (written, consumed int, err error) {
	return utf32ToUTF8(dst, src, flags, false, "transcode.UTF32NEToUTF8")
}

// UTF32LEToUTF8 converts little endian src to UTF-8.
func UTF32LEToUTF8(dst []byte, src []uint32, flags Flags) (written, consumed int, err error) {
	return utf32ToUTF8(dst, src, flags, !hostLittleEndian, "transcode.UTF32LEToUTF8")
}

// UTF32BEToUTF8 converts big endian src to UTF-8.
func UTF32BEToUTF8(dst []byte, src []uint32, flags Flags) (written, consumed int, err error) {
	return utf32ToUTF8(dst, src, flags, hostLittleEndian, "transcode.UTF32BEToUTF8")
}

// UTF32ToUTF8 converts src to UTF-8, taking the byte order from a
// leading byte order mark. Without one the stream is assumed to be in
// native order. The mark itself is not converted but is included in
// consumed; a second mark after it is rejected with CodeBomRejected.
func UTF32ToUTF8(dst []byte, src []uint32, flags Flags) (written, consumed int, err error) {
	const op = "transcode.UTF32ToUTF8"
	if len(src) > 0 && isUTF32BOMUnit(src[0]) {
		if flags&ForbidBOM != 0 {
			return 0, 0, errBomRejected(op)
		}
		written, consumed, err = utf32ToUTF8(dst, src[1:], flags|ForbidBOM, utf32SwapFromBOM(src[0]), op)
		return written, consumed + 1, err
	}
	return utf32ToUTF8(dst, src, flags, false, op)
}

// UTF32NEToUTF16Len measures the conversion of native order src to
// UTF-16. Error behavior matches UTF32NEToUTF8Len.
func UTF32NEToUTF16Len(src []uint32, flags Flags) (utf16Len, consumed int, err error) {
	return utf32ToUTF16(nil, src, flags, false, false, "transcode.UTF32NEToUTF16Len")
}

// UTF32LEToUTF16Len measures the conversion of little endian src to
// UTF-16.
func UTF32LEToUTF16Len(src []uint32, flags Flags) (utf16Len, consumed int, err error) {
	return utf32ToUTF16(nil, src, flags, !hostLittleEndian, false, "transcode.UTF32LEToUTF16Len")
}

// UTF32BEToUTF16Len measures the conversion of big endian src to
// UTF-16.
func UTF32BEToUTF16Len(src []uint32, flags Flags) (utf16Len, consumed int, err error) {
	return utf32ToUTF16(nil, src, flags, hostLittleEndian, false, "transcode.UTF32BEToUTF16Len")
}

// UTF32ToUTF16Len measures the conversion of src to UTF-16, taking the
// byte order from a leading byte order mark. Without one the stream is
// assumed to be in native order.
func UTF32ToUTF16Len(src []uint32, flags Flags) (utf16Len, consumed int, err error) {
	const op = "transcode.UTF32ToUTF16Len"
	if len(src) > 0 && isUTF32BOMUnit(src[0]) {
		if flags&ForbidBOM != 0 {
			return 0, 0, errBomRejected(op)
		}
		swapIn := utf32SwapFromBOM(src[0])
		utf16Len, consumed, err = utf32ToUTF16(nil, src[1:], flags|ForbidBOM, swapIn, false, op)
		return utf16Len, consumed + 1, err
	}
	return utf32ToUTF16(nil, src, flags, false, false, op)
}

// UTF32NEToUTF16NE converts native order src to native order UTF-16.
// Error behavior matches UTF32NEToUTF8.
func UTF32NEToUTF16NE(dst []uint16, src []uint32, flags Flags) (written, consumed int, err error) {
	return utf32ToUTF16(dst, src, flags, false, false, "transcode.UTF32NEToUTF16NE")
}

// UTF32LEToUTF16LE converts little endian src to little endian UTF-16.
func UTF32LEToUTF16LE(dst []uint16, src []uint32, flags Flags) (written, consumed int, err error) {
	return utf32ToUTF16(dst, src, flags, !hostLittleEndian, !hostLittleEndian, "transcode.UTF32LEToUTF16LE")
}

// UTF32BEToUTF16BE converts big endian src to big endian UTF-16.
func UTF32BEToUTF16BE(dst []uint16, src []uint32, flags Flags) (written, consumed int, err error) {
	return utf32ToUTF16(dst, src, flags, hostLittleEndian, hostLittleEndian, "transcode.UTF32BEToUTF16BE")
}

// UTF32ToUTF16 converts src to UTF-16, taking the byte order from a
// leading byte order mark and emitting UTF-16 in that same order.
// Without a mark the stream is assumed to be in native order. The mark
// itself is not converted but is included in consumed; a second mark
// after it is rejected with CodeBomRejected.
func UTF32ToUTF16(dst []uint16, src []uint32, flags Flags) (written, consumed int, err error) {
	const op = "transcode.UTF32ToUTF16"
	if len(src) > 0 && isUTF32BOMUnit(src[0]) {
		if flags&ForbidBOM != 0 {
			return 0, 0, errBomRejected(op)
		}
		swapIn := utf32SwapFromBOM(src[0])
		written, consumed, err = utf32ToUTF16(dst, src[1:], flags|ForbidBOM, swapIn, swapIn, op)
		return written, consumed + 1, err
	}
	return utf32ToUTF16(dst, src, flags, false, false, op)
}
