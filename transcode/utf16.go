// File: utf16.go
// Title: UTF-16 Source Conversions
// Description: Implements conversion from UTF-16 code unit slices to
//              UTF-8 and UTF-32, including the measuring variants, the
//              endian-specific variants and the endian-detecting entry
//              points that honor a leading byte order mark.
// Version: v0.1.0
// Created: 2026-01-15
// Modified: 2026-01-15
//
// Change History:
// - 2026-01-15 v0.1.0: Initial implementation

package transcode

// decodeUTF16 decodes the code point starting at src[i] for the
// conversion loops and returns it with the number of source units it
// spans. swapIn is set when the stream byte order is opposite to the
// host. A high surrogate followed by anything other than a low
// surrogate spans two units; a lone low surrogate spans one. Both
// substitute ReplacementCodePoint, or fail in strict mode.
func decodeUTF16(src []uint16, i int, swapIn, strict bool, op string) (uint32, int, error) {
	w1 := swap16If(src[i], swapIn)

	switch {
	case IsHighSurrogate(w1):
		if i+2 > len(src) {
			return 0, 0, errTruncated(op, i)
		}
		w2 := swap16If(src[i+1], swapIn)
		if !IsLowSurrogate(w2) {
			if strict {
				return 0, 0, errInvalidCodePoint(op, i)
			}
			return ReplacementCodePoint, 2, nil
		}
		return DecodeUTF16Pair(w1, w2), 2, nil

	case IsLowSurrogate(w1):
		if strict {
			return 0, 0, errInvalidCodePoint(op, i)
		}
		return ReplacementCodePoint, 1, nil

	default:
		return uint32(w1), 1, nil
	}
}

// utf16ToUTF8 is the conversion loop shared by all UTF-16 to UTF-8
// entry points. A byte order mark of either endianness is skipped, but
// the stream is still decoded in the caller's byte order.
func utf16ToUTF8(dst []byte, src []uint16, flags Flags, swapIn bool, op string) (written, consumed int, err error) {
	i := 0
	if len(src) > 0 && isUTF16BOMUnit(src[0]) {
		if flags&ForbidBOM != 0 {
			return 0, 0, errBomRejected(op)
		}
		i = 1
	}

	strict := flags&ErrorOnInvalidCodePoint != 0
	measure := dst == nil

	for i < len(src) {
		cp, srcN, err := decodeUTF16(src, i, swapIn, strict, op)
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
		i += srcN
	}

	return written, i, nil
}

// utf16ToUTF32 is the conversion loop shared by all UTF-16 to UTF-32
// entry points. Input and output byte order are selected independently,
// although the public entry points always couple them.
func utf16ToUTF32(dst []uint32, src []uint16, flags Flags, swapIn, swapOut bool, op string) (written, consumed int, err error) {
	i := 0
	if len(src) > 0 && isUTF16BOMUnit(src[0]) {
		if flags&ForbidBOM != 0 {
			return 0, 0, errBomRejected(op)
		}
		i = 1
	}

	strict := flags&ErrorOnInvalidCodePoint != 0
	measure := dst == nil

	for i < len(src) {
		cp, srcN, err := decodeUTF16(src, i, swapIn, strict, op)
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

// UTF16NEToUTF8Len measures the conversion of native order src to
// UTF-8. It returns the number of bytes the content needs, without any
// terminator and without the byte order mark, and the number of source
// units that measuring consumed. Unlike the UTF-8 source direction the
// unit count depends on the input byte order, so each variant has its
// own measuring function.
//
// A leading byte order mark is skipped and included in consumed, or
// rejected with CodeBomRejected under ForbidBOM. Unpaired surrogates
// count as the replacement character, or fail with CodeInvalidCodePoint
// under ErrorOnInvalidCodePoint; a high surrogate at the end of src
// fails with CodeInvalidArgument. On failure consumed stops at the
// offending sequence.
func UTF16NEToUTF8Len(src []uint16, flags Flags) (utf8Len, consumed int, err error) {
	return utf16ToUTF8(nil, src, flags, false, "transcode.UTF16NEToUTF8Len")
}

// UTF16LEToUTF8Len measures the conversion of little endian src to
// UTF-8.
func UTF16LEToUTF8Len(src []uint16, flags Flags) (utf8Len, consumed int, err error) {
	return utf16ToUTF8(nil, src, flags, !hostLittleEndian, "transcode.UTF16LEToUTF8Len")
}

// UTF16BEToUTF8Len measures the conversion of big endian src to UTF-8.
func UTF16BEToUTF8Len(src []uint16, flags Flags) (utf8Len, consumed int, err error) {
	return utf16ToUTF8(nil, src, flags, hostLittleEndian, "transcode.UTF16BEToUTF8Len")
}

// UTF16ToUTF8Len measures the conversion of src to UTF-8, taking the
// byte order from a leading byte order mark. Without one the stream is
// assumed to be in native order.
func UTF16ToUTF8Len(src []uint16, flags Flags) (utf8Len, consumed int, err error) {
	const op = "transcode.UTF16ToUTF8Len"
	if len(src) > 0 && isUTF16BOMUnit(src[0]) {
		if flags&ForbidBOM != 0 {
			return 0, 0, errBomRejected(op)
		}
		utf8Len, consumed, err = utf16ToUTF8(nil, src[1:], flags|ForbidBOM, utf16SwapFromBOM(src[0]), op)
		return utf8Len, consumed + 1, err
	}
	return utf16ToUTF8(nil, src, flags, false, op)
}

// UTF16NEToUTF8 converts native order src to UTF-8. It returns the
// number of bytes written and the number of source units consumed. The
// error behavior matches UTF16NEToUTF8Len, with one addition: when dst
// is too small for the next code point the conversion fails with
// CodeOutOfSpace, keeping everything written so far and leaving the
// code point that did not fit out of consumed. A nil dst measures
// instead.
func UTF16NEToUTF8(dst []byte, src []uint16, flags Flags) (written, consumed int, err error) {
	return utf16ToUTF8(dst, src, flags, false, "transcode.UTF16NEToUTF8")
}

// UTF16LEToUTF8 converts little endian src to UTF-8.
func UTF16LEToUTF8(dst []byte, src []uint16, flags Flags) (written, consumed int, err error) {
	return utf16ToUTF8(dst, src, flags, !hostLittleEndian, "transcode.UTF16LEToUTF8")
}

// UTF16BEToUTF8 converts big endian src to UTF-8.
func UTF16BEToUTF8(dst []byte, src []uint16, flags Flags) (written, consumed int, err error) {
	return utf16ToUTF8(dst, src, flags, hostLittleEndian, "transcode.UTF16BEToUTF8")
}

// UTF16ToUTF8 converts src to UTF-8, taking the byte order from a
// leading byte order mark. Without one the stream is assumed to be in
// native order. The mark itself is not converted but is included in
// consumed; a second mark after it is rejected with CodeBomRejected.
func UTF16ToUTF8(dst []byte, src []uint16, flags Flags) (written, consumed int, err error) {
	const op = "transcode.UTF16ToUTF8"
	if len(src) > 0 && isUTF16BOMUnit(src[0]) {
		if flags&ForbidBOM != 0 {
			return 0, 0, errBomRejected(op)
		}
		written, consumed, err = utf16ToUTF8(dst, src[1:], flags|ForbidBOM, utf16SwapFromBOM(src[0]), op)
		return written, consumed + 1, err
	}
	return utf16ToUTF8(dst, src, flags, false, op)
}

// UTF16NEToUTF32Len measures the conversion of native order src to
// UTF-32. Since every code point is one unit, the result is the code
// point count of the content. Error behavior matches UTF16NEToUTF8Len.
func UTF16NEToUTF32Len(src []uint16, flags Flags) (utf32Len, consumed int, err error) {
	return utf16ToUTF32(nil, src, flags, false, false, "transcode.UTF16NEToUTF32Len")
}

// UTF16LEToUTF32Len measures the conversion of little endian src to
// UTF-32.
func UTF16LEToUTF32Len(src []uint16, flags Flags) (utf32Len, consumed int, err error) {
	return utf16ToUTF32(nil, src, flags, !hostLittleEndian, false, "transcode.UTF16LEToUTF32Len")
}

// UTF16BEToUTF32Len measures the conversion of big endian src to
// UTF-32.
func UTF16BEToUTF32Len(src []uint16, flags Flags) (utf32Len, consumed int, err error) {
	return utf16ToUTF32(nil, src, flags, hostLittleEndian, false, "transcode.UTF16BEToUTF32Len")
}

// UTF16ToUTF32Len measures the conversion of src to UTF-32, taking the
// byte order from a leading byte order mark. Without one the stream is
// assumed to be in native order.
func UTF16ToUTF32Len(src []uint16, flags Flags) (utf32Len, consumed int, err error) {
	const op = "transcode.UTF16ToUTF32Len"
	if len(src) > 0 && isUTF16BOMUnit(src[0]) {
		if flags&ForbidBOM != 0 {
			return 0, 0, errBomRejected(op)
		}
		swapIn := utf16SwapFromBOM(src[0])
		utf32Len, consumed, err = utf16ToUTF32(nil, src[1:], flags|ForbidBOM, swapIn, false, op)
		return utf32Len, consumed + 1, err
	}
	return utf16ToUTF32(nil, src, flags, false, false, op)
}

// UTF16NEToUTF32NE converts native order src to native order UTF-32.
// Error behavior matches UTF16NEToUTF8.
func UTF16NEToUTF32NE(dst []uint32, src []uint16, flags Flags) (written, consumed int, err error) {
	return utf16ToUTF32(dst, src, flags, false, false, "transcode.UTF16NEToUTF32NE")
}

// UTF16LEToUTF32LE converts little endian src to little endian UTF-32.
func UTF16LEToUTF32LE(dst []uint32, src []uint16, flags Flags) (written, consumed int, err error) {
	return utf16ToUTF32(dst, src, flags, !hostLittleEndian, !hostLittleEndian, "transcode.UTF16LEToUTF32LE")
}

// UTF16BEToUTF32BE converts big endian src to big endian UTF-32.
func UTF16BEToUTF32BE(dst []uint32, src []uint16, flags Flags) (written, consumed int, err error) {
	return utf16ToUTF32(dst, src, flags, hostLittleEndian, hostLittleEndian, "transcode.UTF16BEToUTF32BE")
}

// UTF16ToUTF32 converts src to UTF-32, taking the byte order from a
// leading byte order mark and emitting UTF-32 in that same order.
// Without a mark the stream is assumed to be in native order. The mark
// itself is not converted but is included in consumed; a second mark
// after it is rejected with CodeBomRejected.
func UTF16ToUTF32(dst []uint32, src []uint16, flags Flags) (written, consumed int, err error) {
	const op = "transcode.UTF16ToUTF32"
	if len(src) > 0 && isUTF16BOMUnit(src[0]) {
		if flags&ForbidBOM != 0 {
			return 0, 0, errBomRejected(op)
		}
		swapIn := utf16SwapFromBOM(src[0])
		written, consumed, err = utf16ToUTF32(dst, src[1:], flags|ForbidBOM, swapIn, swapIn, op)
		return written, consumed + 1, err
	}
	return utf16ToUTF32(dst, src, flags, false, false, op)
}
