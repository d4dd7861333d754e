// File: whitespace.go
// Title: Unicode Whitespace and Line Helpers
// Description: Implements the Unicode-aware whitespace classification
//              and scanning helpers used by the lexer and the string
//              handling packages. All scanning functions operate on
//              UTF-8 input and decode leniently, so malformed bytes
//              act as ordinary non-whitespace content.
// Version: v0.1.0
// Created: 2026-01-15
// Modified: 2026-01-15
//
// Change History:
// - 2026-01-15 v0.1.0: Initial implementation

package transcode

// IsWhitespace reports whether cp is a Unicode whitespace code point.
// The set covers the ASCII controls TAB through CR, the space
// characters of the Latin-1 and general punctuation blocks, and the
// line and paragraph separators.
func IsWhitespace(cp uint32) bool {
	switch cp {
	case 0x0020, 0x0085, 0x00A0, 0x1680, 0x2028, 0x2029, 0x202F, 0x205F, 0x3000:
		return true
	}
	return (cp >= 0x0009 && cp <= 0x000D) || (cp >= 0x2000 && cp <= 0x200A)
}

// IsNewline reports whether cp terminates a line: LF, VT, FF, CR, NEL,
// and the Unicode line and paragraph separators.
func IsNewline(cp uint32) bool {
	return (cp >= 0x000A && cp <= 0x000D) || cp == 0x0085 || cp == 0x2028 || cp == 0x2029
}

// IsNullOrWhitespace reports whether b is empty or consists entirely of
// whitespace code points. Malformed bytes make the result false.
func IsNullOrWhitespace(b []byte) bool {
	for len(b) > 0 {
		cp, n, err := DecodeUTF8CodePoint(b)
		if err != nil {
			return false
		}
		if !IsWhitespace(cp) {
			return false
		}
		b = b[n:]
	}
	return true
}

// LTrimOffset returns the byte offset of the first code point in b
// that is not whitespace, which is len(b) when b is all whitespace.
// Malformed bytes stop the scan like non-whitespace content.
func LTrimOffset(b []byte) int {
	i := 0
	for i < len(b) {
		cp, n, err := DecodeUTF8CodePoint(b[i:])
		if err != nil || !IsWhitespace(cp) {
			break
		}
		i += n
	}
	return i
}

// RTrimOffset returns the byte offset just past the last code point in
// b that is not whitespace, which is 0 when b is empty or all
// whitespace. b[:RTrimOffset(b)] is b with trailing whitespace removed.
func RTrimOffset(b []byte) int {
	trimmed := 0

	i := 0
	for i < len(b) {
		cp, n, err := DecodeUTF8CodePoint(b[i:])
		if err != nil {
			break
		}
		if !IsWhitespace(cp) {
			trimmed = i + n
		}
		i += n
	}

	return trimmed
}

// NextWhitespace returns the byte offset of the first whitespace code
// point in b, or -1 if there is none.
func NextWhitespace(b []byte) int {
	i := 0
	for i < len(b) {
		cp, n, err := DecodeUTF8CodePoint(b[i:])
		if err != nil {
			break
		}
		if IsWhitespace(cp) {
			return i
		}
		i += n
	}
	return -1
}

// NextLine returns the byte offset of the start of the next line in b
// together with the length of the current line, excluding its
// terminator. A CR immediately followed by LF counts as a single
// terminator. When no terminator remains, next is -1 and lineLen is
// len(b).
func NextLine(b []byte) (next, lineLen int) {
	i := 0
	for i < len(b) {
		cp, n, err := DecodeUTF8CodePoint(b[i:])
		if err != nil {
			break
		}
		if IsNewline(cp) {
			lineLen = i
			i += n
			if cp == 0x000D && i < len(b) && b[i] == 0x0A {
				i += 1
			}
			return i, lineLen
		}
		i += n
	}
	return -1, len(b)
}
