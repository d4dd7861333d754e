// File: bom.go
// Title: Byte Order Mark Detection
// Description: Implements detection of byte order marks in raw byte
//              streams and in code unit slices. The conversion entry
//              points use these to skip, honor or reject a leading BOM
//              according to the caller's flags.
// Version: v0.1.0
// Created: 2026-01-15
// Modified: 2026-01-15
//
// Change History:
// - 2026-01-15 v0.1.0: Initial implementation

package transcode

// UTF8HasBOM reports whether b begins with the UTF-8 byte order mark
// EF BB BF.
func UTF8HasBOM(b []byte) bool {
	return len(b) >= 3 && b[0] == 0xEF && b[1] == 0xBB && b[2] == 0xBF
}

// UTF16IsBOMLE reports whether b begins with the little endian UTF-16
// byte order mark FF FE.
func UTF16IsBOMLE(b []byte) bool {
	return len(b) >= 2 && b[0] == 0xFF && b[1] == 0xFE
}

// UTF16IsBOMBE reports whether b begins with the big endian UTF-16
// byte order mark FE FF.
func UTF16IsBOMBE(b []byte) bool {
	return len(b) >= 2 && b[0] == 0xFE && b[1] == 0xFF
}

// UTF16HasBOM reports whether b begins with a UTF-16 byte order mark
// of either endianness.
func UTF16HasBOM(b []byte) bool {
	return UTF16IsBOMLE(b) || UTF16IsBOMBE(b)
}

// UTF32IsBOMLE reports whether b begins with the little endian UTF-32
// byte order mark FF FE 00 00.
func UTF32IsBOMLE(b []byte) bool {
	return len(b) >= 4 && b[0] == 0xFF && b[1] == 0xFE && b[2] == 0x00 && b[3] == 0x00
}

// UTF32IsBOMBE reports whether b begins with the big endian UTF-32
// byte order mark 00 00 FE FF.
func UTF32IsBOMBE(b []byte) bool {
	return len(b) >= 4 && b[0] == 0x00 && b[1] == 0x00 && b[2] == 0xFE && b[3] == 0xFF
}

// UTF32HasBOM reports whether b begins with a UTF-32 byte order mark
// of either endianness.
func UTF32HasBOM(b []byte) bool {
	return UTF32IsBOMLE(b) || UTF32IsBOMBE(b)
}

// isUTF16BOMUnit reports whether a code unit read in host order is a
// byte order mark of either endianness. U+FEFF is the mark itself;
// 0xFFFE is how the opposite-endian mark appears after a host order
// load.
func isUTF16BOMUnit(u uint16) bool {
	return u == 0xFEFF || u == 0xFFFE
}

// isUTF32BOMUnit reports whether a 32-bit unit read in host order is a
// byte order mark of either endianness.
func isUTF32BOMUnit(u uint32) bool {
	return u == 0x0000FEFF || u == 0xFFFE0000
}

// utf16SwapFromBOM reports whether a stream whose leading BOM loads as
// u in host order is in the opposite byte order to the host. Only
// meaningful when isUTF16BOMUnit(u) holds.
func utf16SwapFromBOM(u uint16) bool {
	return u == 0xFFFE
}

// utf32SwapFromBOM reports whether a stream whose leading BOM loads as
// u in host order is in the opposite byte order to the host.
func utf32SwapFromBOM(u uint32) bool {
	return u == 0xFFFE0000
}
