// File: endian.go
// Title: Byte Order Detection and Swapping
// Description: Detects the native byte order of the host and provides
//              the unit swapping helpers used when converting between
//              native, little and big endian representations.
// Version: v0.1.0
// Created: 2026-01-15
// Modified: 2026-01-15
//
// Change History:
// - 2026-01-15 v0.1.0: Initial implementation

package transcode

import (
	"encoding/binary"
	"math/bits"
)

// hostLittleEndian is true when the native byte order of the host is
// little endian. The "native" conversion variants are interpreted
// relative to this.
var hostLittleEndian = binary.NativeEndian.Uint16([]byte{0x34, 0x12}) == 0x1234

// IsLittleEndian reports whether the host byte order is little endian.
func IsLittleEndian() bool {
	return hostLittleEndian
}

// IsBigEndian reports whether the host byte order is big endian.
func IsBigEndian() bool {
	return !hostLittleEndian
}

// SwapEndianUTF16 reverses the byte order of every unit in s, in place.
func SwapEndianUTF16(s []uint16) {
	for i := range s {
		s[i] = bits.ReverseBytes16(s[i])
	}
}

// SwapEndianUTF32 reverses the byte order of every unit in s, in place.
func SwapEndianUTF32(s []uint32) {
	for i := range s {
		s[i] = bits.ReverseBytes32(s[i])
	}
}

// swap16If returns u with its bytes reversed when swap is set. The
// conversion loops use it to move single units between the host order
// and a requested stream order.
func swap16If(u uint16, swap bool) uint16 {
	if swap {
		return bits.ReverseBytes16(u)
	}
	return u
}

// swap32If returns u with its bytes reversed when swap is set.
func swap32If(u uint32, swap bool) uint32 {
	if swap {
		return bits.ReverseBytes32(u)
	}
	return u
}
