// File: utf32_test.go
// Title: UTF-32 Source Conversion Tests
// Description: Tests for the UTF-32 to UTF-8 and UTF-32 to UTF-16
//              conversion entry points, covering range validation,
//              byte order detection and destination sizing.
// Version: v0.1.0
// Created: 2026-01-15
// Modified: 2026-01-15
//
// Change History:
// - 2026-01-15 v0.1.0: Initial implementation

package transcode

import (
	"encoding/binary"
	"testing"

	grimmerror "github.com/msto63/grimm/core/error"
)

// loadUTF32 turns a raw byte stream into 32-bit code units using native
// order loads, mirroring loadUTF16.
func loadUTF32(b ...byte) []uint32 {
	units := make([]uint32, len(b)/4)
	for i := range units {
		units[i] = binary.NativeEndian.Uint32(b[4*i:])
	}
	return units
}

func TestUTF32NEToUTF8Len(t *testing.T) {
	tests := []struct {
		name         string
		in           []uint32
		flags        Flags
		wantLen      int
		wantConsumed int
		wantCode     grimmerror.Code
	}{
		{"empty", nil, 0, 0, 0, ""},
		{"ascii", []uint32{0x41}, 0, 1, 1, ""},
		{"three byte", []uint32{0x20AC}, 0, 3, 1, ""},
		{"four byte", []uint32{0x1D11E}, 0, 4, 1, ""},
		{"surrogate value replaced", []uint32{0xD800}, 0, 3, 1, ""},
		{"out of range replaced", []uint32{0x110000}, 0, 3, 1, ""},
		{"surrogate value strict", []uint32{0x41, 0xD800}, ErrorOnInvalidCodePoint, 1, 1, grimmerror.CodeInvalidCodePoint},
		{"bom skipped and counted", []uint32{0x0000FEFF, 0x41}, 0, 1, 2, ""},
		{"bom forbidden", []uint32{0x0000FEFF, 0x41}, ForbidBOM, 0, 0, grimmerror.CodeBomRejected},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n, consumed, err := UTF32NEToUTF8Len(tt.in, tt.flags)
			if tt.wantCode != "" {
				if !grimmerror.HasCode(err, tt.wantCode) {
					t.Fatalf("error = %v, want code %s", err, tt.wantCode)
				}
			} else if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if n != tt.wantLen || consumed != tt.wantConsumed {
				t.Errorf("got (%d, %d), want (%d, %d)", n, consumed, tt.wantLen, tt.wantConsumed)
			}
		})
	}
}

func TestUTF32NEToUTF8(t *testing.T) {
	src := []uint32{0x41, 0x20AC, 0x1D11E}

	n, _, err := UTF32NEToUTF8Len(src, 0)
	if err != nil {
		t.Fatalf("measure: %v", err)
	}

	dst := make([]byte, n)
	written, consumed, err := UTF32NEToUTF8(dst, src, 0)
	if err != nil {
		t.Fatalf("convert: %v", err)
	}
	if written != n || consumed != len(src) {
		t.Fatalf("got (%d, %d), want (%d, %d)", written, consumed, n, len(src))
	}
	if string(dst) != "A€𝄞" {
		t.Errorf("dst = %q, want %q", dst, "A€𝄞")
	}
}

func TestUTF32ToUTF8ByteOrderMark(t *testing.T) {
	t.Run("little endian stream", func(t *testing.T) {
		src := loadUTF32(0xFF, 0xFE, 0x00, 0x00, 0xAC, 0x20, 0x00, 0x00)
		dst := make([]byte, 3)
		written, consumed, err := UTF32ToUTF8(dst, src, 0)
		if err != nil {
			t.Fatalf("convert: %v", err)
		}
		if written != 3 || consumed != 2 || string(dst) != "€" {
			t.Errorf("got (%d, %d, %q), want (3, 2, %q)", written, consumed, dst, "€")
		}
	})

	t.Run("big endian stream", func(t *testing.T) {
		src := loadUTF32(0x00, 0x00, 0xFE, 0xFF, 0x00, 0x00, 0x20, 0xAC)
		dst := make([]byte, 3)
		written, consumed, err := UTF32ToUTF8(dst, src, 0)
		if err != nil {
			t.Fatalf("convert: %v", err)
		}
		if written != 3 || consumed != 2 || string(dst) != "€" {
			t.Errorf("got (%d, %d, %q), want (3, 2, %q)", written, consumed, dst, "€")
		}
	})

	t.Run("second mark rejected", func(t *testing.T) {
		src := loadUTF32(
			0xFF, 0xFE, 0x00, 0x00,
			0xFF, 0xFE, 0x00, 0x00,
			0xAC, 0x20, 0x00, 0x00,
		)
		written, consumed, err := UTF32ToUTF8(make([]byte, 8), src, 0)
		if !grimmerror.HasCode(err, grimmerror.CodeBomRejected) {
			t.Fatalf("error = %v, want bom rejected", err)
		}
		if written != 0 || consumed != 1 {
			t.Errorf("got (%d, %d), want (0, 1)", written, consumed)
		}
	})
}

func TestUTF32SpecificEndianToUTF8(t *testing.T) {
	t.Run("little endian", func(t *testing.T) {
		src := loadUTF32(0xAC, 0x20, 0x00, 0x00)
		dst := make([]byte, 3)
		if _, _, err := UTF32LEToUTF8(dst, src, 0); err != nil {
			t.Fatalf("convert: %v", err)
		}
		if string(dst) != "€" {
			t.Errorf("dst = %q, want %q", dst, "€")
		}
	})

	t.Run("big endian", func(t *testing.T) {
		src := loadUTF32(0x00, 0x00, 0x20, 0xAC)
		dst := make([]byte, 3)
		if _, _, err := UTF32BEToUTF8(dst, src, 0); err != nil {
			t.Fatalf("convert: %v", err)
		}
		if string(dst) != "€" {
			t.Errorf("dst = %q, want %q", dst, "€")
		}
	})

	t.Run("mark skipped without changing order", func(t *testing.T) {
		src := loadUTF32(0x00, 0x00, 0xFE, 0xFF, 0xAC, 0x20, 0x00, 0x00)
		dst := make([]byte, 3)
		written, consumed, err := UTF32LEToUTF8(dst, src, 0)
		if err != nil {
			t.Fatalf("convert: %v", err)
		}
		if written != 3 || consumed != 2 || string(dst) != "€" {
			t.Errorf("got (%d, %d, %q), want (3, 2, %q)", written, consumed, dst, "€")
		}
	})
}

func TestUTF32NEToUTF16NE(t *testing.T) {
	src := []uint32{0x41, 0x1D11E}
	want := []uint16{0x0041, 0xD834, 0xDD1E}

	n, consumed, err := UTF32NEToUTF16Len(src, 0)
	if err != nil || n != len(want) || consumed != len(src) {
		t.Fatalf("measure: got (%d, %d, %v), want (%d, %d, nil)", n, consumed, err, len(want), len(src))
	}

	dst := make([]uint16, n)
	written, consumed, err := UTF32NEToUTF16NE(dst, src, 0)
	if err != nil {
		t.Fatalf("convert: %v", err)
	}
	if written != len(want) || consumed != len(src) {
		t.Fatalf("got (%d, %d), want (%d, %d)", written, consumed, len(want), len(src))
	}
	for i := range want {
		if dst[i] != want[i] {
			t.Errorf("unit %d = %#04x, want %#04x", i, dst[i], want[i])
		}
	}
}

func TestUTF32ToUTF16OutOfSpace(t *testing.T) {
	// A surrogate pair must not be split across the capacity limit.
	dst := make([]uint16, 1)
	written, consumed, err := UTF32NEToUTF16NE(dst, []uint32{0x1D11E}, 0)
	if !grimmerror.HasCode(err, grimmerror.CodeOutOfSpace) {
		t.Fatalf("error = %v, want out of space", err)
	}
	if written != 0 || consumed != 0 {
		t.Errorf("got (%d, %d), want (0, 0)", written, consumed)
	}
}

func TestUTF32ToUTF16KeepsStreamOrder(t *testing.T) {
	src := loadUTF32(0xFF, 0xFE, 0x00, 0x00, 0x1E, 0xD1, 0x01, 0x00)
	dst := make([]uint16, 2)

	written, consumed, err := UTF32ToUTF16(dst, src, 0)
	if err != nil {
		t.Fatalf("convert: %v", err)
	}
	if written != 2 || consumed != 2 {
		t.Fatalf("got (%d, %d), want (2, 2)", written, consumed)
	}

	var buf [4]byte
	binary.NativeEndian.PutUint16(buf[0:], dst[0])
	binary.NativeEndian.PutUint16(buf[2:], dst[1])
	if buf != [4]byte{0x34, 0xD8, 0x1E, 0xDD} {
		t.Errorf("output bytes = % X, want 34 D8 1E DD", buf[:])
	}
}
