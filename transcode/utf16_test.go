// File: utf16_test.go
// Title: UTF-16 Source Conversion Tests
// Description: Tests for the UTF-16 to UTF-8 and UTF-16 to UTF-32
//              conversion entry points, covering surrogate handling,
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

// loadUTF16 turns a raw byte stream into code units the way reading a
// file into memory would, one native order load per unit. The tests use
// it to build streams of a known byte order portably.
func loadUTF16(b ...byte) []uint16 {
	units := make([]uint16, len(b)/2)
	for i := range units {
		units[i] = binary.NativeEndian.Uint16(b[2*i:])
	}
	return units
}

func TestUTF16NEToUTF8Len(t *testing.T) {
	tests := []struct {
		name         string
		in           []uint16
		flags        Flags
		wantLen      int
		wantConsumed int
		wantCode     grimmerror.Code
	}{
		{"empty", nil, 0, 0, 0, ""},
		{"ascii", []uint16{0x0041}, 0, 1, 1, ""},
		{"three byte", []uint16{0x20AC}, 0, 3, 1, ""},
		{"surrogate pair", []uint16{0xD834, 0xDD1E}, 0, 4, 2, ""},
		{"lone low surrogate replaced", []uint16{0xDD1E}, 0, 3, 1, ""},
		{"high without low replaced", []uint16{0xD834, 0x0041}, 0, 3, 2, ""},
		{"lone high at end", []uint16{0xD834}, 0, 0, 0, grimmerror.CodeInvalidArgument},
		{"lone low strict", []uint16{0xDD1E}, ErrorOnInvalidCodePoint, 0, 0, grimmerror.CodeInvalidCodePoint},
		{"bom skipped and counted", []uint16{0xFEFF, 0x0041}, 0, 1, 2, ""},
		{"opposite order mark also skipped", []uint16{0xFFFE, 0x0041}, 0, 1, 2, ""},
		{"bom forbidden", []uint16{0xFEFF, 0x0041}, ForbidBOM, 0, 0, grimmerror.CodeBomRejected},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n, consumed, err := UTF16NEToUTF8Len(tt.in, tt.flags)
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

func TestUTF16NEToUTF8(t *testing.T) {
	src := []uint16{0x0041, 0x20AC, 0xD834, 0xDD1E}

	n, _, err := UTF16NEToUTF8Len(src, 0)
	if err != nil {
		t.Fatalf("measure: %v", err)
	}

	dst := make([]byte, n)
	written, consumed, err := UTF16NEToUTF8(dst, src, 0)
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

func TestUTF16ToUTF8ByteOrderMark(t *testing.T) {
	t.Run("little endian stream", func(t *testing.T) {
		src := loadUTF16(0xFF, 0xFE, 0xAC, 0x20)
		dst := make([]byte, 3)
		written, consumed, err := UTF16ToUTF8(dst, src, 0)
		if err != nil {
			t.Fatalf("convert: %v", err)
		}
		if written != 3 || consumed != 2 {
			t.Fatalf("got (%d, %d), want (3, 2)", written, consumed)
		}
		if string(dst) != "€" {
			t.Errorf("dst = %q, want %q", dst, "€")
		}
	})

	t.Run("big endian stream", func(t *testing.T) {
		src := loadUTF16(0xFE, 0xFF, 0xD8, 0x34, 0xDD, 0x1E)
		dst := make([]byte, 4)
		written, consumed, err := UTF16ToUTF8(dst, src, 0)
		if err != nil {
			t.Fatalf("convert: %v", err)
		}
		if written != 4 || consumed != 3 {
			t.Fatalf("got (%d, %d), want (4, 3)", written, consumed)
		}
		if string(dst) != "𝄞" {
			t.Errorf("dst = %q, want %q", dst, "𝄞")
		}
	})

	t.Run("no mark assumes native order", func(t *testing.T) {
		dst := make([]byte, 3)
		written, consumed, err := UTF16ToUTF8(dst, []uint16{0x20AC}, 0)
		if err != nil {
			t.Fatalf("convert: %v", err)
		}
		if written != 3 || consumed != 1 || string(dst) != "€" {
			t.Errorf("got (%d, %d, %q), want (3, 1, %q)", written, consumed, dst, "€")
		}
	})

	t.Run("second mark rejected", func(t *testing.T) {
		src := loadUTF16(0xFF, 0xFE, 0xFF, 0xFE, 0xAC, 0x20)
		written, consumed, err := UTF16ToUTF8(make([]byte, 8), src, 0)
		if !grimmerror.HasCode(err, grimmerror.CodeBomRejected) {
			t.Fatalf("error = %v, want bom rejected", err)
		}
		if written != 0 || consumed != 1 {
			t.Errorf("got (%d, %d), want (0, 1)", written, consumed)
		}
	})

	t.Run("forbidden", func(t *testing.T) {
		src := loadUTF16(0xFF, 0xFE, 0xAC, 0x20)
		written, consumed, err := UTF16ToUTF8(make([]byte, 8), src, ForbidBOM)
		if !grimmerror.HasCode(err, grimmerror.CodeBomRejected) {
			t.Fatalf("error = %v, want bom rejected", err)
		}
		if written != 0 || consumed != 0 {
			t.Errorf("got (%d, %d), want (0, 0)", written, consumed)
		}
	})
}

func TestUTF16SpecificEndianToUTF8(t *testing.T) {
	t.Run("little endian", func(t *testing.T) {
		src := loadUTF16(0xAC, 0x20)
		n, consumed, err := UTF16LEToUTF8Len(src, 0)
		if err != nil || n != 3 || consumed != 1 {
			t.Fatalf("measure: got (%d, %d, %v), want (3, 1, nil)", n, consumed, err)
		}

		dst := make([]byte, n)
		if _, _, err := UTF16LEToUTF8(dst, src, 0); err != nil {
			t.Fatalf("convert: %v", err)
		}
		if string(dst) != "€" {
			t.Errorf("dst = %q, want %q", dst, "€")
		}
	})

	t.Run("big endian", func(t *testing.T) {
		src := loadUTF16(0x20, 0xAC)
		dst := make([]byte, 3)
		if _, _, err := UTF16BEToUTF8(dst, src, 0); err != nil {
			t.Fatalf("convert: %v", err)
		}
		if string(dst) != "€" {
			t.Errorf("dst = %q, want %q", dst, "€")
		}
	})

	// A fixed order entry point skips a leading mark of either byte
	// order but keeps decoding in its own order.
	t.Run("mark skipped without changing order", func(t *testing.T) {
		src := loadUTF16(0xFE, 0xFF, 0xAC, 0x20)
		dst := make([]byte, 3)
		written, consumed, err := UTF16LEToUTF8(dst, src, 0)
		if err != nil {
			t.Fatalf("convert: %v", err)
		}
		if written != 3 || consumed != 2 || string(dst) != "€" {
			t.Errorf("got (%d, %d, %q), want (3, 2, %q)", written, consumed, dst, "€")
		}
	})
}

func TestUTF16ToUTF8OutOfSpace(t *testing.T) {
	src := []uint16{0x0041, 0x20AC}
	dst := make([]byte, 1)

	written, consumed, err := UTF16NEToUTF8(dst, src, 0)
	if !grimmerror.HasCode(err, grimmerror.CodeOutOfSpace) {
		t.Fatalf("error = %v, want out of space", err)
	}
	if written != 1 || consumed != 1 {
		t.Errorf("got (%d, %d), want (1, 1)", written, consumed)
	}
	if dst[0] != 'A' {
		t.Errorf("dst[0] = %#x, want 0x41", dst[0])
	}
}

func TestUTF16NEToUTF32NE(t *testing.T) {
	src := []uint16{0x0041, 0xD834, 0xDD1E}
	want := []uint32{0x41, 0x1D11E}

	n, consumed, err := UTF16NEToUTF32Len(src, 0)
	if err != nil || n != len(want) || consumed != len(src) {
		t.Fatalf("measure: got (%d, %d, %v), want (%d, %d, nil)", n, consumed, err, len(want), len(src))
	}

	dst := make([]uint32, n)
	written, consumed, err := UTF16NEToUTF32NE(dst, src, 0)
	if err != nil {
		t.Fatalf("convert: %v", err)
	}
	if written != len(want) || consumed != len(src) {
		t.Fatalf("got (%d, %d), want (%d, %d)", written, consumed, len(want), len(src))
	}
	for i := range want {
		if dst[i] != want[i] {
			t.Errorf("unit %d = %#x, want %#x", i, dst[i], want[i])
		}
	}
}

func TestUTF16NEToUTF32Truncated(t *testing.T) {
	src := []uint16{0x0041, 0xD834}
	dst := make([]uint32, 2)

	written, consumed, err := UTF16NEToUTF32NE(dst, src, 0)
	if !grimmerror.HasCode(err, grimmerror.CodeInvalidArgument) {
		t.Fatalf("error = %v, want invalid argument", err)
	}
	if written != 1 || consumed != 1 {
		t.Errorf("got (%d, %d), want (1, 1)", written, consumed)
	}
}

func TestUTF16ToUTF32KeepsStreamOrder(t *testing.T) {
	// Little endian input with a mark produces little endian output.
	src := loadUTF16(0xFF, 0xFE, 0x34, 0xD8, 0x1E, 0xDD)
	dst := make([]uint32, 1)

	written, consumed, err := UTF16ToUTF32(dst, src, 0)
	if err != nil {
		t.Fatalf("convert: %v", err)
	}
	if written != 1 || consumed != 3 {
		t.Fatalf("got (%d, %d), want (1, 3)", written, consumed)
	}

	var buf [4]byte
	binary.NativeEndian.PutUint32(buf[:], dst[0])
	if buf != [4]byte{0x1E, 0xD1, 0x01, 0x00} {
		t.Errorf("output bytes = % X, want 1E D1 01 00", buf[:])
	}
}
