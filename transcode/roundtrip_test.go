// File: roundtrip_test.go
// Title: Conversion Round-Trip Tests
// Description: Exhaustive and sampled round-trip tests across the
//              three transformation formats, plus the guarantee that
//              measuring and materializing agree.
// Version: v0.1.0
// Created: 2026-01-15
// Modified: 2026-01-15
//
// Change History:
// - 2026-01-15 v0.1.0: Initial implementation

package transcode

import (
	"bytes"
	"testing"
)

// allCodePointsUTF8 returns every valid code point encoded back to
// back in UTF-8.
func allCodePointsUTF8() []byte {
	src := make([]byte, 0, 5*1024*1024)
	var buf [4]byte
	for cp := uint32(0); cp <= MaxCodePoint; cp++ {
		if IsSurrogate(cp) {
			continue
		}
		n := EncodeUTF8CodePoint(buf[:], cp)
		src = append(src, buf[:n]...)
	}
	return src
}

func TestRoundTripAllCodePoints(t *testing.T) {
	src := allCodePointsUTF8()

	t.Run("through utf16", func(t *testing.T) {
		n16, consumed, err := UTF8ToUTF16Len(src, 0)
		if err != nil || consumed != len(src) {
			t.Fatalf("measure: consumed %d of %d, err %v", consumed, len(src), err)
		}

		utf16 := make([]uint16, n16)
		written, _, err := UTF8ToUTF16(utf16, src, 0)
		if err != nil || written != n16 {
			t.Fatalf("materialize: wrote %d of %d, err %v", written, n16, err)
		}

		n8, _, err := UTF16NEToUTF8Len(utf16, 0)
		if err != nil {
			t.Fatalf("measure back: %v", err)
		}
		if n8 != len(src) {
			t.Fatalf("back measure = %d bytes, want %d", n8, len(src))
		}

		back := make([]byte, n8)
		if _, _, err := UTF16NEToUTF8(back, utf16, 0); err != nil {
			t.Fatalf("materialize back: %v", err)
		}
		if !bytes.Equal(back, src) {
			t.Fatal("utf8 -> utf16 -> utf8 round trip changed the data")
		}
	})

	t.Run("through utf32", func(t *testing.T) {
		n32, _, err := UTF8ToUTF32Len(src, 0)
		if err != nil {
			t.Fatalf("measure: %v", err)
		}

		utf32 := make([]uint32, n32)
		written, _, err := UTF8ToUTF32(utf32, src, 0)
		if err != nil || written != n32 {
			t.Fatalf("materialize: wrote %d of %d, err %v", written, n32, err)
		}

		// Every unit must be exactly the code point it came from.
		i := 0
		for cp := uint32(0); cp <= MaxCodePoint; cp++ {
			if IsSurrogate(cp) {
				continue
			}
			if utf32[i] != cp {
				t.Fatalf("unit %d = %#x, want %#x", i, utf32[i], cp)
			}
			i++
		}

		n8, _, err := UTF32NEToUTF8Len(utf32, 0)
		if err != nil || n8 != len(src) {
			t.Fatalf("back measure = %d bytes, err %v, want %d", n8, err, len(src))
		}

		back := make([]byte, n8)
		if _, _, err := UTF32NEToUTF8(back, utf32, 0); err != nil {
			t.Fatalf("materialize back: %v", err)
		}
		if !bytes.Equal(back, src) {
			t.Fatal("utf8 -> utf32 -> utf8 round trip changed the data")
		}
	})

	t.Run("utf16 and utf32 agree", func(t *testing.T) {
		n16, _, err := UTF8ToUTF16Len(src, 0)
		if err != nil {
			t.Fatalf("measure: %v", err)
		}
		utf16 := make([]uint16, n16)
		if _, _, err := UTF8ToUTF16(utf16, src, 0); err != nil {
			t.Fatalf("utf16: %v", err)
		}

		n32, _, err := UTF16NEToUTF32Len(utf16, 0)
		if err != nil {
			t.Fatalf("measure 32: %v", err)
		}
		utf32 := make([]uint32, n32)
		if _, _, err := UTF16NEToUTF32NE(utf32, utf16, 0); err != nil {
			t.Fatalf("utf32: %v", err)
		}

		back16 := make([]uint16, n16)
		written, _, err := UTF32NEToUTF16NE(back16, utf32, 0)
		if err != nil || written != n16 {
			t.Fatalf("back to utf16: wrote %d of %d, err %v", written, n16, err)
		}
		for i := range utf16 {
			if back16[i] != utf16[i] {
				t.Fatalf("unit %d = %#04x, want %#04x", i, back16[i], utf16[i])
			}
		}
	})
}

func TestRoundTripEndianVariants(t *testing.T) {
	src := []byte("Größe €100 — 𝄞 and περισσότερα")

	t.Run("utf16 little endian", func(t *testing.T) {
		n, _, err := UTF8ToUTF16Len(src, 0)
		if err != nil {
			t.Fatal(err)
		}
		units := make([]uint16, n)
		if _, _, err := UTF8ToUTF16LE(units, src, 0); err != nil {
			t.Fatal(err)
		}

		back := make([]byte, len(src))
		written, consumed, err := UTF16LEToUTF8(back, units, 0)
		if err != nil || written != len(src) || consumed != n {
			t.Fatalf("got (%d, %d, %v), want (%d, %d, nil)", written, consumed, err, len(src), n)
		}
		if !bytes.Equal(back, src) {
			t.Error("little endian round trip changed the data")
		}
	})

	t.Run("utf16 big endian", func(t *testing.T) {
		n, _, err := UTF8ToUTF16Len(src, 0)
		if err != nil {
			t.Fatal(err)
		}
		units := make([]uint16, n)
		if _, _, err := UTF8ToUTF16BE(units, src, 0); err != nil {
			t.Fatal(err)
		}

		back := make([]byte, len(src))
		if _, _, err := UTF16BEToUTF8(back, units, 0); err != nil {
			t.Fatal(err)
		}
		if !bytes.Equal(back, src) {
			t.Error("big endian round trip changed the data")
		}
	})

	t.Run("utf32 both orders", func(t *testing.T) {
		n, _, err := UTF8ToUTF32Len(src, 0)
		if err != nil {
			t.Fatal(err)
		}

		for _, order := range []struct {
			name string
			to   func([]uint32, []byte, Flags) (int, int, error)
			from func([]byte, []uint32, Flags) (int, int, error)
		}{
			{"le", UTF8ToUTF32LE, UTF32LEToUTF8},
			{"be", UTF8ToUTF32BE, UTF32BEToUTF8},
		} {
			units := make([]uint32, n)
			if _, _, err := order.to(units, src, 0); err != nil {
				t.Fatalf("%s to: %v", order.name, err)
			}
			back := make([]byte, len(src))
			if _, _, err := order.from(back, units, 0); err != nil {
				t.Fatalf("%s from: %v", order.name, err)
			}
			if !bytes.Equal(back, src) {
				t.Errorf("%s round trip changed the data", order.name)
			}
		}
	})

	t.Run("swap matches specific order", func(t *testing.T) {
		n, _, err := UTF8ToUTF16Len(src, 0)
		if err != nil {
			t.Fatal(err)
		}

		le := make([]uint16, n)
		be := make([]uint16, n)
		if _, _, err := UTF8ToUTF16LE(le, src, 0); err != nil {
			t.Fatal(err)
		}
		if _, _, err := UTF8ToUTF16BE(be, src, 0); err != nil {
			t.Fatal(err)
		}

		SwapEndianUTF16(le)
		for i := range be {
			if le[i] != be[i] {
				t.Fatalf("unit %d: swapped le %#04x != be %#04x", i, le[i], be[i])
			}
		}
	})
}

func TestMeasureMatchesMaterialize(t *testing.T) {
	inputs := [][]byte{
		[]byte(""),
		[]byte("plain ascii"),
		[]byte("mixed héllo wörld €"),
		[]byte("𝄞𝄢𝄪"),
		{0xEF, 0xBB, 0xBF, 0x41, 0x42},
		// Malformed sequences repaired leniently, stray continuation
		// bytes, and an encoded surrogate that passes through.
		{0xC0, 0x61, 0xF5, 0x62},
		{0x61, 0x80, 0x80, 0x62},
		{0xED, 0xA0, 0x80},
	}

	for _, src := range inputs {
		n16, consumed16, err := UTF8ToUTF16Len(src, 0)
		if err != nil {
			t.Fatalf("measure %q: %v", src, err)
		}

		dst16 := make([]uint16, n16)
		written, consumed, err := UTF8ToUTF16(dst16, src, 0)
		if err != nil {
			t.Fatalf("materialize %q: %v", src, err)
		}
		if written != n16 || consumed != consumed16 {
			t.Errorf("%q: materialize (%d, %d) != measure (%d, %d)", src, written, consumed, n16, consumed16)
		}

		n32, _, err := UTF8ToUTF32Len(src, 0)
		if err != nil {
			t.Fatalf("measure 32 %q: %v", src, err)
		}
		dst32 := make([]uint32, n32)
		written, _, err = UTF8ToUTF32(dst32, src, 0)
		if err != nil || written != n32 {
			t.Errorf("%q: utf32 materialize wrote %d, measured %d, err %v", src, written, n32, err)
		}
	}
}
