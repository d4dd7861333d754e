// File: benchmark_test.go
// Title: Conversion Benchmarks
// Description: Benchmarks for the hot conversion loops and the
//              whitespace scanning helpers.
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

var benchUTF8 = bytes.Repeat([]byte("The quick brown fox – schnell über den Zaun – περνάει 𝄞 "), 64)

func benchUTF16Units(b *testing.B) []uint16 {
	n, _, err := UTF8ToUTF16Len(benchUTF8, 0)
	if err != nil {
		b.Fatal(err)
	}
	units := make([]uint16, n)
	if _, _, err := UTF8ToUTF16(units, benchUTF8, 0); err != nil {
		b.Fatal(err)
	}
	return units
}

func BenchmarkUTF8ToUTF16(b *testing.B) {
	n, _, _ := UTF8ToUTF16Len(benchUTF8, 0)
	dst := make([]uint16, n)
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		if _, _, err := UTF8ToUTF16(dst, benchUTF8, 0); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkUTF8ToUTF16Len(b *testing.B) {
	for i := 0; i < b.N; i++ {
		if _, _, err := UTF8ToUTF16Len(benchUTF8, 0); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkUTF8ToUTF32(b *testing.B) {
	n, _, _ := UTF8ToUTF32Len(benchUTF8, 0)
	dst := make([]uint32, n)
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		if _, _, err := UTF8ToUTF32(dst, benchUTF8, 0); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkUTF16ToUTF8(b *testing.B) {
	units := benchUTF16Units(b)
	dst := make([]byte, len(benchUTF8))
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		if _, _, err := UTF16NEToUTF8(dst, units, 0); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkUTF16ToUTF8Swapped(b *testing.B) {
	units := benchUTF16Units(b)
	SwapEndianUTF16(units)
	dst := make([]byte, len(benchUTF8))

	var from func([]byte, []uint16, Flags) (int, int, error)
	if IsLittleEndian() {
		from = UTF16BEToUTF8
	} else {
		from = UTF16LEToUTF8
	}
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		if _, _, err := from(dst, units, 0); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkIsNullOrWhitespace(b *testing.B) {
	in := bytes.Repeat([]byte(" \t 　"), 128)
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		IsNullOrWhitespace(in)
	}
}

func BenchmarkNextLine(b *testing.B) {
	in := bytes.Repeat([]byte("some line content here\r\n"), 128)
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		rest := in
		for {
			next, _ := NextLine(rest)
			if next < 0 {
				break
			}
			rest = rest[next:]
		}
	}
}
