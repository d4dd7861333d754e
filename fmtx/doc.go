// File: doc.go
// Title: Package Documentation for fmtx
// Description: Provides comprehensive documentation for the printf
//              style formatting package.
// Version: v0.1.0
// Created: 2026-01-16
// Modified: 2026-01-16
//
// Change History:
// - 2026-01-16 v0.1.0: Initial documentation

// Package fmtx formats values with C printf directive syntax, extended
// with digit grouping, metric suffixes and configurable separator
// characters, and delivers the output as a string, into a fixed or
// growing byte slice, or through a callback in fixed size chunks.
//
// Package: github.com/msto63/grimm/fmtx
// Title: Extended printf Style Formatting
// Description: A printf interpreter whose directive set follows the
//              C tradition where Go's fmt diverges from it, plus the
//              grouping and metric extensions the rest of the module
//              uses for human readable numeric output.
//
// # Overview
//
// Go's fmt package speaks a printf dialect of its own: %b means
// base two floating point, %x of a string hex dumps it, widths count
// runes, and there is no %n, no ' grouping and no metric notation.
// This package keeps the C meaning of every directive instead, so
// format strings written against the C family produce the same
// output here, and adds extensions for grouped and scaled numbers.
// The formatting engine works into small stack buffers and never
// allocates for typical directives; only extreme precisions spill to
// the heap.
//
// # Directives
//
// A directive is % followed by optional flags, an optional width, an
// optional .precision, optional (ignored) length modifiers, and a
// conversion character:
//
//   - %d, %i  signed decimal integer
//   - %u      unsigned decimal integer
//   - %x, %X  hexadecimal integer
//   - %o      octal integer
//   - %b, %B  binary integer
//   - %f      fixed point floating point
//   - %e, %E  exponent notation
//   - %g, %G  shortest of %f and %e
//   - %a, %A  hexadecimal floating point
//   - %s      string, []byte, error or fmt.Stringer
//   - %c      character (code point, encoded as UTF-8)
//   - %p      pointer as zero padded hexadecimal
//   - %n      store the output length so far into an *int
//   - %%      a literal percent sign
//
// The flags -, +, space, # and 0 keep their C meaning. Width and
// precision accept * to take the value from the argument list; a
// negative * width left justifies, a negative * precision is treated
// as omitted. Length modifiers (h, hh, l, ll, j, z, t, I, I32, I64)
// are parsed and ignored since the argument's Go type already fixes
// its size. An unknown conversion character is copied to the output
// unchanged, which is also how %% works.
//
// Nil string arguments format as "null". A directive whose argument
// is missing renders as "%!d(MISSING)", one whose argument has an
// unusable type as "%!d(BADTYPE)", each with the actual conversion
// character.
//
// # Extensions
//
// Beyond C99 the engine understands:
//
//   - %'d      group digits in threes: 1,234,567. Works for %d, %u,
//     %f and friends; for %x and %b the groups are four and eight
//     digits wide.
//   - %$d      metric notation scaled by powers of 1000: 1.5 M.
//   - %$$d     metric notation scaled by powers of 1024 with the
//     JEDEC suffixes K, M, G, T: 1.5 M.
//   - %$$$d    scaled by 1024 with the IEC suffixes Ki, Mi, Gi, Ti.
//   - %_$d     like %$d without the space before the suffix.
//
// # Separators
//
// The period and grouping characters are properties of a Formatter.
// The zero value and the package level functions use '.' and ',';
// a Formatter built with New(Separators{Period: ',', Comma: '.'})
// renders 1234567.89 as 1.234.567,89 in the European convention.
// Separator configuration affects only these two characters, never
// the digits themselves.
//
// # Output Sinks
//
// Four entry points share the one engine:
//
//	s := fmtx.Sprintf("%'d", 1234567)      // string
//	n := fmtx.Snprintf(buf, "%d", 42)      // fixed buffer, returns need
//	buf = fmtx.Bprintf(buf, "%d", 42)      // append, like strconv
//	n := fmtx.Vsprintfcb(cb, "%d", 42)     // 512 byte chunks
//
// Snprintf never writes past len(dst) and returns the length the
// complete output requires, so truncation is detected by comparing
// the result against len(dst). No terminator byte is written; the
// buffer holds content only. Vsprintfcb hands the output to the
// callback in chunks of at most ChunkSize bytes and stops early when
// the callback returns false; a nil callback just measures.
//
// # Thread Safety
//
// A Formatter is immutable after New and safe for concurrent use, as
// are all package level functions. The caller owns the buffers passed
// to Snprintf and Bprintf; the chunk passed to a Vsprintfcb callback
// is only valid for the duration of the call.
package fmtx
