// File: doc.go
// Title: Package Documentation for pathx
// Description: Package pathx provides segment iteration and extension
//              lookup for slash- or backslash-separated paths.
// Version: v0.1.0
// Created: 2026-01-19
// Modified: 2026-01-19
//
// Change History:
// - 2026-01-19 v0.1.0: Initial implementation

// Package pathx provides path segment iteration for the grimm toolkit.
//
// Package: pathx
// Title: Path Segment Iteration and Extension Lookup
// Description: This package walks the segments of a path string in either
//              direction and answers extension queries. It treats '/' and
//              '\' alike and never consults the filesystem, so the same
//              code handles native and foreign path spellings.
// Version: v0.1.0
// Created: 2026-01-19
// Modified: 2026-01-19
//
// Overview
//
// The standard path and filepath packages commit to one separator
// convention per platform. Configuration files and patch tooling see
// both spellings in the same input, which is why pathx accepts '/' and
// '\' interchangeably and collapses runs of separators into one.
//
// Key capabilities include:
//   - Forward iteration with First and Next
//   - Backward iteration with Last and Prev
//   - Segment comparison between two iterators
//   - Extension lookup with ASCII case-insensitive matching
//
// Iteration in both directions visits the same segments with the same
// byte offsets. The root of an absolute path is a real segment with
// length zero, so "/usr/lib" yields "", "usr", "lib" and a relative
// path never yields an empty segment.
//
// Usage Examples
//
// Walking a path front to back:
//
//	it, err := pathx.First("/usr/local/lib")
//	for err == nil {
//	    fmt.Printf("%q\n", it.Segment())
//	    err = it.Next()
//	}
//
// Extension matching without worrying about case:
//
//	if pathx.ExtensionEqual(name, "toml") {
//	    // handles name.toml, name.TOML, ...
//	}
//
// Next and Prev report exhaustion through an error carrying
// CodeEndOfInput, the same convention the transcode pull interfaces and
// the lexer use, so iteration loops read alike across the toolkit.
//
// Thread Safety
//
// Package functions are pure. An Iterator is plain state without
// synchronization; share one between goroutines only with external
// locking.
//
package pathx
