// File: doc.go
// Title: Package Documentation for asciix
// Description: Package asciix provides byte-level ASCII classification,
//              case mapping, and digit parsing for the grimm toolkit.
// Version: v0.1.0
// Created: 2026-01-14
// Modified: 2026-01-14
//
// Change History:
// - 2026-01-14 v0.1.0: Initial implementation

// Package asciix provides byte-level ASCII utilities for the grimm toolkit.
//
// Package: asciix
// Title: ASCII Classification and Case Mapping
// Description: This package provides character predicates, case conversion,
//              and digit parsing that operate strictly on the ASCII range.
//              Bytes outside ASCII always pass through classification as
//              false and case mapping as identity.
// Version: v0.1.0
// Created: 2026-01-14
// Modified: 2026-01-14
//
// Overview
//
// The asciix package exists because the lexer and formatter hot paths
// classify bytes, not runes. Using unicode.IsDigit or strings.ToLower there
// would pull full Unicode tables into paths that only ever see ASCII
// syntax characters, and Go's strconv functions accept forms (base
// prefixes, underscores) that the toolkit's parsing rules do not.
//
// Key capabilities include:
//   - Character predicates: IsDigit, IsHexDigit, IsOctalDigit,
//     IsBinaryDigit, IsAlpha, IsAlnum, IsUpper, IsLower
//   - Case mapping for single bytes and whole strings
//   - Case-insensitive comparison restricted to ASCII folding
//   - Strict decimal parsing with explicit error reporting
//
// Everything here is ASCII-only on purpose. Unicode-aware classification
// (such as whitespace detection across encodings) lives in the transcode
// package, which owns the code point tables.
//
// Usage Examples
//
// Classification in a scanning loop:
//
//	for i := 0; i < len(input); i++ {
//	    if !asciix.IsHexDigit(input[i]) {
//	        break
//	    }
//	}
//
// Case-insensitive matching without allocation:
//
//	if asciix.EqualFold(ext, ".TXT") {
//	    // matched regardless of case
//	}
//
// Strict decimal parsing:
//
//	n, err := asciix.ParseInt("-42")
//	if err != nil {
//	    return err
//	}
//
// ParseInt and ParseUint reject anything but an optional sign (ParseInt
// only) followed by decimal digits. Base prefixes, underscores, and
// surrounding whitespace are errors, which makes the functions suitable
// for validating configuration values verbatim.
//
// Thread Safety
//
// All functions are pure and safe for concurrent use.
//
package asciix
