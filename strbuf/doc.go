// File: doc.go
// Title: Package Documentation for strbuf
// Description: Provides comprehensive documentation for the growable
//              string package with its result-carrying handle type.
// Version: v0.1.0
// Created: 2026-01-17
// Modified: 2026-01-17
//
// Change History:
// - 2026-01-17 v0.1.0: Initial documentation

// Package strbuf implements a growable byte string as a result-carrying
// handle: mutations chain without intermediate error checks, a failed
// mutation leaves the content untouched and records the failure on the
// handle, and every later mutation no-ops until the result is checked
// or the content is replaced.
//
// Package: github.com/msto63/grimm/strbuf
// Title: Growable String with Sticky Result
// Description: A chainable string builder whose handle carries the
//              first mutation failure, with formatted operations
//              routed through fmtx.
//
// # Overview
//
// The type exists for call sites that assemble a string in many steps
// and want exactly one error check at the end:
//
//	s := strbuf.New("SELECT ").Cat(columns).Cat(" FROM ").Cat(table)
//	s.Catf(" LIMIT %d", limit)
//	if err := s.Result(); err != nil {
//		return "", err
//	}
//	return s.String(), nil
//
// Once a mutation fails, the handle keeps its previous content, records
// the error, and turns every subsequent mutation into a no-op, so the
// chain can run to completion and Result reports the first failure.
// Mutations cannot run out of memory here the way a manual allocator
// can; what remains fallible are the range arguments of Remove and
// Replace, which record CodeInvalidArgument or CodeValueOutOfRange
// instead of corrupting the buffer or panicking mid-chain.
//
// # Handle Semantics
//
// Both the zero value and a nil *String are empty, usable handles:
// every method accepts them, and mutators on a nil handle allocate and
// return a fresh one. Callers therefore keep the returned handle, in
// the append convention:
//
//	var s *strbuf.String
//	s = s.Cat("starts nil").Cat(", works anyway")
//
// Set, SetBytes and Setf replace the content wholesale and clear a
// recorded error; they are the reset points of a reused handle. All
// other mutators respect the sticky error.
//
// # Formatting
//
// Newf, Setf, Catf and Prependf format through the fmtx package and
// understand its full directive set, including the grouping and metric
// extensions. Catf appends in place through fmtx.Bprintf without an
// intermediate string.
//
// # Concurrency
//
// A String is a single-writer structure. Concurrent mutation, or
// reading Bytes while another goroutine mutates, needs external
// synchronization.
package strbuf
