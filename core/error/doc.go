// Package error provides structured error handling for the grimm toolkit.
//
// Package: error
// Title: grimm Error Handling Framework
// Description: This package implements a structured error type with error
//              codes, severity levels, contextual details, and stack traces.
//              It is the single error vocabulary for all grimm packages, from
//              text transcoding to lexing and configuration handling.
// Version: v0.1.1
// Created: 2026-01-12
// Modified: 2026-01-20
//
// Change History:
// - 2026-01-12 v0.1.0: Initial implementation with contextual errors and codes
// - 2026-01-20 v0.1.1: Add end-of-input sentinel for iterator-style consumers
//
// Features:
// - Structured error codes for programmatic error handling
// - Error severity levels with code-derived defaults
// - Contextual details and failing-operation metadata
// - Stack trace capture for debugging
// - Cause chains compatible with errors.Is and errors.As
// - End-of-input sentinel shared by iterators and the lexer
//
// Usage:
//
//	import grimmerror "github.com/msto63/grimm/core/error"
//
//	// Create a new error with context
//	err := grimmerror.New("destination buffer too small").
//		WithCode(grimmerror.CodeOutOfSpace).
//		WithOperation("transcode.UTF8ToUTF16").
//		WithDetail("needed", 2)
//
//	// Check error class without matching message strings
//	if grimmerror.HasCode(err, grimmerror.CodeOutOfSpace) {
//		// grow the buffer and retry
//	}
//
//	// Distinguish exhaustion from failure when iterating
//	if grimmerror.IsEndOfInput(err) {
//		// done, not broken
//	}
package error
