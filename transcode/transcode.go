// File: transcode.go
// Title: Conversion Flags and Shared Error Construction
// Description: Defines the flag set accepted by every conversion entry
//              point and the error constructors shared by the UTF-8,
//              UTF-16 and UTF-32 conversion loops.
// Version: v0.1.0
// Created: 2026-01-15
// Modified: 2026-01-15
//
// Change History:
// - 2026-01-15 v0.1.0: Initial implementation

package transcode

import (
	grimmerror "github.com/msto63/grimm/core/error"
)

// Flags adjusts the behavior of the conversion functions. The zero value
// selects lenient conversion: byte order marks are honored and malformed
// input is substituted with U+FFFD.
type Flags uint32

const (
	// ForbidBOM makes conversions fail with CodeBomRejected when the
	// source begins with a byte order mark instead of skipping it.
	ForbidBOM Flags = 1 << iota

	// ErrorOnInvalidCodePoint makes conversions fail with
	// CodeInvalidCodePoint when the source contains malformed data
	// instead of substituting the replacement character.
	ErrorOnInvalidCodePoint
)

// errTruncated reports a multi-unit sequence cut short by the end of the
// source. This is an input sizing problem rather than a data problem, so
// it is classified as an invalid argument regardless of flags.
func errTruncated(op string, offset int) error {
	return grimmerror.New("source ends inside a multi-unit sequence").
		WithCode(grimmerror.CodeInvalidArgument).
		WithSeverity(grimmerror.SeverityLow).
		WithOperation(op).
		WithDetail("offset", offset)
}

// errInvalidCodePoint reports malformed source data in strict mode.
func errInvalidCodePoint(op string, offset int) error {
	return grimmerror.New("source contains an invalid code point").
		WithCode(grimmerror.CodeInvalidCodePoint).
		WithSeverity(grimmerror.SeverityLow).
		WithOperation(op).
		WithDetail("offset", offset)
}

// errBomRejected reports a byte order mark encountered under ForbidBOM,
// or a second byte order mark after one already dictated the byte order.
func errBomRejected(op string) error {
	return grimmerror.New("source begins with a forbidden byte order mark").
		WithCode(grimmerror.CodeBomRejected).
		WithSeverity(grimmerror.SeverityLow).
		WithOperation(op)
}

// errOutOfSpace reports a destination too small for the next code point.
func errOutOfSpace(op string, offset int) error {
	return grimmerror.New("destination is too small for the converted data").
		WithCode(grimmerror.CodeOutOfSpace).
		WithSeverity(grimmerror.SeverityLow).
		WithOperation(op).
		WithDetail("offset", offset)
}
