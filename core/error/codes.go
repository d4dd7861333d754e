// File: codes.go
// Title: Error Code Definitions
// Description: Defines structured error codes for the grimm toolkit so that
//              callers can react to failure classes programmatically instead
//              of matching on message strings. Codes cover general failures,
//              text encoding, lexing, and configuration handling.
// Version: v0.1.0
// Created: 2026-01-12
// Modified: 2026-01-12
//
// Change History:
// - 2026-01-12 v0.1.0: Initial code set for general, encoding, lexing, and config errors

package error

// Code represents a structured error code for programmatic error handling
type Code string

// General error codes
const (
	// CodeUnknown indicates an unclassified error
	CodeUnknown Code = "UNKNOWN"

	// CodeInternal indicates an internal invariant violation inside the toolkit
	CodeInternal Code = "INTERNAL"

	// CodeNotFound indicates a requested item does not exist
	CodeNotFound Code = "NOT_FOUND"

	// CodeInvalidArgument indicates a malformed or unusable argument,
	// such as a nil source slice or a truncated multi-unit sequence
	CodeInvalidArgument Code = "INVALID_ARGUMENT"
)

// Encoding error codes
const (
	// CodeEndOfInput indicates an iterator has consumed all of its input.
	// This is a terminal condition rather than a failure.
	CodeEndOfInput Code = "END_OF_INPUT"

	// CodeOutOfSpace indicates a destination buffer is too small for the
	// converted output
	CodeOutOfSpace Code = "OUT_OF_SPACE"

	// CodeInvalidCodePoint indicates an invalid encoded sequence was found
	// while invalid input was configured to be rejected
	CodeInvalidCodePoint Code = "INVALID_CODE_POINT"

	// CodeBomRejected indicates a byte order mark was found while byte order
	// marks were configured to be rejected
	CodeBomRejected Code = "BOM_REJECTED"
)

// Lexing error codes
const (
	// CodeSyntax indicates malformed source text, such as a hexadecimal
	// float literal without exponent digits
	CodeSyntax Code = "SYNTAX_ERROR"
)

// Configuration error codes
const (
	// CodeConfigError indicates a general configuration error
	CodeConfigError Code = "CONFIG_ERROR"

	// CodeMissingConfig indicates required configuration is missing
	CodeMissingConfig Code = "MISSING_CONFIG"

	// CodeInvalidConfig indicates configuration contains invalid values
	CodeInvalidConfig Code = "INVALID_CONFIG"
)

// Validation error codes
const (
	// CodeInvalidFormat indicates data doesn't match the expected format
	CodeInvalidFormat Code = "INVALID_FORMAT"

	// CodeValueOutOfRange indicates a value is outside the allowed range
	CodeValueOutOfRange Code = "VALUE_OUT_OF_RANGE"
)

// String returns the string representation of the error code
func (c Code) String() string {
	return string(c)
}

// IsValid checks if the error code is a known, valid code
func (c Code) IsValid() bool {
	switch c {
	case CodeUnknown, CodeInternal, CodeNotFound, CodeInvalidArgument,
		CodeEndOfInput, CodeOutOfSpace, CodeInvalidCodePoint, CodeBomRejected,
		CodeSyntax,
		CodeConfigError, CodeMissingConfig, CodeInvalidConfig,
		CodeInvalidFormat, CodeValueOutOfRange:
		return true
	default:
		return false
	}
}

// Category returns the category of the error code for grouping and reporting
func (c Code) Category() string {
	switch c {
	case CodeUnknown, CodeInternal, CodeNotFound, CodeInvalidArgument:
		return "general"
	case CodeEndOfInput, CodeOutOfSpace, CodeInvalidCodePoint, CodeBomRejected:
		return "encoding"
	case CodeSyntax:
		return "lexing"
	case CodeConfigError, CodeMissingConfig, CodeInvalidConfig:
		return "config"
	case CodeInvalidFormat, CodeValueOutOfRange:
		return "validation"
	default:
		return "unknown"
	}
}
