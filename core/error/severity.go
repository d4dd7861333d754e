// File: severity.go
// Title: Error Severity Levels
// Description: Defines severity levels for errors to enable proper
//              prioritization and logging. Severity levels separate caller
//              mistakes from conditions that point at defects in the toolkit
//              itself.
// Version: v0.1.0
// Created: 2026-01-12
// Modified: 2026-01-12
//
// Change History:
// - 2026-01-12 v0.1.0: Initial implementation with severity levels

package error

// Severity represents the severity level of an error
type Severity int

const (
	// SeverityLow indicates a minor error that doesn't affect core functionality
	// Examples: invalid caller input, malformed source text, undersized buffers
	SeverityLow Severity = iota

	// SeverityMedium indicates an error that affects functionality but has workarounds
	// Examples: unusable configuration values, unexpected data formats
	SeverityMedium

	// SeverityHigh indicates a serious error that significantly impacts functionality
	// Examples: unreadable configuration files, failing file operations
	SeverityHigh

	// SeverityCritical indicates a broken invariant inside the toolkit itself
	// Examples: conversion tables out of sync, impossible lexer states
	SeverityCritical
)

// String returns the string representation of the severity level
func (s Severity) String() string {
	switch s {
	case SeverityLow:
		return "low"
	case SeverityMedium:
		return "medium"
	case SeverityHigh:
		return "high"
	case SeverityCritical:
		return "critical"
	default:
		return "unknown"
	}
}

// Level returns the numeric level of the severity (0-3)
func (s Severity) Level() int {
	return int(s)
}

// ShouldAlert returns true if this severity level should trigger alerts
func (s Severity) ShouldAlert() bool {
	return s >= SeverityHigh
}

// Priority returns a priority value for sorting (higher number = higher priority)
func (s Severity) Priority() int {
	return int(s)
}

// GetSeverityFromCode determines the appropriate severity level based on error code
func GetSeverityFromCode(code Code) Severity {
	switch code {
	// Critical toolkit defects
	case CodeInternal:
		return SeverityCritical

	// High severity errors
	case CodeConfigError:
		return SeverityHigh

	// Low severity errors caused by caller input
	case CodeInvalidArgument, CodeNotFound, CodeEndOfInput, CodeOutOfSpace,
		CodeInvalidCodePoint, CodeBomRejected, CodeSyntax,
		CodeInvalidFormat, CodeValueOutOfRange:
		return SeverityLow

	default:
		return SeverityMedium
	}
}
