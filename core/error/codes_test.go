// File: codes_test.go
// Title: Error Code Tests
// Description: Tests for error code functionality including validation and
//              categorization.
// Version: v0.1.0
// Created: 2026-01-12
// Modified: 2026-01-12
//
// Change History:
// - 2026-01-12 v0.1.0: Initial implementation with code tests

package error

import (
	"testing"
)

func TestCodeString(t *testing.T) {
	tests := []struct {
		code Code
		want string
	}{
		{CodeUnknown, "UNKNOWN"},
		{CodeInvalidArgument, "INVALID_ARGUMENT"},
		{CodeOutOfSpace, "OUT_OF_SPACE"},
		{CodeBomRejected, "BOM_REJECTED"},
		{CodeSyntax, "SYNTAX_ERROR"},
	}

	for _, tt := range tests {
		t.Run(string(tt.code), func(t *testing.T) {
			if got := tt.code.String(); got != tt.want {
				t.Errorf("Code.String() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestCodeIsValid(t *testing.T) {
	tests := []struct {
		name string
		code Code
		want bool
	}{
		{"known code", CodeInvalidCodePoint, true},
		{"unknown code", Code("SOMETHING_ELSE"), false},
		{"empty code", Code(""), false},
		{"lexing code", CodeSyntax, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.code.IsValid(); got != tt.want {
				t.Errorf("Code.IsValid() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestCodeCategory(t *testing.T) {
	tests := []struct {
		code     Code
		category string
	}{
		{CodeUnknown, "general"},
		{CodeInternal, "general"},
		{CodeInvalidArgument, "general"},
		{CodeEndOfInput, "encoding"},
		{CodeOutOfSpace, "encoding"},
		{CodeInvalidCodePoint, "encoding"},
		{CodeBomRejected, "encoding"},
		{CodeSyntax, "lexing"},
		{CodeConfigError, "config"},
		{CodeMissingConfig, "config"},
		{CodeInvalidFormat, "validation"},
		{Code("SOMETHING_ELSE"), "unknown"},
	}

	for _, tt := range tests {
		t.Run(string(tt.code), func(t *testing.T) {
			if got := tt.code.Category(); got != tt.category {
				t.Errorf("Code.Category() = %v, want %v", got, tt.category)
			}
		})
	}
}

func TestAllDefinedCodesAreValid(t *testing.T) {
	codes := []Code{
		// General codes
		CodeUnknown, CodeInternal, CodeNotFound, CodeInvalidArgument,

		// Encoding codes
		CodeEndOfInput, CodeOutOfSpace, CodeInvalidCodePoint, CodeBomRejected,

		// Lexing codes
		CodeSyntax,

		// Configuration codes
		CodeConfigError, CodeMissingConfig, CodeInvalidConfig,

		// Validation codes
		CodeInvalidFormat, CodeValueOutOfRange,
	}

	for _, code := range codes {
		t.Run(string(code), func(t *testing.T) {
			if !code.IsValid() {
				t.Errorf("Code %v should be valid", code)
			}
		})
	}
}

func TestCodeCategoryCoverage(t *testing.T) {
	expectedCategories := map[string]bool{
		"general":    false,
		"encoding":   false,
		"lexing":     false,
		"config":     false,
		"validation": false,
	}

	testCodes := []Code{
		CodeInvalidArgument, // general
		CodeOutOfSpace,      // encoding
		CodeSyntax,          // lexing
		CodeConfigError,     // config
		CodeInvalidFormat,   // validation
	}

	for _, code := range testCodes {
		category := code.Category()
		if _, exists := expectedCategories[category]; !exists {
			t.Errorf("Unexpected category %q for code %v", category, code)
		} else {
			expectedCategories[category] = true
		}
	}

	for category, covered := range expectedCategories {
		if !covered {
			t.Errorf("Category %q was not covered by test codes", category)
		}
	}
}
