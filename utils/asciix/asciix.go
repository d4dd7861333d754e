// File: asciix.go
// Title: ASCII String Utilities
// Description: Implements byte-level ASCII predicates, case mapping, and
//              digit parsing. All functions here are deliberately ASCII-only;
//              locale-aware case folding is out of scope for the toolkit.
// Version: v0.1.0
// Created: 2026-01-14
// Modified: 2026-01-14
//
// Change History:
// - 2026-01-14 v0.1.0: Initial implementation with predicates and parsing

package asciix

import (
	grimmerror "github.com/msto63/grimm/core/error"
)

// IsDigit reports whether c is an ASCII decimal digit
func IsDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

// IsHexDigit reports whether c is an ASCII hexadecimal digit
func IsHexDigit(c byte) bool {
	return (c >= '0' && c <= '9') || (c >= 'a' && c <= 'f') || (c >= 'A' && c <= 'F')
}

// IsOctalDigit reports whether c is an ASCII octal digit
func IsOctalDigit(c byte) bool {
	return c >= '0' && c <= '7'
}

// IsBinaryDigit reports whether c is '0' or '1'
func IsBinaryDigit(c byte) bool {
	return c == '0' || c == '1'
}

// IsAlpha reports whether c is an ASCII letter
func IsAlpha(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

// IsAlnum reports whether c is an ASCII letter or decimal digit
func IsAlnum(c byte) bool {
	return IsAlpha(c) || IsDigit(c)
}

// IsUpper reports whether c is an ASCII uppercase letter
func IsUpper(c byte) bool {
	return c >= 'A' && c <= 'Z'
}

// IsLower reports whether c is an ASCII lowercase letter
func IsLower(c byte) bool {
	return c >= 'a' && c <= 'z'
}

// ToLowerByte maps an ASCII uppercase letter to lowercase, leaving all
// other bytes unchanged
func ToLowerByte(c byte) byte {
	if c >= 'A' && c <= 'Z' {
		return c - 'A' + 'a'
	}
	return c
}

// ToUpperByte maps an ASCII lowercase letter to uppercase, leaving all
// other bytes unchanged
func ToUpperByte(c byte) byte {
	if c >= 'a' && c <= 'z' {
		return c - 'a' + 'A'
	}
	return c
}

// ToLower returns s with ASCII uppercase letters mapped to lowercase.
// Non-ASCII bytes pass through untouched.
func ToLower(s string) string {
	// Avoid allocating when there is nothing to change
	hasUpper := false
	for i := 0; i < len(s); i++ {
		if IsUpper(s[i]) {
			hasUpper = true
			break
		}
	}
	if !hasUpper {
		return s
	}

	b := make([]byte, len(s))
	for i := 0; i < len(s); i++ {
		b[i] = ToLowerByte(s[i])
	}
	return string(b)
}

// ToUpper returns s with ASCII lowercase letters mapped to uppercase.
// Non-ASCII bytes pass through untouched.
func ToUpper(s string) string {
	hasLower := false
	for i := 0; i < len(s); i++ {
		if IsLower(s[i]) {
			hasLower = true
			break
		}
	}
	if !hasLower {
		return s
	}

	b := make([]byte, len(s))
	for i := 0; i < len(s); i++ {
		b[i] = ToUpperByte(s[i])
	}
	return string(b)
}

// ICompare compares two strings case-insensitively over ASCII letters.
// It returns -1, 0, or +1 in the manner of strings.Compare.
func ICompare(a, b string) int {
	i := 0
	for i < len(a) && i < len(b) {
		ca := ToLowerByte(a[i])
		cb := ToLowerByte(b[i])
		if ca != cb {
			if ca < cb {
				return -1
			}
			return 1
		}
		i++
	}

	switch {
	case len(a) == len(b):
		return 0
	case len(a) < len(b):
		return -1
	default:
		return 1
	}
}

// ICompareN compares at most n bytes of two strings case-insensitively
// over ASCII letters
func ICompareN(a, b string, n int) int {
	if n <= 0 {
		return 0
	}
	if len(a) > n {
		a = a[:n]
	}
	if len(b) > n {
		b = b[:n]
	}
	return ICompare(a, b)
}

// EqualFold reports whether a and b are equal under ASCII case folding
func EqualFold(a, b string) bool {
	return len(a) == len(b) && ICompare(a, b) == 0
}

// IsAllDigits reports whether s is non-empty and consists solely of
// ASCII decimal digits
func IsAllDigits(s string) bool {
	if len(s) == 0 {
		return false
	}
	for i := 0; i < len(s); i++ {
		if !IsDigit(s[i]) {
			return false
		}
	}
	return true
}

// ParseUint parses a string of decimal digits into an unsigned integer.
// No sign, base prefix, or surrounding whitespace is accepted.
func ParseUint(s string) (uint, error) {
	if len(s) == 0 {
		return 0, grimmerror.New("cannot parse empty string as unsigned integer").
			WithCode(grimmerror.CodeInvalidArgument).
			WithOperation("asciix.ParseUint")
	}

	var value uint
	for i := 0; i < len(s); i++ {
		if !IsDigit(s[i]) {
			return 0, grimmerror.New("input contains a non-digit character").
				WithCode(grimmerror.CodeInvalidArgument).
				WithOperation("asciix.ParseUint").
				WithDetail("input", s).
				WithDetail("offset", i)
		}
		value = value*10 + uint(s[i]-'0')
	}

	return value, nil
}

// ParseInt parses a string of decimal digits with an optional leading
// '+' or '-' sign into a signed integer. No base prefix or surrounding
// whitespace is accepted.
func ParseInt(s string) (int, error) {
	if len(s) == 0 {
		return 0, grimmerror.New("cannot parse empty string as integer").
			WithCode(grimmerror.CodeInvalidArgument).
			WithOperation("asciix.ParseInt")
	}

	sign := 1
	if s[0] == '-' || s[0] == '+' {
		if s[0] == '-' {
			sign = -1
		}
		s = s[1:]
		if len(s) == 0 {
			return 0, grimmerror.New("sign without digits").
				WithCode(grimmerror.CodeInvalidArgument).
				WithOperation("asciix.ParseInt")
		}
	}

	value := 0
	for i := 0; i < len(s); i++ {
		if !IsDigit(s[i]) {
			return 0, grimmerror.New("input contains a non-digit character").
				WithCode(grimmerror.CodeInvalidArgument).
				WithOperation("asciix.ParseInt").
				WithDetail("input", s).
				WithDetail("offset", i)
		}
		value = value*10 + int(s[i]-'0')
	}

	return value * sign, nil
}
