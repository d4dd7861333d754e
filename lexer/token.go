// File: token.go
// Title: Token Classification
// Description: Defines the token variant produced by the scanner: a
//              literal code point for bare punctuation, or one of the
//              named categories for everything the scanner groups into
//              spans.
// Version: v0.1.0
// Created: 2026-01-18
// Modified: 2026-01-18
//
// Change History:
// - 2026-01-18 v0.1.0: Initial implementation

package lexer

import "strconv"

// Kind classifies a token. The zero value KindNone marks a Lexer on
// which Next has not produced anything yet.
type Kind uint8

const (
	// KindNone is the classification before the first Next call.
	KindNone Kind = iota

	// KindChar is a literal single-character token. The character is
	// carried in Token.Char; it is always an ASCII punctuation byte,
	// since letters, digits and non-ASCII bytes start longer tokens.
	KindChar

	// KindEOF is the zero-length terminal token.
	KindEOF

	// KindError marks a span the scanner consumed but could not
	// classify, such as a float exponent without digits.
	KindError

	KindWhitespace
	KindNewline
	KindComment
	KindIdentifier

	// KindStringDouble covers both double- and single-quoted strings.
	// The scanner never produces KindStringSingle; consumers key on
	// the shared tag and the opening quote character.
	KindStringDouble
	KindStringSingle

	KindIntegerDec // 1234
	KindIntegerHex // 0x12AB
	KindIntegerOct // 01234
	KindIntegerBin // 0b1010
	KindFloatDec   // 1.25, 1e3, 1.25f
	KindFloatHex   // 0x1.8p3 (binary exponent)

	KindEqEq         // ==
	KindNotEq        // !=
	KindLessEq       // <=
	KindGreaterEq    // >=
	KindAndAnd       // &&
	KindOrOr         // ||
	KindPlusPlus     // ++
	KindMinusMinus   // --
	KindPlusEq       // +=
	KindMinusEq      // -=
	KindMulEq        // *=
	KindDivEq        // /=
	KindModEq        // %=
	KindShiftLeftEq  // <<=
	KindShiftRightEq // >>=
	KindShiftLeft    // <<
	KindShiftRight   // >>
	KindAndEq        // &=
	KindOrEq         // |=
	KindXorEq        // ^=
	KindColonColon   // ::
	KindEllipsis     // ...
)

var kindNames = [...]string{
	KindNone:         "none",
	KindChar:         "char",
	KindEOF:          "eof",
	KindError:        "error",
	KindWhitespace:   "whitespace",
	KindNewline:      "newline",
	KindComment:      "comment",
	KindIdentifier:   "identifier",
	KindStringDouble: "string-double",
	KindStringSingle: "string-single",
	KindIntegerDec:   "integer-dec",
	KindIntegerHex:   "integer-hex",
	KindIntegerOct:   "integer-oct",
	KindIntegerBin:   "integer-bin",
	KindFloatDec:     "float-dec",
	KindFloatHex:     "float-hex",
	KindEqEq:         "==",
	KindNotEq:        "!=",
	KindLessEq:       "<=",
	KindGreaterEq:    ">=",
	KindAndAnd:       "&&",
	KindOrOr:         "||",
	KindPlusPlus:     "++",
	KindMinusMinus:   "--",
	KindPlusEq:       "+=",
	KindMinusEq:      "-=",
	KindMulEq:        "*=",
	KindDivEq:        "/=",
	KindModEq:        "%=",
	KindShiftLeftEq:  "<<=",
	KindShiftRightEq: ">>=",
	KindShiftLeft:    "<<",
	KindShiftRight:   ">>",
	KindAndEq:        "&=",
	KindOrEq:         "|=",
	KindXorEq:        "^=",
	KindColonColon:   "::",
	KindEllipsis:     "...",
}

// String returns a short name for the kind; compound operators render
// as their source text.
func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "kind(" + strconv.Itoa(int(k)) + ")"
}

// Token is the classification of the span most recently produced by
// Next. It is a small comparable value: either a named category, or a
// literal character token carrying its code point in Char.
type Token struct {
	Kind Kind

	// Char is the code point of a KindChar token and zero otherwise.
	Char rune
}

// SingleChar returns the literal token for the given character.
func SingleChar(c rune) Token {
	return Token{Kind: KindChar, Char: c}
}

// IsChar reports whether t is the literal token for c.
func (t Token) IsChar(c rune) bool {
	return t.Kind == KindChar && t.Char == c
}

func (t Token) String() string {
	if t.Kind == KindChar {
		return strconv.QuoteRune(t.Char)
	}
	return t.Kind.String()
}
