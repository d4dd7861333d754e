// File: doc.go
// Title: Package Documentation for lexer
// Description: Provides comprehensive documentation for the source
//              text scanning package.
// Version: v0.1.0
// Created: 2026-01-18
// Modified: 2026-01-18
//
// Change History:
// - 2026-01-18 v0.1.0: Initial documentation

// Package lexer tokenizes UTF-8 text spans into classified tokens with
// line tracking, configurable comment delimiters and optional skipping
// of whitespace, newline and comment tokens.
//
// Package: github.com/msto63/grimm/lexer
// Title: Source Text Scanner
// Description: A borrowing cursor that advances one token at a time
//              over C-flavored source text: comments, quoted strings,
//              numeric literals in four radices, compound operators
//              and Unicode-friendly identifiers.
//
// # Overview
//
// A Lexer is initialized once over a borrowed text span and advanced
// with Next until the end of input:
//
//	l := lexer.NewWithOptions(src, lexer.Options{SkipWhitespace: true})
//	for {
//		if err := l.Next(); err != nil {
//			break // end of input, or a malformed literal
//		}
//		process(l.Token(), l.Text())
//	}
//
// Tokens tile the input exactly: every byte of the source belongs to
// exactly one produced token, which makes the scanner suitable for
// rewriting tasks (drop the comment tokens, concatenate the rest) as
// well as for parsing.
//
// # Tokens
//
// A Token is either a literal single character, such as '(' or ';', or
// one of the named categories: end of input, whitespace, newline,
// comment, identifier, quoted string, integer literals in decimal,
// hexadecimal, octal and binary, decimal and hexadecimal floats, and
// the two- and three-character compound operators. Whitespace follows
// the Unicode definition, and a whitespace run containing a line break
// splits so that the break always arrives as its own newline token,
// with CR LF counting as one. Numeric literals consume C-style type
// suffixes greedily; a float exponent without digits is the one
// malformed shape, producing an error token.
//
// Two quirks are part of the contract. Single-quoted strings carry the
// same KindStringDouble tag as double-quoted ones, and KindStringSingle
// is never produced; consumers distinguish the styles by the opening
// quote character in the token text. And an unterminated block comment
// or string is not an error: the token simply runs to the end of the
// input.
//
// # Line Numbers
//
// Line returns a one-based counter that advances once per newline
// token. Comments and strings that span several lines advance it by
// their embedded break count as they are produced, so the counter is
// correct even though those interior breaks never become tokens.
//
// # Token Values
//
// Transform turns the current token into its logical value as a
// strbuf handle: strings lose their quotes and collapse the escapes
// \r, \n, \t, \f, \", \', \\ and \0 into the characters they name,
// comments lose their delimiters, everything else copies verbatim.
// Unicode (\u), hex (\x) and multi-digit octal escapes are not
// interpreted and pass through literally.
//
// # Concurrency
//
// A Lexer is a single mutable cursor and is not safe for concurrent
// use. Distinct Lexers over the same text are independent; the text
// itself is never written to.
package lexer
