// File: lexer.go
// Title: Source Text Scanner
// Description: Implements the cursor that walks a UTF-8 text span one
//              classified token at a time: whitespace and line breaks,
//              configurable comments, quoted strings, numeric literals
//              in four radices, compound operators and identifiers.
// Version: v0.1.0
// Created: 2026-01-18
// Modified: 2026-01-18
//
// Change History:
// - 2026-01-18 v0.1.0: Initial implementation

package lexer

import (
	"bytes"

	grimmerror "github.com/msto63/grimm/core/error"
	"github.com/msto63/grimm/transcode"
	"github.com/msto63/grimm/utils/asciix"
)

const (
	defaultLineComment       = "//"
	defaultBlockCommentOpen  = "/*"
	defaultBlockCommentClose = "*/"
)

// Options configures scanning. The zero value emits every token and
// uses the default comment delimiters; empty delimiter strings fall
// back to those defaults as well.
type Options struct {
	// SkipWhitespace drops whitespace tokens inside Next instead of
	// returning them. SkipNewlines and SkipComments do the same for
	// their categories; line counting is unaffected by skipping.
	SkipWhitespace bool
	SkipNewlines   bool
	SkipComments   bool

	// AllowDashesInIdentifiers admits '-' as an identifier character,
	// for kebab-case source.
	AllowDashesInIdentifiers bool

	// LineComment opens a comment that runs to the end of the line.
	LineComment string

	// BlockCommentOpen and BlockCommentClose delimit block comments.
	// A block comment with no closing delimiter runs to the end of
	// the input; that is not an error.
	BlockCommentOpen  string
	BlockCommentClose string
}

// DefaultOptions returns the options New uses: nothing skipped, C-style
// comment delimiters.
func DefaultOptions() Options {
	return Options{
		LineComment:       defaultLineComment,
		BlockCommentOpen:  defaultBlockCommentOpen,
		BlockCommentClose: defaultBlockCommentClose,
	}
}

// Lexer is a cursor over a borrowed text span. It is advanced with
// Next and never writes to or reallocates the text. The zero value is
// an exhausted Lexer; Init or the constructors make a useful one.
type Lexer struct {
	text []byte
	off  int

	tok    Token
	tokOff int
	tokLen int

	line int

	opts       Options
	lineOpen   []byte
	blockOpen  []byte
	blockClose []byte
}

// New returns a Lexer over text with DefaultOptions.
func New(text []byte) *Lexer {
	l := &Lexer{}
	l.Init(text, DefaultOptions())
	return l
}

// NewWithOptions returns a Lexer over text with the given options.
func NewWithOptions(text []byte, opts Options) *Lexer {
	l := &Lexer{}
	l.Init(text, opts)
	return l
}

// Init points the Lexer at text and resets it: cursor at offset zero,
// line one, no token. A Lexer may be re-initialized to scan another
// span without allocating.
func (l *Lexer) Init(text []byte, opts Options) {
	*l = Lexer{
		text:       text,
		line:       1,
		opts:       opts,
		lineOpen:   delimiter(opts.LineComment, defaultLineComment),
		blockOpen:  delimiter(opts.BlockCommentOpen, defaultBlockCommentOpen),
		blockClose: delimiter(opts.BlockCommentClose, defaultBlockCommentClose),
	}
}

func delimiter(s, fallback string) []byte {
	if s == "" {
		s = fallback
	}
	return []byte(s)
}

// Token returns the classification of the most recently produced
// token.
func (l *Lexer) Token() Token { return l.tok }

// Text returns the raw bytes of the most recently produced token as a
// view into the source text. The EOF token has length zero; every
// other token is non-empty.
func (l *Lexer) Text() []byte { return l.text[l.tokOff : l.tokOff+l.tokLen] }

// Line returns the one-based line counter. It advances as newline
// tokens and spans with embedded line breaks are produced, so right
// after a newline token it already names the line the cursor moved to.
func (l *Lexer) Line() int {
	if l.line == 0 {
		return 1
	}
	return l.line
}

// Next advances to the next token. Categories marked for skipping in
// the options are consumed internally and never returned. At the end
// of the input Next produces the zero-length EOF token and returns an
// error carrying CodeEndOfInput; a malformed literal produces an error
// token spanning the consumed bytes and returns an error carrying
// CodeSyntax, after which the caller should stop advancing.
func (l *Lexer) Next() error {
	if l.line == 0 {
		l.line = 1
	}

	for {
		if l.off >= len(l.text) {
			l.setToken(Token{Kind: KindEOF}, 0)
			return grimmerror.New("end of input").
				WithCode(grimmerror.CodeEndOfInput).
				WithOperation("lexer.Next")
		}
		rem := l.text[l.off:]

		// Whitespace first. A run that contains a line break is split:
		// the stretch before the break, then the break by itself, so
		// parsers that care about line structure see it as its own
		// token. CR immediately followed by LF is one newline token.
		if wsLen := transcode.LTrimOffset(rem); wsLen > 0 {
			next, lineLen := transcode.NextLine(rem)
			switch {
			case lineLen > wsLen:
				l.setToken(Token{Kind: KindWhitespace}, wsLen)
				if l.opts.SkipWhitespace {
					continue
				}
			case lineLen > 0:
				l.setToken(Token{Kind: KindWhitespace}, lineLen)
				if l.opts.SkipWhitespace {
					continue
				}
			default:
				l.setToken(Token{Kind: KindNewline}, next)
				if l.opts.SkipNewlines {
					continue
				}
			}
			return nil
		}

		// Line comments exclude their terminating line break.
		if bytes.HasPrefix(rem, l.lineOpen) {
			_, lineLen := transcode.NextLine(rem[len(l.lineOpen):])
			l.setToken(Token{Kind: KindComment}, len(l.lineOpen)+lineLen)
			if l.opts.SkipComments {
				continue
			}
			return nil
		}

		// Block comments span opener through closer; with no closer
		// the comment runs to the end of the input.
		if bytes.HasPrefix(rem, l.blockOpen) {
			width := len(rem)
			if i := bytes.Index(rem[len(l.blockOpen):], l.blockClose); i >= 0 {
				width = len(l.blockOpen) + i + len(l.blockClose)
			}
			l.setToken(Token{Kind: KindComment}, width)
			if l.opts.SkipComments {
				continue
			}
			return nil
		}

		// Strings. A quote is escaped when the byte before it is a
		// backslash. Both quote styles carry the double-quoted tag;
		// consumers that care inspect the opening character. With no
		// closing quote the string runs to the end of the input.
		if q := rem[0]; q == '"' || q == '\'' {
			for i := 1; i < len(rem); i++ {
				if rem[i] == q && rem[i-1] != '\\' {
					return l.emit(Token{Kind: KindStringDouble}, i+1)
				}
			}
			return l.emit(Token{Kind: KindStringDouble}, len(rem))
		}

		switch c := rem[0]; c {
		case '0', '1', '2', '3', '4', '5', '6', '7', '8', '9':
			return l.scanNumber()

		case '=':
			if len(rem) > 1 && rem[1] == '=' {
				return l.emit(Token{Kind: KindEqEq}, 2)
			}
		case '!':
			if len(rem) > 1 && rem[1] == '=' {
				return l.emit(Token{Kind: KindNotEq}, 2)
			}
		case '<':
			if len(rem) > 1 {
				if rem[1] == '=' {
					return l.emit(Token{Kind: KindLessEq}, 2)
				}
				if rem[1] == '<' {
					if len(rem) > 2 && rem[2] == '=' {
						return l.emit(Token{Kind: KindShiftLeftEq}, 3)
					}
					return l.emit(Token{Kind: KindShiftLeft}, 2)
				}
			}
		case '>':
			if len(rem) > 1 {
				if rem[1] == '=' {
					return l.emit(Token{Kind: KindGreaterEq}, 2)
				}
				if rem[1] == '>' {
					if len(rem) > 2 && rem[2] == '=' {
						return l.emit(Token{Kind: KindShiftRightEq}, 3)
					}
					return l.emit(Token{Kind: KindShiftRight}, 2)
				}
			}
		case '&':
			if len(rem) > 1 {
				if rem[1] == '&' {
					return l.emit(Token{Kind: KindAndAnd}, 2)
				}
				if rem[1] == '=' {
					return l.emit(Token{Kind: KindAndEq}, 2)
				}
			}
		case '|':
			if len(rem) > 1 {
				if rem[1] == '|' {
					return l.emit(Token{Kind: KindOrOr}, 2)
				}
				if rem[1] == '=' {
					return l.emit(Token{Kind: KindOrEq}, 2)
				}
			}
		case '+':
			if len(rem) > 1 {
				if rem[1] == '+' {
					return l.emit(Token{Kind: KindPlusPlus}, 2)
				}
				if rem[1] == '=' {
					return l.emit(Token{Kind: KindPlusEq}, 2)
				}
			}
		case '-':
			if len(rem) > 1 {
				if rem[1] == '-' {
					return l.emit(Token{Kind: KindMinusMinus}, 2)
				}
				if rem[1] == '=' {
					return l.emit(Token{Kind: KindMinusEq}, 2)
				}
			}
		case '*':
			if len(rem) > 1 && rem[1] == '=' {
				return l.emit(Token{Kind: KindMulEq}, 2)
			}
		case '/':
			// Reached only with custom comment delimiters; the default
			// "//" and "/*" openers consume '/' earlier.
			if len(rem) > 1 && rem[1] == '=' {
				return l.emit(Token{Kind: KindDivEq}, 2)
			}
		case '%':
			if len(rem) > 1 && rem[1] == '=' {
				return l.emit(Token{Kind: KindModEq}, 2)
			}
		case '^':
			if len(rem) > 1 && rem[1] == '=' {
				return l.emit(Token{Kind: KindXorEq}, 2)
			}
		case ':':
			if len(rem) > 1 && rem[1] == ':' {
				return l.emit(Token{Kind: KindColonColon}, 2)
			}
		case '.':
			if len(rem) > 2 && rem[1] == '.' && rem[2] == '.' {
				return l.emit(Token{Kind: KindEllipsis}, 3)
			}

		default:
			// Identifiers may contain any non-ASCII byte: the special
			// characters are all ASCII, so Unicode text is free to be
			// an identifier as long as it contains no whitespace.
			if isIdentStart(c) {
				return l.emit(Token{Kind: KindIdentifier}, l.identifierLen(rem))
			}
		}

		return l.emit(SingleChar(rune(rem[0])), 1)
	}
}

// emit records the token and reports success.
func (l *Lexer) emit(t Token, n int) error {
	l.setToken(t, n)
	return nil
}

// fail records an error token over the n consumed bytes and reports
// the syntax failure.
func (l *Lexer) fail(n int) error {
	l.setToken(Token{Kind: KindError}, n)
	return grimmerror.New("float exponent has no digits").
		WithCode(grimmerror.CodeSyntax).
		WithOperation("lexer.Next").
		WithDetail("text", string(l.Text())).
		WithDetail("line", l.line)
}

// setToken records the token span and advances the cursor. Newline
// tokens bump the line counter directly; comment and string tokens are
// re-scanned for embedded line breaks, which never get newline tokens
// of their own.
func (l *Lexer) setToken(t Token, n int) {
	l.tok = t
	l.tokOff = l.off
	l.tokLen = n
	l.off += n

	switch t.Kind {
	case KindNewline:
		l.line++
	case KindComment, KindStringDouble, KindStringSingle:
		rem := l.text[l.tokOff:l.off]
		for {
			next, _ := transcode.NextLine(rem)
			if next < 0 {
				break
			}
			rem = rem[next:]
			l.line++
		}
	}
}

// scanNumber classifies and consumes a numeric literal starting at the
// cursor. The radix decision for a leading zero nests explicitly: hex
// and binary by their marker character, octal when a digit 1-7 follows
// the leading zeros and no decimal digit trails the octal run, decimal
// otherwise — so 012 is octal while 019 reads as the decimal 019.
func (l *Lexer) scanNumber() error {
	txt, n := l.text, len(l.text)
	beg := l.off

	if txt[beg] == '0' && beg+1 < n {
		switch {
		case txt[beg+1] == 'x' || txt[beg+1] == 'X':
			return l.scanHexNumber(beg)

		case txt[beg+1] == 'b' || txt[beg+1] == 'B':
			off := beg + 2
			for off < n && asciix.IsBinaryDigit(txt[off]) {
				off++
			}
			return l.emitSuffixed(KindIntegerBin, off)

		default:
			p := beg + 1
			for p < n && txt[p] == '0' {
				p++
			}
			if p < n && txt[p] >= '1' && txt[p] <= '7' {
				off := p
				for off < n && asciix.IsOctalDigit(txt[off]) {
					off++
				}
				if off >= n || !asciix.IsDigit(txt[off]) {
					return l.emitSuffixed(KindIntegerOct, off)
				}
			}
		}
	}

	// Decimal integer, or a float once a '.' or an exponent shows up.
	off := beg + 1
	for off < n && asciix.IsDigit(txt[off]) {
		off++
	}
	if off < n && (txt[off] == '.' || txt[off] == 'e' || txt[off] == 'E') {
		if txt[off] == '.' {
			off++
			for off < n && asciix.IsDigit(txt[off]) {
				off++
			}
		}
		if off < n && (txt[off] == 'e' || txt[off] == 'E') {
			off++
			if off < n && (txt[off] == '-' || txt[off] == '+') {
				off++
			}
			if off >= n || !asciix.IsDigit(txt[off]) {
				return l.fail(off - beg)
			}
			for off < n && asciix.IsDigit(txt[off]) {
				off++
			}
		}
		return l.emitSuffixed(KindFloatDec, off)
	}
	return l.emitSuffixed(KindIntegerDec, off)
}

// scanHexNumber consumes a literal known to start with 0x or 0X. A '.'
// or a binary exponent turns it into a hex float. The exponent digits
// scan as hex digits, so a trailing f lands inside the token either
// way.
func (l *Lexer) scanHexNumber(beg int) error {
	txt, n := l.text, len(l.text)
	kind := KindIntegerHex

	off := beg + 2
	for off < n && asciix.IsHexDigit(txt[off]) {
		off++
	}
	if off < n && txt[off] == '.' {
		kind = KindFloatHex
		off++
		for off < n && asciix.IsHexDigit(txt[off]) {
			off++
		}
	}
	if off < n && (txt[off] == 'p' || txt[off] == 'P') {
		kind = KindFloatHex
		off++
		if off < n && (txt[off] == '-' || txt[off] == '+') {
			off++
		}
		if off >= n || !asciix.IsHexDigit(txt[off]) {
			return l.fail(off - beg)
		}
		for off < n && asciix.IsHexDigit(txt[off]) {
			off++
		}
	}
	return l.emitSuffixed(kind, off)
}

// emitSuffixed consumes any type suffix after the numeric body ending
// at off and records the token.
func (l *Lexer) emitSuffixed(kind Kind, off int) error {
	if kind == KindFloatDec || kind == KindFloatHex {
		off = l.floatSuffix(off)
	} else {
		off = l.integerSuffix(off)
	}
	return l.emit(Token{Kind: kind}, off-l.off)
}

// integerSuffix consumes the longest valid integer suffix at off: u,
// ul, ull, l, ll, lu or llu, case-insensitive.
func (l *Lexer) integerSuffix(off int) int {
	txt, n := l.text, len(l.text)
	if off >= n {
		return off
	}
	switch txt[off] {
	case 'u', 'U':
		off++
		if off < n && (txt[off] == 'l' || txt[off] == 'L') {
			off++
			if off < n && (txt[off] == 'l' || txt[off] == 'L') {
				off++
			}
		}
	case 'l', 'L':
		off++
		if off < n && (txt[off] == 'l' || txt[off] == 'L') {
			off++
			if off < n && (txt[off] == 'u' || txt[off] == 'U') {
				off++
			}
		} else if off < n && (txt[off] == 'u' || txt[off] == 'U') {
			off++
		}
	}
	return off
}

// floatSuffix consumes a single f, d or l suffix at off, either case.
func (l *Lexer) floatSuffix(off int) int {
	if off >= len(l.text) {
		return off
	}
	switch l.text[off] {
	case 'f', 'F', 'd', 'D', 'l', 'L':
		off++
	}
	return off
}

// identifierLen measures the identifier starting at rem[0]. The scan
// is bounded by the next Unicode whitespace so that a multi-byte space
// character can never be swallowed by the byte-level character test.
func (l *Lexer) identifierLen(rem []byte) int {
	max := transcode.NextWhitespace(rem)
	if max < 0 {
		max = len(rem)
	}

	n := 0
	for n < len(rem) {
		n++
		if n == max {
			break
		}
		c := rem[n]
		if isIdentPart(c) || (c == '-' && l.opts.AllowDashesInIdentifiers) {
			continue
		}
		break
	}
	return n
}

func isIdentStart(c byte) bool {
	return asciix.IsAlpha(c) || c == '_' || c >= 0x80
}

func isIdentPart(c byte) bool {
	return asciix.IsAlnum(c) || c == '_' || c >= 0x80
}
