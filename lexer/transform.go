// File: transform.go
// Title: Token Value Transformation
// Description: Produces the logical value of a token: quote stripping
//              and escape collapsing for strings, delimiter stripping
//              for comments, a verbatim copy for everything else.
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
	"github.com/msto63/grimm/strbuf"
)

// Transform returns the logical value of the most recently produced
// token as a fresh string handle. Strings lose their surrounding
// quotes and collapse the recognized two-character escapes, comments
// lose their delimiters, and every other token copies verbatim. Error
// tokens have no value and report CodeInvalidArgument. Any failure
// recorded on the handle while it is built is returned alongside it.
func (l *Lexer) Transform() (*strbuf.String, error) {
	switch l.tok.Kind {
	case KindError:
		return nil, grimmerror.New("error tokens have no value").
			WithCode(grimmerror.CodeInvalidArgument).
			WithOperation("lexer.Transform")

	case KindStringDouble, KindStringSingle:
		s := l.unescapeString()
		return s, s.Result()

	case KindComment:
		raw := l.Text()
		if bytes.HasPrefix(raw, l.lineOpen) {
			s := strbuf.NewBytes(raw[len(l.lineOpen):])
			return s, s.Result()
		}
		if bytes.HasPrefix(raw, l.blockOpen) {
			// The closer is stripped only when the comment actually
			// ends with one; a comment cut off by the end of input
			// keeps its tail verbatim.
			body := bytes.TrimSuffix(raw[len(l.blockOpen):], l.blockClose)
			s := strbuf.NewBytes(body)
			return s, s.Result()
		}
	}

	s := strbuf.NewBytes(l.Text())
	return s, s.Result()
}

// unescapeString strips the surrounding quotes and collapses each
// recognized escape into the character it names. Unicode, hex and
// octal escape forms are not interpreted; they pass through literally.
func (l *Lexer) unescapeString() *strbuf.String {
	raw := l.Text()
	if len(raw) > 0 && (raw[0] == '"' || raw[0] == '\'') {
		q := raw[0]
		raw = raw[1:]
		if len(raw) > 0 && raw[len(raw)-1] == q {
			raw = raw[:len(raw)-1]
		}
	}

	s := strbuf.NewBytes(raw)
	for i := 0; i+1 < s.Len(); {
		b := s.Bytes()
		if b[i] != '\\' {
			i++
			continue
		}
		v, ok := escapeValue(b[i+1])
		if !ok {
			i++
			continue
		}
		s.Replace(i, 2, v)
		i++
	}
	return s
}

func escapeValue(c byte) (string, bool) {
	switch c {
	case 'r':
		return "\r", true
	case 'n':
		return "\n", true
	case 't':
		return "\t", true
	case 'f':
		return "\f", true
	case '"':
		return `"`, true
	case '\'':
		return "'", true
	case '\\':
		return `\`, true
	case '0':
		return "\x00", true
	}
	return "", false
}
