// File: strbuf.go
// Title: Growable String Handle
// Description: Implements the result-carrying string builder: content
//              mutation with append semantics, range editing, search
//              and replace, Unicode trimming and the sticky result
//              that short-circuits chained mutations.
// Version: v0.1.0
// Created: 2026-01-17
// Modified: 2026-01-17
//
// Change History:
// - 2026-01-17 v0.1.0: Initial implementation

package strbuf

import (
	"bytes"

	grimmerror "github.com/msto63/grimm/core/error"
	"github.com/msto63/grimm/fmtx"
	"github.com/msto63/grimm/transcode"
)

// String is a growable byte string that records the first failed
// mutation. The zero value and nil are empty, usable handles. Mutators
// return the handle so calls chain; callers keep the returned handle
// because a mutator invoked on nil allocates one.
type String struct {
	buf []byte
	err error
}

// New returns a handle holding other.
func New(other string) *String {
	s := &String{}
	s.buf = append(s.buf, other...)
	return s
}

// NewCap returns an empty handle with room for capacity bytes before
// the first reallocation.
func NewCap(capacity int) *String {
	if capacity < 0 {
		capacity = 0
	}
	return &String{buf: make([]byte, 0, capacity)}
}

// NewBytes returns a handle holding a copy of other.
func NewBytes(other []byte) *String {
	s := &String{}
	s.buf = append(s.buf, other...)
	return s
}

// Newf returns a handle holding the formatted output.
func Newf(format string, args ...interface{}) *String {
	s := &String{}
	s.buf = fmtx.Bprintf(s.buf, format, args...)
	return s
}

// ensure replaces a nil receiver with a fresh empty handle so that
// every mutator works on nil.
func (s *String) ensure() *String {
	if s == nil {
		return &String{}
	}
	return s
}

// Set replaces the content with other. Set also clears a recorded
// error: replacing the content wholesale is the reset point of a
// reused handle.
func (s *String) Set(other string) *String {
	s = s.ensure()
	s.err = nil
	s.buf = append(s.buf[:0], other...)
	return s
}

// SetBytes replaces the content with a copy of other. Like Set it
// clears a recorded error.
func (s *String) SetBytes(other []byte) *String {
	s = s.ensure()
	s.err = nil
	s.buf = append(s.buf[:0], other...)
	return s
}

// Setf replaces the content with the formatted output. Like Set it
// clears a recorded error.
func (s *String) Setf(format string, args ...interface{}) *String {
	s = s.ensure()
	s.err = nil
	s.buf = fmtx.Bprintf(s.buf[:0], format, args...)
	return s
}

// Cat appends other.
func (s *String) Cat(other string) *String {
	s = s.ensure()
	if s.err != nil {
		return s
	}
	s.buf = append(s.buf, other...)
	return s
}

// CatBytes appends other.
func (s *String) CatBytes(other []byte) *String {
	s = s.ensure()
	if s.err != nil {
		return s
	}
	s.buf = append(s.buf, other...)
	return s
}

// Catf appends the formatted output, formatting directly into the
// buffer.
func (s *String) Catf(format string, args ...interface{}) *String {
	s = s.ensure()
	if s.err != nil {
		return s
	}
	s.buf = fmtx.Bprintf(s.buf, format, args...)
	return s
}

// Prepend inserts other in front of the content.
func (s *String) Prepend(other string) *String {
	s = s.ensure()
	if s.err != nil || len(other) == 0 {
		return s
	}
	n := len(other)
	s.buf = append(s.buf, other...)
	copy(s.buf[n:], s.buf[:len(s.buf)-n])
	copy(s.buf, other)
	return s
}

// Prependf inserts the formatted output in front of the content.
func (s *String) Prependf(format string, args ...interface{}) *String {
	s = s.ensure()
	if s.err != nil {
		return s
	}
	n := len(s.buf)
	s.buf = fmtx.Bprintf(s.buf, format, args...)
	if n > 0 && len(s.buf) > n {
		rotate(s.buf, n)
	}
	return s
}

// rotate moves the first n bytes of b behind the rest, turning
// old+formatted into formatted+old without a scratch allocation.
func rotate(b []byte, n int) {
	reverse(b[:n])
	reverse(b[n:])
	reverse(b)
}

func reverse(b []byte) {
	for i, j := 0, len(b)-1; i < j; i, j = i+1, j-1 {
		b[i], b[j] = b[j], b[i]
	}
}

// Remove deletes the half-open byte range [beg, end). An inverted or
// negative range records CodeInvalidArgument; a begin beyond the
// content records CodeValueOutOfRange. An end beyond the content is
// clamped.
func (s *String) Remove(beg, end int) *String {
	s = s.ensure()
	if s.err != nil {
		return s
	}
	if beg < 0 || beg > end {
		s.err = grimmerror.New("remove range is inverted or negative").
			WithCode(grimmerror.CodeInvalidArgument).
			WithOperation("strbuf.Remove").
			WithDetail("begin", beg).
			WithDetail("end", end)
		return s
	}
	if beg > len(s.buf) {
		s.err = grimmerror.New("remove range begins beyond the content").
			WithCode(grimmerror.CodeValueOutOfRange).
			WithOperation("strbuf.Remove").
			WithDetail("begin", beg).
			WithDetail("length", len(s.buf))
		return s
	}
	if end > len(s.buf) {
		end = len(s.buf)
	}
	if beg == end {
		return s
	}
	s.buf = append(s.buf[:beg], s.buf[end:]...)
	return s
}

// Replace substitutes the byte range [offset, offset+length) with
// other. A negative offset or length records CodeInvalidArgument; a
// range reaching beyond the content records CodeValueOutOfRange.
func (s *String) Replace(offset, length int, other string) *String {
	s = s.ensure()
	if s.err != nil {
		return s
	}
	if offset < 0 || length < 0 {
		s.err = grimmerror.New("replace range is negative").
			WithCode(grimmerror.CodeInvalidArgument).
			WithOperation("strbuf.Replace").
			WithDetail("offset", offset).
			WithDetail("rangeLength", length)
		return s
	}
	if offset+length > len(s.buf) {
		s.err = grimmerror.New("replace range reaches beyond the content").
			WithCode(grimmerror.CodeValueOutOfRange).
			WithOperation("strbuf.Replace").
			WithDetail("offset", offset).
			WithDetail("rangeLength", length).
			WithDetail("length", len(s.buf))
		return s
	}
	out := make([]byte, 0, len(s.buf)-length+len(other))
	out = append(out, s.buf[:offset]...)
	out = append(out, other...)
	out = append(out, s.buf[offset+length:]...)
	s.buf = out
	return s
}

// ReplaceAll substitutes every occurrence of query with replacement,
// scanning left to right and continuing after each substitution. An
// empty query leaves the content unchanged.
func (s *String) ReplaceAll(query, replacement string) *String {
	s = s.ensure()
	if s.err != nil || len(query) == 0 {
		return s
	}

	// single byte for single byte swaps in place
	if len(query) == 1 && len(replacement) == 1 {
		q, r := query[0], replacement[0]
		for i := range s.buf {
			if s.buf[i] == q {
				s.buf[i] = r
			}
		}
		return s
	}

	q := []byte(query)
	var out []byte
	start := 0
	for {
		i := bytes.Index(s.buf[start:], q)
		if i < 0 {
			break
		}
		out = append(out, s.buf[start:start+i]...)
		out = append(out, replacement...)
		start += i + len(q)
	}
	if start == 0 {
		return s
	}
	s.buf = append(out, s.buf[start:]...)
	return s
}

// Trim removes leading and trailing Unicode whitespace in place.
func (s *String) Trim() *String {
	s = s.ensure()
	if s.err != nil {
		return s
	}
	l := transcode.LTrimOffset(s.buf)
	r := transcode.RTrimOffset(s.buf)
	if l >= r {
		s.buf = s.buf[:0]
		return s
	}
	s.buf = append(s.buf[:0], s.buf[l:r]...)
	return s
}

// Len returns the content length in bytes.
func (s *String) Len() int {
	if s == nil {
		return 0
	}
	return len(s.buf)
}

// Cap returns the buffer capacity in bytes.
func (s *String) Cap() int {
	if s == nil {
		return 0
	}
	return cap(s.buf)
}

// String returns a copy of the content. It implements fmt.Stringer, so
// a handle formats directly under %s.
func (s *String) String() string {
	if s == nil {
		return ""
	}
	return string(s.buf)
}

// Bytes returns the content without copying. The slice aliases the
// handle's buffer and is invalidated by the next mutation.
func (s *String) Bytes() []byte {
	if s == nil {
		return nil
	}
	return s.buf
}

// Result returns the first mutation failure recorded on the handle, or
// nil. Checking once after a chain of mutations covers the whole
// chain.
func (s *String) Result() error {
	if s == nil {
		return nil
	}
	return s.err
}
