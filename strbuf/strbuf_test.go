// File: strbuf_test.go
// Title: Growable String Tests
// Description: Tests for construction, content mutation, range
//              editing, search and replace, trimming and the sticky
//              result contract.
// Version: v0.1.0
// Created: 2026-01-17
// Modified: 2026-01-17
//
// Change History:
// - 2026-01-17 v0.1.0: Initial implementation

package strbuf

import (
	"testing"

	grimmerror "github.com/msto63/grimm/core/error"
	"github.com/msto63/grimm/fmtx"
)

func TestNew(t *testing.T) {
	s := New("hello")
	if s.String() != "hello" || s.Len() != 5 {
		t.Errorf("New = %q len %d, want %q len 5", s.String(), s.Len(), "hello")
	}
	if s.Result() != nil {
		t.Errorf("fresh handle has result %v", s.Result())
	}

	if got := New("").String(); got != "" {
		t.Errorf("New(\"\") = %q, want empty", got)
	}
}

func TestNewCap(t *testing.T) {
	s := NewCap(64)
	if s.Len() != 0 {
		t.Errorf("NewCap length = %d, want 0", s.Len())
	}
	if s.Cap() < 64 {
		t.Errorf("NewCap capacity = %d, want at least 64", s.Cap())
	}

	if s := NewCap(-1); s.Len() != 0 || s.Result() != nil {
		t.Errorf("NewCap(-1) = %q, %v, want empty handle", s.String(), s.Result())
	}
}

func TestNewBytes(t *testing.T) {
	src := []byte("abc")
	s := NewBytes(src)
	src[0] = 'Z'
	if s.String() != "abc" {
		t.Errorf("NewBytes aliases its input: %q", s.String())
	}
}

func TestNewf(t *testing.T) {
	if got := Newf("%05d", 42).String(); got != "00042" {
		t.Errorf("Newf = %q, want %q", got, "00042")
	}
}

func TestSet(t *testing.T) {
	s := New("old content")
	s = s.Set("new")
	if s.String() != "new" || s.Len() != 3 {
		t.Errorf("Set = %q len %d, want %q len 3", s.String(), s.Len(), "new")
	}

	s = s.SetBytes([]byte("bytes"))
	if s.String() != "bytes" {
		t.Errorf("SetBytes = %q, want %q", s.String(), "bytes")
	}

	s = s.Setf("%x", 255)
	if s.String() != "ff" {
		t.Errorf("Setf = %q, want %q", s.String(), "ff")
	}

	var nilHandle *String
	if got := nilHandle.Set("from nil").String(); got != "from nil" {
		t.Errorf("Set on nil = %q, want %q", got, "from nil")
	}
}

func TestCat(t *testing.T) {
	s := New("a").Cat("b").Cat("c")
	if s.String() != "abc" {
		t.Errorf("chained Cat = %q, want %q", s.String(), "abc")
	}

	s = s.CatBytes([]byte("de")).Cat("")
	if s.String() != "abcde" {
		t.Errorf("CatBytes = %q, want %q", s.String(), "abcde")
	}

	var nilHandle *String
	if got := nilHandle.Cat("x").String(); got != "x" {
		t.Errorf("Cat on nil = %q, want %q", got, "x")
	}
}

func TestCatf(t *testing.T) {
	s := New("n=").Catf("%'d", 1234567)
	if s.String() != "n=1,234,567" {
		t.Errorf("Catf = %q, want %q", s.String(), "n=1,234,567")
	}

	s = New("").Catf("%s %s", "a", "b")
	if s.String() != "a b" {
		t.Errorf("Catf = %q, want %q", s.String(), "a b")
	}
}

func TestPrepend(t *testing.T) {
	s := New("world").Prepend("hello ")
	if s.String() != "hello world" {
		t.Errorf("Prepend = %q, want %q", s.String(), "hello world")
	}

	s = s.Prepend("")
	if s.String() != "hello world" {
		t.Errorf("Prepend(\"\") changed content: %q", s.String())
	}

	if got := New("").Prepend("x").String(); got != "x" {
		t.Errorf("Prepend onto empty = %q, want %q", got, "x")
	}

	var nilHandle *String
	if got := nilHandle.Prepend("y").String(); got != "y" {
		t.Errorf("Prepend on nil = %q, want %q", got, "y")
	}
}

func TestPrependf(t *testing.T) {
	s := New("world").Prependf("%s, ", "hello")
	if s.String() != "hello, world" {
		t.Errorf("Prependf = %q, want %q", s.String(), "hello, world")
	}

	if got := New("").Prependf("%d", 42).String(); got != "42" {
		t.Errorf("Prependf onto empty = %q, want %q", got, "42")
	}

	s = New("tail").Prependf("")
	if s.String() != "tail" {
		t.Errorf("empty Prependf changed content: %q", s.String())
	}
}

func TestRemove(t *testing.T) {
	tests := []struct {
		content  string
		beg, end int
		want     string
	}{
		{"hello world", 5, 11, "hello"},
		{"hello world", 0, 6, "world"},
		{"hello world", 4, 7, "hellorld"},
		{"hello", 2, 100, "he"}, // end clamps to the content
		{"hello", 3, 3, "hello"},
		{"", 0, 0, ""},
	}

	for _, tt := range tests {
		s := New(tt.content).Remove(tt.beg, tt.end)
		if err := s.Result(); err != nil {
			t.Errorf("Remove(%d, %d) on %q failed: %v", tt.beg, tt.end, tt.content, err)
			continue
		}
		if s.String() != tt.want {
			t.Errorf("Remove(%d, %d) on %q = %q, want %q", tt.beg, tt.end, tt.content, s.String(), tt.want)
		}
	}
}

func TestRemoveErrors(t *testing.T) {
	s := New("abc").Remove(2, 1)
	if !grimmerror.HasCode(s.Result(), grimmerror.CodeInvalidArgument) {
		t.Errorf("inverted range result = %v, want CodeInvalidArgument", s.Result())
	}
	if s.String() != "abc" {
		t.Errorf("failed Remove changed content: %q", s.String())
	}

	s = New("abc").Remove(-1, 2)
	if !grimmerror.HasCode(s.Result(), grimmerror.CodeInvalidArgument) {
		t.Errorf("negative begin result = %v, want CodeInvalidArgument", s.Result())
	}

	s = New("abc").Remove(5, 7)
	if !grimmerror.HasCode(s.Result(), grimmerror.CodeValueOutOfRange) {
		t.Errorf("begin beyond content result = %v, want CodeValueOutOfRange", s.Result())
	}
	if s.String() != "abc" {
		t.Errorf("failed Remove changed content: %q", s.String())
	}
}

func TestReplace(t *testing.T) {
	tests := []struct {
		content        string
		offset, length int
		other          string
		want           string
	}{
		{"hello world", 6, 5, "there", "hello there"},
		{"hello world", 0, 5, "hi", "hi world"},
		{"hello world", 5, 0, ",", "hello, world"}, // zero length inserts
		{"hello world", 5, 6, "", "hello"},         // empty other removes
		{"abc", 0, 3, "xyz", "xyz"},
		{"abc", 1, 1, "BBB", "aBBBc"},
	}

	for _, tt := range tests {
		s := New(tt.content).Replace(tt.offset, tt.length, tt.other)
		if err := s.Result(); err != nil {
			t.Errorf("Replace(%d, %d, %q) on %q failed: %v", tt.offset, tt.length, tt.other, tt.content, err)
			continue
		}
		if s.String() != tt.want {
			t.Errorf("Replace(%d, %d, %q) on %q = %q, want %q",
				tt.offset, tt.length, tt.other, tt.content, s.String(), tt.want)
		}
	}
}

func TestReplaceErrors(t *testing.T) {
	s := New("abc").Replace(1, 5, "x")
	if !grimmerror.HasCode(s.Result(), grimmerror.CodeValueOutOfRange) {
		t.Errorf("range beyond content result = %v, want CodeValueOutOfRange", s.Result())
	}
	if s.String() != "abc" {
		t.Errorf("failed Replace changed content: %q", s.String())
	}

	s = New("abc").Replace(-1, 1, "x")
	if !grimmerror.HasCode(s.Result(), grimmerror.CodeInvalidArgument) {
		t.Errorf("negative offset result = %v, want CodeInvalidArgument", s.Result())
	}
}

func TestReplaceAll(t *testing.T) {
	tests := []struct {
		content     string
		query       string
		replacement string
		want        string
	}{
		{"one, two, one", "one", "1", "1, two, 1"},
		{"a-b-c", "-", "+", "a+b+c"}, // single byte fast path
		{"aaaa", "aa", "b", "bb"},    // matches do not overlap
		{"abab", "ab", "abc", "abcabc"},
		{"hello", "xyz", "q", "hello"},
		{"hello", "", "q", "hello"}, // empty query is a no-op
		{"xabx", "x", "", "ab"},
		{"prefix ab", "ab", "", "prefix "},
		{"", "a", "b", ""},
	}

	for _, tt := range tests {
		s := New(tt.content).ReplaceAll(tt.query, tt.replacement)
		if s.String() != tt.want {
			t.Errorf("ReplaceAll(%q, %q) on %q = %q, want %q",
				tt.query, tt.replacement, tt.content, s.String(), tt.want)
		}
	}
}

func TestTrim(t *testing.T) {
	tests := []struct {
		content string
		want    string
	}{
		{"  hello  ", "hello"},
		{"\t\r\n hello \n", "hello"},
		{"hello", "hello"},
		{"　日本　", "日本"}, // ideographic space
		{"   ", ""},
		{"", ""},
		{"a b", "a b"}, // interior whitespace stays
	}

	for _, tt := range tests {
		s := New(tt.content).Trim()
		if s.String() != tt.want {
			t.Errorf("Trim on %q = %q, want %q", tt.content, s.String(), tt.want)
		}
	}
}

func TestAccessors(t *testing.T) {
	s := New("abc")
	b := s.Bytes()
	b[0] = 'X'
	if s.String() != "Xbc" {
		t.Errorf("Bytes does not alias the buffer: %q", s.String())
	}

	var nilHandle *String
	if nilHandle.Len() != 0 || nilHandle.Cap() != 0 {
		t.Errorf("nil handle Len/Cap = %d/%d, want 0/0", nilHandle.Len(), nilHandle.Cap())
	}
	if nilHandle.String() != "" {
		t.Errorf("nil handle String = %q, want empty", nilHandle.String())
	}
	if nilHandle.Bytes() != nil {
		t.Errorf("nil handle Bytes = %v, want nil", nilHandle.Bytes())
	}
	if nilHandle.Result() != nil {
		t.Errorf("nil handle Result = %v, want nil", nilHandle.Result())
	}
}

// A failed mutation keeps the previous content, later mutations no-op,
// and Result reports the first failure until Set replaces the content.
func TestStickyResult(t *testing.T) {
	s := New("keep")
	s = s.Remove(5, 2)
	if !grimmerror.HasCode(s.Result(), grimmerror.CodeInvalidArgument) {
		t.Fatalf("Result = %v, want CodeInvalidArgument", s.Result())
	}
	if s.String() != "keep" {
		t.Fatalf("failed mutation changed content: %q", s.String())
	}

	s = s.Cat("X").Prepend("Y").Replace(0, 1, "Z").ReplaceAll("e", "3").Trim().Catf("%d", 1)
	if s.String() != "keep" {
		t.Errorf("mutation after failure changed content: %q", s.String())
	}

	// a later failing call must not replace the first error
	s = s.Remove(100, 200)
	if !grimmerror.HasCode(s.Result(), grimmerror.CodeInvalidArgument) {
		t.Errorf("first failure was replaced: %v", s.Result())
	}

	s = s.Set("fresh")
	if s.Result() != nil {
		t.Errorf("Set did not clear the result: %v", s.Result())
	}
	if s.String() != "fresh" {
		t.Errorf("Set after failure = %q, want %q", s.String(), "fresh")
	}
	if got := s.Cat("!").String(); got != "fresh!" {
		t.Errorf("mutation after Set = %q, want %q", got, "fresh!")
	}
}

// The handle formats under %s through its Stringer implementation.
func TestFormatsAsStringer(t *testing.T) {
	s := New("toolkit")
	if got := fmtx.Sprintf("[%s]", s); got != "[toolkit]" {
		t.Errorf("Sprintf(%%s, handle) = %q, want %q", got, "[toolkit]")
	}
}
