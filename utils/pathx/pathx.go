// File: pathx.go
// Title: Path Segment Iteration
// Description: Implements forward and backward iteration over the segments
//              of slash- or backslash-separated paths, plus extension
//              lookup. Works on raw strings without touching the
//              filesystem or the OS path conventions.
// Version: v0.1.0
// Created: 2026-01-19
// Modified: 2026-01-19
//
// Change History:
// - 2026-01-19 v0.1.0: Initial implementation

package pathx

import (
	"strings"

	grimmerror "github.com/msto63/grimm/core/error"
	"github.com/msto63/grimm/utils/asciix"
)

// Iterator walks the segments of a path string. Both '/' and '\' act as
// separators and runs of separators count as one. The zero value is not
// positioned on any segment; obtain a positioned iterator from First or
// Last.
type Iterator struct {
	path string
	off  int
	n    int
}

func isSeparator(c byte) bool {
	return c == '/' || c == '\\'
}

// First returns an iterator positioned on the first segment of path.
// For an absolute path the first segment is the root, which is empty:
// iterating "/usr/lib" yields "", "usr", "lib".
func First(path string) (Iterator, error) {
	if len(path) == 0 {
		return Iterator{}, grimmerror.New("cannot iterate an empty path").
			WithCode(grimmerror.CodeInvalidArgument).
			WithOperation("pathx.First")
	}

	it := Iterator{path: path}
	for it.n < len(path) && !isSeparator(path[it.n]) {
		it.n++
	}
	return it, nil
}

// Last returns an iterator positioned on the last segment of path. A
// path consisting only of separators has a single segment, the empty
// root.
func Last(path string) (Iterator, error) {
	if len(path) == 0 {
		return Iterator{}, grimmerror.New("cannot iterate an empty path").
			WithCode(grimmerror.CodeInvalidArgument).
			WithOperation("pathx.Last")
	}

	it := Iterator{path: path, off: len(path)}
	if err := it.Prev(); err != nil {
		return Iterator{}, err
	}
	return it, nil
}

// Segment returns the text of the current segment. The root segment of
// an absolute path is the empty string.
func (it *Iterator) Segment() string {
	return it.path[it.off : it.off+it.n]
}

// Offset returns the byte offset of the current segment within the path
func (it *Iterator) Offset() int {
	return it.off
}

// Path returns the full path the iterator walks
func (it *Iterator) Path() string {
	return it.path
}

// Next advances the iterator to the following segment. When no segment
// remains it returns an error carrying CodeEndOfInput and the iterator
// stays exhausted; further calls keep reporting end of input.
func (it *Iterator) Next() error {
	it.off += it.n
	it.n = 0

	for it.off < len(it.path) && isSeparator(it.path[it.off]) {
		it.off++
	}
	if it.off >= len(it.path) {
		return grimmerror.New("no further path segment").
			WithCode(grimmerror.CodeEndOfInput).
			WithOperation("pathx.Next")
	}

	for it.off+it.n < len(it.path) && !isSeparator(it.path[it.off+it.n]) {
		it.n++
	}
	return nil
}

// Prev moves the iterator to the preceding segment. Moving before the
// first segment returns an error carrying CodeEndOfInput.
func (it *Iterator) Prev() error {
	if it.off == 0 {
		it.n = 0
		return grimmerror.New("no preceding path segment").
			WithCode(grimmerror.CodeEndOfInput).
			WithOperation("pathx.Prev")
	}

	end := it.off - 1
	for end > 0 && isSeparator(it.path[end]) {
		end--
	}
	if isSeparator(it.path[end]) {
		// Nothing but separators up to the start of the path: the
		// preceding segment is the root of an absolute path.
		it.off = 0
		it.n = 0
		return nil
	}

	start := end
	for start > 0 && !isSeparator(it.path[start-1]) {
		start--
	}
	it.off = start
	it.n = end + 1 - start
	return nil
}

// Compare orders the current segment of the iterator against that of
// other in the manner of strings.Compare. Only the segment text matters;
// the surrounding paths and positions do not.
func (it *Iterator) Compare(other *Iterator) int {
	return strings.Compare(it.Segment(), other.Segment())
}

// extensionOffset returns the index of the dot introducing the extension
// of path, or -1 when the final segment has no extension. Only the last
// dot counts, and dots in earlier segments never do.
func extensionOffset(path string) int {
	dot := -1
	for i := 0; i < len(path); i++ {
		switch {
		case path[i] == '.':
			dot = i
		case isSeparator(path[i]):
			dot = -1
		}
	}
	return dot
}

// Extension returns the extension of the final segment of path without
// its leading dot, or "" when there is none. The whole text after the
// last dot counts, so "archive.tar.gz" has extension "gz", and a leading
// dot introduces an extension too: ".bashrc" has extension "bashrc".
func Extension(path string) string {
	dot := extensionOffset(path)
	if dot < 0 {
		return ""
	}
	return path[dot+1:]
}

// ExtensionEqual reports whether the extension of path equals extension
// under ASCII case folding. The candidate is given without a dot. A path
// without any extension matches nothing, not even the empty string.
func ExtensionEqual(path, extension string) bool {
	dot := extensionOffset(path)
	if dot < 0 {
		return false
	}
	return asciix.EqualFold(path[dot+1:], extension)
}
