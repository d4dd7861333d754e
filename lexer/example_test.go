// File: example_test.go
// Title: Usage Examples for lexer
// Description: Runnable examples covering the scan loop, token value
//              transformation and option configuration.
// Version: v0.1.0
// Created: 2026-01-18
// Modified: 2026-01-18
//
// Change History:
// - 2026-01-18 v0.1.0: Initial implementation

package lexer_test

import (
	"fmt"

	"github.com/msto63/grimm/lexer"
)

func ExampleLexer() {
	opts := lexer.DefaultOptions()
	opts.SkipWhitespace = true
	opts.SkipNewlines = true

	l := lexer.NewWithOptions([]byte("total == 42 // checked\n"), opts)
	for {
		if err := l.Next(); err != nil {
			break
		}
		fmt.Printf("%-11s %q\n", l.Token(), l.Text())
	}
	// Output:
	// identifier  "total"
	// ==          "=="
	// integer-dec "42"
	// comment     "// checked"
}

func ExampleLexer_Transform() {
	l := lexer.New([]byte(`"first\nsecond"`))
	if err := l.Next(); err != nil {
		return
	}
	s, err := l.Transform()
	if err != nil {
		return
	}
	fmt.Println(s.String())
	// Output:
	// first
	// second
}

func ExampleOptions() {
	opts := lexer.DefaultOptions()
	opts.LineComment = "#"
	opts.AllowDashesInIdentifiers = true
	opts.SkipWhitespace = true

	l := lexer.NewWithOptions([]byte("retry-count = 3 # attempts"), opts)
	for {
		if err := l.Next(); err != nil {
			break
		}
		fmt.Printf("%s %q\n", l.Token(), l.Text())
	}
	// Output:
	// identifier "retry-count"
	// '=' "="
	// integer-dec "3"
	// comment "# attempts"
}

func ExampleLexer_Line() {
	src := []byte("one\ntwo /* a\nb */ three")
	l := lexer.NewWithOptions(src, lexer.Options{SkipWhitespace: true, SkipNewlines: true})
	for {
		if err := l.Next(); err != nil {
			break
		}
		if l.Token().Kind == lexer.KindIdentifier {
			fmt.Printf("%s on line %d\n", l.Text(), l.Line())
		}
	}
	// Output:
	// one on line 1
	// two on line 2
	// three on line 3
}
