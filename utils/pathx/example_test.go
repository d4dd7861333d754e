// File: example_test.go
// Title: Examples for Path Segment Iteration
// Description: Runnable examples demonstrating segment walks in both
//              directions and extension matching.
// Version: v0.1.0
// Created: 2026-01-19
// Modified: 2026-01-19
//
// Change History:
// - 2026-01-19 v0.1.0: Initial examples

package pathx_test

import (
	"fmt"

	"github.com/msto63/grimm/utils/pathx"
)

func ExampleFirst() {
	it, err := pathx.First("/usr/local/lib")
	for err == nil {
		fmt.Printf("%q\n", it.Segment())
		err = it.Next()
	}
	// Output:
	// ""
	// "usr"
	// "local"
	// "lib"
}

func ExampleLast() {
	it, err := pathx.Last(`build\win64\grimm.exe`)
	for err == nil {
		fmt.Println(it.Segment())
		err = it.Prev()
	}
	// Output:
	// grimm.exe
	// win64
	// build
}

func ExampleExtension() {
	fmt.Println(pathx.Extension("archive.tar.gz"))
	fmt.Println(pathx.Extension("dir.d/README"))
	// Output:
	// gz
	//
}

func ExampleExtensionEqual() {
	for _, name := range []string{"grimm.toml", "grimm.TOML", "grimm.yaml"} {
		fmt.Println(name, pathx.ExtensionEqual(name, "toml"))
	}
	// Output:
	// grimm.toml true
	// grimm.TOML true
	// grimm.yaml false
}
