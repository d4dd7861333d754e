package main

import (
	"os"

	"github.com/msto63/grimm/cmd/grimm/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
