package main

import (
	"os"

	"github.com/obrev/obrev/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
