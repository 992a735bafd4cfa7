package main

import (
	"os"

	"github.com/strugee/profanity/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
