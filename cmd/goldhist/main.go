package main

import (
	"os"

	"github.com/rustyeddy/goldhist/cmd/goldhist/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
