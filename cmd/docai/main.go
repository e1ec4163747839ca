package main

import (
	"os"

	"github.com/timetoact/docai/cmd/docai/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
