package main

import (
	"os"

	"github.com/arindam/tutorlens/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
