package main

import (
	"os"

	"github.com/tia-rosa/pos/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
