// Package main is the querybridge command-line entrypoint.
package main

import (
	"os"

	"github.com/querybridge/querybridge/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
