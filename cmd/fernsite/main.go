// Package main is the entry point for the fernsite binary.
package main

import (
	"os"

	"github.com/fernlight-labs/fernsite/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
