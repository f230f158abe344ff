package main

import (
	"os"
)

var (
	version = "dev"
	commit  = "none"    // set via ldflags at build time
	date    = "unknown" // set via ldflags at build time
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
