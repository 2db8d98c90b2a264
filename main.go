// Package main is the entry point for the rss-analyzer CLI
package main

import (
	"os"

	"rss-analyzer/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Stderr.WriteString("Error: " + err.Error() + "\n")
		os.Exit(1)
	}
}
