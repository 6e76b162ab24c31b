// Package main is the entry point for the negotiator server.
package main

import (
	"os"

	"github.com/sellermate/negotiator/cmd/negotiator/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
