// Package main is the entry point for the nego CLI client.
package main

import (
	"github.com/sellermate/negotiator/cmd/nego/cmd"
)

func main() {
	cmd.Execute()
}
