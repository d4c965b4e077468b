// Package main is the entry point for reservation-sync CLI.
package main

import (
	"os"

	"github.com/ktourstory/reservation-sync/cmd/reservation-sync/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
