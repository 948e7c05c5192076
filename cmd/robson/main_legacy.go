//go:build legacy

// Command robson, legacy build: prints the screen bound to a --flag without
// delegating anywhere.
package main

import (
	"os"

	"github.com/ldamasio/robson/cli/internal/legacy"
)

func main() {
	os.Exit(legacy.Main())
}
