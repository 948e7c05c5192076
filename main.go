/*
Package main implements the robson-go CLI.

Design philosophy:
  - CLI as a CONTRACT OF INTENT (plan → validate → execute)
  - Clear separation of concerns
  - Human-readable by default, machine-readable on demand (--json)

Architecture:
  - Root command: robson-go
  - Legacy subcommands: help, report, say, buy, sell
  - Agentic workflow: plan, validate, execute
  - Monitoring: positions, price, account, status, operations
  - Market data: server

Version metadata is injected with -ldflags into internal/buildinfo.
*/
package main

import (
	"fmt"
	"os"

	"github.com/ldamasio/robson/cli/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(cmd.ExitCode(err))
	}
}
