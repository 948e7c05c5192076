//go:build !legacy

/*
Command robson is the user-facing entry point. It translates legacy flags
(--help, --buy, ...) and hands the invocation over to robson-go.

Configuration comes from ROBSON_* environment variables and an optional
YAML file (ROBSON_CONFIG); robson has no flags of its own so that every
argument reaches the delegate untouched.

Build with -tags legacy for the self-contained dispatcher instead.
*/
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/ldamasio/robson/cli/internal/config"
	"github.com/ldamasio/robson/cli/internal/log"
	"github.com/ldamasio/robson/cli/internal/router"
)

func main() {
	os.Exit(run(context.Background(), os.Args))
}

func run(ctx context.Context, args []string) int {
	settings, err := config.Load("", nil)
	if err != nil {
		fmt.Fprintf(os.Stderr, "robson: %v\n", err)
		return 1
	}
	log.Init(settings.Verbose)

	executor, err := router.NewExecutor(settings.ExecMode)
	if err != nil {
		fmt.Fprintf(os.Stderr, "robson: %v\n", err)
		return 1
	}

	log.GetLogger().Debug("router configured",
		"delegate", settings.Delegate,
		"execMode", settings.ExecMode,
		"config", settings.ConfigFile,
	)
	return router.New(settings.Delegate, executor, log.GetLogger()).Run(ctx, args)
}
