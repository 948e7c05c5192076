/*
Package router implements the robson entry point that hands every
invocation over to the robson-go delegate.

Legacy flags (--help, --buy, ...) in first position are rewritten to the
bare subcommands robson-go expects; everything else passes through verbatim.
*/
package router

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/ldamasio/robson/cli/internal/buildinfo"
	"github.com/ldamasio/robson/cli/internal/log"
)

const (
	exitOK   = 0
	exitFail = 1
)

// Executor hands the delegated argument vector to the delegate binary.
//
// On success Exec either never returns (process image replaced) or returns
// the delegate's exit code. A non-nil error means the delegate could not be
// started at all.
type Executor interface {
	Exec(ctx context.Context, argv []string, env []string) (int, error)
}

// DelegateError reports that the delegate binary could not be started.
type DelegateError struct {
	Name string
	Err  error
}

func (e *DelegateError) Error() string {
	return fmt.Sprintf("cannot run delegate %q: %v", e.Name, e.Err)
}

func (e *DelegateError) Unwrap() error { return e.Err }

// Router translates and delegates one invocation.
type Router struct {
	Delegate string
	Executor Executor
	Env      []string
	Stdout   io.Writer
	Stderr   io.Writer
	Logger   log.Logger
}

// New returns a Router writing to the process streams and inheriting the
// current environment.
func New(delegate string, executor Executor, logger log.Logger) *Router {
	return &Router{
		Delegate: delegate,
		Executor: executor,
		Env:      os.Environ(),
		Stdout:   os.Stdout,
		Stderr:   os.Stderr,
		Logger:   logger,
	}
}

// BuildArgv builds the delegated argument vector for args (which still
// includes the invocation name at index 0). args must hold at least one
// user argument. Only the first user argument is translated.
func BuildArgv(delegate string, args []string) []string {
	argv := make([]string, 0, len(args))
	argv = append(argv, delegate)

	if sub, ok := Translate(args[1]); ok {
		argv = append(argv, sub)
	} else {
		argv = append(argv, args[1])
	}

	return append(argv, args[2:]...)
}

// Run executes one invocation and returns the process exit code.
func (r *Router) Run(ctx context.Context, args []string) int {
	if len(args) < 2 {
		r.printBanner()
		return exitOK
	}

	argv := BuildArgv(r.Delegate, args)
	r.Logger.Debug("delegating", "delegate", r.Delegate, "argv", argv)

	code, err := r.Executor.Exec(ctx, argv, r.Env)
	if err != nil {
		r.Logger.Debug("delegation failed", "error", err)
		fmt.Fprintf(r.Stderr, "robson: %v\n", err)
		if IsDelegateError(err) {
			fmt.Fprintf(r.Stderr, "hint: install %s and make sure it is on your PATH, or point ROBSON_DELEGATE at it\n", r.Delegate)
		}
		return exitFail
	}
	return code
}

func (r *Router) printBanner() {
	fmt.Fprintf(r.Stdout, "Welcome to Robson %s\n", buildinfo.Summary())
	fmt.Fprintln(r.Stdout, "Usage: robson <command> [arguments...]")
	fmt.Fprintf(r.Stdout, "Legacy flags: %s\n", strings.Join(LegacyFlags(), ", "))
	fmt.Fprintln(r.Stdout, "Try 'robson help' for the list of commands.")
}

// IsDelegateError reports whether err says the delegate could not start.
func IsDelegateError(err error) bool {
	var de *DelegateError
	return errors.As(err, &de)
}
