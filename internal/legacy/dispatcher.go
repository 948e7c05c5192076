/*
Package legacy implements the self-contained robson entry point: the first
argument is matched against a fixed table of flags and the bound screen is
printed. It predates the router that delegates to robson-go.
*/
package legacy

import (
	"fmt"
	"io"
	"os"

	"github.com/ldamasio/robson/cli/internal/buildinfo"
	"github.com/ldamasio/robson/cli/internal/screen"
)

// Exit codes returned by Run.
const (
	ExitOK          = 0
	ExitScreenError = 1
	ExitUsage       = 2
)

// Route binds a flag to the screen it opens.
type Route struct {
	Flag   string
	Screen func() error
}

// Dispatcher matches the first argument against Routes in order.
type Dispatcher struct {
	Routes []Route
	Stdout io.Writer
	Stderr io.Writer
}

// New returns a dispatcher with the five legacy screens writing to stdout.
func New(stdout, stderr io.Writer) *Dispatcher {
	return &Dispatcher{
		Routes: DefaultRoutes(stdout),
		Stdout: stdout,
		Stderr: stderr,
	}
}

// DefaultRoutes binds --help, --report, --say, --buy and --sell to their
// screens.
func DefaultRoutes(w io.Writer) []Route {
	return []Route{
		{"--help", func() error { return screen.Help(w) }},
		{"--report", func() error { return screen.Report(w) }},
		{"--say", func() error { return screen.Say(w, screen.DefaultSayMessage) }},
		{"--buy", func() error { return screen.Order(w, "buy", nil) }},
		{"--sell", func() error { return screen.Order(w, "sell", nil) }},
	}
}

// Run dispatches args (including the invocation name) and returns the exit
// code. An unknown flag is reported on stdout and exits with ExitUsage.
func (d *Dispatcher) Run(args []string) int {
	if len(args) < 2 {
		if err := screen.Welcome(d.Stdout, buildinfo.Summary()); err != nil {
			return ExitScreenError
		}
		return ExitOK
	}

	for _, route := range d.Routes {
		if route.Flag != args[1] {
			continue
		}
		if err := route.Screen(); err != nil {
			fmt.Fprintf(d.Stderr, "robson: %s: %v\n", route.Flag, err)
			return ExitScreenError
		}
		return ExitOK
	}

	fmt.Fprintf(d.Stdout, "Type --help. Invalid argument %s\n", args[1])
	return ExitUsage
}

// Main runs the dispatcher against the process arguments.
func Main() int {
	return New(os.Stdout, os.Stderr).Run(os.Args)
}
