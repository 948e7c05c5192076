package legacy

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recordingRoutes builds routes that count invocations per flag.
func recordingRoutes(calls map[string]int) []Route {
	flags := []string{"--help", "--report", "--say", "--buy", "--sell"}
	routes := make([]Route, 0, len(flags))
	for _, flag := range flags {
		flag := flag
		routes = append(routes, Route{Flag: flag, Screen: func() error {
			calls[flag]++
			return nil
		}})
	}
	return routes
}

func TestRun_EachFlagOpensOnlyItsScreen(t *testing.T) {
	for _, flag := range []string{"--help", "--report", "--say", "--buy", "--sell"} {
		t.Run(flag, func(t *testing.T) {
			calls := map[string]int{}
			var stdout bytes.Buffer
			d := &Dispatcher{Routes: recordingRoutes(calls), Stdout: &stdout, Stderr: &bytes.Buffer{}}

			code := d.Run([]string{"robson", flag})

			assert.Equal(t, ExitOK, code)
			assert.Equal(t, map[string]int{flag: 1}, calls)
			assert.Empty(t, stdout.String())
		})
	}
}

func TestRun_NoArgumentsWelcomes(t *testing.T) {
	calls := map[string]int{}
	var stdout bytes.Buffer
	d := &Dispatcher{Routes: recordingRoutes(calls), Stdout: &stdout, Stderr: &bytes.Buffer{}}

	code := d.Run([]string{"robson"})

	assert.Equal(t, ExitOK, code)
	assert.Empty(t, calls)
	assert.True(t, strings.HasPrefix(stdout.String(), "Welcome to Robson "))
}

func TestRun_UnknownArgument(t *testing.T) {
	for _, token := range []string{"help", "--HELP", "--status", "buy now", ""} {
		t.Run(token, func(t *testing.T) {
			calls := map[string]int{}
			var stdout bytes.Buffer
			d := &Dispatcher{Routes: recordingRoutes(calls), Stdout: &stdout, Stderr: &bytes.Buffer{}}

			code := d.Run([]string{"robson", token, "--help"})

			assert.Equal(t, ExitUsage, code)
			assert.Empty(t, calls)
			assert.Equal(t, "Type --help. Invalid argument "+token+"\n", stdout.String())
		})
	}
}

func TestRun_ScreenFailure(t *testing.T) {
	var stderr bytes.Buffer
	d := &Dispatcher{
		Routes: []Route{{Flag: "--report", Screen: func() error { return errors.New("broken pipe") }}},
		Stdout: &bytes.Buffer{},
		Stderr: &stderr,
	}

	code := d.Run([]string{"robson", "--report"})

	assert.Equal(t, ExitScreenError, code)
	assert.Contains(t, stderr.String(), "broken pipe")
}

func TestRun_FirstMatchWins(t *testing.T) {
	var order []string
	d := &Dispatcher{
		Routes: []Route{
			{Flag: "--say", Screen: func() error { order = append(order, "first"); return nil }},
			{Flag: "--say", Screen: func() error { order = append(order, "second"); return nil }},
		},
		Stdout: &bytes.Buffer{},
		Stderr: &bytes.Buffer{},
	}

	require.Equal(t, ExitOK, d.Run([]string{"robson", "--say"}))
	assert.Equal(t, []string{"first"}, order)
}

func TestNew_DefaultScreens(t *testing.T) {
	tests := map[string]string{
		"--help":   "Robson - Cryptocurrency Trading CLI",
		"--report": "TRADING REPORT",
		"--say":    "Robson says: Hello from Robson",
		"--buy":    "BUY ORDER",
		"--sell":   "SELL ORDER",
	}

	for flag, want := range tests {
		t.Run(flag, func(t *testing.T) {
			var stdout bytes.Buffer
			code := New(&stdout, &bytes.Buffer{}).Run([]string{"robson", flag})

			assert.Equal(t, ExitOK, code)
			assert.Contains(t, stdout.String(), want)
		})
	}
}
