/*
Package django runs the backend's Django management commands on behalf of
robson-go. Validation, execution and margin data all live in the backend;
the CLI only builds the manage.py invocation and maps its exit status.
*/
package django

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strconv"

	"github.com/ldamasio/robson/cli/internal/log"
)

// DefaultCandidates are the manage.py locations tried relative to the
// working directory when none is configured.
var DefaultCandidates = []string{
	"apps/backend/monolith/manage.py",
	"../apps/backend/monolith/manage.py",
	"../../apps/backend/monolith/manage.py",
}

// ErrManagePyNotFound is returned when no manage.py could be located.
var ErrManagePyNotFound = errors.New("django manage.py not found; run from the robson repository root or set ROBSON_MANAGE_PY")

// CommandError is a management command that ran and exited non-zero.
type CommandError struct {
	Command string
	Code    int
	Message string
}

func (e *CommandError) Error() string { return e.Message }

// ExitCode lets main propagate the backend's status.
func (e *CommandError) ExitCode() int { return e.Code }

// Args accumulates optional command line arguments, skipping zero values.
type Args []string

// String appends --name value when value is non-empty.
func (a Args) String(name, value string) Args {
	if value == "" {
		return a
	}
	return append(a, "--"+name, value)
}

// Int appends --name value when value is positive.
func (a Args) Int(name string, value int) Args {
	if value <= 0 {
		return a
	}
	return append(a, "--"+name, strconv.Itoa(value))
}

// Flag appends --name when set.
func (a Args) Flag(name string, set bool) Args {
	if !set {
		return a
	}
	return append(a, "--"+name)
}

// Runner invokes manage.py through a Python interpreter.
type Runner struct {
	Python     string
	ManagePy   string
	Candidates []string
	Stdout     io.Writer
	Stderr     io.Writer
	Logger     log.Logger
}

// NewRunner returns a Runner writing to the process streams.
func NewRunner(python, managePy string, logger log.Logger) *Runner {
	return &Runner{
		Python:     python,
		ManagePy:   managePy,
		Candidates: DefaultCandidates,
		Stdout:     os.Stdout,
		Stderr:     os.Stderr,
		Logger:     logger,
	}
}

// Locate returns the configured manage.py or the first existing candidate.
func (r *Runner) Locate() (string, error) {
	if r.ManagePy != "" {
		if _, err := os.Stat(r.ManagePy); err != nil {
			return "", fmt.Errorf("%w: %v", ErrManagePyNotFound, err)
		}
		return r.ManagePy, nil
	}
	for _, path := range r.Candidates {
		if _, err := os.Stat(path); err == nil {
			return path, nil
		}
	}
	return "", ErrManagePyNotFound
}

// Run executes `python manage.py <command> <args...>`. Exit status 1 is the
// backend's way of reporting a rejected request (it has already printed its
// report); it becomes a CommandError carrying failure as its message.
func (r *Runner) Run(ctx context.Context, command string, args Args, failure string) error {
	managePy, err := r.Locate()
	if err != nil {
		return err
	}

	argv := append([]string{managePy, command}, args...)
	r.Logger.Debug("running django command", "python", r.Python, "argv", argv)

	cmd := exec.CommandContext(ctx, r.Python, argv...)
	cmd.Stdout = r.Stdout
	cmd.Stderr = r.Stderr

	err = cmd.Run()
	if err == nil {
		return nil
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		code := exitErr.ExitCode()
		if code == 1 && failure != "" {
			return &CommandError{Command: command, Code: 1, Message: failure}
		}
		return &CommandError{
			Command: command,
			Code:    code,
			Message: fmt.Sprintf("django command %s exited with status %d", command, code),
		}
	}
	return fmt.Errorf("failed to execute Django command %s: %w", command, err)
}
