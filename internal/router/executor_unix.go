//go:build unix

package router

import (
	"context"
	"os"
	"os/exec"
	"syscall"

	"golang.org/x/sys/unix"
)

var forwardedSignals = []os.Signal{syscall.SIGTERM, syscall.SIGHUP}

// ReplaceExecutor replaces the current process image with the delegate.
type ReplaceExecutor struct{}

// Exec resolves argv[0] through PATH and execs it with env. It only returns
// when the replacement could not happen.
func (ReplaceExecutor) Exec(_ context.Context, argv []string, env []string) (int, error) {
	path, err := exec.LookPath(argv[0])
	if err != nil {
		return 0, &DelegateError{Name: argv[0], Err: err}
	}
	if err := unix.Exec(path, argv, env); err != nil {
		return 0, &DelegateError{Name: argv[0], Err: err}
	}
	return exitOK, nil
}

// exitCode maps a child killed by a signal to the shell convention 128+n.
func exitCode(err *exec.ExitError) int {
	if ws, ok := err.Sys().(syscall.WaitStatus); ok && ws.Signaled() {
		return 128 + int(ws.Signal())
	}
	return err.ExitCode()
}
