//go:build !unix

package router

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"runtime"
)

var forwardedSignals []os.Signal

// ReplaceExecutor is unavailable off Unix; use the spawn exec-mode instead.
type ReplaceExecutor struct{}

// Exec always fails.
func (ReplaceExecutor) Exec(_ context.Context, argv []string, _ []string) (int, error) {
	return 0, &DelegateError{
		Name: argv[0],
		Err:  fmt.Errorf("process replacement is not supported on %s", runtime.GOOS),
	}
}

func exitCode(err *exec.ExitError) int {
	return err.ExitCode()
}
