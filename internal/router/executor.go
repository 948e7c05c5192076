package router

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"os/signal"

	"github.com/ldamasio/robson/cli/internal/config"
)

// NewExecutor returns the executor for an exec-mode setting.
func NewExecutor(mode string) (Executor, error) {
	switch mode {
	case config.ExecModeReplace:
		return ReplaceExecutor{}, nil
	case config.ExecModeSpawn:
		return NewSpawnExecutor(), nil
	default:
		return nil, fmt.Errorf("unknown exec-mode %q", mode)
	}
}

// SpawnExecutor runs the delegate as a child process and mirrors its exit
// status, so callers still observe a single logical process.
type SpawnExecutor struct {
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

// NewSpawnExecutor returns a SpawnExecutor wired to the process streams.
func NewSpawnExecutor() *SpawnExecutor {
	return &SpawnExecutor{Stdin: os.Stdin, Stdout: os.Stdout, Stderr: os.Stderr}
}

// Exec starts argv[0] (resolved through PATH), forwards termination signals
// to it and waits for it to finish. Interrupts are caught but not forwarded:
// a terminal Ctrl-C already reaches the child through the shared process
// group.
func (s *SpawnExecutor) Exec(ctx context.Context, argv []string, env []string) (int, error) {
	path, err := exec.LookPath(argv[0])
	if err != nil {
		return 0, &DelegateError{Name: argv[0], Err: err}
	}

	cmd := exec.Command(path, argv[1:]...)
	cmd.Args[0] = argv[0]
	cmd.Env = env
	cmd.Stdin = s.Stdin
	cmd.Stdout = s.Stdout
	cmd.Stderr = s.Stderr

	if err := cmd.Start(); err != nil {
		return 0, &DelegateError{Name: argv[0], Err: err}
	}

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, append([]os.Signal{os.Interrupt}, forwardedSignals...)...)
	defer signal.Stop(sigs)

	done := make(chan struct{})
	defer close(done)
	go func() {
		for {
			select {
			case sig := <-sigs:
				if sig == os.Interrupt {
					continue
				}
				_ = cmd.Process.Signal(sig)
			case <-ctx.Done():
				_ = cmd.Process.Kill()
				return
			case <-done:
				return
			}
		}
	}()

	err = cmd.Wait()
	if err == nil {
		return exitOK, nil
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return exitCode(exitErr), nil
	}
	return exitFail, fmt.Errorf("waiting for %s: %w", argv[0], err)
}
