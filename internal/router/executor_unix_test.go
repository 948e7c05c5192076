//go:build unix

package router

import (
	"bytes"
	"context"
	"os"
	"syscall"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// signalDuringExec runs a sleeping delegate and sends sig to the test process
// while it is running.
func signalDuringExec(t *testing.T, sig syscall.Signal, sleep string) int {
	t.Helper()
	executor := &SpawnExecutor{Stdout: &bytes.Buffer{}, Stderr: &bytes.Buffer{}}

	result := make(chan int, 1)
	go func() {
		code, err := executor.Exec(context.Background(), helperArgv("sleep", sleep), helperEnv())
		assert.NoError(t, err)
		result <- code
	}()

	time.Sleep(300 * time.Millisecond)
	require.NoError(t, syscall.Kill(os.Getpid(), sig))

	select {
	case code := <-result:
		return code
	case <-time.After(10 * time.Second):
		t.Fatal("delegate did not finish")
		return -1
	}
}

func TestSpawnExecutor_DoesNotForwardInterrupt(t *testing.T) {
	code := signalDuringExec(t, syscall.SIGINT, "1s")
	assert.Equal(t, 0, code)
}

func TestSpawnExecutor_ForwardsTerminate(t *testing.T) {
	code := signalDuringExec(t, syscall.SIGTERM, "5s")
	assert.Equal(t, 128+int(syscall.SIGTERM), code)
}
