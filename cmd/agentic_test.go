package cmd

import (
	"encoding/json"
	"os"
	"path/filepath"
	"runtime"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPlanIsDeterministic(t *testing.T) {
	now := time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC)

	a := newPlan("buy", []string{"BTCUSDT", "0.001"}, now)
	b := newPlan("buy", []string{"BTCUSDT", "0.001"}, now)
	c := newPlan("sell", []string{"BTCUSDT", "0.001"}, now)

	assert.Equal(t, a.PlanID, b.PlanID)
	assert.NotEqual(t, a.PlanID, c.PlanID)
	assert.Len(t, a.PlanID, 16)
	assert.Equal(t, "draft", a.Status)
	assert.False(t, a.Validated)
	assert.Equal(t, "2025-01-02T03:04:05Z", a.CreatedAt)
}

func TestNewPlanWithoutParams(t *testing.T) {
	plan := newPlan("rebalance", nil, time.Now())
	assert.NotNil(t, plan.Params)
	assert.Empty(t, plan.Params)
}

func TestPlanCommandJSON(t *testing.T) {
	out, err := executeCommand(t, nil, "plan", "buy", "BTCUSDT", "0.001", "--json", "--", "--limit", "50000")
	require.NoError(t, err)

	var plan Plan
	require.NoError(t, json.Unmarshal([]byte(out), &plan))
	assert.Equal(t, "buy", plan.Strategy)
	assert.Equal(t, []string{"BTCUSDT", "0.001", "--limit", "50000"}, plan.Params)
	assert.Equal(t, "draft", plan.Status)
}

func TestPlanCommandText(t *testing.T) {
	out, err := executeCommand(t, nil, "plan", "sell", "ETHUSDT")
	require.NoError(t, err)

	assert.Contains(t, out, "EXECUTION PLAN")
	assert.Contains(t, out, "Strategy:   sell")
	assert.Contains(t, out, "has NOT been executed")
}

func TestValidateRequiresClientID(t *testing.T) {
	_, err := executeCommand(t, nil, "validate", "abc123")
	assert.ErrorContains(t, err, "client-id")
}

func TestValidateInvokesDjango(t *testing.T) {
	env := fakeDjango(t, 0)

	out, err := executeCommand(t, env, "validate", "abc123", "--client-id", "1", "--symbol", "BTCUSDT")
	require.NoError(t, err)

	assert.Contains(t, out, "validate_plan --plan-id abc123 --client-id 1 --symbol BTCUSDT")
}

func TestValidateFailureExitCode(t *testing.T) {
	env := fakeDjango(t, 1)

	_, err := executeCommand(t, env, "validate", "abc123", "--client-id", "1")
	require.Error(t, err)

	assert.EqualError(t, err, "validation failed")
	assert.Equal(t, 1, ExitCode(err))
}

func TestExecuteLiveFlagsForwarded(t *testing.T) {
	env := fakeDjango(t, 0)

	out, err := executeCommand(t, env, "execute", "abc123", "--client-id", "2", "--live", "--acknowledge-risk", "--json")
	require.NoError(t, err)

	assert.Contains(t, out, "execute_plan --plan-id abc123 --client-id 2 --live --acknowledge-risk --json")
}

func TestExecuteBackendStatusPropagates(t *testing.T) {
	env := fakeDjango(t, 3)

	_, err := executeCommand(t, env, "execute", "abc123", "--client-id", "1")
	require.Error(t, err)
	assert.Equal(t, 3, ExitCode(err))
}

// fakeDjango points the runner at a shell script that echoes its argv and
// exits with code.
func fakeDjango(t *testing.T, code int) map[string]string {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("fake interpreter is a shell script")
	}

	dir := t.TempDir()
	python := filepath.Join(dir, "python")
	script := "#!/bin/sh\nshift\necho \"$@\"\nexit " + strconv.Itoa(code) + "\n"
	require.NoError(t, os.WriteFile(python, []byte(script), 0o755))

	managePy := filepath.Join(dir, "manage.py")
	require.NoError(t, os.WriteFile(managePy, []byte("# manage\n"), 0o600))

	return map[string]string{
		"ROBSON_PYTHON":    python,
		"ROBSON_MANAGE_PY": managePy,
	}
}
