package cmd

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ldamasio/robson/cli/internal/django"
)

func TestExitCode(t *testing.T) {
	backend := &django.CommandError{Command: "execute_plan", Code: 4, Message: "blocked"}

	tests := []struct {
		name string
		err  error
		want int
	}{
		{"nil", nil, 0},
		{"plain error", errors.New("boom"), 1},
		{"coded error", backend, 4},
		{"wrapped coded error", fmt.Errorf("running: %w", backend), 4},
		{"non-positive code", &django.CommandError{Code: 0}, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExitCode(tt.err))
		})
	}
}

func TestFormatPrefersJSONFlag(t *testing.T) {
	t.Cleanup(func() {
		jsonOutput = false
		outputFormat = "text"
	})

	outputFormat = "yaml"
	assert.Equal(t, "yaml", format())

	jsonOutput = true
	assert.Equal(t, "json", format())
}

func TestUnknownCommand(t *testing.T) {
	_, err := executeCommand(t, nil, "frobnicate")
	assert.ErrorContains(t, err, "unknown command")
}

func TestMissingConfigFile(t *testing.T) {
	_, err := executeCommand(t, nil, "version", "--config", "/nonexistent/robson.yaml")
	assert.Error(t, err)
}
