package main

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rshade/adminboard/internal/cli"
	"github.com/rshade/adminboard/pkg/version"
)

func TestRun(t *testing.T) {
	t.Run("run function exists", func(t *testing.T) {
		_ = run
	})
}

func TestMainComponents(t *testing.T) {
	t.Run("version available", func(t *testing.T) {
		assert.NotEmpty(t, version.GetVersion())
	})

	t.Run("cli root command", func(t *testing.T) {
		root := cli.NewRootCmd(version.GetVersion())
		require.NotNil(t, root)
		assert.Equal(t, "adminboard", root.Use)
		assert.Equal(t, version.GetVersion(), root.Version)
	})
}

func TestExtractExitCode(t *testing.T) {
	tests := []struct {
		name         string
		err          error
		wantExitCode int
	}{
		{
			name:         "ExitError with exit code 2",
			err:          &cli.ExitError{ExitCode: cli.ExitCodeStepFailed, Reason: "1 of 3 steps failed"},
			wantExitCode: 2,
		},
		{
			name:         "ExitError with exit code 42",
			err:          &cli.ExitError{ExitCode: 42, Reason: "custom"},
			wantExitCode: 42,
		},
		{
			name:         "wrapped ExitError",
			err:          fmt.Errorf("outer: %w", &cli.ExitError{ExitCode: 3, Reason: "wrapped"}),
			wantExitCode: 3,
		},
		{
			name:         "joined ExitError",
			err:          errors.Join(errors.New("outer"), &cli.ExitError{ExitCode: 4, Reason: "joined"}),
			wantExitCode: 4,
		},
		{
			name:         "generic error",
			err:          errors.New("generic error"),
			wantExitCode: 1,
		},
		{
			name:         "nil error",
			err:          nil,
			wantExitCode: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantExitCode, extractExitCode(tt.err))
		})
	}
}
