package main

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPanelCommandRequiresTerminal(t *testing.T) {
	setupHome(t)
	original := isInteractive
	isInteractive = func() bool { return false }
	t.Cleanup(func() { isInteractive = original })

	_, _, err := executeCommand(t, "panel")
	require.Error(t, err)
	require.True(t, errors.Is(err, errNotInteractive))
	require.Contains(t, err.Error(), "customizer save")

	_, _, err = executeCommand(t)
	require.True(t, errors.Is(err, errNotInteractive))
}

func TestHistoryCommandOnFileBackend(t *testing.T) {
	setupHome(t)
	stdout, _, err := executeCommand(t, "history")
	require.NoError(t, err)
	require.Contains(t, stdout, "keeps only the latest save")
}

func TestVerboseLoggingGoesToStderr(t *testing.T) {
	setupHome(t)
	_, stderr, err := executeCommand(t, "--verbose", "show")
	require.NoError(t, err)
	require.Contains(t, stderr, "command started")
	require.Contains(t, stderr, "correlation_id")
}
