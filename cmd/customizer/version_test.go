package main

import (
	"encoding/json"
	"runtime/debug"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func setBuildVars(t *testing.T, v, c, d string) {
	t.Helper()
	originalVersion, originalCommit, originalDate := version, commit, date
	t.Cleanup(func() {
		version, commit, date = originalVersion, originalCommit, originalDate
	})
	version, commit, date = v, c, d
}

func TestVersionCommandOutputsBuildInfo(t *testing.T) {
	setBuildVars(t, "1.2.3", "abcdef1", "2025-10-03")

	output, _, err := executeCommand(t, "version")
	require.NoError(t, err)
	require.Contains(t, output, "Customizer 1.2.3")
	require.Contains(t, output, "abcdef1")
	require.Contains(t, output, "2025-10-03")
	require.Contains(t, output, "go: go")
}

func TestVersionCommandShortAndJSON(t *testing.T) {
	setBuildVars(t, "1.2.3", "abcdef1", "2025-10-03")

	output, _, err := executeCommand(t, "version", "--short")
	require.NoError(t, err)
	require.Equal(t, "1.2.3", strings.TrimSpace(output))

	output, _, err = executeCommand(t, "version", "--json")
	require.NoError(t, err)
	var info buildInfo
	require.NoError(t, json.Unmarshal([]byte(output), &info))
	require.Equal(t, "1.2.3", info.Version)
	require.Equal(t, "abcdef1", info.Commit)
}

func TestVersionFallsBackToModuleBuildInfo(t *testing.T) {
	setBuildVars(t, "dev", "none", "unknown")
	original := readBuildInfo
	t.Cleanup(func() { readBuildInfo = original })
	readBuildInfo = func() (*debug.BuildInfo, bool) {
		return &debug.BuildInfo{
			Main: debug.Module{Version: "v0.4.0"},
			Settings: []debug.BuildSetting{
				{Key: "vcs.revision", Value: "0123456789abcdef"},
				{Key: "vcs.time", Value: "2025-09-01T10:00:00Z"},
			},
		}, true
	}

	info := currentBuild()
	require.Equal(t, "v0.4.0", info.Version)
	require.Equal(t, "0123456789abcdef", info.Commit)
	require.Equal(t, "2025-09-01T10:00:00Z", info.Built)
}
