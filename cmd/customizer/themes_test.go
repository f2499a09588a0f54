package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestThemesCommandListsCatalog(t *testing.T) {
	setupHome(t)

	stdout, _, err := executeCommand(t, "themes")
	require.NoError(t, err)
	require.Contains(t, stdout, "* dark")
	require.Contains(t, stdout, "light")
	require.Contains(t, stdout, "Dark")
}

func TestThemesCommandTranslatesLabels(t *testing.T) {
	setupHome(t)

	stdout, _, err := executeCommand(t, "--locale", "ru", "themes")
	require.NoError(t, err)
	require.Contains(t, stdout, "Тёмная")
}

func TestThemesCommandIncludesUserDefinitions(t *testing.T) {
	home := setupHome(t)
	definitions := filepath.Join(home, "themes.yaml")
	require.NoError(t, os.WriteFile(definitions, []byte("themes:\n  - id: solar\n    label: Solar\n    colors:\n      --icons: \"#ffcc00\"\n      --glow: \"#fff000\"\n"), 0o644))
	cfg := writeTestConfig(t, home, "version: \"1.0\"\ntheme:\n  default: solar\n  definitions: "+definitions+"\n")

	stdout, _, err := executeCommand(t, "--config", cfg, "themes", "--keys")
	require.NoError(t, err)
	require.Contains(t, stdout, "* solar")
	require.Contains(t, stdout, "#ffcc00")
	require.Contains(t, stdout, "(unset)")
	require.Contains(t, stdout, "#fff000 (not captured)")
}

func TestThemesCommandRejectsUnknownDefault(t *testing.T) {
	home := setupHome(t)
	cfg := writeTestConfig(t, home, "version: \"1.0\"\ntheme:\n  default: neon\n")

	_, _, err := executeCommand(t, "--config", cfg, "themes")
	require.Error(t, err)
	require.Contains(t, err.Error(), "unknown theme")
}
