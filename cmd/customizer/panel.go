package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/alexisbeaulieu97/customizer/internal/config"
	"github.com/alexisbeaulieu97/customizer/internal/ports"
	"github.com/alexisbeaulieu97/customizer/internal/tui"
)

var errNotInteractive = errors.New("stdin and stdout must be a terminal")

// isInteractive is swapped in tests.
var isInteractive = func() bool {
	return term.IsTerminal(int(os.Stdin.Fd())) && term.IsTerminal(int(os.Stdout.Fd()))
}

func newPanelCmd(flags *rootFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "panel",
		Short: "Open the interactive customization panel",
		Long:  `Open the customization panel over a preview chart. Themes, colours and draft fields are edited live and saved with 's'.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPanelCommand(cmd, flags)
		},
	}

	return cmd
}

func runPanelCommand(cmd *cobra.Command, flags *rootFlags) error {
	if !isInteractive() {
		return newCommandError("open panel", "checking terminal", errNotInteractive, "Use 'customizer save' for non-interactive changes.")
	}

	logFile, err := openLogFile()
	if err != nil {
		return newCommandError("open panel", "opening log file", err, "Check permissions on ~/.customizer.")
	}
	defer logFile.Close()

	return runWithApp(cmd, flags, "command.panel", appOptions{logWriter: logFile}, func(ctx context.Context, app *AppContext, logger ports.Logger) error {
		logger.Info(ctx, "launching panel", "route", app.Route, "backend", app.Persister.Name())

		model := tui.NewModel(tui.Options{
			Context:  ctx,
			Panel:    app.Panel,
			Document: app.Document,
			Store:    app.Store,
			Events:   app.Events,
			Route:    app.Route,
		})
		defer model.Close()

		program := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))
		if _, err := program.Run(); err != nil {
			return fmt.Errorf("failed to run panel: %w", err)
		}

		logger.Info(ctx, "panel closed")
		return nil
	})
}

// openLogFile keeps structured logs out of the alternate screen.
func openLogFile() (*os.File, error) {
	dir := config.BaseDir()
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return os.OpenFile(filepath.Join(dir, "customizer.log"), os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
}
