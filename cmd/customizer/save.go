package main

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/customizer/internal/domain/customization"
	"github.com/alexisbeaulieu97/customizer/internal/ports"
	"github.com/alexisbeaulieu97/customizer/pkg/diff"
)

type saveOptions struct {
	theme  string
	fields []string
	colors []string
	dryRun bool
}

func newSaveCmd(flags *rootFlags) *cobra.Command {
	opts := &saveOptions{}

	cmd := &cobra.Command{
		Use:   "save",
		Short: "Apply changes and save them without opening the panel",
		Example: `  customizer save --theme light
  customizer save --color primary-cta-color=#ff8800 --set font=mono
  customizer save --set spacing='{"gap":4}' --dry-run`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWithApp(cmd, flags, "command.save", appOptions{}, func(ctx context.Context, app *AppContext, logger ports.Logger) error {
				return runSave(ctx, cmd, app, logger, opts)
			})
		},
	}

	cmd.Flags().StringVar(&opts.theme, "theme", "", "Switch to this colour theme before saving")
	cmd.Flags().StringArrayVar(&opts.fields, "set", nil, "Set a draft field as key=value (JSON values keep their type)")
	cmd.Flags().StringArrayVar(&opts.colors, "color", nil, "Override a colour variable as name=value (leading -- optional)")
	cmd.Flags().BoolVar(&opts.dryRun, "dry-run", false, "Print the resulting change without saving")

	return cmd
}

func runSave(ctx context.Context, cmd *cobra.Command, app *AppContext, logger ports.Logger, opts *saveOptions) error {
	if opts.theme != "" {
		if _, ok := app.Document.Catalog().Lookup(opts.theme); !ok {
			return newCommandError("save", fmt.Sprintf("switching to theme %q", opts.theme), customization.ErrNotFound, "Run 'customizer themes' to list available themes.")
		}
		app.Panel.SetColorTheme(ctx, opts.theme)
	}

	for _, raw := range opts.colors {
		name, value, err := splitAssignment(raw)
		if err != nil {
			return newCommandError("save", "parsing --color", err, "Use --color name=value, e.g. --color icons=#737f92.")
		}
		if !strings.HasPrefix(name, "--") {
			name = "--" + name
		}
		app.Document.SetProperty(name, value)
	}

	for _, raw := range opts.fields {
		name, value, err := splitAssignment(raw)
		if err != nil {
			return newCommandError("save", "parsing --set", err, "Use --set key=value, e.g. --set font=mono.")
		}
		if err := app.Panel.EditField(ctx, name, customization.ParseValue(value)); err != nil {
			return newCommandError("save", fmt.Sprintf("setting field %q", name), err, "theme_colors is managed by the panel and cannot be set directly.")
		}
	}

	if opts.dryRun {
		return printPendingDiff(ctx, cmd, app)
	}

	if err := app.Panel.Save(ctx); err != nil {
		return newCommandError("save", "persisting customization", err, "Check that the store path is writable.")
	}

	theme := app.Store.CurrentColorTheme()
	colors := len(app.Store.CustomizationData().ThemeColors[theme])
	logger.Info(ctx, "save command completed", "theme_id", theme, "colors", colors)
	fmt.Fprintf(cmd.OutOrStdout(), "%s: %s (%d colours, %s)\n", app.Translator.Translate("page.body.customization.saved"), theme, colors, app.Persister.Name())
	return nil
}

func printPendingDiff(ctx context.Context, cmd *cobra.Command, app *AppContext) error {
	before, err := prettyRecord(app.Store.CustomizationData())
	if err != nil {
		return err
	}
	after, err := prettyRecord(app.Panel.Pending(ctx))
	if err != nil {
		return err
	}
	out := diff.Unified(before, after, "saved", "pending")
	if out == "" {
		fmt.Fprintln(cmd.OutOrStdout(), "no changes")
		return nil
	}
	fmt.Fprint(cmd.OutOrStdout(), out)
	return nil
}

func prettyRecord(rec customization.Record) (string, error) {
	if rec.IsEmpty() {
		return "", nil
	}
	data, err := json.MarshalIndent(rec, "", "  ")
	if err != nil {
		return "", err
	}
	return string(data) + "\n", nil
}

func splitAssignment(raw string) (string, string, error) {
	name, value, ok := strings.Cut(raw, "=")
	name = strings.TrimSpace(name)
	if !ok || name == "" {
		return "", "", fmt.Errorf("expected key=value, got %q", raw)
	}
	return name, strings.TrimSpace(value), nil
}
