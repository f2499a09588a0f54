package main

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/customizer/internal/domain/customization"
	"github.com/alexisbeaulieu97/customizer/internal/ports"
)

type showOptions struct {
	jsonOutput bool
}

func newShowCmd(flags *rootFlags) *cobra.Command {
	opts := &showOptions{}

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show the persisted customization",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWithApp(cmd, flags, "command.show", appOptions{}, func(ctx context.Context, app *AppContext, logger ports.Logger) error {
				return runShow(cmd, app, opts)
			})
		},
	}

	cmd.Flags().BoolVar(&opts.jsonOutput, "json", false, "Output the persisted record as JSON")

	return cmd
}

func runShow(cmd *cobra.Command, app *AppContext, opts *showOptions) error {
	rec := app.Store.CustomizationData()
	theme := app.Store.CurrentColorTheme()

	if opts.jsonOutput {
		return renderShowJSON(cmd, theme, app.Persister.Name(), rec)
	}
	return renderShowTable(cmd, theme, app.Persister.Name(), rec)
}

func renderShowTable(cmd *cobra.Command, theme, backend string, rec customization.Record) error {
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Theme:   %s\n", theme)
	fmt.Fprintf(out, "Backend: %s\n", backend)

	if rec.IsEmpty() {
		fmt.Fprintln(out, "\nNothing saved yet.")
		return nil
	}

	themes := make([]string, 0, len(rec.ThemeColors))
	for id := range rec.ThemeColors {
		themes = append(themes, id)
	}
	sort.Strings(themes)
	for _, id := range themes {
		fmt.Fprintf(out, "\nColors (%s):\n", id)
		for _, entry := range rec.ThemeColors[id] {
			fmt.Fprintf(out, "  %-32s %s\n", entry.Key, entry.Value)
		}
	}

	if len(rec.Fields) > 0 {
		keys := make([]string, 0, len(rec.Fields))
		for key := range rec.Fields {
			keys = append(keys, key)
		}
		sort.Strings(keys)
		fmt.Fprintln(out, "\nFields:")
		for _, key := range keys {
			value, err := json.Marshal(rec.Fields[key])
			if err != nil {
				return err
			}
			fmt.Fprintf(out, "  %-32s %s\n", key, value)
		}
	}
	return nil
}

type showJSONPayload struct {
	Theme         string               `json:"theme"`
	Backend       string               `json:"backend"`
	Customization customization.Record `json:"customization"`
}

func renderShowJSON(cmd *cobra.Command, theme, backend string, rec customization.Record) error {
	encoder := json.NewEncoder(cmd.OutOrStdout())
	encoder.SetIndent("", "  ")
	return encoder.Encode(showJSONPayload{Theme: theme, Backend: backend, Customization: rec})
}
