package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/customizer/internal/domain/palette"
	"github.com/alexisbeaulieu97/customizer/internal/ports"
)

type themesOptions struct {
	keys bool
}

func newThemesCmd(flags *rootFlags) *cobra.Command {
	opts := &themesOptions{}

	cmd := &cobra.Command{
		Use:   "themes",
		Short: "List colour themes and the variables they define",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWithApp(cmd, flags, "command.themes", appOptions{}, func(ctx context.Context, app *AppContext, logger ports.Logger) error {
				return runThemes(cmd, app, opts)
			})
		},
	}

	cmd.Flags().BoolVar(&opts.keys, "keys", false, "Also list every known colour variable per theme")

	return cmd
}

func runThemes(cmd *cobra.Command, app *AppContext, opts *themesOptions) error {
	out := cmd.OutOrStdout()
	catalog := app.Document.Catalog()
	current := app.Store.CurrentColorTheme()
	known := palette.Keys(palette.AvailableColorTitles)
	isKnown := make(map[string]bool, len(known))
	for _, key := range known {
		isKnown[key] = true
	}

	for _, id := range catalog.IDs() {
		def, _ := catalog.Lookup(id)
		marker := " "
		if id == current {
			marker = "*"
		}
		label := app.Translator.Translate(def.Label)
		fmt.Fprintf(out, "%s %-12s %-16s %d/%d colours\n", marker, id, label, countDefined(def.Colors, known), len(known))

		if !opts.keys {
			continue
		}
		for _, key := range known {
			value, ok := def.Colors[key]
			if !ok {
				value = "(unset)"
			}
			fmt.Fprintf(out, "    %-32s %s\n", key, value)
		}
		for _, key := range def.Keys() {
			if !isKnown[key] {
				fmt.Fprintf(out, "    %-32s %s (not captured)\n", key, def.Colors[key])
			}
		}
	}
	return nil
}

func countDefined(colors map[string]string, keys []string) int {
	n := 0
	for _, key := range keys {
		if colors[key] != "" {
			n++
		}
	}
	return n
}
