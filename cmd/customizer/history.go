package main

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/customizer/internal/infrastructure/store"
	"github.com/alexisbeaulieu97/customizer/internal/ports"
)

type historyOptions struct {
	limit int
}

func newHistoryCmd(flags *rootFlags) *cobra.Command {
	opts := &historyOptions{}

	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show previous saves kept by the git or sqlite backend",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWithApp(cmd, flags, "command.history", appOptions{}, func(ctx context.Context, app *AppContext, logger ports.Logger) error {
				return runHistory(ctx, cmd, app, opts)
			})
		},
	}

	cmd.Flags().IntVarP(&opts.limit, "limit", "n", 10, "Maximum number of entries to show (0 for all)")

	return cmd
}

func runHistory(ctx context.Context, cmd *cobra.Command, app *AppContext, opts *historyOptions) error {
	out := cmd.OutOrStdout()
	switch persister := app.Persister.(type) {
	case *store.GitPersister:
		revisions, err := persister.History(ctx, opts.limit)
		if err != nil {
			return newCommandError("read history", "walking git log", err, "Check that the store directory is a valid git repository.")
		}
		if len(revisions) == 0 {
			fmt.Fprintln(out, "No saves recorded yet.")
			return nil
		}
		for _, rev := range revisions {
			fmt.Fprintf(out, "%s  %s  %s\n", shortHash(rev.Hash), rev.When.Format(time.RFC3339), firstLine(rev.Message))
		}
	case *store.SQLitePersister:
		count, err := persister.Count(ctx)
		if err != nil {
			return newCommandError("read history", "counting saved rows", err, "Check that the database file is readable.")
		}
		fmt.Fprintf(out, "%d saves recorded\n", count)
	default:
		fmt.Fprintf(out, "The %s backend keeps only the latest save.\n", app.Persister.Name())
	}
	return nil
}

func shortHash(hash string) string {
	if len(hash) > 8 {
		return hash[:8]
	}
	return hash
}

func firstLine(message string) string {
	for i, r := range message {
		if r == '\n' {
			return message[:i]
		}
	}
	return message
}
