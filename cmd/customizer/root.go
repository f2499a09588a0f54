package main

import (
	"github.com/spf13/cobra"
)

type rootFlags struct {
	configPath string
	verbose    bool
	logLevel   string
	route      string
	locale     string
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:           "customizer",
		Short:         "Customizer edits and persists the trading UI appearance",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			// Without a subcommand, open the panel.
			if len(args) == 0 {
				return runPanelCommand(cmd, flags)
			}
			return cmd.Help()
		},
	}

	cmd.PersistentFlags().StringVarP(&flags.configPath, "config", "c", "", "Path to the config file (default ~/.customizer/config.yaml)")
	cmd.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "Enable verbose logging")
	cmd.PersistentFlags().StringVar(&flags.logLevel, "log-level", "", "Log level (trace, debug, info, warn, error)")
	cmd.PersistentFlags().StringVar(&flags.route, "route", "", "Initial location hash, e.g. #settings")
	cmd.PersistentFlags().StringVar(&flags.locale, "locale", "", "Message locale, e.g. en or ru")

	cmd.AddCommand(newPanelCmd(flags))
	cmd.AddCommand(newSaveCmd(flags))
	cmd.AddCommand(newShowCmd(flags))
	cmd.AddCommand(newThemesCmd(flags))
	cmd.AddCommand(newHistoryCmd(flags))
	cmd.AddCommand(newVersionCmd())

	return cmd
}
