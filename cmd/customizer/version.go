package main

import (
	"encoding/json"
	"fmt"
	"runtime"
	"runtime/debug"

	"github.com/spf13/cobra"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// readBuildInfo is swapped in tests.
var readBuildInfo = debug.ReadBuildInfo

type buildInfo struct {
	Version   string `json:"version"`
	Commit    string `json:"commit"`
	Built     string `json:"built"`
	GoVersion string `json:"go_version"`
}

// currentBuild prefers ldflags values and fills the gaps from the module
// build info embedded by `go install`.
func currentBuild() buildInfo {
	info := buildInfo{Version: version, Commit: commit, Built: date, GoVersion: runtime.Version()}
	bi, ok := readBuildInfo()
	if !ok {
		return info
	}
	if info.Version == "dev" && bi.Main.Version != "" && bi.Main.Version != "(devel)" {
		info.Version = bi.Main.Version
	}
	for _, setting := range bi.Settings {
		switch setting.Key {
		case "vcs.revision":
			if info.Commit == "none" {
				info.Commit = setting.Value
			}
		case "vcs.time":
			if info.Built == "unknown" {
				info.Built = setting.Value
			}
		}
	}
	return info
}

func newVersionCmd() *cobra.Command {
	var (
		short      bool
		jsonOutput bool
	)

	cmd := &cobra.Command{
		Use:   "version",
		Short: "Display build information",
		RunE: func(cmd *cobra.Command, args []string) error {
			info := currentBuild()
			out := cmd.OutOrStdout()
			switch {
			case jsonOutput:
				encoder := json.NewEncoder(out)
				encoder.SetIndent("", "  ")
				return encoder.Encode(info)
			case short:
				fmt.Fprintln(out, info.Version)
			default:
				fmt.Fprintf(out, "Customizer %s\ncommit: %s\nbuilt: %s\ngo: %s\n", info.Version, info.Commit, info.Built, info.GoVersion)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&short, "short", false, "Print only the version number")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Print build information as JSON")

	return cmd
}
