package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/fernlight-labs/fernsite/internal/cli/output"
)

// versionOutput is the JSON output for the version command.
type versionOutput struct {
	Version   string `json:"version"`
	GitCommit string `json:"git_commit"`
	BuildDate string `json:"build_date"`
}

// NewVersionCommand creates the version command.
func NewVersionCommand(version, commit, date string) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Long:  `Display Fernsite version and build information.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmdCtx := NewCommandContext(cmd)

			if cmdCtx.Renderer.EffectiveMode() == output.ModeJSON {
				return cmdCtx.Renderer.JSON(versionOutput{
					Version:   version,
					GitCommit: commit,
					BuildDate: date,
				})
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Fernsite v%s\n", version)
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), "Marketing site server built with Go and datastar")
			if commit != "unknown" {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "commit %s, built %s\n", commit, date)
			}
			return nil
		},
	}
}
