package commands

import (
	"github.com/spf13/cobra"

	"github.com/fivetwenty-io/lendingclub/pkg/lendingclub"
)

// NewVersionCommand creates the version command
func NewVersionCommand(version, commit, date string) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Display version information",
		Long:  "Display detailed version information about the lc CLI",
		RunE: func(cmd *cobra.Command, args []string) error {
			versionInfo := lendingclub.NewRecord(map[string]interface{}{
				"version": version,
				"commit":  commit,
				"built":   date,
			}, "version", "commit", "built")

			return renderRecord(cmd.OutOrStdout(), versionInfo)
		},
	}
}
