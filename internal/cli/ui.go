package cli

import (
	"github.com/spf13/cobra"

	"github.com/onnk5188-hash/notion/internal/tui"
)

func NewUICmd(deps *Dependencies) *cobra.Command {
	return &cobra.Command{
		Use:   "ui",
		Short: "Open the interactive timer",
		Long:  "Start a terminal UI with project/task fields and start/stop controls, backed by the same session state as the CLI commands.",
		RunE: func(cmd *cobra.Command, args []string) error {
			return tui.Run(deps.Config)
		},
	}
}
