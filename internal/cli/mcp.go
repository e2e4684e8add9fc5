package cli

import (
	"github.com/spf13/cobra"

	"github.com/onnk5188-hash/notion/internal/mcpserver"
)

func NewMCPCmd(deps *Dependencies) *cobra.Command {
	return &cobra.Command{
		Use:   "mcp",
		Short: "Run an MCP server exposing the timer over stdio",
		Long:  "Expose start_timer, stop_timer, and timer_status as MCP tools so agents can drive the same session state as the CLI.",
		RunE: func(cmd *cobra.Command, args []string) error {
			return mcpserver.Serve(deps.Config)
		},
	}
}
