package cli

import (
	"github.com/spf13/cobra"

	"github.com/onnk5188-hash/notion/config"
	"github.com/onnk5188-hash/notion/internal/version"
)

type Dependencies struct {
	Config *config.Config
}

func NewRootCmd(deps *Dependencies) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "notion-timer",
		Short:         "Track time and push entries to Notion",
		Long:          "A minimal Notion-backed timer. Start a session, then stop it to send the elapsed time into your Notion database.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.Version = version.Version
	rootCmd.SetVersionTemplate(version.Full() + "\n")

	rootCmd.PersistentFlags().StringVar(&deps.Config.Token, "token", deps.Config.Token,
		"Notion integration token. If omitted, the NOTION_TOKEN environment variable is used")
	rootCmd.PersistentFlags().StringVar(&deps.Config.DatabaseID, "database-id", deps.Config.DatabaseID,
		"Notion database ID that will receive time entries. If omitted, NOTION_DATABASE_ID is used")

	rootCmd.AddCommand(NewStartCmd(deps))
	rootCmd.AddCommand(NewStopCmd(deps))
	rootCmd.AddCommand(NewStatusCmd(deps))
	rootCmd.AddCommand(NewDoctorCmd(deps))
	rootCmd.AddCommand(NewUICmd(deps))
	rootCmd.AddCommand(NewMCPCmd(deps))

	return rootCmd
}
