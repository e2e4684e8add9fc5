package cli

import (
	"github.com/spf13/cobra"

	"github.com/onnk5188-hash/notion/internal/app"
	"github.com/onnk5188-hash/notion/internal/output"
)

func NewStopCmd(deps *Dependencies) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stop",
		Short: "Stop the timer and write the entry to Notion",
		Long:  "Stop the running session and create a page in the Notion database. On failure the session is kept so stop can be retried.",
		RunE: func(cmd *cobra.Command, args []string) error {
			formatter := output.NewFormatter(cmd.OutOrStdout())

			// Credentials are required before any state is touched.
			if err := deps.Config.ValidateCredentials(); err != nil {
				return err
			}

			application := app.New(deps.Config)
			entry, err := application.Tracker.Stop()
			if err != nil {
				return err
			}

			formatter.EntryRecorded(entry)
			return nil
		},
	}

	return cmd
}
