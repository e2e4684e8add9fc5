package cli

import (
	"github.com/spf13/cobra"

	"github.com/onnk5188-hash/notion/internal/app"
	"github.com/onnk5188-hash/notion/internal/output"
)

func NewStartCmd(deps *Dependencies) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "start <project> <task>",
		Short: "Begin a new timer session",
		Long:  "Start tracking time for a project and task. The project maps to the Notion select property, the task to the title property.",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			formatter := output.NewFormatter(cmd.OutOrStdout())

			application := app.New(deps.Config)
			sess, err := application.Tracker.Start(args[0], args[1])
			if err != nil {
				return err
			}

			formatter.SessionStarted(sess)
			return nil
		},
	}

	return cmd
}
