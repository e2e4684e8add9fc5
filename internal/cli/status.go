package cli

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/onnk5188-hash/notion/internal/app"
	"github.com/onnk5188-hash/notion/internal/output"
)

func NewStatusCmd(deps *Dependencies) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show the current timer state",
		RunE: func(cmd *cobra.Command, args []string) error {
			formatter := output.NewFormatter(cmd.OutOrStdout())

			application := app.New(deps.Config)
			sess := application.Tracker.Status()
			if sess == nil {
				formatter.StatusIdle()
				return nil
			}

			formatter.StatusRunning(sess, time.Since(sess.Start))
			return nil
		},
	}

	return cmd
}
