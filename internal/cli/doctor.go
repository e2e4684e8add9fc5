package cli

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/onnk5188-hash/notion/config"
	"github.com/onnk5188-hash/notion/internal/output"
	"github.com/onnk5188-hash/notion/internal/state"
)

func NewDoctorCmd(deps *Dependencies) *cobra.Command {
	return &cobra.Command{
		Use:   "doctor",
		Short: "Check prerequisites",
		RunE: func(cmd *cobra.Command, args []string) error {
			f := output.NewFormatter(cmd.OutOrStdout())
			ok := true

			if deps.Config.Token != "" {
				f.SetupCheck("Notion token", true, "configured")
			} else {
				f.SetupCheck("Notion token", false, "not set. Set NOTION_TOKEN or add token to config")
				ok = false
			}

			if deps.Config.DatabaseID != "" {
				f.SetupCheck("Notion database ID", true, "configured")
			} else {
				f.SetupCheck("Notion database ID", false, "not set. Set NOTION_DATABASE_ID or add database_id to config")
				ok = false
			}

			store := state.New(deps.Config.StateFile)
			if _, err := os.Stat(store.Path()); err == nil {
				if store.Read() != nil {
					f.SetupCheck("State file", true, "active session at "+store.Path())
				} else {
					// Unparsable state is treated as no session; surface it
					// here since that silently drops an in-progress session.
					f.SetupCheck("State file", false, store.Path()+" exists but cannot be parsed; it will be treated as no active session")
					ok = false
				}
			} else {
				f.SetupCheck("State file", true, "none ("+store.Path()+")")
			}

			if path := config.FilePath(); path != "" {
				if _, err := os.Stat(path); err == nil {
					f.SetupCheck("Config file", true, path)
				} else {
					f.SetupCheck("Config file", true, "not present ("+path+")")
				}
			}

			if ok {
				f.Success("\nAll prerequisites met. Ready to track!")
			} else {
				f.Warning("\nSome prerequisites are missing.")
			}
			return nil
		},
	}
}
