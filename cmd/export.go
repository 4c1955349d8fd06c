package cmd

import (
	"fmt"
	"os"

	"github.com/abhisek/cruxlog/internal/export"
	"github.com/spf13/cobra"
)

var exportCmd = &cobra.Command{
	Use:   "export [file]",
	Short: "Export the session history as a JSON archive",
	Long:  "Writes every stored session as a JSON archive to the given file, or to stdout when no file is named.",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		st, userID, err := openUserStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		docs, err := st.Sessions().ListSessions(cmd.Context(), userID)
		if err != nil {
			return err
		}

		data, err := export.Marshal(docs)
		if err != nil {
			return err
		}

		if len(args) == 0 {
			fmt.Println(string(data))
			return nil
		}

		if err := os.WriteFile(args[0], data, 0o644); err != nil {
			return fmt.Errorf("write archive: %w", err)
		}
		fmt.Printf("Exported %d sessions to %s\n", len(docs), args[0])
		return nil
	},
}
