package cmd

import (
	"fmt"
	"os"

	"github.com/abhisek/cruxlog/internal/export"
	"github.com/spf13/cobra"
)

var importCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Import sessions from a JSON archive",
	Long:  "Validates the archive against the schema and inserts every session as a new document. Existing sessions are never touched.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		raw, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("read archive: %w", err)
		}

		archive, err := export.Unmarshal(raw)
		if err != nil {
			return err
		}

		st, userID, err := openUserStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		ctx := cmd.Context()
		repo := st.Sessions()
		for _, doc := range archive.Sessions {
			id, err := repo.CreateSession(ctx, userID, doc)
			if err != nil {
				return fmt.Errorf("import session started %s: %w",
					doc.StartTime.Format("2006-01-02"), err)
			}
			if doc.EndTime != nil {
				if err := repo.CloseSession(ctx, userID, id, *doc.EndTime, doc.DurationMinutes); err != nil {
					return fmt.Errorf("close imported session %d: %w", id, err)
				}
			}
		}

		fmt.Printf("Imported %d sessions\n", len(archive.Sessions))
		return nil
	},
}
