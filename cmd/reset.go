package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Delete all stored sessions",
	RunE: func(cmd *cobra.Command, args []string) error {
		force, _ := cmd.Flags().GetBool("force")
		if !force {
			fmt.Print("This deletes every stored session. Type 'yes' to continue: ")
			reader := bufio.NewReader(os.Stdin)
			answer, _ := reader.ReadString('\n')
			if strings.TrimSpace(answer) != "yes" {
				fmt.Println("Aborted.")
				return nil
			}
		}

		st, userID, err := openUserStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		ctx := cmd.Context()
		repo := st.Sessions()
		docs, err := repo.ListSessions(ctx, userID)
		if err != nil {
			return err
		}
		for _, doc := range docs {
			if err := repo.DeleteSession(ctx, userID, doc.ID); err != nil {
				return fmt.Errorf("delete session %d: %w", doc.ID, err)
			}
		}

		fmt.Printf("Deleted %d sessions\n", len(docs))
		return nil
	},
}

func init() {
	resetCmd.Flags().Bool("force", false, "Skip the confirmation prompt")
}
