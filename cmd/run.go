package cmd

import (
	"fmt"

	"github.com/abhisek/cruxlog/internal/app"
	"github.com/abhisek/cruxlog/internal/config"
	"github.com/abhisek/cruxlog/internal/session"
	"github.com/abhisek/cruxlog/internal/store"
	"github.com/spf13/cobra"
)

// runApp opens the store, builds dependencies, and launches the TUI.
func runApp(cmd *cobra.Command) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	st, userID, err := openUserStore(cmd)
	if err != nil {
		return err
	}
	defer st.Close()

	tracker := session.NewTracker(st.Sessions(), userID)

	return app.Run(app.Options{
		Tracker: tracker,
		Config:  cfg,
	})
}

// openUserStore resolves the DB path, opens the store, and loads the local
// user identity. Shared by the TUI and the data subcommands.
func openUserStore(cmd *cobra.Command) (*store.Store, string, error) {
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return nil, "", fmt.Errorf("resolve DB path: %w", err)
	}

	st, err := store.Open(dbPath)
	if err != nil {
		return nil, "", fmt.Errorf("open store: %w", err)
	}

	userID, err := store.LoadOrCreateUserID(dbPath)
	if err != nil {
		st.Close()
		return nil, "", fmt.Errorf("load user identity: %w", err)
	}

	return st, userID, nil
}
