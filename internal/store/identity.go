package store

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// LoadOrCreateUserID returns the anonymous user identity for this
// installation, minting one on first run. The id lives next to the database
// file so that wiping the data directory also resets identity.
func LoadOrCreateUserID(dbPath string) (string, error) {
	idPath := filepath.Join(filepath.Dir(dbPath), "user_id")

	data, err := os.ReadFile(idPath)
	if err == nil {
		id := strings.TrimSpace(string(data))
		if _, parseErr := uuid.Parse(id); parseErr == nil {
			return id, nil
		}
		// Corrupt id file: fall through and mint a fresh identity.
	} else if !os.IsNotExist(err) {
		return "", fmt.Errorf("read user id: %w", err)
	}

	id := uuid.New().String()
	if err := EnsureDir(idPath); err != nil {
		return "", fmt.Errorf("create data dir: %w", err)
	}
	if err := os.WriteFile(idPath, []byte(id+"\n"), 0o644); err != nil {
		return "", fmt.Errorf("write user id: %w", err)
	}
	return id, nil
}
