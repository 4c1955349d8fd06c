// Package export reads and writes the JSON archive format used to move a
// user's session history between installations.
package export

import (
	"encoding/json"
	"fmt"

	"github.com/abhisek/cruxlog/internal/store"
)

// ArchiveVersion is the current archive format version.
const ArchiveVersion = 1

// Archive is the top-level export document.
type Archive struct {
	Version  int                `json:"version"`
	Sessions []store.SessionDoc `json:"sessions"`
}

// Marshal renders the session documents as an indented JSON archive.
func Marshal(docs []store.SessionDoc) ([]byte, error) {
	if docs == nil {
		docs = []store.SessionDoc{}
	}
	data, err := json.MarshalIndent(Archive{Version: ArchiveVersion, Sessions: docs}, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal archive: %w", err)
	}
	return data, nil
}

// Unmarshal validates raw archive bytes against the schema and decodes them.
// Validation runs first so malformed imports are rejected before any insert.
func Unmarshal(raw []byte) (Archive, error) {
	if err := Validate(raw); err != nil {
		return Archive{}, err
	}

	var a Archive
	if err := json.Unmarshal(raw, &a); err != nil {
		return Archive{}, fmt.Errorf("decode archive: %w", err)
	}
	if a.Version != ArchiveVersion {
		return Archive{}, fmt.Errorf("unsupported archive version %d", a.Version)
	}
	return a, nil
}
