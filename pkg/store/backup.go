package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"slices"

	"github.com/mesh-intelligence/rolodex/pkg/types"
)

// RestoreBackup replaces the full record list with the contents of the
// given backup file. A missing, unreadable, or malformed file is an error
// and leaves state untouched. On success the pre-restore list goes into
// the undo log, so a restore is itself reversible.
func (s *Store) RestoreBackup(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading backup %s: %w", path, err)
	}

	var recs []contactJSON
	if err := json.Unmarshal(data, &recs); err != nil {
		return fmt.Errorf("parsing backup %s: %w", path, err)
	}

	restored := make([]types.Contact, 0, len(recs))
	for _, rec := range recs {
		restored = append(restored, s.fromJSON(rec))
	}

	s.undo.push(types.RestoredAction{Previous: slices.Clone(s.contacts)})
	s.contacts = restored
	s.rebuildIndex()
	return s.Save()
}

// ListBackups returns the backup files written for the backing store file,
// sorted by name. Backup names embed a second-resolution timestamp, so
// name order is age order. Pruning old backups is left to the external
// environment.
func (s *Store) ListBackups() ([]string, error) {
	matches, err := filepath.Glob(s.path + ".backup_*")
	if err != nil {
		return nil, fmt.Errorf("listing backups for %s: %w", s.path, err)
	}
	slices.Sort(matches)
	return matches, nil
}
