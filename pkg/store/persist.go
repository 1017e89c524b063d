package store

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/mesh-intelligence/rolodex/pkg/types"
)

// backupTimestampLayout names backup files to second resolution:
// <original-name>.backup_<YYYYMMDD_HHMMSS>.
const backupTimestampLayout = "20060102_150405"

// contactJSON mirrors the persisted record format. Timestamps travel as
// RFC 3339 strings; absent optional fields decode to "" and are backfilled
// on load.
type contactJSON struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Phone        string `json:"phone"`
	Email        string `json:"email"`
	Category     string `json:"category"`
	Notes        string `json:"notes"`
	LastModified string `json:"last_modified"`
}

func toJSON(c types.Contact) contactJSON {
	return contactJSON{
		ID:           c.ID,
		Name:         c.Name,
		Phone:        c.Phone,
		Email:        c.Email,
		Category:     c.Category,
		Notes:        c.Notes,
		LastModified: c.LastModified.Format(time.RFC3339),
	}
}

// fromJSON converts a persisted record, backfilling missing id, category,
// and last_modified. Unknown extra fields were already dropped by the
// decoder, so older generations can read newer files.
func (s *Store) fromJSON(rec contactJSON) types.Contact {
	c := types.Contact{
		ID:       rec.ID,
		Name:     rec.Name,
		Phone:    rec.Phone,
		Email:    rec.Email,
		Category: rec.Category,
		Notes:    rec.Notes,
	}
	if c.ID == "" {
		c.ID = generateUUID()
	}
	if c.Category == "" {
		c.Category = types.CategoryOther
	}
	ts, err := time.Parse(time.RFC3339, rec.LastModified)
	if err != nil {
		ts = s.now()
	}
	c.LastModified = ts
	return c
}

// load reads the persisted record list. Missing file, unreadable file, and
// malformed content all degrade to an empty list; only the latter two are
// worth a warning.
func (s *Store) load() []types.Contact {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if !os.IsNotExist(err) {
			s.logger.Warn("store file unreadable, starting empty",
				slog.String("path", s.path),
				slog.String("error", err.Error()))
		}
		return nil
	}

	var recs []contactJSON
	if err := json.Unmarshal(data, &recs); err != nil {
		s.logger.Warn("store file malformed, starting empty",
			slog.String("path", s.path),
			slog.String("error", err.Error()))
		return nil
	}

	contacts := make([]types.Contact, 0, len(recs))
	for _, rec := range recs {
		contacts = append(contacts, s.fromJSON(rec))
	}
	return contacts
}

// Save persists the full record list to the backing file and the undo log
// to its sidecar. If the store file already exists it is first copied to a
// timestamped sibling, so every overwrite leaves a backup behind. A failed
// save leaves the in-memory list intact; the returned error tells the
// caller state is unpersisted.
func (s *Store) Save() error {
	if err := s.backupExisting(); err != nil {
		return err
	}

	recs := make([]contactJSON, 0, len(s.contacts))
	for _, c := range s.contacts {
		recs = append(recs, toJSON(c))
	}
	data, err := json.MarshalIndent(recs, "", "    ")
	if err != nil {
		return fmt.Errorf("encoding record list: %w", err)
	}

	if err := writeFileAtomic(s.path, data); err != nil {
		return fmt.Errorf("writing %s: %w", s.path, err)
	}
	return s.saveUndo()
}

// backupExisting copies the current store file to its backup name. A
// missing store file means nothing to back up.
func (s *Store) backupExisting() error {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("reading %s for backup: %w", s.path, err)
	}

	backup := fmt.Sprintf("%s.backup_%s", s.path, s.now().Format(backupTimestampLayout))
	if err := os.WriteFile(backup, data, 0o644); err != nil {
		return fmt.Errorf("writing backup %s: %w", backup, err)
	}
	s.logger.Debug("backup written", slog.String("path", backup))
	return nil
}

// writeFileAtomic writes data using the temp-file, fsync, rename pattern,
// so the target is always either the old or the new content.
func writeFileAtomic(path string, data []byte) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, ".store-*.tmp")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("writing temp file: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("syncing temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("closing temp file: %w", err)
	}
	if err := os.Chmod(tmpName, 0o644); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("setting temp file mode: %w", err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("renaming temp file: %w", err)
	}
	return nil
}
