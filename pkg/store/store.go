// Package store implements the Rolodex record store: an in-memory contact
// list persisted to a single JSON file with backup-before-write, a bounded
// undo log, duplicate detection over normalized fields, CSV interchange,
// and a SQLite-backed search index rebuilt from the list on open.
//
// A Store is an explicitly owned handle: construct with Open, operate,
// Close. It is not safe for concurrent use; the enclosing application
// guarantees one caller at a time.
package store

import (
	"fmt"
	"log/slog"
	"slices"
	"time"

	"github.com/google/uuid"

	"github.com/mesh-intelligence/rolodex/internal/index"
	"github.com/mesh-intelligence/rolodex/pkg/types"
)

// Store owns the contact list, the undo log, the category vocabulary,
// and the backing file path.
type Store struct {
	path       string
	logger     *slog.Logger
	categories []string
	region     string
	now        func() time.Time

	contacts []types.Contact
	undo     *undoLog
	idx      *index.Index
}

// Open constructs a Store bound to path and loads it. A missing file
// yields an empty list; an unreadable or malformed file is reported as a
// warning and also yields an empty list, never an error. Loaded records
// missing id, category, notes, or last_modified are backfilled.
func Open(path string, opts ...Option) (*Store, error) {
	s := &Store{
		path:       path,
		logger:     slog.Default(),
		categories: slices.Clone(types.DefaultCategories),
		now:        time.Now,
		undo:       newUndoLog(defaultUndoDepth),
	}
	for _, opt := range opts {
		opt(s)
	}

	idx, err := index.Open()
	if err != nil {
		return nil, fmt.Errorf("opening search index: %w", err)
	}
	s.idx = idx

	s.contacts = s.load()
	s.loadUndo()
	if err := s.idx.Rebuild(s.contacts); err != nil {
		idx.Close()
		return nil, fmt.Errorf("building search index: %w", err)
	}
	return s, nil
}

// Close releases the search index. The store file needs no teardown; every
// mutation persists before returning.
func (s *Store) Close() error {
	return s.idx.Close()
}

// Path returns the backing file path.
func (s *Store) Path() string {
	return s.path
}

// List returns a copy of the full record list in store order.
func (s *Store) List() []types.Contact {
	return slices.Clone(s.contacts)
}

// Categories returns a copy of the category vocabulary in presentation
// order.
func (s *Store) Categories() []string {
	return slices.Clone(s.categories)
}

// UndoDepth returns the number of reversible actions currently held.
func (s *Store) UndoDepth() int {
	return s.undo.len()
}

// Add generates a record from in and appends it. Returns
// types.ErrDuplicate, with nothing mutated, when the input matches an
// existing record on name, normalized phone, or email; callers offering an
// override path use ForceAdd instead. The stored phone is the canonical
// E.164 form; notes are truncated to 500 characters.
func (s *Store) Add(in types.ContactInput) (types.Contact, error) {
	if s.IsDuplicate(in.Name, in.Phone, in.Email) {
		return types.Contact{}, types.ErrDuplicate
	}
	return s.ForceAdd(in)
}

// ForceAdd is Add with the duplicate check bypassed. The override policy
// itself (when to offer it, how to confirm) belongs to the caller.
func (s *Store) ForceAdd(in types.ContactInput) (types.Contact, error) {
	c := s.newContact(in)
	s.undo.push(types.AddedAction{Record: c})
	s.contacts = append(s.contacts, c)
	s.indexUpsert(c)
	if err := s.Save(); err != nil {
		return c, err
	}
	return c, nil
}

// Update overwrites all caller-supplied fields of the record with the
// given id and stamps a fresh last_modified. Notes are truncated to 500
// characters, as on add. Returns types.ErrNotFound,
// with no undo entry and no save, when the id is absent. Update does not
// re-check uniqueness against other records; that conflict policy belongs
// to the caller.
func (s *Store) Update(id string, in types.ContactInput) error {
	i := s.indexOf(id)
	if i < 0 {
		return types.ErrNotFound
	}

	before := s.contacts[i]
	after := before
	after.Name = trimmedName(in.Name)
	after.Phone = s.CanonicalPhone(in.Phone)
	after.Email = in.Email
	after.Category = orDefaultCategory(in.Category)
	after.Notes = clampNotes(in.Notes)
	after.LastModified = s.tick(before.LastModified)

	s.contacts[i] = after
	s.undo.push(types.UpdatedAction{Before: before, After: after})
	s.indexUpsert(after)
	return s.Save()
}

// Delete removes the record with the given id. Returns types.ErrNotFound
// when absent. The full snapshot goes into the undo entry.
func (s *Store) Delete(id string) error {
	i := s.indexOf(id)
	if i < 0 {
		return types.ErrNotFound
	}

	s.undo.push(types.DeletedAction{Record: s.contacts[i]})
	s.contacts = slices.Delete(s.contacts, i, i+1)
	if err := s.idx.Delete(id); err != nil {
		s.logger.Warn("search index out of sync", slog.String("error", err.Error()))
	}
	return s.Save()
}

// Undo pops the most recent undo entry and reverses it, then saves.
// Returns the reversed action as plain data for the caller to render, or
// types.ErrNothingToUndo when the log is empty. There is no redo.
func (s *Store) Undo() (types.Action, error) {
	action, ok := s.undo.pop()
	if !ok {
		return nil, types.ErrNothingToUndo
	}

	switch a := action.(type) {
	case types.AddedAction:
		if i := s.indexOf(a.Record.ID); i >= 0 {
			s.contacts = slices.Delete(s.contacts, i, i+1)
		}
	case types.DeletedAction:
		// Re-insert at the end; original position is not preserved.
		s.contacts = append(s.contacts, a.Record)
	case types.UpdatedAction:
		if i := s.indexOf(a.After.ID); i >= 0 {
			s.contacts[i] = a.Before
		}
	case types.ImportedAction:
		batch := make(map[string]struct{}, len(a.Records))
		for _, r := range a.Records {
			batch[r.ID] = struct{}{}
		}
		s.contacts = slices.DeleteFunc(s.contacts, func(c types.Contact) bool {
			_, ok := batch[c.ID]
			return ok
		})
	case types.RestoredAction:
		s.contacts = slices.Clone(a.Previous)
	}

	s.rebuildIndex()
	if err := s.Save(); err != nil {
		return action, err
	}
	return action, nil
}

// Search returns records containing term as a case-insensitive substring.
// types.FieldAll spans name, phone, email, category, and notes; any other
// recognized field name restricts the match to that field. An empty result
// is valid, not an error. Results keep store order.
func (s *Store) Search(term, field string) ([]types.Contact, error) {
	ids, err := s.idx.Search(term, field)
	if err != nil {
		return nil, fmt.Errorf("searching index: %w", err)
	}
	return s.selectByID(ids), nil
}

// FilterByCategory returns records whose category matches exactly.
// types.CategoryAll returns every record.
func (s *Store) FilterByCategory(category string) ([]types.Contact, error) {
	ids, err := s.idx.FilterByCategory(category)
	if err != nil {
		return nil, fmt.Errorf("filtering index: %w", err)
	}
	return s.selectByID(ids), nil
}

// selectByID maps an id set back to the record list, preserving list order.
func (s *Store) selectByID(ids map[string]struct{}) []types.Contact {
	out := make([]types.Contact, 0, len(ids))
	for _, c := range s.contacts {
		if _, ok := ids[c.ID]; ok {
			out = append(out, c)
		}
	}
	return out
}

// newContact builds a fresh record from caller input: new id, canonical
// phone, defaulted category, clamped notes, current timestamp.
func (s *Store) newContact(in types.ContactInput) types.Contact {
	return types.Contact{
		ID:           generateUUID(),
		Name:         trimmedName(in.Name),
		Phone:        s.CanonicalPhone(in.Phone),
		Email:        in.Email,
		Category:     orDefaultCategory(in.Category),
		Notes:        clampNotes(in.Notes),
		LastModified: s.now(),
	}
}

// indexOf returns the list position of the record with the given id,
// or -1.
func (s *Store) indexOf(id string) int {
	return slices.IndexFunc(s.contacts, func(c types.Contact) bool {
		return c.ID == id
	})
}

func (s *Store) indexUpsert(c types.Contact) {
	if err := s.idx.Upsert(c); err != nil {
		s.logger.Warn("search index out of sync", slog.String("error", err.Error()))
	}
}

func (s *Store) rebuildIndex() {
	if err := s.idx.Rebuild(s.contacts); err != nil {
		s.logger.Warn("search index out of sync", slog.String("error", err.Error()))
	}
}

// tick returns the current time, clamped so last_modified never precedes
// a record's previous value.
func (s *Store) tick(prev time.Time) time.Time {
	now := s.now()
	if now.Before(prev) {
		return prev
	}
	return now
}

func orDefaultCategory(category string) string {
	if category == "" {
		return types.CategoryOther
	}
	return category
}

// generateUUID generates a new UUID v7 for record ids, falling back to v4
// if v7 generation fails.
func generateUUID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.New().String()
	}
	return id.String()
}
