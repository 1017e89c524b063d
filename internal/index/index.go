// Package index provides a SQLite-backed search index over the in-memory
// contact list. The index is derived state: it lives in an in-memory
// database, is rebuilt from the record list on open, and is kept in sync
// by the store on each mutation. The JSON store file remains the only
// on-disk persistence.
package index

import (
	"database/sql"
	"fmt"
	"strings"

	_ "modernc.org/sqlite"

	"github.com/mesh-intelligence/rolodex/pkg/types"
)

const schemaSQL = `CREATE TABLE contacts (
    id TEXT PRIMARY KEY,
    name TEXT NOT NULL,
    phone TEXT NOT NULL,
    email TEXT NOT NULL,
    category TEXT NOT NULL,
    notes TEXT NOT NULL,
    name_lc TEXT NOT NULL,
    phone_lc TEXT NOT NULL,
    email_lc TEXT NOT NULL,
    category_lc TEXT NOT NULL,
    notes_lc TEXT NOT NULL
);

CREATE INDEX idx_contacts_category ON contacts(category);
`

// searchColumns maps search field names to their lowercased shadow columns.
var searchColumns = map[string]string{
	types.FieldName:     "name_lc",
	types.FieldPhone:    "phone_lc",
	types.FieldEmail:    "email_lc",
	types.FieldCategory: "category_lc",
	types.FieldNotes:    "notes_lc",
}

// Index wraps an in-memory SQLite database over the contact list.
type Index struct {
	db *sql.DB
}

// Open creates a fresh in-memory index and applies the schema.
func Open() (*Index, error) {
	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		return nil, fmt.Errorf("opening index db: %w", err)
	}
	// database/sql would otherwise hand each pooled connection its own
	// empty :memory: database.
	db.SetMaxOpenConns(1)

	if _, err := db.Exec(schemaSQL); err != nil {
		db.Close()
		return nil, fmt.Errorf("applying index schema: %w", err)
	}
	return &Index{db: db}, nil
}

// Close releases the underlying database.
func (ix *Index) Close() error {
	return ix.db.Close()
}

// Rebuild replaces the full index contents with the given list in one
// transaction.
func (ix *Index) Rebuild(contacts []types.Contact) error {
	tx, err := ix.db.Begin()
	if err != nil {
		return fmt.Errorf("beginning rebuild transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec("DELETE FROM contacts"); err != nil {
		return fmt.Errorf("clearing index: %w", err)
	}

	stmt, err := tx.Prepare(upsertSQL)
	if err != nil {
		return fmt.Errorf("preparing index insert: %w", err)
	}
	defer stmt.Close()

	for _, c := range contacts {
		if _, err := stmt.Exec(upsertArgs(c)...); err != nil {
			return fmt.Errorf("indexing contact %s: %w", c.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing rebuild: %w", err)
	}
	return nil
}

const upsertSQL = `INSERT INTO contacts
    (id, name, phone, email, category, notes,
     name_lc, phone_lc, email_lc, category_lc, notes_lc)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
ON CONFLICT(id) DO UPDATE SET
    name = excluded.name,
    phone = excluded.phone,
    email = excluded.email,
    category = excluded.category,
    notes = excluded.notes,
    name_lc = excluded.name_lc,
    phone_lc = excluded.phone_lc,
    email_lc = excluded.email_lc,
    category_lc = excluded.category_lc,
    notes_lc = excluded.notes_lc`

// upsertArgs lowercases the shadow columns in Go rather than SQL: SQLite's
// lower() folds ASCII only, and email or notes may carry non-ASCII text.
func upsertArgs(c types.Contact) []any {
	return []any{
		c.ID, c.Name, c.Phone, c.Email, c.Category, c.Notes,
		strings.ToLower(c.Name), strings.ToLower(c.Phone),
		strings.ToLower(c.Email), strings.ToLower(c.Category),
		strings.ToLower(c.Notes),
	}
}

// Upsert inserts or refreshes one contact row.
func (ix *Index) Upsert(c types.Contact) error {
	if _, err := ix.db.Exec(upsertSQL, upsertArgs(c)...); err != nil {
		return fmt.Errorf("upserting contact %s: %w", c.ID, err)
	}
	return nil
}

// Delete removes one contact row. Deleting an absent id is not an error.
func (ix *Index) Delete(id string) error {
	if _, err := ix.db.Exec("DELETE FROM contacts WHERE id = ?", id); err != nil {
		return fmt.Errorf("deleting contact %s from index: %w", id, err)
	}
	return nil
}

// Search returns the ids of contacts containing term as a case-insensitive
// substring of the given field, or of any search field when field is
// types.FieldAll. An unrecognized field name matches nothing.
func (ix *Index) Search(term, field string) (map[string]struct{}, error) {
	needle := strings.ToLower(term)

	var query string
	switch {
	case field == types.FieldAll:
		conds := make([]string, 0, len(types.SearchFields))
		for _, f := range types.SearchFields {
			conds = append(conds, fmt.Sprintf("instr(%s, ?) > 0", searchColumns[f]))
		}
		query = "SELECT id FROM contacts WHERE " + strings.Join(conds, " OR ")
	default:
		col, ok := searchColumns[field]
		if !ok {
			return map[string]struct{}{}, nil
		}
		query = fmt.Sprintf("SELECT id FROM contacts WHERE instr(%s, ?) > 0", col)
	}

	args := []any{needle}
	if field == types.FieldAll {
		args = []any{needle, needle, needle, needle, needle}
	}
	return ix.queryIDs(query, args...)
}

// FilterByCategory returns the ids of contacts whose category exactly
// matches. types.CategoryAll returns every id.
func (ix *Index) FilterByCategory(category string) (map[string]struct{}, error) {
	if category == types.CategoryAll {
		return ix.queryIDs("SELECT id FROM contacts")
	}
	return ix.queryIDs("SELECT id FROM contacts WHERE category = ?", category)
}

func (ix *Index) queryIDs(query string, args ...any) (map[string]struct{}, error) {
	rows, err := ix.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying index: %w", err)
	}
	defer rows.Close()

	ids := make(map[string]struct{})
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scanning index row: %w", err)
		}
		ids[id] = struct{}{}
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating index rows: %w", err)
	}
	return ids, nil
}
