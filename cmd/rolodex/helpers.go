// Shared helpers for rolodex CLI commands.
package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"text/tabwriter"

	"github.com/mesh-intelligence/rolodex/pkg/store"
	"github.com/mesh-intelligence/rolodex/pkg/types"
)

// openStore resolves the store file and opens a Store on it. The caller
// must defer s.Close().
func openStore() (*store.Store, error) {
	file, err := resolveStoreFile()
	if err != nil {
		return nil, fmt.Errorf("resolve store file: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(file), 0o755); err != nil {
		return nil, fmt.Errorf("create data dir: %w", err)
	}

	opts := []store.Option{
		store.WithDefaultRegion(configRegion),
	}
	if len(configCategories) > 0 {
		opts = append(opts, store.WithCategories(configCategories))
	}

	s, err := store.Open(file, opts...)
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}
	return s, nil
}

// conflictsWithOther reports whether any record other than id matches the
// candidate fields. The store's own duplicate check spans all records, so
// update commands need this variant that excludes the record being edited.
func conflictsWithOther(s *store.Store, id, name, phone, email string) bool {
	canon := s.CanonicalPhone(phone)
	for _, c := range s.List() {
		if c.ID == id {
			continue
		}
		if strings.EqualFold(c.Name, strings.TrimSpace(name)) {
			return true
		}
		if c.Phone == canon {
			return true
		}
		if email != "" && c.Email != "" && strings.EqualFold(c.Email, email) {
			return true
		}
	}
	return false
}

// printJSON writes v as indented JSON to stdout.
func printJSON(v any) error {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal JSON: %w", err)
	}
	fmt.Println(string(out))
	return nil
}

// printContacts renders records as an aligned table, or JSON with --json.
func printContacts(contacts []types.Contact) error {
	if flagJSON {
		return printJSON(contacts)
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tPHONE\tEMAIL\tCATEGORY\tNOTES")
	for _, c := range contacts {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n",
			c.ID, c.Name, c.Phone, c.Email, c.Category, c.Notes)
	}
	return w.Flush()
}

// userExit prints a user-facing message to stderr and exits with the user
// error code. Used for validation failures, duplicates, and stale ids.
func userExit(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(exitUserError)
}
