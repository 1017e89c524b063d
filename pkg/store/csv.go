package store

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/mesh-intelligence/rolodex/pkg/types"
)

// csvHeader is the CSV interchange column set, in order.
var csvHeader = []string{"id", "name", "phone", "email", "category", "notes", "last_modified"}

// ImportReport summarizes one CSV import batch.
type ImportReport struct {
	Imported   int      // rows added to the store
	Duplicates int      // rows skipped by the duplicate check
	Skipped    []string // per-row reasons for validation and parse skips
}

// ExportCSV writes the full record list, in store order, with a header
// row. An error may leave a partial file behind; callers must treat any
// failure as "file state unknown".
func (s *Store) ExportCSV(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(csvHeader); err != nil {
		return fmt.Errorf("writing CSV header: %w", err)
	}
	for _, c := range s.contacts {
		row := []string{
			c.ID, c.Name, c.Phone, c.Email, c.Category, c.Notes,
			c.LastModified.Format(time.RFC3339),
		}
		if err := w.Write(row); err != nil {
			return fmt.Errorf("writing CSV row: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("flushing CSV: %w", err)
	}
	return nil
}

// ImportCSV reads contact rows from path. Each row independently passes
// the same Validate rules as interactive entry (invalid rows are skipped
// with a warning, not fatal to the batch) and the same duplicate check
// (duplicates silently skipped). Missing optional columns get the load
// defaults. All surviving rows form one undo entry, so the batch reverses
// atomically. An error is returned only when the file itself is unreadable
// or lacks the required name and phone columns; zero surviving rows is
// still success.
func (s *Store) ImportCSV(path string) (ImportReport, error) {
	f, err := os.Open(path)
	if err != nil {
		return ImportReport{}, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1

	header, err := r.Read()
	if err != nil {
		return ImportReport{}, fmt.Errorf("reading CSV header: %w", err)
	}
	col := make(map[string]int, len(header))
	for i, name := range header {
		col[strings.ToLower(strings.TrimSpace(name))] = i
	}
	if _, ok := col["name"]; !ok {
		return ImportReport{}, errors.New("CSV is missing required column name")
	}
	if _, ok := col["phone"]; !ok {
		return ImportReport{}, errors.New("CSV is missing required column phone")
	}

	var (
		report   ImportReport
		imported []types.Contact
	)
	for rowNum := 2; ; rowNum++ {
		row, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			reason := fmt.Sprintf("row %d: %v", rowNum, err)
			report.Skipped = append(report.Skipped, reason)
			s.logger.Warn("CSV row unreadable", slog.String("reason", reason))
			continue
		}

		field := func(name string) string {
			i, ok := col[name]
			if !ok || i >= len(row) {
				return ""
			}
			return strings.TrimSpace(row[i])
		}

		name, phone, email := field("name"), field("phone"), field("email")
		if err := s.Validate(name, phone, email); err != nil {
			reason := fmt.Sprintf("row %d: %v", rowNum, err)
			report.Skipped = append(report.Skipped, reason)
			s.logger.Warn("CSV row invalid", slog.String("reason", reason))
			continue
		}
		// Checked against the growing list, so in-batch duplicates are
		// caught too.
		if s.IsDuplicate(name, phone, email) {
			report.Duplicates++
			continue
		}

		c := s.fromJSON(contactJSON{
			ID:           field("id"),
			Name:         trimmedName(name),
			Phone:        s.CanonicalPhone(phone),
			Email:        email,
			Category:     field("category"),
			Notes:        clampNotes(field("notes")),
			LastModified: field("last_modified"),
		})
		s.contacts = append(s.contacts, c)
		s.indexUpsert(c)
		imported = append(imported, c)
		report.Imported++
	}

	if len(imported) == 0 {
		// Nothing changed; nothing to persist or reverse.
		return report, nil
	}

	s.undo.push(types.ImportedAction{Records: imported})
	if err := s.Save(); err != nil {
		return report, err
	}
	return report, nil
}
