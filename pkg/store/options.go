package store

import (
	"log/slog"
	"slices"
	"time"
)

// defaultUndoDepth bounds the undo log when WithUndoDepth is not given.
const defaultUndoDepth = 10

// Option configures a Store at Open time.
type Option func(*Store)

// WithLogger sets the logger for warnings on degrade paths. Defaults to
// slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(s *Store) {
		s.logger = logger
	}
}

// WithCategories overrides the category vocabulary presented by
// Categories. The defaulting rules still use types.CategoryOther.
func WithCategories(categories []string) Option {
	return func(s *Store) {
		s.categories = slices.Clone(categories)
	}
}

// WithDefaultRegion sets the country assumed when a phone number has no
// international prefix, as an ISO 3166-1 alpha-2 code. Empty means strict
// international parsing.
func WithDefaultRegion(region string) Option {
	return func(s *Store) {
		s.region = region
	}
}

// WithUndoDepth bounds the undo log to the n most recent actions.
// Non-positive values keep the default.
func WithUndoDepth(n int) Option {
	return func(s *Store) {
		if n > 0 {
			s.undo = newUndoLog(n)
		}
	}
}

// WithClock injects the time source used for last_modified stamps and
// backup file names.
func WithClock(now func() time.Time) Option {
	return func(s *Store) {
		s.now = now
	}
}
