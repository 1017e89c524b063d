package store

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"

	"github.com/mesh-intelligence/rolodex/pkg/types"
)

// The undo log survives process restarts through a sidecar file next to
// the store file. Without it, a one-shot consumer like the CLI would open
// every command with an empty history and undo would never have anything
// to reverse. The sidecar is derived state: an unreadable or malformed
// sidecar degrades to an empty log with a warning, like the store file
// itself.

// Action kind tags in the persisted undo log.
const (
	actionAdded    = "added"
	actionDeleted  = "deleted"
	actionUpdated  = "updated"
	actionImported = "imported"
	actionRestored = "restored"
)

// actionJSON is one undo entry in the sidecar file. Kind selects which of
// the payload fields are set.
type actionJSON struct {
	Kind     string        `json:"kind"`
	Record   *contactJSON  `json:"record,omitempty"`
	Before   *contactJSON  `json:"before,omitempty"`
	After    *contactJSON  `json:"after,omitempty"`
	Records  []contactJSON `json:"records,omitempty"`
	Previous []contactJSON `json:"previous,omitempty"`
}

// undoPath returns the sidecar file path for the undo log.
func (s *Store) undoPath() string {
	return s.path + ".undo"
}

func encodeAction(a types.Action) actionJSON {
	switch v := a.(type) {
	case types.AddedAction:
		rec := toJSON(v.Record)
		return actionJSON{Kind: actionAdded, Record: &rec}
	case types.DeletedAction:
		rec := toJSON(v.Record)
		return actionJSON{Kind: actionDeleted, Record: &rec}
	case types.UpdatedAction:
		before, after := toJSON(v.Before), toJSON(v.After)
		return actionJSON{Kind: actionUpdated, Before: &before, After: &after}
	case types.ImportedAction:
		recs := make([]contactJSON, 0, len(v.Records))
		for _, r := range v.Records {
			recs = append(recs, toJSON(r))
		}
		return actionJSON{Kind: actionImported, Records: recs}
	case types.RestoredAction:
		prev := make([]contactJSON, 0, len(v.Previous))
		for _, r := range v.Previous {
			prev = append(prev, toJSON(r))
		}
		return actionJSON{Kind: actionRestored, Previous: prev}
	}
	return actionJSON{}
}

// decodeAction rebuilds an Action from its persisted form. Unknown or
// incomplete entries return nil and are dropped.
func (s *Store) decodeAction(rec actionJSON) types.Action {
	switch rec.Kind {
	case actionAdded:
		if rec.Record == nil {
			return nil
		}
		return types.AddedAction{Record: s.fromJSON(*rec.Record)}
	case actionDeleted:
		if rec.Record == nil {
			return nil
		}
		return types.DeletedAction{Record: s.fromJSON(*rec.Record)}
	case actionUpdated:
		if rec.Before == nil || rec.After == nil {
			return nil
		}
		return types.UpdatedAction{Before: s.fromJSON(*rec.Before), After: s.fromJSON(*rec.After)}
	case actionImported:
		recs := make([]types.Contact, 0, len(rec.Records))
		for _, r := range rec.Records {
			recs = append(recs, s.fromJSON(r))
		}
		return types.ImportedAction{Records: recs}
	case actionRestored:
		prev := make([]types.Contact, 0, len(rec.Previous))
		for _, r := range rec.Previous {
			prev = append(prev, s.fromJSON(r))
		}
		return types.RestoredAction{Previous: prev}
	}
	return nil
}

// loadUndo reads the sidecar into the undo log, keeping at most the
// newest depth entries.
func (s *Store) loadUndo() {
	data, err := os.ReadFile(s.undoPath())
	if err != nil {
		if !os.IsNotExist(err) {
			s.logger.Warn("undo history unreadable, starting empty",
				slog.String("path", s.undoPath()),
				slog.String("error", err.Error()))
		}
		return
	}

	var recs []actionJSON
	if err := json.Unmarshal(data, &recs); err != nil {
		s.logger.Warn("undo history malformed, starting empty",
			slog.String("path", s.undoPath()),
			slog.String("error", err.Error()))
		return
	}

	for _, rec := range recs {
		if a := s.decodeAction(rec); a != nil {
			s.undo.push(a)
		}
	}
}

// saveUndo writes the current undo log to the sidecar, oldest first.
func (s *Store) saveUndo() error {
	recs := make([]actionJSON, 0, s.undo.len())
	for _, a := range s.undo.entries {
		recs = append(recs, encodeAction(a))
	}
	data, err := json.MarshalIndent(recs, "", "    ")
	if err != nil {
		return fmt.Errorf("encoding undo history: %w", err)
	}
	if err := writeFileAtomic(s.undoPath(), data); err != nil {
		return fmt.Errorf("writing %s: %w", s.undoPath(), err)
	}
	return nil
}
