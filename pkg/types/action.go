package types

import "fmt"

// Action is one reversible past mutation in the undo log. The variant set
// is closed: the unexported marker method restricts implementations to this
// package, so every reversal site can switch over the five concrete types
// with each branch's payload statically guaranteed.
type Action interface {
	fmt.Stringer
	isAction()
}

// AddedAction records a single-record add; undone by removing the record.
type AddedAction struct {
	Record Contact
}

// DeletedAction records a delete with the full pre-delete snapshot; undone
// by re-inserting the record at the end of the list (original position is
// not preserved).
type DeletedAction struct {
	Record Contact
}

// UpdatedAction records a field mutation; undone by overwriting the record
// matching After.ID with the Before snapshot.
type UpdatedAction struct {
	Before Contact
	After  Contact
}

// ImportedAction records one CSV import batch; undone by removing every
// record whose id is in the batch, so the whole import reverses atomically.
type ImportedAction struct {
	Records []Contact
}

// RestoredAction records a backup restore, holding the full list as it was
// immediately before the restore; undone by putting that list back wholesale.
type RestoredAction struct {
	Previous []Contact
}

func (AddedAction) isAction()    {}
func (DeletedAction) isAction()  {}
func (UpdatedAction) isAction()  {}
func (ImportedAction) isAction() {}
func (RestoredAction) isAction() {}

func (a AddedAction) String() string {
	return fmt.Sprintf("add %s", a.Record.Name)
}

func (a DeletedAction) String() string {
	return fmt.Sprintf("delete %s", a.Record.Name)
}

func (a UpdatedAction) String() string {
	return fmt.Sprintf("update %s", a.Before.Name)
}

func (a ImportedAction) String() string {
	return fmt.Sprintf("import of %d records", len(a.Records))
}

func (a RestoredAction) String() string {
	return fmt.Sprintf("restore over %d records", len(a.Previous))
}
