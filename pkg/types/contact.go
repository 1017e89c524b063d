package types

import "time"

// Default category assigned when a record carries none.
const CategoryOther = "Other"

// CategoryAll is the filter sentinel meaning "every category".
// It is never stored on a record.
const CategoryAll = "All"

// DefaultCategories is the standard category vocabulary, in presentation
// order. Stores may override it; CategoryOther is always a member.
var DefaultCategories = []string{"Work", "Personal", "Family", CategoryOther}

// Search field names accepted by Store.Search.
const (
	FieldAll      = "all"
	FieldName     = "name"
	FieldPhone    = "phone"
	FieldEmail    = "email"
	FieldCategory = "category"
	FieldNotes    = "notes"
)

// SearchFields lists the single-field search targets (everything FieldAll
// spans), in the order the columns appear in CSV interchange.
var SearchFields = []string{FieldName, FieldPhone, FieldEmail, FieldCategory, FieldNotes}

// Contact is one contact record. The JSON field names are the persisted
// store-file and CSV interchange format.
type Contact struct {
	ID           string    `json:"id"`            // UUID v7, generated once, immutable.
	Name         string    `json:"name"`          // Letters and spaces, at most 100 chars.
	Phone        string    `json:"phone"`         // Canonical E.164 form.
	Email        string    `json:"email"`         // Optional; syntactically valid when present.
	Category     string    `json:"category"`      // Defaults to CategoryOther.
	Notes        string    `json:"notes"`         // Free text, at most 500 chars.
	LastModified time.Time `json:"last_modified"` // Updated on every create or mutation.
}

// ContactInput carries the caller-supplied fields for add and update
// operations. The store owns id and last_modified.
type ContactInput struct {
	Name     string
	Phone    string
	Email    string
	Category string
	Notes    string
}
