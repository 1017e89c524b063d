package store

import (
	"errors"
	"regexp"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
	"github.com/nyaruka/phonenumbers"
)

// nameRe is the full validity rule for names: letters and whitespace,
// between 1 and 100 characters.
var nameRe = regexp.MustCompile(`^[A-Za-z\s]{1,100}$`)

// maxNotesLen caps the free-text notes field on stored records.
const maxNotesLen = 500

var (
	errNameInvalid  = errors.New("name must be 1-100 letters and spaces")
	errPhoneInvalid = errors.New("phone must be a valid phone number")
	errEmailInvalid = errors.New("email must be a valid address")
)

// Validate checks caller input against the entry rules: non-empty name of
// letters and spaces, a parseable and valid phone number, and (when
// non-empty) a syntactically valid email. Deliverability is not checked.
// The first failing rule's message is the returned error. Validate never
// mutates store state.
func (s *Store) Validate(name, phone, email string) error {
	if err := validation.Validate(trimmedName(name),
		validation.Required.Error(errNameInvalid.Error()),
		validation.Match(nameRe).Error(errNameInvalid.Error()),
	); err != nil {
		return err
	}

	num, err := phonenumbers.Parse(phone, s.region)
	if err != nil || !phonenumbers.IsValidNumber(num) {
		return errPhoneInvalid
	}

	if email != "" {
		if err := validation.Validate(email,
			is.EmailFormat.Error(errEmailInvalid.Error()),
		); err != nil {
			return err
		}
	}
	return nil
}

// CanonicalPhone returns the E.164 form of raw, the representation used
// for storage and duplicate comparison. An unparseable or invalid number
// falls back to the trimmed raw string, so an already-invalid phone never
// breaks the duplicate check.
func (s *Store) CanonicalPhone(raw string) string {
	num, err := phonenumbers.Parse(raw, s.region)
	if err != nil || !phonenumbers.IsValidNumber(num) {
		return strings.TrimSpace(raw)
	}
	return phonenumbers.Format(num, phonenumbers.E164)
}

// IsDuplicate reports whether any existing record matches the candidate on
// name (case-insensitive), canonical phone, or email (case-insensitive,
// only when both sides are non-empty).
func (s *Store) IsDuplicate(name, phone, email string) bool {
	nameKey := strings.ToLower(trimmedName(name))
	phoneKey := s.CanonicalPhone(phone)
	emailKey := strings.ToLower(email)

	for _, c := range s.contacts {
		if strings.ToLower(c.Name) == nameKey {
			return true
		}
		if c.Phone == phoneKey {
			return true
		}
		if emailKey != "" && c.Email != "" && strings.ToLower(c.Email) == emailKey {
			return true
		}
	}
	return false
}

func trimmedName(name string) string {
	return strings.TrimSpace(name)
}

// clampNotes truncates notes to maxNotesLen characters. Overlong notes
// are kept truncated rather than refused.
func clampNotes(notes string) string {
	r := []rune(notes)
	if len(r) <= maxNotesLen {
		return notes
	}
	return string(r[:maxNotesLen])
}
