package store

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/rolodex/pkg/types"
)

func TestValidate(t *testing.T) {
	s := newTestStore(t)

	tests := []struct {
		name    string
		inName  string
		inPhone string
		inEmail string
		wantErr bool
	}{
		{"valid full entry", "Jane Doe", "+14155550123", "jane@example.com", false},
		{"valid without email", "Jane Doe", "+14155550123", "", false},
		{"name with surrounding spaces", "  Jane Doe  ", "+14155550123", "", false},
		{"empty name", "", "+14155550123", "", true},
		{"whitespace-only name", "   ", "+14155550123", "", true},
		{"name with digits", "Jane D0e", "+14155550123", "", true},
		{"name over 100 chars", strings.Repeat("a", 101), "+14155550123", "", true},
		{"name at 100 chars", strings.Repeat("a", 100), "+14155550123", "", false},
		{"unparseable phone", "Jane Doe", "not-a-phone", "", true},
		{"too-short phone", "Jane Doe", "+1415", "", true},
		{"national phone with default region", "Jane Doe", "4155550123", "", false},
		{"bad email", "Jane Doe", "+14155550123", "not-an-email", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := s.Validate(tt.inName, tt.inPhone, tt.inEmail)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidateStrictInternationalWithoutRegion(t *testing.T) {
	path := t.TempDir() + "/contacts.json"
	s, err := Open(path, WithLogger(quietLogger()))
	require.NoError(t, err)
	defer s.Close()

	// No default region: national-format numbers do not parse.
	assert.Error(t, s.Validate("Jane Doe", "4155550123", ""))
	assert.NoError(t, s.Validate("Jane Doe", "+14155550123", ""))
}

func TestCanonicalPhone(t *testing.T) {
	s := newTestStore(t)

	tests := []struct {
		name string
		raw  string
		want string
	}{
		{"formatted international", "+1 415 555 0123", "+14155550123"},
		{"national with punctuation", "(415) 555-0123", "+14155550123"},
		{"already canonical is idempotent", "+14155550123", "+14155550123"},
		{"invalid falls back to trimmed raw", " 123 ", "123"},
		{"garbage falls back to raw", "not-a-phone", "not-a-phone"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, s.CanonicalPhone(tt.raw))
		})
	}
}

func TestIsDuplicate(t *testing.T) {
	s := newTestStore(t)
	mustAdd(t, s, "Jane Doe", "+1 234 567 8900", "jane@example.com")

	tests := []struct {
		name    string
		inName  string
		inPhone string
		inEmail string
		want    bool
	}{
		{"same name different case", "JANE DOE", "+14155550199", "", true},
		{"same phone different formatting", "Someone Else", "12345678900", "", true},
		{"same email different case", "Someone Else", "+14155550199", "JANE@EXAMPLE.COM", true},
		{"empty email never matches", "Someone Else", "+14155550199", "", false},
		{"all fields distinct", "Someone Else", "+14155550199", "other@example.com", false},
		{"invalid candidate phone does not crash", "Someone Else", "garbage", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, s.IsDuplicate(tt.inName, tt.inPhone, tt.inEmail))
		})
	}
}

func TestIsDuplicateWithUnparseableStoredPhone(t *testing.T) {
	s := newTestStore(t)
	// Force in a record whose phone never parsed; the raw string was kept.
	_, err := s.ForceAdd(types.ContactInput{Name: "Legacy Entry", Phone: "ext 42"})
	require.NoError(t, err)

	assert.True(t, s.IsDuplicate("Someone Else", "ext 42", ""))
	assert.False(t, s.IsDuplicate("Someone Else", "+14155550199", ""))
}
