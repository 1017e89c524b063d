package index

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/rolodex/pkg/types"
)

func testContacts() []types.Contact {
	return []types.Contact{
		{ID: "a", Name: "Jane Doe", Phone: "+14155550123", Email: "jane@example.com", Category: "Work", Notes: "met at conf"},
		{ID: "b", Name: "John Smith", Phone: "+442071838750", Email: "john@example.org", Category: "Personal", Notes: ""},
		{ID: "c", Name: "Ana Doe", Phone: "+385915551234", Email: "", Category: "Family", Notes: "sister"},
	}
}

func openIndex(t *testing.T) *Index {
	t.Helper()
	ix, err := Open()
	require.NoError(t, err)
	t.Cleanup(func() { ix.Close() })
	require.NoError(t, ix.Rebuild(testContacts()))
	return ix
}

func TestSearch(t *testing.T) {
	ix := openIndex(t)

	tests := []struct {
		name  string
		term  string
		field string
		want  []string
	}{
		{"all fields matches name", "doe", types.FieldAll, []string{"a", "c"}},
		{"all fields matches notes", "conf", types.FieldAll, []string{"a"}},
		{"case insensitive", "JANE", types.FieldAll, []string{"a"}},
		{"restricted to name", "jane", types.FieldName, []string{"a"}},
		{"restricted to email", "example.org", types.FieldEmail, []string{"b"}},
		{"phone substring", "2071", types.FieldPhone, []string{"b"}},
		{"no match is empty", "zzz", types.FieldAll, nil},
		{"unknown field matches nothing", "jane", "bogus", nil},
		{"notes restricted does not see name", "jane", types.FieldNotes, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ix.Search(tt.term, tt.field)
			require.NoError(t, err)
			assert.Len(t, got, len(tt.want))
			for _, id := range tt.want {
				assert.Contains(t, got, id)
			}
		})
	}
}

func TestFilterByCategory(t *testing.T) {
	ix := openIndex(t)

	all, err := ix.FilterByCategory(types.CategoryAll)
	require.NoError(t, err)
	assert.Len(t, all, 3)

	work, err := ix.FilterByCategory("Work")
	require.NoError(t, err)
	assert.Len(t, work, 1)
	assert.Contains(t, work, "a")

	none, err := ix.FilterByCategory("Other")
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestUpsertAndDelete(t *testing.T) {
	ix := openIndex(t)

	// Upsert refreshes an existing row in place.
	updated := types.Contact{ID: "a", Name: "Jane Roe", Phone: "+14155550123", Category: "Other"}
	require.NoError(t, ix.Upsert(updated))

	got, err := ix.Search("roe", types.FieldName)
	require.NoError(t, err)
	assert.Contains(t, got, "a")

	stale, err := ix.Search("doe", types.FieldName)
	require.NoError(t, err)
	assert.NotContains(t, stale, "a")

	require.NoError(t, ix.Delete("a"))
	gone, err := ix.Search("roe", types.FieldName)
	require.NoError(t, err)
	assert.Empty(t, gone)

	// Deleting an absent id succeeds.
	require.NoError(t, ix.Delete("a"))
}

func TestRebuildReplacesContents(t *testing.T) {
	ix := openIndex(t)

	require.NoError(t, ix.Rebuild([]types.Contact{
		{ID: "x", Name: "Solo Entry", Phone: "+15551234567", Category: "Other"},
	}))

	all, err := ix.FilterByCategory(types.CategoryAll)
	require.NoError(t, err)
	assert.Len(t, all, 1)
	assert.Contains(t, all, "x")
}
