package integration

import (
	"strings"
	"testing"
)

func TestAddListDeleteLifecycle(t *testing.T) {
	env := NewTestEnv(t)

	res := env.MustRunRolodex("add",
		"--name", "Jane Doe",
		"--phone", "+1 415 555 0123",
		"--email", "jane@example.com",
		"--json")
	added := ParseJSON[Contact](t, res.Stdout)
	if added.ID == "" {
		t.Fatal("expected a non-empty id on the added contact")
	}
	if added.Phone != "+14155550123" {
		t.Errorf("expected canonical E.164 phone, got %q", added.Phone)
	}
	if added.Category != "Other" {
		t.Errorf("expected default category Other, got %q", added.Category)
	}

	res = env.MustRunRolodex("list", "--json")
	contacts := ParseJSON[[]Contact](t, res.Stdout)
	if len(contacts) != 1 {
		t.Fatalf("expected 1 contact, got %d", len(contacts))
	}

	env.MustRunRolodex("delete", added.ID)

	res = env.MustRunRolodex("list", "--json")
	contacts = ParseJSON[[]Contact](t, res.Stdout)
	if len(contacts) != 0 {
		t.Fatalf("expected empty list after delete, got %d contacts", len(contacts))
	}
}

func TestDuplicateRefusedWithoutForce(t *testing.T) {
	env := NewTestEnv(t)
	env.MustRunRolodex("add", "--name", "Jane Doe", "--phone", "+14155550123")

	// Same number, different formatting: still a duplicate.
	res := env.RunRolodex("add", "--name", "Someone Else", "--phone", "(415) 555-0123")
	if res.ExitCode != 1 {
		t.Fatalf("expected exit code 1 for duplicate, got %d (stderr: %s)", res.ExitCode, res.Stderr)
	}
	if !strings.Contains(res.Stderr, "--force") {
		t.Errorf("expected stderr to mention the --force override, got: %s", res.Stderr)
	}

	env.MustRunRolodex("add", "--name", "Someone Else", "--phone", "(415) 555-0123", "--force")

	res = env.MustRunRolodex("list", "--json")
	contacts := ParseJSON[[]Contact](t, res.Stdout)
	if len(contacts) != 2 {
		t.Fatalf("expected 2 contacts after forced add, got %d", len(contacts))
	}
}

func TestValidationRejectedAtEntry(t *testing.T) {
	env := NewTestEnv(t)

	tests := []struct {
		name string
		args []string
	}{
		{"name with digits", []string{"add", "--name", "Jane 2", "--phone", "+14155550123"}},
		{"invalid phone", []string{"add", "--name", "Jane Doe", "--phone", "123"}},
		{"invalid email", []string{"add", "--name", "Jane Doe", "--phone", "+14155550123", "--email", "nope"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := env.RunRolodex(tt.args...)
			if res.ExitCode != 1 {
				t.Fatalf("expected exit code 1, got %d (stderr: %s)", res.ExitCode, res.Stderr)
			}
		})
	}

	res := env.MustRunRolodex("list", "--json")
	contacts := ParseJSON[[]Contact](t, res.Stdout)
	if len(contacts) != 0 {
		t.Fatalf("expected no contacts after rejected adds, got %d", len(contacts))
	}
}

func TestOverlongNotesTruncated(t *testing.T) {
	env := NewTestEnv(t)

	long := strings.Repeat("x", 600)
	res := env.MustRunRolodex("add",
		"--name", "Jane Doe",
		"--phone", "+14155550123",
		"--notes", long,
		"--json")
	added := ParseJSON[Contact](t, res.Stdout)
	if len(added.Notes) != 500 {
		t.Fatalf("expected notes truncated to 500 characters, got %d", len(added.Notes))
	}

	env.MustRunRolodex("update", added.ID,
		"--name", "Jane Doe",
		"--phone", "+14155550123",
		"--notes", strings.Repeat("y", 501))

	res = env.MustRunRolodex("list", "--json")
	contacts := ParseJSON[[]Contact](t, res.Stdout)
	if len(contacts[0].Notes) != 500 {
		t.Fatalf("expected updated notes truncated to 500 characters, got %d", len(contacts[0].Notes))
	}
}

func TestUpdateAndUndo(t *testing.T) {
	env := NewTestEnv(t)

	res := env.MustRunRolodex("add", "--name", "Jane Doe", "--phone", "+14155550123", "--json")
	added := ParseJSON[Contact](t, res.Stdout)

	env.MustRunRolodex("update", added.ID,
		"--name", "Jane Roe",
		"--phone", "+14155550199",
		"--category", "Work")

	res = env.MustRunRolodex("list", "--json")
	contacts := ParseJSON[[]Contact](t, res.Stdout)
	if contacts[0].Name != "Jane Roe" || contacts[0].Category != "Work" {
		t.Fatalf("update not applied: %+v", contacts[0])
	}

	out := env.MustRunRolodex("undo")
	if !strings.Contains(out.Stdout, "update") {
		t.Errorf("expected undo to report the reversed update, got: %s", out.Stdout)
	}

	res = env.MustRunRolodex("list", "--json")
	contacts = ParseJSON[[]Contact](t, res.Stdout)
	if contacts[0].Name != "Jane Doe" {
		t.Fatalf("undo did not restore the prior record: %+v", contacts[0])
	}
}

func TestUpdateUnknownIDFails(t *testing.T) {
	env := NewTestEnv(t)
	res := env.RunRolodex("update", "no-such-id", "--name", "Jane Doe", "--phone", "+14155550123")
	if res.ExitCode != 1 {
		t.Fatalf("expected exit code 1, got %d", res.ExitCode)
	}
}

func TestUndoEmptyHistory(t *testing.T) {
	env := NewTestEnv(t)
	res := env.RunRolodex("undo")
	if res.ExitCode != 1 {
		t.Fatalf("expected exit code 1, got %d (stderr: %s)", res.ExitCode, res.Stderr)
	}
}

func TestSearchAndFilter(t *testing.T) {
	env := NewTestEnv(t)
	env.MustRunRolodex("add", "--name", "Jane Doe", "--phone", "+14155550123",
		"--email", "jane@example.com", "--category", "Work")
	env.MustRunRolodex("add", "--name", "John Smith", "--phone", "+14155550199",
		"--category", "Personal")

	res := env.MustRunRolodex("search", "doe", "--json")
	found := ParseJSON[[]Contact](t, res.Stdout)
	if len(found) != 1 || found[0].Name != "Jane Doe" {
		t.Fatalf("expected to find Jane Doe, got %+v", found)
	}

	res = env.MustRunRolodex("search", "example", "--field", "name", "--json")
	found = ParseJSON[[]Contact](t, res.Stdout)
	if len(found) != 0 {
		t.Fatalf("name-restricted search should not match email, got %+v", found)
	}

	res = env.MustRunRolodex("list", "--category", "Personal", "--json")
	found = ParseJSON[[]Contact](t, res.Stdout)
	if len(found) != 1 || found[0].Name != "John Smith" {
		t.Fatalf("expected only John Smith in Personal, got %+v", found)
	}
}

func TestCategoriesCommand(t *testing.T) {
	env := NewTestEnv(t)
	res := env.MustRunRolodex("categories", "--json")
	categories := ParseJSON[[]string](t, res.Stdout)
	if len(categories) == 0 {
		t.Fatal("expected a non-empty category vocabulary")
	}
	found := false
	for _, c := range categories {
		if c == "Other" {
			found = true
		}
	}
	if !found {
		t.Errorf("expected Other in the vocabulary, got %v", categories)
	}
}
