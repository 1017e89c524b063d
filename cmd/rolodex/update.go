// Update command overwrites the fields of an existing contact.
package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/rolodex/pkg/types"
)

var (
	updateName     string
	updatePhone    string
	updateEmail    string
	updateCategory string
	updateNotes    string
	updateForce    bool
)

var updateCmd = &cobra.Command{
	Use:   "update <id>",
	Short: "Update an existing contact",
	Long: `Update overwrites all fields of the contact with the given id and
refreshes its last-modified timestamp.

The new fields are checked for conflicts against every other record; pass
--force to apply them anyway.

Example:
  rolodex update 0195... --name "Jane Roe" --phone "+14155550199"`,
	Args: cobra.ExactArgs(1),
	RunE: runUpdate,
}

func init() {
	updateCmd.Flags().StringVar(&updateName, "name", "", "contact name (required)")
	updateCmd.Flags().StringVar(&updatePhone, "phone", "", "phone number (required)")
	updateCmd.Flags().StringVar(&updateEmail, "email", "", "email address")
	updateCmd.Flags().StringVar(&updateCategory, "category", "", "category (default: Other)")
	updateCmd.Flags().StringVar(&updateNotes, "notes", "", "free-text notes")
	updateCmd.Flags().BoolVar(&updateForce, "force", false, "apply even if it conflicts with another contact")
	_ = updateCmd.MarkFlagRequired("name")
	_ = updateCmd.MarkFlagRequired("phone")
}

func runUpdate(cmd *cobra.Command, args []string) error {
	id := args[0]

	s, err := openStore()
	if err != nil {
		return err
	}
	defer s.Close()

	if err := s.Validate(updateName, updatePhone, updateEmail); err != nil {
		userExit("update: %v", err)
	}

	// The store does not re-check uniqueness on update; that policy sits
	// here, where the override can be offered.
	if !updateForce && conflictsWithOther(s, id, updateName, updatePhone, updateEmail) {
		userExit("update: conflicts with another contact (use --force to apply anyway)")
	}

	err = s.Update(id, types.ContactInput{
		Name:     updateName,
		Phone:    updatePhone,
		Email:    updateEmail,
		Category: updateCategory,
		Notes:    updateNotes,
	})
	if errors.Is(err, types.ErrNotFound) {
		userExit("update: no contact with id %s", id)
	}
	if err != nil {
		return fmt.Errorf("update contact: %w", err)
	}

	if flagJSON {
		for _, c := range s.List() {
			if c.ID == id {
				return printJSON(c)
			}
		}
	}
	fmt.Printf("Updated %s\n", id)
	return nil
}
