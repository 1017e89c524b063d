// Add command creates a new contact record.
package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/rolodex/pkg/types"
)

var (
	addName     string
	addPhone    string
	addEmail    string
	addCategory string
	addNotes    string
	addForce    bool
)

var addCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a new contact",
	Long: `Add creates a new contact record.

The phone number is stored in canonical E.164 form. A contact matching an
existing record on name, phone, or email is refused unless --force is given.

Example:
  rolodex add --name "Jane Doe" --phone "+1 415 555 0123" --email jane@example.com
  rolodex add --name "Jane Doe" --phone "+14155550123" --category Work --force`,
	RunE: runAdd,
}

func init() {
	addCmd.Flags().StringVar(&addName, "name", "", "contact name (required)")
	addCmd.Flags().StringVar(&addPhone, "phone", "", "phone number (required)")
	addCmd.Flags().StringVar(&addEmail, "email", "", "email address")
	addCmd.Flags().StringVar(&addCategory, "category", "", "category (default: Other)")
	addCmd.Flags().StringVar(&addNotes, "notes", "", "free-text notes")
	addCmd.Flags().BoolVar(&addForce, "force", false, "add even if it matches an existing contact")
	_ = addCmd.MarkFlagRequired("name")
	_ = addCmd.MarkFlagRequired("phone")
}

func runAdd(cmd *cobra.Command, args []string) error {
	s, err := openStore()
	if err != nil {
		return err
	}
	defer s.Close()

	if err := s.Validate(addName, addPhone, addEmail); err != nil {
		userExit("add: %v", err)
	}

	in := types.ContactInput{
		Name:     addName,
		Phone:    addPhone,
		Email:    addEmail,
		Category: addCategory,
		Notes:    addNotes,
	}

	var c types.Contact
	if addForce {
		c, err = s.ForceAdd(in)
	} else {
		c, err = s.Add(in)
		if errors.Is(err, types.ErrDuplicate) {
			userExit("add: contact matches an existing record (use --force to add anyway)")
		}
	}
	if err != nil {
		return fmt.Errorf("add contact: %w", err)
	}

	if flagJSON {
		return printJSON(c)
	}
	fmt.Printf("Added %s: %s\n", c.Name, c.ID)
	return nil
}
