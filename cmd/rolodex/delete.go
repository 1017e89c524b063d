// Delete command removes a contact by id.
package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/rolodex/pkg/types"
)

var deleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a contact",
	Long: `Delete removes the contact with the given id. The deletion can be
reversed with "rolodex undo".

Example:
  rolodex delete 0195...`,
	Args: cobra.ExactArgs(1),
	RunE: runDelete,
}

func runDelete(cmd *cobra.Command, args []string) error {
	id := args[0]

	s, err := openStore()
	if err != nil {
		return err
	}
	defer s.Close()

	err = s.Delete(id)
	if errors.Is(err, types.ErrNotFound) {
		userExit("delete: no contact with id %s", id)
	}
	if err != nil {
		return fmt.Errorf("delete contact: %w", err)
	}

	fmt.Printf("Deleted %s\n", id)
	return nil
}
