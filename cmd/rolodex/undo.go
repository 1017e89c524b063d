// Undo command reverses the most recent mutation.
package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/rolodex/pkg/types"
)

var undoCmd = &cobra.Command{
	Use:   "undo",
	Short: "Reverse the most recent change",
	Long: `Undo reverses the most recent add, update, delete, import, or
restore. The history is bounded to the ten most recent changes; there is
no redo.

Example:
  rolodex undo`,
	Args: cobra.NoArgs,
	RunE: runUndo,
}

func runUndo(cmd *cobra.Command, args []string) error {
	s, err := openStore()
	if err != nil {
		return err
	}
	defer s.Close()

	action, err := s.Undo()
	if errors.Is(err, types.ErrNothingToUndo) {
		userExit("undo: nothing to undo")
	}
	if err != nil {
		return fmt.Errorf("undo: %w", err)
	}

	fmt.Printf("Undid %s\n", action)
	return nil
}
