// Restore command replaces the contact list from a backup file.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var restoreCmd = &cobra.Command{
	Use:   "restore <path>",
	Short: "Restore the contact list from a backup file",
	Long: `Restore replaces the entire contact list with the contents of the
given backup file. The pre-restore list stays in the undo history, so a
restore can itself be undone.

Example:
  rolodex backups
  rolodex restore contacts.json.backup_20260301_120000`,
	Args: cobra.ExactArgs(1),
	RunE: runRestore,
}

func runRestore(cmd *cobra.Command, args []string) error {
	s, err := openStore()
	if err != nil {
		return err
	}
	defer s.Close()

	if err := s.RestoreBackup(args[0]); err != nil {
		return fmt.Errorf("restore backup: %w", err)
	}

	fmt.Printf("Restored %d contacts from %s\n", len(s.List()), args[0])
	return nil
}
