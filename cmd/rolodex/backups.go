// Backups command lists the timestamped backups of the store file.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var backupsCmd = &cobra.Command{
	Use:   "backups",
	Short: "List store file backups",
	Long: `Backups lists the timestamped copies written before each overwrite
of the store file, oldest first. Backups are never pruned automatically.

Example:
  rolodex backups`,
	Args: cobra.NoArgs,
	RunE: runBackups,
}

func runBackups(cmd *cobra.Command, args []string) error {
	s, err := openStore()
	if err != nil {
		return err
	}
	defer s.Close()

	backups, err := s.ListBackups()
	if err != nil {
		return fmt.Errorf("list backups: %w", err)
	}

	if flagJSON {
		return printJSON(backups)
	}
	for _, b := range backups {
		fmt.Println(b)
	}
	return nil
}
