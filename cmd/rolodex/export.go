// Export command writes the contact list as CSV.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var exportCmd = &cobra.Command{
	Use:   "export <path>",
	Short: "Export contacts to a CSV file",
	Long: `Export writes the full contact list, in store order, to a CSV file
with a header row. On failure the file state is unknown.

Example:
  rolodex export contacts.csv`,
	Args: cobra.ExactArgs(1),
	RunE: runExport,
}

func runExport(cmd *cobra.Command, args []string) error {
	s, err := openStore()
	if err != nil {
		return err
	}
	defer s.Close()

	if err := s.ExportCSV(args[0]); err != nil {
		return fmt.Errorf("export contacts: %w", err)
	}

	fmt.Printf("Exported %d contacts to %s\n", len(s.List()), args[0])
	return nil
}
