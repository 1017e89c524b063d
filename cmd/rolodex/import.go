// Import command reads contacts from a CSV file.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var importCmd = &cobra.Command{
	Use:   "import <path>",
	Short: "Import contacts from a CSV file",
	Long: `Import reads contact rows from a CSV file. The name and phone
columns are required; missing optional columns are defaulted. Invalid rows
are skipped with a warning and duplicates are skipped silently; the
surviving rows form one batch that a single undo reverses.

Example:
  rolodex import contacts.csv`,
	Args: cobra.ExactArgs(1),
	RunE: runImport,
}

func runImport(cmd *cobra.Command, args []string) error {
	s, err := openStore()
	if err != nil {
		return err
	}
	defer s.Close()

	report, err := s.ImportCSV(args[0])
	if err != nil {
		return fmt.Errorf("import contacts: %w", err)
	}

	if flagJSON {
		return printJSON(report)
	}
	fmt.Printf("Imported %d contacts (%d duplicates skipped, %d rows invalid)\n",
		report.Imported, report.Duplicates, len(report.Skipped))
	for _, reason := range report.Skipped {
		fmt.Fprintln(os.Stderr, "skipped", reason)
	}
	return nil
}
