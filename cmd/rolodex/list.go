// List command prints contacts, optionally filtered by category.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/rolodex/pkg/types"
)

var listCategory string

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List contacts",
	Long: `List prints the full contact list in store order.

With --category, only contacts in that category are shown; the sentinel
"All" means every category.

Example:
  rolodex list
  rolodex list --category Work
  rolodex list --json`,
	RunE: runList,
}

func init() {
	listCmd.Flags().StringVar(&listCategory, "category", types.CategoryAll, "category to filter by")
}

func runList(cmd *cobra.Command, args []string) error {
	s, err := openStore()
	if err != nil {
		return err
	}
	defer s.Close()

	contacts, err := s.FilterByCategory(listCategory)
	if err != nil {
		return fmt.Errorf("filter contacts: %w", err)
	}
	return printContacts(contacts)
}
