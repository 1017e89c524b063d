// Search command finds contacts by substring match.
package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/rolodex/pkg/types"
)

var searchField string

var searchCmd = &cobra.Command{
	Use:   "search <term>",
	Short: "Search contacts",
	Long: `Search prints contacts containing the term as a case-insensitive
substring. By default every field is searched; --field restricts the match
to one of: ` + strings.Join(types.SearchFields, ", ") + `.

Example:
  rolodex search doe
  rolodex search example.com --field email`,
	Args: cobra.ExactArgs(1),
	RunE: runSearch,
}

func init() {
	searchCmd.Flags().StringVar(&searchField, "field", types.FieldAll, "field to search")
}

func runSearch(cmd *cobra.Command, args []string) error {
	s, err := openStore()
	if err != nil {
		return err
	}
	defer s.Close()

	contacts, err := s.Search(args[0], searchField)
	if err != nil {
		return fmt.Errorf("search contacts: %w", err)
	}
	return printContacts(contacts)
}
