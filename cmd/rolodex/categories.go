// Categories command prints the category vocabulary.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var categoriesCmd = &cobra.Command{
	Use:   "categories",
	Short: "List the category vocabulary",
	Args:  cobra.NoArgs,
	RunE:  runCategories,
}

func runCategories(cmd *cobra.Command, args []string) error {
	s, err := openStore()
	if err != nil {
		return err
	}
	defer s.Close()

	categories := s.Categories()
	if flagJSON {
		return printJSON(categories)
	}
	for _, c := range categories {
		fmt.Println(c)
	}
	return nil
}
