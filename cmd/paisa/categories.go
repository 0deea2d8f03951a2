package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/paisatrail/paisa-trail/internal/cli"
	"github.com/paisatrail/paisa-trail/internal/parser"
)

func categoriesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "categories",
		Short: "Show the category keyword table",
		Long: `Show the ordered category keyword table. The order matters:
a debit takes the first category whose keyword appears in the message,
so earlier rows shadow later ones.`,
		RunE: runCategories,
	}
}

func runCategories(_ *cobra.Command, _ []string) error {
	fmt.Println(cli.TitleStyle.Render("Category table (first match wins)"))

	for i, rule := range parser.CategoryTable() {
		fmt.Printf("%s %s\n",
			cli.SubtleStyle.Render(fmt.Sprintf("%d.", i+1)),
			cli.BoldStyle.Render(string(rule.Category)))
		fmt.Printf("   %s\n", cli.SubtleStyle.Render(strings.Join(rule.Keywords, ", ")))
	}

	fmt.Println(cli.SubtleStyle.Render("\nCredits are always Income; unmatched large UPI debits become Transfer/Rent."))
	return nil
}
