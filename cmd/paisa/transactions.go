package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/paisatrail/paisa-trail/internal/cli"
	"github.com/paisatrail/paisa-trail/internal/model"
	"github.com/paisatrail/paisa-trail/internal/service"
)

func transactionsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "transactions",
		Aliases: []string{"txns", "list"},
		Short:   "List recorded transactions",
		RunE:    runTransactions,
	}

	cmd.Flags().IntP("limit", "n", 25, "maximum number of transactions to show")
	cmd.Flags().StringP("category", "c", "", "filter by category (e.g. \"Food & Dining\")")

	return cmd
}

func runTransactions(cmd *cobra.Command, _ []string) error {
	limit, _ := cmd.Flags().GetInt("limit")
	category, _ := cmd.Flags().GetString("category")

	store, err := initStorage(cmd.Context())
	if err != nil {
		return err
	}
	defer func() { _ = store.Close() }()

	txns, err := store.ListTransactions(cmd.Context(), service.ListOptions{
		Limit:    limit,
		Category: model.Category(category),
	})
	if err != nil {
		return fmt.Errorf("failed to list transactions: %w", err)
	}

	if len(txns) == 0 {
		fmt.Println(cli.SubtleStyle.Render("No transactions recorded yet."))
		return nil
	}

	fmt.Println(cli.TitleStyle.Render(fmt.Sprintf("Transactions (%d)", len(txns))))
	for _, txn := range txns {
		amountStyle := cli.DebitStyle
		sign := "-"
		if txn.Direction == model.DirectionCredit {
			amountStyle = cli.CreditStyle
			sign = "+"
		}

		fmt.Printf("%s  %s  %-30s  %s\n",
			cli.SubtleStyle.Render(txn.Date.Format("2006-01-02")),
			amountStyle.Render(fmt.Sprintf("%10s", fmt.Sprintf("%s₹%.2f", sign, txn.Amount))),
			txn.Description,
			string(txn.Category))
	}
	return nil
}
