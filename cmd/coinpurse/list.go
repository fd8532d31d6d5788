package main

import (
	"fmt"

	"github.com/jmallory/coinpurse/internal/cli"
	"github.com/jmallory/coinpurse/internal/ledger"
	"github.com/jmallory/coinpurse/internal/model"
	"github.com/spf13/cobra"
)

func listCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"view"},
		Short:   "List expenses, optionally filtered",
		Long: `List all recorded expenses in order.

A category filter matches case-insensitively on exact equality; a date
filter matches the exact YYYY-MM-DD string.`,
		RunE: runList,
	}

	cmd.Flags().String("category", "", "only show expenses in this category")
	cmd.Flags().String("date", "", "only show expenses on this date (YYYY-MM-DD)")

	return cmd
}

func runList(cmd *cobra.Command, _ []string) error {
	eng, _, _, err := initLedger()
	if err != nil {
		return err
	}

	category, _ := cmd.Flags().GetString("category")
	date, _ := cmd.Flags().GetString("date")

	printExpenses(eng, ledger.Filter{Category: category, Date: date})
	return nil
}

// printExpenses renders a filtered listing, distinguishing an empty ledger
// from a filter that matched nothing. Row numbers are positions within the
// filtered view.
func printExpenses(eng *ledger.Ledger, filter ledger.Filter) {
	if eng.Len() == 0 {
		fmt.Println(cli.FormatInfo("No expenses found.")) //nolint:forbidigo // User-facing output
		return
	}

	filtered := eng.List(filter)
	if len(filtered) == 0 {
		fmt.Println(cli.FormatInfo("No expenses match the filter.")) //nolint:forbidigo // User-facing output
		return
	}

	fmt.Println(cli.FormatTitle("Expenses:")) //nolint:forbidigo // User-facing output
	for i, record := range filtered {
		printExpenseRow(i+1, record)
	}
}

func printExpenseRow(position int, record model.Record) {
	fmt.Printf("%d. %s\n", position, record.String()) //nolint:forbidigo // User-facing output
}
