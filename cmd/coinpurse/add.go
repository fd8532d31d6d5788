package main

import (
	"fmt"

	"github.com/jmallory/coinpurse/internal/cli"
	"github.com/spf13/cobra"
)

func addCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Record a new expense",
		Long: `Record a new expense in the ledger.

The amount must be a positive number and the date a valid YYYY-MM-DD
calendar date. The category defaults to "Uncategorized" when omitted.`,
		RunE: runAdd,
	}

	cmd.Flags().String("amount", "", "expense amount (required)")
	cmd.Flags().String("date", "", "expense date, YYYY-MM-DD (required)")
	cmd.Flags().String("note", "", "free-text note")
	cmd.Flags().String("category", "", "expense category")
	_ = cmd.MarkFlagRequired("amount")
	_ = cmd.MarkFlagRequired("date")

	return cmd
}

func runAdd(cmd *cobra.Command, _ []string) error {
	eng, _, _, err := initLedger()
	if err != nil {
		return err
	}

	amount, _ := cmd.Flags().GetString("amount")
	date, _ := cmd.Flags().GetString("date")
	note, _ := cmd.Flags().GetString("note")
	category, _ := cmd.Flags().GetString("category")

	record, err := eng.Add(amount, date, note, category)
	if err != nil {
		return err
	}

	fmt.Println(cli.FormatSuccess("Expense added successfully.")) //nolint:forbidigo // User-facing output
	fmt.Println(cli.SubtleStyle.Render(record.String()))          //nolint:forbidigo // User-facing output
	return nil
}
