package main

import (
	"fmt"

	"github.com/jmallory/coinpurse/internal/cli"
	"github.com/jmallory/coinpurse/internal/ledger"
	"github.com/spf13/cobra"
)

func updateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "update <index>",
		Short: "Edit an expense by its 1-based index",
		Long: `Edit any subset of an expense's fields.

Only flags you actually set are applied, so a note can be cleared by
passing --note "". An invalid new amount or date is skipped and the
prior value kept, unlike add, which rejects the whole record.`,
		Args: cobra.ExactArgs(1),
		RunE: runUpdate,
	}

	cmd.Flags().String("amount", "", "new amount")
	cmd.Flags().String("date", "", "new date (YYYY-MM-DD)")
	cmd.Flags().String("note", "", "new note")
	cmd.Flags().String("category", "", "new category")

	return cmd
}

func runUpdate(cmd *cobra.Command, args []string) error {
	index, err := parseIndex(args[0])
	if err != nil {
		return err
	}

	eng, _, _, err := initLedger()
	if err != nil {
		return err
	}

	var changes ledger.Changes
	if cmd.Flags().Changed("amount") {
		v, _ := cmd.Flags().GetString("amount")
		changes.Amount = &v
	}
	if cmd.Flags().Changed("date") {
		v, _ := cmd.Flags().GetString("date")
		changes.Date = &v
	}
	if cmd.Flags().Changed("note") {
		v, _ := cmd.Flags().GetString("note")
		changes.Note = &v
	}
	if cmd.Flags().Changed("category") {
		v, _ := cmd.Flags().GetString("category")
		changes.Category = &v
	}

	record, err := eng.Update(index, changes)
	if err != nil {
		return err
	}

	fmt.Println(cli.FormatSuccess("Expense updated successfully.")) //nolint:forbidigo // User-facing output
	fmt.Println(cli.SubtleStyle.Render(record.String()))            //nolint:forbidigo // User-facing output
	return nil
}
