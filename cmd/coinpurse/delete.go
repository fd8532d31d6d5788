package main

import (
	"fmt"

	"github.com/jmallory/coinpurse/internal/cli"
	"github.com/spf13/cobra"
)

func deleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <index>",
		Short: "Remove an expense by its 1-based index",
		Long: `Remove the expense at the given position.

Later expenses shift down by one, so indices printed by a previous
listing are only valid until the next mutation.`,
		Args: cobra.ExactArgs(1),
		RunE: runDelete,
	}
}

func runDelete(_ *cobra.Command, args []string) error {
	index, err := parseIndex(args[0])
	if err != nil {
		return err
	}

	eng, _, _, err := initLedger()
	if err != nil {
		return err
	}

	removed, err := eng.Delete(index)
	if err != nil {
		return err
	}

	msg := fmt.Sprintf("Deleted expense: %s - %s (%s)",
		removed.Date, cli.FormatAmount(removed.Amount), removed.Category)
	fmt.Println(cli.FormatSuccess(msg)) //nolint:forbidigo // User-facing output
	return nil
}
