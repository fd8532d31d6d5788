package main

import (
	"errors"
	"fmt"

	"github.com/jmallory/coinpurse/internal/cli"
	"github.com/jmallory/coinpurse/internal/common"
	"github.com/jmallory/coinpurse/internal/ledger"
	"github.com/spf13/cobra"
)

func summaryCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "summary",
		Short: "Show spending totals by category and month",
		RunE:  runSummary,
	}
}

func runSummary(_ *cobra.Command, _ []string) error {
	eng, _, _, err := initLedger()
	if err != nil {
		return err
	}

	printSummary(eng)
	return nil
}

func printSummary(eng *ledger.Ledger) {
	summary, err := eng.Summary()
	if err != nil {
		if errors.Is(err, common.ErrNoRecords) {
			fmt.Println(cli.FormatInfo("No expenses for summary.")) //nolint:forbidigo // User-facing output
			return
		}
		fmt.Println(cli.FormatError(err.Error())) //nolint:forbidigo // User-facing output
		return
	}

	fmt.Println(cli.FormatTitle(cli.ChartIcon + " Summary"))                            //nolint:forbidigo // User-facing output
	fmt.Printf("Total spent: %s\n", cli.FormatAmount(summary.Total))                    //nolint:forbidigo // User-facing output
	printTotals("By Category:", summary.Categories)
	printTotals("By Month:", summary.Months)
}

func printTotals(heading string, totals []ledger.GroupTotal) {
	fmt.Println()                                //nolint:forbidigo // User-facing output
	fmt.Println(cli.TitleStyle.Render(heading))  //nolint:forbidigo // User-facing output
	for _, t := range totals {
		fmt.Printf("  %s: %s\n", t.Key, cli.FormatAmount(t.Amount)) //nolint:forbidigo // User-facing output
	}
}
