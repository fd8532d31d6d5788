package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/jmallory/coinpurse/internal/cli"
	"github.com/jmallory/coinpurse/internal/ledger"
	"github.com/spf13/cobra"
)

func shellCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "shell",
		Short: "Interactive expense tracking session",
		Long: `Start an interactive session with one command per line.

Commands: add, view, update, delete, summary, filter, quit.
Operation failures print a message and the session continues.`,
		RunE: runShell,
	}
}

func runShell(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	eng, loaded, found, err := initLedger()
	if err != nil {
		return err
	}
	if found {
		fmt.Println(cli.FormatInfo(fmt.Sprintf("Loaded %d expenses.", loaded))) //nolint:forbidigo // User-facing output
	}

	fmt.Println(cli.FormatTitle("Personal Expense Tracker"))                                //nolint:forbidigo // User-facing output
	fmt.Println(cli.SubtleStyle.Render("Commands: add, view, update, delete, summary, filter, quit")) //nolint:forbidigo // User-facing output

	shell := &shellSession{eng: eng, reader: cli.NewLineReader(cmd.InOrStdin())}
	return shell.run(ctx)
}

// shellSession drives the interactive loop: one blocking prompt per
// operation, no background work.
type shellSession struct {
	eng    *ledger.Ledger
	reader *cli.LineReader
}

func (s *shellSession) run(ctx context.Context) error {
	for {
		command, err := s.prompt(ctx, "\nEnter command")
		if err != nil {
			if errors.Is(err, io.EOF) || errors.Is(err, cli.ErrInputCancelled) {
				return nil
			}
			return err
		}

		switch strings.ToLower(command) {
		case "quit":
			return nil
		case "add":
			err = s.add(ctx)
		case "view":
			printExpenses(s.eng, ledger.Filter{})
		case "update":
			err = s.update(ctx)
		case "delete":
			err = s.delete(ctx)
		case "summary":
			printSummary(s.eng)
		case "filter":
			err = s.filter(ctx)
		case "":
			continue
		default:
			fmt.Println(cli.FormatError("Unknown command. Try: add, view, update, delete, summary, filter, quit")) //nolint:forbidigo // User-facing output
		}

		if err != nil {
			if errors.Is(err, io.EOF) || errors.Is(err, cli.ErrInputCancelled) {
				return nil
			}
			// Operation failures are reported, never fatal.
			fmt.Println(cli.FormatError(err.Error())) //nolint:forbidigo // User-facing output
		}
	}
}

func (s *shellSession) prompt(ctx context.Context, label string) (string, error) {
	fmt.Print(cli.FormatPrompt(label)) //nolint:forbidigo // User-facing output
	return s.reader.ReadLine(ctx)
}

func (s *shellSession) add(ctx context.Context) error {
	amount, err := s.prompt(ctx, "Amount")
	if err != nil {
		return err
	}
	date, err := s.prompt(ctx, "Date (YYYY-MM-DD)")
	if err != nil {
		return err
	}
	note, err := s.prompt(ctx, "Note")
	if err != nil {
		return err
	}
	category, err := s.prompt(ctx, "Category (optional)")
	if err != nil {
		return err
	}

	if _, err := s.eng.Add(amount, date, note, category); err != nil {
		return err
	}
	fmt.Println(cli.FormatSuccess("Expense added successfully.")) //nolint:forbidigo // User-facing output
	return nil
}

func (s *shellSession) update(ctx context.Context) error {
	raw, err := s.prompt(ctx, "Expense index (1-based)")
	if err != nil {
		return err
	}
	index, err := parseIndex(raw)
	if err != nil {
		return err
	}

	fmt.Println(cli.SubtleStyle.Render("Leave blank to skip: amount, date, note, category")) //nolint:forbidigo // User-facing output

	changes, err := s.promptChanges(ctx)
	if err != nil {
		return err
	}

	if _, err := s.eng.Update(index, changes); err != nil {
		return err
	}
	fmt.Println(cli.FormatSuccess("Expense updated successfully.")) //nolint:forbidigo // User-facing output
	return nil
}

// promptChanges reads the optional update fields; a blank answer leaves the
// field untouched.
func (s *shellSession) promptChanges(ctx context.Context) (ledger.Changes, error) {
	var changes ledger.Changes

	fields := []struct {
		target **string
		label  string
	}{
		{&changes.Amount, "New amount"},
		{&changes.Date, "New date (YYYY-MM-DD)"},
		{&changes.Note, "New note"},
		{&changes.Category, "New category"},
	}
	for _, field := range fields {
		value, err := s.prompt(ctx, field.label)
		if err != nil {
			return ledger.Changes{}, err
		}
		if value != "" {
			v := value
			*field.target = &v
		}
	}
	return changes, nil
}

func (s *shellSession) delete(ctx context.Context) error {
	raw, err := s.prompt(ctx, "Expense index (1-based)")
	if err != nil {
		return err
	}
	index, err := parseIndex(raw)
	if err != nil {
		return err
	}

	removed, err := s.eng.Delete(index)
	if err != nil {
		return err
	}
	msg := fmt.Sprintf("Deleted expense: %s - %s (%s)",
		removed.Date, cli.FormatAmount(removed.Amount), removed.Category)
	fmt.Println(cli.FormatSuccess(msg)) //nolint:forbidigo // User-facing output
	return nil
}

func (s *shellSession) filter(ctx context.Context) error {
	kind, err := s.prompt(ctx, "Filter by (category/date)")
	if err != nil {
		return err
	}

	switch strings.ToLower(kind) {
	case "category":
		category, err := s.prompt(ctx, "Category")
		if err != nil {
			return err
		}
		printExpenses(s.eng, ledger.Filter{Category: category})
	case "date":
		date, err := s.prompt(ctx, "Date (YYYY-MM-DD)")
		if err != nil {
			return err
		}
		printExpenses(s.eng, ledger.Filter{Date: date})
	default:
		fmt.Println(cli.FormatError("Invalid filter type.")) //nolint:forbidigo // User-facing output
	}
	return nil
}
