// Package model defines the core domain types for the expense ledger.
package model

import (
	"fmt"
	"strings"
)

// DefaultCategory is assigned to records whose category is empty after trimming.
const DefaultCategory = "Uncategorized"

// DateLayout is the calendar date format every record carries.
const DateLayout = "2006-01-02"

// Record represents a single expense entry in the ledger.
type Record struct {
	Amount   float64 `json:"amount"`
	Date     string  `json:"date"`
	Note     string  `json:"note"`
	Category string  `json:"category"`
}

// NewRecord builds a normalized record from already-validated amount and date.
// Note and category whitespace is stripped; an empty category becomes
// DefaultCategory.
func NewRecord(amount float64, date, note, category string) Record {
	return Record{
		Amount:   amount,
		Date:     date,
		Note:     strings.TrimSpace(note),
		Category: NormalizeCategory(category),
	}
}

// NormalizeCategory strips whitespace and substitutes the default for an
// empty result.
func NormalizeCategory(category string) string {
	category = strings.TrimSpace(category)
	if category == "" {
		return DefaultCategory
	}
	return category
}

// Month returns the YYYY-MM portion of the record's date, used as the
// grouping key for monthly summaries.
func (r Record) Month() string {
	if len(r.Date) < 7 {
		return r.Date
	}
	return r.Date[:7]
}

// String renders the record the way it appears in listings.
func (r Record) String() string {
	return fmt.Sprintf("Date: %s, Amount: $%.2f, Category: %s, Note: %s",
		r.Date, r.Amount, r.Category, r.Note)
}
