// Package ledger implements the query and aggregation engine over the
// expense store: input validation, mutations, filtered views, and summary
// totals. Every mutation persists the full sequence before returning.
package ledger

import (
	"log/slog"
	"strings"

	"github.com/jmallory/coinpurse/internal/model"
	"github.com/jmallory/coinpurse/internal/service"
)

// Ledger answers queries and applies mutations against a record store.
type Ledger struct {
	store service.Store
}

// New creates a ledger over the given store.
func New(store service.Store) *Ledger {
	return &Ledger{store: store}
}

// Len returns the number of records in the store. Callers use this to
// distinguish an empty ledger from a filter that matched nothing.
func (l *Ledger) Len() int {
	return l.store.Len()
}

// Add validates the raw amount and date, and on success appends a normalized
// record and persists the store. If either field is invalid nothing is
// appended and the validation error is returned.
func (l *Ledger) Add(amountRaw, dateRaw, note, category string) (model.Record, error) {
	amount, err := ParseAmount(amountRaw)
	if err != nil {
		return model.Record{}, err
	}
	date, err := ParseDate(dateRaw)
	if err != nil {
		return model.Record{}, err
	}

	record := model.NewRecord(amount, date, note, category)
	l.store.Append(record)
	if err := l.store.Save(); err != nil {
		return record, err
	}
	return record, nil
}

// Filter narrows a view over the store. Zero values mean "no constraint".
type Filter struct {
	Category string
	Date     string
}

// List returns records matching the filter, in store order. The category
// filter matches case-insensitively on exact equality; the date filter on
// exact string equality. An empty result is returned as an empty slice.
func (l *Ledger) List(f Filter) []model.Record {
	records := l.store.Records()

	filtered := make([]model.Record, 0, len(records))
	for _, r := range records {
		if f.Category != "" && !strings.EqualFold(r.Category, f.Category) {
			continue
		}
		if f.Date != "" && r.Date != f.Date {
			continue
		}
		filtered = append(filtered, r)
	}
	return filtered
}

// Changes carries the optional fields of an update. A nil field is "not
// supplied"; a pointer to an empty string is a supplied empty value (which,
// for category, normalizes back to the default).
type Changes struct {
	Amount   *string
	Date     *string
	Note     *string
	Category *string
}

// Update applies the supplied changes to the record at the given 1-based
// index and persists the store. An out-of-range index fails with no
// mutation. A supplied amount or date that fails validation is skipped with
// a warning and the prior value retained; this is deliberately laxer than
// Add, which rejects the whole record. The store is persisted even when no
// field was applied.
func (l *Ledger) Update(index int, changes Changes) (model.Record, error) {
	record, err := l.store.Get(index)
	if err != nil {
		return model.Record{}, err
	}

	if changes.Amount != nil {
		if amount, err := ParseAmount(*changes.Amount); err != nil {
			slog.Warn("skipping invalid amount, keeping prior value",
				"index", index, "amount", *changes.Amount, "error", err)
		} else {
			record.Amount = amount
		}
	}
	if changes.Date != nil {
		if date, err := ParseDate(*changes.Date); err != nil {
			slog.Warn("skipping invalid date, keeping prior value",
				"index", index, "date", *changes.Date, "error", err)
		} else {
			record.Date = date
		}
	}
	if changes.Note != nil {
		record.Note = strings.TrimSpace(*changes.Note)
	}
	if changes.Category != nil {
		record.Category = model.NormalizeCategory(*changes.Category)
	}

	if err := l.store.Replace(index, record); err != nil {
		return model.Record{}, err
	}
	if err := l.store.Save(); err != nil {
		return record, err
	}
	return record, nil
}

// Delete removes the record at the given 1-based index, shifting later
// records down by one, and persists the store. The removed record is
// returned so the caller can describe what was deleted.
func (l *Ledger) Delete(index int) (model.Record, error) {
	removed, err := l.store.Remove(index)
	if err != nil {
		return model.Record{}, err
	}
	if err := l.store.Save(); err != nil {
		return removed, err
	}
	return removed, nil
}
