package ledger

import (
	"path/filepath"
	"testing"

	"github.com/jmallory/coinpurse/internal/common"
	"github.com/jmallory/coinpurse/internal/model"
	"github.com/jmallory/coinpurse/internal/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestLedger(t *testing.T) *Ledger {
	t.Helper()

	store, err := storage.NewJSONStore(filepath.Join(t.TempDir(), "expenses.json"))
	require.NoError(t, err)
	_, err = store.Load()
	require.NoError(t, err)

	return New(store)
}

func mustAdd(t *testing.T, l *Ledger, amount, date, note, category string) model.Record {
	t.Helper()

	record, err := l.Add(amount, date, note, category)
	require.NoError(t, err)
	return record
}

func TestLedgerAdd(t *testing.T) {
	l := newTestLedger(t)

	record := mustAdd(t, l, "10.50", "2024-01-05", "  groceries ", "")

	assert.Equal(t, 1, l.Len())
	assert.Equal(t, 10.50, record.Amount)
	assert.Equal(t, "2024-01-05", record.Date)
	assert.Equal(t, "groceries", record.Note)
	assert.Equal(t, model.DefaultCategory, record.Category)
}

func TestLedgerAddRejectsInvalidInput(t *testing.T) {
	tests := []struct {
		wantErr error
		name    string
		amount  string
		date    string
	}{
		{name: "non-numeric amount", amount: "abc", date: "2024-01-05", wantErr: common.ErrInvalidAmount},
		{name: "zero amount", amount: "0", date: "2024-01-05", wantErr: common.ErrNonPositiveAmount},
		{name: "negative amount", amount: "-3.50", date: "2024-01-05", wantErr: common.ErrNonPositiveAmount},
		{name: "NaN amount", amount: "NaN", date: "2024-01-05", wantErr: common.ErrInvalidAmount},
		{name: "infinite amount", amount: "Inf", date: "2024-01-05", wantErr: common.ErrInvalidAmount},
		{name: "invalid date", amount: "5", date: "2024-02-30", wantErr: common.ErrInvalidDate},
		{name: "garbage date", amount: "5", date: "not-a-date", wantErr: common.ErrInvalidDate},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := newTestLedger(t)

			_, err := l.Add(tt.amount, tt.date, "note", "Food")

			assert.ErrorIs(t, err, tt.wantErr)
			assert.Equal(t, 0, l.Len(), "nothing may be appended on validation failure")
		})
	}
}

// A rejected non-finite amount must leave the store fully usable: nothing
// appended, and later adds still persist. JSON cannot encode NaN, so a
// record carrying one would make every subsequent save fail.
func TestLedgerAddAfterRejectedNonFiniteAmount(t *testing.T) {
	l := newTestLedger(t)

	_, err := l.Add("NaN", "2024-01-05", "note", "Food")
	assert.ErrorIs(t, err, common.ErrInvalidAmount)
	assert.Equal(t, 0, l.Len())

	mustAdd(t, l, "5", "2024-01-05", "note", "Food")
	assert.Equal(t, 1, l.Len())
}

func TestLedgerListFilters(t *testing.T) {
	l := newTestLedger(t)
	mustAdd(t, l, "10", "2024-01-05", "", "Food")
	mustAdd(t, l, "5", "2024-01-20", "", "food")
	mustAdd(t, l, "7", "2024-02-01", "", "Travel")

	t.Run("no filter returns everything", func(t *testing.T) {
		assert.Len(t, l.List(Filter{}), 3)
	})

	t.Run("category filter is case-insensitive", func(t *testing.T) {
		matched := l.List(Filter{Category: "FOOD"})
		require.Len(t, matched, 2)
		assert.Equal(t, "Food", matched[0].Category)
		assert.Equal(t, "food", matched[1].Category)
	})

	t.Run("date filter is exact", func(t *testing.T) {
		matched := l.List(Filter{Date: "2024-02-01"})
		require.Len(t, matched, 1)
		assert.Equal(t, "Travel", matched[0].Category)
	})

	t.Run("filters compose", func(t *testing.T) {
		assert.Empty(t, l.List(Filter{Category: "Food", Date: "2024-02-01"}))
	})

	t.Run("no match returns empty slice", func(t *testing.T) {
		assert.Empty(t, l.List(Filter{Category: "Rent"}))
	})
}

func TestLedgerUpdate(t *testing.T) {
	str := func(s string) *string { return &s }

	t.Run("note-only change leaves other fields alone", func(t *testing.T) {
		l := newTestLedger(t)
		mustAdd(t, l, "10", "2024-01-05", "old note", "Food")

		record, err := l.Update(1, Changes{Note: str("new note")})

		require.NoError(t, err)
		assert.Equal(t, "new note", record.Note)
		assert.Equal(t, 10.0, record.Amount)
		assert.Equal(t, "2024-01-05", record.Date)
		assert.Equal(t, "Food", record.Category)
	})

	t.Run("out of range index mutates nothing", func(t *testing.T) {
		l := newTestLedger(t)
		mustAdd(t, l, "10", "2024-01-05", "note", "Food")

		_, err := l.Update(2, Changes{Note: str("new")})

		assert.ErrorIs(t, err, common.ErrIndexOutOfRange)
		assert.Equal(t, "note", l.List(Filter{})[0].Note)
	})

	t.Run("no supplied fields is a successful no-op save", func(t *testing.T) {
		l := newTestLedger(t)
		original := mustAdd(t, l, "10", "2024-01-05", "note", "Food")

		record, err := l.Update(1, Changes{})

		require.NoError(t, err)
		assert.Equal(t, original, record)
	})

	t.Run("empty category normalizes to default", func(t *testing.T) {
		l := newTestLedger(t)
		mustAdd(t, l, "10", "2024-01-05", "note", "Food")

		record, err := l.Update(1, Changes{Category: str("  ")})

		require.NoError(t, err)
		assert.Equal(t, model.DefaultCategory, record.Category)
	})
}

// Update deliberately skips an invalid optional amount or date and keeps the
// prior value, where Add would reject the whole record. The asymmetry is
// part of the contract.
func TestLedgerUpdateSkipsInvalidOptionalFields(t *testing.T) {
	str := func(s string) *string { return &s }

	l := newTestLedger(t)
	mustAdd(t, l, "10", "2024-01-05", "note", "Food")

	record, err := l.Update(1, Changes{
		Amount: str("not-a-number"),
		Date:   str("2024-02-30"),
		Note:   str("updated"),
	})

	require.NoError(t, err, "invalid optional fields must not fail the update")
	assert.Equal(t, 10.0, record.Amount, "invalid amount is skipped")
	assert.Equal(t, "2024-01-05", record.Date, "invalid date is skipped")
	assert.Equal(t, "updated", record.Note, "valid fields still apply")
}

func TestLedgerDelete(t *testing.T) {
	t.Run("removes the targeted record and preserves order", func(t *testing.T) {
		l := newTestLedger(t)
		mustAdd(t, l, "1", "2024-01-01", "first", "")
		mustAdd(t, l, "2", "2024-01-02", "second", "")
		mustAdd(t, l, "3", "2024-01-03", "third", "")

		removed, err := l.Delete(2)

		require.NoError(t, err)
		assert.Equal(t, "second", removed.Note)

		remaining := l.List(Filter{})
		require.Len(t, remaining, 2)
		assert.Equal(t, "first", remaining[0].Note)
		assert.Equal(t, "third", remaining[1].Note)
	})

	t.Run("out of range index fails", func(t *testing.T) {
		l := newTestLedger(t)

		_, err := l.Delete(1)

		assert.ErrorIs(t, err, common.ErrIndexOutOfRange)
	})
}

func TestLedgerSummary(t *testing.T) {
	l := newTestLedger(t)
	mustAdd(t, l, "10", "2024-01-05", "", "Food")
	mustAdd(t, l, "5", "2024-01-20", "", "Food")
	mustAdd(t, l, "7", "2024-02-01", "", "Travel")

	summary, err := l.Summary()
	require.NoError(t, err)

	assert.InDelta(t, 22.00, summary.Total, 0.001)
	assert.Equal(t, []GroupTotal{
		{Key: "Food", Amount: 15.00},
		{Key: "Travel", Amount: 7.00},
	}, summary.Categories)
	assert.Equal(t, []GroupTotal{
		{Key: "2024-01", Amount: 15.00},
		{Key: "2024-02", Amount: 7.00},
	}, summary.Months)
}

func TestLedgerSummaryEmptyStore(t *testing.T) {
	l := newTestLedger(t)

	_, err := l.Summary()

	assert.ErrorIs(t, err, common.ErrNoRecords)
}
