package ledger

import (
	"sort"

	"github.com/jmallory/coinpurse/internal/common"
)

// GroupTotal is one aggregation bucket: a grouping key and the summed amount.
type GroupTotal struct {
	Key    string
	Amount float64
}

// Summary holds the aggregated totals over the full store. Group slices are
// sorted by key in ascending order; Go maps carry no order, so the ordering
// is part of the returned type.
type Summary struct {
	Categories []GroupTotal
	Months     []GroupTotal
	Total      float64
}

// Summary computes the grand total, totals by category, and totals by
// calendar month (the YYYY-MM prefix of each date). An empty store returns
// common.ErrNoRecords.
func (l *Ledger) Summary() (Summary, error) {
	records := l.store.Records()
	if len(records) == 0 {
		return Summary{}, common.ErrNoRecords
	}

	var summary Summary
	byCategory := make(map[string]float64)
	byMonth := make(map[string]float64)
	for _, r := range records {
		summary.Total += r.Amount
		byCategory[r.Category] += r.Amount
		byMonth[r.Month()] += r.Amount
	}

	summary.Categories = sortedTotals(byCategory)
	summary.Months = sortedTotals(byMonth)
	return summary, nil
}

func sortedTotals(groups map[string]float64) []GroupTotal {
	totals := make([]GroupTotal, 0, len(groups))
	for key, amount := range groups {
		totals = append(totals, GroupTotal{Key: key, Amount: amount})
	}
	sort.Slice(totals, func(i, j int) bool {
		return totals[i].Key < totals[j].Key
	})
	return totals
}
