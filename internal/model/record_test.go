package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewRecord(t *testing.T) {
	tests := []struct {
		name         string
		note         string
		category     string
		wantNote     string
		wantCategory string
	}{
		{
			name:         "fields are trimmed",
			note:         "  lunch with sam  ",
			category:     " Food ",
			wantNote:     "lunch with sam",
			wantCategory: "Food",
		},
		{
			name:         "empty category becomes default",
			note:         "",
			category:     "",
			wantNote:     "",
			wantCategory: DefaultCategory,
		},
		{
			name:         "whitespace-only category becomes default",
			note:         "bus ticket",
			category:     "   ",
			wantNote:     "bus ticket",
			wantCategory: DefaultCategory,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			record := NewRecord(12.50, "2024-03-01", tt.note, tt.category)

			assert.Equal(t, 12.50, record.Amount)
			assert.Equal(t, "2024-03-01", record.Date)
			assert.Equal(t, tt.wantNote, record.Note)
			assert.Equal(t, tt.wantCategory, record.Category)
		})
	}
}

func TestRecordMonth(t *testing.T) {
	record := Record{Date: "2024-01-05"}
	assert.Equal(t, "2024-01", record.Month())
}

func TestRecordString(t *testing.T) {
	record := Record{Amount: 7.5, Date: "2024-02-01", Note: "coffee", Category: "Food"}
	assert.Equal(t, "Date: 2024-02-01, Amount: $7.50, Category: Food, Note: coffee", record.String())
}
