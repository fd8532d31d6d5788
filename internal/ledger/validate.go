package ledger

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/jmallory/coinpurse/internal/common"
	"github.com/jmallory/coinpurse/internal/model"
)

// ParseAmount parses a textual amount. The amount must be a finite number
// and strictly positive. ParseFloat accepts "NaN" and "Inf", neither of
// which can be stored (JSON has no encoding for them), so they are rejected
// here rather than left to poison the store.
func ParseAmount(raw string) (float64, error) {
	amount, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil || math.IsNaN(amount) || math.IsInf(amount, 0) {
		return 0, fmt.Errorf("%w: %q", common.ErrInvalidAmount, raw)
	}
	if amount <= 0 {
		return 0, fmt.Errorf("%w: %q", common.ErrNonPositiveAmount, raw)
	}
	return amount, nil
}

// ParseDate validates a date against strict YYYY-MM-DD calendar rules.
// Non-existent dates such as 2024-02-30 are rejected. The validated string
// is returned unchanged; records store dates as text.
func ParseDate(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if _, err := time.Parse(model.DateLayout, raw); err != nil {
		return "", fmt.Errorf("%w: %q", common.ErrInvalidDate, raw)
	}
	return raw, nil
}
