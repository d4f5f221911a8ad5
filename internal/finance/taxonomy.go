package finance

import (
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"
)

// All is the wildcard value accepted by every filter dimension.
const All = "All"

var ErrUnknownMonth = errors.New("unknown month")

var monthLabels = []string{
	"Jan", "Feb", "Mar", "Apr", "May", "Jun",
	"Jul", "Aug", "Sep", "Oct", "Nov", "Dec",
}

var monthNames = []string{
	"January", "February", "March", "April", "May", "June",
	"July", "August", "September", "October", "November", "December",
}

// MonthLabels returns the twelve short month labels in calendar order.
func MonthLabels() []string {
	return append([]string(nil), monthLabels...)
}

// Categories returns the selectable expense categories in display order.
// The reserved Income category is not part of this list.
func Categories() []Category {
	return append([]Category(nil), categories...)
}

// TransactionTypes returns the transaction types in display order.
func TransactionTypes() []TransactionType {
	return []TransactionType{TransactionTypeCredit, TransactionTypeDebit}
}

// Methods returns the payment methods in display order.
func Methods() []Method {
	return append([]Method(nil), methods...)
}

// MonthLabelToKey converts a month label ("Jan" or "January", any case) to its
// zero-padded key ("01"). All maps to All.
func MonthLabelToKey(label string) (string, error) {
	trimmed := strings.TrimSpace(label)
	if strings.EqualFold(trimmed, All) {
		return All, nil
	}
	for i := range monthLabels {
		if strings.EqualFold(trimmed, monthLabels[i]) || strings.EqualFold(trimmed, monthNames[i]) {
			return monthKey(i + 1), nil
		}
	}
	return "", fmt.Errorf("%w: label %q", ErrUnknownMonth, label)
}

// MonthKeyToLabel converts a numeric month key ("01" or "1") to its short
// label. All maps to All. Keys outside 1-12 are rejected rather than
// defaulted.
func MonthKeyToLabel(key string) (string, error) {
	trimmed := strings.TrimSpace(key)
	if strings.EqualFold(trimmed, All) {
		return All, nil
	}
	n, err := strconv.Atoi(trimmed)
	if err != nil || n < 1 || n > 12 {
		return "", fmt.Errorf("%w: key %q", ErrUnknownMonth, key)
	}
	return monthLabels[n-1], nil
}

// NormalizeMonthKey accepts either a month key or a month label and returns
// the canonical zero-padded key, or All.
func NormalizeMonthKey(value string) (string, error) {
	if key, err := MonthLabelToKey(value); err == nil {
		return key, nil
	}
	if _, err := MonthKeyToLabel(value); err != nil {
		return "", err
	}
	n, _ := strconv.Atoi(strings.TrimSpace(value))
	return monthKey(n), nil
}

// YearOptions returns the distinct years present in the valid transactions,
// ascending. An empty set yields the current year only.
func YearOptions(txs []Transaction, now time.Time) []string {
	seen := make(map[string]struct{})
	for _, t := range txs {
		if !t.Valid() {
			continue
		}
		seen[t.Date[:4]] = struct{}{}
	}
	if len(seen) == 0 {
		return []string{strconv.Itoa(now.Year())}
	}

	years := make([]string, 0, len(seen))
	for y := range seen {
		years = append(years, y)
	}
	sort.Strings(years)
	return years
}

// IsYear reports whether s is a four digit year.
func IsYear(s string) bool {
	if len(s) != 4 {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

func monthKey(n int) string {
	return fmt.Sprintf("%02d", n)
}
