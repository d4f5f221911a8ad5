package analytics

import (
	"fmt"
	"slices"

	"github.com/shopspring/decimal"

	"github.com/carson-networks/finance-tracker/internal/finance"
)

// Divisor decides how a yearly total is turned into a monthly average.
type Divisor string

const (
	// DivisorPopulatedMonths divides by the number of distinct months of the
	// year that hold at least one transaction of any type.
	DivisorPopulatedMonths Divisor = "months"
	// DivisorCalendarMonths always divides by 12.
	DivisorCalendarMonths Divisor = "calendar"
)

// ParseDivisor accepts "months" or "calendar"; empty selects DivisorPopulatedMonths.
func ParseDivisor(value string) (Divisor, error) {
	switch Divisor(value) {
	case "", DivisorPopulatedMonths:
		return DivisorPopulatedMonths, nil
	case DivisorCalendarMonths:
		return DivisorCalendarMonths, nil
	default:
		return "", fmt.Errorf("unknown average divisor %q", value)
	}
}

// Months returns the divisor for year over the sanitized transactions.
func (d Divisor) Months(txs []finance.Transaction, year string) int {
	if d == DivisorCalendarMonths {
		return 12
	}
	return populatedMonths(txs, year)
}

// LineChart compares the spend of one month against the yearly monthly
// average, per expense category. Selected and Average are parallel to
// Categories.
type LineChart struct {
	Categories    []string
	Selected      []decimal.Decimal
	Average       []decimal.Decimal
	SelectedLabel string
	AverageLabel  string
	MonthsCounted int
}

const averageLabel = "Year's Average"

// Line builds the month-vs-average chart. The category axis holds every
// expense category seen in txs, sorted, regardless of the selected period.
func Line(txs []finance.Transaction, f LineFilter, divisor Divisor) LineChart {
	valid := sanitize(txs)
	categories := debitCategories(valid)

	month := f.monthPeriod()
	year := f.yearPeriod()
	monthSums := make(map[string]decimal.Decimal, len(categories))
	yearSums := make(map[string]decimal.Decimal, len(categories))
	for _, c := range categories {
		monthSums[c] = decimal.Zero
		yearSums[c] = decimal.Zero
	}
	for _, t := range valid {
		if !t.IsDebit() {
			continue
		}
		c := string(t.Category)
		if _, ok := yearSums[c]; !ok {
			continue
		}
		if year.Contains(t.Date) {
			yearSums[c] = yearSums[c].Add(t.Amount)
		}
		if month.Contains(t.Date) {
			monthSums[c] = monthSums[c].Add(t.Amount)
		}
	}

	months := divisor.Months(valid, f.Year)
	chart := LineChart{
		Categories:    categories,
		Selected:      make([]decimal.Decimal, len(categories)),
		Average:       make([]decimal.Decimal, len(categories)),
		SelectedLabel: fmt.Sprintf("%s %s Spending", f.MonthLabel(), f.Year),
		AverageLabel:  averageLabel,
		MonthsCounted: months,
	}
	for i, c := range categories {
		chart.Selected[i] = monthSums[c]
		chart.Average[i] = average(yearSums[c], months)
	}
	return chart
}

// debitCategories returns the sorted distinct categories of expense records,
// leaving out the reserved income category.
func debitCategories(txs []finance.Transaction) []string {
	return sortedCategories(txs, func(t finance.Transaction) bool {
		return t.IsDebit() && t.Category != finance.CategoryIncome
	})
}

// expenseCategories returns the sorted distinct categories of every debit
// record.
func expenseCategories(txs []finance.Transaction) []string {
	return sortedCategories(txs, finance.Transaction.IsDebit)
}

func sortedCategories(txs []finance.Transaction, keep func(finance.Transaction) bool) []string {
	seen := make(map[string]struct{})
	categories := []string{}
	for _, t := range txs {
		if !keep(t) {
			continue
		}
		c := string(t.Category)
		if _, ok := seen[c]; ok {
			continue
		}
		seen[c] = struct{}{}
		categories = append(categories, c)
	}
	slices.Sort(categories)
	return categories
}

func populatedMonths(txs []finance.Transaction, year string) int {
	period := finance.YearPeriod(year)
	months := make(map[string]struct{})
	for _, t := range txs {
		if period.Contains(t.Date) {
			months[finance.MonthOf(t.Date)] = struct{}{}
		}
	}
	return len(months)
}

func average(total decimal.Decimal, months int) decimal.Decimal {
	if months <= 0 {
		return decimal.Zero
	}
	return total.Div(decimal.NewFromInt(int64(months)))
}
