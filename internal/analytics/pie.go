package analytics

import (
	"github.com/shopspring/decimal"

	"github.com/carson-networks/finance-tracker/internal/finance"
)

// IncomeLabel labels the bucket holding all credit transactions.
const IncomeLabel = "Income"

// Slice is one bucket of the income/expense split.
type Slice struct {
	Label string
	Value decimal.Decimal
	Color string
}

// Pie splits the transactions matching f into a single Income bucket and one
// bucket per expense category. Expense buckets keep the order in which their
// category first appears in txs. Buckets summing to zero are omitted.
func Pie(txs []finance.Transaction, f PieFilter) []Slice {
	income := decimal.Zero
	var order []finance.Category
	expenses := make(map[finance.Category]decimal.Decimal)

	for _, t := range sanitize(txs) {
		if !f.matches(t) {
			continue
		}
		switch {
		case t.IsCredit():
			income = income.Add(t.Amount)
		case t.IsDebit():
			sum, seen := expenses[t.Category]
			if !seen {
				order = append(order, t.Category)
				sum = decimal.Zero
			}
			expenses[t.Category] = sum.Add(t.Amount)
		}
	}

	slices := make([]Slice, 0, len(order)+1)
	if !income.IsZero() {
		slices = append(slices, Slice{Label: IncomeLabel, Value: income, Color: IncomeColor})
	}
	for i, category := range order {
		value := expenses[category]
		if value.IsZero() {
			continue
		}
		slices = append(slices, Slice{Label: string(category), Value: value, Color: ColorFor(i)})
	}
	return slices
}

// Total sums the values of the slices.
func Total(slices []Slice) decimal.Decimal {
	total := decimal.Zero
	for _, s := range slices {
		total = total.Add(s.Value)
	}
	return total
}
