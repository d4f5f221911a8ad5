package analytics

import (
	"github.com/shopspring/decimal"

	"github.com/carson-networks/finance-tracker/internal/finance"
)

const (
	StackExpenses = "expenses"
	StackIncome   = "income"
)

// Series is one stacked row of the bar chart, parallel to BarChart.Months.
type Series struct {
	Label  string
	Values []decimal.Decimal
	Color  string
	Stack  string
}

// BarChart is the month-by-month income and expense matrix of one year.
type BarChart struct {
	Months []string
	Series []Series
}

// Bar builds the twelve-month matrix for f.Year: one expense series per
// sorted category of debit records, Income included when spent from,
// and one income series. Series that are zero in
// every month are left out.
func Bar(txs []finance.Transaction, f BarFilter) BarChart {
	valid := sanitize(txs)
	categories := expenseCategories(valid)

	expenses := make(map[string][]decimal.Decimal, len(categories))
	for _, c := range categories {
		expenses[c] = zeroes(12)
	}
	income := zeroes(12)

	for i := range 12 {
		period := finance.MonthPeriod(f.Year, monthKeyAt(i))
		for _, t := range valid {
			if !period.Contains(t.Date) {
				continue
			}
			switch {
			case t.IsCredit():
				income[i] = income[i].Add(t.Amount)
			case t.IsDebit():
				if row, ok := expenses[string(t.Category)]; ok {
					row[i] = row[i].Add(t.Amount)
				}
			}
		}
	}

	chart := BarChart{Months: finance.MonthLabels(), Series: []Series{}}
	for i, c := range categories {
		if allZero(expenses[c]) {
			continue
		}
		chart.Series = append(chart.Series, Series{
			Label:  c,
			Values: expenses[c],
			Color:  ColorFor(i),
			Stack:  StackExpenses,
		})
	}
	if !allZero(income) {
		chart.Series = append(chart.Series, Series{
			Label:  IncomeLabel,
			Values: income,
			Color:  IncomeColor,
			Stack:  StackIncome,
		})
	}
	return chart
}

func monthKeyAt(i int) string {
	key, _ := finance.MonthLabelToKey(finance.MonthLabels()[i])
	return key
}

func zeroes(n int) []decimal.Decimal {
	values := make([]decimal.Decimal, n)
	for i := range values {
		values[i] = decimal.Zero
	}
	return values
}

func allZero(values []decimal.Decimal) bool {
	for _, v := range values {
		if !v.IsZero() {
			return false
		}
	}
	return true
}
