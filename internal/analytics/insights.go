package analytics

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/carson-networks/finance-tracker/internal/finance"
)

type Polarity string

const (
	Favorable   Polarity = "favorable"
	Unfavorable Polarity = "unfavorable"
)

type InsightKind string

const (
	InsightSpendVsAverage InsightKind = "spend_vs_average"
	InsightSavingsRate    InsightKind = "savings_rate"
	InsightTopCategory    InsightKind = "top_category"
)

type Insight struct {
	Kind     InsightKind
	Text     string
	Polarity Polarity
}

// InsightConfig holds the savings-rate bands and presentation settings.
type InsightConfig struct {
	StrongSavingsPercent   decimal.Decimal
	ModerateSavingsPercent decimal.Decimal
	IncludeTopCategory     bool
	Currency               string
	Divisor                Divisor
}

func DefaultInsightConfig() InsightConfig {
	return InsightConfig{
		StrongSavingsPercent:   decimal.NewFromInt(70),
		ModerateSavingsPercent: decimal.NewFromInt(50),
		Currency:               "Rs.",
		Divisor:                DivisorPopulatedMonths,
	}
}

var hundred = decimal.NewFromInt(100)

// Insights returns the observations for the month selected by f, in order:
// spend against the yearly average, the savings rate and, when enabled, the
// top expense category of the month.
func Insights(txs []finance.Transaction, f LineFilter, cfg InsightConfig) []Insight {
	valid := sanitize(txs)
	month := f.monthPeriod()
	year := f.yearPeriod()

	monthDebit, monthCredit, yearDebit := decimal.Zero, decimal.Zero, decimal.Zero
	monthByCategory := make(map[finance.Category]decimal.Decimal)
	yearByCategory := make(map[finance.Category]decimal.Decimal)
	for _, t := range valid {
		inMonth := month.Contains(t.Date)
		switch {
		case t.IsCredit() && inMonth:
			monthCredit = monthCredit.Add(t.Amount)
		case t.IsDebit():
			if year.Contains(t.Date) {
				yearDebit = yearDebit.Add(t.Amount)
				yearByCategory[t.Category] = yearByCategory[t.Category].Add(t.Amount)
			}
			if inMonth {
				monthDebit = monthDebit.Add(t.Amount)
				monthByCategory[t.Category] = monthByCategory[t.Category].Add(t.Amount)
			}
		}
	}

	months := cfg.Divisor.Months(valid, f.Year)
	insights := []Insight{
		spendInsight(monthDebit, average(yearDebit, months), cfg.Currency),
		savingsInsight(SavingsPercent(monthCredit, monthDebit), cfg),
	}
	if cfg.IncludeTopCategory {
		if top, ok := topCategory(monthByCategory); ok {
			insights = append(insights, topCategoryInsight(
				top, monthByCategory[top], average(yearByCategory[top], months), cfg.Currency))
		}
	}
	return insights
}

// SavingsPercent is the share of credit left after debit, in percent. It is
// zero when there is no credit.
func SavingsPercent(credit, debit decimal.Decimal) decimal.Decimal {
	if !credit.IsPositive() {
		return decimal.Zero
	}
	return credit.Sub(debit).Div(credit).Mul(hundred)
}

func spendInsight(monthDebit, yearAverage decimal.Decimal, currency string) Insight {
	if monthDebit.IsZero() {
		return Insight{
			Kind:     InsightSpendVsAverage,
			Text:     "You haven't spent anything this month, maximizing your savings!",
			Polarity: Favorable,
		}
	}
	if monthDebit.GreaterThan(yearAverage) {
		return Insight{
			Kind: InsightSpendVsAverage,
			Text: fmt.Sprintf(
				"This month, your spending of %s %s exceeded your yearly average of %s %s. Consider reviewing your expenses to boost your savings.",
				currency, monthDebit.StringFixed(2), currency, yearAverage.StringFixed(2)),
			Polarity: Unfavorable,
		}
	}
	return Insight{
		Kind: InsightSpendVsAverage,
		Text: fmt.Sprintf(
			"Wonderful! Your spending this month of %s %s was below your yearly average of %s %s, helping you save more.",
			currency, monthDebit.StringFixed(2), currency, yearAverage.StringFixed(2)),
		Polarity: Favorable,
	}
}

func savingsInsight(percent decimal.Decimal, cfg InsightConfig) Insight {
	switch {
	case percent.GreaterThan(cfg.StrongSavingsPercent):
		return Insight{
			Kind:     InsightSavingsRate,
			Text:     fmt.Sprintf("Congratulations! You've saved over %s%% of your income this month!", cfg.StrongSavingsPercent.String()),
			Polarity: Favorable,
		}
	case percent.GreaterThan(cfg.ModerateSavingsPercent):
		return Insight{
			Kind:     InsightSavingsRate,
			Text:     fmt.Sprintf("Great job! You've saved more than %s%% of your income this month.", cfg.ModerateSavingsPercent.String()),
			Polarity: Favorable,
		}
	default:
		return Insight{
			Kind:     InsightSavingsRate,
			Text:     "This month, your spending was higher. Consider saving a bit more next time to boost your financial goals.",
			Polarity: Unfavorable,
		}
	}
}

func topCategoryInsight(category finance.Category, spent, yearAverage decimal.Decimal, currency string) Insight {
	if spent.GreaterThan(yearAverage) {
		return Insight{
			Kind: InsightTopCategory,
			Text: fmt.Sprintf("You spent more this month on %s (%s %s) compared to your average of %s %s.",
				category, currency, spent.StringFixed(2), currency, yearAverage.StringFixed(2)),
			Polarity: Unfavorable,
		}
	}
	return Insight{
		Kind: InsightTopCategory,
		Text: fmt.Sprintf("You spent less this month on %s (%s %s) compared to your average of %s %s.",
			category, currency, spent.StringFixed(2), currency, yearAverage.StringFixed(2)),
		Polarity: Favorable,
	}
}

// topCategory picks the highest positive spend; ties go to the
// alphabetically first category.
func topCategory(spend map[finance.Category]decimal.Decimal) (finance.Category, bool) {
	var best finance.Category
	found := false
	for c, v := range spend {
		if !v.IsPositive() {
			continue
		}
		if !found || v.GreaterThan(spend[best]) || (v.Equal(spend[best]) && c < best) {
			best = c
			found = true
		}
	}
	return best, found
}
