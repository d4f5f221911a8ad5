package analytics

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/carson-networks/finance-tracker/internal/finance"
)

func TestInsights_ScenarioD_Empty(t *testing.T) {
	insights := Insights(nil, LineFilter{Year: "2025", Month: "05"}, DefaultInsightConfig())

	require.Len(t, insights, 2)
	assert.Equal(t, InsightSpendVsAverage, insights[0].Kind)
	assert.Equal(t, Favorable, insights[0].Polarity)
	assert.Contains(t, insights[0].Text, "haven't spent anything")

	assert.Equal(t, InsightSavingsRate, insights[1].Kind)
	assert.Equal(t, Unfavorable, insights[1].Polarity)
}

func TestInsights_SpendAboveAverage(t *testing.T) {
	txs := []finance.Transaction{
		debit(100, finance.CategoryFood, "2025-04-02"),
		debit(500, finance.CategoryFood, "2025-05-02"),
		credit(1000, "2025-05-01"),
	}

	insights := Insights(txs, LineFilter{Year: "2025", Month: "05"}, DefaultInsightConfig())

	require.Len(t, insights, 2)
	assert.Equal(t, Unfavorable, insights[0].Polarity)
	assert.Equal(t,
		"This month, your spending of Rs. 500.00 exceeded your yearly average of Rs. 300.00. Consider reviewing your expenses to boost your savings.",
		insights[0].Text)
	assert.Equal(t, Unfavorable, insights[1].Polarity)
}

func TestInsights_SpendBelowAverage(t *testing.T) {
	txs := []finance.Transaction{
		debit(900, finance.CategoryRent, "2025-04-02"),
		debit(100, finance.CategoryFood, "2025-05-02"),
	}
	cfg := DefaultInsightConfig()
	cfg.Currency = "$"

	insights := Insights(txs, LineFilter{Year: "2025", Month: "05"}, cfg)

	assert.Equal(t, Favorable, insights[0].Polarity)
	assert.Equal(t,
		"Wonderful! Your spending this month of $ 100.00 was below your yearly average of $ 500.00, helping you save more.",
		insights[0].Text)
}

func TestInsights_SavingsBands(t *testing.T) {
	cases := []struct {
		name     string
		debit    int64
		polarity Polarity
		contains string
	}{
		{"strong", 200, Favorable, "over 70%"},
		{"moderate", 400, Favorable, "more than 50%"},
		{"exactly fifty", 500, Unfavorable, "spending was higher"},
		{"overspent", 1500, Unfavorable, "spending was higher"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			txs := []finance.Transaction{
				credit(1000, "2025-05-01"),
				debit(tc.debit, finance.CategoryShopping, "2025-05-02"),
			}

			insights := Insights(txs, LineFilter{Year: "2025", Month: "05"}, DefaultInsightConfig())

			require.Len(t, insights, 2)
			assert.Equal(t, tc.polarity, insights[1].Polarity)
			assert.Contains(t, insights[1].Text, tc.contains)
		})
	}
}

func TestSavingsPercent(t *testing.T) {
	assert.True(t, SavingsPercent(decimal.Zero, decimal.NewFromInt(10)).IsZero())
	assert.True(t, SavingsPercent(decimal.NewFromInt(200), decimal.NewFromInt(50)).Equal(decimal.NewFromInt(75)))
}

func TestInsights_TopCategory(t *testing.T) {
	txs := []finance.Transaction{
		debit(100, finance.CategoryFood, "2025-04-02"),
		debit(300, finance.CategoryFood, "2025-05-02"),
		debit(50, finance.CategoryTravel, "2025-05-03"),
	}
	cfg := DefaultInsightConfig()
	cfg.IncludeTopCategory = true

	insights := Insights(txs, LineFilter{Year: "2025", Month: "05"}, cfg)

	require.Len(t, insights, 3)
	assert.Equal(t, InsightTopCategory, insights[2].Kind)
	assert.Equal(t, Unfavorable, insights[2].Polarity)
	assert.Equal(t,
		"You spent more this month on Food (Rs. 300.00) compared to your average of Rs. 200.00.",
		insights[2].Text)
}

func TestInsights_TopCategoryOmittedWithoutSpend(t *testing.T) {
	cfg := DefaultInsightConfig()
	cfg.IncludeTopCategory = true

	insights := Insights([]finance.Transaction{credit(10, "2025-05-01")}, LineFilter{Year: "2025", Month: "05"}, cfg)
	assert.Len(t, insights, 2)
}

func TestTopCategory_TieBreak(t *testing.T) {
	c, ok := topCategory(map[finance.Category]decimal.Decimal{
		finance.CategoryTravel: decimal.NewFromInt(5),
		finance.CategoryFood:   decimal.NewFromInt(5),
	})
	assert.True(t, ok)
	assert.Equal(t, finance.CategoryFood, c)
}
