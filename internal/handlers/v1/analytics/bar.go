package analytics

import (
	"context"
	"strconv"

	"github.com/carson-networks/finance-tracker/internal/analytics"
	"github.com/carson-networks/finance-tracker/internal/logging"
)

type BarInput struct {
	Year string `query:"year" doc:"Four digit year, defaults to the current year"`
}

type Series struct {
	Label  string    `json:"label"`
	Values []float64 `json:"values" doc:"One value per month, January first"`
	Color  string    `json:"color"`
	Stack  string    `json:"stack" enum:"expenses,income"`
}

type BarResponseBody struct {
	Filter BarFilterBody `json:"filter"`
	Months []string      `json:"months"`
	Series []Series      `json:"series"`
}

type BarOutput struct {
	Body BarResponseBody
}

func (h *Handlers) bar(ctx context.Context, input *BarInput) (*BarOutput, error) {
	user, err := userID(ctx)
	if err != nil {
		return nil, err
	}
	year := input.Year
	if year == "" {
		year = strconv.Itoa(h.AnalyticsService.Now().Year())
	}
	filter, err := analytics.NewBarFilter(year)
	if err != nil {
		return nil, toHumaError(err, "invalid filter")
	}

	stopTimer := logging.StartTiming(ctx, "barMs")
	chart, err := h.AnalyticsService.Bar(ctx, user, filter)
	stopTimer()
	if err != nil {
		return nil, toHumaError(err, "failed to build bar chart")
	}

	body := BarResponseBody{
		Filter: BarFilterBody{Year: filter.Year},
		Months: chart.Months,
		Series: make([]Series, len(chart.Series)),
	}
	for i, s := range chart.Series {
		body.Series[i] = Series{Label: s.Label, Values: amounts(s.Values), Color: s.Color, Stack: s.Stack}
	}
	return &BarOutput{Body: body}, nil
}
