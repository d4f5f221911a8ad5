package analytics

import (
	"context"
	"fmt"

	"github.com/carson-networks/finance-tracker/internal/analytics"
	"github.com/carson-networks/finance-tracker/internal/logging"
)

type LineInput struct {
	Year  string `query:"year" doc:"Four digit year, defaults to the current year"`
	Month string `query:"month" doc:"Month label or key, defaults to the current month"`
}

type Dataset struct {
	Label  string    `json:"label"`
	Values []float64 `json:"values"`
}

type LineResponseBody struct {
	Filter        LineFilterBody `json:"filter"`
	Categories    []string       `json:"categories"`
	Selected      Dataset        `json:"selected"`
	Average       Dataset        `json:"average"`
	MonthsCounted int            `json:"monthsCounted" doc:"Divisor used for the yearly average"`
}

type LineOutput struct {
	Body LineResponseBody
}

// parseLineInput fills missing values from the current date.
func (h *Handlers) parseLineInput(year, month string) (analytics.LineFilter, error) {
	defaults := analytics.DefaultLineFilter(h.AnalyticsService.Now())
	if year == "" {
		year = defaults.Year
	}
	if month == "" {
		month = defaults.Month
	}
	return analytics.NewLineFilter(year, month)
}

func (h *Handlers) line(ctx context.Context, input *LineInput) (*LineOutput, error) {
	user, err := userID(ctx)
	if err != nil {
		return nil, err
	}
	filter, err := h.parseLineInput(input.Year, input.Month)
	if err != nil {
		return nil, toHumaError(err, "invalid filter")
	}

	stopTimer := logging.StartTiming(ctx, "lineMs")
	chart, err := h.AnalyticsService.Line(ctx, user, filter)
	stopTimer()
	if err != nil {
		return nil, toHumaError(err, fmt.Sprintf("failed to build line chart for %s-%s", filter.Year, filter.Month))
	}

	return &LineOutput{Body: LineResponseBody{
		Filter:        lineFilterBody(filter),
		Categories:    chart.Categories,
		Selected:      Dataset{Label: chart.SelectedLabel, Values: amounts(chart.Selected)},
		Average:       Dataset{Label: chart.AverageLabel, Values: amounts(chart.Average)},
		MonthsCounted: chart.MonthsCounted,
	}}, nil
}
