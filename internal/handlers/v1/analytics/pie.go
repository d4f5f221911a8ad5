package analytics

import (
	"context"
	"strconv"

	"github.com/carson-networks/finance-tracker/internal/analytics"
	"github.com/carson-networks/finance-tracker/internal/logging"
)

type PieInput struct {
	Year     string `query:"year" doc:"Four digit year, defaults to the current year"`
	Month    string `query:"month" doc:"Month label, month key or All"`
	Category string `query:"category" doc:"Category or All"`
	Type     string `query:"type" doc:"Credit, Debit or All"`
	Method   string `query:"method" doc:"Payment method or All"`
}

type Slice struct {
	Label string  `json:"label"`
	Value float64 `json:"value"`
	Color string  `json:"color"`
}

type PieResponseBody struct {
	Filter PieFilterBody `json:"filter"`
	Slices []Slice       `json:"slices"`
	Total  float64       `json:"total"`
}

type PieOutput struct {
	Body PieResponseBody
}

func (h *Handlers) parsePieInput(input *PieInput) (analytics.PieFilter, error) {
	year := input.Year
	if year == "" {
		year = strconv.Itoa(h.AnalyticsService.Now().Year())
	}
	return analytics.NewPieFilter(year, input.Month, input.Category, input.Type, input.Method)
}

func (h *Handlers) pie(ctx context.Context, input *PieInput) (*PieOutput, error) {
	user, err := userID(ctx)
	if err != nil {
		return nil, err
	}
	filter, err := h.parsePieInput(input)
	if err != nil {
		return nil, toHumaError(err, "invalid filter")
	}

	stopTimer := logging.StartTiming(ctx, "pieMs")
	slices, err := h.AnalyticsService.Pie(ctx, user, filter)
	stopTimer()
	if err != nil {
		return nil, toHumaError(err, "failed to build pie chart")
	}

	logging.AddData(ctx, "sliceCount", len(slices))
	body := PieResponseBody{
		Filter: pieFilterBody(filter),
		Slices: make([]Slice, len(slices)),
		Total:  analytics.Total(slices).Round(2).InexactFloat64(),
	}
	for i, s := range slices {
		body.Slices[i] = Slice{Label: s.Label, Value: s.Value.Round(2).InexactFloat64(), Color: s.Color}
	}
	return &PieOutput{Body: body}, nil
}
