package analytics

import (
	"context"

	"github.com/carson-networks/finance-tracker/internal/logging"
)

type Insight struct {
	Kind     string `json:"kind" enum:"spend_vs_average,savings_rate,top_category"`
	Text     string `json:"text"`
	Polarity string `json:"polarity" enum:"favorable,unfavorable"`
}

type InsightsResponseBody struct {
	Filter   LineFilterBody `json:"filter"`
	Insights []Insight      `json:"insights"`
}

type InsightsOutput struct {
	Body InsightsResponseBody
}

func (h *Handlers) insights(ctx context.Context, input *LineInput) (*InsightsOutput, error) {
	user, err := userID(ctx)
	if err != nil {
		return nil, err
	}
	filter, err := h.parseLineInput(input.Year, input.Month)
	if err != nil {
		return nil, toHumaError(err, "invalid filter")
	}

	stopTimer := logging.StartTiming(ctx, "insightsMs")
	insights, err := h.AnalyticsService.Insights(ctx, user, filter)
	stopTimer()
	if err != nil {
		return nil, toHumaError(err, "failed to generate insights")
	}

	logging.AddData(ctx, "insightCount", len(insights))
	body := InsightsResponseBody{
		Filter:   lineFilterBody(filter),
		Insights: make([]Insight, len(insights)),
	}
	for i, in := range insights {
		body.Insights[i] = Insight{Kind: string(in.Kind), Text: in.Text, Polarity: string(in.Polarity)}
	}
	return &InsightsOutput{Body: body}, nil
}
