package analytics

import (
	"context"

	"github.com/carson-networks/finance-tracker/internal/analytics"
	"github.com/carson-networks/finance-tracker/internal/logging"
)

type PieFilterBody struct {
	Year     string `json:"year"`
	Month    string `json:"month" doc:"Month key 01-12 or All"`
	Category string `json:"category"`
	Type     string `json:"type"`
	Method   string `json:"method"`
}

type LineFilterBody struct {
	Year  string `json:"year"`
	Month string `json:"month" doc:"Month key 01-12"`
}

type BarFilterBody struct {
	Year string `json:"year"`
}

type DefaultFilters struct {
	Pie  PieFilterBody  `json:"pie"`
	Line LineFilterBody `json:"line"`
	Bar  BarFilterBody  `json:"bar"`
}

type OptionsResponseBody struct {
	Months     []string       `json:"months" doc:"Short month labels, January first"`
	Years      []string       `json:"years" doc:"Years holding at least one transaction, ascending"`
	Categories []string       `json:"categories"`
	Types      []string       `json:"types"`
	Methods    []string       `json:"methods"`
	Defaults   DefaultFilters `json:"defaults"`
}

type OptionsInput struct{}

type OptionsOutput struct {
	Body OptionsResponseBody
}

func pieFilterBody(f analytics.PieFilter) PieFilterBody {
	return PieFilterBody{Year: f.Year, Month: f.Month, Category: f.Category, Type: f.Type, Method: f.Method}
}

func lineFilterBody(f analytics.LineFilter) LineFilterBody {
	return LineFilterBody{Year: f.Year, Month: f.Month}
}

func (h *Handlers) options(ctx context.Context, _ *OptionsInput) (*OptionsOutput, error) {
	user, err := userID(ctx)
	if err != nil {
		return nil, err
	}

	stopTimer := logging.StartTiming(ctx, "optionsMs")
	opts, err := h.AnalyticsService.Options(ctx, user)
	stopTimer()
	if err != nil {
		return nil, toHumaError(err, "failed to load filter options")
	}

	body := OptionsResponseBody{
		Months:     opts.Months,
		Years:      opts.Years,
		Categories: make([]string, len(opts.Categories)),
		Types:      make([]string, len(opts.Types)),
		Methods:    make([]string, len(opts.Methods)),
		Defaults: DefaultFilters{
			Pie:  pieFilterBody(opts.Pie),
			Line: lineFilterBody(opts.Line),
			Bar:  BarFilterBody{Year: opts.Bar.Year},
		},
	}
	for i, c := range opts.Categories {
		body.Categories[i] = string(c)
	}
	for i, t := range opts.Types {
		body.Types[i] = string(t)
	}
	for i, m := range opts.Methods {
		body.Methods[i] = string(m)
	}
	return &OptionsOutput{Body: body}, nil
}
