package analytics

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/carson-networks/finance-tracker/internal/analytics"
	"github.com/carson-networks/finance-tracker/internal/auth"
	"github.com/carson-networks/finance-tracker/internal/service"
)

// analyticsService is the part of the analytics service the handlers use.
type analyticsService interface {
	Options(ctx context.Context, userID uuid.UUID) (service.Options, error)
	Pie(ctx context.Context, userID uuid.UUID, f analytics.PieFilter) ([]analytics.Slice, error)
	Line(ctx context.Context, userID uuid.UUID, f analytics.LineFilter) (analytics.LineChart, error)
	Bar(ctx context.Context, userID uuid.UUID, f analytics.BarFilter) (analytics.BarChart, error)
	Insights(ctx context.Context, userID uuid.UUID, f analytics.LineFilter) ([]analytics.Insight, error)
	Now() time.Time
}

// Handlers serves the chart and insight endpoints.
type Handlers struct {
	AnalyticsService analyticsService
}

func NewHandlers(svc analyticsService) *Handlers {
	return &Handlers{AnalyticsService: svc}
}

// Register registers every analytics endpoint with the Huma API.
func (h *Handlers) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "analytics-options",
		Method:      http.MethodGet,
		Path:        "/v1/analytics/options",
		Summary:     "Filter options",
		Description: "Returns the values each chart filter accepts and the defaults for today.",
		Tags:        []string{"Analytics"},
	}, h.options)
	huma.Register(api, huma.Operation{
		OperationID: "analytics-pie",
		Method:      http.MethodGet,
		Path:        "/v1/analytics/pie",
		Summary:     "Income and expense split",
		Tags:        []string{"Analytics"},
	}, h.pie)
	huma.Register(api, huma.Operation{
		OperationID: "analytics-line",
		Method:      http.MethodGet,
		Path:        "/v1/analytics/line",
		Summary:     "Month spend against the yearly average",
		Tags:        []string{"Analytics"},
	}, h.line)
	huma.Register(api, huma.Operation{
		OperationID: "analytics-bar",
		Method:      http.MethodGet,
		Path:        "/v1/analytics/bar",
		Summary:     "Monthly income and expenses of a year",
		Tags:        []string{"Analytics"},
	}, h.bar)
	huma.Register(api, huma.Operation{
		OperationID: "analytics-insights",
		Method:      http.MethodGet,
		Path:        "/v1/analytics/insights",
		Summary:     "Spending insights for a month",
		Tags:        []string{"Analytics"},
	}, h.insights)
}

func userID(ctx context.Context) (uuid.UUID, error) {
	user, err := auth.UserFromContext(ctx)
	if err != nil {
		return uuid.Nil, huma.NewError(http.StatusUnauthorized, "unauthorized")
	}
	return user, nil
}

func toHumaError(err error, failure string) error {
	switch {
	case errors.Is(err, analytics.ErrInvalidFilter):
		return huma.NewError(http.StatusBadRequest, err.Error())
	case errors.Is(err, auth.ErrUnauthenticated):
		return huma.NewError(http.StatusUnauthorized, "unauthorized")
	default:
		return huma.NewError(http.StatusInternalServerError, failure, err)
	}
}

func amounts(values []decimal.Decimal) []float64 {
	out := make([]float64, len(values))
	for i, v := range values {
		out[i] = v.Round(2).InexactFloat64()
	}
	return out
}
