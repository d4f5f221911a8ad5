package service

import (
	"context"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/sirupsen/logrus"

	"github.com/carson-networks/finance-tracker/internal/analytics"
	"github.com/carson-networks/finance-tracker/internal/finance"
	"github.com/carson-networks/finance-tracker/internal/logging"
	"github.com/carson-networks/finance-tracker/internal/storage"
	"github.com/carson-networks/finance-tracker/internal/storage/transaction"
)

// AnalyticsConfig selects the averaging and insight policies.
type AnalyticsConfig struct {
	Divisor  analytics.Divisor
	Insights analytics.InsightConfig
}

// Options lists the values every filter control may take, plus the
// defaults for the current date.
type Options struct {
	Months     []string
	Years      []string
	Categories []finance.Category
	Types      []finance.TransactionType
	Methods    []finance.Method
	Pie        analytics.PieFilter
	Line       analytics.LineFilter
	Bar        analytics.BarFilter
}

// AnalyticsService runs the aggregation engine over a user's transactions.
type AnalyticsService struct {
	storage *storage.Storage
	config  AnalyticsConfig
	log     *logrus.Logger
	now     func() time.Time
}

func NewAnalyticsService(store *storage.Storage, cfg AnalyticsConfig, log *logrus.Logger) *AnalyticsService {
	if cfg.Divisor == "" {
		cfg.Divisor = analytics.DivisorPopulatedMonths
	}
	cfg.Insights.Divisor = cfg.Divisor
	return &AnalyticsService{
		storage: store,
		config:  cfg,
		log:     log,
		now:     time.Now,
	}
}

// Snapshot loads every transaction of userID. Rows that do not normalize
// are left out.
func (s *AnalyticsService) Snapshot(ctx context.Context, userID uuid.UUID) ([]finance.Transaction, error) {
	stopTimer := logging.StartTiming(ctx, "loadSnapshotMs")
	rows, err := s.storage.Transactions.List(ctx, &transaction.TransactionFilter{UserID: userID})
	stopTimer()
	if err != nil {
		return nil, err
	}

	txs := make([]finance.Transaction, 0, len(rows))
	for _, row := range rows {
		tx, err := rowToTransaction(row)
		if err != nil {
			s.log.WithError(err).WithField("transactionID", row.ID.String()).Warn("AnalyticsService.Snapshot.skipped")
			continue
		}
		txs = append(txs, tx.Transaction)
	}
	logging.AddData(ctx, "snapshotSize", len(txs))
	return txs, nil
}

func (s *AnalyticsService) Options(ctx context.Context, userID uuid.UUID) (Options, error) {
	txs, err := s.Snapshot(ctx, userID)
	if err != nil {
		return Options{}, err
	}

	now := s.now()
	return Options{
		Months:     finance.MonthLabels(),
		Years:      finance.YearOptions(txs, now),
		Categories: finance.Categories(),
		Types:      finance.TransactionTypes(),
		Methods:    finance.Methods(),
		Pie:        analytics.DefaultPieFilter(now),
		Line:       analytics.DefaultLineFilter(now),
		Bar:        analytics.DefaultBarFilter(now),
	}, nil
}

func (s *AnalyticsService) Pie(ctx context.Context, userID uuid.UUID, f analytics.PieFilter) ([]analytics.Slice, error) {
	txs, err := s.Snapshot(ctx, userID)
	if err != nil {
		return nil, err
	}
	return analytics.Pie(txs, f), nil
}

func (s *AnalyticsService) Line(ctx context.Context, userID uuid.UUID, f analytics.LineFilter) (analytics.LineChart, error) {
	txs, err := s.Snapshot(ctx, userID)
	if err != nil {
		return analytics.LineChart{}, err
	}
	return analytics.Line(txs, f, s.config.Divisor), nil
}

func (s *AnalyticsService) Bar(ctx context.Context, userID uuid.UUID, f analytics.BarFilter) (analytics.BarChart, error) {
	txs, err := s.Snapshot(ctx, userID)
	if err != nil {
		return analytics.BarChart{}, err
	}
	return analytics.Bar(txs, f), nil
}

func (s *AnalyticsService) Insights(ctx context.Context, userID uuid.UUID, f analytics.LineFilter) ([]analytics.Insight, error) {
	txs, err := s.Snapshot(ctx, userID)
	if err != nil {
		return nil, err
	}
	return analytics.Insights(txs, f, s.config.Insights), nil
}

// Now returns the service clock, used for filter defaults.
func (s *AnalyticsService) Now() time.Time {
	return s.now()
}
