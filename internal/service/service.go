package service

import (
	"github.com/sirupsen/logrus"

	"github.com/carson-networks/finance-tracker/internal/events"
	"github.com/carson-networks/finance-tracker/internal/storage"
)

// Service holds all business logic services.
type Service struct {
	Transaction *TransactionService
	Analytics   *AnalyticsService
}

// NewService creates a new Service with the given storage.
func NewService(store *storage.Storage, op actionProcessor, publisher events.Publisher, cfg AnalyticsConfig, log *logrus.Logger) *Service {
	return &Service{
		Transaction: NewTransactionService(store, op, publisher, log),
		Analytics:   NewAnalyticsService(store, cfg, log),
	}
}
