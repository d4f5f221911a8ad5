package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/sirupsen/logrus"

	"github.com/carson-networks/finance-tracker/api"
	"github.com/carson-networks/finance-tracker/internal/analytics"
	"github.com/carson-networks/finance-tracker/internal/auth"
	"github.com/carson-networks/finance-tracker/internal/config"
	"github.com/carson-networks/finance-tracker/internal/events"
	"github.com/carson-networks/finance-tracker/internal/logging"
	"github.com/carson-networks/finance-tracker/internal/operator"
	"github.com/carson-networks/finance-tracker/internal/service"
	"github.com/carson-networks/finance-tracker/internal/storage"
)

func main() {
	envConfig, err := config.ProcessEnvironmentVariables()
	if err != nil {
		logrus.WithError(err).Fatal("config.ProcessEnvironmentVariables")
		return
	}

	logger, err := logging.SetupLogging(envConfig.LogLevel)
	if err != nil {
		logrus.WithError(err).Fatal("logging.SetupLogging")
		return
	}
	logger.Info("finance-tracker starting")

	if err := run(envConfig, logger); err != nil {
		logger.WithError(err).Error("finance-tracker stopped with error")
		os.Exit(1)
	}
	logger.Info("finance-tracker stopped")
}

func run(envConfig *config.Config, logger *logrus.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	dbStorage, err := storage.NewStorage(envConfig)
	if err != nil {
		return err
	}
	defer dbStorage.Close()

	tokens, err := envConfig.Tokens()
	if err != nil {
		return err
	}
	if len(tokens) == 0 {
		logger.Warn("API_TOKENS is empty, every /v1 request will be rejected")
	}

	publisher, err := newPublisher(envConfig, logger)
	if err != nil {
		return err
	}
	defer publisher.Close()

	delegator := operator.NewOperatorDelegator(dbStorage, envConfig.OperatorWorkers, logger)
	delegator.Start()
	defer delegator.Stop()

	divisor, err := analytics.ParseDivisor(envConfig.AverageDivisor)
	if err != nil {
		return err
	}
	insightConfig := analytics.DefaultInsightConfig()
	insightConfig.IncludeTopCategory = envConfig.InsightsTopCategory
	insightConfig.Currency = envConfig.InsightsCurrency

	svc := service.NewService(dbStorage, delegator, publisher, service.AnalyticsConfig{
		Divisor:  divisor,
		Insights: insightConfig,
	}, logger)

	httpRest := api.Rest{
		Logger:   logger,
		Port:     envConfig.Port,
		Storage:  dbStorage,
		Service:  svc,
		Verifier: auth.NewTokenVerifier(tokens),
	}
	return httpRest.Serve(ctx)
}

func newPublisher(envConfig *config.Config, logger *logrus.Logger) (events.Publisher, error) {
	if envConfig.AMQPURL == "" {
		logger.Info("AMQP_URL not set, transaction events are disabled")
		return events.NoopPublisher{}, nil
	}
	publisher, err := events.NewAMQPPublisher(envConfig.AMQPURL, envConfig.AMQPExchange, logger)
	if err != nil {
		return nil, err
	}
	return publisher, nil
}
