package api

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humago"
	"github.com/sirupsen/logrus"

	"github.com/carson-networks/finance-tracker/internal/auth"
	analyticshandlers "github.com/carson-networks/finance-tracker/internal/handlers/v1/analytics"
	"github.com/carson-networks/finance-tracker/internal/handlers/v1/status"
	"github.com/carson-networks/finance-tracker/internal/handlers/v1/transaction"
	"github.com/carson-networks/finance-tracker/internal/logging"
	"github.com/carson-networks/finance-tracker/internal/service"
	"github.com/carson-networks/finance-tracker/internal/storage"
)

const shutdownTimeout = 30 * time.Second

type Rest struct {
	Logger   *logrus.Logger
	Port     string
	Storage  *storage.Storage
	Service  *service.Service
	Verifier *auth.TokenVerifier
}

// Handler builds the HTTP routes: /status on the plain mux and every /v1
// operation through huma with request logging and bearer auth.
func (r *Rest) Handler() http.Handler {
	mux := http.NewServeMux()

	statusHandler := status.NewHandler(r.Storage)
	mux.HandleFunc("/status", logging.LoggingWrapper("Status", r.Logger, statusHandler.Handler))

	config := huma.DefaultConfig("Finance Tracker API", "1.0.0")
	api := humago.New(mux, config)
	api.UseMiddleware(logging.Middleware(r.Logger))
	api.UseMiddleware(auth.Middleware(api, r.Verifier, r.Logger))

	transactions := r.Service.Transaction
	transaction.NewCreateTransactionHandler(transactions).Register(api)
	transaction.NewGetTransactionHandler(transactions).Register(api)
	transaction.NewListTransactionsHandler(transactions).Register(api)
	transaction.NewUpdateTransactionHandler(transactions).Register(api)
	transaction.NewDeleteTransactionHandler(transactions).Register(api)
	analyticshandlers.NewHandlers(r.Service.Analytics).Register(api)

	return mux
}

// Serve listens until ctx is cancelled, then shuts the server down.
func (r *Rest) Serve(ctx context.Context) error {
	server := http.Server{
		Addr:              ":" + r.Port,
		Handler:           r.Handler(),
		ReadTimeout:       time.Duration(30) * time.Second,
		WriteTimeout:      time.Duration(30) * time.Second,
		IdleTimeout:       time.Duration(10) * time.Second,
		ReadHeaderTimeout: time.Duration(10) * time.Second,
	}

	go func() {
		<-ctx.Done()
		r.Logger.Info("HttpServer.Serve.shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			r.Logger.WithError(err).Error("HttpServer.Serve.shutdown error")
		}
	}()

	r.Logger.WithField("port", r.Port).Info("HttpServer.Serve.listening")
	err := server.ListenAndServe()
	if err != nil && !errors.Is(err, http.ErrServerClosed) {
		r.Logger.WithError(err).Error("HttpServer.Serve.listen error")
		return err
	}
	return nil
}
