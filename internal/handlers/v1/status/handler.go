package status

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/carson-networks/finance-tracker/internal/logging"
)

// pinger reports whether the database is reachable.
type pinger interface {
	Ping(ctx context.Context) error
}

type Handler struct {
	Storage pinger
}

func NewHandler(p pinger) Handler {
	return Handler{Storage: p}
}

func (h *Handler) Handler(w http.ResponseWriter, req *http.Request, logData *logging.LogData) error {
	if req.Method != http.MethodGet {
		w.WriteHeader(http.StatusBadRequest)
		return errors.New("status: method not GET")
	}

	ctx, cancel := context.WithTimeout(req.Context(), 2*time.Second)
	defer cancel()

	endTimer := logData.AddTiming("pingMs")
	err := h.Storage.Ping(ctx)
	endTimer()
	if err != nil {
		w.WriteHeader(http.StatusServiceUnavailable)
		return err
	}

	w.WriteHeader(http.StatusOK)
	return nil
}
