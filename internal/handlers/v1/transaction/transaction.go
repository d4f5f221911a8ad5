package transaction

import (
	"errors"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/finance-tracker/internal/auth"
	"github.com/carson-networks/finance-tracker/internal/service"
)

// Transaction is the API response model for a transaction.
// It is used only for responses, not for request bodies.
type Transaction struct {
	ID        string `json:"id" doc:"Transaction UUID"`
	Type      string `json:"type" enum:"Credit,Debit" doc:"Credit for income, Debit for expense"`
	Amount    string `json:"amount" doc:"Decimal amount"`
	Name      string `json:"name" doc:"Name of the transaction"`
	Category  string `json:"category" doc:"Spending category, or Income"`
	Date      string `json:"date" doc:"Transaction date as YYYY-MM-DD"`
	Method    string `json:"method" doc:"Payment method"`
	Comments  string `json:"comments" doc:"Free-text comments"`
	CreatedAt string `json:"createdAt" doc:"RFC3339 creation time"`
	UpdatedAt string `json:"updatedAt" doc:"RFC3339 last update time"`
}

func fromService(tx service.Transaction) Transaction {
	return Transaction{
		ID:        tx.ID.String(),
		Type:      string(tx.Type),
		Amount:    tx.Amount.StringFixed(2),
		Name:      tx.Name,
		Category:  string(tx.Category),
		Date:      tx.Date,
		Method:    string(tx.Method),
		Comments:  tx.Comments,
		CreatedAt: tx.CreatedAt.Format(time.RFC3339),
		UpdatedAt: tx.UpdatedAt.Format(time.RFC3339),
	}
}

func parseID(id string) (uuid.UUID, error) {
	parsed, err := uuid.FromString(id)
	if err != nil {
		return uuid.Nil, huma.NewError(http.StatusBadRequest, "invalid transaction id", err)
	}
	return parsed, nil
}

// toHumaError maps service errors onto HTTP statuses. failure is the
// message used for unexpected errors.
func toHumaError(err error, failure string) error {
	switch {
	case errors.Is(err, auth.ErrUnauthenticated):
		return huma.NewError(http.StatusUnauthorized, "unauthorized")
	case service.IsValidationError(err):
		return huma.NewError(http.StatusBadRequest, err.Error())
	case errors.Is(err, service.ErrNotFound):
		return huma.NewError(http.StatusNotFound, "transaction not found")
	default:
		return huma.NewError(http.StatusInternalServerError, failure, err)
	}
}
