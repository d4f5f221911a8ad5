package transaction

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/finance-tracker/internal/auth"
	"github.com/carson-networks/finance-tracker/internal/logging"
)

type DeleteTransactionInput struct {
	ID string `path:"id" doc:"Transaction UUID"`
}

type DeleteTransactionOutput struct{}

type transactionDeleter interface {
	DeleteTransaction(ctx context.Context, userID, id uuid.UUID) error
}

// DeleteTransactionHandler handles DELETE /v1/transactions/{id}.
type DeleteTransactionHandler struct {
	TransactionService transactionDeleter
}

func NewDeleteTransactionHandler(svc transactionDeleter) *DeleteTransactionHandler {
	return &DeleteTransactionHandler{TransactionService: svc}
}

func (h *DeleteTransactionHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID:   "delete-transaction",
		Method:        http.MethodDelete,
		Path:          "/v1/transactions/{id}",
		Summary:       "Delete transaction",
		Tags:          []string{"Transactions"},
		DefaultStatus: http.StatusNoContent,
	}, h.handle)
}

func (h *DeleteTransactionHandler) handle(ctx context.Context, input *DeleteTransactionInput) (*DeleteTransactionOutput, error) {
	userID, err := auth.UserFromContext(ctx)
	if err != nil {
		return nil, toHumaError(err, "failed to delete transaction")
	}
	id, err := parseID(input.ID)
	if err != nil {
		return nil, err
	}

	if err := h.TransactionService.DeleteTransaction(ctx, userID, id); err != nil {
		return nil, toHumaError(err, "failed to delete transaction")
	}

	logging.AddData(ctx, "transactionID", id.String())
	return &DeleteTransactionOutput{}, nil
}
