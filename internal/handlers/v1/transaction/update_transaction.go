package transaction

import (
	"context"
	"net/http"

	"github.com/aarondl/opt/omit"
	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/finance-tracker/internal/auth"
	"github.com/carson-networks/finance-tracker/internal/logging"
	"github.com/carson-networks/finance-tracker/internal/service"
)

// UpdateTransactionBody holds the fields to change. Absent fields keep
// their stored value.
type UpdateTransactionBody struct {
	Type     *string `json:"type,omitempty" doc:"Credit or Debit"`
	Amount   *string `json:"amount,omitempty" doc:"Non-negative decimal amount"`
	Name     *string `json:"name,omitempty"`
	Category *string `json:"category,omitempty"`
	Date     *string `json:"date,omitempty" doc:"Transaction date as YYYY-MM-DD"`
	Method   *string `json:"method,omitempty"`
	Comments *string `json:"comments,omitempty" maxLength:"500"`
}

type UpdateTransactionInput struct {
	ID   string `path:"id" doc:"Transaction UUID"`
	Body UpdateTransactionBody
}

type UpdateTransactionOutput struct {
	Body Transaction
}

type transactionUpdater interface {
	UpdateTransaction(ctx context.Context, userID, id uuid.UUID, patch service.TransactionPatch) (service.Transaction, error)
}

// UpdateTransactionHandler handles PATCH /v1/transactions/{id}.
type UpdateTransactionHandler struct {
	TransactionService transactionUpdater
}

func NewUpdateTransactionHandler(svc transactionUpdater) *UpdateTransactionHandler {
	return &UpdateTransactionHandler{TransactionService: svc}
}

func (h *UpdateTransactionHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "update-transaction",
		Method:      http.MethodPatch,
		Path:        "/v1/transactions/{id}",
		Summary:     "Update transaction",
		Description: "Changes the given fields of a transaction. The result is validated as a whole.",
		Tags:        []string{"Transactions"},
	}, h.handle)
}

func parseUpdateTransactionInput(input *UpdateTransactionInput) (uuid.UUID, service.TransactionPatch, error) {
	id, err := parseID(input.ID)
	if err != nil {
		return uuid.Nil, service.TransactionPatch{}, err
	}

	body := input.Body
	return id, service.TransactionPatch{
		Type:     omit.FromPtr(body.Type),
		Amount:   omit.FromPtr(body.Amount),
		Name:     omit.FromPtr(body.Name),
		Category: omit.FromPtr(body.Category),
		Date:     omit.FromPtr(body.Date),
		Method:   omit.FromPtr(body.Method),
		Comments: omit.FromPtr(body.Comments),
	}, nil
}

func (h *UpdateTransactionHandler) handle(ctx context.Context, input *UpdateTransactionInput) (*UpdateTransactionOutput, error) {
	userID, err := auth.UserFromContext(ctx)
	if err != nil {
		return nil, toHumaError(err, "failed to update transaction")
	}
	id, patch, err := parseUpdateTransactionInput(input)
	if err != nil {
		return nil, err
	}

	stopTimer := logging.StartTiming(ctx, "updateTransactionMs")
	updated, err := h.TransactionService.UpdateTransaction(ctx, userID, id, patch)
	stopTimer()
	if err != nil {
		return nil, toHumaError(err, "failed to update transaction")
	}

	logging.AddData(ctx, "transactionID", id.String())
	return &UpdateTransactionOutput{Body: fromService(updated)}, nil
}
