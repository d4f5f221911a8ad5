package transaction

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/finance-tracker/internal/auth"
	"github.com/carson-networks/finance-tracker/internal/finance"
	"github.com/carson-networks/finance-tracker/internal/logging"
	"github.com/carson-networks/finance-tracker/internal/service"
)

// CreateTransactionBody is the request body for creating a transaction.
type CreateTransactionBody struct {
	Type     string `json:"type" required:"true" doc:"Credit or Debit, case-insensitive"`
	Amount   string `json:"amount" required:"true" doc:"Non-negative decimal amount"`
	Name     string `json:"name" required:"true" doc:"Name of the transaction"`
	Category string `json:"category" required:"true" doc:"Spending category, or Income"`
	Date     string `json:"date" required:"true" doc:"Transaction date as YYYY-MM-DD"`
	Method   string `json:"method" required:"true" doc:"UPI, Card, Cash or Net Banking"`
	Comments string `json:"comments,omitempty" maxLength:"500" doc:"Optional comments"`
}

// CreateTransactionInput is the Huma input for creating a transaction.
type CreateTransactionInput struct {
	Body CreateTransactionBody
}

// CreateTransactionOutput is the Huma output for creating a transaction.
type CreateTransactionOutput struct {
	Body Transaction
}

// transactionCreator is the interface for creating transactions.
type transactionCreator interface {
	CreateTransaction(ctx context.Context, userID uuid.UUID, raw finance.RawTransaction) (service.Transaction, error)
}

// CreateTransactionHandler handles POST /v1/transactions.
type CreateTransactionHandler struct {
	TransactionService transactionCreator
}

// NewCreateTransactionHandler creates a new CreateTransactionHandler.
func NewCreateTransactionHandler(svc transactionCreator) *CreateTransactionHandler {
	return &CreateTransactionHandler{TransactionService: svc}
}

// Register registers the create transaction endpoint with the Huma API.
func (h *CreateTransactionHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID:   "create-transaction",
		Method:        http.MethodPost,
		Path:          "/v1/transactions",
		Summary:       "Create transaction",
		Description:   "Validates and stores a new income or expense transaction.",
		Tags:          []string{"Transactions"},
		DefaultStatus: http.StatusCreated,
	}, h.handle)
}

func parseCreateTransactionInput(input *CreateTransactionInput) finance.RawTransaction {
	return finance.RawTransaction{
		Type:     input.Body.Type,
		Amount:   input.Body.Amount,
		Name:     input.Body.Name,
		Category: input.Body.Category,
		Date:     input.Body.Date,
		Method:   input.Body.Method,
		Comments: input.Body.Comments,
	}
}

func (h *CreateTransactionHandler) handle(ctx context.Context, input *CreateTransactionInput) (*CreateTransactionOutput, error) {
	userID, err := auth.UserFromContext(ctx)
	if err != nil {
		return nil, toHumaError(err, "failed to create transaction")
	}

	stopTimer := logging.StartTiming(ctx, "createTransactionMs")
	created, err := h.TransactionService.CreateTransaction(ctx, userID, parseCreateTransactionInput(input))
	stopTimer()
	if err != nil {
		return nil, toHumaError(err, "failed to create transaction")
	}

	logging.AddData(ctx, "transactionID", created.ID.String())
	return &CreateTransactionOutput{Body: fromService(created)}, nil
}
