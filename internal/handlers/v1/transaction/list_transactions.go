package transaction

import (
	"context"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/finance-tracker/internal/auth"
	"github.com/carson-networks/finance-tracker/internal/logging"
	"github.com/carson-networks/finance-tracker/internal/service"
)

// ListTransactionsCursor represents a pagination cursor in request and response bodies.
// It bundles position, limit, and maxCreationTime so subsequent pages use consistent parameters.
type ListTransactionsCursor struct {
	Position        int    `json:"position" minimum:"0" doc:"Numeric offset position for the next page"`
	Limit           int    `json:"limit" minimum:"1" maximum:"100" doc:"Page size used for this cursor"`
	MaxCreationTime string `json:"maxCreationTime,omitempty" doc:"Upper bound on createdAt locked in from the first page"`
}

// ListTransactionsBody is the request body for listing transactions.
type ListTransactionsBody struct {
	Search   string                  `json:"search,omitempty" doc:"Case-insensitive text matched against amount, name, category, method and comments"`
	Type     string                  `json:"type,omitempty" doc:"Credit, Debit, Both or All"`
	Category string                  `json:"category,omitempty" doc:"Category or All"`
	Method   string                  `json:"method,omitempty" doc:"Payment method or All"`
	Cursor   *ListTransactionsCursor `json:"cursor,omitempty" doc:"Cursor from a previous response to fetch the next page"`
}

// ListTransactionsInput is the Huma input for listing transactions.
type ListTransactionsInput struct {
	Body ListTransactionsBody
}

// ListTransactionsResponseBody is the response body for listing transactions.
type ListTransactionsResponseBody struct {
	Transactions []Transaction           `json:"transactions" doc:"Page of transactions"`
	NextCursor   *ListTransactionsCursor `json:"nextCursor,omitempty" doc:"Cursor to fetch the next page, absent on the last page"`
}

// ListTransactionsOutput is the Huma output for listing transactions.
type ListTransactionsOutput struct {
	Body ListTransactionsResponseBody
}

// transactionLister is the interface for listing transactions.
type transactionLister interface {
	ListTransactions(ctx context.Context, userID uuid.UUID, filter service.TransactionListFilter, cursor *service.TransactionCursor) ([]service.Transaction, *service.TransactionCursor, error)
}

// ListTransactionsHandler handles POST /v1/transactions/list.
type ListTransactionsHandler struct {
	TransactionService transactionLister
}

// NewListTransactionsHandler creates a new ListTransactionsHandler.
func NewListTransactionsHandler(svc transactionLister) *ListTransactionsHandler {
	return &ListTransactionsHandler{TransactionService: svc}
}

// Register registers the list transactions endpoint with the Huma API.
func (h *ListTransactionsHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "list-transactions",
		Method:      http.MethodPost,
		Path:        "/v1/transactions/list",
		Summary:     "List transactions",
		Description: "Returns the caller's transactions, newest first, using cursor-based pagination.",
		Tags:        []string{"Transactions"},
	}, h.handle)
}

// parseListTransactionsInput parses and validates the API input.
// When a cursor is provided, limit and maxCreationTime come from it.
// Without a cursor, the service uses its default limit.
func parseListTransactionsInput(input *ListTransactionsInput) (service.TransactionListFilter, *service.TransactionCursor, error) {
	filter := service.TransactionListFilter{
		Search:   input.Body.Search,
		Type:     input.Body.Type,
		Category: input.Body.Category,
		Method:   input.Body.Method,
	}
	if input.Body.Cursor == nil {
		return filter, nil, nil
	}

	if input.Body.Cursor.Position < 0 {
		return filter, nil, huma.NewError(http.StatusBadRequest, "cursor position must be non-negative")
	}

	var maxCreationTime time.Time
	if input.Body.Cursor.MaxCreationTime != "" {
		parsed, err := time.Parse(time.RFC3339Nano, input.Body.Cursor.MaxCreationTime)
		if err != nil {
			return filter, nil, huma.NewError(http.StatusBadRequest, "invalid cursor maxCreationTime", err)
		}
		maxCreationTime = parsed
	}

	return filter, &service.TransactionCursor{
		Position:        input.Body.Cursor.Position,
		Limit:           input.Body.Cursor.Limit,
		MaxCreationTime: maxCreationTime,
	}, nil
}

func (h *ListTransactionsHandler) handle(ctx context.Context, input *ListTransactionsInput) (*ListTransactionsOutput, error) {
	userID, err := auth.UserFromContext(ctx)
	if err != nil {
		return nil, toHumaError(err, "failed to list transactions")
	}
	filter, requestCursor, err := parseListTransactionsInput(input)
	if err != nil {
		return nil, err
	}

	stopTimer := logging.StartTiming(ctx, "listTransactionsMs")
	transactions, nextCursor, err := h.TransactionService.ListTransactions(ctx, userID, filter, requestCursor)
	stopTimer()
	if err != nil {
		return nil, toHumaError(err, "failed to list transactions")
	}

	logging.AddData(ctx, "transactionCount", len(transactions))

	resp := ListTransactionsResponseBody{
		Transactions: make([]Transaction, len(transactions)),
	}
	for i, tx := range transactions {
		resp.Transactions[i] = fromService(tx)
	}

	if nextCursor != nil {
		resp.NextCursor = &ListTransactionsCursor{
			Position:        nextCursor.Position,
			Limit:           nextCursor.Limit,
			MaxCreationTime: nextCursor.MaxCreationTime.Format(time.RFC3339Nano),
		}
	}

	return &ListTransactionsOutput{Body: resp}, nil
}
