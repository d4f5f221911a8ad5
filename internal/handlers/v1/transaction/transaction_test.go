package transaction

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"testing"
	"time"

	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/carson-networks/finance-tracker/internal/auth"
	"github.com/carson-networks/finance-tracker/internal/finance"
	"github.com/carson-networks/finance-tracker/internal/service"
)

const authHeader = "Authorization: Bearer secret"

var testUser = uuid.Must(uuid.FromString("7b0c7a52-4f43-4c55-9c41-2f8d7b8d2a10"))

// mockTransactionService is a mock for every transaction consumer interface.
type mockTransactionService struct {
	mock.Mock
}

func (m *mockTransactionService) CreateTransaction(ctx context.Context, userID uuid.UUID, raw finance.RawTransaction) (service.Transaction, error) {
	args := m.Called(ctx, userID, raw)
	tx, _ := args.Get(0).(service.Transaction)
	return tx, args.Error(1)
}

func (m *mockTransactionService) GetTransaction(ctx context.Context, userID, id uuid.UUID) (service.Transaction, error) {
	args := m.Called(ctx, userID, id)
	tx, _ := args.Get(0).(service.Transaction)
	return tx, args.Error(1)
}

func (m *mockTransactionService) ListTransactions(ctx context.Context, userID uuid.UUID, filter service.TransactionListFilter, cursor *service.TransactionCursor) ([]service.Transaction, *service.TransactionCursor, error) {
	args := m.Called(ctx, userID, filter, cursor)
	txs, _ := args.Get(0).([]service.Transaction)
	next, _ := args.Get(1).(*service.TransactionCursor)
	return txs, next, args.Error(2)
}

func (m *mockTransactionService) UpdateTransaction(ctx context.Context, userID, id uuid.UUID, patch service.TransactionPatch) (service.Transaction, error) {
	args := m.Called(ctx, userID, id, patch)
	tx, _ := args.Get(0).(service.Transaction)
	return tx, args.Error(1)
}

func (m *mockTransactionService) DeleteTransaction(ctx context.Context, userID, id uuid.UUID) error {
	return m.Called(ctx, userID, id).Error(0)
}

// newTestAPI registers every transaction handler behind bearer auth.
func newTestAPI(t *testing.T, svc *mockTransactionService) humatest.TestAPI {
	t.Helper()
	log := logrus.New()
	log.SetOutput(io.Discard)

	_, api := humatest.New(t)
	api.UseMiddleware(auth.Middleware(api, auth.NewTokenVerifier(map[string]uuid.UUID{"secret": testUser}), log))
	NewCreateTransactionHandler(svc).Register(api)
	NewGetTransactionHandler(svc).Register(api)
	NewListTransactionsHandler(svc).Register(api)
	NewUpdateTransactionHandler(svc).Register(api)
	NewDeleteTransactionHandler(svc).Register(api)
	return api
}

func sampleTransaction(name string) service.Transaction {
	return service.Transaction{
		Transaction: finance.Transaction{
			ID:       uuid.Must(uuid.NewV4()),
			Type:     finance.TransactionTypeDebit,
			Amount:   decimal.RequireFromString("12.5"),
			Name:     name,
			Category: finance.CategoryFood,
			Date:     "2025-06-01",
			Method:   finance.MethodUPI,
		},
		CreatedAt: time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC),
		UpdatedAt: time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC),
	}
}

// -- create --

func TestHTTP_CreateTransaction_Success(t *testing.T) {
	created := sampleTransaction("Coffee")
	mockSvc := new(mockTransactionService)
	mockSvc.On("CreateTransaction", mock.Anything, testUser, finance.RawTransaction{
		Type: "debit", Amount: "12.50", Name: "Coffee", Category: "Food", Date: "2025-06-01", Method: "UPI",
	}).Return(created, nil)

	resp := newTestAPI(t, mockSvc).Post("/v1/transactions", authHeader, CreateTransactionBody{
		Type: "debit", Amount: "12.50", Name: "Coffee", Category: "Food", Date: "2025-06-01", Method: "UPI",
	})

	assert.Equal(t, http.StatusCreated, resp.Code)
	var body Transaction
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, created.ID.String(), body.ID)
	assert.Equal(t, "12.50", body.Amount)
	assert.Equal(t, "Debit", body.Type)
	mockSvc.AssertExpectations(t)
}

func TestHTTP_CreateTransaction_ValidationError(t *testing.T) {
	mockSvc := new(mockTransactionService)
	mockSvc.On("CreateTransaction", mock.Anything, testUser, mock.Anything).
		Return(nil, fmt.Errorf("%w: %w", service.ErrInvalidTransaction, finance.ErrInvalidMethod))

	resp := newTestAPI(t, mockSvc).Post("/v1/transactions", authHeader, CreateTransactionBody{
		Type: "Debit", Amount: "1", Name: "x", Category: "Food", Date: "2025-06-01", Method: "Cheque",
	})

	assert.Equal(t, http.StatusBadRequest, resp.Code)
}

func TestHTTP_CreateTransaction_MissingRequiredFields(t *testing.T) {
	mockSvc := new(mockTransactionService)

	// Huma schema validation rejects the request before the handler runs.
	resp := newTestAPI(t, mockSvc).Post("/v1/transactions", authHeader, map[string]any{
		"type": "Debit",
	})

	assert.Equal(t, http.StatusUnprocessableEntity, resp.Code)
	mockSvc.AssertNotCalled(t, "CreateTransaction", mock.Anything, mock.Anything, mock.Anything)
}

func TestHTTP_CreateTransaction_Unauthenticated(t *testing.T) {
	mockSvc := new(mockTransactionService)

	resp := newTestAPI(t, mockSvc).Post("/v1/transactions", CreateTransactionBody{
		Type: "Debit", Amount: "1", Name: "x", Category: "Food", Date: "2025-06-01", Method: "UPI",
	})

	assert.Equal(t, http.StatusUnauthorized, resp.Code)
	mockSvc.AssertNotCalled(t, "CreateTransaction", mock.Anything, mock.Anything, mock.Anything)
}

func TestHTTP_CreateTransaction_ServiceError(t *testing.T) {
	mockSvc := new(mockTransactionService)
	mockSvc.On("CreateTransaction", mock.Anything, testUser, mock.Anything).Return(nil, errors.New("db down"))

	resp := newTestAPI(t, mockSvc).Post("/v1/transactions", authHeader, CreateTransactionBody{
		Type: "Debit", Amount: "1", Name: "x", Category: "Food", Date: "2025-06-01", Method: "UPI",
	})

	assert.Equal(t, http.StatusInternalServerError, resp.Code)
}

// -- get --

func TestHTTP_GetTransaction(t *testing.T) {
	tx := sampleTransaction("Lunch")
	mockSvc := new(mockTransactionService)
	mockSvc.On("GetTransaction", mock.Anything, testUser, tx.ID).Return(tx, nil)

	resp := newTestAPI(t, mockSvc).Get("/v1/transactions/"+tx.ID.String(), authHeader)

	assert.Equal(t, http.StatusOK, resp.Code)
	var body Transaction
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "Lunch", body.Name)
	assert.Equal(t, "2025-06-01", body.Date)
}

func TestHTTP_GetTransaction_NotFound(t *testing.T) {
	id := uuid.Must(uuid.NewV4())
	mockSvc := new(mockTransactionService)
	mockSvc.On("GetTransaction", mock.Anything, testUser, id).Return(nil, service.ErrNotFound)

	resp := newTestAPI(t, mockSvc).Get("/v1/transactions/"+id.String(), authHeader)

	assert.Equal(t, http.StatusNotFound, resp.Code)
}

func TestHTTP_GetTransaction_InvalidID(t *testing.T) {
	resp := newTestAPI(t, new(mockTransactionService)).Get("/v1/transactions/not-a-uuid", authHeader)

	assert.Equal(t, http.StatusBadRequest, resp.Code)
}

// -- list --

func TestParseListTransactionsInput_NoCursor(t *testing.T) {
	filter, cursor, err := parseListTransactionsInput(&ListTransactionsInput{
		Body: ListTransactionsBody{Search: "rice", Type: "Both"},
	})

	assert.NoError(t, err)
	assert.Nil(t, cursor)
	assert.Equal(t, "rice", filter.Search)
	assert.Equal(t, "Both", filter.Type)
}

func TestParseListTransactionsInput_WithCursor(t *testing.T) {
	cursorMaxTime := "2025-06-15T08:00:00Z"

	_, cursor, err := parseListTransactionsInput(&ListTransactionsInput{
		Body: ListTransactionsBody{
			Cursor: &ListTransactionsCursor{Position: 40, Limit: 10, MaxCreationTime: cursorMaxTime},
		},
	})

	require.NoError(t, err)
	expectedMax, _ := time.Parse(time.RFC3339, cursorMaxTime)
	require.NotNil(t, cursor)
	assert.Equal(t, 40, cursor.Position)
	assert.Equal(t, 10, cursor.Limit)
	assert.True(t, expectedMax.Equal(cursor.MaxCreationTime))
}

func TestParseListTransactionsInput_InvalidCursorMaxCreationTime(t *testing.T) {
	_, _, err := parseListTransactionsInput(&ListTransactionsInput{
		Body: ListTransactionsBody{
			Cursor: &ListTransactionsCursor{Limit: 10, MaxCreationTime: "not-a-date"},
		},
	})

	assert.Error(t, err)
}

func TestHTTP_ListTransactions_WithNextCursor(t *testing.T) {
	maxCreation := time.Date(2025, 6, 15, 8, 0, 0, 0, time.UTC)
	mockSvc := new(mockTransactionService)
	mockSvc.On("ListTransactions", mock.Anything, testUser,
		service.TransactionListFilter{Search: "coffee", Method: "UPI"},
		(*service.TransactionCursor)(nil),
	).Return(
		[]service.Transaction{sampleTransaction("Coffee")},
		&service.TransactionCursor{Position: 20, Limit: 20, MaxCreationTime: maxCreation},
		nil,
	)

	resp := newTestAPI(t, mockSvc).Post("/v1/transactions/list", authHeader, ListTransactionsBody{
		Search: "coffee", Method: "UPI",
	})

	assert.Equal(t, http.StatusOK, resp.Code)
	var body ListTransactionsResponseBody
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	require.Len(t, body.Transactions, 1)
	require.NotNil(t, body.NextCursor)
	assert.Equal(t, 20, body.NextCursor.Position)
	assert.Equal(t, "2025-06-15T08:00:00Z", body.NextCursor.MaxCreationTime)
}

func TestHTTP_ListTransactions_LastPage(t *testing.T) {
	mockSvc := new(mockTransactionService)
	mockSvc.On("ListTransactions", mock.Anything, testUser, mock.Anything, mock.Anything).Return(nil, nil, nil)

	resp := newTestAPI(t, mockSvc).Post("/v1/transactions/list", authHeader, ListTransactionsBody{})

	assert.Equal(t, http.StatusOK, resp.Code)
	var body ListTransactionsResponseBody
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Empty(t, body.Transactions)
	assert.Nil(t, body.NextCursor)
}

// -- update --

func TestParseUpdateTransactionInput_OnlyPresentFields(t *testing.T) {
	name := "Market"
	id := uuid.Must(uuid.NewV4())

	parsedID, patch, err := parseUpdateTransactionInput(&UpdateTransactionInput{
		ID:   id.String(),
		Body: UpdateTransactionBody{Name: &name},
	})

	require.NoError(t, err)
	assert.Equal(t, id, parsedID)
	assert.Equal(t, "Market", patch.Name.GetOrZero())
	assert.True(t, patch.Amount.IsUnset())
	assert.True(t, patch.Comments.IsUnset())
}

func TestHTTP_UpdateTransaction(t *testing.T) {
	updated := sampleTransaction("Market")
	mockSvc := new(mockTransactionService)
	mockSvc.On("UpdateTransaction", mock.Anything, testUser, updated.ID, mock.MatchedBy(func(p service.TransactionPatch) bool {
		return p.Name.GetOrZero() == "Market" && p.Type.IsUnset()
	})).Return(updated, nil)

	resp := newTestAPI(t, mockSvc).Patch("/v1/transactions/"+updated.ID.String(), authHeader, map[string]any{
		"name": "Market",
	})

	assert.Equal(t, http.StatusOK, resp.Code)
	mockSvc.AssertExpectations(t)
}

// -- delete --

func TestHTTP_DeleteTransaction(t *testing.T) {
	id := uuid.Must(uuid.NewV4())
	mockSvc := new(mockTransactionService)
	mockSvc.On("DeleteTransaction", mock.Anything, testUser, id).Return(nil)

	resp := newTestAPI(t, mockSvc).Delete("/v1/transactions/"+id.String(), authHeader)

	assert.Equal(t, http.StatusNoContent, resp.Code)
	mockSvc.AssertExpectations(t)
}

func TestHTTP_DeleteTransaction_NotFound(t *testing.T) {
	id := uuid.Must(uuid.NewV4())
	mockSvc := new(mockTransactionService)
	mockSvc.On("DeleteTransaction", mock.Anything, testUser, id).Return(service.ErrNotFound)

	resp := newTestAPI(t, mockSvc).Delete("/v1/transactions/"+id.String(), authHeader)

	assert.Equal(t, http.StatusNotFound, resp.Code)
}
