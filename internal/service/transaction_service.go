package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/aarondl/opt/omit"
	"github.com/gofrs/uuid/v5"
	"github.com/sirupsen/logrus"

	"github.com/carson-networks/finance-tracker/internal/events"
	"github.com/carson-networks/finance-tracker/internal/finance"
	"github.com/carson-networks/finance-tracker/internal/operator/actions"
	"github.com/carson-networks/finance-tracker/internal/storage"
	"github.com/carson-networks/finance-tracker/internal/storage/transaction"
)

const (
	defaultLimit = 20
	maxLimit     = 100
)

// actionProcessor runs a write action in its own database transaction.
type actionProcessor interface {
	Process(ctx context.Context, action actions.IAction) error
}

// TransactionService handles transaction business logic.
type TransactionService struct {
	storage   *storage.Storage
	operator  actionProcessor
	publisher events.Publisher
	log       *logrus.Logger
}

// NewTransactionService creates a new TransactionService.
func NewTransactionService(store *storage.Storage, op actionProcessor, publisher events.Publisher, log *logrus.Logger) *TransactionService {
	return &TransactionService{
		storage:   store,
		operator:  op,
		publisher: publisher,
		log:       log,
	}
}

// CreateTransaction validates raw and stores it for userID.
func (s *TransactionService) CreateTransaction(ctx context.Context, userID uuid.UUID, raw finance.RawTransaction) (Transaction, error) {
	raw.ID = ""
	tx, err := finance.NormalizeTransaction(raw)
	if err != nil {
		return Transaction{}, fmt.Errorf("%w: %w", ErrInvalidTransaction, err)
	}

	action := &actions.CreateTransaction{
		Create: &transaction.TransactionCreate{
			UserID:          userID,
			Type:            string(tx.Type),
			Amount:          tx.Amount,
			Name:            tx.Name,
			Category:        string(tx.Category),
			TransactionDate: tx.Date,
			Method:          string(tx.Method),
			Comments:        tx.Comments,
		},
	}
	if err := s.operator.Process(ctx, action); err != nil {
		return Transaction{}, err
	}

	created, err := rowToTransaction(action.Result)
	if err != nil {
		return Transaction{}, err
	}
	s.publish(ctx, events.NewTransactionChanged(events.KindCreated, userID, created.ID, created.Date))
	return created, nil
}

// GetTransaction returns one transaction of userID.
func (s *TransactionService) GetTransaction(ctx context.Context, userID, id uuid.UUID) (Transaction, error) {
	row, err := s.storage.Transactions.FindByID(ctx, userID, id)
	if err != nil {
		return Transaction{}, err
	}
	return rowToTransaction(row)
}

// ListTransactions returns a page of the transactions of userID, newest
// first, using cursor-based pagination.
func (s *TransactionService) ListTransactions(ctx context.Context, userID uuid.UUID, listFilter TransactionListFilter, cursor *TransactionCursor) ([]Transaction, *TransactionCursor, error) {
	filter, err := storageFilter(userID, listFilter)
	if err != nil {
		return nil, nil, err
	}

	filter.Limit = defaultLimit
	if cursor != nil {
		if cursor.Limit > 0 {
			filter.Limit = min(cursor.Limit, maxLimit)
		}
		filter.Offset = cursor.Position
		if !cursor.MaxCreationTime.IsZero() {
			filter.MaxCreationTime = omit.From(cursor.MaxCreationTime)
		}
	}

	requestTime := time.Now().UTC()
	rows, err := s.storage.Transactions.List(ctx, filter)
	if err != nil {
		return nil, nil, err
	}

	if len(rows) == 0 {
		return nil, nil, nil
	}

	var nextCursor *TransactionCursor
	if len(rows) > filter.Limit {
		rows = rows[:filter.Limit]

		cursorMaxCreationTime := requestTime
		if maxCreationTime, ok := filter.MaxCreationTime.Get(); ok {
			cursorMaxCreationTime = maxCreationTime
		}

		nextCursor = &TransactionCursor{
			Position:        filter.Offset + filter.Limit,
			Limit:           filter.Limit,
			MaxCreationTime: cursorMaxCreationTime,
		}
	}

	converted := make([]Transaction, 0, len(rows))
	for _, row := range rows {
		tx, err := rowToTransaction(row)
		if err != nil {
			s.log.WithError(err).WithField("transactionID", row.ID.String()).Warn("TransactionService.ListTransactions.skipped")
			continue
		}
		converted = append(converted, tx)
	}

	return converted, nextCursor, nil
}

// UpdateTransaction applies patch to a transaction of userID.
func (s *TransactionService) UpdateTransaction(ctx context.Context, userID, id uuid.UUID, patch TransactionPatch) (Transaction, error) {
	existing, err := s.GetTransaction(ctx, userID, id)
	if err != nil {
		return Transaction{}, err
	}

	merged, err := finance.NormalizeTransaction(patch.apply(toRaw(existing.Transaction)))
	if err != nil {
		return Transaction{}, fmt.Errorf("%w: %w", ErrInvalidTransaction, err)
	}

	action := &actions.UpdateTransaction{
		UserID: userID,
		ID:     id,
		Update: storageUpdate(patch, merged),
	}
	if err := s.operator.Process(ctx, action); err != nil {
		return Transaction{}, err
	}

	updated, err := rowToTransaction(action.Result)
	if err != nil {
		return Transaction{}, err
	}
	s.publish(ctx, events.NewTransactionChanged(events.KindUpdated, userID, id, updated.Date))
	return updated, nil
}

// DeleteTransaction removes a transaction of userID.
func (s *TransactionService) DeleteTransaction(ctx context.Context, userID, id uuid.UUID) error {
	if err := s.operator.Process(ctx, &actions.DeleteTransaction{UserID: userID, ID: id}); err != nil {
		return err
	}

	s.publish(ctx, events.NewTransactionChanged(events.KindDeleted, userID, id, ""))
	return nil
}

// publish logs instead of failing: the write is already committed.
func (s *TransactionService) publish(ctx context.Context, msg events.TransactionChanged) {
	if err := s.publisher.PublishTransactionChanged(ctx, msg); err != nil {
		s.log.WithError(err).WithFields(logrus.Fields{
			"kind":          msg.Kind,
			"transactionID": msg.TransactionID.String(),
		}).Warn("TransactionService.publish")
	}
}

func storageFilter(userID uuid.UUID, f TransactionListFilter) (*transaction.TransactionFilter, error) {
	filter := &transaction.TransactionFilter{UserID: userID}

	if !isAll(f.Type) && !strings.EqualFold(f.Type, "Both") {
		txType, err := finance.ParseTransactionType(f.Type)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalidTransaction, err)
		}
		filter.Type = omit.From(string(txType))
	}
	if !isAll(f.Category) {
		category, err := finance.ParseCategory(f.Category)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalidTransaction, err)
		}
		filter.Category = omit.From(string(category))
	}
	if !isAll(f.Method) {
		method, err := finance.ParseMethod(f.Method)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalidTransaction, err)
		}
		filter.Method = omit.From(string(method))
	}
	if search := strings.TrimSpace(f.Search); search != "" {
		filter.Search = omit.From(search)
	}

	return filter, nil
}

// storageUpdate sets the normalized value of every field present in patch.
func storageUpdate(patch TransactionPatch, merged finance.Transaction) *transaction.TransactionUpdate {
	update := &transaction.TransactionUpdate{}
	if patch.Type.IsSet() {
		update.Type = omit.From(string(merged.Type))
	}
	if patch.Amount.IsSet() {
		update.Amount = omit.From(merged.Amount)
	}
	if patch.Name.IsSet() {
		update.Name = omit.From(merged.Name)
	}
	if patch.Category.IsSet() {
		update.Category = omit.From(string(merged.Category))
	}
	if patch.Date.IsSet() {
		update.TransactionDate = omit.From(merged.Date)
	}
	if patch.Method.IsSet() {
		update.Method = omit.From(string(merged.Method))
	}
	if patch.Comments.IsSet() {
		update.Comments = omit.From(merged.Comments)
	}
	return update
}

func isAll(s string) bool {
	s = strings.TrimSpace(s)
	return s == "" || strings.EqualFold(s, finance.All)
}

// IsValidationError reports whether err was caused by bad input.
func IsValidationError(err error) bool {
	return errors.Is(err, ErrInvalidTransaction)
}
