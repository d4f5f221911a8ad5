package operator

import (
	"context"
	"errors"
	"io"
	"sync"
	"testing"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/carson-networks/finance-tracker/internal/operator/actions"
	"github.com/carson-networks/finance-tracker/internal/storage"
	"github.com/carson-networks/finance-tracker/internal/storage/transaction"
)

type fakeTx struct {
	mutex     sync.Mutex
	commits   int
	rollbacks int
	commitErr error
}

func (f *fakeTx) Commit(context.Context) error {
	f.mutex.Lock()
	defer f.mutex.Unlock()
	f.commits++
	return f.commitErr
}

func (f *fakeTx) Rollback(context.Context) error {
	f.mutex.Lock()
	defer f.mutex.Unlock()
	f.rollbacks++
	return nil
}

type fakeStorage struct {
	tx       *fakeTx
	writer   transaction.ITransactionWriter
	writeErr error
}

func (f *fakeStorage) Write(context.Context) (*storage.Writer, error) {
	if f.writeErr != nil {
		return nil, f.writeErr
	}
	return &storage.Writer{Tx: f.tx, Transactions: f.writer}, nil
}

func quietLogger() *logrus.Logger {
	logger := logrus.New()
	logger.Out = io.Discard
	return logger
}

func startDelegator(t *testing.T, s WriterSource) *OperatorDelegator {
	t.Helper()
	d := NewOperatorDelegator(s, 2, quietLogger())
	d.Start()
	t.Cleanup(d.Stop)
	return d
}

func TestProcess_CommitsOnSuccess(t *testing.T) {
	mockWriter := transaction.NewMockITransactionWriter(t)
	tx := &fakeTx{}
	d := startDelegator(t, &fakeStorage{tx: tx, writer: mockWriter})

	user := uuid.Must(uuid.NewV4())
	stored := &transaction.Transaction{ID: uuid.Must(uuid.NewV4()), UserID: user}
	create := &transaction.TransactionCreate{UserID: user, Type: "Debit", Amount: decimal.NewFromInt(5)}
	mockWriter.EXPECT().Insert(mock.Anything, create).Return(stored, nil)

	action := &actions.CreateTransaction{Create: create}
	require.NoError(t, d.Process(context.Background(), action))

	assert.Same(t, stored, action.Result)
	assert.Equal(t, 1, tx.commits)
	assert.Equal(t, 0, tx.rollbacks)
}

func TestProcess_RollsBackOnActionError(t *testing.T) {
	mockWriter := transaction.NewMockITransactionWriter(t)
	tx := &fakeTx{}
	d := startDelegator(t, &fakeStorage{tx: tx, writer: mockWriter})

	user := uuid.Must(uuid.NewV4())
	id := uuid.Must(uuid.NewV4())
	mockWriter.EXPECT().Delete(mock.Anything, user, id).Return(transaction.ErrNotFound)

	err := d.Process(context.Background(), &actions.DeleteTransaction{UserID: user, ID: id})

	assert.ErrorIs(t, err, transaction.ErrNotFound)
	assert.Equal(t, 0, tx.commits)
	assert.Equal(t, 1, tx.rollbacks)
}

func TestProcess_WriteError(t *testing.T) {
	d := startDelegator(t, &fakeStorage{writeErr: errors.New("connection refused")})

	err := d.Process(context.Background(), &actions.DeleteTransaction{})
	assert.EqualError(t, err, "connection refused")
}

func TestProcess_CommitError(t *testing.T) {
	mockWriter := transaction.NewMockITransactionWriter(t)
	tx := &fakeTx{commitErr: errors.New("serialization failure")}
	d := startDelegator(t, &fakeStorage{tx: tx, writer: mockWriter})

	update := &transaction.TransactionUpdate{}
	mockWriter.EXPECT().Update(mock.Anything, mock.Anything, mock.Anything, update).Return(&transaction.Transaction{}, nil)

	err := d.Process(context.Background(), &actions.UpdateTransaction{Update: update})
	assert.EqualError(t, err, "serialization failure")
}

func TestProcess_CancelledContext(t *testing.T) {
	d := startDelegator(t, &fakeStorage{tx: &fakeTx{}})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := d.Process(ctx, &actions.DeleteTransaction{})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestProcess_AfterStop(t *testing.T) {
	d := NewOperatorDelegator(&fakeStorage{tx: &fakeTx{}}, 1, quietLogger())
	d.Start()
	d.Stop()
	d.Stop()

	err := d.Process(context.Background(), &actions.DeleteTransaction{})
	assert.ErrorIs(t, err, ErrStopped)
}
