package storage

import (
	"context"

	"github.com/stephenafamo/bob"

	"github.com/carson-networks/finance-tracker/internal/storage/transaction"
)

// Committer ends a database transaction.
type Committer interface {
	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error
}

type Writer struct {
	Tx           Committer
	Transactions transaction.ITransactionWriter
}

func NewWriter(tx bob.Tx) *Writer {
	return &Writer{
		Tx:           tx,
		Transactions: transaction.NewWriter(tx),
	}
}

func (w *Writer) Commit(ctx context.Context) error {
	return w.Tx.Commit(ctx)
}

func (w *Writer) Rollback(ctx context.Context) error {
	return w.Tx.Rollback(ctx)
}
