package actions

import (
	"context"

	"github.com/carson-networks/finance-tracker/internal/storage"
	"github.com/carson-networks/finance-tracker/internal/storage/transaction"
)

type CreateTransaction struct {
	Create *transaction.TransactionCreate

	// Result holds the stored row once Perform succeeds.
	Result *transaction.Transaction
}

func (c *CreateTransaction) Perform(ctx context.Context, writer *storage.Writer) error {
	row, err := writer.Transactions.Insert(ctx, c.Create)
	if err != nil {
		return err
	}

	c.Result = row
	return nil
}
