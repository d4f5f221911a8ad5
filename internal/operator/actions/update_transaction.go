package actions

import (
	"context"

	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/finance-tracker/internal/storage"
	"github.com/carson-networks/finance-tracker/internal/storage/transaction"
)

type UpdateTransaction struct {
	UserID uuid.UUID
	ID     uuid.UUID
	Update *transaction.TransactionUpdate

	Result *transaction.Transaction
}

func (u *UpdateTransaction) Perform(ctx context.Context, writer *storage.Writer) error {
	row, err := writer.Transactions.Update(ctx, u.UserID, u.ID, u.Update)
	if err != nil {
		return err
	}

	u.Result = row
	return nil
}
