package actions

import (
	"context"

	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/finance-tracker/internal/storage"
)

type DeleteTransaction struct {
	UserID uuid.UUID
	ID     uuid.UUID
}

func (d *DeleteTransaction) Perform(ctx context.Context, writer *storage.Writer) error {
	return writer.Transactions.Delete(ctx, d.UserID, d.ID)
}
