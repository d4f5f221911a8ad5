package actions

import (
	"context"

	"github.com/carson-networks/finance-tracker/internal/storage"
)

// IAction is a unit of work executed inside one database transaction.
// Perform returning an error rolls the transaction back.
type IAction interface {
	Perform(ctx context.Context, writer *storage.Writer) error
}
