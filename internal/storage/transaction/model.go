package transaction

import (
	"context"
	"errors"
	"time"

	"github.com/aarondl/opt/omit"
	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
)

const tableName = "transactions"

var ErrNotFound = errors.New("transaction not found")

var columns = []any{
	"id",
	"user_id",
	"type",
	"amount",
	"name",
	"category",
	"transaction_date",
	"method",
	"comments",
	"created_at",
	"updated_at",
}

// Transaction is a row of the transactions table.
type Transaction struct {
	ID              uuid.UUID       `db:"id"`
	UserID          uuid.UUID       `db:"user_id"`
	Type            string          `db:"type"`
	Amount          decimal.Decimal `db:"amount"`
	Name            string          `db:"name"`
	Category        string          `db:"category"`
	TransactionDate time.Time       `db:"transaction_date"`
	Method          string          `db:"method"`
	Comments        string          `db:"comments"`
	CreatedAt       time.Time       `db:"created_at"`
	UpdatedAt       time.Time       `db:"updated_at"`
}

// TransactionCreate is the input for inserting a transaction.
// TransactionDate is a YYYY-MM-DD date.
type TransactionCreate struct {
	UserID          uuid.UUID
	Type            string
	Amount          decimal.Decimal
	Name            string
	Category        string
	TransactionDate string
	Method          string
	Comments        string
}

// TransactionUpdate changes only the fields that are set.
type TransactionUpdate struct {
	Type            omit.Val[string]
	Amount          omit.Val[decimal.Decimal]
	Name            omit.Val[string]
	Category        omit.Val[string]
	TransactionDate omit.Val[string]
	Method          omit.Val[string]
	Comments        omit.Val[string]
}

// IsEmpty reports whether no field is set.
func (u *TransactionUpdate) IsEmpty() bool {
	return u.Type.IsUnset() && u.Amount.IsUnset() && u.Name.IsUnset() &&
		u.Category.IsUnset() && u.TransactionDate.IsUnset() &&
		u.Method.IsUnset() && u.Comments.IsUnset()
}

// TransactionFilter specifies filters for listing the transactions of one user.
// A zero Limit returns every matching row.
type TransactionFilter struct {
	UserID          uuid.UUID
	Type            omit.Val[string]
	Category        omit.Val[string]
	Method          omit.Val[string]
	Search          omit.Val[string]
	MaxCreationTime omit.Val[time.Time]
	Limit           int
	Offset          int
}

// ITransactionReader defines the read side of transaction storage.
//
//go:generate mockery --name ITransactionReader --inpackage --with-expecter
type ITransactionReader interface {
	FindByID(ctx context.Context, userID, id uuid.UUID) (*Transaction, error)
	List(ctx context.Context, filter *TransactionFilter) ([]*Transaction, error)
}

// ITransactionWriter defines transaction mutations. Implementations run
// inside a database transaction owned by the caller.
//
//go:generate mockery --name ITransactionWriter --inpackage --with-expecter
type ITransactionWriter interface {
	ITransactionReader
	Insert(ctx context.Context, create *TransactionCreate) (*Transaction, error)
	Update(ctx context.Context, userID, id uuid.UUID, update *TransactionUpdate) (*Transaction, error)
	Delete(ctx context.Context, userID, id uuid.UUID) error
}
