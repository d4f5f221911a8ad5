package service

import (
	"errors"
	"time"

	"github.com/aarondl/opt/omit"

	"github.com/carson-networks/finance-tracker/internal/finance"
	"github.com/carson-networks/finance-tracker/internal/storage/transaction"
)

var (
	ErrNotFound           = transaction.ErrNotFound
	ErrInvalidTransaction = errors.New("invalid transaction")
)

// Transaction represents a stored transaction in the service layer.
type Transaction struct {
	finance.Transaction
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TransactionCursor identifies a position in a paginated result set
// and carries the limit and maxCreationTime so subsequent pages are consistent.
type TransactionCursor struct {
	Position        int
	Limit           int
	MaxCreationTime time.Time
}

// TransactionListFilter narrows a listing. Empty fields, "All" and, for
// Type, "Both" do not filter.
type TransactionListFilter struct {
	Search   string
	Type     string
	Category string
	Method   string
}

// TransactionPatch holds raw values for the fields to change.
type TransactionPatch struct {
	Type     omit.Val[string]
	Amount   omit.Val[string]
	Name     omit.Val[string]
	Category omit.Val[string]
	Date     omit.Val[string]
	Method   omit.Val[string]
	Comments omit.Val[string]
}

func rowToTransaction(row *transaction.Transaction) (Transaction, error) {
	tx, err := finance.NormalizeTransaction(finance.RawTransaction{
		ID:       row.ID.String(),
		Type:     row.Type,
		Amount:   row.Amount.String(),
		Name:     row.Name,
		Category: row.Category,
		Date:     row.TransactionDate.Format(finance.DateLayout),
		Method:   row.Method,
		Comments: row.Comments,
	})
	if err != nil {
		return Transaction{}, err
	}
	return Transaction{Transaction: tx, CreatedAt: row.CreatedAt, UpdatedAt: row.UpdatedAt}, nil
}

func toRaw(tx finance.Transaction) finance.RawTransaction {
	return finance.RawTransaction{
		Type:     string(tx.Type),
		Amount:   tx.Amount.String(),
		Name:     tx.Name,
		Category: string(tx.Category),
		Date:     tx.Date,
		Method:   string(tx.Method),
		Comments: tx.Comments,
	}
}

// apply overlays the set fields of p on raw.
func (p TransactionPatch) apply(raw finance.RawTransaction) finance.RawTransaction {
	raw.Type = p.Type.GetOr(raw.Type)
	raw.Amount = p.Amount.GetOr(raw.Amount)
	raw.Name = p.Name.GetOr(raw.Name)
	raw.Category = p.Category.GetOr(raw.Category)
	raw.Date = p.Date.GetOr(raw.Date)
	raw.Method = p.Method.GetOr(raw.Method)
	raw.Comments = p.Comments.GetOr(raw.Comments)
	return raw
}
