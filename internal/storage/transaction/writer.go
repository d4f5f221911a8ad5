package transaction

import (
	"context"
	"database/sql"
	"errors"

	"github.com/gofrs/uuid/v5"
	"github.com/stephenafamo/bob"
	"github.com/stephenafamo/bob/dialect/psql"
	"github.com/stephenafamo/bob/dialect/psql/dialect"
	"github.com/stephenafamo/bob/dialect/psql/dm"
	"github.com/stephenafamo/bob/dialect/psql/im"
	"github.com/stephenafamo/bob/dialect/psql/um"
	"github.com/stephenafamo/scan"
)

var _ ITransactionWriter = (*Writer)(nil)

type Writer struct {
	Reader
}

func NewWriter(exec bob.Executor) *Writer {
	return &Writer{
		Reader: Reader{
			exec: exec,
		},
	}
}

// Insert stores a new transaction and returns the stored row.
func (w *Writer) Insert(ctx context.Context, create *TransactionCreate) (*Transaction, error) {
	query := psql.Insert(
		im.Into(tableName, "user_id", "type", "amount", "name", "category", "transaction_date", "method", "comments"),
		im.Values(psql.Arg(
			create.UserID,
			create.Type,
			create.Amount,
			create.Name,
			create.Category,
			create.TransactionDate,
			create.Method,
			create.Comments,
		)),
		im.Returning(columns...),
	)

	row, err := bob.One(ctx, w.exec, query, scan.StructMapper[Transaction]())
	if err != nil {
		return nil, err
	}
	return &row, nil
}

// Update applies the set fields of update and returns the stored row.
func (w *Writer) Update(ctx context.Context, userID, id uuid.UUID, update *TransactionUpdate) (*Transaction, error) {
	if update.IsEmpty() {
		return w.FindByID(ctx, userID, id)
	}

	queryMods := []bob.Mod[*dialect.UpdateQuery]{
		um.Table(tableName),
		um.SetCol("updated_at").To(psql.Raw("now()")),
	}
	if v, ok := update.Type.Get(); ok {
		queryMods = append(queryMods, um.SetCol("type").ToArg(v))
	}
	if v, ok := update.Amount.Get(); ok {
		queryMods = append(queryMods, um.SetCol("amount").ToArg(v))
	}
	if v, ok := update.Name.Get(); ok {
		queryMods = append(queryMods, um.SetCol("name").ToArg(v))
	}
	if v, ok := update.Category.Get(); ok {
		queryMods = append(queryMods, um.SetCol("category").ToArg(v))
	}
	if v, ok := update.TransactionDate.Get(); ok {
		queryMods = append(queryMods, um.SetCol("transaction_date").ToArg(v))
	}
	if v, ok := update.Method.Get(); ok {
		queryMods = append(queryMods, um.SetCol("method").ToArg(v))
	}
	if v, ok := update.Comments.Get(); ok {
		queryMods = append(queryMods, um.SetCol("comments").ToArg(v))
	}
	queryMods = append(queryMods,
		um.Where(psql.Quote("user_id").EQ(psql.Arg(userID))),
		um.Where(psql.Quote("id").EQ(psql.Arg(id))),
		um.Returning(columns...),
	)

	row, err := bob.One(ctx, w.exec, psql.Update(queryMods...), scan.StructMapper[Transaction]())
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &row, nil
}

// Delete removes the transaction, returning ErrNotFound when userID owns no
// such row.
func (w *Writer) Delete(ctx context.Context, userID, id uuid.UUID) error {
	query := psql.Delete(
		dm.From(tableName),
		dm.Where(psql.Quote("user_id").EQ(psql.Arg(userID))),
		dm.Where(psql.Quote("id").EQ(psql.Arg(id))),
	)

	result, err := bob.Exec(ctx, w.exec, query)
	if err != nil {
		return err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}
