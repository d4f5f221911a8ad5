package transaction

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/gofrs/uuid/v5"
	"github.com/stephenafamo/bob"
	"github.com/stephenafamo/bob/dialect/psql"
	"github.com/stephenafamo/bob/dialect/psql/dialect"
	"github.com/stephenafamo/bob/dialect/psql/sm"
	"github.com/stephenafamo/scan"
)

var _ ITransactionReader = (*Reader)(nil)

type Reader struct {
	exec bob.Executor
}

func NewReader(exec bob.Executor) *Reader {
	return &Reader{exec: exec}
}

// FindByID returns the transaction owned by userID, or ErrNotFound.
func (r *Reader) FindByID(ctx context.Context, userID, id uuid.UUID) (*Transaction, error) {
	query := psql.Select(
		sm.Columns(columns...),
		sm.From(tableName),
		sm.Where(psql.Quote("user_id").EQ(psql.Arg(userID))),
		sm.Where(psql.Quote("id").EQ(psql.Arg(id))),
	)

	row, err := bob.One(ctx, r.exec, query, scan.StructMapper[Transaction]())
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &row, nil
}

// List returns the transactions of filter.UserID, newest first. When a limit
// is set one extra row is fetched so callers can tell whether a next page
// exists.
func (r *Reader) List(ctx context.Context, filter *TransactionFilter) ([]*Transaction, error) {
	query := psql.Select(listMods(filter)...)

	rows, err := bob.All(ctx, r.exec, query, scan.StructMapper[Transaction]())
	if err != nil {
		return nil, err
	}

	result := make([]*Transaction, len(rows))
	for i := range rows {
		result[i] = &rows[i]
	}
	return result, nil
}

func listMods(filter *TransactionFilter) []bob.Mod[*dialect.SelectQuery] {
	queryMods := []bob.Mod[*dialect.SelectQuery]{
		sm.Columns(columns...),
		sm.From(tableName),
		sm.Where(psql.Quote("user_id").EQ(psql.Arg(filter.UserID))),
	}

	if txType, ok := filter.Type.Get(); ok {
		queryMods = append(queryMods, sm.Where(psql.Quote("type").EQ(psql.Arg(txType))))
	}
	if category, ok := filter.Category.Get(); ok {
		queryMods = append(queryMods, sm.Where(psql.Quote("category").EQ(psql.Arg(category))))
	}
	if method, ok := filter.Method.Get(); ok {
		queryMods = append(queryMods, sm.Where(psql.Quote("method").EQ(psql.Arg(method))))
	}
	if search, ok := filter.Search.Get(); ok && strings.TrimSpace(search) != "" {
		pattern := "%" + escapeLike(strings.TrimSpace(search)) + "%"
		queryMods = append(queryMods, sm.Where(psql.Raw(
			"(amount::text ILIKE ? OR name ILIKE ? OR category ILIKE ? OR method ILIKE ? OR comments ILIKE ?)",
			pattern, pattern, pattern, pattern, pattern,
		)))
	}
	if maxCreationTime, ok := filter.MaxCreationTime.Get(); ok {
		queryMods = append(queryMods, sm.Where(psql.Quote("created_at").LTE(psql.Arg(maxCreationTime))))
	}

	queryMods = append(queryMods,
		sm.OrderBy(psql.Quote("transaction_date")).Desc(),
		sm.OrderBy(psql.Quote("created_at")).Desc(),
		sm.OrderBy(psql.Quote("id")).Asc(),
	)

	if filter.Limit > 0 {
		queryMods = append(queryMods, sm.Limit(filter.Limit+1))
	}
	if filter.Offset > 0 {
		queryMods = append(queryMods, sm.Offset(filter.Offset))
	}
	return queryMods
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}
