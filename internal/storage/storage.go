package storage

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/lib/pq"
	"github.com/stephenafamo/bob"

	"github.com/carson-networks/finance-tracker/internal/config"
	"github.com/carson-networks/finance-tracker/internal/storage/transaction"
)

type Storage struct {
	DB           *sql.DB
	db           bob.DB
	Transactions transaction.ITransactionReader
}

// ConnectionString builds the lib/pq URL for env.
func ConnectionString(env *config.Config) string {
	return "postgres://" + env.PostgresUsername + ":" +
		env.PostgresPassword + "@" + env.PostgresAddress + ":" +
		env.PostgresPort + "/" + env.PostgresDB + "?sslmode=disable"
}

func NewStorage(env *config.Config) (*Storage, error) {
	db, err := sql.Open("postgres", ConnectionString(env))
	if err != nil {
		return nil, fmt.Errorf("sql.Open: %w", err)
	}

	return NewStorageFromDB(db), nil
}

func NewStorageFromDB(db *sql.DB) *Storage {
	bobDB := bob.NewDB(db)
	return &Storage{
		DB:           db,
		db:           bobDB,
		Transactions: transaction.NewReader(bobDB),
	}
}

// Write opens a database transaction. The returned Writer must be committed
// or rolled back.
func (s *Storage) Write(ctx context.Context) (*Writer, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin transaction: %w", err)
	}
	return NewWriter(tx), nil
}

func (s *Storage) Ping(ctx context.Context) error {
	return s.DB.PingContext(ctx)
}

func (s *Storage) Close() error {
	return s.DB.Close()
}
