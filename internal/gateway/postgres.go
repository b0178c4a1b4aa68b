package gateway

import (
	"context"
	"database/sql"
	_ "embed"
	"fmt"

	_ "github.com/lib/pq"
	"go.uber.org/zap"

	"streetimport/internal/config"
	"streetimport/internal/usecase"
)

//go:embed schema.sql
var schemaSQL string

// OpenPostgres opens and pings the host database.
func OpenPostgres(ctx context.Context, cfg config.DatabaseConfig) (*sql.DB, error) {
	db, err := sql.Open("postgres", cfg.DSN)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if cfg.MaxConns > 0 {
		db.SetMaxOpenConns(cfg.MaxConns)
	}
	if cfg.MaxIdle > 0 {
		db.SetMaxIdleConns(cfg.MaxIdle)
	}

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return db, nil
}

// PostgresStore is the host store backed by PostgreSQL.
type PostgresStore struct {
	db             *sql.DB
	identifierType string
	logger         *zap.Logger
}

// NewPostgresStore creates a store on an open database. Recruiters created
// through it are registered under identifierType.
func NewPostgresStore(db *sql.DB, identifierType string, logger *zap.Logger) *PostgresStore {
	return &PostgresStore{db: db, identifierType: identifierType, logger: logger}
}

var _ usecase.HostStore = (*PostgresStore)(nil)

// EnsureSchema creates the tables the store uses when they are missing.
func (s *PostgresStore) EnsureSchema(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, schemaSQL); err != nil {
		return fmt.Errorf("failed to apply schema: %w", err)
	}
	return nil
}

func nullInt64(v int64) sql.NullInt64 {
	return sql.NullInt64{Int64: v, Valid: v != 0}
}
