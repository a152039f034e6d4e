package common

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/amani-mollel/invoice-tracker/gen/ent"
	"github.com/amani-mollel/invoice-tracker/internal/repository"
)

// DBResult bundles an open ent client with its cleanup hook. Pool is nil
// when the client is backed by SQLite.
type DBResult struct {
	Client  *ent.Client
	Pool    *pgxpool.Pool
	Cleanup func()
}

// InitDatabase opens either the configured Postgres database or an
// in-memory SQLite database (for CLI/batch runs). The SQLite path also
// runs schema migration, since there is nothing persistent to migrate.
func InitDatabase(ctx context.Context, cfg *Config, inmem bool, logger *slog.Logger) (*DBResult, error) {
	if logger == nil {
		logger = slog.Default()
	}

	if inmem {
		entc, err := repository.OpenSQLite("file:invoices?mode=memory&cache=shared&_pragma=foreign_keys(1)", logger)
		if err != nil {
			return nil, fmt.Errorf("open sqlite: %w", err)
		}
		if err := entc.Schema.Create(ctx); err != nil {
			_ = entc.Close()
			return nil, fmt.Errorf("migrate sqlite schema: %w", err)
		}
		return &DBResult{
			Client: entc,
			Cleanup: func() {
				if cerr := entc.Close(); cerr != nil {
					logger.Error("close ent client", "error", cerr)
				}
			},
		}, nil
	}

	if cfg.Database.DSN == "" {
		return nil, NewAppError("CONFIG_ERROR", "DB_URL is required", ErrInvalidInput)
	}
	entc, pool, err := repository.Open(ctx, repository.Config{
		DSN:              cfg.Database.DSN,
		MaxConns:         cfg.Database.MaxConns,
		MinConns:         cfg.Database.MinConns,
		MaxConnLifetime:  cfg.Database.MaxConnLifetime,
		MaxConnIdleTime:  cfg.Database.MaxConnIdleTime,
		DialTimeout:      cfg.Database.DialTimeout,
		StatementTimeout: cfg.Database.StatementTimeout,
	}, logger)
	if err != nil {
		return nil, err
	}
	if err := repository.HealthCheck(ctx, pool, cfg.Database.DialTimeout, logger); err != nil {
		repository.Close(entc, pool, logger)
		return nil, fmt.Errorf("database health: %w", err)
	}
	return &DBResult{
		Client:  entc,
		Pool:    pool,
		Cleanup: func() { repository.Close(entc, pool, logger) },
	}, nil
}
