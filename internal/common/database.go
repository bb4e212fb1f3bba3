package common

import (
	"context"
	"database/sql"
	"log/slog"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
	"github.com/jackc/pgx/v5/pgxpool"
	_ "modernc.org/sqlite"

	"github.com/greentrust/esg-audit/gen/ent"
	"github.com/greentrust/esg-audit/internal/repository"
)

// Database bundles the Ent client with the underlying pgx pool. The pool is
// nil when running against the in-memory sqlite backend.
type Database struct {
	Client *ent.Client
	Pool   *pgxpool.Pool
}

// InitDatabase opens the configured backend and runs schema migration.
// With inMemory set it uses a process-local sqlite database, which keeps the
// batch CLI usable without a Postgres instance.
func InitDatabase(ctx context.Context, cfg *Config, inMemory bool, logger *slog.Logger) (*Database, error) {
	if inMemory {
		db, err := sql.Open("sqlite", "file:esgaudit?mode=memory&cache=shared&_pragma=foreign_keys(1)")
		if err != nil {
			logger.Error("failed to open in-memory database", "error", err)
			return nil, err
		}
		// cache=shared needs a single connection to stay alive for the
		// lifetime of the process
		db.SetMaxOpenConns(1)
		drv := entsql.OpenDB(dialect.SQLite, db)
		client := ent.NewClient(ent.Driver(drv))
		if err := client.Schema.Create(ctx); err != nil {
			logger.Error("failed to migrate in-memory schema", "error", err)
			return nil, err
		}
		logger.Info("using in-memory database")
		return &Database{Client: client}, nil
	}

	client, pool, err := repository.Open(ctx, repository.Config{
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
	if err := client.Schema.Create(ctx); err != nil {
		logger.Error("failed to migrate schema", "error", err)
		repository.Close(client, pool, logger)
		return nil, err
	}
	return &Database{Client: client, Pool: pool}, nil
}

// Close releases the database handles.
func (d *Database) Close(logger *slog.Logger) {
	repository.Close(d.Client, d.Pool, logger)
}
