package digest_db

import (
	"context"
	"errors"

	"allaboutxrp/config"
	"allaboutxrp/utils/logger"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PgxIface is the subset of *pgxpool.Pool the repository needs.
type PgxIface interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Ping(ctx context.Context) error
}

var errNoPool = errors.New("database connection not available")

// DigestRepository reads digests and subscriptions from Postgres.
type DigestRepository struct {
	pool PgxIface
	psql sq.StatementBuilderType
}

func NewDigestRepository(pool PgxIface) *DigestRepository {
	return &DigestRepository{
		pool: pool,
		psql: sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

// Ping checks that the database answers.
func (r *DigestRepository) Ping(ctx context.Context) error {
	if r.pool == nil {
		return errNoPool
	}
	return r.pool.Ping(ctx)
}

// InitPool opens and pings the connection pool.
func InitPool(ctx context.Context, cfg config.DatabaseConfig) (*pgxpool.Pool, error) {
	poolConfig, err := pgxpool.ParseConfig(cfg.ConnString())
	if err != nil {
		logger.Logger.Error("Failed to parse database config", "error", err)
		return nil, err
	}

	poolConfig.MaxConns = int32(cfg.MaxConnections)
	poolConfig.MinConns = int32(cfg.MinConnections)
	poolConfig.ConnConfig.ConnectTimeout = cfg.ConnectionTimeout

	pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		logger.Logger.Error("Failed to connect to database", "error", err)
		return nil, err
	}

	pingCtx, cancel := context.WithTimeout(ctx, cfg.ConnectionTimeout)
	defer cancel()
	if err := pool.Ping(pingCtx); err != nil {
		logger.Logger.Error("Failed to ping database", "error", err)
		pool.Close()
		return nil, err
	}

	logger.Logger.Info("Connected to database pool", "max_conns", poolConfig.MaxConns, "database", cfg.Name)
	return pool, nil
}
