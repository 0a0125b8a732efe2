package pgutils

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib" // PostgreSQL driver
)

// OpenDB opens a connection pool and waits for the database to become
// reachable, pinging up to attempts times with a fixed pause in between.
// The database may still be starting when the service boots.
func OpenDB(ctx context.Context, dsn string, attempts int) (*sql.DB, error) {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, fmt.Errorf("open connection: %w", err)
	}

	if attempts < 1 {
		attempts = 1
	}

	for i := 1; ; i++ {
		err = db.PingContext(ctx)
		if err == nil {
			return db, nil
		}

		if i >= attempts {
			break
		}

		slog.Info("database not ready, retrying", "attempt", i, "error", err)

		select {
		case <-ctx.Done():
			db.Close()
			return nil, fmt.Errorf("ping database: %w", ctx.Err())
		case <-time.After(time.Second):
		}
	}

	db.Close()

	return nil, fmt.Errorf("ping database: %w", err)
}
