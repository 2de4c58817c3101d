package database

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	_ "github.com/go-sql-driver/mysql"
	_ "github.com/jackc/pgx/v5/stdlib"
	_ "github.com/mattn/go-sqlite3"
)

// Querier is the narrow database surface the seeder consumes: a
// parameterized read, a parameterized write, nothing else. *sql.DB
// satisfies it.
type Querier interface {
	QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error)
	ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error)
}

// Open connects to the database for the given provider and verifies the
// connection with a ping. The caller owns the returned handle and must
// close it.
func Open(ctx context.Context, provider, url string) (*sql.DB, error) {
	var driverName string
	switch provider {
	case "postgresql", "postgres":
		driverName = "pgx"
	case "mysql":
		driverName = "mysql"
	case "sqlite", "sqlite3":
		driverName = "sqlite3"
	default:
		driverName = "pgx"
	}

	db, err := sql.Open(driverName, url)
	if err != nil {
		return nil, fmt.Errorf("failed to open database connection: %w", err)
	}

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return db, nil
}

// Builder returns a squirrel statement builder with the placeholder
// format the provider's driver expects.
func Builder(provider string) squirrel.StatementBuilderType {
	switch provider {
	case "postgresql", "postgres":
		return squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	default:
		return squirrel.StatementBuilder.PlaceholderFormat(squirrel.Question)
	}
}
