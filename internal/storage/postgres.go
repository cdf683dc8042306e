package storage

import (
	"database/sql"

	_ "github.com/jackc/pgx/v5/stdlib"
)

var postgresDialect = dialect{
	name:        "PostgresStore",
	createTable: `CREATE TABLE IF NOT EXISTS %s (key VARCHAR(255) PRIMARY KEY, value TEXT NOT NULL, updated_at TIMESTAMPTZ NOT NULL);`,
	selectValue: `SELECT value FROM %s WHERE key = $1;`,
	upsert:      `INSERT INTO %s (key, value, updated_at) VALUES ($1, $2, $3) ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = EXCLUDED.updated_at;`,
}

// NewPostgresStore creates a store on a database opened with the pgx
// stdlib driver.
func NewPostgresStore(db *sql.DB, table string) *SQLStore {
	return newSQLStore(db, table, postgresDialect)
}
