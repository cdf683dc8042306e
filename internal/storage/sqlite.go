package storage

import (
	"database/sql"

	_ "modernc.org/sqlite"
)

var sqliteDialect = dialect{
	name:        "SQLiteStore",
	createTable: `CREATE TABLE IF NOT EXISTS %s (key TEXT PRIMARY KEY, value TEXT NOT NULL, updated_at TEXT NOT NULL);`,
	selectValue: `SELECT value FROM %s WHERE key = ?;`,
	upsert:      `INSERT INTO %s (key, value, updated_at) VALUES (?, ?, ?) ON CONFLICT (key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at;`,
	pragmas: []string{
		"PRAGMA journal_mode=WAL;",
		"PRAGMA synchronous=NORMAL;",
		"PRAGMA busy_timeout=5000;",
	},
}

// NewSQLiteStore creates a store on an sqlite database opened with the
// "sqlite" driver.
func NewSQLiteStore(db *sql.DB, table string) *SQLStore {
	return newSQLStore(db, table, sqliteDialect)
}
