package storage

import (
	"database/sql"
	"strings"

	_ "github.com/go-sql-driver/mysql"
)

var mysqlDialect = dialect{
	name:        "MySQLStore",
	createTable: "CREATE TABLE IF NOT EXISTS %s (`key` VARCHAR(255) NOT NULL PRIMARY KEY, `value` LONGTEXT NOT NULL, `updated_at` DATETIME(6) NOT NULL);",
	selectValue: "SELECT `value` FROM %s WHERE `key` = ?;",
	upsert:      "INSERT INTO %s (`key`, `value`, `updated_at`) VALUES (?, ?, ?) ON DUPLICATE KEY UPDATE `value` = VALUES(`value`), `updated_at` = VALUES(`updated_at`);",
	quote:       quoteMySQLIdentifier,
}

// NewMySQLStore creates a store on a database opened with the mysql driver.
// The DSN should carry parseTime=true.
func NewMySQLStore(db *sql.DB, table string) *SQLStore {
	return newSQLStore(db, table, mysqlDialect)
}

func quoteMySQLIdentifier(name string) string {
	return "`" + strings.ReplaceAll(name, "`", "``") + "`"
}
