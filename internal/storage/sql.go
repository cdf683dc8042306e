package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"
)

// dialect captures the SQL differences between the supported databases.
type dialect struct {
	name        string
	createTable string // fmt verb receives the quoted table name
	selectValue string
	upsert      string
	pragmas     []string
	quote       func(string) string
}

// SQLStore keeps keys in a two-column table via database/sql.
type SQLStore struct {
	DB        *sql.DB
	TableName string
	Now       func() time.Time

	dialect dialect
}

func newSQLStore(db *sql.DB, table string, d dialect) *SQLStore {
	if table == "" {
		table = "jaap_kv"
	}
	return &SQLStore{
		DB:        db,
		TableName: table,
		Now:       time.Now,
		dialect:   d,
	}
}

// Setup applies connection pragmas and creates the table if needed.
func (s *SQLStore) Setup(ctx context.Context) error {
	if s.DB == nil {
		return fmt.Errorf("%s store requires DB", s.dialect.name)
	}
	for _, p := range s.dialect.pragmas {
		if _, err := s.DB.ExecContext(ctx, p); err != nil {
			return err
		}
	}
	_, err := s.DB.ExecContext(ctx, fmt.Sprintf(s.dialect.createTable, s.table()))
	return err
}

func (s *SQLStore) Get(ctx context.Context, key string) (string, bool, error) {
	if s.DB == nil {
		return "", false, fmt.Errorf("%s store requires DB", s.dialect.name)
	}
	var value string
	err := s.DB.QueryRowContext(ctx, fmt.Sprintf(s.dialect.selectValue, s.table()), key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return value, true, nil
}

func (s *SQLStore) Set(ctx context.Context, key, value string) error {
	if s.DB == nil {
		return fmt.Errorf("%s store requires DB", s.dialect.name)
	}
	now := time.Now
	if s.Now != nil {
		now = s.Now
	}
	_, err := s.DB.ExecContext(ctx, fmt.Sprintf(s.dialect.upsert, s.table()), key, value, now().UTC())
	return err
}

func (s *SQLStore) Description() string {
	return fmt.Sprintf("%s(%s)", s.dialect.name, s.TableName)
}

func (s *SQLStore) Close() error {
	if s.DB == nil {
		return nil
	}
	return s.DB.Close()
}

func (s *SQLStore) table() string {
	if s.dialect.quote == nil {
		return s.TableName
	}
	return s.dialect.quote(s.TableName)
}
