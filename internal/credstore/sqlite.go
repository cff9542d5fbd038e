package credstore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	_ "modernc.org/sqlite"
)

type SQLiteStore struct {
	db        *sql.DB
	namespace string
	key       string
}

func NewSQLiteStore(ctx context.Context, path, namespace, key string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	db.SetMaxOpenConns(1)

	_, err = db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS credentials (
			namespace TEXT NOT NULL,
			key TEXT NOT NULL,
			value TEXT NOT NULL,
			updated_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
			PRIMARY KEY (namespace, key)
		)
	`)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("create credentials table: %w", err)
	}

	return &SQLiteStore{db: db, namespace: namespace, key: key}, nil
}

func (s *SQLiteStore) Save(ctx context.Context, token string) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO credentials (namespace, key, value, updated_at)
		 VALUES (?, ?, ?, CURRENT_TIMESTAMP)
		 ON CONFLICT(namespace, key)
		 DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`,
		s.namespace, s.key, token,
	)
	if err != nil {
		return fmt.Errorf("save credential: %w", err)
	}
	return nil
}

func (s *SQLiteStore) Load(ctx context.Context) (string, bool, error) {
	var token string
	err := s.db.QueryRowContext(ctx,
		`SELECT value FROM credentials WHERE namespace = ? AND key = ?`,
		s.namespace, s.key,
	).Scan(&token)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("load credential: %w", err)
	}
	return token, true, nil
}

func (s *SQLiteStore) Clear(ctx context.Context) error {
	_, err := s.db.ExecContext(ctx,
		`DELETE FROM credentials WHERE namespace = ? AND key = ?`,
		s.namespace, s.key,
	)
	if err != nil {
		return fmt.Errorf("clear credential: %w", err)
	}
	return nil
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}
