package pgdoc

import (
	"context"
	"fmt"
)

// Документы хранятся целиком в jsonb-колонке doc, как в документной БД
var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS users (
		id  UUID PRIMARY KEY,
		doc JSONB NOT NULL
	)`,
	`CREATE UNIQUE INDEX IF NOT EXISTS users_username_unique ON users ((doc->>'username'))`,
	`CREATE TABLE IF NOT EXISTS cars (
		id         UUID PRIMARY KEY,
		doc        JSONB NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
}

// EnsureSchema создает таблицы и индексы, если их нет
func EnsureSchema(ctx context.Context, db DBExecutor) error {
	for _, stmt := range schemaStatements {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("%w: EnsureSchema: %v", ErrExecQuery, err)
		}
	}
	return nil
}
