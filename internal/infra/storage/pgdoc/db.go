package pgdoc

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	_ "github.com/lib/pq"
)

// ErrConnect возвращается, когда не удалось подключиться к PostgreSQL
var ErrConnect = errors.New("pgdoc: failed to connect")

// PoolOptions параметры пула соединений
type PoolOptions struct {
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
}

// Open открывает пул соединений и проверяет его ping'ом
func Open(ctx context.Context, dsn string, pool PoolOptions) (*sql.DB, error) {
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConnect, err)
	}

	db.SetMaxOpenConns(pool.MaxOpenConns)
	db.SetMaxIdleConns(pool.MaxIdleConns)
	db.SetConnMaxLifetime(pool.ConnMaxLifetime)

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("%w: ping: %v", ErrConnect, err)
	}
	return db, nil
}

// Closer адаптирует *sql.DB к жизненному циклу сервера
type Closer struct {
	DB *sql.DB
}

func (c Closer) Close(context.Context) error {
	return c.DB.Close()
}

func (c Closer) String() string {
	return "postgres"
}
