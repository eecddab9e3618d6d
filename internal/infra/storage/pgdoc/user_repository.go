package pgdoc

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/lib/pq"

	"github.com/m04kA/SMC-CarService/internal/domain"
	"github.com/m04kA/SMC-CarService/pkg/psqlbuilder"
)

// pqUniqueViolation код ошибки PostgreSQL unique_violation
const pqUniqueViolation = pq.ErrorCode("23505")

// UserRepository репозиторий пользователей поверх jsonb-документов PostgreSQL
type UserRepository struct {
	db DBExecutor
}

// NewUserRepository создает новый экземпляр репозитория пользователей
func NewUserRepository(db DBExecutor) *UserRepository {
	return &UserRepository{db: db}
}

// Create сохраняет пользователя. Уникальность username обеспечивается индексом
func (r *UserRepository) Create(ctx context.Context, user *domain.User) (*domain.User, error) {
	raw, err := json.Marshal(userDocument{Username: user.Username, Password: user.Password})
	if err != nil {
		return nil, fmt.Errorf("%w: user: %v", ErrEncode, err)
	}

	id := uuid.New()
	query, args, err := psqlbuilder.Insert(domain.UsersCollection).
		Columns("id", "doc").
		Values(id, string(raw)).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		if isUniqueViolation(err) {
			return nil, ErrUserAlreadyExists
		}
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	user.ID = id.String()
	return user, nil
}

// GetByUsername возвращает первого пользователя с указанным username
func (r *UserRepository) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	query, args, err := psqlbuilder.Select("id", "doc").
		From(domain.UsersCollection).
		Where(squirrel.Expr("doc->>'username' = ?", username)).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByUsername - build select query: %v", ErrBuildQuery, err)
	}

	var (
		id  string
		raw []byte
	)
	err = r.db.QueryRowContext(ctx, query, args...).Scan(&id, &raw)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByUsername - scan user: %v", ErrScanRow, err)
	}

	var doc userDocument
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("%w: GetByUsername - decode user: %v", ErrScanRow, err)
	}

	return &domain.User{
		ID:       id,
		Username: doc.Username,
		Password: doc.Password,
	}, nil
}

func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == pqUniqueViolation
}
