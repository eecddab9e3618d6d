package auth

import (
	"context"

	"github.com/m04kA/SMC-CarService/internal/domain"
)

// UserRepository интерфейс репозитория пользователей
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	GetByUsername(ctx context.Context, username string) (*domain.User, error)
}

// PasswordHasher интерфейс одностороннего хеширования паролей
type PasswordHasher interface {
	Hash(plain string) (string, error)
	Compare(hash, plain string) error
}

// AttemptRecorder учитывает исходы регистрации и входа (метрики)
type AttemptRecorder interface {
	IncAuthAttempt(action, result string)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
