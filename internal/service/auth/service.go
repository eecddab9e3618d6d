package auth

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-CarService/internal/domain"
	"github.com/m04kA/SMC-CarService/internal/infra/storage"
	"github.com/m04kA/SMC-CarService/internal/service/auth/models"
	"github.com/m04kA/SMC-CarService/pkg/password"
)

const (
	actionRegister = "register"
	actionLogin    = "login"

	resultSuccess      = "success"
	resultUnauthorized = "unauthorized"
	resultConflict     = "conflict"
	resultError        = "error"
)

// Service сервис регистрации и входа пользователей
type Service struct {
	userRepo UserRepository
	hasher   PasswordHasher
	recorder AttemptRecorder
	logger   Logger
}

// NewService создает новый экземпляр сервиса аутентификации.
// recorder может быть nil, если метрики выключены
func NewService(
	userRepo UserRepository,
	hasher PasswordHasher,
	recorder AttemptRecorder,
	logger Logger,
) *Service {
	return &Service{
		userRepo: userRepo,
		hasher:   hasher,
		recorder: recorder,
		logger:   logger,
	}
}

// Register хеширует пароль и сохраняет пользователя.
// Username должен быть уникальным: сначала проверяем существование,
// затем полагаемся на уникальный индекс хранилища на случай гонки
func (s *Service) Register(ctx context.Context, creds *models.Credentials) error {
	if err := validateCredentials(creds); err != nil {
		s.logger.Warn("Register: invalid credentials: %v", err)
		return err
	}

	s.logger.Info("Register: registering user=%s", creds.Username)

	_, err := s.userRepo.GetByUsername(ctx, creds.Username)
	switch {
	case err == nil:
		s.logger.Warn("Register: user=%s already exists", creds.Username)
		s.record(actionRegister, resultConflict)
		return ErrUserAlreadyExists
	case !errors.Is(err, storage.ErrNotFound):
		s.logger.Error("Register: repository error for user=%s: %v", creds.Username, err)
		s.record(actionRegister, resultError)
		return fmt.Errorf("%w: Register - lookup user: %v", ErrInternal, err)
	}

	hash, err := s.hasher.Hash(creds.Password)
	if err != nil {
		if errors.Is(err, password.ErrTooLong) {
			s.logger.Warn("Register: password too long for user=%s", creds.Username)
			return fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}
		s.logger.Error("Register: failed to hash password for user=%s: %v", creds.Username, err)
		s.record(actionRegister, resultError)
		return fmt.Errorf("%w: Register - hash password: %v", ErrInternal, err)
	}

	user := &domain.User{
		Username: creds.Username,
		Password: hash,
	}
	if _, err := s.userRepo.Create(ctx, user); err != nil {
		if errors.Is(err, storage.ErrDuplicate) {
			s.logger.Warn("Register: user=%s was registered concurrently", creds.Username)
			s.record(actionRegister, resultConflict)
			return ErrUserAlreadyExists
		}
		s.logger.Error("Register: repository error for user=%s: %v", creds.Username, err)
		s.record(actionRegister, resultError)
		return fmt.Errorf("%w: Register - create user: %v", ErrInternal, err)
	}

	s.logger.Info("Register: successfully registered user=%s id=%s", user.Username, user.ID)
	s.record(actionRegister, resultSuccess)
	return nil
}

// Login проверяет пароль пользователя.
// Каждая ветка отказа завершает выполнение сразу
func (s *Service) Login(ctx context.Context, creds *models.Credentials) error {
	if creds == nil {
		return ErrUnauthorized
	}

	user, err := s.userRepo.GetByUsername(ctx, creds.Username)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			s.logger.Warn("Login: user=%s not found", creds.Username)
			s.record(actionLogin, resultUnauthorized)
			return ErrUnauthorized
		}
		s.logger.Error("Login: repository error for user=%s: %v", creds.Username, err)
		s.record(actionLogin, resultError)
		return fmt.Errorf("%w: Login - lookup user: %v", ErrInternal, err)
	}

	if err := s.hasher.Compare(user.Password, creds.Password); err != nil {
		if errors.Is(err, password.ErrMismatch) {
			s.logger.Warn("Login: wrong password for user=%s", creds.Username)
			s.record(actionLogin, resultUnauthorized)
			return ErrUnauthorized
		}
		s.logger.Error("Login: failed to compare password for user=%s: %v", creds.Username, err)
		s.record(actionLogin, resultError)
		return fmt.Errorf("%w: Login - compare password: %v", ErrInternal, err)
	}

	s.logger.Info("Login: user=%s logged in", creds.Username)
	s.record(actionLogin, resultSuccess)
	return nil
}

func (s *Service) record(action, result string) {
	if s.recorder != nil {
		s.recorder.IncAuthAttempt(action, result)
	}
}

func validateCredentials(creds *models.Credentials) error {
	if creds == nil {
		return fmt.Errorf("%w: empty credentials", ErrInvalidInput)
	}
	if creds.Username == "" {
		return fmt.Errorf("%w: username is required", ErrInvalidInput)
	}
	if creds.Password == "" {
		return fmt.Errorf("%w: password is required", ErrInvalidInput)
	}
	return nil
}
