package password

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

var (
	// ErrMismatch возвращается, когда пароль не совпадает с хешем
	ErrMismatch = errors.New("password: mismatch")

	// ErrInvalidCost возвращается при недопустимом cost factor
	ErrInvalidCost = errors.New("password: invalid bcrypt cost")

	// ErrTooLong возвращается для паролей длиннее MaxLength байт
	ErrTooLong = errors.New("password: too long")
)

// MaxLength предел длины пароля в байтах, который принимает bcrypt
const MaxLength = 72

// Hasher хеширует и проверяет пароли через bcrypt
type Hasher struct {
	cost int
}

// NewHasher создает bcrypt-хешер с заданным cost factor
func NewHasher(cost int) (*Hasher, error) {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		return nil, fmt.Errorf("%w: %d (allowed %d..%d)", ErrInvalidCost, cost, bcrypt.MinCost, bcrypt.MaxCost)
	}
	return &Hasher{cost: cost}, nil
}

// Hash возвращает соленый bcrypt-хеш пароля
func (h *Hasher) Hash(plain string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(plain), h.cost)
	if err != nil {
		if errors.Is(err, bcrypt.ErrPasswordTooLong) {
			return "", fmt.Errorf("%w: %d bytes (max %d)", ErrTooLong, len(plain), MaxLength)
		}
		return "", fmt.Errorf("password: hash: %w", err)
	}
	return string(hash), nil
}

// Compare сравнивает пароль с сохраненным хешем.
// Слишком длинный пароль не может совпасть: такие пароли не хешируются
func (h *Hasher) Compare(hash, plain string) error {
	if len(plain) > MaxLength {
		return ErrMismatch
	}

	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain))
	if err == nil {
		return nil
	}
	if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
		return ErrMismatch
	}
	return fmt.Errorf("password: compare: %w", err)
}
