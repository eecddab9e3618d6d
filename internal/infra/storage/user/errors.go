package user

import (
	"errors"
	"fmt"

	"github.com/m04kA/SMC-CarService/internal/infra/storage"
)

var (
	// ErrUserNotFound возвращается, когда пользователь не найден
	ErrUserNotFound = fmt.Errorf("user.repository: user %w", storage.ErrNotFound)

	// ErrUserAlreadyExists возвращается при нарушении уникальности username
	ErrUserAlreadyExists = fmt.Errorf("user.repository: user already exists: %w", storage.ErrDuplicate)

	// ErrExecQuery возвращается при ошибке выполнения запроса
	ErrExecQuery = errors.New("user.repository: failed to execute query")
)
