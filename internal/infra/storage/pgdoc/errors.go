package pgdoc

import (
	"errors"
	"fmt"

	"github.com/m04kA/SMC-CarService/internal/infra/storage"
)

var (
	// ErrUserNotFound возвращается, когда пользователь не найден
	ErrUserNotFound = fmt.Errorf("pgdoc.repository: user %w", storage.ErrNotFound)

	// ErrUserAlreadyExists возвращается при нарушении уникальности username
	ErrUserAlreadyExists = fmt.Errorf("pgdoc.repository: user already exists: %w", storage.ErrDuplicate)

	// ErrInvalidID возвращается, когда id не является UUID
	ErrInvalidID = fmt.Errorf("pgdoc.repository: %w", storage.ErrInvalidID)

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("pgdoc.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("pgdoc.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("pgdoc.repository: failed to scan row")

	// ErrEncode возвращается при ошибке сериализации документа
	ErrEncode = errors.New("pgdoc.repository: failed to encode document")
)
