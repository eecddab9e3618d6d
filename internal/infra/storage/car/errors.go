package car

import (
	"errors"
	"fmt"

	"github.com/m04kA/SMC-CarService/internal/infra/storage"
)

var (
	// ErrInvalidID возвращается, когда id не является корректным ObjectID
	ErrInvalidID = fmt.Errorf("car.repository: car id: %w", storage.ErrInvalidID)

	// ErrExecQuery возвращается при ошибке выполнения запроса
	ErrExecQuery = errors.New("car.repository: failed to execute query")

	// ErrDecode возвращается при ошибке декодирования документа
	ErrDecode = errors.New("car.repository: failed to decode document")
)
