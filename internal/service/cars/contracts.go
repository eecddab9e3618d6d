package cars

import (
	"context"

	"github.com/m04kA/SMC-CarService/internal/domain"
)

// CarRepository интерфейс репозитория автомобилей
type CarRepository interface {
	List(ctx context.Context) ([]*domain.Car, error)
	Create(ctx context.Context, car *domain.Car) (*domain.Car, error)
	Update(ctx context.Context, id string, car *domain.Car) error
	Delete(ctx context.Context, id string) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
