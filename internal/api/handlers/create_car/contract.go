package create_car

import (
	"context"

	"github.com/m04kA/SMC-CarService/internal/service/cars/models"
)

type CarService interface {
	Create(ctx context.Context, req *models.CarRequest) (*models.CarResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
