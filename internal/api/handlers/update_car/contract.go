package update_car

import (
	"context"

	"github.com/m04kA/SMC-CarService/internal/service/cars/models"
)

type CarService interface {
	Update(ctx context.Context, id string, req *models.CarRequest) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
