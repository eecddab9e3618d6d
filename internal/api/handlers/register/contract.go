package register

import (
	"context"

	"github.com/m04kA/SMC-CarService/internal/service/auth/models"
)

type AuthService interface {
	Register(ctx context.Context, creds *models.Credentials) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
