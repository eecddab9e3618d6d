package register

import (
	"github.com/m04kA/SMC-CarService/internal/service/auth/models"
)

// CredentialsRequest HTTP request model
type CredentialsRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// ToServiceRequest конвертирует HTTP request в модель сервиса
func (r *CredentialsRequest) ToServiceRequest() *models.Credentials {
	return &models.Credentials{
		Username: r.Username,
		Password: r.Password,
	}
}
