package update_car

import (
	"github.com/m04kA/SMC-CarService/internal/service/cars/models"
)

// CarRequest HTTP request model
type CarRequest struct {
	Brand string  `json:"brand"`
	Name  string  `json:"name"`
	Year  float64 `json:"year"`
	Price float64 `json:"price"`
}

// ToServiceRequest конвертирует HTTP request в модель сервиса
func (r *CarRequest) ToServiceRequest() *models.CarRequest {
	return &models.CarRequest{
		Brand: r.Brand,
		Name:  r.Name,
		Year:  r.Year,
		Price: r.Price,
	}
}
