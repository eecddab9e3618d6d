package models

import "github.com/m04kA/SMC-CarService/internal/domain"

// CarRequest поля автомобиля для создания и полной перезаписи
type CarRequest struct {
	Brand string
	Name  string
	Year  float64
	Price float64
}

// ToDomain конвертирует запрос в доменную модель
func (r *CarRequest) ToDomain() *domain.Car {
	return &domain.Car{
		Brand: r.Brand,
		Name:  r.Name,
		Year:  r.Year,
		Price: r.Price,
	}
}

// CarResponse автомобиль в ответе API
type CarResponse struct {
	ID    string  `json:"_id"`
	Brand string  `json:"brand"`
	Name  string  `json:"name"`
	Year  float64 `json:"year"`
	Price float64 `json:"price"`
}

// FromDomainCar конвертирует доменную модель в ответ
func FromDomainCar(car *domain.Car) *CarResponse {
	return &CarResponse{
		ID:    car.ID,
		Brand: car.Brand,
		Name:  car.Name,
		Year:  car.Year,
		Price: car.Price,
	}
}

// FromDomainCarList конвертирует список, пустой список остается пустым массивом
func FromDomainCarList(cars []*domain.Car) []*CarResponse {
	result := make([]*CarResponse, 0, len(cars))
	for _, car := range cars {
		result = append(result, FromDomainCar(car))
	}
	return result
}
