package pgdoc

import (
	"encoding/json"
	"fmt"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-CarService/internal/domain"
)

type userDocument struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type carDocument struct {
	Brand string  `json:"brand"`
	Name  string  `json:"name"`
	Year  float64 `json:"year"`
	Price float64 `json:"price"`
}

func encodeCar(car *domain.Car) ([]byte, error) {
	raw, err := json.Marshal(carDocument{
		Brand: car.Brand,
		Name:  car.Name,
		Year:  car.Year,
		Price: car.Price,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: car: %v", ErrEncode, err)
	}
	return raw, nil
}

func decodeCar(id string, raw []byte) (*domain.Car, error) {
	var doc carDocument
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("%w: car id=%s: %v", ErrScanRow, id, err)
	}
	return &domain.Car{
		ID:    id,
		Brand: doc.Brand,
		Name:  doc.Name,
		Year:  doc.Year,
		Price: doc.Price,
	}, nil
}

// parseID проверяет, что id является UUID
func parseID(id string) (uuid.UUID, error) {
	parsed, err := uuid.Parse(id)
	if err != nil {
		return uuid.Nil, fmt.Errorf("%w: %q: %v", ErrInvalidID, id, err)
	}
	return parsed, nil
}
