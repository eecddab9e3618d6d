package cars

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-CarService/internal/infra/storage"
	"github.com/m04kA/SMC-CarService/internal/service/cars/models"
)

// Service сервис для работы с автомобилями
type Service struct {
	carRepo CarRepository
	logger  Logger
}

// NewService создает новый экземпляр сервиса автомобилей
func NewService(carRepo CarRepository, logger Logger) *Service {
	return &Service{
		carRepo: carRepo,
		logger:  logger,
	}
}

// List возвращает все автомобили, отсортированные по марке
func (s *Service) List(ctx context.Context) ([]*models.CarResponse, error) {
	cars, err := s.carRepo.List(ctx)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	sortByBrand(cars)

	s.logger.Info("List: successfully fetched %d cars", len(cars))
	return models.FromDomainCarList(cars), nil
}

// Create сохраняет автомобиль как есть, без валидации значений
func (s *Service) Create(ctx context.Context, req *models.CarRequest) (*models.CarResponse, error) {
	s.logger.Info("Create: creating car brand=%s name=%s year=%v", req.Brand, req.Name, req.Year)

	car, err := s.carRepo.Create(ctx, req.ToDomain())
	if err != nil {
		s.logger.Error("Create: repository error: %v", err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Create: successfully created car id=%s", car.ID)
	return models.FromDomainCar(car), nil
}

// Update перезаписывает все поля автомобиля.
// Несуществующий id не является ошибкой и не создает документ
func (s *Service) Update(ctx context.Context, id string, req *models.CarRequest) error {
	s.logger.Info("Update: updating car id=%s", id)

	if err := s.carRepo.Update(ctx, id, req.ToDomain()); err != nil {
		return s.translateError("Update", id, err)
	}

	s.logger.Info("Update: car id=%s updated", id)
	return nil
}

// Delete удаляет автомобиль. Несуществующий id не является ошибкой
func (s *Service) Delete(ctx context.Context, id string) error {
	s.logger.Info("Delete: deleting car id=%s", id)

	if err := s.carRepo.Delete(ctx, id); err != nil {
		return s.translateError("Delete", id, err)
	}

	s.logger.Info("Delete: car id=%s deleted", id)
	return nil
}

func (s *Service) translateError(op, id string, err error) error {
	if errors.Is(err, storage.ErrInvalidID) {
		s.logger.Warn("%s: invalid car id=%s: %v", op, id, err)
		return fmt.Errorf("%w: %s: %v", ErrInvalidID, op, err)
	}
	s.logger.Error("%s: repository error for car id=%s: %v", op, id, err)
	return fmt.Errorf("%w: %s - repository error: %v", ErrInternal, op, err)
}
