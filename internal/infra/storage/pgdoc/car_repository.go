package pgdoc

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/m04kA/SMC-CarService/internal/domain"
	"github.com/m04kA/SMC-CarService/pkg/psqlbuilder"
)

// CarRepository репозиторий автомобилей поверх jsonb-документов PostgreSQL
type CarRepository struct {
	db DBExecutor
}

// NewCarRepository создает новый экземпляр репозитория автомобилей
func NewCarRepository(db DBExecutor) *CarRepository {
	return &CarRepository{db: db}
}

// List возвращает все автомобили в порядке вставки
func (r *CarRepository) List(ctx context.Context) ([]*domain.Car, error) {
	query, args, err := psqlbuilder.Select("id", "doc").
		From(domain.CarsCollection).
		OrderBy("created_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute select: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	cars := make([]*domain.Car, 0)
	for rows.Next() {
		var (
			id  string
			raw []byte
		)
		if err := rows.Scan(&id, &raw); err != nil {
			return nil, fmt.Errorf("%w: List - scan car: %v", ErrScanRow, err)
		}
		car, err := decodeCar(id, raw)
		if err != nil {
			return nil, err
		}
		cars = append(cars, car)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: List - iterate rows: %v", ErrExecQuery, err)
	}

	return cars, nil
}

// Create сохраняет новый автомобиль с новым UUID
func (r *CarRepository) Create(ctx context.Context, car *domain.Car) (*domain.Car, error) {
	raw, err := encodeCar(car)
	if err != nil {
		return nil, err
	}

	id := uuid.New()
	query, args, err := psqlbuilder.Insert(domain.CarsCollection).
		Columns("id", "doc").
		Values(id, string(raw)).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	car.ID = id.String()
	return car, nil
}

// Update перезаписывает документ автомобиля. Отсутствие строки не ошибка
func (r *CarRepository) Update(ctx context.Context, id string, car *domain.Car) error {
	carID, err := parseID(id)
	if err != nil {
		return err
	}

	raw, err := encodeCar(car)
	if err != nil {
		return err
	}

	query, args, err := psqlbuilder.Update(domain.CarsCollection).
		Set("doc", string(raw)).
		Where(squirrel.Eq{"id": carID.String()}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: Update - build update query: %v", ErrBuildQuery, err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: Update - execute update id=%s: %v", ErrExecQuery, id, err)
	}
	return nil
}

// Delete удаляет автомобиль. Отсутствие строки не ошибка
func (r *CarRepository) Delete(ctx context.Context, id string) error {
	carID, err := parseID(id)
	if err != nil {
		return err
	}

	query, args, err := psqlbuilder.Delete(domain.CarsCollection).
		Where(squirrel.Eq{"id": carID.String()}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: Delete - execute delete id=%s: %v", ErrExecQuery, id, err)
	}
	return nil
}
