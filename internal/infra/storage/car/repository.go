package car

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/m04kA/SMC-CarService/internal/domain"
)

// carDocument документ коллекции cars
type carDocument struct {
	ID    primitive.ObjectID `bson:"_id,omitempty"`
	Brand string             `bson:"brand"`
	Name  string             `bson:"name"`
	Year  float64            `bson:"year"`
	Price float64            `bson:"price"`
}

func (d *carDocument) toDomain() *domain.Car {
	return &domain.Car{
		ID:    d.ID.Hex(),
		Brand: d.Brand,
		Name:  d.Name,
		Year:  d.Year,
		Price: d.Price,
	}
}

// Repository репозиторий автомобилей поверх MongoDB
type Repository struct {
	collection *mongo.Collection
}

// NewRepository создает новый экземпляр репозитория автомобилей
func NewRepository(db *mongo.Database) *Repository {
	return &Repository{collection: db.Collection(domain.CarsCollection)}
}

// List возвращает все автомобили в порядке хранения
func (r *Repository) List(ctx context.Context) ([]*domain.Car, error) {
	cursor, err := r.collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("%w: List - find cars: %v", ErrExecQuery, err)
	}
	defer cursor.Close(ctx)

	cars := make([]*domain.Car, 0)
	for cursor.Next(ctx) {
		var doc carDocument
		if err := cursor.Decode(&doc); err != nil {
			return nil, fmt.Errorf("%w: List - decode car: %v", ErrDecode, err)
		}
		cars = append(cars, doc.toDomain())
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("%w: List - iterate cursor: %v", ErrExecQuery, err)
	}

	return cars, nil
}

// Create сохраняет новый автомобиль, id выдается хранилищем
func (r *Repository) Create(ctx context.Context, car *domain.Car) (*domain.Car, error) {
	doc := carDocument{
		Brand: car.Brand,
		Name:  car.Name,
		Year:  car.Year,
		Price: car.Price,
	}

	res, err := r.collection.InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("%w: Create - insert car: %v", ErrExecQuery, err)
	}

	if id, ok := res.InsertedID.(primitive.ObjectID); ok {
		car.ID = id.Hex()
	}
	return car, nil
}

// Update перезаписывает все четыре поля автомобиля.
// Если документ не найден, ничего не происходит (без upsert)
func (r *Repository) Update(ctx context.Context, id string, car *domain.Car) error {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return fmt.Errorf("%w: %q: %v", ErrInvalidID, id, err)
	}

	update := bson.M{"$set": bson.M{
		domain.FieldBrand: car.Brand,
		domain.FieldName:  car.Name,
		domain.FieldYear:  car.Year,
		domain.FieldPrice: car.Price,
	}}

	if _, err := r.collection.UpdateOne(ctx, bson.M{domain.FieldID: objectID}, update); err != nil {
		return fmt.Errorf("%w: Update - update car id=%s: %v", ErrExecQuery, id, err)
	}
	return nil
}

// Delete удаляет автомобиль. Отсутствие документа не считается ошибкой
func (r *Repository) Delete(ctx context.Context, id string) error {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return fmt.Errorf("%w: %q: %v", ErrInvalidID, id, err)
	}

	if _, err := r.collection.DeleteOne(ctx, bson.M{domain.FieldID: objectID}); err != nil {
		return fmt.Errorf("%w: Delete - delete car id=%s: %v", ErrExecQuery, id, err)
	}
	return nil
}
