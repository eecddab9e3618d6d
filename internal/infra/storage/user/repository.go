package user

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/m04kA/SMC-CarService/internal/domain"
)

// userDocument документ коллекции users
type userDocument struct {
	ID       primitive.ObjectID `bson:"_id,omitempty"`
	Username string             `bson:"username"`
	Password string             `bson:"password"`
}

// Repository репозиторий пользователей поверх MongoDB
type Repository struct {
	collection *mongo.Collection
}

// NewRepository создает новый экземпляр репозитория пользователей
func NewRepository(db *mongo.Database) *Repository {
	return &Repository{collection: db.Collection(domain.UsersCollection)}
}

// Create сохраняет пользователя. Уникальность username обеспечивается индексом
func (r *Repository) Create(ctx context.Context, user *domain.User) (*domain.User, error) {
	doc := userDocument{
		Username: user.Username,
		Password: user.Password,
	}

	res, err := r.collection.InsertOne(ctx, doc)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, ErrUserAlreadyExists
		}
		return nil, fmt.Errorf("%w: Create - insert user: %v", ErrExecQuery, err)
	}

	if id, ok := res.InsertedID.(primitive.ObjectID); ok {
		user.ID = id.Hex()
	}
	return user, nil
}

// GetByUsername возвращает первого пользователя с указанным username
func (r *Repository) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	var doc userDocument
	err := r.collection.FindOne(ctx, bson.M{domain.FieldUsername: username}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByUsername - find user: %v", ErrExecQuery, err)
	}

	return &domain.User{
		ID:       doc.ID.Hex(),
		Username: doc.Username,
		Password: doc.Password,
	}, nil
}
