package mongodb

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/event"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"github.com/m04kA/SMC-CarService/internal/domain"
)

var (
	// ErrConnect возвращается, когда не удалось подключиться к MongoDB
	ErrConnect = errors.New("mongodb: failed to connect")

	// ErrCreateIndex возвращается при ошибке создания индекса
	ErrCreateIndex = errors.New("mongodb: failed to create index")
)

// OperationObserver получает длительность каждой команды драйвера
type OperationObserver interface {
	ObserveDBOperation(operation string, success bool, duration time.Duration)
}

// Options параметры подключения
type Options struct {
	URI            string
	ConnectTimeout time.Duration
	MaxPoolSize    uint64
	Observer       OperationObserver
}

// Connect подключается к MongoDB и проверяет соединение ping'ом
func Connect(ctx context.Context, opts Options) (*mongo.Client, error) {
	clientOpts := options.Client().ApplyURI(opts.URI)
	if opts.ConnectTimeout > 0 {
		clientOpts.SetConnectTimeout(opts.ConnectTimeout)
		clientOpts.SetServerSelectionTimeout(opts.ConnectTimeout)
	}
	if opts.MaxPoolSize > 0 {
		clientOpts.SetMaxPoolSize(opts.MaxPoolSize)
	}
	if opts.Observer != nil {
		clientOpts.SetMonitor(NewCommandMonitor(opts.Observer))
	}

	client, err := mongo.Connect(ctx, clientOpts)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConnect, err)
	}

	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("%w: ping: %v", ErrConnect, err)
	}

	return client, nil
}

// NewCommandMonitor передает длительность команд драйвера в observer
func NewCommandMonitor(observer OperationObserver) *event.CommandMonitor {
	return &event.CommandMonitor{
		Succeeded: func(_ context.Context, e *event.CommandSucceededEvent) {
			observer.ObserveDBOperation(e.CommandName, true, e.Duration)
		},
		Failed: func(_ context.Context, e *event.CommandFailedEvent) {
			observer.ObserveDBOperation(e.CommandName, false, e.Duration)
		},
	}
}

// EnsureIndexes создает уникальный индекс по username в коллекции пользователей
func EnsureIndexes(ctx context.Context, db *mongo.Database) error {
	model := mongo.IndexModel{
		Keys:    bson.D{{Key: domain.FieldUsername, Value: 1}},
		Options: options.Index().SetUnique(true).SetName("users_username_unique"),
	}

	if _, err := db.Collection(domain.UsersCollection).Indexes().CreateOne(ctx, model); err != nil {
		return fmt.Errorf("%w: users.username: %v", ErrCreateIndex, err)
	}
	return nil
}

// Closer адаптирует *mongo.Client к жизненному циклу сервера
type Closer struct {
	Client *mongo.Client
}

func (c Closer) Close(ctx context.Context) error {
	return c.Client.Disconnect(ctx)
}

func (c Closer) String() string {
	return "mongodb"
}
