package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	createCarHandler "github.com/m04kA/SMC-CarService/internal/api/handlers/create_car"
	deleteCarHandler "github.com/m04kA/SMC-CarService/internal/api/handlers/delete_car"
	listCarsHandler "github.com/m04kA/SMC-CarService/internal/api/handlers/list_cars"
	loginHandler "github.com/m04kA/SMC-CarService/internal/api/handlers/login"
	registerHandler "github.com/m04kA/SMC-CarService/internal/api/handlers/register"
	updateCarHandler "github.com/m04kA/SMC-CarService/internal/api/handlers/update_car"
	"github.com/m04kA/SMC-CarService/internal/app"
	"github.com/m04kA/SMC-CarService/internal/config"
	carRepo "github.com/m04kA/SMC-CarService/internal/infra/storage/car"
	"github.com/m04kA/SMC-CarService/internal/infra/storage/mongodb"
	"github.com/m04kA/SMC-CarService/internal/infra/storage/pgdoc"
	userRepo "github.com/m04kA/SMC-CarService/internal/infra/storage/user"
	authService "github.com/m04kA/SMC-CarService/internal/service/auth"
	carsService "github.com/m04kA/SMC-CarService/internal/service/cars"
	"github.com/m04kA/SMC-CarService/pkg/logger"
	"github.com/m04kA/SMC-CarService/pkg/metrics"
	"github.com/m04kA/SMC-CarService/pkg/password"
)

// storageSet репозитории выбранного хранилища и ресурс для закрытия
type storageSet struct {
	users  authService.UserRepository
	cars   carsService.CarRepository
	closer app.Closer
}

func main() {
	configPath := flag.String("config", "config.toml", "path to TOML config file")
	flag.Parse()

	// Загружаем конфигурацию
	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Инициализируем логгер
	log, err := logger.New(cfg.Logs.File, cfg.Logs.Level)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Close()

	log.Info("Starting SMC-CarService...")
	log.Info("Configuration loaded from %s", *configPath)

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName, prometheus.DefaultRegisterer)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	hasher, err := password.NewHasher(cfg.Security.BcryptCost)
	if err != nil {
		log.Fatal("Failed to initialize password hasher: %v", err)
	}

	// Подключаемся к хранилищу
	connectCtx, cancelConnect := context.WithTimeout(
		context.Background(),
		time.Duration(cfg.Database.ConnectTimeout)*time.Second,
	)
	store, err := openStorage(connectCtx, cfg, metricsCollector)
	cancelConnect()
	if err != nil {
		log.Fatal("Failed to connect to database: %v", err)
	}
	log.Info("Successfully connected to database (driver=%s, db=%s)", cfg.Database.Driver, cfg.Database.Name)

	// Метрики попыток входа пишем только если метрики включены
	var attempts authService.AttemptRecorder
	if metricsCollector != nil {
		attempts = metricsCollector
	}

	// Инициализируем сервисы
	authSvc := authService.NewService(store.users, hasher, attempts, log)
	carsSvc := carsService.NewService(store.cars, log)

	// Инициализируем handlers и роутер
	handlers := app.Handlers{
		Register:  registerHandler.NewHandler(authSvc, log).Handle,
		Login:     loginHandler.NewHandler(authSvc, log).Handle,
		ListCars:  listCarsHandler.NewHandler(carsSvc, log).Handle,
		CreateCar: createCarHandler.NewHandler(carsSvc, log).Handle,
		UpdateCar: updateCarHandler.NewHandler(carsSvc, log).Handle,
		DeleteCar: deleteCarHandler.NewHandler(carsSvc, log).Handle,
	}

	routerOpts := app.RouterOptions{AccessLog: log}
	if metricsCollector != nil {
		routerOpts.Metrics = metricsCollector
		routerOpts.MetricsPath = cfg.Metrics.Path
		routerOpts.MetricsHandler = promhttp.Handler()
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	srv := app.NewServer(
		cfg.Server.Addr(),
		app.NewRouter(handlers, routerOpts),
		app.Timeouts{
			Read:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
			Write: time.Duration(cfg.Server.WriteTimeout) * time.Second,
			Idle:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
		},
		log,
		store.closer,
	)

	// Ожидаем сигнал завершения
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Start(ctx)
	}()

	var startErr error
	select {
	case <-ctx.Done():
	case startErr = <-errCh:
		if startErr != nil {
			log.Error("Server failed to start: %v", startErr)
		}
	}

	// Stop закрывает хранилище и тогда, когда сервер не смог стартовать
	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Duration(cfg.Server.ShutdownTimeout)*time.Second,
	)
	stopErr := srv.Stop(shutdownCtx)
	cancel()
	if stopErr != nil {
		log.Error("Shutdown finished with errors: %v", stopErr)
	}

	if startErr != nil {
		stop()
		log.Close()
		os.Exit(1)
	}
}

// openStorage подключается к хранилищу, указанному в database.driver,
// и готовит уникальный индекс по username
func openStorage(ctx context.Context, cfg *config.Config, m *metrics.Metrics) (*storageSet, error) {
	switch cfg.Database.Driver {
	case config.DriverPostgres:
		db, err := pgdoc.Open(ctx, cfg.Database.URI, pgdoc.PoolOptions{
			MaxOpenConns:    cfg.Database.MaxPoolSize,
			MaxIdleConns:    cfg.Database.MaxIdleConns,
			ConnMaxLifetime: time.Duration(cfg.Database.ConnMaxLifetime) * time.Second,
		})
		if err != nil {
			return nil, err
		}
		if err := pgdoc.EnsureSchema(ctx, db); err != nil {
			_ = db.Close()
			return nil, err
		}
		if m != nil {
			prometheus.MustRegister(collectors.NewDBStatsCollector(db, cfg.Database.Name))
		}
		return &storageSet{
			users:  pgdoc.NewUserRepository(db),
			cars:   pgdoc.NewCarRepository(db),
			closer: pgdoc.Closer{DB: db},
		}, nil

	default:
		opts := mongodb.Options{
			URI:            cfg.Database.URI,
			ConnectTimeout: time.Duration(cfg.Database.ConnectTimeout) * time.Second,
			MaxPoolSize:    uint64(cfg.Database.MaxPoolSize),
		}
		if m != nil {
			opts.Observer = m
		}

		client, err := mongodb.Connect(ctx, opts)
		if err != nil {
			return nil, err
		}
		db := client.Database(cfg.Database.Name)
		if err := mongodb.EnsureIndexes(ctx, db); err != nil {
			_ = client.Disconnect(context.Background())
			return nil, err
		}
		return &storageSet{
			users:  userRepo.NewRepository(db),
			cars:   carRepo.NewRepository(db),
			closer: mongodb.Closer{Client: client},
		}, nil
	}
}
