package app

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-CarService/internal/api/handlers"
	"github.com/m04kA/SMC-CarService/internal/api/middleware"
)

// Handlers обработчики эндпоинтов
type Handlers struct {
	Register  http.HandlerFunc
	Login     http.HandlerFunc
	ListCars  http.HandlerFunc
	CreateCar http.HandlerFunc
	UpdateCar http.HandlerFunc
	DeleteCar http.HandlerFunc
}

// RouterOptions необязательные части роутера
type RouterOptions struct {
	AccessLog middleware.Logger
	// Metrics и MetricsHandler задаются, только если метрики включены
	Metrics        middleware.HTTPObserver
	MetricsPath    string
	MetricsHandler http.Handler
}

// NewRouter собирает маршруты сервиса
func NewRouter(h Handlers, opts RouterOptions) *mux.Router {
	r := mux.NewRouter()

	if opts.AccessLog != nil {
		r.Use(middleware.RequestID(opts.AccessLog))
	}
	if opts.Metrics != nil {
		r.Use(middleware.MetricsMiddleware(opts.Metrics))
	}
	if opts.MetricsHandler != nil && opts.MetricsPath != "" {
		r.Handle(opts.MetricsPath, opts.MetricsHandler).Methods(http.MethodGet)
	}

	r.HandleFunc("/health", func(w http.ResponseWriter, _ *http.Request) {
		handlers.RespondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	}).Methods(http.MethodGet)

	// Аутентификация
	r.HandleFunc("/register", h.Register).Methods(http.MethodPost)
	r.HandleFunc("/login", h.Login).Methods(http.MethodPost)

	// Автомобили
	r.HandleFunc("/cars", h.ListCars).Methods(http.MethodGet)
	r.HandleFunc("/cars", h.CreateCar).Methods(http.MethodPost)
	r.HandleFunc("/cars/{id}", h.UpdateCar).Methods(http.MethodPut)
	r.HandleFunc("/cars/{id}", h.DeleteCar).Methods(http.MethodDelete)

	return r
}
