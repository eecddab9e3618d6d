package update_car

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-CarService/internal/api/handlers"
	"github.com/m04kA/SMC-CarService/internal/service/cars"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
)

type Handler struct {
	service CarService
	logger  Logger
}

func NewHandler(service CarService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle PUT /cars/{id}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	carID := mux.Vars(r)["id"]

	var req CarRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /cars/{id} - Invalid request body: car_id=%s, error=%v", carID, err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	// Некорректный id, как и любая ошибка хранилища, отдается как 500
	if err := h.service.Update(r.Context(), carID, req.ToServiceRequest()); err != nil {
		if errors.Is(err, cars.ErrInvalidID) {
			h.logger.Warn("PUT /cars/{id} - Invalid car ID: car_id=%s", carID)
		} else {
			h.logger.Error("PUT /cars/{id} - Failed to update car: car_id=%s, error=%v", carID, err)
		}
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("PUT /cars/{id} - Car updated: car_id=%s", carID)
	handlers.RespondJSON(w, http.StatusOK, nil)
}
