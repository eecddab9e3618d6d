package delete_car

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-CarService/internal/api/handlers"
	"github.com/m04kA/SMC-CarService/internal/service/cars"
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

// Handle DELETE /cars/{id}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	carID := mux.Vars(r)["id"]

	if err := h.service.Delete(r.Context(), carID); err != nil {
		if errors.Is(err, cars.ErrInvalidID) {
			h.logger.Warn("DELETE /cars/{id} - Invalid car ID: car_id=%s", carID)
		} else {
			h.logger.Error("DELETE /cars/{id} - Failed to delete car: car_id=%s, error=%v", carID, err)
		}
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("DELETE /cars/{id} - Car deleted: car_id=%s", carID)
	handlers.RespondJSON(w, http.StatusOK, nil)
}
