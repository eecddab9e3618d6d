package create_car

import (
	"net/http"

	"github.com/m04kA/SMC-CarService/internal/api/handlers"
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

// Handle POST /cars
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CarRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /cars - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	car, err := h.service.Create(r.Context(), req.ToServiceRequest())
	if err != nil {
		h.logger.Error("POST /cars - Failed to create car: brand=%s, name=%s, error=%v", req.Brand, req.Name, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("POST /cars - Car created successfully: car_id=%s", car.ID)
	handlers.RespondJSON(w, http.StatusOK, car)
}
