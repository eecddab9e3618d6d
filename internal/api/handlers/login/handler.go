package login

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-CarService/internal/api/handlers"
	"github.com/m04kA/SMC-CarService/internal/service/auth"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgUnauthorized       = "неверное имя пользователя или пароль"
)

type Handler struct {
	service AuthService
	logger  Logger
}

func NewHandler(service AuthService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /login
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CredentialsRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /login - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	err := h.service.Login(r.Context(), req.ToServiceRequest())
	if errors.Is(err, auth.ErrUnauthorized) {
		h.logger.Warn("POST /login - Unauthorized: username=%s", req.Username)
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}
	if err != nil {
		h.logger.Error("POST /login - Failed to login: username=%s, error=%v", req.Username, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("POST /login - User logged in: username=%s", req.Username)
	handlers.RespondJSON(w, http.StatusOK, nil)
}
