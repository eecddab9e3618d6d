package register

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-CarService/internal/api/handlers"
	"github.com/m04kA/SMC-CarService/internal/service/auth"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidCredentials = "имя пользователя и пароль обязательны, пароль не длиннее 72 байт"
	msgUserExists         = "пользователь с таким именем уже существует"
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

// Handle POST /register
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CredentialsRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /register - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	err := h.service.Register(r.Context(), req.ToServiceRequest())
	if err != nil {
		switch {
		case errors.Is(err, auth.ErrInvalidInput):
			h.logger.Warn("POST /register - Invalid credentials: %v", err)
			handlers.RespondBadRequest(w, msgInvalidCredentials)

		case errors.Is(err, auth.ErrUserAlreadyExists):
			h.logger.Warn("POST /register - User already exists: username=%s", req.Username)
			handlers.RespondConflict(w, msgUserExists)

		default:
			h.logger.Error("POST /register - Failed to register user: username=%s, error=%v", req.Username, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /register - User registered successfully: username=%s", req.Username)
	handlers.RespondJSON(w, http.StatusOK, nil)
}
