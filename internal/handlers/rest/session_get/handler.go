package session_get

import (
	"errors"
	"net/http"

	"truckboard/internal/dto"
	"truckboard/internal/handlers/rest/respond"
	authmw "truckboard/internal/pkg/middlewares/auth"
	"truckboard/internal/service/auth"
)

type Handler struct {
	log     handlerLogger
	service Service
}

func New(log handlerLogger, service Service) *Handler {
	handlerLog := log.With()

	return &Handler{
		log:     handlerLog,
		service: service,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	userID, ok := authmw.UserID(r.Context())
	if !ok {
		respond.Error(h.log, w, http.StatusUnauthorized, "authentication required")
		return
	}

	res, err := h.service.GetUser(r.Context(), userID)
	if err != nil {
		switch {
		// The account can be gone while its token is still valid.
		case errors.Is(err, auth.ErrUserNotFound):
			respond.Error(h.log, w, http.StatusUnauthorized, "authentication required")
		default:
			respond.Error(h.log, w, http.StatusInternalServerError, "internal error")
		}
		return
	}

	respond.JSON(h.log, w, http.StatusOK, dto.NewUser(*res))
}
