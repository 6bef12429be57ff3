package login_post

import (
	"encoding/json"
	"errors"
	"net/http"

	"truckboard/internal/dto"
	"truckboard/internal/entities"
	"truckboard/internal/handlers/rest/respond"
	authmw "truckboard/internal/pkg/middlewares/auth"
	"truckboard/internal/service/auth"
	"truckboard/pkg/logger"
)

type Handler struct {
	log      handlerLogger
	service  Service
	sessions SessionIssuer
}

func New(log handlerLogger, service Service, sessions SessionIssuer) *Handler {
	handlerLog := log.With()

	return &Handler{
		log:      handlerLog,
		service:  service,
		sessions: sessions,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var loginDTO dto.LoginRequest
	err := json.NewDecoder(r.Body).Decode(&loginDTO)
	if err != nil {
		respond.Error(h.log, w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	res, err := h.service.Login(r.Context(), entities.Credentials{
		Username: loginDTO.Username,
		Password: loginDTO.Password,
	})
	if err != nil {
		switch {
		case errors.Is(err, auth.ErrMissingRequiredFields):
			respond.Error(h.log, w, http.StatusBadRequest, "missing credentials")
		case errors.Is(err, auth.ErrInvalidCredentials):
			respond.Error(h.log, w, http.StatusUnauthorized, "invalid credentials")
		default:
			respond.Error(h.log, w, http.StatusInternalServerError, "internal error")
		}
		return
	}

	token, expiresAt, err := h.sessions.Issue(res.ID, res.Username)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("issue session token")
		respond.Error(h.log, w, http.StatusInternalServerError, "internal error")
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     authmw.CookieName,
		Value:    token,
		Path:     "/",
		Expires:  expiresAt,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	respond.JSON(h.log, w, http.StatusOK, dto.NewUser(*res))
}
