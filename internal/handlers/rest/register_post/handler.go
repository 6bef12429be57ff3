package register_post

import (
	"encoding/json"
	"errors"
	"net/http"

	"truckboard/internal/dto"
	"truckboard/internal/entities"
	"truckboard/internal/handlers/rest/respond"
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
	var registerDTO dto.RegisterRequest
	err := json.NewDecoder(r.Body).Decode(&registerDTO)
	if err != nil {
		respond.Error(h.log, w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	res, err := h.service.Register(r.Context(), entities.UserDraft{
		Username:      registerDTO.Username,
		Password:      registerDTO.Password,
		Name:          registerDTO.Name,
		Email:         registerDTO.Email,
		Phone:         registerDTO.Phone,
		LicenseNumber: registerDTO.LicenseNumber,
		TruckPlate:    registerDTO.TruckPlate,
	})
	if err != nil {
		switch {
		case errors.Is(err, auth.ErrMissingRequiredFields),
			errors.Is(err, auth.ErrInvalidUsername),
			errors.Is(err, auth.ErrInvalidPassword):
			respond.Error(h.log, w, http.StatusBadRequest, "invalid registration data")
		case errors.Is(err, auth.ErrUsernameTaken):
			respond.Error(h.log, w, http.StatusConflict, "username already taken")
		default:
			respond.Error(h.log, w, http.StatusInternalServerError, "internal error")
		}
		return
	}

	respond.JSON(h.log, w, http.StatusCreated, dto.NewUser(*res))
}
