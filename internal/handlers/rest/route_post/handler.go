package route_post

import (
	"encoding/json"
	"errors"
	"net/http"

	"truckboard/internal/dto"
	"truckboard/internal/entities"
	"truckboard/internal/handlers/rest/respond"
	authmw "truckboard/internal/pkg/middlewares/auth"
	"truckboard/internal/service/route"
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

	var routeDTO dto.RouteCreate
	err := json.NewDecoder(r.Body).Decode(&routeDTO)
	if err != nil {
		respond.Error(h.log, w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	res, err := h.service.CreateRoute(r.Context(), userID, entities.RouteDraft{
		Date:            routeDTO.Date,
		Waypoints:       routeDTO.Waypoints,
		DistanceKM:      routeDTO.DistanceKM,
		DurationMinutes: routeDTO.DurationMinutes,
	})
	if err != nil {
		switch {
		case errors.Is(err, route.ErrInvalidDate),
			errors.Is(err, route.ErrInvalidDistance),
			errors.Is(err, route.ErrInvalidDuration):
			respond.Error(h.log, w, http.StatusBadRequest, "invalid route")
		default:
			respond.Error(h.log, w, http.StatusInternalServerError, "internal error")
		}
		return
	}

	respond.JSON(h.log, w, http.StatusCreated, dto.NewRoute(*res))
}
