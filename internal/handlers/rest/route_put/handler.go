package route_put

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
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

	idStr := mux.Vars(r)["id"]
	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		respond.Error(h.log, w, http.StatusBadRequest, "invalid id")
		return
	}

	var routeDTO dto.RouteUpdate
	err = json.NewDecoder(r.Body).Decode(&routeDTO)
	if err != nil {
		respond.Error(h.log, w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	res, err := h.service.UpdateRoute(r.Context(), userID, id, entities.RouteDraft{
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
		case errors.Is(err, route.ErrRouteNotFound):
			respond.Error(h.log, w, http.StatusNotFound, "route not found")
		case errors.Is(err, route.ErrNotOwner):
			respond.Error(h.log, w, http.StatusForbidden, "route belongs to another user")
		default:
			respond.Error(h.log, w, http.StatusInternalServerError, "internal error")
		}
		return
	}

	respond.JSON(h.log, w, http.StatusOK, dto.NewRoute(*res))
}
