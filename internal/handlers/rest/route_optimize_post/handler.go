package route_optimize_post

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"truckboard/internal/dto"
	"truckboard/internal/gateway/ai"
	"truckboard/internal/handlers/rest/respond"
	authmw "truckboard/internal/pkg/middlewares/auth"
	"truckboard/internal/service/route"
	"truckboard/pkg/logger"
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

	res, err := h.service.OptimizeRoute(r.Context(), userID, id)
	if err != nil {
		switch {
		case errors.Is(err, route.ErrRouteNotFound):
			respond.Error(h.log, w, http.StatusNotFound, "route not found")
		case errors.Is(err, route.ErrNotOwner):
			respond.Error(h.log, w, http.StatusForbidden, "route belongs to another user")
		case errors.Is(err, route.ErrNoWaypoints):
			respond.Error(h.log, w, http.StatusBadRequest, "route has no resolvable waypoints")
		case errors.Is(err, ai.ErrNotConfigured):
			respond.Error(h.log, w, http.StatusServiceUnavailable, "route optimization is not configured")
		case errors.Is(err, ai.ErrUpstream):
			respond.ErrorDetail(h.log, w, http.StatusServiceUnavailable, "route optimization is unavailable", err.Error())
		case errors.Is(err, ai.ErrBadPayload):
			// The detail carries the raw reply snippet for diagnosis.
			respond.ErrorDetail(h.log, w, http.StatusInternalServerError, "route optimization returned an unusable reply", err.Error())
		case errors.Is(err, route.ErrBadSuggestion):
			respond.Error(h.log, w, http.StatusInternalServerError, "suggestion does not match route waypoints")
		default:
			h.log.With(
				logger.NewField("error", err),
			).Error("optimize route")
			respond.Error(h.log, w, http.StatusInternalServerError, "internal error")
		}
		return
	}

	respond.JSON(h.log, w, http.StatusOK, dto.NewRoute(*res))
}
