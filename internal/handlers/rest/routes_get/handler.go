package routes_get

import (
	"net/http"
	"time"

	"truckboard/internal/dto"
	"truckboard/internal/entities"
	"truckboard/internal/handlers/rest/respond"
	authmw "truckboard/internal/pkg/middlewares/auth"
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

	var filter entities.RouteFilter
	if dateStr := r.URL.Query().Get("date"); dateStr != "" {
		date, err := time.Parse(time.DateOnly, dateStr)
		if err != nil {
			respond.Error(h.log, w, http.StatusBadRequest, "invalid date, expected YYYY-MM-DD")
			return
		}
		filter.Date = &date
	}

	res, err := h.service.GetRoutes(r.Context(), userID, filter)
	if err != nil {
		respond.Error(h.log, w, http.StatusInternalServerError, "internal error")
		return
	}

	respond.JSON(h.log, w, http.StatusOK, dto.NewRoutes(res))
}
