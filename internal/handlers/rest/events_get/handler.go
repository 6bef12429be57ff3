package events_get

import (
	"errors"
	"net/http"
	"time"

	"truckboard/internal/dto"
	"truckboard/internal/entities"
	"truckboard/internal/handlers/rest/respond"
	authmw "truckboard/internal/pkg/middlewares/auth"
	"truckboard/internal/service/schedule"
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

	var filter entities.ScheduleFilter
	if fromStr := r.URL.Query().Get("from"); fromStr != "" {
		from, err := time.Parse(time.RFC3339, fromStr)
		if err != nil {
			respond.Error(h.log, w, http.StatusBadRequest, "invalid from, expected RFC 3339")
			return
		}
		filter.From = &from
	}
	if toStr := r.URL.Query().Get("to"); toStr != "" {
		to, err := time.Parse(time.RFC3339, toStr)
		if err != nil {
			respond.Error(h.log, w, http.StatusBadRequest, "invalid to, expected RFC 3339")
			return
		}
		filter.To = &to
	}

	res, err := h.service.GetEntries(r.Context(), userID, filter)
	if err != nil {
		switch {
		case errors.Is(err, schedule.ErrInvalidTimeRange):
			respond.Error(h.log, w, http.StatusBadRequest, "invalid time range")
		default:
			respond.Error(h.log, w, http.StatusInternalServerError, "internal error")
		}
		return
	}

	respond.JSON(h.log, w, http.StatusOK, dto.NewScheduleEntries(res))
}
