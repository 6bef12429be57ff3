package stations_get

import (
	"errors"
	"net/http"

	"truckboard/internal/dto"
	"truckboard/internal/entities"
	"truckboard/internal/handlers/rest/respond"
	"truckboard/internal/service/station"
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
	filter := entities.StationFilter{
		Type: entities.StationType(r.URL.Query().Get("type")),
	}

	res, err := h.service.GetStations(r.Context(), filter)
	if err != nil {
		switch {
		case errors.Is(err, station.ErrInvalidType):
			respond.Error(h.log, w, http.StatusBadRequest, "invalid type filter")
		default:
			respond.Error(h.log, w, http.StatusInternalServerError, "internal error")
		}
		return
	}

	respond.JSON(h.log, w, http.StatusOK, dto.NewStations(res))
}
