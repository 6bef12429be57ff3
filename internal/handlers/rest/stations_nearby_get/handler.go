package stations_nearby_get

import (
	"errors"
	"net/http"
	"strconv"

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
	params := r.URL.Query()

	lat, err := strconv.ParseFloat(params.Get("lat"), 64)
	if err != nil {
		respond.Error(h.log, w, http.StatusBadRequest, "invalid lat")
		return
	}
	lon, err := strconv.ParseFloat(params.Get("lon"), 64)
	if err != nil {
		respond.Error(h.log, w, http.StatusBadRequest, "invalid lon")
		return
	}
	radius, err := strconv.ParseFloat(params.Get("radius_km"), 64)
	if err != nil {
		respond.Error(h.log, w, http.StatusBadRequest, "invalid radius_km")
		return
	}

	res, err := h.service.Nearby(r.Context(), entities.NearbyQuery{
		Latitude:  lat,
		Longitude: lon,
		RadiusKM:  radius,
		Type:      entities.StationType(params.Get("type")),
	})
	if err != nil {
		switch {
		case errors.Is(err, station.ErrInvalidCoordinates),
			errors.Is(err, station.ErrInvalidRadius),
			errors.Is(err, station.ErrInvalidType):
			respond.Error(h.log, w, http.StatusBadRequest, "invalid nearby query")
		default:
			respond.Error(h.log, w, http.StatusInternalServerError, "internal error")
		}
		return
	}

	respond.JSON(h.log, w, http.StatusOK, dto.NewNearbyStations(res))
}
