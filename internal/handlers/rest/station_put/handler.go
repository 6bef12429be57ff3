package station_put

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
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
	idStr := mux.Vars(r)["id"]
	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		respond.Error(h.log, w, http.StatusBadRequest, "invalid id")
		return
	}

	var stationDTO dto.StationUpdate
	err = json.NewDecoder(r.Body).Decode(&stationDTO)
	if err != nil {
		respond.Error(h.log, w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	res, err := h.service.UpdateStation(r.Context(), id, entities.StationDraft{
		Name:         stationDTO.Name,
		Type:         entities.StationType(stationDTO.Type),
		Latitude:     stationDTO.Latitude,
		Longitude:    stationDTO.Longitude,
		Address:      stationDTO.Address,
		Amenities:    stationDTO.Amenities,
		PricePerUnit: stationDTO.PricePerUnit,
		Currency:     stationDTO.Currency,
		Open24h:      stationDTO.Open24h,
	})
	if err != nil {
		switch {
		case errors.Is(err, station.ErrMissingRequiredFields),
			errors.Is(err, station.ErrInvalidType),
			errors.Is(err, station.ErrInvalidCoordinates):
			respond.Error(h.log, w, http.StatusBadRequest, "invalid station")
		case errors.Is(err, station.ErrStationNotFound):
			respond.Error(h.log, w, http.StatusNotFound, "station not found")
		default:
			respond.Error(h.log, w, http.StatusInternalServerError, "internal error")
		}
		return
	}

	respond.JSON(h.log, w, http.StatusOK, dto.NewStation(*res))
}
