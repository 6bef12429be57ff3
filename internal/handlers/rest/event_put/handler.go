package event_put

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
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

	idStr := mux.Vars(r)["id"]
	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		respond.Error(h.log, w, http.StatusBadRequest, "invalid id")
		return
	}

	var entryDTO dto.ScheduleEntryUpdate
	err = json.NewDecoder(r.Body).Decode(&entryDTO)
	if err != nil {
		respond.Error(h.log, w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	var endAt time.Time
	if entryDTO.EndAt != nil {
		endAt = *entryDTO.EndAt
	}

	res, err := h.service.UpdateEntry(r.Context(), userID, id, entities.ScheduleEntryDraft{
		Title:      entryDTO.Title,
		Type:       entities.ScheduleEntryType(entryDTO.Type),
		StartAt:    entryDTO.StartAt,
		EndAt:      endAt,
		DeliveryID: entryDTO.DeliveryID,
		Notes:      entryDTO.Notes,
	})
	if err != nil {
		switch {
		case errors.Is(err, schedule.ErrMissingRequiredFields),
			errors.Is(err, schedule.ErrInvalidType),
			errors.Is(err, schedule.ErrInvalidTimeRange):
			respond.Error(h.log, w, http.StatusBadRequest, "invalid schedule entry")
		case errors.Is(err, schedule.ErrEntryNotFound):
			respond.Error(h.log, w, http.StatusNotFound, "schedule entry not found")
		case errors.Is(err, schedule.ErrNotOwner):
			respond.Error(h.log, w, http.StatusForbidden, "schedule entry belongs to another user")
		default:
			respond.Error(h.log, w, http.StatusInternalServerError, "internal error")
		}
		return
	}

	respond.JSON(h.log, w, http.StatusOK, dto.NewScheduleEntry(*res))
}
