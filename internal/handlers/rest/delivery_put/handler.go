package delivery_put

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
	"truckboard/internal/service/delivery"
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

	var deliveryDTO dto.DeliveryUpdate
	err = json.NewDecoder(r.Body).Decode(&deliveryDTO)
	if err != nil {
		respond.Error(h.log, w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	res, err := h.service.UpdateDelivery(r.Context(), userID, id, entities.DeliveryDraft{
		Destination: deliveryDTO.Destination,
		Address:     deliveryDTO.Address,
		ScheduledAt: deliveryDTO.ScheduledAt,
		Status:      entities.DeliveryStatusType(deliveryDTO.Status),
		ItemIDs:     deliveryDTO.ItemIDs,
		Notes:       deliveryDTO.Notes,
	})
	if err != nil {
		switch {
		case errors.Is(err, delivery.ErrMissingRequiredFields),
			errors.Is(err, delivery.ErrInvalidStatus),
			errors.Is(err, delivery.ErrInvalidSchedule):
			respond.Error(h.log, w, http.StatusBadRequest, "invalid delivery")
		case errors.Is(err, delivery.ErrDeliveryNotFound):
			respond.Error(h.log, w, http.StatusNotFound, "delivery not found")
		case errors.Is(err, delivery.ErrNotOwner):
			respond.Error(h.log, w, http.StatusForbidden, "delivery belongs to another user")
		default:
			respond.Error(h.log, w, http.StatusInternalServerError, "internal error")
		}
		return
	}

	respond.JSON(h.log, w, http.StatusOK, dto.NewDelivery(*res))
}
