package deliveries_get

import (
	"errors"
	"net/http"

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

	filter := entities.DeliveryFilter{
		Status: entities.DeliveryStatusType(r.URL.Query().Get("status")),
	}

	res, err := h.service.GetDeliveries(r.Context(), userID, filter)
	if err != nil {
		switch {
		case errors.Is(err, delivery.ErrInvalidStatus):
			respond.Error(h.log, w, http.StatusBadRequest, "invalid status filter")
		default:
			respond.Error(h.log, w, http.StatusInternalServerError, "internal error")
		}
		return
	}

	respond.JSON(h.log, w, http.StatusOK, dto.NewDeliveries(res))
}
