package delivery_get

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"truckboard/internal/dto"
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

	res, err := h.service.GetDelivery(r.Context(), userID, id)
	if err != nil {
		switch {
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
