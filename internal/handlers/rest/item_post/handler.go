package item_post

import (
	"encoding/json"
	"errors"
	"net/http"

	"truckboard/internal/dto"
	"truckboard/internal/entities"
	"truckboard/internal/handlers/rest/respond"
	authmw "truckboard/internal/pkg/middlewares/auth"
	"truckboard/internal/service/inventory"
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

	var itemDTO dto.InventoryItemCreate
	err := json.NewDecoder(r.Body).Decode(&itemDTO)
	if err != nil {
		respond.Error(h.log, w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	res, err := h.service.CreateItem(r.Context(), userID, entities.InventoryItemDraft{
		Name:        itemDTO.Name,
		Category:    itemDTO.Category,
		Quantity:    itemDTO.Quantity,
		WeightKG:    itemDTO.WeightKG,
		Destination: itemDTO.Destination,
		Location:    itemDTO.Location,
		Deadline:    itemDTO.Deadline,
	})
	if err != nil {
		switch {
		case errors.Is(err, inventory.ErrMissingRequiredFields),
			errors.Is(err, inventory.ErrInvalidQuantity),
			errors.Is(err, inventory.ErrInvalidWeight):
			respond.Error(h.log, w, http.StatusBadRequest, "invalid inventory item")
		default:
			respond.Error(h.log, w, http.StatusInternalServerError, "internal error")
		}
		return
	}

	respond.JSON(h.log, w, http.StatusCreated, dto.NewInventoryItem(*res))
}
