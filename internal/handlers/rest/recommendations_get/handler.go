package recommendations_get

import (
	"errors"
	"net/http"

	"truckboard/internal/dto"
	"truckboard/internal/gateway/ai"
	"truckboard/internal/handlers/rest/respond"
	authmw "truckboard/internal/pkg/middlewares/auth"
	"truckboard/pkg/logger"
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

	res, err := h.service.GetRecommendations(r.Context(), userID)
	if err != nil {
		switch {
		case errors.Is(err, ai.ErrNotConfigured):
			respond.Error(h.log, w, http.StatusServiceUnavailable, "recommendations are not configured")
		case errors.Is(err, ai.ErrUpstream):
			respond.ErrorDetail(h.log, w, http.StatusServiceUnavailable, "recommendations are unavailable", err.Error())
		case errors.Is(err, ai.ErrBadPayload):
			respond.ErrorDetail(h.log, w, http.StatusInternalServerError, "recommendations returned an unusable reply", err.Error())
		default:
			h.log.With(
				logger.NewField("error", err),
			).Error("get recommendations")
			respond.Error(h.log, w, http.StatusInternalServerError, "internal error")
		}
		return
	}

	respond.JSON(h.log, w, http.StatusOK, dto.RecommendationsResponse{
		Recommendations: res,
	})
}
