// Package respond writes JSON response bodies the same way in every
// endpoint package.
package respond

import (
	"encoding/json"
	"net/http"

	"truckboard/internal/dto"
	"truckboard/pkg/logger"
)

// JSON writes payload with the given status. Encoding failures are
// logged only, the status line is already on the wire by then.
func JSON(log logger.Logger, w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	err := json.NewEncoder(w).Encode(payload)
	if err != nil {
		log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}

// Error writes the shared error body.
func Error(log logger.Logger, w http.ResponseWriter, status int, message string) {
	JSON(log, w, status, dto.Error{Error: message})
}

// ErrorDetail writes the shared error body with diagnostic detail
// attached, such as an upstream message or a raw payload snippet.
func ErrorDetail(log logger.Logger, w http.ResponseWriter, status int, message, detail string) {
	JSON(log, w, status, dto.Error{Error: message, Detail: detail})
}
