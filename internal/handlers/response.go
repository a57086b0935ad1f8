package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/deepdating/deep-dating-api/internal/logger"
)

// ErrorResponse is the failure shape shared by all endpoints.
// swagger:model ErrorResponse
type ErrorResponse struct {
	// Always false on failures
	Ok bool `json:"ok"`

	// Human-readable description
	Message string `json:"message"`
}

// writeJSON sends data as JSON with the given status code.
func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		logger.Log.Errorw("failed to encode response", "err", err)
	}
}

// writeMessage sends the standard {ok:false, message} failure body.
func writeMessage(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, ErrorResponse{Ok: false, Message: message})
}

// writeInternal logs an unexpected error and surfaces its message with a
// 500, mirroring the upstream behavior of passing the driver text through.
func writeInternal(w http.ResponseWriter, err error) {
	logger.Log.Errorw("internal server error", "err", err)
	writeMessage(w, http.StatusInternalServerError, err.Error())
}
