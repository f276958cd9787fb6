package errors

import (
	"encoding/json"
	stderrors "errors"
	"net/http"

	"github.com/rs/zerolog"

	"github.com/gokatarajesh/trivia-api/internal/apperr"
)

// ErrorResponse represents a standardized error response
type ErrorResponse struct {
	Success bool   `json:"success"`
	Error   int    `json:"error"`
	Message string `json:"message"`
}

// StatusFor maps an error onto one of the four client visible statuses.
// Anything unclassified is treated as unprocessable.
func StatusFor(err error) int {
	switch {
	case stderrors.Is(err, apperr.ErrInvalidInput):
		return http.StatusBadRequest
	case stderrors.Is(err, apperr.ErrNotFound):
		return http.StatusNotFound
	case stderrors.Is(err, apperr.ErrMethodNotAllowed):
		return http.StatusMethodNotAllowed
	default:
		return http.StatusUnprocessableEntity
	}
}

// RespondError writes a standardized error response for the given status.
func RespondError(w http.ResponseWriter, status int) {
	msg, ok := messages[status]
	if !ok {
		status = http.StatusUnprocessableEntity
		msg = MsgUnprocessable
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(ErrorResponse{
		Success: false,
		Error:   status,
		Message: msg,
	})
}

// RespondErr classifies err, logs it and writes the matching error payload.
// The error text itself never reaches the client.
func RespondErr(w http.ResponseWriter, logger zerolog.Logger, err error) {
	status := StatusFor(err)
	evt := logger.Warn()
	if status == http.StatusUnprocessableEntity {
		evt = logger.Error()
	}
	evt.Err(err).Int("status", status).Msg("request failed")
	RespondError(w, status)
}

// RespondBadRequest writes a 400 error response
func RespondBadRequest(w http.ResponseWriter) {
	RespondError(w, http.StatusBadRequest)
}

// RespondNotFound writes a 404 error response
func RespondNotFound(w http.ResponseWriter) {
	RespondError(w, http.StatusNotFound)
}

// RespondUnprocessable writes a 422 error response
func RespondUnprocessable(w http.ResponseWriter) {
	RespondError(w, http.StatusUnprocessableEntity)
}

// RespondMethodNotAllowed writes a 405 error response
func RespondMethodNotAllowed(w http.ResponseWriter) {
	RespondError(w, http.StatusMethodNotAllowed)
}
