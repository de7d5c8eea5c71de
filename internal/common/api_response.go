package common

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"flight-search/skyport/internal/logging"
	"flight-search/skyport/internal/models/dtos"
)

const (
	apiStatusOk    = "ok"
	apiStatusError = "error"
)

// RespondSuccess sends a standardized JSON success response.
func RespondSuccess(w http.ResponseWriter, initTime time.Time, message string, data any, statusCode ...int) {
	code := http.StatusOK
	if len(statusCode) > 0 {
		code = statusCode[0]
	}

	writeJSON(w, code, dtos.APIResponse{
		Status:       apiStatusOk,
		Message:      message,
		ResponseTime: GetResponseTime(initTime),
		Data:         data,
	})
}

// RespondError sends a standardized JSON error response.
func RespondError(w http.ResponseWriter, initTime time.Time, err error, message string, statusCode ...int) {
	code := http.StatusInternalServerError
	if len(statusCode) > 0 {
		code = statusCode[0]
	}

	msg := message
	if err != nil && err.Error() != "" {
		msg = err.Error()
	}

	writeJSON(w, code, dtos.APIResponse{
		Status:       apiStatusError,
		Message:      msg,
		ResponseTime: GetResponseTime(initTime),
	})
}

// GetResponseTime formats the elapsed time since initTime for the envelope.
func GetResponseTime(initTime time.Time) string {
	return fmt.Sprintf("%dms", time.Since(initTime).Milliseconds())
}

// writeJSON marshals data and writes it to the HTTP response.
func writeJSON(w http.ResponseWriter, code int, body dtos.APIResponse) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)

	if err := json.NewEncoder(w).Encode(body); err != nil {
		logging.Error("JSON encode failed", "error", err.Error())
	}
}
