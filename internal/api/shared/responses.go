package shared

import (
	"encoding/json"
	"log/slog"
	"net/http"
)

// Envelope is the uniform response shape: {success, message, data?, errors?}.
// The optional keys are omitted entirely when absent, never emitted as null.
type Envelope struct {
	Success bool                `json:"success"`
	Message string              `json:"message"`
	Data    any                 `json:"data,omitempty"`
	Errors  map[string][]string `json:"errors,omitempty"`
}

// Default messages for the envelope constructors.
const (
	DefaultSuccessMessage    = "Success."
	DefaultErrorMessage      = "An error occurred."
	DefaultValidationMessage = "Validation failed."
)

// NewSuccess builds a success envelope. A nil data value omits the data key;
// an empty but non-nil value (e.g. an empty slice) is kept.
func NewSuccess(data any, message string) Envelope {
	if message == "" {
		message = DefaultSuccessMessage
	}
	return Envelope{
		Success: true,
		Message: message,
		Data:    data,
	}
}

// NewError builds a failure envelope. A nil or empty errors map omits the
// errors key; a non-empty map is preserved verbatim.
func NewError(message string, errors map[string][]string) Envelope {
	if message == "" {
		message = DefaultErrorMessage
	}
	env := Envelope{
		Success: false,
		Message: message,
	}
	if len(errors) > 0 {
		env.Errors = errors
	}
	return env
}

// RespondWithJSON writes a JSON response with the given status code and body.
func RespondWithJSON(w http.ResponseWriter, r *http.Request, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		slog.Error("failed to encode JSON response", "error", err)
	}
}

// RespondSuccess writes a success envelope with the given status code.
func RespondSuccess(w http.ResponseWriter, r *http.Request, status int, message string, data any) {
	RespondWithJSON(w, r, status, NewSuccess(data, message))
}

// RespondError writes a failure envelope with the given status code.
// It also logs the response with the trace ID for correlation.
func RespondError(
	w http.ResponseWriter,
	r *http.Request,
	status int,
	message string,
	errors map[string][]string,
) {
	traceID := GetTraceID(r.Context())

	slog.Debug("sending error response",
		"status_code", status,
		"message", message,
		"trace_id", traceID,
		"path", r.URL.Path,
		"method", r.Method)

	RespondWithJSON(w, r, status, NewError(message, errors))
}

// RespondValidationError writes a 422 failure envelope carrying the
// field→messages map.
func RespondValidationError(
	w http.ResponseWriter,
	r *http.Request,
	message string,
	errors map[string][]string,
) {
	if message == "" {
		message = DefaultValidationMessage
	}
	RespondError(w, r, http.StatusUnprocessableEntity, message, errors)
}
