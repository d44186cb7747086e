// Package httpapi implements the JSON REST gateway: routing, bearer-token
// authentication, request parsing, and the response envelope shared by every
// endpoint.
package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"

	"fintrack/internal/common"
)

// statusSuccess/statusFail/statusError follow the JSend-style envelope:
// "fail" marks request-side problems, "error" server-side ones.
const (
	statusSuccess = "success"
	statusFail    = "fail"
	statusError   = "error"
)

type envelope struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
	Data    any    `json:"data,omitempty"`
}

func writeJSON(w http.ResponseWriter, code int, env envelope) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(env)
}

func writeSuccess(w http.ResponseWriter, code int, data any) {
	writeJSON(w, code, envelope{Status: statusSuccess, Data: data})
}

func writeSuccessMessage(w http.ResponseWriter, code int, message string, data any) {
	writeJSON(w, code, envelope{Status: statusSuccess, Message: message, Data: data})
}

func writeFail(w http.ResponseWriter, code int, message string) {
	writeJSON(w, code, envelope{Status: statusFail, Message: message})
}

// sessionExpiredMessage collapses all token failures into one user-facing
// message so the response does not reveal why verification failed.
const sessionExpiredMessage = "Session expired. Please log in again."

// writeServiceError maps the service error taxonomy onto HTTP status codes
// and the envelope. Unexpected errors surface as a generic 500 without
// leaking internals.
func (s *Server) writeServiceError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, common.ErrorValidation):
		writeFail(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, common.ErrorEmailExists):
		writeFail(w, http.StatusBadRequest, "Email already registered")
	case errors.Is(err, common.ErrorBudgetExists):
		writeFail(w, http.StatusBadRequest, "Budget already exists for this category and month")
	case errors.Is(err, common.ErrorInvalidCredentials):
		writeFail(w, http.StatusUnauthorized, "Invalid email or password")
	case errors.Is(err, common.ErrorInvalidToken),
		errors.Is(err, common.ErrorTokenExpired),
		errors.Is(err, common.ErrorStaleToken):
		writeFail(w, http.StatusUnauthorized, sessionExpiredMessage)
	case errors.Is(err, common.ErrorNotFound):
		writeFail(w, http.StatusNotFound, "Resource not found")
	case errors.Is(err, common.ErrorExportNotConfigured):
		writeFail(w, http.StatusServiceUnavailable, "Statement export is not configured")
	default:
		s.logger.Error(r.Context(), "request failed", "method", r.Method, "url", r.URL.Path, "error", err)
		writeJSON(w, http.StatusInternalServerError, envelope{Status: statusError, Message: "Internal server error"})
	}
}

// decodeBody parses a JSON request body into dst, rejecting unknown fields.
func decodeBody(r *http.Request, dst any) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	return dec.Decode(dst)
}
