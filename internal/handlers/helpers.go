// Package handlers implements the HTTP API. Handlers validate input, call
// the service layer, and map typed errors to status codes; no business logic
// lives here.
package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/arush-mehrotra/finance-ai-agent/internal/common"
	"github.com/arush-mehrotra/finance-ai-agent/internal/models"
)

// validate checks request struct tags. Shared; Validate is safe for
// concurrent use.
var validate = validator.New()

// RequireMethod validates that the HTTP request uses the specified method.
// Returns true if the method matches, false otherwise (and writes error response).
func RequireMethod(w http.ResponseWriter, r *http.Request, method string) bool {
	if r.Method != method {
		WriteError(w, http.StatusMethodNotAllowed, "method not allowed", r.Method+" not supported on this route")
		return false
	}
	return true
}

// WriteJSON writes a JSON response with the specified status code and data.
func WriteJSON(w http.ResponseWriter, statusCode int, data interface{}) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	return json.NewEncoder(w).Encode(data)
}

// WriteData writes the standard success envelope.
func WriteData(w http.ResponseWriter, data interface{}) error {
	return WriteJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"data":    data,
	})
}

// WriteError writes the standard error envelope.
func WriteError(w http.ResponseWriter, statusCode int, message, detail string) error {
	return WriteJSON(w, statusCode, map[string]string{
		"error":  message,
		"detail": detail,
	})
}

// WriteServiceError maps a typed service error to its HTTP status.
func WriteServiceError(w http.ResponseWriter, err error) error {
	var notFound *models.NotFoundError
	var validation *models.ValidationError
	var upstream *models.UpstreamError
	var malformed *models.MalformedResponseError

	switch {
	case errors.As(err, &notFound):
		return WriteError(w, http.StatusNotFound, "not found", err.Error())
	case errors.As(err, &validation):
		return WriteError(w, http.StatusBadRequest, "validation failed", err.Error())
	case errors.As(err, &upstream):
		return WriteError(w, http.StatusBadGateway, "upstream provider error", err.Error())
	case errors.As(err, &malformed):
		return WriteError(w, http.StatusBadGateway, "malformed provider response", err.Error())
	default:
		return WriteError(w, http.StatusInternalServerError, "internal error", err.Error())
	}
}

// DecodeJSON decodes and validates a request body into dst. Returns false
// after writing a 400 when the body does not decode or fails validation.
func DecodeJSON(w http.ResponseWriter, r *http.Request, dst interface{}) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		WriteError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return false
	}
	if err := validate.Struct(dst); err != nil {
		WriteError(w, http.StatusBadRequest, "validation failed", err.Error())
		return false
	}
	return true
}

// PathTicker extracts and normalizes the ticker segment following prefix.
// trailing names the required suffix segments after the ticker, if any.
// Returns "" after writing a 400/404 when the path does not fit.
func PathTicker(w http.ResponseWriter, r *http.Request, prefix string, trailing ...string) string {
	rest := strings.TrimPrefix(r.URL.Path, prefix)
	parts := strings.Split(strings.Trim(rest, "/"), "/")

	want := 1 + len(trailing)
	if len(parts) != want || parts[0] == "" {
		WriteError(w, http.StatusNotFound, "not found", "no route for "+r.URL.Path)
		return ""
	}
	for i, seg := range trailing {
		if parts[i+1] != seg {
			WriteError(w, http.StatusNotFound, "not found", "no route for "+r.URL.Path)
			return ""
		}
	}

	ticker := common.NormalizeTicker(parts[0])
	if ticker == "" {
		WriteError(w, http.StatusBadRequest, "validation failed", "invalid ticker: "+parts[0])
		return ""
	}
	return ticker
}

// QueryLimit reads the limit query parameter, defaulting to def and
// clamping to [1, 50]. A non-numeric value reports ok=false after writing
// a 400.
func QueryLimit(w http.ResponseWriter, r *http.Request, def int) (int, bool) {
	raw := r.URL.Query().Get("limit")
	if raw == "" {
		return def, true
	}
	limit, err := strconv.Atoi(raw)
	if err != nil {
		WriteError(w, http.StatusBadRequest, "validation failed", "limit must be an integer")
		return 0, false
	}
	if limit < 1 {
		limit = 1
	}
	if limit > 50 {
		limit = 50
	}
	return limit, true
}
