// Package httputil provides request and response helpers for the API server.
//
// # Overview
//
// This package centralizes the JSON conventions shared by all API handlers:
//
//   - [WriteJSON]: Encode a response body with a status code
//   - [WriteError]: Map structured error codes to HTTP status codes
//   - [DecodeJSON]: Decode a size-limited request body
//
// # Error Mapping
//
// [WriteError] translates [errors.Code] values into HTTP status codes so
// handlers never hand-pick statuses:
//
//   - INVALID_* and DEGENERATE_GEOMETRY: 400 Bad Request
//   - NOT_FOUND and FILE_NOT_FOUND: 404 Not Found
//   - UNSUPPORTED: 422 Unprocessable Entity
//   - everything else: 500 Internal Server Error
//
// The response body carries the machine-readable code and the user-facing
// message:
//
//	{"error": {"code": "INVALID_SPACING", "message": "spacing must be..."}}
package httputil

import (
	"encoding/json"
	"net/http"

	"github.com/jabulente/bubblechart/pkg/errors"
)

// MaxBodyBytes limits request body size to 10 MiB. Layout payloads for
// even very large charts stay well under this.
const MaxBodyBytes = 10 << 20

// ErrorBody is the JSON error envelope returned by the API.
type ErrorBody struct {
	Error ErrorDetail `json:"error"`
}

// ErrorDetail carries the machine-readable code and user-facing message.
type ErrorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// WriteJSON encodes v as JSON with the given status code.
func WriteJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// WriteError maps the error to an HTTP status and writes the error envelope.
func WriteError(w http.ResponseWriter, err error) {
	code := errors.GetCode(err)
	if code == "" {
		code = errors.ErrCodeInternal
	}
	WriteJSON(w, StatusForCode(code), ErrorBody{
		Error: ErrorDetail{
			Code:    string(code),
			Message: errors.UserMessage(err),
		},
	})
}

// StatusForCode returns the HTTP status code for a structured error code.
func StatusForCode(code errors.Code) int {
	switch code {
	case errors.ErrCodeInvalidInput,
		errors.ErrCodeInvalidSpacing,
		errors.ErrCodeInvalidFormat,
		errors.ErrCodeInvalidStyle,
		errors.ErrCodeInvalidColumn,
		errors.ErrCodeInvalidConfig,
		errors.ErrCodeDegenerateGeometry:
		return http.StatusBadRequest
	case errors.ErrCodeNotFound, errors.ErrCodeFileNotFound:
		return http.StatusNotFound
	case errors.ErrCodeUnsupported:
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

// DecodeJSON decodes a size-limited JSON request body into v.
// Unknown fields are rejected so typos in request payloads fail loudly.
func DecodeJSON(w http.ResponseWriter, r *http.Request, v any) error {
	r.Body = http.MaxBytesReader(w, r.Body, MaxBodyBytes)
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidInput, err, "decode request body")
	}
	return nil
}
