package httputil

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/jabulente/bubblechart/pkg/errors"
)

func TestWriteJSON(t *testing.T) {
	rec := httptest.NewRecorder()
	WriteJSON(rec, http.StatusCreated, map[string]int{"n": 3})

	if rec.Code != http.StatusCreated {
		t.Errorf("status = %d, want 201", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("content type = %q", ct)
	}
	var body map[string]int
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid body: %v", err)
	}
	if body["n"] != 3 {
		t.Errorf("body = %v", body)
	}
}

func TestWriteError(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
	}{
		{
			name:       "validation error",
			err:        errors.New(errors.ErrCodeInvalidSpacing, "spacing must be non-negative"),
			wantStatus: http.StatusBadRequest,
			wantCode:   "INVALID_SPACING",
		},
		{
			name:       "degenerate geometry",
			err:        errors.New(errors.ErrCodeDegenerateGeometry, "total area must be positive"),
			wantStatus: http.StatusBadRequest,
			wantCode:   "DEGENERATE_GEOMETRY",
		},
		{
			name:       "not found",
			err:        errors.New(errors.ErrCodeFileNotFound, "dataset missing"),
			wantStatus: http.StatusNotFound,
			wantCode:   "FILE_NOT_FOUND",
		},
		{
			name:       "unsupported",
			err:        errors.New(errors.ErrCodeUnsupported, "format not available"),
			wantStatus: http.StatusUnprocessableEntity,
			wantCode:   "UNSUPPORTED",
		},
		{
			name:       "plain error",
			err:        json.Unmarshal([]byte("{"), &struct{}{}),
			wantStatus: http.StatusInternalServerError,
			wantCode:   "INTERNAL_ERROR",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			WriteError(rec, tt.err)

			if rec.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d", rec.Code, tt.wantStatus)
			}
			var body ErrorBody
			if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
				t.Fatalf("invalid error body: %v", err)
			}
			if body.Error.Code != tt.wantCode {
				t.Errorf("code = %q, want %q", body.Error.Code, tt.wantCode)
			}
			if body.Error.Message == "" {
				t.Error("message should not be empty")
			}
		})
	}
}

func TestDecodeJSON(t *testing.T) {
	type payload struct {
		Name string `json:"name"`
	}

	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"name":"ok"}`))
	var p payload
	if err := DecodeJSON(httptest.NewRecorder(), req, &p); err != nil {
		t.Fatalf("DecodeJSON error: %v", err)
	}
	if p.Name != "ok" {
		t.Errorf("name = %q", p.Name)
	}
}

func TestDecodeJSONRejectsUnknownFields(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"nope":1}`))
	err := DecodeJSON(httptest.NewRecorder(), req, &struct{}{})
	if !errors.Is(err, errors.ErrCodeInvalidInput) {
		t.Errorf("error code = %v, want INVALID_INPUT", errors.GetCode(err))
	}
}

func TestDecodeJSONMalformed(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader("{"))
	if err := DecodeJSON(httptest.NewRecorder(), req, &struct{}{}); err == nil {
		t.Error("malformed body should fail")
	}
}
