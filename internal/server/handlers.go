package server

import (
	"net/http"

	"github.com/jabulente/bubblechart/pkg/buildinfo"
	"github.com/jabulente/bubblechart/pkg/cache"
	"github.com/jabulente/bubblechart/pkg/chart"
	"github.com/jabulente/bubblechart/pkg/errors"
	"github.com/jabulente/bubblechart/pkg/httputil"
	"github.com/jabulente/bubblechart/pkg/pipeline"
)

// LayoutRequest is the payload for POST /api/v1/layout.
type LayoutRequest struct {
	Areas  []float64 `json:"areas"`
	Labels []string  `json:"labels,omitempty"`
	Values []string  `json:"values,omitempty"`
	Colors []string  `json:"colors,omitempty"`

	Spacing       float64 `json:"spacing,omitempty"`
	MaxIterations int     `json:"max_iterations,omitempty"`
	Threshold     float64 `json:"threshold,omitempty"`

	Title  string  `json:"title,omitempty"`
	Footer string  `json:"footer,omitempty"`
	Style  string  `json:"style,omitempty"`
	Width  float64 `json:"width,omitempty"`
	Height float64 `json:"height,omitempty"`
}

// LayoutResponse is the response for POST /api/v1/layout.
type LayoutResponse struct {
	Layout     chart.Layout `json:"layout"`
	LayoutHash string       `json:"layout_hash"`
	CacheHit   bool         `json:"cache_hit"`
}

// RenderRequest is the payload for POST /api/v1/render.
// The artifact is returned as the raw response body with a matching
// Content-Type, so clients can pipe it straight to a file.
type RenderRequest struct {
	Layout chart.Layout `json:"layout"`
	Format string       `json:"format,omitempty"`
	Style  string       `json:"style,omitempty"`
	Scale  float64      `json:"scale,omitempty"`
}

var contentTypes = map[string]string{
	chart.FormatSVG:  "image/svg+xml",
	chart.FormatPNG:  "image/png",
	chart.FormatPDF:  "application/pdf",
	chart.FormatJSON: "application/json",
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	httputil.WriteJSON(w, http.StatusOK, map[string]string{
		"status":  "ok",
		"version": buildinfo.Version,
	})
}

func (s *Server) handleLayout(w http.ResponseWriter, r *http.Request) {
	var req LayoutRequest
	if err := httputil.DecodeJSON(w, r, &req); err != nil {
		httputil.WriteError(w, err)
		return
	}

	ds := pipeline.Dataset{
		Areas:  req.Areas,
		Labels: req.Labels,
		Values: req.Values,
		Colors: req.Colors,
	}
	opts := pipeline.Options{
		Spacing:       req.Spacing,
		MaxIterations: req.MaxIterations,
		Threshold:     req.Threshold,
		Title:         req.Title,
		Footer:        req.Footer,
		Style:         req.Style,
		Width:         req.Width,
		Height:        req.Height,
		Logger:        s.logger,
	}

	layout, hit, err := s.runner.GenerateLayoutWithCacheInfo(r.Context(), ds, opts)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}

	hash := ""
	if data, err := chart.MarshalLayout(layout); err == nil {
		hash = cache.Hash(data)
	}

	httputil.WriteJSON(w, http.StatusOK, LayoutResponse{
		Layout:     layout,
		LayoutHash: hash,
		CacheHit:   hit,
	})
}

func (s *Server) handleRender(w http.ResponseWriter, r *http.Request) {
	var req RenderRequest
	if err := httputil.DecodeJSON(w, r, &req); err != nil {
		httputil.WriteError(w, err)
		return
	}
	if len(req.Layout.Bubbles) == 0 {
		httputil.WriteError(w, errors.New(errors.ErrCodeInvalidInput, "layout has no bubbles"))
		return
	}

	format := req.Format
	if format == "" {
		format = chart.FormatSVG
	}
	if err := chart.ValidateFormat(format); err != nil {
		httputil.WriteError(w, err)
		return
	}

	opts := pipeline.Options{
		Formats: []string{format},
		Style:   req.Style,
		Scale:   req.Scale,
		Logger:  s.logger,
	}

	artifacts, err := s.runner.Render(r.Context(), req.Layout, opts)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}

	w.Header().Set("Content-Type", contentTypes[format])
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(artifacts[format])
}
