package server

import (
	"encoding/json"
	stderrors "errors"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/dangsayz/spreadpress/pkg/errors"
	"github.com/dangsayz/spreadpress/pkg/gallery"
	"github.com/dangsayz/spreadpress/pkg/observability"
	"github.com/dangsayz/spreadpress/pkg/pipeline"
	"github.com/dangsayz/spreadpress/pkg/spread"
	"github.com/dangsayz/spreadpress/pkg/store"
	"github.com/dangsayz/spreadpress/pkg/theme"
)

// maxBodyBytes caps request bodies. Galleries are metadata, not pixels,
// so even large shoots stay well under this.
const maxBodyBytes = 4 << 20

// =============================================================================
// Request / Response Types
// =============================================================================

// planRequest is the body of POST /v1/plan.
type planRequest struct {
	Gallery gallery.Gallery  `json:"gallery"`
	Options pipeline.Options `json:"options"`
}

// planResponse is the body returned by planning endpoints.
type planResponse struct {
	GalleryHash string                   `json:"gallery_hash,omitempty"`
	SpreadCount int                      `json:"spread_count"`
	ImageCount  int                      `json:"image_count"`
	Spreads     []spread.DecoratedSpread `json:"spreads"`
	Artifacts   map[string][]byte        `json:"artifacts,omitempty"`
	Cache       cacheInfo                `json:"cache"`
	PlanMillis  int64                    `json:"plan_ms"`
}

type cacheInfo struct {
	PlanHit   bool `json:"plan_hit"`
	RenderHit bool `json:"render_hit"`
}

// errorResponse is the JSON error envelope.
type errorResponse struct {
	Error errorBody `json:"error"`
}

type errorBody struct {
	Code    errors.Code `json:"code"`
	Message string      `json:"message"`
}

// =============================================================================
// Handlers
// =============================================================================

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleThemes(w http.ResponseWriter, r *http.Request) {
	themes := make([]theme.Theme, 0, len(theme.Names()))
	for _, name := range theme.Names() {
		t, err := theme.Get(name)
		if err != nil {
			writeError(w, err)
			return
		}
		themes = append(themes, t)
	}
	writeJSON(w, http.StatusOK, themes)
}

// handlePlan plans an inline gallery without storing it.
func (s *Server) handlePlan(w http.ResponseWriter, r *http.Request) {
	var req planRequest
	if err := decodeJSON(r.Body, &req); err != nil {
		writeError(w, errors.Wrap(errors.ErrCodeInvalidInput, err, "decode request"))
		return
	}
	if req.Gallery.ID == "" {
		req.Gallery.ID = gallery.NewID()
	}

	result, err := s.runner.Execute(r.Context(), req.Gallery, req.Options)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, planResult(result))
}

// handlePutGallery stores a gallery under the path ID.
func (s *Server) handlePutGallery(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "galleryID")
	if err := errors.ValidateGalleryID(id); err != nil {
		writeError(w, err)
		return
	}

	var g gallery.Gallery
	if err := decodeJSON(r.Body, &g); err != nil {
		writeError(w, errors.Wrap(errors.ErrCodeInvalidGallery, err, "decode gallery"))
		return
	}

	// The path is authoritative for the ID.
	g.ID = id
	if err := g.Validate(); err != nil {
		writeError(w, errors.Wrap(errors.ErrCodeInvalidGallery, err, "validate gallery"))
		return
	}

	if err := s.store.Put(r.Context(), g); err != nil {
		writeError(w, errors.Wrap(errors.ErrCodeStore, err, "store gallery"))
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"id":     g.ID,
		"images": len(g.Images),
	})
}

func (s *Server) handleGetGallery(w http.ResponseWriter, r *http.Request) {
	g, ok := s.loadGallery(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, g)
}

func (s *Server) handleDeleteGallery(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "galleryID")
	if err := errors.ValidateGalleryID(id); err != nil {
		writeError(w, err)
		return
	}
	if err := s.store.Delete(r.Context(), id); err != nil {
		writeError(w, errors.Wrap(errors.ErrCodeStore, err, "delete gallery"))
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// handleGallerySpreads plans a stored gallery. Planning options come from
// query parameters; html output is returned as the page itself.
func (s *Server) handleGallerySpreads(w http.ResponseWriter, r *http.Request) {
	g, ok := s.loadGallery(w, r)
	if !ok {
		return
	}

	q := r.URL.Query()
	opts := pipeline.Options{
		Theme: q.Get("theme"),
	}
	if refresh, err := strconv.ParseBool(q.Get("refresh")); err == nil {
		opts.Refresh = refresh
	}

	if q.Get("format") == pipeline.FormatHTML {
		opts.Formats = []string{pipeline.FormatHTML}
		result, err := s.runner.Execute(r.Context(), g, opts)
		if err != nil {
			writeError(w, err)
			return
		}
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write(result.Artifacts[pipeline.FormatHTML])
		return
	}

	result, err := s.runner.Execute(r.Context(), g, opts)
	if err != nil {
		writeError(w, err)
		return
	}
	resp := planResult(result)
	resp.Artifacts = nil // spreads endpoint returns the plan, not artifacts
	writeJSON(w, http.StatusOK, resp)
}

// loadGallery fetches the path gallery, writing the error response itself.
func (s *Server) loadGallery(w http.ResponseWriter, r *http.Request) (gallery.Gallery, bool) {
	id := chi.URLParam(r, "galleryID")
	if err := errors.ValidateGalleryID(id); err != nil {
		writeError(w, err)
		return gallery.Gallery{}, false
	}

	g, err := s.store.Get(r.Context(), id)
	if stderrors.Is(err, store.ErrNotFound) {
		writeError(w, errors.New(errors.ErrCodeGalleryNotFound, "gallery %s not found", id))
		return gallery.Gallery{}, false
	}
	if err != nil {
		writeError(w, errors.Wrap(errors.ErrCodeStore, err, "load gallery %s", id))
		return gallery.Gallery{}, false
	}
	return g, true
}

// planResult converts a pipeline result into the response shape.
func planResult(result *pipeline.Result) planResponse {
	spreads := result.Spreads
	if spreads == nil {
		spreads = []spread.DecoratedSpread{}
	}
	return planResponse{
		GalleryHash: result.GalleryHash,
		SpreadCount: result.Stats.SpreadCount,
		ImageCount:  result.Stats.ImageCount,
		Spreads:     spreads,
		Artifacts:   result.Artifacts,
		Cache: cacheInfo{
			PlanHit:   result.CacheInfo.PlanHit,
			RenderHit: result.CacheInfo.RenderHit,
		},
		PlanMillis: result.Stats.PlanTime.Milliseconds(),
	}
}

// =============================================================================
// Middleware and Helpers
// =============================================================================

// requestLogger logs each request and feeds the API hooks.
func (s *Server) requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		observability.API().OnRequest(r.Context(), r.Method, r.URL.Path)

		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)

		duration := time.Since(start)
		observability.API().OnResponse(r.Context(), r.Method, r.URL.Path, rec.status, duration)
		s.logger.Info("request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", rec.status,
			"duration", duration)
	})
}

// statusRecorder captures the response status for logging.
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

// decodeJSON decodes a request body with strict field checking.
func decodeJSON(r io.Reader, v any) error {
	dec := json.NewDecoder(io.LimitReader(r, maxBodyBytes))
	dec.DisallowUnknownFields()
	return dec.Decode(v)
}

// writeJSON writes a JSON response with the given status.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// writeError writes the JSON error envelope, mapping the error code to an
// HTTP status. Errors without a code become 500s with a generic message.
func writeError(w http.ResponseWriter, err error) {
	code := errors.GetCode(err)
	if code == "" {
		code = errors.ErrCodeInternal
	}
	writeJSON(w, errors.HTTPStatus(code), errorResponse{
		Error: errorBody{
			Code:    code,
			Message: errors.UserMessage(err),
		},
	})
}
