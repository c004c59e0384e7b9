package server

import (
	"encoding/json"
	"io"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/mlandau/wavetrace/pkg/diagram"
	"github.com/mlandau/wavetrace/pkg/errors"
	"github.com/mlandau/wavetrace/pkg/pipeline"
	"github.com/mlandau/wavetrace/pkg/store"
)

// maxBodySize bounds uploaded document size.
const maxBodySize = 1 << 20

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// handleRender renders a posted document to SVG. Render options come
// from query parameters: skin, strict, refresh.
func (s *Server) handleRender(w http.ResponseWriter, r *http.Request) {
	source, err := io.ReadAll(io.LimitReader(r.Body, maxBodySize))
	if err != nil {
		s.writeError(w, r, errors.Wrap(errors.ErrCodeInvalidInput, err, "read request body"))
		return
	}

	opts := pipeline.Options{
		Skin:    r.URL.Query().Get("skin"),
		Strict:  r.URL.Query().Get("strict") == "true",
		Refresh: r.URL.Query().Get("refresh") == "true",
	}

	res, err := s.runner.Render(r.Context(), source, opts)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	w.Header().Set("Content-Type", "image/svg+xml")
	if res.CacheHit {
		w.Header().Set("X-Cache", "hit")
	}
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(res.SVG)
}

type createDiagramRequest struct {
	Name   string          `json:"name"`
	Source json.RawMessage `json:"source"`
}

func (s *Server) handleCreateDiagram(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(io.LimitReader(r.Body, maxBodySize))
	if err != nil {
		s.writeError(w, r, errors.Wrap(errors.ErrCodeInvalidInput, err, "read request body"))
		return
	}

	var req createDiagramRequest
	if err := json.Unmarshal(body, &req); err != nil {
		s.writeError(w, r, errors.Wrap(errors.ErrCodeInvalidInput, err, "decode request"))
		return
	}
	if len(req.Source) == 0 {
		s.writeError(w, r, errors.New(errors.ErrCodeInvalidInput, "source is required"))
		return
	}

	// Validate the source before persisting it.
	doc, err := diagram.Decode(req.Source)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	now := time.Now().UTC()
	d := &store.Diagram{
		ID:        uuid.NewString(),
		Name:      req.Name,
		Kind:      doc.Kind().String(),
		Source:    req.Source,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.store.Put(r.Context(), d); err != nil {
		s.writeError(w, r, err)
		return
	}

	s.writeJSON(w, http.StatusCreated, d)
}

func (s *Server) handleListDiagrams(w http.ResponseWriter, r *http.Request) {
	list, err := s.store.List(r.Context())
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	s.writeJSON(w, http.StatusOK, list)
}

func (s *Server) handleGetDiagram(w http.ResponseWriter, r *http.Request) {
	d, err := s.store.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	s.writeJSON(w, http.StatusOK, d)
}

func (s *Server) handleDeleteDiagram(w http.ResponseWriter, r *http.Request) {
	if err := s.store.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		s.writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// handleRenderDiagram renders a stored diagram by ID.
func (s *Server) handleRenderDiagram(w http.ResponseWriter, r *http.Request) {
	d, err := s.store.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	opts := pipeline.Options{
		Skin:   r.URL.Query().Get("skin"),
		Strict: r.URL.Query().Get("strict") == "true",
	}
	res, err := s.runner.Render(r.Context(), d.Source, opts)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	w.Header().Set("Content-Type", "image/svg+xml")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(res.SVG)
}

type errorResponse struct {
	Error struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

func (s *Server) writeError(w http.ResponseWriter, r *http.Request, err error) {
	code := errors.GetCode(err)
	if code == "" {
		code = errors.ErrCodeInternal
	}

	status := http.StatusInternalServerError
	switch code {
	case errors.ErrCodeInvalidInput, errors.ErrCodeInvalidGrammar,
		errors.ErrCodeInvalidSkin, errors.ErrCodeInvalidConfig,
		errors.ErrCodeUnresolvedEvent:
		status = http.StatusBadRequest
	case errors.ErrCodeNotFound:
		status = http.StatusNotFound
	case errors.ErrCodeUnsupported:
		status = http.StatusUnprocessableEntity
	}

	if status >= 500 {
		s.logger.Error("request failed", "error", err, "request_id", reqID(r.Context()))
	}

	var resp errorResponse
	resp.Error.Code = string(code)
	resp.Error.Message = errors.UserMessage(err)
	s.writeJSON(w, status, resp)
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
