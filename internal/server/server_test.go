package server

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mlandau/wavetrace/pkg/cache"
	"github.com/mlandau/wavetrace/pkg/pipeline"
	"github.com/mlandau/wavetrace/pkg/store"
)

const signalJSON = `{"signal":[{"name":"clk","wave":"p...."}]}`

func newTestServer(t *testing.T, c cache.Cache) *Server {
	t.Helper()
	logger := log.New(io.Discard)
	runner := pipeline.NewRunner(c, nil, logger)
	return New(Config{
		Runner: runner,
		Store:  store.NewMemoryStore(),
		Logger: logger,
	})
}

func TestServer_Health(t *testing.T) {
	s := newTestServer(t, nil)

	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"ok"`)
	assert.NotEmpty(t, rec.Header().Get("X-Request-Id"))
}

func TestServer_Render(t *testing.T) {
	s := newTestServer(t, nil)

	req := httptest.NewRequest(http.MethodPost, "/api/render", strings.NewReader(signalJSON))
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "image/svg+xml", rec.Header().Get("Content-Type"))
	assert.Contains(t, rec.Body.String(), "<svg")
}

func TestServer_RenderCacheHit(t *testing.T) {
	dir := t.TempDir()
	c, err := cache.NewFileCache(dir)
	require.NoError(t, err)
	s := newTestServer(t, c)

	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/render", strings.NewReader(signalJSON)))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, rec.Header().Get("X-Cache"))

	rec = httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/render", strings.NewReader(signalJSON)))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "hit", rec.Header().Get("X-Cache"))
}

func TestServer_RenderInvalidInput(t *testing.T) {
	s := newTestServer(t, nil)

	req := httptest.NewRequest(http.MethodPost, "/api/render", strings.NewReader("not json"))
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var resp errorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "INVALID_INPUT", resp.Error.Code)
	assert.NotEmpty(t, resp.Error.Message)
}

func TestServer_DiagramCRUD(t *testing.T) {
	s := newTestServer(t, nil)
	h := s.Handler()

	body, err := json.Marshal(map[string]any{
		"name":   "bus transfer",
		"source": json.RawMessage(signalJSON),
	})
	require.NoError(t, err)

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/diagrams/", bytes.NewReader(body)))
	require.Equal(t, http.StatusCreated, rec.Code)

	var created store.Diagram
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, "bus transfer", created.Name)
	assert.Equal(t, "signal", created.Kind)

	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/diagrams/", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	var list []store.Diagram
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &list))
	require.Len(t, list, 1)
	assert.Equal(t, created.ID, list[0].ID)

	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/diagrams/"+created.ID+"/", nil))
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/diagrams/"+created.ID+"/render", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "<svg")

	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, "/api/diagrams/"+created.ID+"/", nil))
	assert.Equal(t, http.StatusNoContent, rec.Code)

	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/diagrams/"+created.ID+"/", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
	var resp errorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "NOT_FOUND", resp.Error.Code)
}

func TestServer_CreateDiagramRejectsBadSource(t *testing.T) {
	s := newTestServer(t, nil)

	body := `{"name":"broken","source":{"bogus":true}}`
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/diagrams/", strings.NewReader(body)))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestServer_RequestIDEchoed(t *testing.T) {
	s := newTestServer(t, nil)

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	req.Header.Set("X-Request-Id", "abc-123")
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)

	assert.Equal(t, "abc-123", rec.Header().Get("X-Request-Id"))
}
