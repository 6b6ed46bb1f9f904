package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"artgraph-backend/application/ports"
	"artgraph-backend/application/services"
)

// stubExecutor records queries and answers from a scripted function.
type stubExecutor struct {
	mu      sync.Mutex
	calls   []stubCall
	respond func(query string, params map[string]any) ([]ports.Record, error)
}

type stubCall struct {
	query  string
	params map[string]any
}

func (s *stubExecutor) Execute(ctx context.Context, query string, params map[string]any) ([]ports.Record, error) {
	s.mu.Lock()
	s.calls = append(s.calls, stubCall{query: query, params: params})
	respond := s.respond
	s.mu.Unlock()
	if respond == nil {
		return []ports.Record{}, nil
	}
	return respond(query, params)
}

func (s *stubExecutor) lastCall() stubCall {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.calls[len(s.calls)-1]
}

func (s *stubExecutor) callCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.calls)
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func TestGetGraph_QueryStringBecomesFilterParams(t *testing.T) {
	exec := &stubExecutor{
		respond: func(query string, params map[string]any) ([]ports.Record, error) {
			return []ports.Record{{
				"artists":   []any{},
				"artworks":  []any{},
				"relations": []any{},
			}}, nil
		},
	}
	handler := NewGraphHandler(services.NewGraphService(exec, zap.NewNop()), zap.NewNop())

	req := httptest.NewRequest("GET",
		"/graphs?nationalities=French,%20Dutch&mediums=Oil&yearMin=1850&yearMax=1900", nil)
	rec := httptest.NewRecorder()
	handler.GetGraph(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	call := exec.lastCall()
	assert.Equal(t, []string{"French", "Dutch"}, call.params["nationalities"])
	assert.Equal(t, []string{"Oil"}, call.params["mediums"])
	assert.Equal(t, "1850-01-01", call.params["year_min"])
	assert.Equal(t, "1900-01-01", call.params["year_max"])

	body := decodeEnvelope(t, rec)
	assert.Equal(t, true, body["success"])
}

func TestGetGraph_BothExclusionsRejected(t *testing.T) {
	exec := &stubExecutor{}
	handler := NewGraphHandler(services.NewGraphService(exec, zap.NewNop()), zap.NewNop())

	req := httptest.NewRequest("GET", "/graphs?excludeArtists=true&excludeArtworks=true", nil)
	rec := httptest.NewRecorder()
	handler.GetGraph(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Zero(t, exec.callCount())
	body := decodeEnvelope(t, rec)
	assert.Equal(t, false, body["success"])
	assert.NotEmpty(t, body["message"])
}

func TestGetSubgraph_NonIntegerNodeID(t *testing.T) {
	exec := &stubExecutor{}
	handler := NewGraphHandler(services.NewGraphService(exec, zap.NewNop()), zap.NewNop())

	router := chi.NewRouter()
	router.Get("/graphs/subgraph/{nodeID}", handler.GetSubgraph)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest("GET", "/graphs/subgraph/abc", nil))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Zero(t, exec.callCount())
}

func TestGetFilterOptions_AlwaysSucceeds(t *testing.T) {
	exec := &stubExecutor{
		respond: func(query string, params map[string]any) ([]ports.Record, error) {
			return nil, context.DeadlineExceeded
		},
	}
	handler := NewGraphHandler(services.NewGraphService(exec, zap.NewNop()), zap.NewNop())

	rec := httptest.NewRecorder()
	handler.GetFilterOptions(rec, httptest.NewRequest("GET", "/graphs/filter-options", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeEnvelope(t, rec)
	data := body["data"].(map[string]any)
	yearRange := data["year_range"].(map[string]any)
	assert.Equal(t, float64(1800), yearRange["min"])
	assert.Equal(t, float64(2024), yearRange["max"])
}

func TestCreateArtist_MissingRequiredField(t *testing.T) {
	exec := &stubExecutor{}
	handler := NewArtistHandler(services.NewArtistService(exec, zap.NewNop()), zap.NewNop())

	payload := `{"Ar_FirstName": "Vincent"}`
	req := httptest.NewRequest("POST", "/artists", strings.NewReader(payload))
	rec := httptest.NewRecorder()
	handler.CreateArtist(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Zero(t, exec.callCount())
}

func TestCreateArtist_MalformedDate(t *testing.T) {
	exec := &stubExecutor{}
	handler := NewArtistHandler(services.NewArtistService(exec, zap.NewNop()), zap.NewNop())

	payload := `{"Ar_FirstName": "Vincent", "Ar_LastName": "van Gogh", "Ar_BirthDay": "March 1853"}`
	req := httptest.NewRequest("POST", "/artists", strings.NewReader(payload))
	rec := httptest.NewRecorder()
	handler.CreateArtist(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Zero(t, exec.callCount())
}

func TestCreateArtist_InvalidJSONBody(t *testing.T) {
	exec := &stubExecutor{}
	handler := NewArtistHandler(services.NewArtistService(exec, zap.NewNop()), zap.NewNop())

	req := httptest.NewRequest("POST", "/artists", strings.NewReader("{not json"))
	rec := httptest.NewRecorder()
	handler.CreateArtist(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	body := decodeEnvelope(t, rec)
	assert.Equal(t, "Invalid request body", body["message"])
}

func TestCreateArtist_ValidBodyCreated(t *testing.T) {
	exec := &stubExecutor{
		respond: func(query string, params map[string]any) ([]ports.Record, error) {
			return []ports.Record{{
				"artist": map[string]any{
					"Ar_ArtistID":  int64(1),
					"Ar_FirstName": "Vincent",
					"Ar_LastName":  "van Gogh",
					"Ar_BirthDay":  "1853-03-30",
				},
			}}, nil
		},
	}
	handler := NewArtistHandler(services.NewArtistService(exec, zap.NewNop()), zap.NewNop())

	payload := `{"Ar_FirstName": "Vincent", "Ar_LastName": "van Gogh", "Ar_BirthDay": "1853-03-30"}`
	req := httptest.NewRequest("POST", "/artists", strings.NewReader(payload))
	rec := httptest.NewRecorder()
	handler.CreateArtist(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)
	body := decodeEnvelope(t, rec)
	assert.Equal(t, "Artist created", body["messages"])
	data := body["data"].(map[string]any)
	assert.Equal(t, float64(1), data["Ar_ArtistID"])
}

func TestDeleteArtist_NotFoundEnvelope(t *testing.T) {
	exec := &stubExecutor{
		respond: func(query string, params map[string]any) ([]ports.Record, error) {
			return []ports.Record{{"deleted": int64(0)}}, nil
		},
	}
	handler := NewArtistHandler(services.NewArtistService(exec, zap.NewNop()), zap.NewNop())

	router := chi.NewRouter()
	router.Delete("/artists/{artistID}", handler.DeleteArtist)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest("DELETE", "/artists/999", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	body := decodeEnvelope(t, rec)
	assert.Equal(t, false, body["success"])
}

func TestGetArtistsPage_NonIntegerPage(t *testing.T) {
	exec := &stubExecutor{}
	handler := NewArtistHandler(services.NewArtistService(exec, zap.NewNop()), zap.NewNop())

	router := chi.NewRouter()
	router.Get("/artists/page/{page}", handler.GetArtistsPage)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest("GET", "/artists/page/two", nil))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Zero(t, exec.callCount())
}

func TestCreateInspire_MissingTargetField(t *testing.T) {
	exec := &stubExecutor{}
	handler := NewArtworkHandler(services.NewArtworkService(exec, zap.NewNop()), zap.NewNop())

	router := chi.NewRouter()
	router.Post("/artworks/{artworkID}/inspire", handler.CreateInspire)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest("POST", "/artworks/1/inspire", strings.NewReader(`{}`)))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Zero(t, exec.callCount())
}
