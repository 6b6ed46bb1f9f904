package handlers

import (
	"net/http"
	"strings"

	"go.uber.org/zap"

	"artgraph-backend/application/services"
	"artgraph-backend/domain/art"
	"artgraph-backend/pkg/common"
)

// GraphHandler handles the graph visualization endpoints.
type GraphHandler struct {
	graphs *services.GraphService
	logger *zap.Logger
}

// NewGraphHandler creates a new graph handler.
func NewGraphHandler(graphs *services.GraphService, logger *zap.Logger) *GraphHandler {
	return &GraphHandler{
		graphs: graphs,
		logger: logger,
	}
}

// parseFilterSpec reads the filter dimensions off the query string.
// List-valued dimensions are comma-separated; blank elements are
// dropped. Validation of the combination happens in the service.
func parseFilterSpec(r *http.Request) art.FilterSpec {
	q := r.URL.Query()
	return art.FilterSpec{
		Nationalities:   splitParam(q.Get("nationalities")),
		Mediums:         splitParam(q.Get("mediums")),
		Movements:       splitParam(q.Get("movements")),
		YearMin:         q.Get("yearMin"),
		YearMax:         q.Get("yearMax"),
		ExcludeArtists:  q.Get("excludeArtists") == "true",
		ExcludeArtworks: q.Get("excludeArtworks") == "true",
	}
}

func splitParam(raw string) []string {
	if raw == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

// GetGraph handles GET /graphs.
func (h *GraphHandler) GetGraph(w http.ResponseWriter, r *http.Request) {
	spec := parseFilterSpec(r)
	payload, err := h.graphs.GetGraph(r.Context(), spec)
	if err != nil {
		h.logger.Error("graph retrieval failed", zap.Error(err))
		common.RespondAppError(w, err)
		return
	}
	common.RespondSuccess(w, http.StatusOK, "", payload)
}

// GetSubgraph handles GET /graphs/subgraph/{nodeID}. The id is the
// store-internal node identity used by the graph payload.
func (h *GraphHandler) GetSubgraph(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "nodeID")
	if !ok {
		return
	}
	spec := parseFilterSpec(r)
	payload, err := h.graphs.GetSubgraph(r.Context(), id, spec)
	if err != nil {
		common.RespondAppError(w, err)
		return
	}
	common.RespondSuccess(w, http.StatusOK, "", payload)
}

// GetFilterOptions handles GET /graphs/filter-options. The service
// degrades to a fallback on store failure, so this never errors.
func (h *GraphHandler) GetFilterOptions(w http.ResponseWriter, r *http.Request) {
	options := h.graphs.GetFilterOptions(r.Context())
	common.RespondSuccess(w, http.StatusOK, "", options)
}
