package services

import (
	"context"
	"strconv"

	"go.uber.org/zap"

	"artgraph-backend/application/ports"
	"artgraph-backend/domain/art"
	"artgraph-backend/infrastructure/cypher"
	apperrors "artgraph-backend/pkg/errors"
)

// Fallback year range served when the filter-options aggregation cannot
// reach the store. The endpoint degrades instead of failing.
const (
	fallbackYearMin = 1800
	fallbackYearMax = 2024
)

// GraphService serves the filtered graph retrieval and filter-option
// aggregation operations.
type GraphService struct {
	executor ports.Executor
	logger   *zap.Logger
}

// NewGraphService creates a graph service.
func NewGraphService(executor ports.Executor, logger *zap.Logger) *GraphService {
	return &GraphService{
		executor: executor,
		logger:   logger,
	}
}

// GetGraph returns the full filtered graph in one store round trip:
// artist nodes, artwork nodes and relations are three subqueries of a
// single query, so the payload is one consistent snapshot. No
// server-side truncation is applied.
func (s *GraphService) GetGraph(ctx context.Context, spec art.FilterSpec) (*art.GraphPayload, error) {
	if err := spec.Validate(); err != nil {
		return nil, apperrors.NewValidationError(err.Error())
	}

	query, params := cypher.GraphQuery(spec)
	rows, err := s.executor.Execute(ctx, query, map[string]any(params))
	if err != nil {
		return nil, apperrors.NewDatabaseError("failed to retrieve graph", err)
	}
	if len(rows) == 0 {
		return emptyGraphPayload(), nil
	}
	return decodeGraphPayload(rows[0]), nil
}

// GetSubgraph returns the graph anchored at one store-internal node id.
// The anchor is looked up first so an unknown id is a 404; the retrieval
// itself applies the same global filters as GetGraph.
func (s *GraphService) GetSubgraph(ctx context.Context, centralNodeID int64, spec art.FilterSpec) (*art.GraphPayload, error) {
	if err := spec.Validate(); err != nil {
		return nil, apperrors.NewValidationError(err.Error())
	}

	anchor, err := s.executor.Execute(ctx,
		"MATCH (n) WHERE id(n) = $central RETURN id(n) AS id",
		map[string]any{"central": centralNodeID},
	)
	if err != nil {
		return nil, apperrors.NewDatabaseError("failed to resolve central node", err)
	}
	if len(anchor) == 0 {
		return nil, apperrors.NewNotFoundError("central node")
	}

	query, params := cypher.GraphQuery(spec)
	rows, err := s.executor.Execute(ctx, query, map[string]any(params))
	if err != nil {
		return nil, apperrors.NewDatabaseError("failed to retrieve subgraph", err)
	}
	if len(rows) == 0 {
		return emptyGraphPayload(), nil
	}
	return decodeGraphPayload(rows[0]), nil
}

const nationalityOptionsQuery = `MATCH (artist:Artist)
WHERE artist.Ar_Nationality IS NOT NULL
RETURN DISTINCT artist.Ar_Nationality AS nationality
ORDER BY nationality`

const mediumOptionsQuery = `MATCH (artwork:Artwork)
WHERE artwork.Art_Medium IS NOT NULL
RETURN DISTINCT artwork.Art_Medium AS medium
ORDER BY medium`

const movementOptionsQuery = `MATCH (artist:Artist)
WHERE artist.Ar_Movement IS NOT NULL
UNWIND artist.Ar_Movement AS movement
RETURN DISTINCT movement
ORDER BY movement`

const yearRangeQuery = `CALL {
    MATCH (artist:Artist)
    WHERE artist.Ar_BirthDay IS NOT NULL
    RETURN artist.Ar_BirthDay AS year
    UNION
    MATCH (artwork:Artwork)
    WHERE artwork.Art_Year IS NOT NULL
    RETURN artwork.Art_Year AS year
}
RETURN MIN(year) AS min_year, MAX(year) AS max_year`

// GetFilterOptions aggregates the distinct values for every filter
// dimension. On any store failure it degrades to empty lists and the
// fallback year range instead of propagating the error.
func (s *GraphService) GetFilterOptions(ctx context.Context) art.FilterOptions {
	nationalities, err := s.stringColumn(ctx, nationalityOptionsQuery, "nationality")
	if err != nil {
		return s.fallbackOptions(err)
	}
	mediums, err := s.stringColumn(ctx, mediumOptionsQuery, "medium")
	if err != nil {
		return s.fallbackOptions(err)
	}
	movements, err := s.stringColumn(ctx, movementOptionsQuery, "movement")
	if err != nil {
		return s.fallbackOptions(err)
	}

	yearRange := art.YearRange{Min: fallbackYearMin, Max: fallbackYearMax}
	rows, err := s.executor.Execute(ctx, yearRangeQuery, nil)
	if err != nil {
		return s.fallbackOptions(err)
	}
	if len(rows) > 0 {
		if min, ok := yearOf(rows[0].String("min_year")); ok {
			yearRange.Min = min
		}
		if max, ok := yearOf(rows[0].String("max_year")); ok {
			yearRange.Max = max
		}
	}

	return art.FilterOptions{
		Nationalities: nationalities,
		Mediums:       mediums,
		Movements:     movements,
		YearRange:     yearRange,
	}
}

func (s *GraphService) fallbackOptions(err error) art.FilterOptions {
	s.logger.Warn("filter options degraded to fallback", zap.Error(err))
	return art.FilterOptions{
		Nationalities: []string{},
		Mediums:       []string{},
		Movements:     []string{},
		YearRange:     art.YearRange{Min: fallbackYearMin, Max: fallbackYearMax},
	}
}

func (s *GraphService) stringColumn(ctx context.Context, query, alias string) ([]string, error) {
	rows, err := s.executor.Execute(ctx, query, nil)
	if err != nil {
		return nil, err
	}
	out := make([]string, 0, len(rows))
	for _, row := range rows {
		if v := row.String(alias); v != "" {
			out = append(out, v)
		}
	}
	return out, nil
}

// yearOf extracts the leading year of a stored date string.
func yearOf(date string) (int, bool) {
	if len(date) < 4 {
		return 0, false
	}
	y, err := strconv.Atoi(date[:4])
	if err != nil {
		return 0, false
	}
	return y, true
}

func emptyGraphPayload() *art.GraphPayload {
	return &art.GraphPayload{
		Artists:   []art.GraphNode{},
		Artworks:  []art.GraphNode{},
		Relations: []art.GraphRelation{},
	}
}

// decodeGraphPayload maps the single result row of the graph query onto
// the read model. Unexpected element shapes are skipped rather than
// failing the whole payload.
func decodeGraphPayload(row ports.Record) *art.GraphPayload {
	payload := emptyGraphPayload()

	for _, e := range row.List("artists") {
		if node, ok := decodeGraphNode(e); ok {
			payload.Artists = append(payload.Artists, node)
		}
	}
	for _, e := range row.List("artworks") {
		if node, ok := decodeGraphNode(e); ok {
			payload.Artworks = append(payload.Artworks, node)
		}
	}
	for _, e := range row.List("relations") {
		m, ok := e.(map[string]any)
		if !ok {
			continue
		}
		rel := ports.Record(m)
		payload.Relations = append(payload.Relations, art.GraphRelation{
			Source: rel.Int("source"),
			Target: rel.Int("target"),
		})
	}
	return payload
}

func decodeGraphNode(e any) (art.GraphNode, bool) {
	m, ok := e.(map[string]any)
	if !ok {
		return art.GraphNode{}, false
	}
	wrapper := ports.Record(m)
	return art.GraphNode{
		Data: wrapper.Map("data"),
		ID:   wrapper.Int("id"),
		Type: wrapper.String("type"),
	}, true
}
