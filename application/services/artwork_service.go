package services

import (
	"context"

	"go.uber.org/zap"

	"artgraph-backend/application/ports"
	"artgraph-backend/domain/art"
	"artgraph-backend/infrastructure/cypher"
	"artgraph-backend/pkg/common"
	apperrors "artgraph-backend/pkg/errors"
)

// ArtworkService serves artwork CRUD, listing and the INSPIRE relation
// operations.
type ArtworkService struct {
	executor ports.Executor
	logger   *zap.Logger
}

// NewArtworkService creates an artwork service.
func NewArtworkService(executor ports.Executor, logger *zap.Logger) *ArtworkService {
	return &ArtworkService{
		executor: executor,
		logger:   logger,
	}
}

// GetAll returns every artwork, unordered.
func (s *ArtworkService) GetAll(ctx context.Context) ([]art.Artwork, error) {
	rows, err := s.executor.Execute(ctx, "MATCH (artwork:Artwork) RETURN artwork", nil)
	if err != nil {
		return nil, apperrors.NewDatabaseError("failed to list artworks", err)
	}
	artworks := make([]art.Artwork, 0, len(rows))
	for _, row := range rows {
		artworks = append(artworks, art.ArtworkFromProps(row.Map("artwork")))
	}
	return artworks, nil
}

// GetByID looks an artwork up by business identity.
func (s *ArtworkService) GetByID(ctx context.Context, id int64) (*art.Artwork, error) {
	rows, err := s.executor.Execute(ctx,
		"MATCH (artwork:Artwork {Art_ArtworkID: $id}) RETURN artwork",
		map[string]any{"id": id},
	)
	if err != nil {
		return nil, apperrors.NewDatabaseError("failed to get artwork", err)
	}
	if len(rows) == 0 {
		return nil, apperrors.NewNotFoundError("artwork")
	}
	aw := art.ArtworkFromProps(rows[0].Map("artwork"))
	return &aw, nil
}

const createArtworkQuery = `MERGE (c:Counter {name: 'Art_ArtworkID'})
ON CREATE SET c.count = 0
SET c.count = c.count + 1
WITH c.count AS new_id
CREATE (artwork:Artwork)
SET artwork = $props, artwork.Art_ArtworkID = new_id
RETURN artwork`

// Create inserts an unowned artwork; the CREATED relation is attached
// separately when the owning artist is known.
func (s *ArtworkService) Create(ctx context.Context, input art.Artwork) (*art.Artwork, error) {
	props := map[string]any{
		"Art_Title":       input.Title,
		"Art_Year":        input.Year,
		"Art_Description": input.Description,
	}
	putIfSet(props, "Art_ImageURL", input.ImageURL)
	putIfSet(props, "Art_Medium", input.Medium)
	putIfSet(props, "Art_Dimensions", input.Dimensions)

	rows, err := s.executor.Execute(ctx, createArtworkQuery, map[string]any{"props": props})
	if err != nil {
		return nil, apperrors.NewDatabaseError("failed to create artwork", err)
	}
	if len(rows) == 0 {
		return nil, apperrors.NewDatabaseError("artwork creation returned no result", nil)
	}
	created := art.ArtworkFromProps(rows[0].Map("artwork"))
	return &created, nil
}

// Update applies a partial update with merge-if-present semantics.
func (s *ArtworkService) Update(ctx context.Context, id int64, patch art.ArtworkPatch) (*art.Artwork, error) {
	props := map[string]any{}
	putPtr(props, "Art_Title", patch.Title)
	putPtr(props, "Art_Year", patch.Year)
	putPtr(props, "Art_Description", patch.Description)
	putPtr(props, "Art_ImageURL", patch.ImageURL)
	putPtr(props, "Art_Medium", patch.Medium)
	putPtr(props, "Art_Dimensions", patch.Dimensions)

	rows, err := s.executor.Execute(ctx,
		`MATCH (artwork:Artwork {Art_ArtworkID: $id})
SET artwork += $props
RETURN artwork`,
		map[string]any{"id": id, "props": props},
	)
	if err != nil {
		return nil, apperrors.NewDatabaseError("failed to update artwork", err)
	}
	if len(rows) == 0 {
		return nil, apperrors.NewNotFoundError("artwork")
	}
	updated := art.ArtworkFromProps(rows[0].Map("artwork"))
	return &updated, nil
}

// Delete detach-deletes an artwork. Returns true iff a node was removed.
func (s *ArtworkService) Delete(ctx context.Context, id int64) (bool, error) {
	rows, err := s.executor.Execute(ctx,
		`MATCH (artwork:Artwork {Art_ArtworkID: $id})
DETACH DELETE artwork
RETURN count(artwork) AS deleted`,
		map[string]any{"id": id},
	)
	if err != nil {
		return false, apperrors.NewDatabaseError("failed to delete artwork", err)
	}
	return len(rows) > 0 && rows[0].Int("deleted") > 0, nil
}

// ListPage returns one listing window ordered by business identity
// ascending; the free-text filter matches the title.
func (s *ArtworkService) ListPage(ctx context.Context, page, pageSize int, query string) (*common.PageResult, error) {
	if page < 1 {
		return nil, apperrors.NewValidationError("page number must be 1 or greater")
	}
	if pageSize < 1 {
		pageSize = common.DefaultPageSize
	}

	where := ""
	params := map[string]any{}
	if query != "" {
		pred, predParams := cypher.ArtworkSearchPredicate("artwork", query)
		where = "WHERE " + pred
		for k, v := range predParams {
			params[k] = v
		}
	}

	countRows, err := s.executor.Execute(ctx,
		"MATCH (artwork:Artwork) "+where+" RETURN count(artwork) AS total",
		params,
	)
	if err != nil {
		return nil, apperrors.NewDatabaseError("failed to count artworks", err)
	}
	total := 0
	if len(countRows) > 0 {
		total = int(countRows[0].Int("total"))
	}

	params["skip"] = common.CalculateOffset(page, pageSize)
	params["limit"] = pageSize
	rows, err := s.executor.Execute(ctx,
		"MATCH (artwork:Artwork) "+where+
			" RETURN artwork ORDER BY artwork.Art_ArtworkID ASC SKIP $skip LIMIT $limit",
		params,
	)
	if err != nil {
		return nil, apperrors.NewDatabaseError("failed to list artworks page", err)
	}

	items := make([]art.Artwork, 0, len(rows))
	for _, row := range rows {
		items = append(items, art.ArtworkFromProps(row.Map("artwork")))
	}
	result := common.NewPageResult(items, page, pageSize, total)
	return &result, nil
}

// Inspired returns the artworks a given artwork inspired (outgoing
// INSPIRE edges).
func (s *ArtworkService) Inspired(ctx context.Context, id int64) ([]art.Artwork, error) {
	return s.relatedArtworks(ctx,
		`MATCH (source:Artwork {Art_ArtworkID: $id})-[:INSPIRE]->(inspired:Artwork)
RETURN inspired AS artwork`, id)
}

// InspiredBy returns the artworks that inspired a given artwork
// (incoming INSPIRE edges).
func (s *ArtworkService) InspiredBy(ctx context.Context, id int64) ([]art.Artwork, error) {
	return s.relatedArtworks(ctx,
		`MATCH (source:Artwork)-[:INSPIRE]->(inspired:Artwork {Art_ArtworkID: $id})
RETURN source AS artwork`, id)
}

func (s *ArtworkService) relatedArtworks(ctx context.Context, query string, id int64) ([]art.Artwork, error) {
	rows, err := s.executor.Execute(ctx, query, map[string]any{"id": id})
	if err != nil {
		return nil, apperrors.NewDatabaseError("failed to list related artworks", err)
	}
	artworks := make([]art.Artwork, 0, len(rows))
	for _, row := range rows {
		artworks = append(artworks, art.ArtworkFromProps(row.Map("artwork")))
	}
	return artworks, nil
}

// ArtworkInspirations is an artwork together with both directions of its
// INSPIRE neighborhood.
type ArtworkInspirations struct {
	Artwork      art.Artwork   `json:"artwork"`
	Inspirations []art.Artwork `json:"inspirations"`
	Inspired     []art.Artwork `json:"inspired_artworks"`
}

// WithInspirations returns an artwork plus the artworks that inspired it
// and the artworks it inspired, in one round trip.
func (s *ArtworkService) WithInspirations(ctx context.Context, id int64) (*ArtworkInspirations, error) {
	rows, err := s.executor.Execute(ctx,
		`MATCH (artwork:Artwork {Art_ArtworkID: $id})
OPTIONAL MATCH (source:Artwork)-[:INSPIRE]->(artwork)
OPTIONAL MATCH (artwork)-[:INSPIRE]->(inspired:Artwork)
RETURN artwork,
       COLLECT(DISTINCT source) AS inspirations,
       COLLECT(DISTINCT inspired) AS inspired_artworks`,
		map[string]any{"id": id},
	)
	if err != nil {
		return nil, apperrors.NewDatabaseError("failed to get artwork inspirations", err)
	}
	if len(rows) == 0 {
		return nil, apperrors.NewNotFoundError("artwork")
	}

	result := &ArtworkInspirations{
		Artwork:      art.ArtworkFromProps(rows[0].Map("artwork")),
		Inspirations: decodeArtworkList(rows[0].List("inspirations")),
		Inspired:     decodeArtworkList(rows[0].List("inspired_artworks")),
	}
	return result, nil
}

func decodeArtworkList(values []any) []art.Artwork {
	out := make([]art.Artwork, 0, len(values))
	for _, v := range values {
		if props, ok := v.(map[string]any); ok {
			out = append(out, art.ArtworkFromProps(props))
		}
	}
	return out
}

// ArtistOf returns the artist that CREATED an artwork.
func (s *ArtworkService) ArtistOf(ctx context.Context, id int64) (*art.Artist, error) {
	rows, err := s.executor.Execute(ctx,
		`MATCH (artist:Artist)-[:CREATED]->(artwork:Artwork {Art_ArtworkID: $id})
RETURN artist`,
		map[string]any{"id": id},
	)
	if err != nil {
		return nil, apperrors.NewDatabaseError("failed to get artwork artist", err)
	}
	if len(rows) == 0 {
		return nil, apperrors.NewNotFoundError("artist")
	}
	a := art.ArtistFromProps(rows[0].Map("artist"))
	return &a, nil
}

// CreateInspire upserts an INSPIRE edge between two existing artworks.
// MERGE keeps the operation idempotent: at most one edge per ordered
// pair. Both endpoints must exist; a missing endpoint matches zero rows
// and surfaces as not found without distinguishing which side is absent.
func (s *ArtworkService) CreateInspire(ctx context.Context, sourceID, targetID int64) error {
	rows, err := s.executor.Execute(ctx,
		`MATCH (source:Artwork {Art_ArtworkID: $sourceID})
MATCH (inspired:Artwork {Art_ArtworkID: $targetID})
MERGE (source)-[r:INSPIRE]->(inspired)
RETURN r`,
		map[string]any{"sourceID": sourceID, "targetID": targetID},
	)
	if err != nil {
		return apperrors.NewDatabaseError("failed to create inspire relation", err)
	}
	if len(rows) == 0 {
		return apperrors.NewNotFoundError("artwork")
	}
	return nil
}

// DeleteInspire removes an INSPIRE edge. Returns true iff an edge was
// removed.
func (s *ArtworkService) DeleteInspire(ctx context.Context, sourceID, targetID int64) (bool, error) {
	rows, err := s.executor.Execute(ctx,
		`MATCH (source:Artwork {Art_ArtworkID: $sourceID})-[r:INSPIRE]->(inspired:Artwork {Art_ArtworkID: $targetID})
DELETE r
RETURN count(r) AS deleted`,
		map[string]any{"sourceID": sourceID, "targetID": targetID},
	)
	if err != nil {
		return false, apperrors.NewDatabaseError("failed to delete inspire relation", err)
	}
	return len(rows) > 0 && rows[0].Int("deleted") > 0, nil
}

// MoveCreated reassigns an artwork to another artist: the existing
// CREATED edge is deleted, then the new one is merged. The two steps are
// separate statements, not one transaction; a crash between them leaves
// the artwork without an owner until retried.
func (s *ArtworkService) MoveCreated(ctx context.Context, artworkID, newArtistID int64) (*art.Artwork, error) {
	_, err := s.executor.Execute(ctx,
		`MATCH (:Artist)-[r:CREATED]->(artwork:Artwork {Art_ArtworkID: $artworkID})
DELETE r`,
		map[string]any{"artworkID": artworkID},
	)
	if err != nil {
		return nil, apperrors.NewDatabaseError("failed to detach artwork", err)
	}

	rows, err := s.executor.Execute(ctx,
		`MATCH (artist:Artist {Ar_ArtistID: $artistID})
MATCH (artwork:Artwork {Art_ArtworkID: $artworkID})
MERGE (artist)-[:CREATED]->(artwork)
SET artwork.Art_ArtistID = $artistID
RETURN artwork`,
		map[string]any{"artistID": newArtistID, "artworkID": artworkID},
	)
	if err != nil {
		return nil, apperrors.NewDatabaseError("failed to reattach artwork", err)
	}
	if len(rows) == 0 {
		return nil, apperrors.NewNotFoundError("artist or artwork")
	}
	moved := art.ArtworkFromProps(rows[0].Map("artwork"))
	return &moved, nil
}
