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

// ArtistService serves artist CRUD, listing and artist-anchored relation
// operations.
type ArtistService struct {
	executor ports.Executor
	logger   *zap.Logger
}

// NewArtistService creates an artist service.
func NewArtistService(executor ports.Executor, logger *zap.Logger) *ArtistService {
	return &ArtistService{
		executor: executor,
		logger:   logger,
	}
}

// GetAll returns every artist, unordered.
func (s *ArtistService) GetAll(ctx context.Context) ([]art.Artist, error) {
	rows, err := s.executor.Execute(ctx, "MATCH (artist:Artist) RETURN artist", nil)
	if err != nil {
		return nil, apperrors.NewDatabaseError("failed to list artists", err)
	}
	artists := make([]art.Artist, 0, len(rows))
	for _, row := range rows {
		artists = append(artists, art.ArtistFromProps(row.Map("artist")))
	}
	return artists, nil
}

// GetByID looks an artist up by business identity.
func (s *ArtistService) GetByID(ctx context.Context, id int64) (*art.Artist, error) {
	rows, err := s.executor.Execute(ctx,
		"MATCH (artist:Artist {Ar_ArtistID: $id}) RETURN artist",
		map[string]any{"id": id},
	)
	if err != nil {
		return nil, apperrors.NewDatabaseError("failed to get artist", err)
	}
	if len(rows) == 0 {
		return nil, apperrors.NewNotFoundError("artist")
	}
	a := art.ArtistFromProps(rows[0].Map("artist"))
	return &a, nil
}

// createArtistQuery increments the artist counter and creates the node
// in one statement; the store's transactional guarantee is what makes
// concurrent creations receive distinct identities.
const createArtistQuery = `MERGE (c:Counter {name: 'Ar_ArtistID'})
ON CREATE SET c.count = 0
SET c.count = c.count + 1
WITH c.count AS new_id
CREATE (artist:Artist)
SET artist = $props, artist.Ar_ArtistID = new_id
RETURN artist`

// Create inserts a new artist. The business identity is assigned by the
// counter; any identity on the input is ignored.
func (s *ArtistService) Create(ctx context.Context, input art.Artist) (*art.Artist, error) {
	props := map[string]any{
		"Ar_FirstName": input.FirstName,
		"Ar_LastName":  input.LastName,
		"Ar_BirthDay":  input.BirthDay,
	}
	putIfSet(props, "Ar_DeathDay", input.DeathDay)
	putIfSet(props, "Ar_Nationality", input.Nationality)
	putIfSet(props, "Ar_Biography", input.Biography)
	putIfSet(props, "Ar_ImageURL", input.ImageURL)
	putIfSet(props, "Ar_BirthCountry", input.BirthCountry)
	putIfSet(props, "Ar_DeathCountry", input.DeathCountry)
	if len(input.Movements) > 0 {
		props["Ar_Movement"] = input.Movements
	}

	rows, err := s.executor.Execute(ctx, createArtistQuery, map[string]any{"props": props})
	if err != nil {
		return nil, apperrors.NewDatabaseError("failed to create artist", err)
	}
	if len(rows) == 0 {
		return nil, apperrors.NewDatabaseError("artist creation returned no result", nil)
	}
	created := art.ArtistFromProps(rows[0].Map("artist"))
	return &created, nil
}

// Update applies a partial update: only fields present on the patch
// overwrite stored values (SET += merge semantics).
func (s *ArtistService) Update(ctx context.Context, id int64, patch art.ArtistPatch) (*art.Artist, error) {
	props := map[string]any{}
	putPtr(props, "Ar_FirstName", patch.FirstName)
	putPtr(props, "Ar_LastName", patch.LastName)
	putPtr(props, "Ar_BirthDay", patch.BirthDay)
	putPtr(props, "Ar_DeathDay", patch.DeathDay)
	putPtr(props, "Ar_Nationality", patch.Nationality)
	putPtr(props, "Ar_Biography", patch.Biography)
	putPtr(props, "Ar_ImageURL", patch.ImageURL)
	putPtr(props, "Ar_BirthCountry", patch.BirthCountry)
	putPtr(props, "Ar_DeathCountry", patch.DeathCountry)
	if patch.Movements != nil {
		props["Ar_Movement"] = *patch.Movements
	}

	rows, err := s.executor.Execute(ctx,
		`MATCH (artist:Artist {Ar_ArtistID: $id})
SET artist += $props
RETURN artist`,
		map[string]any{"id": id, "props": props},
	)
	if err != nil {
		return nil, apperrors.NewDatabaseError("failed to update artist", err)
	}
	if len(rows) == 0 {
		return nil, apperrors.NewNotFoundError("artist")
	}
	updated := art.ArtistFromProps(rows[0].Map("artist"))
	return &updated, nil
}

// Delete detach-deletes an artist: the node and every incident CREATED
// relation go together. Returns true iff a node was removed.
func (s *ArtistService) Delete(ctx context.Context, id int64) (bool, error) {
	rows, err := s.executor.Execute(ctx,
		`MATCH (artist:Artist {Ar_ArtistID: $id})
DETACH DELETE artist
RETURN count(artist) AS deleted`,
		map[string]any{"id": id},
	)
	if err != nil {
		return false, apperrors.NewDatabaseError("failed to delete artist", err)
	}
	return len(rows) > 0 && rows[0].Int("deleted") > 0, nil
}

// ListPage returns one listing window ordered by business identity
// ascending, with an optional case-insensitive free-text filter. A page
// beyond the last returns an empty window with valid metadata, not an
// error.
func (s *ArtistService) ListPage(ctx context.Context, page, pageSize int, query string) (*common.PageResult, error) {
	if page < 1 {
		return nil, apperrors.NewValidationError("page number must be 1 or greater")
	}
	if pageSize < 1 {
		pageSize = common.DefaultPageSize
	}

	where := ""
	params := map[string]any{}
	if query != "" {
		pred, predParams := cypher.ArtistSearchPredicate("artist", query)
		where = "WHERE " + pred
		for k, v := range predParams {
			params[k] = v
		}
	}

	countRows, err := s.executor.Execute(ctx,
		"MATCH (artist:Artist) "+where+" RETURN count(artist) AS total",
		params,
	)
	if err != nil {
		return nil, apperrors.NewDatabaseError("failed to count artists", err)
	}
	total := 0
	if len(countRows) > 0 {
		total = int(countRows[0].Int("total"))
	}

	params["skip"] = common.CalculateOffset(page, pageSize)
	params["limit"] = pageSize
	rows, err := s.executor.Execute(ctx,
		"MATCH (artist:Artist) "+where+
			" RETURN artist ORDER BY artist.Ar_ArtistID ASC SKIP $skip LIMIT $limit",
		params,
	)
	if err != nil {
		return nil, apperrors.NewDatabaseError("failed to list artists page", err)
	}

	items := make([]art.Artist, 0, len(rows))
	for _, row := range rows {
		items = append(items, art.ArtistFromProps(row.Map("artist")))
	}
	result := common.NewPageResult(items, page, pageSize, total)
	return &result, nil
}

// Artworks returns the artworks an artist CREATED. A missing artist and
// an artist with no artworks are both an empty collection.
func (s *ArtistService) Artworks(ctx context.Context, artistID int64) ([]art.Artwork, error) {
	rows, err := s.executor.Execute(ctx,
		`MATCH (artist:Artist {Ar_ArtistID: $id})-[:CREATED]->(artwork:Artwork)
RETURN artwork`,
		map[string]any{"id": artistID},
	)
	if err != nil {
		return nil, apperrors.NewDatabaseError("failed to list artist artworks", err)
	}
	artworks := make([]art.Artwork, 0, len(rows))
	for _, row := range rows {
		artworks = append(artworks, art.ArtworkFromProps(row.Map("artwork")))
	}
	return artworks, nil
}

// createArtworkForArtistQuery assigns the artwork identity and links the
// CREATED edge in the same statement, so a created artwork is never left
// without its relation.
const createArtworkForArtistQuery = `MATCH (artist:Artist {Ar_ArtistID: $artistID})
MERGE (c:Counter {name: 'Art_ArtworkID'})
ON CREATE SET c.count = 0
SET c.count = c.count + 1
WITH artist, c.count AS new_id
CREATE (artwork:Artwork)
SET artwork = $props, artwork.Art_ArtworkID = new_id, artwork.Art_ArtistID = $artistID
MERGE (artist)-[:CREATED]->(artwork)
RETURN artwork`

// CreateArtwork inserts a new artwork owned by the artist.
func (s *ArtistService) CreateArtwork(ctx context.Context, artistID int64, input art.Artwork) (*art.Artwork, error) {
	props := map[string]any{
		"Art_Title":       input.Title,
		"Art_Year":        input.Year,
		"Art_Description": input.Description,
	}
	putIfSet(props, "Art_ImageURL", input.ImageURL)
	putIfSet(props, "Art_Medium", input.Medium)
	putIfSet(props, "Art_Dimensions", input.Dimensions)

	rows, err := s.executor.Execute(ctx, createArtworkForArtistQuery,
		map[string]any{"artistID": artistID, "props": props},
	)
	if err != nil {
		return nil, apperrors.NewDatabaseError("failed to create artwork", err)
	}
	if len(rows) == 0 {
		return nil, apperrors.NewNotFoundError("artist")
	}
	created := art.ArtworkFromProps(rows[0].Map("artwork"))
	return &created, nil
}

func putIfSet(props map[string]any, key, value string) {
	if value != "" {
		props[key] = value
	}
}

func putPtr(props map[string]any, key string, value *string) {
	if value != nil {
		props[key] = *value
	}
}
