package cypher

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"artgraph-backend/domain/art"
)

func TestArtistPredicates_EmptySpec(t *testing.T) {
	preds := ArtistPredicates(art.FilterSpec{})

	assert.True(t, preds.Empty())
	assert.Empty(t, preds.Render("artist"))
	assert.Empty(t, preds.Where("artist"))
	assert.Empty(t, preds.Params())
}

func TestArtistPredicates_AllDimensions(t *testing.T) {
	spec := art.FilterSpec{
		Nationalities: []string{"French", "Spanish"},
		Movements:     []string{"Cubism"},
		YearMin:       "1850",
		YearMax:       "1920",
	}
	preds := ArtistPredicates(spec)

	rendered := preds.Render("artist")
	assert.Contains(t, rendered, "artist.Ar_Nationality IN $nationalities")
	assert.Contains(t, rendered, "ANY(x IN artist.Ar_Movement WHERE x IN $movements)")
	assert.Contains(t, rendered, "artist.Ar_BirthDay >= $year_min")
	assert.Contains(t, rendered, "artist.Ar_BirthDay <= $year_max")
	assert.Equal(t, 3, strings.Count(rendered, " AND "))

	params := preds.Params()
	assert.Equal(t, []string{"French", "Spanish"}, params["nationalities"])
	assert.Equal(t, []string{"Cubism"}, params["movements"])
	assert.Equal(t, "1850-01-01", params["year_min"])
	assert.Equal(t, "1920-01-01", params["year_max"])
}

func TestArtworkPredicates_YearParamsAreSeparateSlots(t *testing.T) {
	spec := art.FilterSpec{YearMin: "1900", YearMax: "1950", Mediums: []string{"Oil"}}
	preds := ArtworkPredicates(spec)

	rendered := preds.Render("artwork")
	assert.Contains(t, rendered, "artwork.Art_Medium IN $mediums")
	assert.Contains(t, rendered, "artwork.Art_Year >= $year_min_art")
	assert.Contains(t, rendered, "artwork.Art_Year <= $year_max_art")

	params := preds.Params()
	assert.Equal(t, "1900-01-01", params["year_min_art"])
	assert.Equal(t, "1950-01-01", params["year_max_art"])
}

func TestPredicateSet_RendersAgainstAnyVariable(t *testing.T) {
	preds := ArtistPredicates(art.FilterSpec{Nationalities: []string{"Dutch"}})

	assert.Equal(t, "artist.Ar_Nationality IN $nationalities", preds.Render("artist"))
	assert.Equal(t, "n1.Ar_Nationality IN $nationalities", preds.Render("n1"))
	assert.Equal(t, "(NOT n2:Artist OR (n2.Ar_Nationality IN $nationalities))", preds.Guard("n2", "Artist"))
}

func TestGraphQuery_NoFilters(t *testing.T) {
	query, params := GraphQuery(art.FilterSpec{})

	assert.Empty(t, params)
	assert.Contains(t, query, "MATCH (artist:Artist)")
	assert.Contains(t, query, "MATCH (artwork:Artwork)")
	assert.Contains(t, query, "MATCH (n1)-[relation]->(n2)")
	assert.NotContains(t, query, "WHERE")
	assert.NotContains(t, query, "ORDER BY")
	assert.True(t, strings.HasSuffix(query, "RETURN artists, artworks, relations"))
	assert.Contains(t, query, "collect({data: artist, id: id(artist), type: 'Artist'}) AS artists")
	assert.Contains(t, query, "collect({data: artwork, id: id(artwork), type: 'Artwork'}) AS artworks")
	assert.Contains(t, query, "collect({source: id(n1), target: id(n2)}) AS relations")
}

func TestGraphQuery_ExcludeArtists(t *testing.T) {
	query, _ := GraphQuery(art.FilterSpec{ExcludeArtists: true})

	assert.Contains(t, query, "CALL { RETURN [] AS artists }")
	assert.NotContains(t, query, "MATCH (artist:Artist)")
	assert.Contains(t, query, "MATCH (artwork:Artwork)")
	assert.Contains(t, query, "WHERE NOT (n1:Artist OR n2:Artist)")
}

func TestGraphQuery_ExcludeArtworks(t *testing.T) {
	query, _ := GraphQuery(art.FilterSpec{ExcludeArtworks: true})

	assert.Contains(t, query, "CALL { RETURN [] AS artworks }")
	assert.Contains(t, query, "WHERE NOT (n1:Artwork OR n2:Artwork)")
}

func TestGraphQuery_BothExcluded_EmptyArms(t *testing.T) {
	// The service rejects this combination; the builder still renders a
	// stable shape.
	query, params := GraphQuery(art.FilterSpec{ExcludeArtists: true, ExcludeArtworks: true})

	assert.Empty(t, params)
	assert.Contains(t, query, "CALL { RETURN [] AS artists }")
	assert.Contains(t, query, "CALL { RETURN [] AS artworks }")
	assert.Contains(t, query, "CALL { RETURN [] AS relations }")
}

func TestGraphQuery_RelationGuardsReferToEndpointVariables(t *testing.T) {
	spec := art.FilterSpec{
		Nationalities: []string{"French"},
		Mediums:       []string{"Oil"},
	}
	query, params := GraphQuery(spec)

	// Each endpoint of a filterable type must satisfy the matching
	// entity predicate, rendered on the relation's own variables.
	assert.Contains(t, query, "(NOT n1:Artist OR (n1.Ar_Nationality IN $nationalities))")
	assert.Contains(t, query, "(NOT n2:Artist OR (n2.Ar_Nationality IN $nationalities))")
	assert.Contains(t, query, "(NOT n1:Artwork OR (n1.Art_Medium IN $mediums))")
	assert.Contains(t, query, "(NOT n2:Artwork OR (n2.Art_Medium IN $mediums))")

	// The relation arm must never reference the node-arm variables.
	relArm := query[strings.Index(query, "MATCH (n1)"):]
	assert.NotContains(t, relArm, "artist.")
	assert.NotContains(t, relArm, "artwork.")

	assert.Equal(t, []string{"French"}, params["nationalities"])
	assert.Equal(t, []string{"Oil"}, params["mediums"])
}

func TestGraphQuery_Deterministic(t *testing.T) {
	spec := art.FilterSpec{
		Nationalities: []string{"French"},
		Movements:     []string{"Impressionism"},
		Mediums:       []string{"Oil"},
		YearMin:       "1800",
		YearMax:       "1900",
	}

	q1, p1 := GraphQuery(spec)
	q2, p2 := GraphQuery(spec)

	require.Equal(t, q1, q2)
	require.Equal(t, p1, p2)
}

func TestArtistSearchPredicate(t *testing.T) {
	pred, params := ArtistSearchPredicate("artist", "MoNet")

	assert.Contains(t, pred, "toLower(artist.Ar_FirstName) CONTAINS $search")
	assert.Contains(t, pred, "toLower(artist.Ar_LastName) CONTAINS $search")
	assert.Contains(t, pred, "toLower(artist.Ar_Nationality) CONTAINS $search")
	assert.Contains(t, pred, "ANY(x IN artist.Ar_Movement WHERE toLower(x) CONTAINS $search)")
	assert.Contains(t, pred, "toString(artist.Ar_BirthDay) CONTAINS $search")
	assert.Contains(t, pred, "toString(artist.Ar_DeathDay) CONTAINS $search")
	assert.Equal(t, "monet", params["search"])
}

func TestArtworkSearchPredicate_TitleOnly(t *testing.T) {
	pred, params := ArtworkSearchPredicate("artwork", "Nymphéas")

	assert.Equal(t, "toLower(artwork.Art_Title) CONTAINS $search", pred)
	assert.Equal(t, "nymphéas", params["search"])
}
