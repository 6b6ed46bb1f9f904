package cypher

import (
	"fmt"
	"strings"
)

// Search predicates for the paginated listing queries. The match is a
// case-insensitive substring test; the bound parameter is lowercased once
// here so the query text stays free of client input.

const searchParam = "search"

// ArtistSearchPredicate renders the artist free-text match against the
// given node variable. The matched fields are artist-specific: names,
// nationality, movement tags and the stringified birth/death dates.
func ArtistSearchPredicate(nodeVar, query string) (string, Params) {
	text := fmt.Sprintf(
		"(toLower(%[1]s.Ar_FirstName) CONTAINS $%[2]s"+
			" OR toLower(%[1]s.Ar_LastName) CONTAINS $%[2]s"+
			" OR toLower(%[1]s.Ar_Nationality) CONTAINS $%[2]s"+
			" OR ANY(x IN %[1]s.Ar_Movement WHERE toLower(x) CONTAINS $%[2]s)"+
			" OR toString(%[1]s.Ar_BirthDay) CONTAINS $%[2]s"+
			" OR toString(%[1]s.Ar_DeathDay) CONTAINS $%[2]s)",
		nodeVar, searchParam,
	)
	return text, Params{searchParam: strings.ToLower(query)}
}

// ArtworkSearchPredicate renders the artwork free-text match. Artworks
// match on title only.
func ArtworkSearchPredicate(nodeVar, query string) (string, Params) {
	text := fmt.Sprintf("toLower(%s.Art_Title) CONTAINS $%s", nodeVar, searchParam)
	return text, Params{searchParam: strings.ToLower(query)}
}
