package cypher

import (
	"strings"

	"artgraph-backend/domain/art"
)

// yearToDate turns a bare year into the calendar date used for range
// comparisons against Ar_BirthDay and Art_Year. Both properties store
// full date strings, so bounds are pinned to January 1st. Every year
// comparison in the codebase goes through here.
func yearToDate(year string) string {
	return year + "-01-01"
}

// ArtistPredicates builds the artist-side predicate set for a filter
// spec. Absent dimensions contribute nothing.
func ArtistPredicates(spec art.FilterSpec) PredicateSet {
	var s PredicateSet
	if len(spec.Nationalities) > 0 {
		s.add(membership{field: "Ar_Nationality", param: "nationalities"})
		s.bind("nationalities", spec.Nationalities)
	}
	if len(spec.Movements) > 0 {
		s.add(listMembership{field: "Ar_Movement", param: "movements"})
		s.bind("movements", spec.Movements)
	}
	if spec.YearMin != "" {
		s.add(comparison{field: "Ar_BirthDay", op: ">=", param: "year_min"})
		s.bind("year_min", yearToDate(spec.YearMin))
	}
	if spec.YearMax != "" {
		s.add(comparison{field: "Ar_BirthDay", op: "<=", param: "year_max"})
		s.bind("year_max", yearToDate(spec.YearMax))
	}
	return s
}

// ArtworkPredicates builds the artwork-side predicate set. Year bounds
// use their own parameter slots so both sets can be merged into one
// parameter map.
func ArtworkPredicates(spec art.FilterSpec) PredicateSet {
	var s PredicateSet
	if len(spec.Mediums) > 0 {
		s.add(membership{field: "Art_Medium", param: "mediums"})
		s.bind("mediums", spec.Mediums)
	}
	if spec.YearMin != "" {
		s.add(comparison{field: "Art_Year", op: ">=", param: "year_min_art"})
		s.bind("year_min_art", yearToDate(spec.YearMin))
	}
	if spec.YearMax != "" {
		s.add(comparison{field: "Art_Year", op: "<=", param: "year_max_art"})
		s.bind("year_max_art", yearToDate(spec.YearMax))
	}
	return s
}

// GraphQuery assembles the full-graph retrieval query: three CALL
// subqueries (artist nodes, artwork nodes, relations) collected in a
// single round trip, returning artists, artworks and relations aliases.
// Excluded entity types contribute an empty-collection arm so the result
// shape is stable. No ordering is imposed.
func GraphQuery(spec art.FilterSpec) (string, Params) {
	artistPreds := ArtistPredicates(spec)
	artworkPreds := ArtworkPredicates(spec)

	params := Params{}
	params.Merge(artistPreds.Params())
	params.Merge(artworkPreds.Params())

	var parts []string

	if spec.ExcludeArtists {
		parts = append(parts, "CALL { RETURN [] AS artists }")
	} else {
		parts = append(parts, callCollectNodes("artist", art.LabelArtist, artistPreds, "artists"))
	}

	if spec.ExcludeArtworks {
		parts = append(parts, "CALL { RETURN [] AS artworks }")
	} else {
		parts = append(parts, callCollectNodes("artwork", art.LabelArtwork, artworkPreds, "artworks"))
	}

	parts = append(parts, relationArm(spec, artistPreds, artworkPreds))

	query := strings.Join(parts, "\n") + "\nRETURN artists, artworks, relations"
	return query, params
}

// callCollectNodes renders one CALL arm collecting nodes of a label into
// the graph-payload wrapper {data, id, type}.
func callCollectNodes(nodeVar, label string, preds PredicateSet, alias string) string {
	var b strings.Builder
	b.WriteString("CALL {\n")
	b.WriteString("  MATCH (" + nodeVar + ":" + label + ")\n")
	if w := preds.Where(nodeVar); w != "" {
		b.WriteString("  " + w + "\n")
	}
	b.WriteString("  RETURN collect({data: " + nodeVar + ", id: id(" + nodeVar + "), type: '" + label + "'}) AS " + alias + "\n")
	b.WriteString("}")
	return b.String()
}

// relationArm renders the relation CALL arm. A relation survives only if
// neither endpoint belongs to an excluded type, and each endpoint of a
// filterable type independently satisfies the matching entity predicate.
func relationArm(spec art.FilterSpec, artistPreds, artworkPreds PredicateSet) string {
	if spec.ExcludeArtists && spec.ExcludeArtworks {
		return "CALL { RETURN [] AS relations }"
	}

	var filter string
	switch {
	case spec.ExcludeArtists:
		filter = "WHERE NOT (n1:" + art.LabelArtist + " OR n2:" + art.LabelArtist + ")"
	case spec.ExcludeArtworks:
		filter = "WHERE NOT (n1:" + art.LabelArtwork + " OR n2:" + art.LabelArtwork + ")"
	default:
		var guards []string
		if !artistPreds.Empty() {
			guards = append(guards,
				artistPreds.Guard("n1", art.LabelArtist),
				artistPreds.Guard("n2", art.LabelArtist),
			)
		}
		if !artworkPreds.Empty() {
			guards = append(guards,
				artworkPreds.Guard("n1", art.LabelArtwork),
				artworkPreds.Guard("n2", art.LabelArtwork),
			)
		}
		if len(guards) > 0 {
			filter = "WHERE " + strings.Join(guards, " AND ")
		}
	}

	var b strings.Builder
	b.WriteString("CALL {\n")
	b.WriteString("  MATCH (n1)-[relation]->(n2)\n")
	if filter != "" {
		b.WriteString("  " + filter + "\n")
	}
	b.WriteString("  RETURN collect({source: id(n1), target: id(n2)}) AS relations\n")
	b.WriteString("}")
	return b.String()
}
