package art

import (
	"errors"
	"strconv"
)

// FilterSpec is the set of optional filter dimensions accepted by the
// graph endpoints. Empty slices and empty strings mean "no constraint".
type FilterSpec struct {
	Nationalities   []string
	Mediums         []string
	Movements       []string
	YearMin         string
	YearMax         string
	ExcludeArtists  bool
	ExcludeArtworks bool
}

// Validate rejects contradictory or malformed filter combinations before
// any query is built.
func (s FilterSpec) Validate() error {
	if s.ExcludeArtists && s.ExcludeArtworks {
		return errors.New("cannot exclude both artists and artworks")
	}
	min, max := -1, -1
	if s.YearMin != "" {
		v, err := strconv.Atoi(s.YearMin)
		if err != nil {
			return errors.New("yearMin must be an integer")
		}
		min = v
	}
	if s.YearMax != "" {
		v, err := strconv.Atoi(s.YearMax)
		if err != nil {
			return errors.New("yearMax must be an integer")
		}
		max = v
	}
	if min >= 0 && max >= 0 && min > max {
		return errors.New("yearMin cannot be greater than yearMax")
	}
	return nil
}

// HasArtistFilters reports whether any artist-side dimension is active.
func (s FilterSpec) HasArtistFilters() bool {
	return len(s.Nationalities) > 0 || len(s.Movements) > 0 || s.YearMin != "" || s.YearMax != ""
}

// HasArtworkFilters reports whether any artwork-side dimension is active.
func (s FilterSpec) HasArtworkFilters() bool {
	return len(s.Mediums) > 0 || s.YearMin != "" || s.YearMax != ""
}
