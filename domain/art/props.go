package art

// Decoding helpers for node property maps returned by the store. The
// driver hands back map[string]any with int64 numerics and []any lists.

func propString(props map[string]any, key string) string {
	if v, ok := props[key].(string); ok {
		return v
	}
	return ""
}

func propInt(props map[string]any, key string) int64 {
	switch v := props[key].(type) {
	case int64:
		return v
	case int:
		return int64(v)
	case float64:
		return int64(v)
	}
	return 0
}

func propStringList(props map[string]any, key string) []string {
	switch v := props[key].(type) {
	case []string:
		return v
	case []any:
		out := make([]string, 0, len(v))
		for _, e := range v {
			if s, ok := e.(string); ok {
				out = append(out, s)
			}
		}
		return out
	}
	return nil
}

// ArtistFromProps decodes an Artist node property map.
func ArtistFromProps(props map[string]any) Artist {
	return Artist{
		ID:           propInt(props, "Ar_ArtistID"),
		FirstName:    propString(props, "Ar_FirstName"),
		LastName:     propString(props, "Ar_LastName"),
		BirthDay:     propString(props, "Ar_BirthDay"),
		DeathDay:     propString(props, "Ar_DeathDay"),
		Nationality:  propString(props, "Ar_Nationality"),
		Biography:    propString(props, "Ar_Biography"),
		ImageURL:     propString(props, "Ar_ImageURL"),
		BirthCountry: propString(props, "Ar_BirthCountry"),
		DeathCountry: propString(props, "Ar_DeathCountry"),
		Movements:    propStringList(props, "Ar_Movement"),
	}
}

// ArtworkFromProps decodes an Artwork node property map.
func ArtworkFromProps(props map[string]any) Artwork {
	aw := Artwork{
		ID:          propInt(props, "Art_ArtworkID"),
		Title:       propString(props, "Art_Title"),
		Year:        propString(props, "Art_Year"),
		Description: propString(props, "Art_Description"),
		ImageURL:    propString(props, "Art_ImageURL"),
		Medium:      propString(props, "Art_Medium"),
		Dimensions:  propString(props, "Art_Dimensions"),
	}
	if _, ok := props["Art_ArtistID"]; ok {
		id := propInt(props, "Art_ArtistID")
		aw.ArtistID = &id
	}
	return aw
}
