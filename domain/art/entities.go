package art

// Node labels and relationship types as stored in the graph.
const (
	LabelArtist  = "Artist"
	LabelArtwork = "Artwork"
	LabelCounter = "Counter"

	RelCreated = "CREATED"
	RelInspire = "INSPIRE"
)

// Counter sequence names. One Counter node exists per sequence and holds
// the last issued business identity.
const (
	ArtistSequence  = "Ar_ArtistID"
	ArtworkSequence = "Art_ArtworkID"
)

// Artist is an Artist node. JSON tags match the property names stored in
// the graph, which double as the wire format.
type Artist struct {
	ID           int64    `json:"Ar_ArtistID"`
	FirstName    string   `json:"Ar_FirstName"`
	LastName     string   `json:"Ar_LastName"`
	BirthDay     string   `json:"Ar_BirthDay"`
	DeathDay     string   `json:"Ar_DeathDay,omitempty"`
	Nationality  string   `json:"Ar_Nationality,omitempty"`
	Biography    string   `json:"Ar_Biography,omitempty"`
	ImageURL     string   `json:"Ar_ImageURL,omitempty"`
	BirthCountry string   `json:"Ar_BirthCountry,omitempty"`
	DeathCountry string   `json:"Ar_DeathCountry,omitempty"`
	Movements    []string `json:"Ar_Movement,omitempty"`
}

// Artwork is an Artwork node.
type Artwork struct {
	ID          int64  `json:"Art_ArtworkID"`
	Title       string `json:"Art_Title"`
	Year        string `json:"Art_Year"`
	Description string `json:"Art_Description"`
	ImageURL    string `json:"Art_ImageURL,omitempty"`
	Medium      string `json:"Art_Medium,omitempty"`
	Dimensions  string `json:"Art_Dimensions,omitempty"`
	ArtistID    *int64 `json:"Art_ArtistID,omitempty"`
}

// ArtistPatch carries a partial update. Nil fields are left untouched
// (merge-if-present semantics).
type ArtistPatch struct {
	FirstName    *string
	LastName     *string
	BirthDay     *string
	DeathDay     *string
	Nationality  *string
	Biography    *string
	ImageURL     *string
	BirthCountry *string
	DeathCountry *string
	Movements    *[]string
}

// ArtworkPatch carries a partial artwork update.
type ArtworkPatch struct {
	Title       *string
	Year        *string
	Description *string
	ImageURL    *string
	Medium      *string
	Dimensions  *string
}

// GraphNode wraps a node for the client-side graph renderer. ID is the
// store-internal node identity, distinct from the business identity
// inside Data.
type GraphNode struct {
	Data map[string]any `json:"data"`
	ID   int64          `json:"id"`
	Type string         `json:"type"`
}

// GraphRelation is a rendered edge between two store-internal node ids.
type GraphRelation struct {
	Source int64 `json:"source"`
	Target int64 `json:"target"`
}

// GraphPayload is the read model returned by the graph endpoints. It is
// never persisted.
type GraphPayload struct {
	Artists   []GraphNode     `json:"artists"`
	Artworks  []GraphNode     `json:"artworks"`
	Relations []GraphRelation `json:"relations"`
}

// YearRange bounds the filter UI year slider.
type YearRange struct {
	Min int `json:"min"`
	Max int `json:"max"`
}

// FilterOptions aggregates the distinct values available for each filter
// dimension.
type FilterOptions struct {
	Nationalities []string  `json:"nationalities"`
	Mediums       []string  `json:"mediums"`
	Movements     []string  `json:"movements"`
	YearRange     YearRange `json:"year_range"`
}
