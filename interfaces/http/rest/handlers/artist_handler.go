package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"artgraph-backend/application/services"
	"artgraph-backend/domain/art"
	"artgraph-backend/pkg/common"
	"artgraph-backend/pkg/utils"
)

// ArtistHandler handles artist-related HTTP requests.
type ArtistHandler struct {
	artists *services.ArtistService
	logger  *zap.Logger
}

// NewArtistHandler creates a new artist handler.
func NewArtistHandler(artists *services.ArtistService, logger *zap.Logger) *ArtistHandler {
	return &ArtistHandler{
		artists: artists,
		logger:  logger,
	}
}

// CreateArtistRequest is the request body for creating an artist.
type CreateArtistRequest struct {
	FirstName    string   `json:"Ar_FirstName" validate:"required"`
	LastName     string   `json:"Ar_LastName" validate:"required"`
	BirthDay     string   `json:"Ar_BirthDay" validate:"required,datetime=2006-01-02"`
	DeathDay     string   `json:"Ar_DeathDay,omitempty" validate:"omitempty,datetime=2006-01-02"`
	Nationality  string   `json:"Ar_Nationality,omitempty"`
	Biography    string   `json:"Ar_Biography,omitempty"`
	ImageURL     string   `json:"Ar_ImageURL,omitempty" validate:"omitempty,url"`
	BirthCountry string   `json:"Ar_BirthCountry,omitempty"`
	DeathCountry string   `json:"Ar_DeathCountry,omitempty"`
	Movements    []string `json:"Ar_Movement,omitempty"`
}

// UpdateArtistRequest is the patch body for updating an artist. Absent
// fields keep their stored values.
type UpdateArtistRequest struct {
	FirstName    *string   `json:"Ar_FirstName,omitempty"`
	LastName     *string   `json:"Ar_LastName,omitempty"`
	BirthDay     *string   `json:"Ar_BirthDay,omitempty" validate:"omitempty,datetime=2006-01-02"`
	DeathDay     *string   `json:"Ar_DeathDay,omitempty" validate:"omitempty,datetime=2006-01-02"`
	Nationality  *string   `json:"Ar_Nationality,omitempty"`
	Biography    *string   `json:"Ar_Biography,omitempty"`
	ImageURL     *string   `json:"Ar_ImageURL,omitempty" validate:"omitempty,url"`
	BirthCountry *string   `json:"Ar_BirthCountry,omitempty"`
	DeathCountry *string   `json:"Ar_DeathCountry,omitempty"`
	Movements    *[]string `json:"Ar_Movement,omitempty"`
}

// GetArtists handles GET /artists.
func (h *ArtistHandler) GetArtists(w http.ResponseWriter, r *http.Request) {
	artists, err := h.artists.GetAll(r.Context())
	if err != nil {
		h.logger.Error("list artists failed", zap.Error(err))
		common.RespondAppError(w, err)
		return
	}
	common.RespondSuccess(w, http.StatusOK, "", artists)
}

// GetArtist handles GET /artists/{artistID}.
func (h *ArtistHandler) GetArtist(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "artistID")
	if !ok {
		return
	}
	artist, err := h.artists.GetByID(r.Context(), id)
	if err != nil {
		common.RespondAppError(w, err)
		return
	}
	common.RespondSuccess(w, http.StatusOK, "", artist)
}

// CreateArtist handles POST /artists.
func (h *ArtistHandler) CreateArtist(w http.ResponseWriter, r *http.Request) {
	var req CreateArtistRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		common.RespondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := utils.ValidateStruct(req); err != nil {
		common.RespondError(w, http.StatusBadRequest, err.Error())
		return
	}

	created, err := h.artists.Create(r.Context(), art.Artist{
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		BirthDay:     req.BirthDay,
		DeathDay:     req.DeathDay,
		Nationality:  req.Nationality,
		Biography:    req.Biography,
		ImageURL:     req.ImageURL,
		BirthCountry: req.BirthCountry,
		DeathCountry: req.DeathCountry,
		Movements:    req.Movements,
	})
	if err != nil {
		h.logger.Error("create artist failed", zap.Error(err))
		common.RespondAppError(w, err)
		return
	}
	common.RespondSuccess(w, http.StatusCreated, "Artist created", created)
}

// UpdateArtist handles PUT /artists/{artistID}.
func (h *ArtistHandler) UpdateArtist(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "artistID")
	if !ok {
		return
	}
	var req UpdateArtistRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		common.RespondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := utils.ValidateStruct(req); err != nil {
		common.RespondError(w, http.StatusBadRequest, err.Error())
		return
	}

	updated, err := h.artists.Update(r.Context(), id, art.ArtistPatch{
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		BirthDay:     req.BirthDay,
		DeathDay:     req.DeathDay,
		Nationality:  req.Nationality,
		Biography:    req.Biography,
		ImageURL:     req.ImageURL,
		BirthCountry: req.BirthCountry,
		DeathCountry: req.DeathCountry,
		Movements:    req.Movements,
	})
	if err != nil {
		common.RespondAppError(w, err)
		return
	}
	common.RespondSuccess(w, http.StatusOK, "Artist updated", updated)
}

// DeleteArtist handles DELETE /artists/{artistID}.
func (h *ArtistHandler) DeleteArtist(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "artistID")
	if !ok {
		return
	}
	deleted, err := h.artists.Delete(r.Context(), id)
	if err != nil {
		common.RespondAppError(w, err)
		return
	}
	if !deleted {
		common.RespondError(w, http.StatusNotFound, "artist not found")
		return
	}
	common.RespondSuccess(w, http.StatusOK, "Artist deleted", nil)
}

// GetArtistsPage handles GET /artists/page/{page}.
func (h *ArtistHandler) GetArtistsPage(w http.ResponseWriter, r *http.Request) {
	page, err := strconv.Atoi(chi.URLParam(r, "page"))
	if err != nil {
		common.RespondError(w, http.StatusBadRequest, "page must be an integer")
		return
	}
	result, svcErr := h.artists.ListPage(r.Context(), page,
		common.ExtractPageSize(r), r.URL.Query().Get("query"))
	if svcErr != nil {
		common.RespondAppError(w, svcErr)
		return
	}
	common.RespondSuccess(w, http.StatusOK, "", result)
}

// GetArtistArtworks handles GET /artists/{artistID}/artworks.
func (h *ArtistHandler) GetArtistArtworks(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "artistID")
	if !ok {
		return
	}
	artworks, err := h.artists.Artworks(r.Context(), id)
	if err != nil {
		common.RespondAppError(w, err)
		return
	}
	common.RespondSuccess(w, http.StatusOK, "", artworks)
}

// CreateArtistArtwork handles POST /artists/{artistID}/artworks.
func (h *ArtistHandler) CreateArtistArtwork(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "artistID")
	if !ok {
		return
	}
	var req CreateArtworkRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		common.RespondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := utils.ValidateStruct(req); err != nil {
		common.RespondError(w, http.StatusBadRequest, err.Error())
		return
	}

	created, err := h.artists.CreateArtwork(r.Context(), id, req.toArtwork())
	if err != nil {
		common.RespondAppError(w, err)
		return
	}
	common.RespondSuccess(w, http.StatusCreated, "Artwork created", created)
}

// pathID parses a numeric path parameter, responding 400 on failure.
func pathID(w http.ResponseWriter, r *http.Request, name string) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, name), 10, 64)
	if err != nil {
		common.RespondError(w, http.StatusBadRequest, name+" must be an integer")
		return 0, false
	}
	return id, true
}
