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

// ArtworkHandler handles artwork-related HTTP requests, including the
// INSPIRE relation endpoints.
type ArtworkHandler struct {
	artworks *services.ArtworkService
	logger   *zap.Logger
}

// NewArtworkHandler creates a new artwork handler.
func NewArtworkHandler(artworks *services.ArtworkService, logger *zap.Logger) *ArtworkHandler {
	return &ArtworkHandler{
		artworks: artworks,
		logger:   logger,
	}
}

// CreateArtworkRequest is the request body for creating an artwork.
type CreateArtworkRequest struct {
	Title       string `json:"Art_Title" validate:"required"`
	Year        string `json:"Art_Year" validate:"required,datetime=2006-01-02"`
	Description string `json:"Art_Description" validate:"required"`
	ImageURL    string `json:"Art_ImageURL,omitempty" validate:"omitempty,url"`
	Medium      string `json:"Art_Medium,omitempty"`
	Dimensions  string `json:"Art_Dimensions,omitempty"`
}

func (req CreateArtworkRequest) toArtwork() art.Artwork {
	return art.Artwork{
		Title:       req.Title,
		Year:        req.Year,
		Description: req.Description,
		ImageURL:    req.ImageURL,
		Medium:      req.Medium,
		Dimensions:  req.Dimensions,
	}
}

// UpdateArtworkRequest is the patch body for updating an artwork.
type UpdateArtworkRequest struct {
	Title       *string `json:"Art_Title,omitempty"`
	Year        *string `json:"Art_Year,omitempty" validate:"omitempty,datetime=2006-01-02"`
	Description *string `json:"Art_Description,omitempty"`
	ImageURL    *string `json:"Art_ImageURL,omitempty" validate:"omitempty,url"`
	Medium      *string `json:"Art_Medium,omitempty"`
	Dimensions  *string `json:"Art_Dimensions,omitempty"`
}

// InspireRequest names the artwork inspired by the one in the path.
type InspireRequest struct {
	InspiredArtworkID int64 `json:"inspiredArtworkID" validate:"required"`
}

// MoveArtistRequest reassigns an artwork to another artist.
type MoveArtistRequest struct {
	ArtistID int64 `json:"Ar_ArtistID" validate:"required"`
}

// GetArtworks handles GET /artworks.
func (h *ArtworkHandler) GetArtworks(w http.ResponseWriter, r *http.Request) {
	artworks, err := h.artworks.GetAll(r.Context())
	if err != nil {
		h.logger.Error("list artworks failed", zap.Error(err))
		common.RespondAppError(w, err)
		return
	}
	common.RespondSuccess(w, http.StatusOK, "", artworks)
}

// GetArtwork handles GET /artworks/{artworkID}.
func (h *ArtworkHandler) GetArtwork(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "artworkID")
	if !ok {
		return
	}
	artwork, err := h.artworks.GetByID(r.Context(), id)
	if err != nil {
		common.RespondAppError(w, err)
		return
	}
	common.RespondSuccess(w, http.StatusOK, "", artwork)
}

// CreateArtwork handles POST /artworks.
func (h *ArtworkHandler) CreateArtwork(w http.ResponseWriter, r *http.Request) {
	var req CreateArtworkRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		common.RespondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := utils.ValidateStruct(req); err != nil {
		common.RespondError(w, http.StatusBadRequest, err.Error())
		return
	}
	created, err := h.artworks.Create(r.Context(), req.toArtwork())
	if err != nil {
		h.logger.Error("create artwork failed", zap.Error(err))
		common.RespondAppError(w, err)
		return
	}
	common.RespondSuccess(w, http.StatusCreated, "Artwork created", created)
}

// UpdateArtwork handles PUT /artworks/{artworkID}.
func (h *ArtworkHandler) UpdateArtwork(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "artworkID")
	if !ok {
		return
	}
	var req UpdateArtworkRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		common.RespondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := utils.ValidateStruct(req); err != nil {
		common.RespondError(w, http.StatusBadRequest, err.Error())
		return
	}

	updated, err := h.artworks.Update(r.Context(), id, art.ArtworkPatch{
		Title:       req.Title,
		Year:        req.Year,
		Description: req.Description,
		ImageURL:    req.ImageURL,
		Medium:      req.Medium,
		Dimensions:  req.Dimensions,
	})
	if err != nil {
		common.RespondAppError(w, err)
		return
	}
	common.RespondSuccess(w, http.StatusOK, "Artwork updated", updated)
}

// DeleteArtwork handles DELETE /artworks/{artworkID}.
func (h *ArtworkHandler) DeleteArtwork(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "artworkID")
	if !ok {
		return
	}
	deleted, err := h.artworks.Delete(r.Context(), id)
	if err != nil {
		common.RespondAppError(w, err)
		return
	}
	if !deleted {
		common.RespondError(w, http.StatusNotFound, "artwork not found")
		return
	}
	common.RespondSuccess(w, http.StatusOK, "Artwork deleted", nil)
}

// GetArtworksPage handles GET /artworks/page/{page}.
func (h *ArtworkHandler) GetArtworksPage(w http.ResponseWriter, r *http.Request) {
	page, err := strconv.Atoi(chi.URLParam(r, "page"))
	if err != nil {
		common.RespondError(w, http.StatusBadRequest, "page must be an integer")
		return
	}
	result, svcErr := h.artworks.ListPage(r.Context(), page,
		common.ExtractPageSize(r), r.URL.Query().Get("query"))
	if svcErr != nil {
		common.RespondAppError(w, svcErr)
		return
	}
	common.RespondSuccess(w, http.StatusOK, "", result)
}

// GetInspired handles GET /artworks/{artworkID}/inspires: the artworks
// this one inspired.
func (h *ArtworkHandler) GetInspired(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "artworkID")
	if !ok {
		return
	}
	artworks, err := h.artworks.Inspired(r.Context(), id)
	if err != nil {
		common.RespondAppError(w, err)
		return
	}
	common.RespondSuccess(w, http.StatusOK, "", artworks)
}

// GetInspiredBy handles GET /artworks/{artworkID}/inspired: the artworks
// that inspired this one.
func (h *ArtworkHandler) GetInspiredBy(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "artworkID")
	if !ok {
		return
	}
	artworks, err := h.artworks.InspiredBy(r.Context(), id)
	if err != nil {
		common.RespondAppError(w, err)
		return
	}
	common.RespondSuccess(w, http.StatusOK, "", artworks)
}

// GetInspirations handles GET /artworks/{artworkID}/inspirations: the
// artwork with both directions of its INSPIRE neighborhood.
func (h *ArtworkHandler) GetInspirations(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "artworkID")
	if !ok {
		return
	}
	result, err := h.artworks.WithInspirations(r.Context(), id)
	if err != nil {
		common.RespondAppError(w, err)
		return
	}
	common.RespondSuccess(w, http.StatusOK, "", result)
}

// GetArtist handles GET /artworks/{artworkID}/artist.
func (h *ArtworkHandler) GetArtist(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "artworkID")
	if !ok {
		return
	}
	artist, err := h.artworks.ArtistOf(r.Context(), id)
	if err != nil {
		common.RespondAppError(w, err)
		return
	}
	common.RespondSuccess(w, http.StatusOK, "", artist)
}

// CreateInspire handles POST /artworks/{artworkID}/inspire.
func (h *ArtworkHandler) CreateInspire(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "artworkID")
	if !ok {
		return
	}
	var req InspireRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		common.RespondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := utils.ValidateStruct(req); err != nil {
		common.RespondError(w, http.StatusBadRequest, err.Error())
		return
	}
	if err := h.artworks.CreateInspire(r.Context(), id, req.InspiredArtworkID); err != nil {
		common.RespondAppError(w, err)
		return
	}
	common.RespondSuccess(w, http.StatusCreated, "Inspire relation created", nil)
}

// DeleteInspire handles DELETE /artworks/{artworkID}/inspire/{targetID}.
func (h *ArtworkHandler) DeleteInspire(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "artworkID")
	if !ok {
		return
	}
	target, ok := pathID(w, r, "targetID")
	if !ok {
		return
	}
	deleted, err := h.artworks.DeleteInspire(r.Context(), id, target)
	if err != nil {
		common.RespondAppError(w, err)
		return
	}
	if !deleted {
		common.RespondError(w, http.StatusNotFound, "inspire relation not found")
		return
	}
	common.RespondSuccess(w, http.StatusOK, "Inspire relation deleted", nil)
}

// MoveArtist handles PUT /artworks/{artworkID}/artist: reassigns the
// artwork to another artist.
func (h *ArtworkHandler) MoveArtist(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "artworkID")
	if !ok {
		return
	}
	var req MoveArtistRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		common.RespondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := utils.ValidateStruct(req); err != nil {
		common.RespondError(w, http.StatusBadRequest, err.Error())
		return
	}
	moved, err := h.artworks.MoveCreated(r.Context(), id, req.ArtistID)
	if err != nil {
		common.RespondAppError(w, err)
		return
	}
	common.RespondSuccess(w, http.StatusOK, "Artwork reassigned", moved)
}
