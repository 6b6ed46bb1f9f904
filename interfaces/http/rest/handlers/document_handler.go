package handlers

import (
	"net/http"

	"go.uber.org/zap"

	"artgraph-backend/application/ports"
	"artgraph-backend/pkg/common"
)

// DocumentHandler handles file uploads.
type DocumentHandler struct {
	store    ports.DocumentStore
	maxBytes int64
	logger   *zap.Logger
}

// NewDocumentHandler creates a new document handler.
func NewDocumentHandler(store ports.DocumentStore, maxBytes int64, logger *zap.Logger) *DocumentHandler {
	return &DocumentHandler{
		store:    store,
		maxBytes: maxBytes,
		logger:   logger,
	}
}

// Upload handles POST /documents. Expects a multipart form with a
// "file" part and responds with the stored document's URL.
func (h *DocumentHandler) Upload(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, h.maxBytes)

	file, header, err := r.FormFile("file")
	if err != nil {
		common.RespondError(w, http.StatusBadRequest, "No file part in the request")
		return
	}
	defer file.Close()

	if header.Filename == "" {
		common.RespondError(w, http.StatusBadRequest, "No selected file")
		return
	}

	url, err := h.store.Save(r.Context(), header.Filename, file)
	if err != nil {
		h.logger.Error("document upload failed", zap.Error(err))
		common.RespondError(w, http.StatusInternalServerError, "An error occurred during upload")
		return
	}
	common.RespondSuccess(w, http.StatusCreated, "Document uploaded", map[string]string{"url": url})
}
