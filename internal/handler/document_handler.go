package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/niharsaraf26/smartdocs/internal/domain"
	"github.com/niharsaraf26/smartdocs/internal/middleware"
	"github.com/niharsaraf26/smartdocs/internal/service"
)

// DocumentHandler exposes document upload, listing and ingestion endpoints.
type DocumentHandler struct {
	documents *service.DocumentService
	ingest    *service.IngestService
}

// NewDocumentHandler creates the document handler.
func NewDocumentHandler(documents *service.DocumentService, ingest *service.IngestService) *DocumentHandler {
	return &DocumentHandler{documents: documents, ingest: ingest}
}

// Upload handles POST /documents (multipart, field "file").
func (h *DocumentHandler) Upload(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		RespondError(c, http.StatusBadRequest, "MISSING_FILE", "multipart field \"file\" is required")
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		RespondError(c, http.StatusBadRequest, "UNREADABLE_FILE", "could not read the uploaded file")
		return
	}
	defer file.Close()

	doc, err := h.documents.Upload(c.Request.Context(), middleware.UserEmail(c),
		fileHeader.Filename, fileHeader.Size, file)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	RespondSuccess(c, http.StatusCreated, doc)
}

// List handles GET /documents?limit=&offset=.
func (h *DocumentHandler) List(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))

	page, err := h.documents.List(c.Request.Context(), middleware.UserEmail(c), limit, offset)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	RespondSuccess(c, http.StatusOK, page)
}

// Get handles GET /documents/:id.
func (h *DocumentHandler) Get(c *gin.Context) {
	id, ok := parseDocumentID(c)
	if !ok {
		return
	}

	doc, fields, err := h.documents.Get(c.Request.Context(), middleware.UserEmail(c), id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	RespondSuccess(c, http.StatusOK, gin.H{"document": doc, "fields": fields})
}

// DownloadURL handles GET /documents/:id/download-url.
func (h *DocumentHandler) DownloadURL(c *gin.Context) {
	id, ok := parseDocumentID(c)
	if !ok {
		return
	}

	url, err := h.documents.GetDownloadURL(c.Request.Context(), middleware.UserEmail(c), id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	RespondSuccess(c, http.StatusOK, gin.H{"url": url})
}

// Delete handles DELETE /documents/:id.
func (h *DocumentHandler) Delete(c *gin.Context) {
	id, ok := parseDocumentID(c)
	if !ok {
		return
	}

	if err := h.documents.Delete(c.Request.Context(), middleware.UserEmail(c), id); err != nil {
		RespondDomainError(c, err)
		return
	}
	RespondSuccess(c, http.StatusOK, gin.H{"deleted": id})
}

// CompleteProcessing handles POST /documents/:id/processing-result. The
// extraction pipeline calls it with the text and fields it produced.
func (h *DocumentHandler) CompleteProcessing(c *gin.Context) {
	id, ok := parseDocumentID(c)
	if !ok {
		return
	}

	var result service.ProcessingResult
	if err := c.ShouldBindJSON(&result); err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_BODY", "extracted_text is required")
		return
	}

	doc, err := h.ingest.CompleteProcessing(c.Request.Context(), middleware.UserEmail(c), id, result)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	RespondSuccess(c, http.StatusOK, doc)
}

// FailProcessing handles POST /documents/:id/processing-failure.
func (h *DocumentHandler) FailProcessing(c *gin.Context) {
	id, ok := parseDocumentID(c)
	if !ok {
		return
	}

	if err := h.ingest.MarkFailed(c.Request.Context(), middleware.UserEmail(c), id); err != nil {
		RespondDomainError(c, err)
		return
	}
	RespondSuccess(c, http.StatusOK, gin.H{"id": id, "processing_status": domain.ProcessingStatusFailed})
}

func parseDocumentID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", "document id must be a UUID")
		return uuid.Nil, false
	}
	return id, true
}
