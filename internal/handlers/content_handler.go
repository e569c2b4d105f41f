package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/maatcore/backend/internal/imdb"
	"github.com/maatcore/backend/internal/models"
	"github.com/maatcore/backend/internal/repository"
)

type ContentHandler struct {
	contentRepo *repository.ContentRepository
	importer    *imdb.Importer
	logger      *logrus.Logger
	apiKey      string
}

func NewContentHandler(contentRepo *repository.ContentRepository, importer *imdb.Importer, apiKey string, logger *logrus.Logger) *ContentHandler {
	return &ContentHandler{
		contentRepo: contentRepo,
		importer:    importer,
		logger:      logger,
		apiKey:      apiKey,
	}
}

// ListContent lists catalog items within a skip/limit window, in the API
// shape (image exposed as imageUrl)
func (h *ContentHandler) ListContent(c *gin.Context) {
	var q models.ListQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	skip, limit := q.Window()
	items, err := h.contentRepo.List(skip, limit)
	if err != nil {
		h.logger.WithError(err).Error("failed to list content")
		ErrorResponse(c, http.StatusInternalServerError, "Failed to list content")
		return
	}

	responses := make([]models.ContentItemResponse, 0, len(items))
	for _, item := range items {
		responses = append(responses, item.ToResponse())
	}

	c.JSON(http.StatusOK, responses)
}

// GetContent returns one catalog item by id
func (h *ContentHandler) GetContent(c *gin.Context) {
	id, ok := IDParam(c)
	if !ok {
		return
	}

	item, err := h.contentRepo.GetByID(id)
	if err != nil {
		RepoErrorResponse(c, err, "Not found", "Failed to get content")
		return
	}

	c.JSON(http.StatusOK, item.ToResponse())
}

// CreateContent adds a catalog item by hand
func (h *ContentHandler) CreateContent(c *gin.Context) {
	var req models.CreateContentItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	item := req.ToContentItem()
	if err := h.contentRepo.Create(item); err != nil {
		h.logger.WithError(err).Error("failed to create content item")
		ErrorResponse(c, http.StatusInternalServerError, "Failed to create content")
		return
	}

	c.JSON(http.StatusCreated, item.ToResponse())
}

// UpdateContent replaces every mutable field of a catalog item
func (h *ContentHandler) UpdateContent(c *gin.Context) {
	id, ok := IDParam(c)
	if !ok {
		return
	}

	var req models.CreateContentItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	item := req.ToContentItem()
	if err := h.contentRepo.Update(id, item); err != nil {
		RepoErrorResponse(c, err, "Not found", "Failed to update content")
		return
	}

	c.JSON(http.StatusOK, item.ToResponse())
}

// DeleteContent removes a catalog item
func (h *ContentHandler) DeleteContent(c *gin.Context) {
	id, ok := IDParam(c)
	if !ok {
		return
	}

	if err := h.contentRepo.Delete(id); err != nil {
		RepoErrorResponse(c, err, "Not found", "Failed to delete content")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Content deleted"})
}

// ImportContent runs the provider import synchronously. Per-page and
// per-record provider failures are logged and skipped inside the importer;
// the caller only learns that the run completed.
func (h *ContentHandler) ImportContent(c *gin.Context) {
	if err := h.importer.Run(); err != nil {
		h.logger.WithError(err).Error("import failed")
		ErrorResponse(c, http.StatusInternalServerError, "Import failed")
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "imported"})
}

// GetAPIKey exposes the configured provider key, 404 when unset
func (h *ContentHandler) GetAPIKey(c *gin.Context) {
	if h.apiKey == "" {
		ErrorResponse(c, http.StatusNotFound, "IMDB API key not found")
		return
	}

	c.JSON(http.StatusOK, gin.H{"api_key": h.apiKey})
}
