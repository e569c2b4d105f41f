package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/maatcore/backend/internal/models"
	"github.com/maatcore/backend/internal/repository"
)

type VideoHandler struct {
	videoRepo *repository.VideoRepository
	logger    *logrus.Logger
}

func NewVideoHandler(videoRepo *repository.VideoRepository, logger *logrus.Logger) *VideoHandler {
	return &VideoHandler{videoRepo: videoRepo, logger: logger}
}

// GetVideos lists videos within a skip/limit window. Listing never touches
// view counters.
func (h *VideoHandler) GetVideos(c *gin.Context) {
	var q models.ListQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	skip, limit := q.Window()
	videos, err := h.videoRepo.List(skip, limit)
	if err != nil {
		h.logger.WithError(err).Error("failed to list videos")
		ErrorResponse(c, http.StatusInternalServerError, "Failed to list videos")
		return
	}

	c.JSON(http.StatusOK, videos)
}

// GetVideo returns one video by id and counts the view before responding
func (h *VideoHandler) GetVideo(c *gin.Context) {
	id, ok := IDParam(c)
	if !ok {
		return
	}

	video, err := h.videoRepo.View(id)
	if err != nil {
		RepoErrorResponse(c, err, "Video not found", "Failed to get video")
		return
	}

	c.JSON(http.StatusOK, video)
}

// CreateVideo creates a new video with zero views
func (h *VideoHandler) CreateVideo(c *gin.Context) {
	var req models.CreateVideoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	video := req.ToVideo()
	if err := h.videoRepo.Create(video); err != nil {
		h.logger.WithError(err).Error("failed to create video")
		ErrorResponse(c, http.StatusInternalServerError, "Failed to create video")
		return
	}

	c.JSON(http.StatusCreated, video)
}

// DeleteVideo removes a video
func (h *VideoHandler) DeleteVideo(c *gin.Context) {
	id, ok := IDParam(c)
	if !ok {
		return
	}

	if err := h.videoRepo.Delete(id); err != nil {
		RepoErrorResponse(c, err, "Video not found", "Failed to delete video")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Video deleted"})
}

// SearchVideos returns videos whose title or description contains the query
func (h *VideoHandler) SearchVideos(c *gin.Context) {
	query := c.Param("query")
	videos, err := h.videoRepo.Search(query)
	if err != nil {
		h.logger.WithError(err).Error("failed to search videos")
		ErrorResponse(c, http.StatusInternalServerError, "Failed to search videos")
		return
	}

	c.JSON(http.StatusOK, videos)
}

// seedVideos is the fixed sample dataset inserted by the seed endpoint
var seedVideos = []models.Video{
	{
		Title:        "Les Secrets de l'Afrique Ancienne",
		Description:  strPtr("Documentaire sur les civilisations africaines anciennes"),
		Channel:      "HistoireTV",
		ThumbnailURL: strPtr("https://example.com/thumb1.jpg"),
		VideoURL:     "https://example.com/video1.mp4",
		Duration:     intPtr(3600),
	},
	{
		Title:        "Concert Exclusif Burna Boy",
		Description:  strPtr("Concert live de Burna Boy à Lagos"),
		Channel:      "MaatMusic",
		ThumbnailURL: strPtr("https://example.com/thumb2.jpg"),
		VideoURL:     "https://example.com/video2.mp4",
		Duration:     intPtr(5400),
	},
	{
		Title:        "Cuisine Africaine Moderne",
		Description:  strPtr("Recettes traditionnelles revisitées"),
		Channel:      "MaatCuisine",
		ThumbnailURL: strPtr("https://example.com/thumb3.jpg"),
		VideoURL:     "https://example.com/video3.mp4",
		Duration:     intPtr(1800),
	},
}

// SeedVideos inserts the sample videos, skipping any whose title already exists
func (h *VideoHandler) SeedVideos(c *gin.Context) {
	for _, seed := range seedVideos {
		exists, err := h.videoRepo.ExistsByTitle(seed.Title)
		if err != nil {
			h.logger.WithError(err).Error("failed to check seed video")
			ErrorResponse(c, http.StatusInternalServerError, "Failed to seed videos")
			return
		}
		if exists {
			continue
		}

		video := seed
		if err := h.videoRepo.Create(&video); err != nil {
			h.logger.WithError(err).Error("failed to insert seed video")
			ErrorResponse(c, http.StatusInternalServerError, "Failed to seed videos")
			return
		}
	}

	c.JSON(http.StatusOK, gin.H{"message": "Sample videos added"})
}

func intPtr(n int) *int {
	return &n
}
