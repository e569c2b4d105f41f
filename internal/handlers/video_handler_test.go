package handlers

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/maatcore/backend/internal/database"
	"github.com/maatcore/backend/internal/models"
	"github.com/maatcore/backend/internal/repository"
)

func videoRouter(t *testing.T) (*gin.Engine, *repository.VideoRepository) {
	t.Helper()

	repo := repository.NewVideoRepository(newTestDB(t, database.VideoMigrations))
	h := NewVideoHandler(repo, testLogger())

	router := gin.New()
	router.GET("/videos", h.GetVideos)
	router.GET("/videos/search/:query", h.SearchVideos)
	router.GET("/videos/:id", h.GetVideo)
	router.POST("/videos", h.CreateVideo)
	router.DELETE("/videos/:id", h.DeleteVideo)
	router.POST("/videos/seed", h.SeedVideos)
	return router, repo
}

func videoBody() map[string]interface{} {
	return map[string]interface{}{
		"title":         "Les Secrets de l'Afrique Ancienne",
		"description":   "Documentaire sur les civilisations africaines anciennes",
		"channel":       "HistoireTV",
		"thumbnail_url": "https://example.com/thumb1.jpg",
		"video_url":     "https://example.com/video1.mp4",
		"duration":      3600,
	}
}

func TestCreateVideoAndGet(t *testing.T) {
	router, _ := videoRouter(t)

	w := perform(t, router, http.MethodPost, "/videos", videoBody())
	if w.Code != http.StatusCreated {
		t.Fatalf("create status = %d, body %s", w.Code, w.Body.String())
	}

	var created models.Video
	decode(t, w, &created)
	if created.ID == 0 {
		t.Fatal("expected generated id")
	}
	if created.Views != 0 {
		t.Fatalf("views = %d, want 0", created.Views)
	}

	w = perform(t, router, http.MethodGet, fmt.Sprintf("/videos/%d", created.ID), nil)
	if w.Code != http.StatusOK {
		t.Fatalf("get status = %d", w.Code)
	}

	var got models.Video
	decode(t, w, &got)
	if got.Title != created.Title || got.Channel != "HistoireTV" || got.VideoURL != "https://example.com/video1.mp4" {
		t.Errorf("got %+v", got)
	}
}

func TestGetVideoIncrementsViews(t *testing.T) {
	router, _ := videoRouter(t)

	w := perform(t, router, http.MethodPost, "/videos", videoBody())
	var created models.Video
	decode(t, w, &created)

	path := fmt.Sprintf("/videos/%d", created.ID)

	w = perform(t, router, http.MethodGet, path, nil)
	var first models.Video
	decode(t, w, &first)
	if first.Views != 1 {
		t.Fatalf("views after first get = %d, want 1", first.Views)
	}

	w = perform(t, router, http.MethodGet, path, nil)
	var second models.Video
	decode(t, w, &second)
	if second.Views != 2 {
		t.Fatalf("views after second get = %d, want 2", second.Views)
	}
}

func TestListVideosDoesNotIncrement(t *testing.T) {
	router, repo := videoRouter(t)

	w := perform(t, router, http.MethodPost, "/videos", videoBody())
	var created models.Video
	decode(t, w, &created)

	w = perform(t, router, http.MethodGet, "/videos", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("list status = %d", w.Code)
	}
	w = perform(t, router, http.MethodGet, "/videos/search/Afrique", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("search status = %d", w.Code)
	}

	got, err := repo.GetByID(created.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Views != 0 {
		t.Fatalf("views = %d after list and search, want 0", got.Views)
	}
}

func TestCreateVideoValidation(t *testing.T) {
	router, _ := videoRouter(t)

	body := videoBody()
	delete(body, "video_url")
	w := perform(t, router, http.MethodPost, "/videos", body)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}

	body = videoBody()
	delete(body, "description")
	delete(body, "thumbnail_url")
	delete(body, "duration")
	w = perform(t, router, http.MethodPost, "/videos", body)
	if w.Code != http.StatusCreated {
		t.Fatalf("optional fields missing: status = %d, body %s", w.Code, w.Body.String())
	}
}

func TestGetVideoNotFound(t *testing.T) {
	router, _ := videoRouter(t)

	w := perform(t, router, http.MethodGet, "/videos/42", nil)
	if w.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", w.Code)
	}
}

func TestDeleteVideoThenGet(t *testing.T) {
	router, _ := videoRouter(t)

	w := perform(t, router, http.MethodPost, "/videos", videoBody())
	var created models.Video
	decode(t, w, &created)

	w = perform(t, router, http.MethodDelete, fmt.Sprintf("/videos/%d", created.ID), nil)
	if w.Code != http.StatusOK {
		t.Fatalf("delete status = %d", w.Code)
	}

	w = perform(t, router, http.MethodGet, fmt.Sprintf("/videos/%d", created.ID), nil)
	if w.Code != http.StatusNotFound {
		t.Fatalf("get after delete = %d, want 404", w.Code)
	}
}

func TestSearchVideosRoute(t *testing.T) {
	router, _ := videoRouter(t)

	w := perform(t, router, http.MethodPost, "/videos", videoBody())
	if w.Code != http.StatusCreated {
		t.Fatalf("create status = %d", w.Code)
	}

	w = perform(t, router, http.MethodGet, "/videos/search/Afrique", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("search status = %d", w.Code)
	}
	var matches []models.Video
	decode(t, w, &matches)
	if len(matches) != 1 {
		t.Fatalf("got %d results, want 1", len(matches))
	}

	// Substring match is case-sensitive
	w = perform(t, router, http.MethodGet, "/videos/search/afrique", nil)
	var none []models.Video
	decode(t, w, &none)
	if len(none) != 0 {
		t.Fatalf("lower-case query matched %d results, want 0", len(none))
	}
}

func TestSeedVideosTwice(t *testing.T) {
	router, repo := videoRouter(t)

	for i := 0; i < 2; i++ {
		w := perform(t, router, http.MethodPost, "/videos/seed", nil)
		if w.Code != http.StatusOK {
			t.Fatalf("seed %d status = %d", i, w.Code)
		}
	}

	videos, err := repo.List(0, 100)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(videos) != len(seedVideos) {
		t.Fatalf("got %d rows after double seed, want %d", len(videos), len(seedVideos))
	}
}
