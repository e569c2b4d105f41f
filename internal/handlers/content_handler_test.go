package handlers

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/maatcore/backend/internal/database"
	"github.com/maatcore/backend/internal/imdb"
	"github.com/maatcore/backend/internal/models"
	"github.com/maatcore/backend/internal/repository"
)

func contentRouter(t *testing.T, providerURL, apiKey string) (*gin.Engine, *repository.ContentRepository) {
	t.Helper()

	repo := repository.NewContentRepository(newTestDB(t, database.ContentMigrations))
	client := imdb.NewClient(providerURL, apiKey, testLogger())
	importer := imdb.NewImporter(client, repo, testLogger())
	h := NewContentHandler(repo, importer, apiKey, testLogger())

	router := gin.New()
	tv := router.Group("/tv")
	{
		tv.GET("/vod/list", h.ListContent)
		tv.GET("/vod/item/:id", h.GetContent)
		tv.POST("/vod", h.CreateContent)
		tv.PUT("/vod/item/:id", h.UpdateContent)
		tv.DELETE("/vod/item/:id", h.DeleteContent)
		tv.POST("/vod/import", h.ImportContent)
		tv.GET("/api-key/imdb", h.GetAPIKey)
	}
	return router, repo
}

func contentBody() map[string]interface{} {
	return map[string]interface{}{
		"imdb_id":     "tt0468569",
		"title":       "The Dark Knight",
		"year":        "2008",
		"type":        "movie",
		"image":       "https://example.com/poster.jpg",
		"crew":        "Christopher Nolan",
		"rating":      "9.0",
		"description": "Batman faces the Joker.",
	}
}

func TestCreateContentAndGet(t *testing.T) {
	router, _ := contentRouter(t, "http://localhost:1", "test-key")

	w := perform(t, router, http.MethodPost, "/tv/vod", contentBody())
	if w.Code != http.StatusCreated {
		t.Fatalf("create status = %d, body %s", w.Code, w.Body.String())
	}

	var created models.ContentItemResponse
	decode(t, w, &created)
	if created.ID == 0 {
		t.Fatal("expected generated id")
	}

	w = perform(t, router, http.MethodGet, fmt.Sprintf("/tv/vod/item/%d", created.ID), nil)
	if w.Code != http.StatusOK {
		t.Fatalf("get status = %d", w.Code)
	}

	var got models.ContentItemResponse
	decode(t, w, &got)
	if got.Title != "The Dark Knight" || got.Crew != "Christopher Nolan" || got.Rating != "9.0" {
		t.Errorf("got %+v", got)
	}
	if got.ImageURL != "https://example.com/poster.jpg" {
		t.Errorf("imageUrl = %q", got.ImageURL)
	}
}

func TestListContentRenamesImageField(t *testing.T) {
	router, repo := contentRouter(t, "http://localhost:1", "test-key")

	item := &models.ContentItem{
		IMDBID: "tt8111088",
		Title:  "The Mandalorian",
		Year:   "2019–",
		Type:   "series",
		Image:  "https://example.com/mando.jpg",
		Rating: "N/A",
	}
	if err := repo.Create(item); err != nil {
		t.Fatalf("create: %v", err)
	}

	w := perform(t, router, http.MethodGet, "/tv/vod/list", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("list status = %d", w.Code)
	}

	body := w.Body.String()
	if !strings.Contains(body, `"imageUrl"`) {
		t.Fatalf("payload should expose imageUrl, got %s", body)
	}
	if strings.Contains(body, `"image"`) {
		t.Fatalf("internal image field leaked: %s", body)
	}

	var items []models.ContentItemResponse
	decode(t, w, &items)
	if len(items) != 1 {
		t.Fatalf("got %d items", len(items))
	}
	if items[0].Year != "2019–" || items[0].Rating != "N/A" {
		t.Errorf("year = %q, rating = %q; strings must pass through untouched", items[0].Year, items[0].Rating)
	}
}

func TestGetContentNotFound(t *testing.T) {
	router, _ := contentRouter(t, "http://localhost:1", "test-key")

	w := perform(t, router, http.MethodGet, "/tv/vod/item/42", nil)
	if w.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", w.Code)
	}
}

func TestCreateContentValidation(t *testing.T) {
	router, _ := contentRouter(t, "http://localhost:1", "test-key")

	body := contentBody()
	delete(body, "imdb_id")
	w := perform(t, router, http.MethodPost, "/tv/vod", body)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}

	body = contentBody()
	body["type"] = "documentary"
	w = perform(t, router, http.MethodPost, "/tv/vod", body)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("unknown type: status = %d, want 400", w.Code)
	}
}

func TestUpdateAndDeleteContent(t *testing.T) {
	router, _ := contentRouter(t, "http://localhost:1", "test-key")

	w := perform(t, router, http.MethodPost, "/tv/vod", contentBody())
	var created models.ContentItemResponse
	decode(t, w, &created)

	update := contentBody()
	update["title"] = "The Dark Knight Rises"
	update["imdb_id"] = "tt1345836"
	w = perform(t, router, http.MethodPut, fmt.Sprintf("/tv/vod/item/%d", created.ID), update)
	if w.Code != http.StatusOK {
		t.Fatalf("update status = %d, body %s", w.Code, w.Body.String())
	}

	var updated models.ContentItemResponse
	decode(t, w, &updated)
	if updated.Title != "The Dark Knight Rises" {
		t.Errorf("title = %q", updated.Title)
	}

	w = perform(t, router, http.MethodDelete, fmt.Sprintf("/tv/vod/item/%d", created.ID), nil)
	if w.Code != http.StatusOK {
		t.Fatalf("delete status = %d", w.Code)
	}
	w = perform(t, router, http.MethodGet, fmt.Sprintf("/tv/vod/item/%d", created.ID), nil)
	if w.Code != http.StatusNotFound {
		t.Fatalf("get after delete = %d, want 404", w.Code)
	}
}

func TestImportAllPagesFail(t *testing.T) {
	provider := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"Response":"False","Error":"Request limit reached!"}`)
	}))
	defer provider.Close()

	router, repo := contentRouter(t, provider.URL, "test-key")

	w := perform(t, router, http.MethodPost, "/tv/vod/import", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("import status = %d, body %s", w.Code, w.Body.String())
	}

	var resp map[string]string
	decode(t, w, &resp)
	if resp["status"] != "imported" {
		t.Fatalf("status field = %q, want imported", resp["status"])
	}

	items, err := repo.List(0, 10)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(items) != 0 {
		t.Fatalf("got %d rows, want none", len(items))
	}
}

func TestImportMissingAPIKey(t *testing.T) {
	router, _ := contentRouter(t, "http://localhost:1", "")

	w := perform(t, router, http.MethodPost, "/tv/vod/import", nil)
	if w.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", w.Code)
	}
}

func TestGetAPIKey(t *testing.T) {
	router, _ := contentRouter(t, "http://localhost:1", "test-key")

	w := perform(t, router, http.MethodGet, "/tv/api-key/imdb", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	var resp map[string]string
	decode(t, w, &resp)
	if resp["api_key"] != "test-key" {
		t.Fatalf("api_key = %q", resp["api_key"])
	}
}

func TestGetAPIKeyMissing(t *testing.T) {
	router, _ := contentRouter(t, "http://localhost:1", "")

	w := perform(t, router, http.MethodGet, "/tv/api-key/imdb", nil)
	if w.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", w.Code)
	}
}
