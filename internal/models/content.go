package models

// ContentItem is a VOD catalog entry. The imdb_id is the natural key: imports
// are idempotent with respect to it. Year and rating stay raw strings so
// provider formats like "2020–" or "N/A" survive round trips untouched.
type ContentItem struct {
	ID          int64  `json:"id" db:"id"`
	IMDBID      string `json:"imdb_id" db:"imdb_id"`
	Title       string `json:"title" db:"title"`
	Year        string `json:"year" db:"year"`
	Type        string `json:"type" db:"type"`
	Image       string `json:"image" db:"image"`
	Crew        string `json:"crew" db:"crew"`
	Rating      string `json:"rating" db:"rating"`
	Description string `json:"description" db:"description"`
}

// ContentItemResponse is the API shape for content items; the stored image
// column is exposed as imageUrl.
type ContentItemResponse struct {
	ID          int64  `json:"id"`
	Title       string `json:"title"`
	ImageURL    string `json:"imageUrl"`
	Year        string `json:"year"`
	Type        string `json:"type"`
	Crew        string `json:"crew"`
	Rating      string `json:"rating"`
	Description string `json:"description"`
}

// ToResponse maps a stored item to its API shape
func (i *ContentItem) ToResponse() ContentItemResponse {
	return ContentItemResponse{
		ID:          i.ID,
		Title:       i.Title,
		ImageURL:    i.Image,
		Year:        i.Year,
		Type:        i.Type,
		Crew:        i.Crew,
		Rating:      i.Rating,
		Description: i.Description,
	}
}

type CreateContentItemRequest struct {
	IMDBID      string `json:"imdb_id" binding:"required"`
	Title       string `json:"title" binding:"required"`
	Year        string `json:"year"`
	Type        string `json:"type" binding:"omitempty,oneof=movie series"`
	Image       string `json:"image"`
	Crew        string `json:"crew"`
	Rating      string `json:"rating"`
	Description string `json:"description"`
}

// ToContentItem builds a ContentItem from the request, defaulting type to movie
func (r *CreateContentItemRequest) ToContentItem() *ContentItem {
	item := &ContentItem{
		IMDBID:      r.IMDBID,
		Title:       r.Title,
		Year:        r.Year,
		Type:        r.Type,
		Image:       r.Image,
		Crew:        r.Crew,
		Rating:      r.Rating,
		Description: r.Description,
	}
	if item.Type == "" {
		item.Type = "movie"
	}
	return item
}
