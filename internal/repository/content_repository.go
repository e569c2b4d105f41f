package repository

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/maatcore/backend/internal/database"
	"github.com/maatcore/backend/internal/models"
)

type ContentRepository struct {
	db *database.DB
}

func NewContentRepository(db *database.DB) *ContentRepository {
	return &ContentRepository{db: db}
}

const contentColumns = "id, imdb_id, title, year, type, image, crew, rating, description"

func (r *ContentRepository) Create(item *models.ContentItem) error {
	query := `
	INSERT INTO content_items (imdb_id, title, year, type, image, crew, rating, description)
        VALUES (?,?,?,?,?,?,?,?)
    `
	res, err := r.db.Exec(query,
		item.IMDBID,
		item.Title,
		item.Year,
		item.Type,
		item.Image,
		item.Crew,
		item.Rating,
		item.Description,
	)
	if err != nil {
		return fmt.Errorf("failed to create content item: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to read content item id: %w", err)
	}
	item.ID = id
	return nil
}

// CreateAll inserts every staged item in a single transaction. The import
// workflow stages its whole run and commits once at the end.
func (r *ContentRepository) CreateAll(items []models.ContentItem) error {
	if len(items) == 0 {
		return nil
	}

	tx, err := r.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin tx: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.Prepare(`
	INSERT INTO content_items (imdb_id, title, year, type, image, crew, rating, description)
        VALUES (?,?,?,?,?,?,?,?)
    `)
	if err != nil {
		return fmt.Errorf("failed to prepare insert: %w", err)
	}
	defer stmt.Close()

	for _, item := range items {
		if _, err := stmt.Exec(
			item.IMDBID,
			item.Title,
			item.Year,
			item.Type,
			item.Image,
			item.Crew,
			item.Rating,
			item.Description,
		); err != nil {
			return fmt.Errorf("failed to insert content item %s: %w", item.IMDBID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit: %w", err)
	}
	return nil
}

func (r *ContentRepository) List(skip, limit int) ([]models.ContentItem, error) {
	query := `SELECT ` + contentColumns + ` FROM content_items ORDER BY id LIMIT ? OFFSET ?`
	rows, err := r.db.Query(query, limit, skip)
	if err != nil {
		return nil, fmt.Errorf("failed to list content items: %w", err)
	}
	defer rows.Close()

	items := []models.ContentItem{}
	for rows.Next() {
		var item models.ContentItem
		if err := scanContentItem(rows.Scan, &item); err != nil {
			return nil, fmt.Errorf("failed to scan content item: %w", err)
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read content items: %w", err)
	}
	return items, nil
}

func (r *ContentRepository) GetByID(id int64) (*models.ContentItem, error) {
	query := `SELECT ` + contentColumns + ` FROM content_items WHERE id = ?`
	return r.getOne(query, id)
}

// GetByIMDBID looks an item up by its natural key
func (r *ContentRepository) GetByIMDBID(imdbID string) (*models.ContentItem, error) {
	query := `SELECT ` + contentColumns + ` FROM content_items WHERE imdb_id = ?`
	return r.getOne(query, imdbID)
}

// Update replaces every mutable field of the item
func (r *ContentRepository) Update(id int64, item *models.ContentItem) error {
	query := `
	UPDATE content_items
	SET imdb_id = ?, title = ?, year = ?, type = ?, image = ?, crew = ?, rating = ?, description = ?
	WHERE id = ?
    `
	res, err := r.db.Exec(query,
		item.IMDBID,
		item.Title,
		item.Year,
		item.Type,
		item.Image,
		item.Crew,
		item.Rating,
		item.Description,
		id,
	)
	if err != nil {
		return fmt.Errorf("failed to update content item: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to update content item: %w", err)
	}
	if affected == 0 {
		return ErrNotFound
	}
	item.ID = id
	return nil
}

func (r *ContentRepository) Delete(id int64) error {
	res, err := r.db.Exec(`DELETE FROM content_items WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete content item: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to delete content item: %w", err)
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *ContentRepository) getOne(query string, args ...interface{}) (*models.ContentItem, error) {
	item := &models.ContentItem{}
	err := scanContentItem(r.db.QueryRow(query, args...).Scan, item)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get content item: %w", err)
	}
	return item, nil
}

func scanContentItem(scan func(dest ...interface{}) error, item *models.ContentItem) error {
	return scan(
		&item.ID,
		&item.IMDBID,
		&item.Title,
		&item.Year,
		&item.Type,
		&item.Image,
		&item.Crew,
		&item.Rating,
		&item.Description,
	)
}
