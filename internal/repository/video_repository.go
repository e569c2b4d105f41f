package repository

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/maatcore/backend/internal/database"
	"github.com/maatcore/backend/internal/models"
)

type VideoRepository struct {
	db *database.DB
}

func NewVideoRepository(db *database.DB) *VideoRepository {
	return &VideoRepository{db: db}
}

const videoColumns = "id, title, description, channel, thumbnail_url, video_url, duration, views, created_at, updated_at"

func (r *VideoRepository) Create(video *models.Video) error {
	now := time.Now().UTC()
	video.CreatedAt = now
	video.UpdatedAt = now

	query := `
	INSERT INTO videos (title, description, channel, thumbnail_url, video_url, duration, views, created_at, updated_at)
        VALUES (?,?,?,?,?,?,?,?,?)
    `
	res, err := r.db.Exec(query,
		video.Title,
		video.Description,
		video.Channel,
		video.ThumbnailURL,
		video.VideoURL,
		video.Duration,
		video.Views,
		video.CreatedAt,
		video.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create video: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to read video id: %w", err)
	}
	video.ID = id
	return nil
}

func (r *VideoRepository) List(skip, limit int) ([]models.Video, error) {
	query := `SELECT ` + videoColumns + ` FROM videos ORDER BY id LIMIT ? OFFSET ?`
	rows, err := r.db.Query(query, limit, skip)
	if err != nil {
		return nil, fmt.Errorf("failed to list videos: %w", err)
	}
	defer rows.Close()
	return scanVideos(rows)
}

// GetByID is a pure read; it does not touch the view counter.
func (r *VideoRepository) GetByID(id int64) (*models.Video, error) {
	query := `SELECT ` + videoColumns + ` FROM videos WHERE id = ?`
	return r.getOne(query, id)
}

// View records one view and returns the video with the fresh counter. The
// increment is a single UPDATE statement, so concurrent views of the same
// video never lose counts.
func (r *VideoRepository) View(id int64) (*models.Video, error) {
	res, err := r.db.Exec(`UPDATE videos SET views = views + 1 WHERE id = ?`, id)
	if err != nil {
		return nil, fmt.Errorf("failed to count view: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("failed to count view: %w", err)
	}
	if affected == 0 {
		return nil, ErrNotFound
	}
	return r.GetByID(id)
}

func (r *VideoRepository) Delete(id int64) error {
	res, err := r.db.Exec(`DELETE FROM videos WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete video: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to delete video: %w", err)
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

// Search matches the query as a case-sensitive substring of the title or the
// description. instr() keeps the comparison case-sensitive; LIKE would fold
// ASCII case in SQLite.
func (r *VideoRepository) Search(query string) ([]models.Video, error) {
	stmt := `
	SELECT ` + videoColumns + ` FROM videos
	WHERE instr(title, ?) > 0 OR instr(coalesce(description, ''), ?) > 0
	ORDER BY id
    `
	rows, err := r.db.Query(stmt, query, query)
	if err != nil {
		return nil, fmt.Errorf("failed to search videos: %w", err)
	}
	defer rows.Close()
	return scanVideos(rows)
}

// ExistsByTitle reports whether a video with the given title already exists.
// The seed workflow uses this as its duplicate check.
func (r *VideoRepository) ExistsByTitle(title string) (bool, error) {
	var exists bool
	err := r.db.QueryRow(`SELECT EXISTS(SELECT 1 FROM videos WHERE title = ?)`, title).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check title: %w", err)
	}
	return exists, nil
}

func (r *VideoRepository) getOne(query string, args ...interface{}) (*models.Video, error) {
	v := &models.Video{}
	err := r.db.QueryRow(query, args...).Scan(
		&v.ID,
		&v.Title,
		&v.Description,
		&v.Channel,
		&v.ThumbnailURL,
		&v.VideoURL,
		&v.Duration,
		&v.Views,
		&v.CreatedAt,
		&v.UpdatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get video: %w", err)
	}
	return v, nil
}

func scanVideos(rows *sql.Rows) ([]models.Video, error) {
	videos := []models.Video{}
	for rows.Next() {
		var v models.Video
		if err := rows.Scan(
			&v.ID,
			&v.Title,
			&v.Description,
			&v.Channel,
			&v.ThumbnailURL,
			&v.VideoURL,
			&v.Duration,
			&v.Views,
			&v.CreatedAt,
			&v.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan video: %w", err)
		}
		videos = append(videos, v)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read videos: %w", err)
	}
	return videos, nil
}
