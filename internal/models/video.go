package models

import "time"

type Video struct {
	ID           int64     `json:"id" db:"id"`
	Title        string    `json:"title" db:"title"`
	Description  *string   `json:"description,omitempty" db:"description"`
	Channel      string    `json:"channel" db:"channel"`
	ThumbnailURL *string   `json:"thumbnail_url,omitempty" db:"thumbnail_url"`
	VideoURL     string    `json:"video_url" db:"video_url"`
	Duration     *int      `json:"duration,omitempty" db:"duration"`
	Views        int       `json:"views" db:"views"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
	UpdatedAt    time.Time `json:"updated_at" db:"updated_at"`
}

type CreateVideoRequest struct {
	Title        string  `json:"title" binding:"required"`
	Description  *string `json:"description,omitempty"`
	Channel      string  `json:"channel" binding:"required"`
	ThumbnailURL *string `json:"thumbnail_url,omitempty"`
	VideoURL     string  `json:"video_url" binding:"required"`
	Duration     *int    `json:"duration,omitempty" binding:"omitempty,gte=0"`
}

// ToVideo builds a Video from the request. Views always start at zero.
func (r *CreateVideoRequest) ToVideo() *Video {
	return &Video{
		Title:        r.Title,
		Description:  r.Description,
		Channel:      r.Channel,
		ThumbnailURL: r.ThumbnailURL,
		VideoURL:     r.VideoURL,
		Duration:     r.Duration,
	}
}
