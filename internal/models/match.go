package models

import "time"

// Match statuses. The status field and the is_live flag are independently
// settable: callers own their consistency and the service never derives one
// from the other.
const (
	MatchStatusScheduled = "scheduled"
	MatchStatusLive      = "live"
	MatchStatusFinished  = "finished"
)

type Match struct {
	ID        int64     `json:"id" db:"id"`
	HomeTeam  string    `json:"home_team" db:"home_team"`
	AwayTeam  string    `json:"away_team" db:"away_team"`
	HomeScore int       `json:"home_score" db:"home_score"`
	AwayScore int       `json:"away_score" db:"away_score"`
	MatchDate time.Time `json:"match_date" db:"match_date"`
	Status    string    `json:"status" db:"status"`
	League    string    `json:"league" db:"league"`
	Stadium   *string   `json:"stadium,omitempty" db:"stadium"`
	IsLive    bool      `json:"is_live" db:"is_live"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}

// CreateMatchRequest is the payload for both create and full update.
// Optional fields fall back to the entity defaults when omitted.
type CreateMatchRequest struct {
	HomeTeam  string    `json:"home_team" binding:"required"`
	AwayTeam  string    `json:"away_team" binding:"required"`
	HomeScore *int      `json:"home_score" binding:"omitempty,gte=0"`
	AwayScore *int      `json:"away_score" binding:"omitempty,gte=0"`
	MatchDate time.Time `json:"match_date" binding:"required"`
	Status    *string   `json:"status"`
	League    string    `json:"league" binding:"required"`
	Stadium   *string   `json:"stadium,omitempty"`
	IsLive    *bool     `json:"is_live"`
}

// ToMatch builds a Match from the request, applying defaults for omitted fields
func (r *CreateMatchRequest) ToMatch() *Match {
	m := &Match{
		HomeTeam:  r.HomeTeam,
		AwayTeam:  r.AwayTeam,
		MatchDate: r.MatchDate,
		Status:    MatchStatusScheduled,
		League:    r.League,
		Stadium:   r.Stadium,
	}
	if r.HomeScore != nil {
		m.HomeScore = *r.HomeScore
	}
	if r.AwayScore != nil {
		m.AwayScore = *r.AwayScore
	}
	if r.Status != nil {
		m.Status = *r.Status
	}
	if r.IsLive != nil {
		m.IsLive = *r.IsLive
	}
	return m
}
