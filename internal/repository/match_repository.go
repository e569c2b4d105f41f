package repository

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/maatcore/backend/internal/database"
	"github.com/maatcore/backend/internal/models"
)

type MatchRepository struct {
	db *database.DB
}

func NewMatchRepository(db *database.DB) *MatchRepository {
	return &MatchRepository{db: db}
}

const matchColumns = "id, home_team, away_team, home_score, away_score, match_date, status, league, stadium, is_live, created_at, updated_at"

func (r *MatchRepository) Create(match *models.Match) error {
	now := time.Now().UTC()
	match.CreatedAt = now
	match.UpdatedAt = now

	query := `
	INSERT INTO matches (home_team, away_team, home_score, away_score, match_date, status, league, stadium, is_live, created_at, updated_at)
        VALUES (?,?,?,?,?,?,?,?,?,?,?)
    `
	res, err := r.db.Exec(query,
		match.HomeTeam,
		match.AwayTeam,
		match.HomeScore,
		match.AwayScore,
		match.MatchDate,
		match.Status,
		match.League,
		match.Stadium,
		match.IsLive,
		match.CreatedAt,
		match.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create match: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to read match id: %w", err)
	}
	match.ID = id
	return nil
}

func (r *MatchRepository) List(skip, limit int) ([]models.Match, error) {
	query := `SELECT ` + matchColumns + ` FROM matches ORDER BY id LIMIT ? OFFSET ?`
	rows, err := r.db.Query(query, limit, skip)
	if err != nil {
		return nil, fmt.Errorf("failed to list matches: %w", err)
	}
	defer rows.Close()
	return scanMatches(rows)
}

func (r *MatchRepository) GetByID(id int64) (*models.Match, error) {
	query := `SELECT ` + matchColumns + ` FROM matches WHERE id = ?`
	m := &models.Match{}
	err := r.db.QueryRow(query, id).Scan(
		&m.ID,
		&m.HomeTeam,
		&m.AwayTeam,
		&m.HomeScore,
		&m.AwayScore,
		&m.MatchDate,
		&m.Status,
		&m.League,
		&m.Stadium,
		&m.IsLive,
		&m.CreatedAt,
		&m.UpdatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get match: %w", err)
	}
	return m, nil
}

// GetLive returns matches whose is_live flag is set. The flag is not derived
// from status, so a finished match flagged live still shows up here.
func (r *MatchRepository) GetLive() ([]models.Match, error) {
	query := `SELECT ` + matchColumns + ` FROM matches WHERE is_live = 1 ORDER BY id`
	rows, err := r.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to list live matches: %w", err)
	}
	defer rows.Close()
	return scanMatches(rows)
}

func (r *MatchRepository) GetByLeague(league string) ([]models.Match, error) {
	query := `SELECT ` + matchColumns + ` FROM matches WHERE league = ? ORDER BY id`
	rows, err := r.db.Query(query, league)
	if err != nil {
		return nil, fmt.Errorf("failed to list matches by league: %w", err)
	}
	defer rows.Close()
	return scanMatches(rows)
}

// Update replaces every mutable field of the match and refreshes updated_at
func (r *MatchRepository) Update(id int64, match *models.Match) error {
	match.UpdatedAt = time.Now().UTC()

	query := `
	UPDATE matches
	SET home_team = ?, away_team = ?, home_score = ?, away_score = ?, match_date = ?,
	    status = ?, league = ?, stadium = ?, is_live = ?, updated_at = ?
	WHERE id = ?
    `
	res, err := r.db.Exec(query,
		match.HomeTeam,
		match.AwayTeam,
		match.HomeScore,
		match.AwayScore,
		match.MatchDate,
		match.Status,
		match.League,
		match.Stadium,
		match.IsLive,
		match.UpdatedAt,
		id,
	)
	if err != nil {
		return fmt.Errorf("failed to update match: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to update match: %w", err)
	}
	if affected == 0 {
		return ErrNotFound
	}
	match.ID = id
	return nil
}

func (r *MatchRepository) Delete(id int64) error {
	res, err := r.db.Exec(`DELETE FROM matches WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete match: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to delete match: %w", err)
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

// ExistsByFixture reports whether a match with the same teams and kickoff
// already exists. The seed workflow uses this as its duplicate check.
func (r *MatchRepository) ExistsByFixture(homeTeam, awayTeam string, matchDate time.Time) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM matches WHERE home_team = ? AND away_team = ? AND match_date = ?)`
	var exists bool
	err := r.db.QueryRow(query, homeTeam, awayTeam, matchDate).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check fixture: %w", err)
	}
	return exists, nil
}

func scanMatches(rows *sql.Rows) ([]models.Match, error) {
	matches := []models.Match{}
	for rows.Next() {
		var m models.Match
		if err := rows.Scan(
			&m.ID,
			&m.HomeTeam,
			&m.AwayTeam,
			&m.HomeScore,
			&m.AwayScore,
			&m.MatchDate,
			&m.Status,
			&m.League,
			&m.Stadium,
			&m.IsLive,
			&m.CreatedAt,
			&m.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan match: %w", err)
		}
		matches = append(matches, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read matches: %w", err)
	}
	return matches, nil
}
