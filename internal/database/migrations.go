package database

import (
	"database/sql"
	"fmt"
	"sort"
)

// Migration represents a database migration
type Migration struct {
	Version int
	Up      string
	Down    string
}

// MatchMigrations contains the maatfoot service schema
var MatchMigrations = []Migration{
	{
		Version: 1,
		Up: `
			CREATE TABLE IF NOT EXISTS matches (
				id INTEGER PRIMARY KEY AUTOINCREMENT,
				home_team TEXT NOT NULL,
				away_team TEXT NOT NULL,
				home_score INTEGER NOT NULL DEFAULT 0,
				away_score INTEGER NOT NULL DEFAULT 0,
				match_date TIMESTAMP NOT NULL,
				status TEXT NOT NULL DEFAULT 'scheduled',
				league TEXT NOT NULL,
				stadium TEXT,
				is_live BOOLEAN NOT NULL DEFAULT 0,
				created_at TIMESTAMP NOT NULL,
				updated_at TIMESTAMP NOT NULL
			);

			CREATE INDEX IF NOT EXISTS idx_matches_home_team ON matches(home_team);
			CREATE INDEX IF NOT EXISTS idx_matches_away_team ON matches(away_team);
			CREATE INDEX IF NOT EXISTS idx_matches_league ON matches(league);
		`,
		Down: `
			DROP TABLE IF EXISTS matches;
		`,
	},
}

// VideoMigrations contains the maattube service schema
var VideoMigrations = []Migration{
	{
		Version: 1,
		Up: `
			CREATE TABLE IF NOT EXISTS videos (
				id INTEGER PRIMARY KEY AUTOINCREMENT,
				title TEXT NOT NULL,
				description TEXT,
				channel TEXT NOT NULL,
				thumbnail_url TEXT,
				video_url TEXT NOT NULL,
				duration INTEGER,
				views INTEGER NOT NULL DEFAULT 0,
				created_at TIMESTAMP NOT NULL,
				updated_at TIMESTAMP NOT NULL
			);

			CREATE INDEX IF NOT EXISTS idx_videos_title ON videos(title);
		`,
		Down: `
			DROP TABLE IF EXISTS videos;
		`,
	},
}

// ContentMigrations contains the maattv service schema
var ContentMigrations = []Migration{
	{
		Version: 1,
		Up: `
			CREATE TABLE IF NOT EXISTS content_items (
				id INTEGER PRIMARY KEY AUTOINCREMENT,
				imdb_id TEXT UNIQUE NOT NULL,
				title TEXT NOT NULL,
				year TEXT NOT NULL DEFAULT '',
				type TEXT NOT NULL DEFAULT 'movie',
				image TEXT NOT NULL DEFAULT '',
				crew TEXT NOT NULL DEFAULT '',
				rating TEXT NOT NULL DEFAULT '',
				description TEXT NOT NULL DEFAULT ''
			);

			CREATE INDEX IF NOT EXISTS idx_content_items_title ON content_items(title);
		`,
		Down: `
			DROP TABLE IF EXISTS content_items;
		`,
	},
}

// RunMigrations applies all pending migrations from the given set in version order
func RunMigrations(db *sql.DB, migrations []Migration) error {
	if err := ensureMigrationsTable(db); err != nil {
		return fmt.Errorf("failed to create migrations table: %w", err)
	}

	current, err := getCurrentVersion(db)
	if err != nil {
		return fmt.Errorf("failed to get current version: %w", err)
	}

	sorted := make([]Migration, len(migrations))
	copy(sorted, migrations)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].Version < sorted[j].Version
	})

	for _, migration := range sorted {
		if migration.Version <= current {
			continue
		}

		tx, err := db.Begin()
		if err != nil {
			return fmt.Errorf("failed to begin migration %d: %w", migration.Version, err)
		}

		if _, err := tx.Exec(migration.Up); err != nil {
			tx.Rollback()
			return fmt.Errorf("failed to run migration %d: %w", migration.Version, err)
		}

		if _, err := tx.Exec("INSERT INTO schema_migrations (version) VALUES (?)", migration.Version); err != nil {
			tx.Rollback()
			return fmt.Errorf("failed to record migration %d: %w", migration.Version, err)
		}

		if err := tx.Commit(); err != nil {
			return fmt.Errorf("failed to commit migration %d: %w", migration.Version, err)
		}
	}

	return nil
}

func ensureMigrationsTable(db *sql.DB) error {
	_, err := db.Exec(`
		CREATE TABLE IF NOT EXISTS schema_migrations (
			version INTEGER PRIMARY KEY,
			applied_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
		)
	`)
	return err
}

func getCurrentVersion(db *sql.DB) (int, error) {
	var version int
	err := db.QueryRow("SELECT COALESCE(MAX(version), 0) FROM schema_migrations").Scan(&version)
	if err != nil {
		return 0, err
	}
	return version, nil
}
