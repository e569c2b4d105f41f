package imdb

import (
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/maatcore/backend/internal/models"
	"github.com/maatcore/backend/internal/repository"
)

const (
	importPages = 3
	importQuery = "action"
	importType  = "movie"
)

// Importer pulls a fixed number of search pages from the provider and stores
// the records that are not already in the catalog. Provider failures drop the
// affected page or record and never abort the run.
type Importer struct {
	client *Client
	repo   *repository.ContentRepository
	logger *logrus.Logger
}

func NewImporter(client *Client, repo *repository.ContentRepository, logger *logrus.Logger) *Importer {
	return &Importer{
		client: client,
		repo:   repo,
		logger: logger,
	}
}

// Run executes one full import. It fails only on a missing credential or on a
// storage error; everything staged during the run is committed in a single
// transaction at the end.
func (i *Importer) Run() error {
	if !i.client.HasAPIKey() {
		return fmt.Errorf("IMDB_API_KEY is not set")
	}

	var results []SearchResult
	for page := 1; page <= importPages; page++ {
		pageResults, err := i.client.Search(importQuery, importType, page)
		if err != nil {
			i.logger.WithError(err).WithField("page", page).Warn("search page failed, skipping")
			continue
		}
		i.logger.WithFields(logrus.Fields{"page": page, "count": len(pageResults)}).Info("search page fetched")
		results = append(results, pageResults...)
	}

	if len(results) == 0 {
		i.logger.Info("no records returned by provider")
		return nil
	}

	staged := []models.ContentItem{}
	seen := make(map[string]bool)
	for _, result := range results {
		if result.IMDBID == "" {
			i.logger.Warn("record without imdb id, skipping")
			continue
		}
		// Pages can repeat records; a duplicate inside one batch would
		// trip the UNIQUE constraint and roll back the whole commit.
		if seen[result.IMDBID] {
			continue
		}
		seen[result.IMDBID] = true

		if _, err := i.repo.GetByIMDBID(result.IMDBID); err == nil {
			i.logger.WithField("imdb_id", result.IMDBID).Info("already imported, skipping")
			continue
		} else if !errors.Is(err, repository.ErrNotFound) {
			return fmt.Errorf("failed to check existing record: %w", err)
		}

		detail, err := i.client.GetByID(result.IMDBID)
		if err != nil {
			i.logger.WithError(err).WithField("imdb_id", result.IMDBID).Warn("detail lookup failed, skipping")
			continue
		}

		staged = append(staged, models.ContentItem{
			IMDBID:      detail.IMDBID,
			Title:       detail.Title,
			Year:        detail.Year,
			Type:        importType,
			Image:       detail.Poster,
			Crew:        detail.Director,
			Rating:      detail.IMDBRating,
			Description: detail.Plot,
		})
	}

	if len(staged) == 0 {
		i.logger.Info("nothing new to import")
		return nil
	}

	if err := i.repo.CreateAll(staged); err != nil {
		return fmt.Errorf("failed to store imported records: %w", err)
	}
	i.logger.WithField("count", len(staged)).Info("import committed")
	return nil
}
