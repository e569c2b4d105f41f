package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/maatcore/backend/internal/models"
	"github.com/maatcore/backend/internal/repository"
)

type MatchHandler struct {
	matchRepo *repository.MatchRepository
	logger    *logrus.Logger
}

func NewMatchHandler(matchRepo *repository.MatchRepository, logger *logrus.Logger) *MatchHandler {
	return &MatchHandler{matchRepo: matchRepo, logger: logger}
}

// GetMatches lists matches within a skip/limit window
func (h *MatchHandler) GetMatches(c *gin.Context) {
	var q models.ListQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	skip, limit := q.Window()
	matches, err := h.matchRepo.List(skip, limit)
	if err != nil {
		h.logger.WithError(err).Error("failed to list matches")
		ErrorResponse(c, http.StatusInternalServerError, "Failed to list matches")
		return
	}

	c.JSON(http.StatusOK, matches)
}

// GetMatch returns one match by id
func (h *MatchHandler) GetMatch(c *gin.Context) {
	id, ok := IDParam(c)
	if !ok {
		return
	}

	match, err := h.matchRepo.GetByID(id)
	if err != nil {
		RepoErrorResponse(c, err, "Match not found", "Failed to get match")
		return
	}

	c.JSON(http.StatusOK, match)
}

// GetLiveMatches returns matches flagged as live
func (h *MatchHandler) GetLiveMatches(c *gin.Context) {
	matches, err := h.matchRepo.GetLive()
	if err != nil {
		h.logger.WithError(err).Error("failed to list live matches")
		ErrorResponse(c, http.StatusInternalServerError, "Failed to list live matches")
		return
	}

	c.JSON(http.StatusOK, matches)
}

// GetMatchesByLeague returns matches whose league matches exactly
func (h *MatchHandler) GetMatchesByLeague(c *gin.Context) {
	league := c.Param("name")
	matches, err := h.matchRepo.GetByLeague(league)
	if err != nil {
		h.logger.WithError(err).Error("failed to list matches by league")
		ErrorResponse(c, http.StatusInternalServerError, "Failed to list matches by league")
		return
	}

	c.JSON(http.StatusOK, matches)
}

// CreateMatch creates a new match
func (h *MatchHandler) CreateMatch(c *gin.Context) {
	var req models.CreateMatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	match := req.ToMatch()
	if err := h.matchRepo.Create(match); err != nil {
		h.logger.WithError(err).Error("failed to create match")
		ErrorResponse(c, http.StatusInternalServerError, "Failed to create match")
		return
	}

	c.JSON(http.StatusCreated, match)
}

// UpdateMatch replaces every mutable field of a match
func (h *MatchHandler) UpdateMatch(c *gin.Context) {
	id, ok := IDParam(c)
	if !ok {
		return
	}

	var req models.CreateMatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	match := req.ToMatch()
	if err := h.matchRepo.Update(id, match); err != nil {
		RepoErrorResponse(c, err, "Match not found", "Failed to update match")
		return
	}

	updated, err := h.matchRepo.GetByID(id)
	if err != nil {
		RepoErrorResponse(c, err, "Match not found", "Failed to get match")
		return
	}

	c.JSON(http.StatusOK, updated)
}

// DeleteMatch removes a match
func (h *MatchHandler) DeleteMatch(c *gin.Context) {
	id, ok := IDParam(c)
	if !ok {
		return
	}

	if err := h.matchRepo.Delete(id); err != nil {
		RepoErrorResponse(c, err, "Match not found", "Failed to delete match")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Match deleted"})
}

// seedMatches is the fixed sample dataset inserted by the seed endpoint
var seedMatches = []models.Match{
	{
		HomeTeam:  "Sénégal",
		AwayTeam:  "Nigeria",
		HomeScore: 2,
		AwayScore: 1,
		MatchDate: time.Date(2024, 1, 15, 20, 0, 0, 0, time.UTC),
		Status:    models.MatchStatusFinished,
		League:    "CAN 2024",
		Stadium:   strPtr("Stade Abdoulaye Wade"),
		IsLive:    false,
	},
	{
		HomeTeam:  "Maroc",
		AwayTeam:  "Côte d'Ivoire",
		MatchDate: time.Date(2024, 1, 20, 18, 0, 0, 0, time.UTC),
		Status:    models.MatchStatusLive,
		League:    "CAN 2024",
		Stadium:   strPtr("Stade Olympique d'Ebimpé"),
		IsLive:    true,
	},
	{
		HomeTeam:  "Cameroun",
		AwayTeam:  "Ghana",
		MatchDate: time.Date(2024, 1, 25, 21, 0, 0, 0, time.UTC),
		Status:    models.MatchStatusScheduled,
		League:    "CAN 2024",
		Stadium:   strPtr("Stade de Yamoussoukro"),
		IsLive:    false,
	},
	{
		HomeTeam:  "Al Ahly",
		AwayTeam:  "Wydad Casablanca",
		HomeScore: 1,
		MatchDate: time.Date(2024, 1, 18, 19, 0, 0, 0, time.UTC),
		Status:    models.MatchStatusFinished,
		League:    "Ligue des Champions CAF",
		Stadium:   strPtr("Stade International du Caire"),
		IsLive:    false,
	},
}

// SeedMatches inserts the sample fixtures, skipping any that already exist
// with the same teams and kickoff time
func (h *MatchHandler) SeedMatches(c *gin.Context) {
	for _, seed := range seedMatches {
		exists, err := h.matchRepo.ExistsByFixture(seed.HomeTeam, seed.AwayTeam, seed.MatchDate)
		if err != nil {
			h.logger.WithError(err).Error("failed to check seed fixture")
			ErrorResponse(c, http.StatusInternalServerError, "Failed to seed matches")
			return
		}
		if exists {
			continue
		}

		match := seed
		if err := h.matchRepo.Create(&match); err != nil {
			h.logger.WithError(err).Error("failed to insert seed fixture")
			ErrorResponse(c, http.StatusInternalServerError, "Failed to seed matches")
			return
		}
	}

	c.JSON(http.StatusOK, gin.H{"message": "Sample matches added"})
}

func strPtr(s string) *string {
	return &s
}
