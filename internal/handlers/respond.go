package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/maatcore/backend/internal/repository"
)

// ErrorResponse sends a standardized error response and logs at caller if needed
func ErrorResponse(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{"error": message})
}

// RepoErrorResponse maps a repository error to 404 for missing records and
// 500 for everything else
func RepoErrorResponse(c *gin.Context, err error, notFoundMessage, failureMessage string) {
	if errors.Is(err, repository.ErrNotFound) {
		ErrorResponse(c, http.StatusNotFound, notFoundMessage)
		return
	}
	ErrorResponse(c, http.StatusInternalServerError, failureMessage)
}

// IDParam parses the :id path parameter
func IDParam(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		ErrorResponse(c, http.StatusBadRequest, "Invalid id")
		return 0, false
	}
	return id, true
}
