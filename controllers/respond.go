package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/mohsinshafique7/clays-notes-backend/domain"
)

// respondError maps service failures onto HTTP statuses. Capacity and
// not-found outcomes are client-facing with their own messages; everything
// else is logged and answered with a generic body so storage internals
// never leak.
func respondError(c *gin.Context, logger *zap.SugaredLogger, err error) {
	var capacity *domain.CapacityExceededError
	switch {
	case errors.As(err, &capacity):
		c.JSON(http.StatusBadRequest, gin.H{"error": capacity.Error()})
	case errors.Is(err, domain.ErrRecordNotFound),
		errors.Is(err, domain.ErrAccountNotFound),
		errors.Is(err, domain.ErrNoteNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	default:
		logger.Errorw("request failed", "path", c.FullPath(), "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}

// idParam parses the :id path segment.
func idParam(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "id must be a positive integer"})
		return 0, false
	}
	return uint(id), true
}

type pageQuery struct {
	PerPage     int `form:"perPage" binding:"required"`
	CurrentPage int `form:"currentPage" binding:"required"`
}
