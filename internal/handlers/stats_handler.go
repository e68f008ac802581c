package handlers

import (
	"context"
	"net/http"

	"learning-service/internal/models"
	"learning-service/internal/service"

	"github.com/gin-gonic/gin"
)

type StatsHandler struct {
	Service *service.StatsService
}

func NewStatsHandler(s *service.StatsService) *StatsHandler {
	return &StatsHandler{Service: s}
}

func (h *StatsHandler) Overall(c *gin.Context) {
	stats, err := h.Service.ComputeOverall(context.Background(), userID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}

func (h *StatsHandler) Subcategory(c *gin.Context) {
	stats, err := h.Service.ComputeForSubcategory(context.Background(), userID(c), c.Param("subcategoryId"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}

// Records lists the raw ledger rows behind a subcategory's stats. The mode
// query parameter defaults to learn; an unknown mode is a validation failure.
func (h *StatsHandler) Records(c *gin.Context) {
	mode, err := models.ParseMode(c.DefaultQuery("mode", string(models.ModeLearn)))
	if err != nil {
		respondError(c, err)
		return
	}
	records, err := h.Service.ListProgress(context.Background(), userID(c), c.Param("subcategoryId"), mode)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"records": records})
}
