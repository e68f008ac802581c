package handlers

import (
	"context"
	"net/http"

	"learning-service/internal/models"
	"learning-service/internal/service"

	"github.com/gin-gonic/gin"
)

type CatalogHandler struct {
	Service *service.CatalogService
}

func NewCatalogHandler(s *service.CatalogService) *CatalogHandler {
	return &CatalogHandler{Service: s}
}

// ListQuestions returns a subcategory's questions, optionally filtered by
// status via ?status=enabled|disabled. Zero questions is a valid empty list.
func (h *CatalogHandler) ListQuestions(c *gin.Context) {
	subcategoryID := c.Param("id")
	status := c.Query("status")
	if status != "" && status != models.StatusEnabled && status != models.StatusDisabled {
		c.JSON(http.StatusBadRequest, gin.H{"error": "status must be enabled or disabled"})
		return
	}
	questions, err := h.Service.ListBySubcategory(context.Background(), subcategoryID, status)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, questions)
}

func (h *CatalogHandler) GetSubcategory(c *gin.Context) {
	sub, err := h.Service.GetSubcategory(context.Background(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, sub)
}

func (h *CatalogHandler) ListSubcategoriesByCategory(c *gin.Context) {
	subs, err := h.Service.ListSubcategoriesByCategory(context.Background(), c.Param("categoryId"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, subs)
}

func (h *CatalogHandler) ListEnabledSubcategories(c *gin.Context) {
	subs, err := h.Service.ListSubcategoriesByStatus(context.Background(), models.StatusEnabled)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, subs)
}

func (h *CatalogHandler) CreateSubcategory(c *gin.Context) {
	var sub models.Subcategory
	if err := c.ShouldBindJSON(&sub); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := h.Service.CreateSubcategory(context.Background(), &sub); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, sub)
}
