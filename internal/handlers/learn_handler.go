package handlers

import (
	"context"
	"net/http"

	"learning-service/internal/service"

	"github.com/gin-gonic/gin"
)

type LearnHandler struct {
	Service *service.LearnService
}

func NewLearnHandler(s *service.LearnService) *LearnHandler {
	return &LearnHandler{Service: s}
}

// GetQueue returns the freshly computed learn queue for the authenticated
// user. An empty queue means the subcategory has no enabled questions.
func (h *LearnHandler) GetQueue(c *gin.Context) {
	queue, err := h.Service.SelectQueue(context.Background(), userID(c), c.Param("subcategoryId"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, queue)
}

func (h *LearnHandler) SubmitAnswer(c *gin.Context) {
	var req struct {
		QuestionID     string `json:"question_id" binding:"required"`
		SelectedOption string `json:"selected_option" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	feedback, err := h.Service.SubmitAnswer(context.Background(), userID(c), req.QuestionID, req.SelectedOption)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, feedback)
}
