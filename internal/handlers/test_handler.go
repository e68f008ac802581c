package handlers

import (
	"context"
	"errors"
	"io"
	"net/http"

	"learning-service/internal/service"

	"github.com/gin-gonic/gin"
)

type TestHandler struct {
	Service *service.TestService
}

func NewTestHandler(s *service.TestService) *TestHandler {
	return &TestHandler{Service: s}
}

// StartAttempt begins a new test attempt, wiping the user's previous
// test-mode progress for the subcategory. An empty catalog is reported as an
// empty state, not an error.
func (h *TestHandler) StartAttempt(c *gin.Context) {
	var req struct {
		SubcategoryID string `json:"subcategory_id" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	attempt, err := h.Service.StartAttempt(context.Background(), userID(c), req.SubcategoryID)
	if err != nil {
		respondError(c, err)
		return
	}
	if attempt == nil {
		c.JSON(http.StatusOK, gin.H{"attempt": nil, "message": "no questions available"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"attempt": attempt})
}

func (h *TestHandler) GetAttempt(c *gin.Context) {
	attempt, err := h.Service.GetAttempt(context.Background(), c.Param("id"), userID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, attempt)
}

func (h *TestHandler) CurrentQuestion(c *gin.Context) {
	question, err := h.Service.CurrentQuestion(context.Background(), c.Param("id"), userID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, question)
}

func (h *TestHandler) SubmitAnswer(c *gin.Context) {
	var req struct {
		QuestionID     string `json:"question_id" binding:"required"`
		SelectedOption string `json:"selected_option" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	result, err := h.Service.SubmitAnswer(context.Background(), c.Param("id"), userID(c), req.QuestionID, req.SelectedOption)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// EndAttempt handles both the user's "end test" action and timer expiry; the
// two race into the same idempotent transition.
func (h *TestHandler) EndAttempt(c *gin.Context) {
	var req struct {
		TimedOut bool `json:"timed_out"`
	}
	// the end-test body is optional; an absent body means a user-driven end
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	attempt, err := h.Service.EndAttempt(context.Background(), c.Param("id"), userID(c), req.TimedOut)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"attempt":         attempt,
		"score":           attempt.Score(),
		"total_questions": attempt.TotalQuestions(),
	})
}

func (h *TestHandler) Review(c *gin.Context) {
	review, err := h.Service.Review(context.Background(), c.Param("id"), userID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, review)
}
