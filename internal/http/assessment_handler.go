package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"vocational-api/internal/domain"
	"vocational-api/internal/service"
)

// AssessmentHandler mantiene dependencias para los endpoints de evaluacion.
type AssessmentHandler struct {
	logger      *zap.Logger
	assessments *service.AssessmentService
}

func NewAssessmentHandler(logger *zap.Logger, assessments *service.AssessmentService) *AssessmentHandler {
	return &AssessmentHandler{logger: logger, assessments: assessments}
}

// Submit maneja POST /submit.
func (h *AssessmentHandler) Submit(c *gin.Context) {
	// Una lista vacia de respuestas es valida: produce el vector cero.
	var req struct {
		Answers []domain.Answer `json:"answers"`
		Email   string          `json:"email"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("invalid submit request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	result, err := h.assessments.Submit(c.Request.Context(), service.SubmitInput{
		Answers:        req.Answers,
		Email:          req.Email,
		IdempotencyKey: c.GetHeader("Idempotency-Key"),
	})
	if err != nil {
		if errors.Is(err, service.ErrInvalidRating) {
			h.logger.Warn("submit rejected", zap.Error(err))
			c.JSON(http.StatusBadRequest, gin.H{"error": "score must be between 1 and 5"})
			return
		}
		h.logger.Error("submit failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not process assessment"})
		return
	}

	topCourses := make([]domain.Course, len(result.TopCourses))
	for i, m := range result.TopCourses {
		topCourses[i] = m.Course
	}

	c.JSON(http.StatusOK, gin.H{
		"id":               result.ID,
		"user_scores":      result.Scores,
		"top_courses":      topCourses,
		"dominant_profile": result.DominantProfile,
	})
}

// SubmitFeedback maneja POST /assessments/:id/feedback.
func (h *AssessmentHandler) SubmitFeedback(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid assessment id"})
		return
	}

	var req struct {
		Rating int `json:"rating" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("invalid feedback request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	if err := h.assessments.SubmitFeedback(c.Request.Context(), id, req.Rating); err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidRating):
			c.JSON(http.StatusBadRequest, gin.H{"error": "rating must be between 1 and 5"})
		case errors.Is(err, service.ErrAssessmentNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "assessment not found"})
		default:
			h.logger.Error("feedback failed", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "could not record feedback"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "feedback received"})
}
