package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"vocational-api/internal/catalog"
)

// QuestionHandler sirve el cuestionario estatico.
type QuestionHandler struct {
	logger  *zap.Logger
	catalog catalog.Source
}

func NewQuestionHandler(logger *zap.Logger, source catalog.Source) *QuestionHandler {
	return &QuestionHandler{logger: logger, catalog: source}
}

// ListQuestions maneja GET /questions.
func (h *QuestionHandler) ListQuestions(c *gin.Context) {
	questions, err := h.catalog.Questions(c.Request.Context())
	if err != nil {
		h.logger.Error("load questions failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "questions unavailable"})
		return
	}
	c.JSON(http.StatusOK, questions)
}
