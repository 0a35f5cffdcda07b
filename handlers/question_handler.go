package handlers

import (
	"errors"
	"net/http"

	"techquiz/models"
	"techquiz/services"

	"github.com/gin-gonic/gin"
)

type QuestionHandler struct {
	contentService *services.ContentService
}

func NewQuestionHandler(contentService *services.ContentService) *QuestionHandler {
	return &QuestionHandler{
		contentService: contentService,
	}
}

// ListQuestions returns every question, or the subset for one category when
// a category_id query parameter is present. Admin-only: the payload carries
// correct answers.
func (h *QuestionHandler) ListQuestions(c *gin.Context) {
	if categoryID := c.Query("category_id"); categoryID != "" {
		c.JSON(http.StatusOK, h.contentService.QuestionsForCategory(categoryID))
		return
	}
	c.JSON(http.StatusOK, h.contentService.Questions())
}

func (h *QuestionHandler) GetQuestion(c *gin.Context) {
	question, ok := h.contentService.Question(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Question not found"})
		return
	}
	c.JSON(http.StatusOK, question)
}

func (h *QuestionHandler) CreateQuestion(c *gin.Context) {
	var req services.AddQuestionInput
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if !req.CorrectAnswer.Valid() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Correct answer must be one of a, b, c, d"})
		return
	}
	if !validOptionKeys(req.Options) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Options must cover exactly the keys a, b, c, d"})
		return
	}

	question, err := h.contentService.AddQuestion(c.Request.Context(), req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, question)
}

func (h *QuestionHandler) UpdateQuestion(c *gin.Context) {
	var req services.QuestionUpdate
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.CorrectAnswer != nil && !req.CorrectAnswer.Valid() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Correct answer must be one of a, b, c, d"})
		return
	}
	if req.Options != nil && !validOptionKeys(req.Options) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Options must cover exactly the keys a, b, c, d"})
		return
	}

	question, err := h.contentService.UpdateQuestion(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		if errors.Is(err, services.ErrQuestionNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Question not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, question)
}

func (h *QuestionHandler) DeleteQuestion(c *gin.Context) {
	err := h.contentService.DeleteQuestion(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, services.ErrQuestionNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Question not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Question deleted"})
}

func validOptionKeys(options map[models.OptionKey]models.QuestionOption) bool {
	if len(options) != len(models.OptionKeys) {
		return false
	}
	for _, key := range models.OptionKeys {
		if _, ok := options[key]; !ok {
			return false
		}
	}
	return true
}
