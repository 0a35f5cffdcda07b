package handlers

import (
	"errors"
	"net/http"

	"techquiz/models"
	"techquiz/services"

	"github.com/gin-gonic/gin"
)

type SessionHandler struct {
	sessionService *services.SessionService
}

func NewSessionHandler(sessionService *services.SessionService) *SessionHandler {
	return &SessionHandler{
		sessionService: sessionService,
	}
}

type StartSessionRequest struct {
	CategoryID string `json:"category_id" binding:"required"`
}

type SelectAnswerRequest struct {
	Option models.OptionKey `json:"option" binding:"required"`
}

// StartSession begins a quiz over one category. An unknown category or one
// without questions answers 404 so the client returns to the home view.
func (h *SessionHandler) StartSession(c *gin.Context) {
	var req StartSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	view, err := h.sessionService.Start(req.CategoryID)
	if err != nil {
		if errors.Is(err, services.ErrCategoryNotFound) || errors.Is(err, services.ErrNoQuestions) {
			c.JSON(http.StatusNotFound, gin.H{"error": "No quiz available for this category"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, view)
}

func (h *SessionHandler) GetSession(c *gin.Context) {
	view, err := h.sessionService.Get(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Session not found"})
		return
	}
	c.JSON(http.StatusOK, view)
}

func (h *SessionHandler) SelectAnswer(c *gin.Context) {
	var req SelectAnswerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	view, err := h.sessionService.Select(c.Param("id"), req.Option)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrSessionNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Session not found"})
		case errors.Is(err, services.ErrInvalidOption):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Option must be one of a, b, c, d"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, view)
}

func (h *SessionHandler) AdvanceSession(c *gin.Context) {
	view, err := h.sessionService.Advance(c.Param("id"))
	if err != nil {
		switch {
		case errors.Is(err, services.ErrSessionNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Session not found"})
		case errors.Is(err, services.ErrNotRevealed):
			c.JSON(http.StatusConflict, gin.H{"error": "Select an answer before advancing"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, view)
}

func (h *SessionHandler) EndSession(c *gin.Context) {
	if err := h.sessionService.End(c.Param("id")); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Session not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Session ended"})
}
