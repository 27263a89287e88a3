package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"mind-clone/internal/repository"
	"mind-clone/internal/service"
)

// AssessmentHandler expone la sesion de assessment conversacional.
type AssessmentHandler struct {
	logger      *zap.Logger
	assessments *service.AssessmentService
	profiles    repository.ProfileRepository
}

func NewAssessmentHandler(logger *zap.Logger, assessments *service.AssessmentService, profiles repository.ProfileRepository) *AssessmentHandler {
	return &AssessmentHandler{
		logger:      logger,
		assessments: assessments,
		profiles:    profiles,
	}
}

// StartAssessment maneja POST /assessment/start.
func (h *AssessmentHandler) StartAssessment(c *gin.Context) {
	state, prompt, err := h.assessments.Start(c.Request.Context())
	if err != nil {
		h.logger.Error("start assessment failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not start assessment"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"session_id": state.SessionID,
		"phase":      state.Phase,
		"prompt":     prompt,
	})
}

// SubmitResponse maneja POST /assessment/:id/respond.
func (h *AssessmentHandler) SubmitResponse(c *gin.Context) {
	var req struct {
		Text string `json:"text" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("invalid assessment response request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	sessionID := c.Param("id")
	next, done, err := h.assessments.Submit(c.Request.Context(), sessionID, req.Text)
	switch {
	case errors.Is(err, service.ErrSessionNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "session not found"})
		return
	case errors.Is(err, service.ErrAssessmentComplete):
		c.JSON(http.StatusConflict, gin.H{"error": "assessment already complete"})
		return
	case errors.Is(err, service.ErrEmptyText):
		c.JSON(http.StatusBadRequest, gin.H{"error": "empty response"})
		return
	case err != nil:
		h.logger.Error("submit assessment response failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not process response"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"session_id": sessionID,
		"prompt":     next,
		"done":       done,
	})
}

// GetResults maneja GET /assessment/:id/results. Genera el perfil
// comprehensivo y lo persiste antes de devolverlo.
func (h *AssessmentHandler) GetResults(c *gin.Context) {
	sessionID := c.Param("id")
	profile, err := h.assessments.Results(c.Request.Context(), sessionID)
	switch {
	case errors.Is(err, service.ErrSessionNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "session not found"})
		return
	case errors.Is(err, service.ErrAssessmentIncomplete):
		c.JSON(http.StatusConflict, gin.H{"error": "assessment not yet complete"})
		return
	case err != nil:
		h.logger.Error("assessment results failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not generate results"})
		return
	}

	if err := h.profiles.Save(c.Request.Context(), profile); err != nil {
		h.logger.Error("save cognitive profile failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not save profile"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"profile": profile})
}
