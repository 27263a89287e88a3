package http

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"mind-clone/internal/repository"
	"mind-clone/internal/service"
)

// ProfileHandler expone consulta y razonamiento sobre perfiles cognitivos.
type ProfileHandler struct {
	logger   *zap.Logger
	profiles repository.ProfileRepository
}

func NewProfileHandler(logger *zap.Logger, profiles repository.ProfileRepository) *ProfileHandler {
	return &ProfileHandler{logger: logger, profiles: profiles}
}

// ListProfiles maneja GET /profiles.
func (h *ProfileHandler) ListProfiles(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))
	profiles, err := h.profiles.List(c.Request.Context(), limit)
	if err != nil {
		h.logger.Error("list profiles failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not list profiles"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"profiles": profiles})
}

// GetProfile maneja GET /profiles/:id.
func (h *ProfileHandler) GetProfile(c *gin.Context) {
	profile, err := h.profiles.GetByID(c.Request.Context(), c.Param("id"))
	if errors.Is(err, repository.ErrProfileNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "profile not found"})
		return
	}
	if err != nil {
		h.logger.Error("get profile failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not get profile"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"profile": profile})
}

// DeleteProfile maneja DELETE /profiles/:id.
func (h *ProfileHandler) DeleteProfile(c *gin.Context) {
	err := h.profiles.Delete(c.Request.Context(), c.Param("id"))
	if errors.Is(err, repository.ErrProfileNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "profile not found"})
		return
	}
	if err != nil {
		h.logger.Error("delete profile failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not delete profile"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"deleted": true})
}

// FindSimilar maneja GET /profiles/:id/similar.
func (h *ProfileHandler) FindSimilar(c *gin.Context) {
	profile, err := h.profiles.GetByID(c.Request.Context(), c.Param("id"))
	if errors.Is(err, repository.ErrProfileNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "profile not found"})
		return
	}
	if err != nil {
		h.logger.Error("get profile failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not get profile"})
		return
	}

	k, _ := strconv.Atoi(c.DefaultQuery("k", "5"))
	similar, err := h.profiles.FindSimilar(c.Request.Context(), profile.TraitVector(), k)
	if err != nil {
		h.logger.Error("find similar profiles failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not search profiles"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"profiles": similar})
}

// ReasonAboutProblem maneja POST /profiles/:id/reason.
func (h *ProfileHandler) ReasonAboutProblem(c *gin.Context) {
	var req struct {
		Problem    string `json:"problem" binding:"required"`
		Complexity string `json:"complexity"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("invalid reasoning request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}
	if req.Complexity == "" {
		req.Complexity = "medium"
	}

	profile, err := h.profiles.GetByID(c.Request.Context(), c.Param("id"))
	if errors.Is(err, repository.ErrProfileNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "profile not found"})
		return
	}
	if err != nil {
		h.logger.Error("get profile failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not get profile"})
		return
	}

	engine := service.NewReasoningEngine(profile, service.CloneSettings{})
	result := engine.ReasonAboutProblem(req.Problem, req.Complexity)
	c.JSON(http.StatusOK, gin.H{"result": result})
}
