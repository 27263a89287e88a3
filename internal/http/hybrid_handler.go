package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"mind-clone/internal/domain"
	"mind-clone/internal/repository"
	"mind-clone/internal/service"
)

// HybridHandler expone la creacion y consulta de perfiles hibridos.
type HybridHandler struct {
	logger   *zap.Logger
	hybrids  *service.HybridService
	profiles repository.ProfileRepository
}

func NewHybridHandler(logger *zap.Logger, hybrids *service.HybridService, profiles repository.ProfileRepository) *HybridHandler {
	return &HybridHandler{
		logger:   logger,
		hybrids:  hybrids,
		profiles: profiles,
	}
}

// CreateHybrid maneja POST /hybrid.
func (h *HybridHandler) CreateHybrid(c *gin.Context) {
	var req struct {
		ProfileIDs []string  `json:"profile_ids" binding:"required"`
		Weights    []float64 `json:"weights" binding:"required"`
		UseCase    string    `json:"use_case"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("invalid hybrid request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	profiles := make([]*domain.CognitiveProfile, 0, len(req.ProfileIDs))
	for _, id := range req.ProfileIDs {
		profile, err := h.profiles.GetByID(c.Request.Context(), id)
		if errors.Is(err, repository.ErrProfileNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "profile not found", "profile_id": id})
			return
		}
		if err != nil {
			h.logger.Error("get profile failed", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "could not get profile"})
			return
		}
		profiles = append(profiles, profile)
	}

	hybrid, err := h.hybrids.CreateHybridProfile(profiles, req.Weights, req.UseCase)
	switch {
	case errors.Is(err, service.ErrProfileCountMismatch), errors.Is(err, service.ErrWeightSum):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	case err != nil:
		h.logger.Error("create hybrid profile failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not create hybrid"})
		return
	}

	if err := h.profiles.SaveHybrid(c.Request.Context(), hybrid); err != nil {
		h.logger.Error("save hybrid profile failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not save hybrid"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"profile": hybrid})
}

// GetHybrid maneja GET /hybrid/:id.
func (h *HybridHandler) GetHybrid(c *gin.Context) {
	hybrid, err := h.profiles.GetHybridByID(c.Request.Context(), c.Param("id"))
	if errors.Is(err, repository.ErrProfileNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "hybrid profile not found"})
		return
	}
	if err != nil {
		h.logger.Error("get hybrid profile failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not get hybrid"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"profile": hybrid})
}
