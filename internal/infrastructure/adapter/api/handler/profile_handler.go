package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	coreport "github.com/amirhossein-jamali/bank-reconciler/internal/domain/port/core"
	"github.com/amirhossein-jamali/bank-reconciler/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/bank-reconciler/internal/infrastructure/adapter/api/dto"
)

// ProfileHandler exposes the profiles the matcher sees
type ProfileHandler struct {
	profiles usecase.ProfileUseCase
	logger   coreport.Logger
}

// NewProfileHandler creates a new profile handler instance
func NewProfileHandler(profiles usecase.ProfileUseCase, logger coreport.Logger) *ProfileHandler {
	return &ProfileHandler{profiles: profiles, logger: logger}
}

// ListActive handles GET /api/v1/profiles
func (h *ProfileHandler) ListActive(c *gin.Context) {
	profiles, err := h.profiles.ListActiveProfiles(c.Request.Context())
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, dto.NewProfileResponses(profiles))
}
