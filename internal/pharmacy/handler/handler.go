package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/mkouadio/pharmacy-backend/internal/pharmacy"
	"github.com/mkouadio/pharmacy-backend/internal/pharmacy/dto"
	"github.com/mkouadio/pharmacy-backend/pkg/logger"
	"go.uber.org/zap"
)

type PharmacyHandler struct {
	uc     pharmacy.UseCase
	logger logger.ZapLogger
}

func NewPharmacyHandler(uc pharmacy.UseCase, log logger.ZapLogger) *PharmacyHandler {
	return &PharmacyHandler{
		uc:     uc,
		logger: log,
	}
}

func (h *PharmacyHandler) Save(c *gin.Context) {
	var input dto.SaveSettingsInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid pharmacy payload"})
		return
	}

	p, err := h.uc.SaveSettings(c.Request.Context(), &input)
	if err != nil {
		h.logger.Error("failed to save pharmacy settings", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save pharmacy settings"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "pharmacy settings saved", "data": p})
}

func (h *PharmacyHandler) Latest(c *gin.Context) {
	p, err := h.uc.LatestSettings(c.Request.Context())
	if err != nil {
		if errors.Is(err, pharmacy.ErrNoSettings) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		h.logger.Error("failed to load pharmacy settings", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load pharmacy settings"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": p})
}
