package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/mkouadio/pharmacy-backend/internal/connlog"
	"github.com/mkouadio/pharmacy-backend/internal/connlog/dto"
	"github.com/mkouadio/pharmacy-backend/pkg/logger"
	"go.uber.org/zap"
)

type ConnlogHandler struct {
	uc     connlog.UseCase
	logger logger.ZapLogger
}

func NewConnlogHandler(uc connlog.UseCase, log logger.ZapLogger) *ConnlogHandler {
	return &ConnlogHandler{
		uc:     uc,
		logger: log,
	}
}

func (h *ConnlogHandler) List(c *gin.Context) {
	filters := &dto.LogFilters{
		LastName:  c.Query("last_name"),
		FirstName: c.Query("first_name"),
		Position:  c.Query("position"),
		Action:    c.Query("action"),
	}

	logs, err := h.uc.ListLogs(c.Request.Context(), filters)
	if err != nil {
		h.logger.Error("failed to list connection logs", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list connection logs"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"logs": logs})
}
