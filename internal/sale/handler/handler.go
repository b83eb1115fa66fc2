package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/mkouadio/pharmacy-backend/internal/sale"
	"github.com/mkouadio/pharmacy-backend/internal/sale/dto"
	"github.com/mkouadio/pharmacy-backend/pkg/logger"
	"go.uber.org/zap"
)

type SaleHandler struct {
	uc     sale.UseCase
	logger logger.ZapLogger
}

func NewSaleHandler(uc sale.UseCase, log logger.ZapLogger) *SaleHandler {
	return &SaleHandler{
		uc:     uc,
		logger: log,
	}
}

func (h *SaleHandler) Submit(c *gin.Context) {
	var input dto.SubmitSaleInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, dto.SaleOutcome{
			Success: false,
			Message: "basket is missing or invalid",
		})
		return
	}

	lines, err := h.uc.SubmitSale(c.Request.Context(), &input)
	if err != nil {
		var stockErr *sale.InsufficientStockError
		switch {
		case errors.Is(err, sale.ErrEmptyBasket):
			c.JSON(http.StatusBadRequest, dto.SaleOutcome{
				Success: false,
				Message: err.Error(),
			})
		case errors.As(err, &stockErr):
			c.JSON(http.StatusConflict, dto.SaleOutcome{
				Success: false,
				Message: stockErr.Error(),
			})
		default:
			h.logger.Error("sale submission failed", zap.Error(err))
			c.JSON(http.StatusInternalServerError, dto.SaleOutcome{
				Success: false,
				Message: "sale could not be completed",
			})
		}
		return
	}

	c.JSON(http.StatusOK, dto.SaleOutcome{
		Success: true,
		Message: "sale recorded successfully",
		Lines:   lines,
	})
}
