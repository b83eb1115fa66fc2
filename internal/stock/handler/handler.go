package handler

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/mkouadio/pharmacy-backend/internal/stock"
	"github.com/mkouadio/pharmacy-backend/internal/stock/dto"
	"github.com/mkouadio/pharmacy-backend/pkg/logger"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

type StockHandler struct {
	uc     stock.UseCase
	logger logger.ZapLogger
}

func NewStockHandler(uc stock.UseCase, log logger.ZapLogger) *StockHandler {
	return &StockHandler{
		uc:     uc,
		logger: log,
	}
}

func (h *StockHandler) List(c *gin.Context) {
	filters := &dto.ProductFilters{
		Name:  c.Query("name"),
		Route: c.Query("route"),
		Form:  c.Query("form"),
	}

	if raw := c.Query("id"); raw != "" {
		if id, err := strconv.ParseInt(raw, 10, 64); err == nil {
			filters.ID = &id
		}
	}
	if raw := c.Query("quantity"); raw != "" {
		if q, err := strconv.ParseInt(raw, 10, 64); err == nil {
			filters.Quantity = &q
		}
	}
	if raw := c.Query("price"); raw != "" {
		if p, err := decimal.NewFromString(raw); err == nil {
			filters.Price = &p
		}
	}
	for param, field := range map[string]**time.Time{
		"created_on": &filters.CreatedOn,
		"entered_on": &filters.EnteredOn,
		"expires_on": &filters.ExpiresOn,
	} {
		if raw := c.Query(param); raw != "" {
			if d, err := time.Parse("2006-01-02", raw); err == nil {
				*field = &d
			}
		}
	}
	if page, err := strconv.Atoi(c.Query("page")); err == nil {
		filters.Page = page
	}
	if size, err := strconv.Atoi(c.Query("page_size")); err == nil {
		filters.PageSize = size
	}

	products, total, err := h.uc.ListProducts(c.Request.Context(), filters)
	if err != nil {
		h.logger.Error("failed to list products", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list products"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"products": products, "total": total})
}

func (h *StockHandler) Dashboard(c *gin.Context) {
	dashboard, err := h.uc.GetDashboard(c.Request.Context())
	if err != nil {
		h.logger.Error("failed to build dashboard", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to build dashboard"})
		return
	}
	c.JSON(http.StatusOK, dashboard)
}

func (h *StockHandler) Create(c *gin.Context) {
	var input dto.CreateProductInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid product payload"})
		return
	}

	product, err := h.uc.CreateProduct(c.Request.Context(), &input)
	if err != nil {
		if errors.Is(err, stock.ErrDuplicateID) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		h.logger.Error("failed to create product", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create product"})
		return
	}

	c.JSON(http.StatusCreated, product)
}

func (h *StockHandler) Update(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid product id"})
		return
	}

	var input dto.UpdateProductInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid product payload"})
		return
	}

	product, err := h.uc.UpdateProduct(c.Request.Context(), id, &input)
	if err != nil {
		switch {
		case errors.Is(err, stock.ErrProductNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		case errors.Is(err, stock.ErrStockBusy):
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		default:
			h.logger.Error("failed to update product", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update product"})
		}
		return
	}

	c.JSON(http.StatusOK, product)
}

func (h *StockHandler) Delete(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid product id"})
		return
	}

	if err := h.uc.DeleteProduct(c.Request.Context(), id); err != nil {
		if errors.Is(err, stock.ErrProductNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		h.logger.Error("failed to delete product", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete product"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}
