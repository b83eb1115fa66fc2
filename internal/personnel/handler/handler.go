package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/mkouadio/pharmacy-backend/internal/personnel"
	"github.com/mkouadio/pharmacy-backend/internal/personnel/dto"
	"github.com/mkouadio/pharmacy-backend/pkg/logger"
	"go.uber.org/zap"
)

type PersonnelHandler struct {
	uc         personnel.UseCase
	logger     logger.ZapLogger
	cookieName string
	cookieTTL  int
}

func NewPersonnelHandler(uc personnel.UseCase, log logger.ZapLogger, cookieName string, cookieTTLSeconds int) *PersonnelHandler {
	return &PersonnelHandler{
		uc:         uc,
		logger:     log,
		cookieName: cookieName,
		cookieTTL:  cookieTTLSeconds,
	}
}

func (h *PersonnelHandler) Login(c *gin.Context) {
	var input dto.LoginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "matricule and password are required"})
		return
	}

	result, err := h.uc.Login(c.Request.Context(), &input)
	if err != nil {
		switch {
		case errors.Is(err, personnel.ErrInvalidCredentials):
			c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		case errors.Is(err, personnel.ErrRoleNotAllowed):
			c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
		default:
			h.logger.Error("login failed", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "login failed"})
		}
		return
	}

	c.SetCookie(h.cookieName, result.Token, h.cookieTTL, "/", "", false, true)
	c.JSON(http.StatusOK, gin.H{"success": true, "redirect": result.Redirect})
}

func (h *PersonnelHandler) Logout(c *gin.Context) {
	token, err := c.Cookie(h.cookieName)
	if err != nil || token == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "no active session"})
		return
	}

	if err := h.uc.Logout(c.Request.Context(), token); err != nil {
		h.logger.Error("logout failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "logout failed"})
		return
	}

	c.SetCookie(h.cookieName, "", -1, "/", "", false, true)
	c.JSON(http.StatusOK, gin.H{"success": true, "redirect": "/login"})
}

func (h *PersonnelHandler) List(c *gin.Context) {
	filters := &dto.PersonnelFilters{
		Matricule: c.Query("matricule"),
		LastName:  c.Query("last_name"),
		FirstName: c.Query("first_name"),
		Position:  c.Query("position"),
		Contract:  c.Query("contract"),
	}

	staff, err := h.uc.ListPersonnel(c.Request.Context(), filters)
	if err != nil {
		h.logger.Error("failed to list personnel", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list personnel"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"personnel": staff})
}

func (h *PersonnelHandler) Create(c *gin.Context) {
	var input dto.CreatePersonnelInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid personnel payload"})
		return
	}

	staff, err := h.uc.CreatePersonnel(c.Request.Context(), &input)
	if err != nil {
		if errors.Is(err, personnel.ErrDuplicateMatricule) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		h.logger.Error("failed to create personnel", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create personnel"})
		return
	}

	c.JSON(http.StatusCreated, staff)
}

func (h *PersonnelHandler) Update(c *gin.Context) {
	matricule := c.Param("matricule")

	var input dto.UpdatePersonnelInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid personnel payload"})
		return
	}

	staff, err := h.uc.UpdatePersonnel(c.Request.Context(), matricule, &input)
	if err != nil {
		if errors.Is(err, personnel.ErrPersonnelNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		h.logger.Error("failed to update personnel", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update personnel"})
		return
	}

	c.JSON(http.StatusOK, staff)
}

func (h *PersonnelHandler) Delete(c *gin.Context) {
	matricule := c.Param("matricule")

	if err := h.uc.DeletePersonnel(c.Request.Context(), matricule); err != nil {
		if errors.Is(err, personnel.ErrPersonnelNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		h.logger.Error("failed to delete personnel", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete personnel"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "employee deleted"})
}
