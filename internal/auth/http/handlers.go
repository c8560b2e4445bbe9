package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/flowpad-app/flowpad-backend/internal/auth/domain"
	"github.com/flowpad-app/flowpad-backend/internal/auth/middleware"
	"github.com/flowpad-app/flowpad-backend/internal/auth/service"
)

// Register creates an account and returns its first token.
func (h *Handler) Register(c *gin.Context) {
	var req registerReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid body"})
		return
	}

	res, err := h.authService.Register(c.Request.Context(), service.RegisterInput{
		Username: req.Username,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		writeAuthError(c, err)
		return
	}

	c.JSON(http.StatusCreated, authResp{
		Message: "User registered successfully",
		Token:   res.Token,
		User:    res.User,
	})
}

func (h *Handler) Login(c *gin.Context) {
	var req loginReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid body"})
		return
	}

	res, err := h.authService.Login(c.Request.Context(), service.LoginInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		writeAuthError(c, err)
		return
	}

	c.JSON(http.StatusOK, authResp{
		Message: "Login successful",
		Token:   res.Token,
		User:    res.User,
	})
}

// GetProfile returns the authenticated user.
func (h *Handler) GetProfile(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"user": middleware.CurrentUser(c)})
}

func (h *Handler) UpdateEmail(c *gin.Context) {
	var req updateEmailReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid body"})
		return
	}

	user := middleware.CurrentUser(c)
	if err := h.authService.UpdateEmail(c.Request.Context(), user.ID, req.Email); err != nil {
		writeAuthError(c, err)
		return
	}

	user.Email = req.Email
	c.JSON(http.StatusOK, gin.H{"message": "Email updated successfully", "user": user})
}

func (h *Handler) DeleteAccount(c *gin.Context) {
	userID := middleware.UserID(c)
	if err := h.authService.DeleteAccount(c.Request.Context(), userID); err != nil {
		writeAuthError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Account deleted successfully"})
}

// writeAuthError maps service errors onto the documented status codes
// without inventing extra detail.
func writeAuthError(c *gin.Context, err error) {
	var verr *domain.ValidationError
	switch {
	case errors.As(err, &verr):
		c.JSON(http.StatusBadRequest, gin.H{"error": verr.Error()})
	case errors.Is(err, domain.ErrUserExists), errors.Is(err, domain.ErrEmailTaken):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, domain.ErrInvalidCredentials),
		errors.Is(err, domain.ErrInvalidToken),
		errors.Is(err, domain.ErrTokenExpired):
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
	case errors.Is(err, domain.ErrUserNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}
