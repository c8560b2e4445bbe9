package http

import "github.com/gin-gonic/gin"

// RegisterPublic mounts the unauthenticated auth routes.
func (h *Handler) RegisterPublic(rg *gin.RouterGroup) {
	rg.POST("/register", h.Register)
	rg.POST("/login", h.Login)
}

// RegisterProtected mounts the account routes that require a valid token.
func (h *Handler) RegisterProtected(rg *gin.RouterGroup) {
	rg.GET("/profile", h.GetProfile)
	rg.PUT("/update-email", h.UpdateEmail)
	rg.DELETE("/delete-account", h.DeleteAccount)
}
