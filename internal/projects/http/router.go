package http

import "github.com/gin-gonic/gin"

// Register mounts the project routes on an authenticated group.
func (h *Handler) Register(rg *gin.RouterGroup) {
	rg.POST("", h.create)
	rg.GET("", h.list)
	rg.GET("/:id", h.get)
	rg.PUT("/:id", h.update)
	rg.DELETE("/:id", h.delete)
	rg.GET("/:id/flow", h.getFlow)
	rg.POST("/:id/flow", h.saveFlow)
}
