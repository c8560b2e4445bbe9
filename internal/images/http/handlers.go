package http

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/flowpad-app/flowpad-backend/internal/auth/middleware"
	"github.com/flowpad-app/flowpad-backend/internal/images/domain"
)

// ImageRepository is the persistence surface the handlers use.
type ImageRepository interface {
	Save(ctx context.Context, userID int, nodeID, imageData string) (*domain.NodeImage, error)
	Get(ctx context.Context, userID int, nodeID string) (*domain.NodeImage, error)
}

type Handler struct {
	repo ImageRepository
}

func New(repo ImageRepository) *Handler {
	return &Handler{repo: repo}
}

type uploadReq struct {
	NodeID    string `json:"nodeId"`
	ImageData string `json:"imageData"`
}

func (h *Handler) upload(c *gin.Context) {
	var req uploadReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid body"})
		return
	}
	if strings.TrimSpace(req.NodeID) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "nodeId is required"})
		return
	}
	if strings.TrimSpace(req.ImageData) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "imageData is required"})
		return
	}

	img, err := h.repo.Save(c.Request.Context(), middleware.UserID(c), req.NodeID, req.ImageData)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidImageData) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Image uploaded successfully", "data": img.ImageData})
}

func (h *Handler) get(c *gin.Context) {
	nodeID := c.Param("nodeId")

	img, err := h.repo.Get(c.Request.Context(), middleware.UserID(c), nodeID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "image not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, img)
}

// Register mounts the node-image routes on an authenticated group.
func (h *Handler) Register(rg *gin.RouterGroup) {
	rg.POST("/upload-image", h.upload)
	rg.GET("/node-images/:nodeId", h.get)
}
