package http

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/flowpad-app/flowpad-backend/internal/auth/middleware"
	"github.com/flowpad-app/flowpad-backend/internal/projects/domain"
)

func (h *Handler) create(c *gin.Context) {
	var req createReq
	if err := c.ShouldBindJSON(&req); err != nil || strings.TrimSpace(req.Name) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "project name is required"})
		return
	}

	userID := middleware.UserID(c)
	p, err := h.repo.Create(c.Request.Context(), userID, domain.CreateInput{
		Name:        strings.TrimSpace(req.Name),
		Description: req.Description,
		IsPrivate:   req.IsPrivate,
		Tags:        req.Tags,
	})
	if err != nil {
		writeProjectError(c, err)
		return
	}

	c.JSON(http.StatusCreated, p)
}

func (h *Handler) list(c *gin.Context) {
	userID := middleware.UserID(c)
	projects, err := h.repo.List(c.Request.Context(), userID)
	if err != nil {
		writeProjectError(c, err)
		return
	}
	c.JSON(http.StatusOK, projects)
}

func (h *Handler) get(c *gin.Context) {
	id, ok := projectID(c)
	if !ok {
		return
	}

	p, err := h.repo.Get(c.Request.Context(), id, middleware.UserID(c))
	if err != nil {
		writeProjectError(c, err)
		return
	}
	c.JSON(http.StatusOK, p)
}

func (h *Handler) update(c *gin.Context) {
	id, ok := projectID(c)
	if !ok {
		return
	}

	var req updateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid body"})
		return
	}

	p, err := h.repo.Update(c.Request.Context(), id, middleware.UserID(c), domain.UpdateInput{
		Name:        req.Name,
		Description: req.Description,
		IsPrivate:   req.IsPrivate,
		Tags:        req.Tags,
	})
	if err != nil {
		writeProjectError(c, err)
		return
	}
	c.JSON(http.StatusOK, p)
}

func (h *Handler) delete(c *gin.Context) {
	id, ok := projectID(c)
	if !ok {
		return
	}

	if err := h.repo.Delete(c.Request.Context(), id, middleware.UserID(c)); err != nil {
		writeProjectError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Project deleted successfully"})
}

func (h *Handler) getFlow(c *gin.Context) {
	id, ok := projectID(c)
	if !ok {
		return
	}

	flow, err := h.repo.GetFlow(c.Request.Context(), id, middleware.UserID(c))
	if err != nil {
		// a project that never saved a flow is a valid, empty outcome
		if errors.Is(err, domain.ErrFlowNotSaved) {
			c.JSON(http.StatusOK, nil)
			return
		}
		writeProjectError(c, err)
		return
	}
	c.JSON(http.StatusOK, flow)
}

func (h *Handler) saveFlow(c *gin.Context) {
	id, ok := projectID(c)
	if !ok {
		return
	}

	var req saveFlowReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid body"})
		return
	}

	if err := h.repo.SaveFlow(c.Request.Context(), id, middleware.UserID(c), req.Flow); err != nil {
		writeProjectError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Flow saved successfully"})
}

func projectID(c *gin.Context) (int, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid project id"})
		return 0, false
	}
	return id, true
}

func writeProjectError(c *gin.Context, err error) {
	if errors.Is(err, domain.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "project not found"})
		return
	}
	c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
}
