package handler

import (
	"context"
	"net/http"
	"time"

	"bookhub/internal/http-api/dto"
	"bookhub/internal/http-api/service"

	"github.com/gin-gonic/gin"
)

type ProgressHandler struct {
	progressService service.ProgressService
}

func NewProgressHandler(progressService service.ProgressService) *ProgressHandler {
	return &ProgressHandler{progressService: progressService}
}

// RegisterRoutes registers the progress-related routes
func (h *ProgressHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("", h.SaveProgress)
	rg.GET("/current", h.CurrentPage)
	rg.GET("/state", h.State)
	rg.POST("/complete", h.Complete)
	rg.DELETE("", h.Abandon)
}

// SaveProgress upserts the caller's current page for a book.
func (h *ProgressHandler) SaveProgress(c *gin.Context) {
	var req dto.SaveProgressRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	page, err := h.progressService.SetProgress(ctx, req.Email, req.BookLink, req.Page)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.PageResponse{Page: page})
}

// CurrentPage returns the saved page, or page 1 when nothing is saved yet.
func (h *ProgressHandler) CurrentPage(c *gin.Context) {
	var req dto.ProgressPairQuery
	if err := c.ShouldBindQuery(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	page, err := h.progressService.CurrentPage(ctx, req.Email, req.BookLink)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.PageResponse{Page: page})
}

func (h *ProgressHandler) State(c *gin.Context) {
	var req dto.ProgressPairQuery
	if err := c.ShouldBindQuery(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	state, err := h.progressService.State(ctx, req.Email, req.BookLink)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.StateResponse{State: string(state)})
}

// Complete marks the book finished: completion timestamp, progress row gone,
// membership in the Read list — all or nothing.
func (h *ProgressHandler) Complete(c *gin.Context) {
	var req dto.ProgressPairRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	if err := h.progressService.Complete(ctx, req.Email, req.BookLink); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "book completed"})
}

func (h *ProgressHandler) Abandon(c *gin.Context) {
	var req dto.ProgressPairRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	if err := h.progressService.Abandon(ctx, req.Email, req.BookLink); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "progress removed"})
}
