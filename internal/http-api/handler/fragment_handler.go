package handler

import (
	"context"
	"net/http"
	"time"

	"bookhub/internal/http-api/dto"
	"bookhub/internal/http-api/service"

	"github.com/gin-gonic/gin"
)

type FragmentHandler struct {
	svc service.FragmentService
}

func NewFragmentHandler(svc service.FragmentService) *FragmentHandler {
	return &FragmentHandler{svc: svc}
}

func (h *FragmentHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("", h.Highlight)
	rg.DELETE("", h.Unhighlight)
	rg.GET("/check", h.Check)
	rg.GET("/pages", h.Pages)
}

func (h *FragmentHandler) Highlight(c *gin.Context) {
	var req dto.FragmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	if err := h.svc.Highlight(ctx, req.Email, req.BookLink, req.Page); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "page highlighted"})
}

func (h *FragmentHandler) Unhighlight(c *gin.Context) {
	var req dto.FragmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	if err := h.svc.Unhighlight(ctx, req.Email, req.BookLink, req.Page); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "highlight removed"})
}

func (h *FragmentHandler) Check(c *gin.Context) {
	var q dto.FragmentQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	highlighted, err := h.svc.IsHighlighted(ctx, q.Email, q.BookLink, q.Page)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.HighlightedResponse{Highlighted: highlighted})
}

func (h *FragmentHandler) Pages(c *gin.Context) {
	var q dto.FragmentQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	pages, err := h.svc.Pages(ctx, q.Email, q.BookLink)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.HighlightedPagesResponse{Pages: pages})
}
