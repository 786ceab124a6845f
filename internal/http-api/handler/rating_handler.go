package handler

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"bookhub/internal/http-api/dto"
	"bookhub/internal/http-api/models"
	"bookhub/internal/http-api/service"

	"github.com/gin-gonic/gin"
)

type RatingHandler struct {
	svc service.RatingService
}

func NewRatingHandler(svc service.RatingService) *RatingHandler {
	return &RatingHandler{svc: svc}
}

func (h *RatingHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("", h.Create)
	rg.GET("/book", h.ForBook)
	rg.GET("/mine", h.Mine)
	rg.GET("/average", h.Average)
}

func (h *RatingHandler) Create(c *gin.Context) {
	var req dto.CreateRatingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	rating, err := h.svc.Create(ctx, req.Email, req.BookLink, req.Title, req.Body, req.Score)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, toRatingResponse(*rating))
}

// ForBook returns one page of a book's reviews, newest first.
func (h *RatingHandler) ForBook(c *gin.Context) {
	bookLink := c.Query("libro_id")
	if bookLink == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "libro_id is required"})
		return
	}
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	ratings, total, err := h.svc.ForBook(ctx, bookLink, page, pageSize)
	if err != nil {
		respondError(c, err)
		return
	}

	items := make([]dto.RatingResponse, 0, len(ratings))
	for _, r := range ratings {
		items = append(items, toRatingResponse(r))
	}
	c.JSON(http.StatusOK, dto.PaginatedRatingResponse{
		Items:    items,
		Total:    total,
		Page:     page,
		PageSize: pageSize,
	})
}

func (h *RatingHandler) Mine(c *gin.Context) {
	email := c.Query("usuario_id")
	bookLink := c.Query("libro_id")
	if email == "" || bookLink == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "usuario_id and libro_id are required"})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	ratings, err := h.svc.ByUserForBook(ctx, email, bookLink)
	if err != nil {
		respondError(c, err)
		return
	}

	items := make([]dto.RatingResponse, 0, len(ratings))
	for _, r := range ratings {
		items = append(items, toRatingResponse(r))
	}
	c.JSON(http.StatusOK, items)
}

func (h *RatingHandler) Average(c *gin.Context) {
	bookLink := c.Query("libro_id")
	if bookLink == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "libro_id is required"})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	avg, count, err := h.svc.AverageFor(ctx, bookLink)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.AverageRatingResponse{Average: avg, Count: count})
}

func toRatingResponse(r models.Rating) dto.RatingResponse {
	return dto.RatingResponse{
		Email:       r.UserID,
		BookLink:    r.BookLink,
		SubmittedAt: r.SubmittedAt,
		Title:       r.Title,
		Body:        r.Body,
		Score:       r.Score,
	}
}
