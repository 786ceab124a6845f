package handler

import (
	"context"
	"net/http"
	"time"

	"bookhub/internal/http-api/dto"
	"bookhub/internal/http-api/service"

	"github.com/gin-gonic/gin"
)

type StatsHandler struct {
	svc service.StatsService
}

func NewStatsHandler(svc service.StatsService) *StatsHandler {
	return &StatsHandler{svc: svc}
}

func (h *StatsHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/top-readers", h.TopReaders)
	rg.GET("/top-books", h.TopBooks)
	rg.GET("/users/:correo", h.UserSummary)
}

// TopReaders returns the leaderboard for the requested period. An empty
// board is a 200 with an empty array.
func (h *StatsHandler) TopReaders(c *gin.Context) {
	var q dto.LeaderboardQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	rows, err := h.svc.TopReaders(ctx, service.Period{Year: q.Year, Month: time.Month(q.Month)}, q.Limit)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, rows)
}

func (h *StatsHandler) TopBooks(c *gin.Context) {
	var q dto.LeaderboardQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	rows, err := h.svc.TopBooks(ctx, service.Period{Year: q.Year, Month: time.Month(q.Month)}, q.Limit)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, rows)
}

// UserSummary serves the monthly summary when a month is given and the
// yearly one otherwise.
func (h *StatsHandler) UserSummary(c *gin.Context) {
	var q dto.SummaryQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	email := c.Param("correo")
	if q.Month > 0 {
		summary, err := h.svc.MonthlySummary(ctx, email, q.Year, time.Month(q.Month))
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, summary)
		return
	}

	summary, err := h.svc.YearlySummary(ctx, email, q.Year)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, summary)
}
