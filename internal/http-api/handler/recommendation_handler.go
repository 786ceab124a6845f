package handler

import (
	"context"
	"net/http"
	"time"

	"bookhub/internal/http-api/service"

	"github.com/gin-gonic/gin"
)

type RecommendationHandler struct {
	svc service.RecommendationService
}

func NewRecommendationHandler(svc service.RecommendationService) *RecommendationHandler {
	return &RecommendationHandler{svc: svc}
}

func (h *RecommendationHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/:correo", h.Recommend)
}

func (h *RecommendationHandler) Recommend(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	candidates, err := h.svc.Recommend(ctx, c.Param("correo"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, candidates)
}
