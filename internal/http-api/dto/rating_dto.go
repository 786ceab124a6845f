package dto

import "time"

type CreateRatingRequest struct {
	Email    string `json:"usuario_id" binding:"required,email"`
	BookLink string `json:"libro_id" binding:"required,url"`
	Title    string `json:"titulo_resena" binding:"required"`
	Body     string `json:"mensaje"`
	Score    int    `json:"valor" binding:"required,min=1,max=5"`
}

type RatingResponse struct {
	Email       string    `json:"usuario_id"`
	BookLink    string    `json:"libro_id"`
	SubmittedAt time.Time `json:"fecha"`
	Title       string    `json:"titulo_resena"`
	Body        string    `json:"mensaje"`
	Score       int       `json:"valor"`
}

// PaginatedRatingResponse: one page of a book's reviews
type PaginatedRatingResponse struct {
	Items    []RatingResponse `json:"items"`
	Total    int64            `json:"total"`
	Page     int              `json:"page"`
	PageSize int              `json:"page_size"`
}

type AverageRatingResponse struct {
	Average float64 `json:"puntuacion_media"`
	Count   int64   `json:"total_opiniones"`
}
