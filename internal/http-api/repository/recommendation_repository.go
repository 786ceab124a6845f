package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"
)

// Candidate is a book eligible for recommendation: associated with at least
// one of the user's dominant themes and neither completed nor in progress.
type Candidate struct {
	Link          string   `json:"enlace"`
	Title         string   `json:"nombre"`
	Author        *string  `json:"autor,omitempty"`
	CoverURL      *string  `json:"imagen_portada,omitempty"`
	Matches       int64    `json:"coincidencias"`
	AverageRating *float64 `json:"puntuacion_media,omitempty"`
}

type RecommendationRepository interface {
	TopThemes(ctx context.Context, userID string, limit int) ([]string, error)
	Candidates(ctx context.Context, userID string, themes []string, limit int) ([]Candidate, error)
}

type recommendationRepository struct {
	db *gorm.DB
}

func NewRecommendationRepository(db *gorm.DB) RecommendationRepository {
	return &recommendationRepository{db: db}
}

// TopThemes returns the user's dominant themes across all completed books,
// most frequent first, ties broken by theme name for determinism.
func (r *recommendationRepository) TopThemes(ctx context.Context, userID string, limit int) ([]string, error) {
	var themes []string
	if err := r.db.WithContext(ctx).
		Table("tema_asociado").
		Joins("JOIN leidos ON leidos.libro_id = tema_asociado.enlace").
		Where("leidos.usuario_id = ?", userID).
		Group("tema_asociado.tematica").
		Order("COUNT(DISTINCT leidos.libro_id) DESC").
		Order("tema_asociado.tematica ASC").
		Limit(limit).
		Pluck("tema_asociado.tematica", &themes).Error; err != nil {
		return nil, fmt.Errorf("top themes: %w", err)
	}
	return themes, nil
}

// Candidates ranks books sharing any of the given themes, excluding anything
// the user completed or has in progress. Ordering: matching-theme count
// descending, then cached average rating descending with unrated books last,
// then book link ascending as the deterministic final key.
func (r *recommendationRepository) Candidates(ctx context.Context, userID string, themes []string, limit int) ([]Candidate, error) {
	if len(themes) == 0 {
		return []Candidate{}, nil
	}
	var rows []Candidate
	if err := r.db.WithContext(ctx).
		Table("libro").
		Select("libro.enlace AS link, libro.nombre AS title, libro.autor AS author, "+
			"libro.imagen_portada AS cover_url, COUNT(DISTINCT tema_asociado.tematica) AS matches, "+
			"libro.puntuacion_media AS average_rating").
		Joins("JOIN tema_asociado ON tema_asociado.enlace = libro.enlace").
		Where("tema_asociado.tematica IN ?", themes).
		Where("libro.enlace NOT IN (SELECT libro_id FROM leidos WHERE usuario_id = ?)", userID).
		Where("libro.enlace NOT IN (SELECT libro_id FROM en_proceso WHERE usuario_id = ?)", userID).
		Group("libro.enlace, libro.nombre, libro.autor, libro.imagen_portada, libro.puntuacion_media").
		Order("matches DESC").
		Order("COALESCE(libro.puntuacion_media, -1) DESC").
		Order("libro.enlace ASC").
		Limit(limit).
		Scan(&rows).Error; err != nil {
		return nil, fmt.Errorf("recommendation candidates: %w", err)
	}
	return rows, nil
}
