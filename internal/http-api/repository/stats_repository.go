package repository

import (
	"context"
	"fmt"
	"time"

	"bookhub/internal/http-api/models"

	"gorm.io/gorm"
)

// ReaderCount is one leaderboard row for the top-readers query.
type ReaderCount struct {
	UserID string `json:"usuario_id"`
	Name   string `json:"nombre"`
	Total  int64  `json:"total"`
}

// BookCount is one leaderboard row for the top-books query.
type BookCount struct {
	Link   string  `json:"enlace"`
	Title  string  `json:"nombre"`
	Author *string `json:"autor,omitempty"`
	Total  int64   `json:"total"`
}

type ThemeCount struct {
	Theme string `json:"tematica"`
	Total int64  `json:"total"`
}

// RatedBook is a book scored by one user's own average across their reviews.
type RatedBook struct {
	Link    string  `json:"enlace"`
	Title   string  `json:"nombre"`
	Average float64 `json:"puntuacion"`
}

type StatsRepository interface {
	TopReaders(ctx context.Context, start, end time.Time, limit int) ([]ReaderCount, error)
	TopBooks(ctx context.Context, start, end time.Time, limit int) ([]BookCount, error)
	CompletedCount(ctx context.Context, userID string, start, end time.Time) (int64, error)
	CompletedBooks(ctx context.Context, userID string, start, end time.Time) ([]models.Book, error)
	ThemeCounts(ctx context.Context, userID string, start, end time.Time, limit int) ([]ThemeCount, error)
	InProgressCount(ctx context.Context, userID string) (int64, error)
	TopRatedByUser(ctx context.Context, userID string, start, end time.Time, limit int) ([]RatedBook, error)
}

type statsRepository struct {
	db *gorm.DB
}

func NewStatsRepository(db *gorm.DB) StatsRepository {
	return &statsRepository{db: db}
}

// TopReaders groups completions inside [start, end) by user. Ties on the
// count are broken by ascending user id so the ordering is deterministic.
func (r *statsRepository) TopReaders(ctx context.Context, start, end time.Time, limit int) ([]ReaderCount, error) {
	var rows []ReaderCount
	if err := r.db.WithContext(ctx).
		Table("leidos").
		Select("leidos.usuario_id AS user_id, usuario.nombre AS name, COUNT(DISTINCT leidos.libro_id) AS total").
		Joins("JOIN usuario ON usuario.correo = leidos.usuario_id").
		Where("leidos.fecha_fin_lectura >= ? AND leidos.fecha_fin_lectura < ?", start, end).
		Group("leidos.usuario_id, usuario.nombre").
		Order("total DESC").
		Order("leidos.usuario_id ASC").
		Limit(limit).
		Scan(&rows).Error; err != nil {
		return nil, fmt.Errorf("top readers: %w", err)
	}
	return rows, nil
}

// TopBooks is the symmetric leaderboard, grouped by book; ties are broken by
// ascending book link.
func (r *statsRepository) TopBooks(ctx context.Context, start, end time.Time, limit int) ([]BookCount, error) {
	var rows []BookCount
	if err := r.db.WithContext(ctx).
		Table("leidos").
		Select("leidos.libro_id AS link, libro.nombre AS title, libro.autor AS author, COUNT(DISTINCT leidos.usuario_id) AS total").
		Joins("JOIN libro ON libro.enlace = leidos.libro_id").
		Where("leidos.fecha_fin_lectura >= ? AND leidos.fecha_fin_lectura < ?", start, end).
		Group("leidos.libro_id, libro.nombre, libro.autor").
		Order("total DESC").
		Order("leidos.libro_id ASC").
		Limit(limit).
		Scan(&rows).Error; err != nil {
		return nil, fmt.Errorf("top books: %w", err)
	}
	return rows, nil
}

func (r *statsRepository) CompletedCount(ctx context.Context, userID string, start, end time.Time) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.CompletedReading{}).
		Where("usuario_id = ? AND fecha_fin_lectura >= ? AND fecha_fin_lectura < ?", userID, start, end).
		Count(&count).Error; err != nil {
		return 0, fmt.Errorf("completed count: %w", err)
	}
	return count, nil
}

func (r *statsRepository) CompletedBooks(ctx context.Context, userID string, start, end time.Time) ([]models.Book, error) {
	var books []models.Book
	if err := r.db.WithContext(ctx).
		Table("libro").
		Select("libro.*").
		Joins("JOIN leidos ON leidos.libro_id = libro.enlace").
		Where("leidos.usuario_id = ? AND leidos.fecha_fin_lectura >= ? AND leidos.fecha_fin_lectura < ?", userID, start, end).
		Order("leidos.fecha_fin_lectura DESC").
		Find(&books).Error; err != nil {
		return nil, fmt.Errorf("completed books: %w", err)
	}
	return books, nil
}

// ThemeCounts counts completed books per theme for one user. The count is
// per book, not per association row, so a book with a theme counts once.
// limit <= 0 means no limit.
func (r *statsRepository) ThemeCounts(ctx context.Context, userID string, start, end time.Time, limit int) ([]ThemeCount, error) {
	var rows []ThemeCount
	query := r.db.WithContext(ctx).
		Table("tema_asociado").
		Select("tema_asociado.tematica AS theme, COUNT(DISTINCT leidos.libro_id) AS total").
		Joins("JOIN leidos ON leidos.libro_id = tema_asociado.enlace").
		Where("leidos.usuario_id = ? AND leidos.fecha_fin_lectura >= ? AND leidos.fecha_fin_lectura < ?", userID, start, end).
		Group("tema_asociado.tematica").
		Order("total DESC").
		Order("tema_asociado.tematica ASC")
	if limit > 0 {
		query = query.Limit(limit)
	}
	if err := query.Scan(&rows).Error; err != nil {
		return nil, fmt.Errorf("theme counts: %w", err)
	}
	return rows, nil
}

func (r *statsRepository) InProgressCount(ctx context.Context, userID string) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.ReadingProgress{}).
		Where("usuario_id = ?", userID).
		Count(&count).Error; err != nil {
		return 0, fmt.Errorf("in-progress count: %w", err)
	}
	return count, nil
}

// TopRatedByUser ranks books by the user's own average score across the
// reviews they submitted inside [start, end).
func (r *statsRepository) TopRatedByUser(ctx context.Context, userID string, start, end time.Time, limit int) ([]RatedBook, error) {
	var rows []RatedBook
	if err := r.db.WithContext(ctx).
		Table("opinion").
		Select("opinion.libro_id AS link, libro.nombre AS title, AVG(opinion.valor) AS average").
		Joins("JOIN libro ON libro.enlace = opinion.libro_id").
		Where("opinion.usuario_id = ? AND opinion.fecha >= ? AND opinion.fecha < ?", userID, start, end).
		Group("opinion.libro_id, libro.nombre").
		Order("average DESC").
		Order("opinion.libro_id ASC").
		Limit(limit).
		Scan(&rows).Error; err != nil {
		return nil, fmt.Errorf("top rated by user: %w", err)
	}
	return rows, nil
}
