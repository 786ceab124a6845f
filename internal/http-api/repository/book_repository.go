package repository

import (
	"context"
	"fmt"

	"bookhub/internal/http-api/models"

	"gorm.io/gorm"
)

// BookRepo is read-only except for the cached average rating; the catalog
// importer owns everything else on the libro table.
type BookRepo struct {
	db *gorm.DB
}

func NewBookRepo(db *gorm.DB) *BookRepo {
	return &BookRepo{db: db}
}

func (r *BookRepo) GetByLink(ctx context.Context, link string) (*models.Book, error) {
	var b models.Book
	if err := r.db.WithContext(ctx).Where("enlace = ?", link).First(&b).Error; err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *BookRepo) Exists(ctx context.Context, link string) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.Book{}).
		Where("enlace = ?", link).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// ThemesOf returns the theme names associated with a book.
func (r *BookRepo) ThemesOf(ctx context.Context, link string) ([]string, error) {
	var themes []string
	if err := r.db.WithContext(ctx).
		Model(&models.ThemeAssociation{}).
		Where("enlace = ?", link).
		Order("tematica ASC").
		Pluck("tematica", &themes).Error; err != nil {
		return nil, fmt.Errorf("themes of book: %w", err)
	}
	return themes, nil
}

func (r *BookRepo) UpdateAverageRating(ctx context.Context, link string, avg float64) error {
	if err := r.db.WithContext(ctx).
		Model(&models.Book{}).
		Where("enlace = ?", link).
		Update("puntuacion_media", avg).Error; err != nil {
		return fmt.Errorf("update average rating: %w", err)
	}
	return nil
}
