package repository

import (
	"context"
	"fmt"

	"bookhub/internal/http-api/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type FragmentRepository interface {
	Add(ctx context.Context, fragment *models.HighlightedFragment) error
	Remove(ctx context.Context, userID, bookLink string, page int) (bool, error)
	Exists(ctx context.Context, userID, bookLink string, page int) (bool, error)
	Pages(ctx context.Context, userID, bookLink string) ([]int, error)
}

type fragmentRepository struct {
	db *gorm.DB
}

func NewFragmentRepository(db *gorm.DB) FragmentRepository {
	return &fragmentRepository{db: db}
}

// Add is idempotent: highlighting an already highlighted page is a no-op.
func (r *fragmentRepository) Add(ctx context.Context, fragment *models.HighlightedFragment) error {
	if err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(fragment).Error; err != nil {
		if isUniqueViolation(err) {
			return nil
		}
		return fmt.Errorf("add highlighted fragment: %w", err)
	}
	return nil
}

func (r *fragmentRepository) Remove(ctx context.Context, userID, bookLink string, page int) (bool, error) {
	result := r.db.WithContext(ctx).
		Where("correo = ? AND enlace = ? AND pagina = ?", userID, bookLink, page).
		Delete(&models.HighlightedFragment{})
	if result.Error != nil {
		return false, fmt.Errorf("remove highlighted fragment: %w", result.Error)
	}
	return result.RowsAffected > 0, nil
}

func (r *fragmentRepository) Exists(ctx context.Context, userID, bookLink string, page int) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.HighlightedFragment{}).
		Where("correo = ? AND enlace = ? AND pagina = ?", userID, bookLink, page).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *fragmentRepository) Pages(ctx context.Context, userID, bookLink string) ([]int, error) {
	var pages []int
	if err := r.db.WithContext(ctx).
		Model(&models.HighlightedFragment{}).
		Where("correo = ? AND enlace = ?", userID, bookLink).
		Order("pagina ASC").
		Pluck("pagina", &pages).Error; err != nil {
		return nil, fmt.Errorf("highlighted pages: %w", err)
	}
	return pages, nil
}
