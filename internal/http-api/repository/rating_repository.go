package repository

import (
	"fmt"

	"bookhub/internal/http-api/models"

	"gorm.io/gorm"
)

type RatingRepository interface {
	Create(rating *models.Rating) error
	GetByBook(bookLink string, page, pageSize int) ([]models.Rating, int64, error)
	GetByUserAndBook(userID, bookLink string) ([]models.Rating, error)
	CalculateAverageRating(bookLink string) (float64, error)
	CountRatings(bookLink string) (int64, error)
}

type ratingRepository struct {
	db *gorm.DB
}

func NewRatingRepository(db *gorm.DB) RatingRepository {
	return &ratingRepository{db: db}
}

// Create a new rating row; the (user, book, fecha) key makes re-reviews
// distinct rows rather than overwrites.
func (r *ratingRepository) Create(rating *models.Rating) error {
	return r.db.Create(rating).Error
}

// GetByBook retrieves all ratings for a book with pagination
func (r *ratingRepository) GetByBook(bookLink string, page, pageSize int) ([]models.Rating, int64, error) {
	var ratings []models.Rating
	var total int64

	if err := r.db.Model(&models.Rating{}).Where("libro_id = ?", bookLink).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * pageSize
	err := r.db.Where("libro_id = ?", bookLink).
		Order("fecha DESC").
		Limit(pageSize).
		Offset(offset).
		Find(&ratings).Error
	if err != nil {
		return nil, 0, err
	}

	return ratings, total, nil
}

func (r *ratingRepository) GetByUserAndBook(userID, bookLink string) ([]models.Rating, error) {
	var ratings []models.Rating
	if err := r.db.Where("usuario_id = ? AND libro_id = ?", userID, bookLink).
		Order("fecha DESC").
		Find(&ratings).Error; err != nil {
		return nil, fmt.Errorf("ratings by user and book: %w", err)
	}
	return ratings, nil
}

// CalculateAverageRating calculates the average score for a book
func (r *ratingRepository) CalculateAverageRating(bookLink string) (float64, error) {
	var avg struct {
		Average float64
	}
	err := r.db.Model(&models.Rating{}).
		Select("COALESCE(AVG(valor), 0) as average").
		Where("libro_id = ?", bookLink).
		Scan(&avg).Error
	if err != nil {
		return 0, err
	}
	return avg.Average, nil
}

// CountRatings counts the total number of ratings for a book
func (r *ratingRepository) CountRatings(bookLink string) (int64, error) {
	var count int64
	err := r.db.Model(&models.Rating{}).Where("libro_id = ?", bookLink).Count(&count).Error
	return count, err
}
