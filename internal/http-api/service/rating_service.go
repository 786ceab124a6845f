package service

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"bookhub/internal/http-api/models"
	"bookhub/internal/http-api/repository"

	"gorm.io/gorm"
)

type RatingService interface {
	Create(ctx context.Context, userID, bookLink, title, body string, score int) (*models.Rating, error)
	ForBook(ctx context.Context, bookLink string, page, pageSize int) ([]models.Rating, int64, error)
	ByUserForBook(ctx context.Context, userID, bookLink string) ([]models.Rating, error)
	AverageFor(ctx context.Context, bookLink string) (float64, int64, error)
}

type ratingService struct {
	repo     repository.RatingRepository
	userRepo repository.UserRepository
	bookRepo *repository.BookRepo
	logger   *slog.Logger
	now      func() time.Time
}

func NewRatingService(repo repository.RatingRepository, userRepo repository.UserRepository, bookRepo *repository.BookRepo, logger *slog.Logger) RatingService {
	if logger == nil {
		logger = slog.Default()
	}
	return &ratingService{
		repo:     repo,
		userRepo: userRepo,
		bookRepo: bookRepo,
		logger:   logger,
		now:      time.Now,
	}
}

// Create stores a review keyed by submission time and refreshes the book's
// cached average. The cache refresh is best effort; the review itself is
// already committed.
func (s *ratingService) Create(ctx context.Context, userID, bookLink, title, body string, score int) (*models.Rating, error) {
	if score < 1 || score > 5 {
		return nil, ErrInvalidScore
	}

	exists, err := s.userRepo.Exists(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, ErrUserNotFound
	}
	if _, err := s.bookRepo.GetByLink(ctx, bookLink); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBookNotFound
		}
		return nil, err
	}

	rating := &models.Rating{
		UserID:      userID,
		BookLink:    bookLink,
		SubmittedAt: s.now(),
		Title:       title,
		Body:        body,
		Score:       score,
	}
	if err := s.repo.Create(rating); err != nil {
		return nil, err
	}

	if err := s.refreshAverage(ctx, bookLink); err != nil {
		s.logger.Warn("average rating cache refresh failed", "book", bookLink, "error", err)
	}
	return rating, nil
}

func (s *ratingService) ForBook(ctx context.Context, bookLink string, page, pageSize int) ([]models.Rating, int64, error) {
	if _, err := s.bookRepo.GetByLink(ctx, bookLink); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, 0, ErrBookNotFound
		}
		return nil, 0, err
	}
	return s.repo.GetByBook(bookLink, page, pageSize)
}

func (s *ratingService) ByUserForBook(ctx context.Context, userID, bookLink string) ([]models.Rating, error) {
	return s.repo.GetByUserAndBook(userID, bookLink)
}

func (s *ratingService) AverageFor(ctx context.Context, bookLink string) (float64, int64, error) {
	if _, err := s.bookRepo.GetByLink(ctx, bookLink); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, 0, ErrBookNotFound
		}
		return 0, 0, err
	}
	avg, err := s.repo.CalculateAverageRating(bookLink)
	if err != nil {
		return 0, 0, err
	}
	count, err := s.repo.CountRatings(bookLink)
	if err != nil {
		return 0, 0, err
	}
	return avg, count, nil
}

// refreshAverage recomputes and stores puntuacion_media on the book row.
func (s *ratingService) refreshAverage(ctx context.Context, bookLink string) error {
	avg, err := s.repo.CalculateAverageRating(bookLink)
	if err != nil {
		return err
	}
	return s.bookRepo.UpdateAverageRating(ctx, bookLink, avg)
}
