package service

import (
	"context"
	"errors"

	"bookhub/internal/http-api/models"
	"bookhub/internal/http-api/repository"

	"gorm.io/gorm"
)

type FragmentService interface {
	Highlight(ctx context.Context, userID, bookLink string, page int) error
	Unhighlight(ctx context.Context, userID, bookLink string, page int) error
	IsHighlighted(ctx context.Context, userID, bookLink string, page int) (bool, error)
	Pages(ctx context.Context, userID, bookLink string) ([]int, error)
}

type fragmentService struct {
	repo     repository.FragmentRepository
	userRepo repository.UserRepository
	bookRepo *repository.BookRepo
}

func NewFragmentService(repo repository.FragmentRepository, userRepo repository.UserRepository, bookRepo *repository.BookRepo) FragmentService {
	return &fragmentService{
		repo:     repo,
		userRepo: userRepo,
		bookRepo: bookRepo,
	}
}

// Highlight bookmarks a page; the page must fall inside the book's range.
// Highlighting the same page twice is a no-op.
func (s *fragmentService) Highlight(ctx context.Context, userID, bookLink string, page int) error {
	book, err := s.validatePair(ctx, userID, bookLink)
	if err != nil {
		return err
	}
	if page < 1 || page > book.PageCount {
		return ErrPageOutOfRange
	}
	return s.repo.Add(ctx, &models.HighlightedFragment{
		BookLink: bookLink,
		UserID:   userID,
		Page:     page,
	})
}

func (s *fragmentService) Unhighlight(ctx context.Context, userID, bookLink string, page int) error {
	removed, err := s.repo.Remove(ctx, userID, bookLink, page)
	if err != nil {
		return err
	}
	if !removed {
		return ErrFragmentNotFound
	}
	return nil
}

func (s *fragmentService) IsHighlighted(ctx context.Context, userID, bookLink string, page int) (bool, error) {
	return s.repo.Exists(ctx, userID, bookLink, page)
}

func (s *fragmentService) Pages(ctx context.Context, userID, bookLink string) ([]int, error) {
	return s.repo.Pages(ctx, userID, bookLink)
}

func (s *fragmentService) validatePair(ctx context.Context, userID, bookLink string) (*models.Book, error) {
	exists, err := s.userRepo.Exists(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, ErrUserNotFound
	}
	book, err := s.bookRepo.GetByLink(ctx, bookLink)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBookNotFound
		}
		return nil, err
	}
	return book, nil
}
