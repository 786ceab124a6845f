package service

import (
	"context"
	"errors"
	"time"

	"bookhub/internal/http-api/models"
	"bookhub/internal/http-api/repository"

	"gorm.io/gorm"
)

// ReadingState is derived from the store, never written directly:
// a book is InProgress while an en_proceso row exists and Completed once a
// leidos row exists. Re-reading a completed book makes both true; the
// completion fact is preserved.
type ReadingState string

const (
	StateUnstarted  ReadingState = "unstarted"
	StateInProgress ReadingState = "in_progress"
	StateCompleted  ReadingState = "completed"
)

type ProgressService interface {
	SetProgress(ctx context.Context, userID, bookLink string, page int) (int, error)
	CurrentPage(ctx context.Context, userID, bookLink string) (int, error)
	Complete(ctx context.Context, userID, bookLink string) error
	Abandon(ctx context.Context, userID, bookLink string) error
	State(ctx context.Context, userID, bookLink string) (ReadingState, error)
}

type progressService struct {
	repo     repository.ProgressRepository
	userRepo repository.UserRepository
	bookRepo *repository.BookRepo
	now      func() time.Time
}

func NewProgressService(repo repository.ProgressRepository, userRepo repository.UserRepository, bookRepo *repository.BookRepo) ProgressService {
	return &progressService{
		repo:     repo,
		userRepo: userRepo,
		bookRepo: bookRepo,
		now:      time.Now,
	}
}

// SetProgress validates the pair and the page bound, then upserts the
// current page. Returns the stored page.
func (s *progressService) SetProgress(ctx context.Context, userID, bookLink string, page int) (int, error) {
	book, err := s.validatePair(ctx, userID, bookLink)
	if err != nil {
		return 0, err
	}
	if page < 1 || page > book.PageCount {
		return 0, ErrPageOutOfRange
	}

	progress := &models.ReadingProgress{
		UserID:   userID,
		BookLink: bookLink,
		Page:     page,
	}
	if err := s.repo.Upsert(ctx, progress); err != nil {
		return 0, err
	}
	return progress.Page, nil
}

// CurrentPage returns the saved page, defaulting to page 1 when no progress
// exists. In the no-progress case the book is registered in the user's
// "En proceso" bucket so the reader surface can discover it.
func (s *progressService) CurrentPage(ctx context.Context, userID, bookLink string) (int, error) {
	if _, err := s.validatePair(ctx, userID, bookLink); err != nil {
		return 0, err
	}

	progress, err := s.repo.Get(ctx, userID, bookLink)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			if err := s.repo.RegisterInProgress(ctx, userID, bookLink); err != nil {
				return 0, err
			}
			return 1, nil
		}
		return 0, err
	}
	return progress.Page, nil
}

// Complete runs the atomic completion transaction. Calling it again later
// refreshes the completion timestamp without duplicating anything.
func (s *progressService) Complete(ctx context.Context, userID, bookLink string) error {
	if _, err := s.validatePair(ctx, userID, bookLink); err != nil {
		return err
	}
	return s.repo.Complete(ctx, userID, bookLink, s.now())
}

// Abandon drops the progress row; absence is not an error.
func (s *progressService) Abandon(ctx context.Context, userID, bookLink string) error {
	if _, err := s.validatePair(ctx, userID, bookLink); err != nil {
		return err
	}
	_, err := s.repo.Delete(ctx, userID, bookLink)
	return err
}

func (s *progressService) State(ctx context.Context, userID, bookLink string) (ReadingState, error) {
	if _, err := s.validatePair(ctx, userID, bookLink); err != nil {
		return "", err
	}

	if _, err := s.repo.Get(ctx, userID, bookLink); err == nil {
		return StateInProgress, nil
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return "", err
	}

	completed, err := s.repo.HasCompleted(ctx, userID, bookLink)
	if err != nil {
		return "", err
	}
	if completed {
		return StateCompleted, nil
	}
	return StateUnstarted, nil
}

func (s *progressService) validatePair(ctx context.Context, userID, bookLink string) (*models.Book, error) {
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
