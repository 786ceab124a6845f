package service

import (
	"context"

	"bookhub/internal/http-api/repository"
)

const (
	recommendationThemes = 3
	recommendationLimit  = 10
)

type RecommendationService interface {
	Recommend(ctx context.Context, userID string) ([]repository.Candidate, error)
}

type recommendationService struct {
	repo     repository.RecommendationRepository
	userRepo repository.UserRepository
}

func NewRecommendationService(repo repository.RecommendationRepository, userRepo repository.UserRepository) RecommendationService {
	return &recommendationService{
		repo:     repo,
		userRepo: userRepo,
	}
}

// Recommend derives the user's top-3 themes from completed books and ranks
// unread candidates by theme overlap, then cached average rating. A user with
// no completed books gets an empty list, not an error.
func (s *recommendationService) Recommend(ctx context.Context, userID string) ([]repository.Candidate, error) {
	exists, err := s.userRepo.Exists(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, ErrUserNotFound
	}

	themes, err := s.repo.TopThemes(ctx, userID, recommendationThemes)
	if err != nil {
		return nil, err
	}
	if len(themes) == 0 {
		return []repository.Candidate{}, nil
	}

	candidates, err := s.repo.Candidates(ctx, userID, themes, recommendationLimit)
	if err != nil {
		return nil, err
	}
	if candidates == nil {
		candidates = []repository.Candidate{}
	}
	return candidates, nil
}
