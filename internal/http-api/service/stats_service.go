package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"bookhub/internal/cache"
	"bookhub/internal/http-api/models"
	"bookhub/internal/http-api/repository"
)

// Default leaderboard sizes. The reader board shows a podium of three; the
// book board keeps the wider top-15 the web surface renders.
const (
	DefaultTopReaders = 3
	DefaultTopBooks   = 15
	topThemesPerYear  = 3
	topRatedPerYear   = 5
)

// Period selects a month or a whole year. Month == 0 means the whole year.
type Period struct {
	Year  int
	Month time.Month
}

// Bounds returns the half-open UTC interval [start, end) covered by the
// period; every aggregate query filters completions with it.
func (p Period) Bounds() (time.Time, time.Time) {
	if p.Month == 0 {
		start := time.Date(p.Year, time.January, 1, 0, 0, 0, 0, time.UTC)
		return start, start.AddDate(1, 0, 0)
	}
	start := time.Date(p.Year, p.Month, 1, 0, 0, 0, 0, time.UTC)
	return start, start.AddDate(0, 1, 0)
}

func (p Period) key() string {
	if p.Month == 0 {
		return fmt.Sprintf("%04d", p.Year)
	}
	return fmt.Sprintf("%04d-%02d", p.Year, int(p.Month))
}

// MonthlySummary aggregates one user's completions inside a month. Theme
// counts are deduplicated per book, not per association row.
type MonthlySummary struct {
	TotalCompleted int64                   `json:"total_libros_leidos"`
	Themes         []repository.ThemeCount `json:"tematicas"`
	Books          []models.Book           `json:"libros_leidos"`
}

// YearlySummary adds the in-progress count, the dominant themes and the
// user's own best-rated books for the year.
type YearlySummary struct {
	TotalCompleted int64                   `json:"libros_completados"`
	InProgress     int64                   `json:"libros_en_progreso"`
	TopThemes      []repository.ThemeCount `json:"tematicas_mas_leidas"`
	TopRated       []repository.RatedBook  `json:"libros_mas_valorados"`
	Books          []models.Book           `json:"libros_leidos"`
}

type StatsService interface {
	TopReaders(ctx context.Context, period Period, limit int) ([]repository.ReaderCount, error)
	TopBooks(ctx context.Context, period Period, limit int) ([]repository.BookCount, error)
	MonthlySummary(ctx context.Context, userID string, year int, month time.Month) (*MonthlySummary, error)
	YearlySummary(ctx context.Context, userID string, year int) (*YearlySummary, error)
}

type statsService struct {
	repo     repository.StatsRepository
	userRepo repository.UserRepository
	cache    *cache.Client
	logger   *slog.Logger
}

func NewStatsService(repo repository.StatsRepository, userRepo repository.UserRepository, cacheClient *cache.Client, logger *slog.Logger) StatsService {
	if logger == nil {
		logger = slog.Default()
	}
	return &statsService{
		repo:     repo,
		userRepo: userRepo,
		cache:    cacheClient,
		logger:   logger,
	}
}

// TopReaders returns the users with the most distinct completed books in the
// period. An empty board is an empty slice, not an error. Results are cached;
// a failing cache degrades to a direct query.
func (s *statsService) TopReaders(ctx context.Context, period Period, limit int) ([]repository.ReaderCount, error) {
	if limit <= 0 {
		limit = DefaultTopReaders
	}

	key := fmt.Sprintf("leaderboard:readers:%s:%d", period.key(), limit)
	var cached []repository.ReaderCount
	if hit, err := s.cache.GetJSON(ctx, key, &cached); err != nil {
		s.logger.Warn("leaderboard cache read failed", "key", key, "error", err)
	} else if hit {
		return cached, nil
	}

	start, end := period.Bounds()
	rows, err := s.repo.TopReaders(ctx, start, end, limit)
	if err != nil {
		return nil, err
	}
	if rows == nil {
		rows = []repository.ReaderCount{}
	}

	if err := s.cache.SetJSON(ctx, key, rows); err != nil {
		s.logger.Warn("leaderboard cache write failed", "key", key, "error", err)
	}
	return rows, nil
}

func (s *statsService) TopBooks(ctx context.Context, period Period, limit int) ([]repository.BookCount, error) {
	if limit <= 0 {
		limit = DefaultTopBooks
	}

	key := fmt.Sprintf("leaderboard:books:%s:%d", period.key(), limit)
	var cached []repository.BookCount
	if hit, err := s.cache.GetJSON(ctx, key, &cached); err != nil {
		s.logger.Warn("leaderboard cache read failed", "key", key, "error", err)
	} else if hit {
		return cached, nil
	}

	start, end := period.Bounds()
	rows, err := s.repo.TopBooks(ctx, start, end, limit)
	if err != nil {
		return nil, err
	}
	if rows == nil {
		rows = []repository.BookCount{}
	}

	if err := s.cache.SetJSON(ctx, key, rows); err != nil {
		s.logger.Warn("leaderboard cache write failed", "key", key, "error", err)
	}
	return rows, nil
}

func (s *statsService) MonthlySummary(ctx context.Context, userID string, year int, month time.Month) (*MonthlySummary, error) {
	if err := s.requireUser(ctx, userID); err != nil {
		return nil, err
	}
	start, end := Period{Year: year, Month: month}.Bounds()

	total, err := s.repo.CompletedCount(ctx, userID, start, end)
	if err != nil {
		return nil, err
	}
	themes, err := s.repo.ThemeCounts(ctx, userID, start, end, 0)
	if err != nil {
		return nil, err
	}
	books, err := s.repo.CompletedBooks(ctx, userID, start, end)
	if err != nil {
		return nil, err
	}

	return &MonthlySummary{
		TotalCompleted: total,
		Themes:         themes,
		Books:          books,
	}, nil
}

func (s *statsService) YearlySummary(ctx context.Context, userID string, year int) (*YearlySummary, error) {
	if err := s.requireUser(ctx, userID); err != nil {
		return nil, err
	}
	start, end := Period{Year: year}.Bounds()

	total, err := s.repo.CompletedCount(ctx, userID, start, end)
	if err != nil {
		return nil, err
	}
	inProgress, err := s.repo.InProgressCount(ctx, userID)
	if err != nil {
		return nil, err
	}
	topThemes, err := s.repo.ThemeCounts(ctx, userID, start, end, topThemesPerYear)
	if err != nil {
		return nil, err
	}
	topRated, err := s.repo.TopRatedByUser(ctx, userID, start, end, topRatedPerYear)
	if err != nil {
		return nil, err
	}
	books, err := s.repo.CompletedBooks(ctx, userID, start, end)
	if err != nil {
		return nil, err
	}

	return &YearlySummary{
		TotalCompleted: total,
		InProgress:     inProgress,
		TopThemes:      topThemes,
		TopRated:       topRated,
		Books:          books,
	}, nil
}

func (s *statsService) requireUser(ctx context.Context, userID string) error {
	exists, err := s.userRepo.Exists(ctx, userID)
	if err != nil {
		return err
	}
	if !exists {
		return ErrUserNotFound
	}
	return nil
}
