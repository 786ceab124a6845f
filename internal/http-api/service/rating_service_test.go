package service

import (
	"context"
	"testing"
	"time"

	"bookhub/internal/http-api/models"
	"bookhub/internal/http-api/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newRatingService(t *testing.T) (RatingService, *ratingService, *gorm.DB) {
	t.Helper()
	db := newTestDB(t)
	seedUser(t, db, "ana@example.com", "Ana")
	seedBook(t, db, "https://books.example.com/a", "A", 100)

	svc := NewRatingService(
		repository.NewRatingRepository(db),
		repository.NewUserRepository(db),
		repository.NewBookRepo(db),
		nil,
	)
	return svc, svc.(*ratingService), db
}

func TestCreateRatingValidatesScore(t *testing.T) {
	svc, _, _ := newRatingService(t)
	ctx := context.Background()

	_, err := svc.Create(ctx, "ana@example.com", "https://books.example.com/a", "t", "", 0)
	assert.ErrorIs(t, err, ErrInvalidScore)

	_, err = svc.Create(ctx, "ana@example.com", "https://books.example.com/a", "t", "", 6)
	assert.ErrorIs(t, err, ErrInvalidScore)
}

func TestCreateRatingRefreshesBookAverage(t *testing.T) {
	svc, impl, db := newRatingService(t)
	ctx := context.Background()

	base := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	times := []time.Time{base, base.Add(time.Hour)}
	i := 0
	impl.now = func() time.Time { at := times[i]; i++; return at }

	_, err := svc.Create(ctx, "ana@example.com", "https://books.example.com/a", "bien", "", 5)
	require.NoError(t, err)
	_, err = svc.Create(ctx, "ana@example.com", "https://books.example.com/a", "regular", "", 3)
	require.NoError(t, err)

	var book models.Book
	require.NoError(t, db.First(&book, "enlace = ?", "https://books.example.com/a").Error)
	require.NotNil(t, book.AverageRating)
	assert.InDelta(t, 4.0, *book.AverageRating, 0.001)

	avg, count, err := svc.AverageFor(ctx, "https://books.example.com/a")
	require.NoError(t, err)
	assert.InDelta(t, 4.0, avg, 0.001)
	assert.Equal(t, int64(2), count)
}

func TestCreateRatingUnknownTargets(t *testing.T) {
	svc, _, _ := newRatingService(t)
	ctx := context.Background()

	_, err := svc.Create(ctx, "nadie@example.com", "https://books.example.com/a", "t", "", 4)
	assert.ErrorIs(t, err, ErrUserNotFound)

	_, err = svc.Create(ctx, "ana@example.com", "https://books.example.com/nada", "t", "", 4)
	assert.ErrorIs(t, err, ErrBookNotFound)
}

func TestForBookPagination(t *testing.T) {
	svc, impl, _ := newRatingService(t)
	ctx := context.Background()

	base := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	i := 0
	impl.now = func() time.Time { at := base.Add(time.Duration(i) * time.Hour); i++; return at }

	for n := 0; n < 5; n++ {
		_, err := svc.Create(ctx, "ana@example.com", "https://books.example.com/a", "r", "", 4)
		require.NoError(t, err)
	}

	page1, total, err := svc.ForBook(ctx, "https://books.example.com/a", 1, 2)
	require.NoError(t, err)
	assert.Equal(t, int64(5), total)
	require.Len(t, page1, 2)

	page3, _, err := svc.ForBook(ctx, "https://books.example.com/a", 3, 2)
	require.NoError(t, err)
	assert.Len(t, page3, 1)
}
