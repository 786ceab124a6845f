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

func newRecommendationService(t *testing.T) (RecommendationService, *gorm.DB) {
	t.Helper()
	db := newTestDB(t)
	svc := NewRecommendationService(
		repository.NewRecommendationRepository(db),
		repository.NewUserRepository(db),
	)
	return svc, db
}

func TestRecommendEmptyForNewUser(t *testing.T) {
	svc, db := newRecommendationService(t)
	seedUser(t, db, "ana@example.com", "Ana")

	candidates, err := svc.Recommend(context.Background(), "ana@example.com")
	require.NoError(t, err)
	assert.NotNil(t, candidates)
	assert.Empty(t, candidates)
}

func TestRecommendUnknownUser(t *testing.T) {
	svc, _ := newRecommendationService(t)

	_, err := svc.Recommend(context.Background(), "nadie@example.com")
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestRecommendSuggestsUnreadBooksByTheme(t *testing.T) {
	svc, db := newRecommendationService(t)
	ctx := context.Background()

	seedUser(t, db, "ana@example.com", "Ana")
	addThemed := func(link string, themes ...string) {
		seedBook(t, db, "https://books.example.com/"+link, link, 100)
		for _, th := range themes {
			db.Create(&models.Theme{Name: th})
			require.NoError(t, db.Create(&models.ThemeAssociation{
				BookLink: "https://books.example.com/" + link, Theme: th,
			}).Error)
		}
	}
	addThemed("leido1", "Ficción", "Misterio")
	addThemed("leido2", "Ficción")
	addThemed("candidato", "Ficción", "Misterio")
	addThemed("ajeno", "Poesía")

	at := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)
	for _, l := range []string{"leido1", "leido2"} {
		require.NoError(t, db.Create(&models.CompletedReading{
			UserID: "ana@example.com", BookLink: "https://books.example.com/" + l, FinishedAt: at,
		}).Error)
	}

	candidates, err := svc.Recommend(ctx, "ana@example.com")
	require.NoError(t, err)
	require.Len(t, candidates, 1)
	assert.Equal(t, "https://books.example.com/candidato", candidates[0].Link)
	assert.Equal(t, int64(2), candidates[0].Matches)
}
