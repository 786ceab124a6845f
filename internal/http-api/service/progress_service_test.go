package service

import (
	"context"
	"testing"
	"time"

	"bookhub/internal/http-api/models"
	"bookhub/internal/http-api/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newProgressService(t *testing.T) (ProgressService, *progressService) {
	t.Helper()
	db := newTestDB(t)
	seedUser(t, db, "ana@example.com", "Ana")
	seedBook(t, db, "https://books.example.com/quijote", "Don Quijote", 500)

	svc := NewProgressService(
		repository.NewProgressRepository(db),
		repository.NewUserRepository(db),
		repository.NewBookRepo(db),
	)
	impl := svc.(*progressService)
	return svc, impl
}

func TestSetProgressValidatesPageBounds(t *testing.T) {
	svc, _ := newProgressService(t)
	ctx := context.Background()

	_, err := svc.SetProgress(ctx, "ana@example.com", "https://books.example.com/quijote", 0)
	assert.ErrorIs(t, err, ErrPageOutOfRange)

	_, err = svc.SetProgress(ctx, "ana@example.com", "https://books.example.com/quijote", 501)
	assert.ErrorIs(t, err, ErrPageOutOfRange)

	page, err := svc.SetProgress(ctx, "ana@example.com", "https://books.example.com/quijote", 500)
	require.NoError(t, err)
	assert.Equal(t, 500, page)
}

func TestSetProgressRejectsUnknownPair(t *testing.T) {
	svc, _ := newProgressService(t)
	ctx := context.Background()

	_, err := svc.SetProgress(ctx, "nadie@example.com", "https://books.example.com/quijote", 10)
	assert.ErrorIs(t, err, ErrUserNotFound)

	_, err = svc.SetProgress(ctx, "ana@example.com", "https://books.example.com/nada", 10)
	assert.ErrorIs(t, err, ErrBookNotFound)
}

func TestCurrentPageDefaultsToOneAndRegistersBook(t *testing.T) {
	db := newTestDB(t)
	seedUser(t, db, "ana@example.com", "Ana")
	seedBook(t, db, "https://books.example.com/quijote", "Don Quijote", 500)
	svc := NewProgressService(
		repository.NewProgressRepository(db),
		repository.NewUserRepository(db),
		repository.NewBookRepo(db),
	)
	ctx := context.Background()

	page, err := svc.CurrentPage(ctx, "ana@example.com", "https://books.example.com/quijote")
	require.NoError(t, err)
	assert.Equal(t, 1, page)

	// the book landed in the "En proceso" bucket as a side effect
	var items int64
	require.NoError(t, db.Model(&models.ListItem{}).
		Where("usuario_id = ? AND nombre_lista = ?", "ana@example.com", models.InProgressList).
		Count(&items).Error)
	assert.Equal(t, int64(1), items)
}

func TestCurrentPageReturnsSavedPage(t *testing.T) {
	svc, _ := newProgressService(t)
	ctx := context.Background()

	_, err := svc.SetProgress(ctx, "ana@example.com", "https://books.example.com/quijote", 123)
	require.NoError(t, err)

	page, err := svc.CurrentPage(ctx, "ana@example.com", "https://books.example.com/quijote")
	require.NoError(t, err)
	assert.Equal(t, 123, page)
}

func TestStateTransitions(t *testing.T) {
	svc, impl := newProgressService(t)
	impl.now = func() time.Time { return time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC) }
	ctx := context.Background()
	user, book := "ana@example.com", "https://books.example.com/quijote"

	state, err := svc.State(ctx, user, book)
	require.NoError(t, err)
	assert.Equal(t, StateUnstarted, state)

	_, err = svc.SetProgress(ctx, user, book, 50)
	require.NoError(t, err)
	state, err = svc.State(ctx, user, book)
	require.NoError(t, err)
	assert.Equal(t, StateInProgress, state)

	require.NoError(t, svc.Complete(ctx, user, book))
	state, err = svc.State(ctx, user, book)
	require.NoError(t, err)
	assert.Equal(t, StateCompleted, state)

	// re-reading a completed book shows in_progress again but keeps the
	// completion fact
	_, err = svc.SetProgress(ctx, user, book, 10)
	require.NoError(t, err)
	state, err = svc.State(ctx, user, book)
	require.NoError(t, err)
	assert.Equal(t, StateInProgress, state)
}

func TestAbandonIsSilentWhenNothingSaved(t *testing.T) {
	svc, _ := newProgressService(t)
	ctx := context.Background()

	require.NoError(t, svc.Abandon(ctx, "ana@example.com", "https://books.example.com/quijote"))
}
