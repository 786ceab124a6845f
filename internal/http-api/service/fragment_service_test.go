package service

import (
	"context"
	"testing"

	"bookhub/internal/http-api/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newFragmentService(t *testing.T) FragmentService {
	t.Helper()
	db := newTestDB(t)
	seedUser(t, db, "ana@example.com", "Ana")
	seedBook(t, db, "https://books.example.com/a", "A", 100)

	return NewFragmentService(
		repository.NewFragmentRepository(db),
		repository.NewUserRepository(db),
		repository.NewBookRepo(db),
	)
}

func TestHighlightValidatesPageRange(t *testing.T) {
	svc := newFragmentService(t)
	ctx := context.Background()

	err := svc.Highlight(ctx, "ana@example.com", "https://books.example.com/a", 0)
	assert.ErrorIs(t, err, ErrPageOutOfRange)

	err = svc.Highlight(ctx, "ana@example.com", "https://books.example.com/a", 101)
	assert.ErrorIs(t, err, ErrPageOutOfRange)
}

func TestHighlightRoundTrip(t *testing.T) {
	svc := newFragmentService(t)
	ctx := context.Background()
	user, book := "ana@example.com", "https://books.example.com/a"

	require.NoError(t, svc.Highlight(ctx, user, book, 42))
	// repeat is a no-op
	require.NoError(t, svc.Highlight(ctx, user, book, 42))
	require.NoError(t, svc.Highlight(ctx, user, book, 7))

	ok, err := svc.IsHighlighted(ctx, user, book, 42)
	require.NoError(t, err)
	assert.True(t, ok)

	pages, err := svc.Pages(ctx, user, book)
	require.NoError(t, err)
	assert.Equal(t, []int{7, 42}, pages)

	require.NoError(t, svc.Unhighlight(ctx, user, book, 42))
	ok, err = svc.IsHighlighted(ctx, user, book, 42)
	require.NoError(t, err)
	assert.False(t, ok)

	err = svc.Unhighlight(ctx, user, book, 42)
	assert.ErrorIs(t, err, ErrFragmentNotFound)
}
