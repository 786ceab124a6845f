package repository

import (
	"context"
	"testing"

	"bookhub/internal/http-api/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListCreateReportsConflict(t *testing.T) {
	db := newTestDB(t)
	repo := NewListRepository(db)
	ctx := context.Background()

	seedUser(t, db, "ana@example.com", "Ana")

	created, err := repo.Create(ctx, &models.List{Name: "Verano", UserID: "ana@example.com"})
	require.NoError(t, err)
	assert.True(t, created)

	created, err = repo.Create(ctx, &models.List{Name: "Verano", UserID: "ana@example.com"})
	require.NoError(t, err)
	assert.False(t, created)

	// same name under another user is a different list
	seedUser(t, db, "bea@example.com", "Bea")
	created, err = repo.Create(ctx, &models.List{Name: "Verano", UserID: "bea@example.com"})
	require.NoError(t, err)
	assert.True(t, created)
}

func TestListRenameCarriesMemberships(t *testing.T) {
	db := newTestDB(t)
	repo := NewListRepository(db)
	ctx := context.Background()

	seedUser(t, db, "ana@example.com", "Ana")
	seedBook(t, db, "https://books.example.com/a", "A", 100)
	seedBook(t, db, "https://books.example.com/b", "B", 100)

	_, err := repo.Create(ctx, &models.List{Name: "Verano", UserID: "ana@example.com"})
	require.NoError(t, err)
	require.NoError(t, repo.AddItem(ctx, "ana@example.com", "Verano", "https://books.example.com/a"))
	require.NoError(t, repo.AddItem(ctx, "ana@example.com", "Verano", "https://books.example.com/b"))

	require.NoError(t, repo.Rename(ctx, "ana@example.com", "Verano", "Invierno"))

	books, err := repo.Items(ctx, "ana@example.com", "Invierno")
	require.NoError(t, err)
	assert.Len(t, books, 2)

	var orphans int64
	require.NoError(t, db.Model(&models.ListItem{}).
		Where("nombre_lista = ?", "Verano").Count(&orphans).Error)
	assert.Equal(t, int64(0), orphans)
}

func TestListRenameRejectsTakenName(t *testing.T) {
	db := newTestDB(t)
	repo := NewListRepository(db)
	ctx := context.Background()

	seedUser(t, db, "ana@example.com", "Ana")
	_, err := repo.Create(ctx, &models.List{Name: "Uno", UserID: "ana@example.com"})
	require.NoError(t, err)
	_, err = repo.Create(ctx, &models.List{Name: "Dos", UserID: "ana@example.com"})
	require.NoError(t, err)

	err = repo.Rename(ctx, "ana@example.com", "Uno", "Dos")
	require.Error(t, err)

	// both lists untouched
	_, err = repo.Get(ctx, "ana@example.com", "Uno")
	require.NoError(t, err)
	_, err = repo.Get(ctx, "ana@example.com", "Dos")
	require.NoError(t, err)
}

func TestListDeleteCascadesMemberships(t *testing.T) {
	db := newTestDB(t)
	repo := NewListRepository(db)
	ctx := context.Background()

	seedUser(t, db, "ana@example.com", "Ana")
	seedBook(t, db, "https://books.example.com/a", "A", 100)

	_, err := repo.Create(ctx, &models.List{Name: "Verano", UserID: "ana@example.com"})
	require.NoError(t, err)
	require.NoError(t, repo.AddItem(ctx, "ana@example.com", "Verano", "https://books.example.com/a"))

	deleted, err := repo.Delete(ctx, "ana@example.com", "Verano")
	require.NoError(t, err)
	assert.True(t, deleted)

	var items int64
	require.NoError(t, db.Model(&models.ListItem{}).Count(&items).Error)
	assert.Equal(t, int64(0), items)

	deleted, err = repo.Delete(ctx, "ana@example.com", "Verano")
	require.NoError(t, err)
	assert.False(t, deleted)
}

func TestListAddItemIsIdempotent(t *testing.T) {
	db := newTestDB(t)
	repo := NewListRepository(db)
	ctx := context.Background()

	seedUser(t, db, "ana@example.com", "Ana")
	seedBook(t, db, "https://books.example.com/a", "A", 100)

	_, err := repo.Create(ctx, &models.List{Name: "Verano", UserID: "ana@example.com"})
	require.NoError(t, err)

	require.NoError(t, repo.AddItem(ctx, "ana@example.com", "Verano", "https://books.example.com/a"))
	require.NoError(t, repo.AddItem(ctx, "ana@example.com", "Verano", "https://books.example.com/a"))

	books, err := repo.Items(ctx, "ana@example.com", "Verano")
	require.NoError(t, err)
	assert.Len(t, books, 1)
}
