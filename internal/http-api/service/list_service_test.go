package service

import (
	"context"
	"testing"

	"bookhub/internal/http-api/models"
	"bookhub/internal/http-api/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newListService(t *testing.T) (ListService, *gorm.DB) {
	t.Helper()
	db := newTestDB(t)
	seedUser(t, db, "ana@example.com", "Ana")
	seedBook(t, db, "https://books.example.com/a", "A", 100)

	svc := NewListService(
		repository.NewListRepository(db),
		repository.NewUserRepository(db),
		repository.NewBookRepo(db),
	)
	return svc, db
}

func TestCreateListConflict(t *testing.T) {
	svc, _ := newListService(t)
	ctx := context.Background()

	_, err := svc.CreateList(ctx, "ana@example.com", "Verano", "", false, nil)
	require.NoError(t, err)

	_, err = svc.CreateList(ctx, "ana@example.com", "Verano", "otra", true, nil)
	assert.ErrorIs(t, err, ErrListExists)
}

func TestCreateListRequiresUser(t *testing.T) {
	svc, _ := newListService(t)

	_, err := svc.CreateList(context.Background(), "nadie@example.com", "Verano", "", false, nil)
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestFavoritesCannotBeRenamedOrDeleted(t *testing.T) {
	svc, _ := newListService(t)
	ctx := context.Background()

	require.NoError(t, svc.EnsureFavorites(ctx, "ana@example.com"))

	err := svc.RenameList(ctx, "ana@example.com", models.FavoritesList, "Otra")
	assert.ErrorIs(t, err, ErrFavoritesProtected)

	err = svc.DeleteList(ctx, "ana@example.com", models.FavoritesList)
	assert.ErrorIs(t, err, ErrFavoritesProtected)

	// the list is still there
	_, err = svc.GetList(ctx, "ana@example.com", models.FavoritesList)
	require.NoError(t, err)
}

func TestEnsureFavoritesIsIdempotent(t *testing.T) {
	svc, db := newListService(t)
	ctx := context.Background()

	require.NoError(t, svc.EnsureFavorites(ctx, "ana@example.com"))
	require.NoError(t, svc.EnsureFavorites(ctx, "ana@example.com"))

	var count int64
	require.NoError(t, db.Model(&models.List{}).
		Where("usuario_id = ? AND nombre = ?", "ana@example.com", models.FavoritesList).
		Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestRenameListMapsRepositoryErrors(t *testing.T) {
	svc, _ := newListService(t)
	ctx := context.Background()

	err := svc.RenameList(ctx, "ana@example.com", "NoExiste", "Nueva")
	assert.ErrorIs(t, err, ErrListNotFound)

	_, err = svc.CreateList(ctx, "ana@example.com", "Uno", "", false, nil)
	require.NoError(t, err)
	_, err = svc.CreateList(ctx, "ana@example.com", "Dos", "", false, nil)
	require.NoError(t, err)

	err = svc.RenameList(ctx, "ana@example.com", "Uno", "Dos")
	assert.ErrorIs(t, err, ErrListExists)
}

func TestAddItemChecksListAndBook(t *testing.T) {
	svc, _ := newListService(t)
	ctx := context.Background()

	err := svc.AddItem(ctx, "ana@example.com", "NoExiste", "https://books.example.com/a")
	assert.ErrorIs(t, err, ErrListNotFound)

	_, err = svc.CreateList(ctx, "ana@example.com", "Verano", "", false, nil)
	require.NoError(t, err)

	err = svc.AddItem(ctx, "ana@example.com", "Verano", "https://books.example.com/nada")
	assert.ErrorIs(t, err, ErrBookNotFound)

	require.NoError(t, svc.AddItem(ctx, "ana@example.com", "Verano", "https://books.example.com/a"))
	// second add is a silent no-op
	require.NoError(t, svc.AddItem(ctx, "ana@example.com", "Verano", "https://books.example.com/a"))

	books, err := svc.Items(ctx, "ana@example.com", "Verano")
	require.NoError(t, err)
	assert.Len(t, books, 1)
}

func TestRemoveItemMissingMembership(t *testing.T) {
	svc, _ := newListService(t)
	ctx := context.Background()

	_, err := svc.CreateList(ctx, "ana@example.com", "Verano", "", false, nil)
	require.NoError(t, err)

	err = svc.RemoveItem(ctx, "ana@example.com", "Verano", "https://books.example.com/a")
	assert.ErrorIs(t, err, ErrItemNotFound)
}

func TestUpdateListPartialFields(t *testing.T) {
	svc, _ := newListService(t)
	ctx := context.Background()

	_, err := svc.CreateList(ctx, "ana@example.com", "Verano", "inicial", false, nil)
	require.NoError(t, err)

	public := true
	require.NoError(t, svc.UpdateList(ctx, "ana@example.com", "Verano", nil, &public, nil))

	list, err := svc.GetList(ctx, "ana@example.com", "Verano")
	require.NoError(t, err)
	assert.True(t, list.Public)
	assert.Equal(t, "inicial", list.Description)
}
