package service

import (
	"context"
	"errors"

	"bookhub/internal/http-api/models"
	"bookhub/internal/http-api/repository"

	"gorm.io/gorm"
)

const favoritesDescription = "Tu lista personal de favoritos"

type ListService interface {
	EnsureFavorites(ctx context.Context, userID string) error
	CreateList(ctx context.Context, userID, name, description string, public bool, cover *string) (*models.List, error)
	GetList(ctx context.Context, userID, name string) (*models.List, error)
	ListsOf(ctx context.Context, userID string) ([]models.List, error)
	PublicLists(ctx context.Context) ([]models.List, error)
	UpdateList(ctx context.Context, userID, name string, description *string, public *bool, cover *string) error
	RenameList(ctx context.Context, userID, oldName, newName string) error
	DeleteList(ctx context.Context, userID, name string) error
	AddItem(ctx context.Context, userID, name, bookLink string) error
	RemoveItem(ctx context.Context, userID, name, bookLink string) error
	Items(ctx context.Context, userID, name string) ([]models.Book, error)
}

type listService struct {
	repo     repository.ListRepository
	userRepo repository.UserRepository
	bookRepo *repository.BookRepo
}

func NewListService(repo repository.ListRepository, userRepo repository.UserRepository, bookRepo *repository.BookRepo) ListService {
	return &listService{
		repo:     repo,
		userRepo: userRepo,
		bookRepo: bookRepo,
	}
}

// EnsureFavorites creates the "Mis Favoritos" list if missing. Called at
// registration and safe to call again at any point.
func (s *listService) EnsureFavorites(ctx context.Context, userID string) error {
	if err := s.requireUser(ctx, userID); err != nil {
		return err
	}
	return s.repo.Ensure(ctx, userID, models.FavoritesList, favoritesDescription)
}

func (s *listService) CreateList(ctx context.Context, userID, name, description string, public bool, cover *string) (*models.List, error) {
	if err := s.requireUser(ctx, userID); err != nil {
		return nil, err
	}

	list := &models.List{
		Name:        name,
		UserID:      userID,
		Description: description,
		Public:      public,
		Cover:       cover,
	}
	created, err := s.repo.Create(ctx, list)
	if err != nil {
		return nil, err
	}
	if !created {
		return nil, ErrListExists
	}
	return list, nil
}

func (s *listService) GetList(ctx context.Context, userID, name string) (*models.List, error) {
	list, err := s.repo.Get(ctx, userID, name)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrListNotFound
		}
		return nil, err
	}
	return list, nil
}

func (s *listService) ListsOf(ctx context.Context, userID string) ([]models.List, error) {
	if err := s.requireUser(ctx, userID); err != nil {
		return nil, err
	}
	return s.repo.ByUser(ctx, userID)
}

func (s *listService) PublicLists(ctx context.Context) ([]models.List, error) {
	return s.repo.Public(ctx)
}

func (s *listService) UpdateList(ctx context.Context, userID, name string, description *string, public *bool, cover *string) error {
	fields := map[string]any{}
	if description != nil {
		fields["descripcion"] = *description
	}
	if public != nil {
		fields["publica"] = *public
	}
	if cover != nil {
		fields["portada"] = *cover
	}
	if len(fields) == 0 {
		return nil
	}

	updated, err := s.repo.Update(ctx, userID, name, fields)
	if err != nil {
		return err
	}
	if !updated {
		return ErrListNotFound
	}
	return nil
}

// RenameList carries all memberships over to the new name. Renaming the
// Favorites list is rejected: every user must always own a list by that name.
func (s *listService) RenameList(ctx context.Context, userID, oldName, newName string) error {
	if oldName == models.FavoritesList {
		return ErrFavoritesProtected
	}
	err := s.repo.Rename(ctx, userID, oldName, newName)
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return ErrListNotFound
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return ErrListExists
	default:
		return err
	}
}

func (s *listService) DeleteList(ctx context.Context, userID, name string) error {
	if name == models.FavoritesList {
		return ErrFavoritesProtected
	}
	deleted, err := s.repo.Delete(ctx, userID, name)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrListNotFound
	}
	return nil
}

// AddItem is idempotent; adding a book that is already a member succeeds.
func (s *listService) AddItem(ctx context.Context, userID, name, bookLink string) error {
	if err := s.requireList(ctx, userID, name); err != nil {
		return err
	}
	exists, err := s.bookRepo.Exists(ctx, bookLink)
	if err != nil {
		return err
	}
	if !exists {
		return ErrBookNotFound
	}
	return s.repo.AddItem(ctx, userID, name, bookLink)
}

func (s *listService) RemoveItem(ctx context.Context, userID, name, bookLink string) error {
	if err := s.requireList(ctx, userID, name); err != nil {
		return err
	}
	removed, err := s.repo.RemoveItem(ctx, userID, name, bookLink)
	if err != nil {
		return err
	}
	if !removed {
		return ErrItemNotFound
	}
	return nil
}

func (s *listService) Items(ctx context.Context, userID, name string) ([]models.Book, error) {
	if err := s.requireList(ctx, userID, name); err != nil {
		return nil, err
	}
	return s.repo.Items(ctx, userID, name)
}

func (s *listService) requireUser(ctx context.Context, userID string) error {
	exists, err := s.userRepo.Exists(ctx, userID)
	if err != nil {
		return err
	}
	if !exists {
		return ErrUserNotFound
	}
	return nil
}

func (s *listService) requireList(ctx context.Context, userID, name string) error {
	if _, err := s.repo.Get(ctx, userID, name); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrListNotFound
		}
		return err
	}
	return nil
}
