package service

import (
	"context"
	"errors"

	"bookhub/internal/http-api/models"
	"bookhub/internal/http-api/repository"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type UserService interface {
	Register(ctx context.Context, name, email, password string) (*models.User, error)
	Get(ctx context.Context, email string) (*models.User, error)
	IsExternal(ctx context.Context, email string) (bool, error)
	ChangeName(ctx context.Context, email, name string) error
	ChangePassword(ctx context.Context, email, oldPassword, newPassword string) error
}

type userService struct {
	repo     repository.UserRepository
	listRepo repository.ListRepository
}

func NewUserService(repo repository.UserRepository, listRepo repository.ListRepository) UserService {
	return &userService{
		repo:     repo,
		listRepo: listRepo,
	}
}

// Register creates the account and its Favorites list. An empty password
// marks an externally-authenticated account (nil credential). Favorites
// creation is idempotent, so a crash between the two writes heals on the
// next ensure call.
func (s *userService) Register(ctx context.Context, name, email, password string) (*models.User, error) {
	user := &models.User{
		Email: email,
		Name:  name,
	}
	if password != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		hashed := string(hash)
		user.Password = &hashed
	}

	created, err := s.repo.Create(ctx, user)
	if err != nil {
		return nil, err
	}
	if !created {
		return nil, ErrUserExists
	}

	if err := s.listRepo.Ensure(ctx, email, models.FavoritesList, favoritesDescription); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *userService) Get(ctx context.Context, email string) (*models.User, error) {
	user, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return user, nil
}

// IsExternal reports whether the account was created through an external
// identity provider (no password credential stored).
func (s *userService) IsExternal(ctx context.Context, email string) (bool, error) {
	user, err := s.Get(ctx, email)
	if err != nil {
		return false, err
	}
	return user.Password == nil, nil
}

func (s *userService) ChangeName(ctx context.Context, email, name string) error {
	updated, err := s.repo.UpdateName(ctx, email, name)
	if err != nil {
		return err
	}
	if !updated {
		return ErrUserNotFound
	}
	return nil
}

func (s *userService) ChangePassword(ctx context.Context, email, oldPassword, newPassword string) error {
	user, err := s.Get(ctx, email)
	if err != nil {
		return err
	}
	if user.Password == nil {
		return ErrExternalUser
	}
	if err := bcrypt.CompareHashAndPassword([]byte(*user.Password), []byte(oldPassword)); err != nil {
		return ErrWrongPassword
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	updated, err := s.repo.UpdatePassword(ctx, email, string(hash))
	if err != nil {
		return err
	}
	if !updated {
		return ErrUserNotFound
	}
	return nil
}
