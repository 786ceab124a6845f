package repository

import (
	"context"
	"fmt"

	"bookhub/internal/http-api/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type UserRepository interface {
	Create(ctx context.Context, user *models.User) (bool, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	Exists(ctx context.Context, email string) (bool, error)
	UpdateName(ctx context.Context, email, name string) (bool, error)
	UpdatePassword(ctx context.Context, email, passwordHash string) (bool, error)
}

type userRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

// Create inserts the user; returns false when the email is already taken.
// DO NOTHING on conflict keeps concurrent registrations from erroring out.
func (r *userRepository) Create(ctx context.Context, user *models.User) (bool, error) {
	result := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(user)
	if result.Error != nil {
		return false, fmt.Errorf("create user: %w", result.Error)
	}
	return result.RowsAffected > 0, nil
}

func (r *userRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	if err := r.db.WithContext(ctx).Where("correo = ?", email).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) Exists(ctx context.Context, email string) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.User{}).
		Where("correo = ?", email).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *userRepository) UpdateName(ctx context.Context, email, name string) (bool, error) {
	result := r.db.WithContext(ctx).
		Model(&models.User{}).
		Where("correo = ?", email).
		Update("nombre", name)
	if result.Error != nil {
		return false, fmt.Errorf("update user name: %w", result.Error)
	}
	return result.RowsAffected > 0, nil
}

func (r *userRepository) UpdatePassword(ctx context.Context, email, passwordHash string) (bool, error) {
	result := r.db.WithContext(ctx).
		Model(&models.User{}).
		Where("correo = ?", email).
		Update("contrasena", passwordHash)
	if result.Error != nil {
		return false, fmt.Errorf("update user password: %w", result.Error)
	}
	return result.RowsAffected > 0, nil
}
