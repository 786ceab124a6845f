package repository

import (
	"context"
	"errors"
	"fmt"

	"bookhub/internal/http-api/models"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// pgUniqueViolation is SQLSTATE 23505. Under postgres a duplicate insert that
// raced past the existence check surfaces as a PgError; callers map it to the
// same conflict result as the non-racy path.
const pgUniqueViolation = "23505"

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation
}

type ListRepository interface {
	Ensure(ctx context.Context, userID, name, description string) error
	Create(ctx context.Context, list *models.List) (bool, error)
	Get(ctx context.Context, userID, name string) (*models.List, error)
	ByUser(ctx context.Context, userID string) ([]models.List, error)
	Public(ctx context.Context) ([]models.List, error)
	Update(ctx context.Context, userID, name string, fields map[string]any) (bool, error)
	Rename(ctx context.Context, userID, oldName, newName string) error
	Delete(ctx context.Context, userID, name string) (bool, error)
	AddItem(ctx context.Context, userID, name, bookLink string) error
	RemoveItem(ctx context.Context, userID, name, bookLink string) (bool, error)
	Items(ctx context.Context, userID, name string) ([]models.Book, error)
}

type listRepository struct {
	db *gorm.DB
}

func NewListRepository(db *gorm.DB) ListRepository {
	return &listRepository{db: db}
}

// ensureList creates the list if missing, tolerating concurrent creators.
// Shared with the progress repository, which maintains the Read and
// "En proceso" buckets inside its own transactions.
func ensureList(tx *gorm.DB, userID, name, description string) error {
	list := &models.List{
		Name:        name,
		UserID:      userID,
		Description: description,
		Public:      false,
	}
	if err := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(list).Error; err != nil {
		if isUniqueViolation(err) {
			return nil
		}
		return fmt.Errorf("ensure list %q: %w", name, err)
	}
	return nil
}

// addListItem is an idempotent membership insert.
func addListItem(tx *gorm.DB, userID, name, bookLink string) error {
	item := &models.ListItem{UserID: userID, ListName: name, BookLink: bookLink}
	if err := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(item).Error; err != nil {
		if isUniqueViolation(err) {
			return nil
		}
		return fmt.Errorf("add list item: %w", err)
	}
	return nil
}

func (r *listRepository) Ensure(ctx context.Context, userID, name, description string) error {
	return ensureList(r.db.WithContext(ctx), userID, name, description)
}

// Create inserts the list; returns false when (user, name) already exists.
func (r *listRepository) Create(ctx context.Context, list *models.List) (bool, error) {
	result := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(list)
	if result.Error != nil {
		if isUniqueViolation(result.Error) {
			return false, nil
		}
		return false, fmt.Errorf("create list: %w", result.Error)
	}
	return result.RowsAffected > 0, nil
}

func (r *listRepository) Get(ctx context.Context, userID, name string) (*models.List, error) {
	var list models.List
	if err := r.db.WithContext(ctx).
		Where("usuario_id = ? AND nombre = ?", userID, name).
		First(&list).Error; err != nil {
		return nil, err
	}
	return &list, nil
}

func (r *listRepository) ByUser(ctx context.Context, userID string) ([]models.List, error) {
	var lists []models.List
	if err := r.db.WithContext(ctx).
		Where("usuario_id = ?", userID).
		Order("nombre ASC").
		Find(&lists).Error; err != nil {
		return nil, fmt.Errorf("lists by user: %w", err)
	}
	return lists, nil
}

func (r *listRepository) Public(ctx context.Context) ([]models.List, error) {
	var lists []models.List
	if err := r.db.WithContext(ctx).
		Where("publica = ?", true).
		Order("usuario_id ASC, nombre ASC").
		Find(&lists).Error; err != nil {
		return nil, fmt.Errorf("public lists: %w", err)
	}
	return lists, nil
}

func (r *listRepository) Update(ctx context.Context, userID, name string, fields map[string]any) (bool, error) {
	result := r.db.WithContext(ctx).
		Model(&models.List{}).
		Where("usuario_id = ? AND nombre = ?", userID, name).
		Updates(fields)
	if result.Error != nil {
		return false, fmt.Errorf("update list: %w", result.Error)
	}
	return result.RowsAffected > 0, nil
}

// Rename changes the list key in place and carries every membership row with
// it, so references that existed under the old name stay reachable under the
// new one. Both updates commit together or not at all.
func (r *listRepository) Rename(ctx context.Context, userID, oldName, newName string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var taken int64
		if err := tx.Model(&models.List{}).
			Where("usuario_id = ? AND nombre = ?", userID, newName).
			Count(&taken).Error; err != nil {
			return err
		}
		if taken > 0 {
			return gorm.ErrDuplicatedKey
		}

		result := tx.Model(&models.List{}).
			Where("usuario_id = ? AND nombre = ?", userID, oldName).
			Update("nombre", newName)
		if result.Error != nil {
			return fmt.Errorf("rename list: %w", result.Error)
		}
		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}

		if err := tx.Model(&models.ListItem{}).
			Where("usuario_id = ? AND nombre_lista = ?", userID, oldName).
			Update("nombre_lista", newName).Error; err != nil {
			return fmt.Errorf("rename list memberships: %w", err)
		}
		return nil
	})
}

// Delete removes the list and all its memberships.
func (r *listRepository) Delete(ctx context.Context, userID, name string) (bool, error) {
	var deleted bool
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("usuario_id = ? AND nombre_lista = ?", userID, name).
			Delete(&models.ListItem{}).Error; err != nil {
			return fmt.Errorf("delete list memberships: %w", err)
		}
		result := tx.Where("usuario_id = ? AND nombre = ?", userID, name).
			Delete(&models.List{})
		if result.Error != nil {
			return fmt.Errorf("delete list: %w", result.Error)
		}
		deleted = result.RowsAffected > 0
		return nil
	})
	return deleted, err
}

func (r *listRepository) AddItem(ctx context.Context, userID, name, bookLink string) error {
	return addListItem(r.db.WithContext(ctx), userID, name, bookLink)
}

func (r *listRepository) RemoveItem(ctx context.Context, userID, name, bookLink string) (bool, error) {
	result := r.db.WithContext(ctx).
		Where("usuario_id = ? AND nombre_lista = ? AND enlace_libro = ?", userID, name, bookLink).
		Delete(&models.ListItem{})
	if result.Error != nil {
		return false, fmt.Errorf("remove list item: %w", result.Error)
	}
	return result.RowsAffected > 0, nil
}

func (r *listRepository) Items(ctx context.Context, userID, name string) ([]models.Book, error) {
	var books []models.Book
	if err := r.db.WithContext(ctx).
		Table("libro").
		Select("libro.*").
		Joins("JOIN libros_lista ON libros_lista.enlace_libro = libro.enlace").
		Where("libros_lista.usuario_id = ? AND libros_lista.nombre_lista = ?", userID, name).
		Order("libro.nombre ASC").
		Find(&books).Error; err != nil {
		return nil, fmt.Errorf("list items: %w", err)
	}
	return books, nil
}
