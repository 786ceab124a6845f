package repository

import (
	"context"
	"fmt"
	"time"

	"bookhub/internal/http-api/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ProgressRepository interface {
	Get(ctx context.Context, userID, bookLink string) (*models.ReadingProgress, error)
	Upsert(ctx context.Context, progress *models.ReadingProgress) error
	Delete(ctx context.Context, userID, bookLink string) (bool, error)
	Complete(ctx context.Context, userID, bookLink string, finishedAt time.Time) error
	HasCompleted(ctx context.Context, userID, bookLink string) (bool, error)
	RegisterInProgress(ctx context.Context, userID, bookLink string) error
}

type progressRepository struct {
	db *gorm.DB
}

func NewProgressRepository(db *gorm.DB) ProgressRepository {
	return &progressRepository{db: db}
}

func (r *progressRepository) Get(ctx context.Context, userID, bookLink string) (*models.ReadingProgress, error) {
	var progress models.ReadingProgress
	if err := r.db.WithContext(ctx).
		Where("usuario_id = ? AND libro_id = ?", userID, bookLink).
		First(&progress).Error; err != nil {
		return nil, err
	}
	return &progress, nil
}

// Upsert writes the current page with last-writer-wins semantics. Two
// concurrent saves for the same pair converge to one row, never two.
func (r *progressRepository) Upsert(ctx context.Context, progress *models.ReadingProgress) error {
	if err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "usuario_id"}, {Name: "libro_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"pagina"}),
		}).
		Create(progress).Error; err != nil {
		return fmt.Errorf("upsert reading progress: %w", err)
	}
	return nil
}

func (r *progressRepository) Delete(ctx context.Context, userID, bookLink string) (bool, error) {
	result := r.db.WithContext(ctx).
		Where("usuario_id = ? AND libro_id = ?", userID, bookLink).
		Delete(&models.ReadingProgress{})
	if result.Error != nil {
		return false, fmt.Errorf("delete reading progress: %w", result.Error)
	}
	return result.RowsAffected > 0, nil
}

// Complete commits the three completion effects in one transaction: the
// leidos upsert, the en_proceso delete and the Read-list membership. An
// interrupted sequence must never leave a book both in progress and
// completed, or completed but missing from the Read list.
func (r *progressRepository) Complete(ctx context.Context, userID, bookLink string, finishedAt time.Time) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		completed := &models.CompletedReading{
			UserID:     userID,
			BookLink:   bookLink,
			FinishedAt: finishedAt,
		}
		if err := tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "usuario_id"}, {Name: "libro_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"fecha_fin_lectura"}),
		}).Create(completed).Error; err != nil {
			return fmt.Errorf("upsert completed reading: %w", err)
		}

		if err := tx.Where("usuario_id = ? AND libro_id = ?", userID, bookLink).
			Delete(&models.ReadingProgress{}).Error; err != nil {
			return fmt.Errorf("clear reading progress: %w", err)
		}

		if err := ensureList(tx, userID, models.ReadList, "Libros que ya has terminado"); err != nil {
			return err
		}
		return addListItem(tx, userID, models.ReadList, bookLink)
	})
}

func (r *progressRepository) HasCompleted(ctx context.Context, userID, bookLink string) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.CompletedReading{}).
		Where("usuario_id = ? AND libro_id = ?", userID, bookLink).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// RegisterInProgress puts the book in the user's "En proceso" list bucket so
// it shows up as discoverable before any page has been saved.
func (r *progressRepository) RegisterInProgress(ctx context.Context, userID, bookLink string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := ensureList(tx, userID, models.InProgressList, "Libros que estás leyendo"); err != nil {
			return err
		}
		return addListItem(tx, userID, models.InProgressList, bookLink)
	})
}
