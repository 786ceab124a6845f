package models

import "time"

// CompletedReading records that a user finished a book. One row per
// (user, book): re-reading updates FinishedAt instead of adding history.
type CompletedReading struct {
	UserID     string    `gorm:"column:usuario_id;primaryKey" json:"usuario_id"`
	BookLink   string    `gorm:"column:libro_id;primaryKey" json:"libro_id"`
	FinishedAt time.Time `gorm:"column:fecha_fin_lectura" json:"fecha_fin_lectura"`
}

func (CompletedReading) TableName() string {
	return "leidos"
}
