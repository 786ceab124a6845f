package models

// ReadingProgress represents the current page of a book a user has not yet
// finished. At most one row per (user, book); the row is deleted when the
// book is completed or abandoned.
type ReadingProgress struct {
	UserID   string `gorm:"column:usuario_id;primaryKey" json:"usuario_id"`
	BookLink string `gorm:"column:libro_id;primaryKey" json:"libro_id"`
	Page     int    `gorm:"column:pagina;not null" json:"pagina"`
}

func (ReadingProgress) TableName() string {
	return "en_proceso"
}
