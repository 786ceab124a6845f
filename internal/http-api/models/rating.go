package models

import "time"

// Rating is keyed by (user, book, submission time): a user may re-review a
// book later, each review keeps its own row.
type Rating struct {
	UserID      string    `json:"usuario_id" gorm:"column:usuario_id;primaryKey"`
	BookLink    string    `json:"libro_id" gorm:"column:libro_id;primaryKey"`
	SubmittedAt time.Time `json:"fecha" gorm:"column:fecha;primaryKey"`
	Title       string    `json:"titulo_resena" gorm:"column:titulo_resena"`
	Body        string    `json:"mensaje" gorm:"column:mensaje"`
	Score       int       `json:"valor" gorm:"column:valor;not null;check:valor >= 1 AND valor <= 5"`
}

func (Rating) TableName() string {
	return "opinion"
}
