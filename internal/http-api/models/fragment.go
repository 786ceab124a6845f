package models

// HighlightedFragment bookmarks a page of a book for a user, independent of
// progress or completion state.
type HighlightedFragment struct {
	BookLink string `json:"enlace" gorm:"column:enlace;primaryKey"`
	UserID   string `json:"correo" gorm:"column:correo;primaryKey"`
	Page     int    `json:"pagina" gorm:"column:pagina;primaryKey"`
}

func (HighlightedFragment) TableName() string {
	return "destacar_fragmento"
}
