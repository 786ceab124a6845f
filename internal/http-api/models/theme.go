package models

// Theme is static reference data; this service never mutates it.
type Theme struct {
	Name string `json:"tematica" gorm:"column:tematica;primaryKey"`
}

func (Theme) TableName() string {
	return "tema"
}

// explicit join model to match the existing schema (composite key, no payload)
type ThemeAssociation struct {
	BookLink string `json:"enlace" gorm:"column:enlace;primaryKey"`
	Theme    string `json:"tematica" gorm:"column:tematica;primaryKey"`
}

func (ThemeAssociation) TableName() string {
	return "tema_asociado"
}
