package models

import "time"

// Book rows are owned by the catalog importer; this service reads them and
// only writes back the cached average rating. PageCount is authoritative for
// progress-range validation.
type Book struct {
	Link          string     `json:"enlace" gorm:"column:enlace;primaryKey"`
	Title         string     `json:"nombre" gorm:"column:nombre;not null"`
	Author        *string    `json:"autor,omitempty" gorm:"column:autor"`
	PublishedAt   *time.Time `json:"fecha_publicacion,omitempty" gorm:"column:fecha_publicacion"`
	Summary       *string    `json:"resumen,omitempty" gorm:"column:resumen"`
	CoverURL      *string    `json:"imagen_portada,omitempty" gorm:"column:imagen_portada"`
	PageCount     int        `json:"num_paginas" gorm:"column:num_paginas"`
	WordCount     int        `json:"num_palabras" gorm:"column:num_palabras"`
	ReadingHours  float64    `json:"horas_lectura" gorm:"column:horas_lectura"`
	ReadCounter   int64      `json:"contador_lecturas" gorm:"column:contador_lecturas"`
	AverageRating *float64   `json:"puntuacion_media,omitempty" gorm:"column:puntuacion_media;type:decimal(3,2)"`
}

func (Book) TableName() string {
	return "libro"
}
