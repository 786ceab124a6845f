package models

// User is keyed by email. Password is nil for externally-authenticated
// accounts (Google sign-in), so it must stay a pointer.
type User struct {
	Email    string  `gorm:"column:correo;primaryKey" json:"correo"`
	Name     string  `gorm:"column:nombre;not null" json:"nombre"`
	Password *string `gorm:"column:contrasena" json:"-"` // Not show in JSON
}

func (User) TableName() string {
	return "usuario"
}
