package dto

// RegisterRequest: contrasena may be empty for externally-authenticated
// accounts (the stored credential stays null).
type RegisterRequest struct {
	Name     string `json:"nombre" binding:"required"`
	Email    string `json:"correo" binding:"required,email"`
	Password string `json:"contrasena"`
}

type ChangePasswordRequest struct {
	Email       string `json:"correo" binding:"required,email"`
	OldPassword string `json:"oldPassword" binding:"required"`
	NewPassword string `json:"newPassword" binding:"required"`
}

type ChangeNameRequest struct {
	Email string `json:"correo" binding:"required,email"`
	Name  string `json:"nombre" binding:"required"`
}
