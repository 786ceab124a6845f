package dto

// CreateListRequest: payload to create a new user list
type CreateListRequest struct {
	Email       string  `json:"usuario_id" binding:"required,email"`
	Name        string  `json:"nombre" binding:"required"`
	Description string  `json:"descripcion"`
	Public      bool    `json:"publica"`
	Cover       *string `json:"portada"`
}

type UpdateListRequest struct {
	Description *string `json:"descripcion"`
	Public      *bool   `json:"publica"`
	Cover       *string `json:"portada"`
}

type RenameListRequest struct {
	Email   string `json:"usuario_id" binding:"required,email"`
	OldName string `json:"nombre" binding:"required"`
	NewName string `json:"nuevo_nombre" binding:"required"`
}

type ListItemRequest struct {
	Email    string `json:"usuario_id" binding:"required,email"`
	Name     string `json:"nombre_lista" binding:"required"`
	BookLink string `json:"enlace_libro" binding:"required,url"`
}
