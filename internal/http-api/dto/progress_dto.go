package dto

// DTOs for progress-related operations in HTTP API

type SaveProgressRequest struct {
	Email    string `json:"correo" binding:"required,email"`
	BookLink string `json:"libro_id" binding:"required,url"`
	Page     int    `json:"pagina" binding:"required"`
}

type ProgressPairRequest struct {
	Email    string `json:"correo" binding:"required,email"`
	BookLink string `json:"libro_id" binding:"required,url"`
}

type ProgressPairQuery struct {
	Email    string `form:"correo" binding:"required,email"`
	BookLink string `form:"libro_id" binding:"required,url"`
}

type PageResponse struct {
	Page int `json:"pagina"`
}

type StateResponse struct {
	State string `json:"estado"`
}
