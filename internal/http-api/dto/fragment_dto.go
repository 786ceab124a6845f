package dto

type FragmentRequest struct {
	Email    string `json:"correo" binding:"required,email"`
	BookLink string `json:"enlace" binding:"required,url"`
	Page     int    `json:"pagina" binding:"required,min=1"`
}

type FragmentQuery struct {
	Email    string `form:"correo" binding:"required,email"`
	BookLink string `form:"enlace" binding:"required,url"`
	Page     int    `form:"pagina"`
}

type HighlightedResponse struct {
	Highlighted bool `json:"esFavorita"`
}

type HighlightedPagesResponse struct {
	Pages []int `json:"favoritas"`
}
