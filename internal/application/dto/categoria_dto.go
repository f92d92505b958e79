package dto

// CreateCategoriaRequest dados para cadastrar uma categoria.
type CreateCategoriaRequest struct {
	Nome string `json:"nome"`
}

// CategoriaResponse representação de categoria na API.
type CategoriaResponse struct {
	ID   string `json:"id"`
	Nome string `json:"nome"`
}
