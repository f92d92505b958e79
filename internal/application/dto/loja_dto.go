package dto

// CreateLojaRequest dados para cadastrar uma loja.
type CreateLojaRequest struct {
	Nome     string `json:"nome"`
	Endereco string `json:"endereco"`
	Telefone string `json:"telefone"`
	Email    string `json:"email"`
	CNPJ     string `json:"cnpj"`
}

// UpdateLojaRequest dados para editar uma loja.
type UpdateLojaRequest struct {
	Nome     string `json:"nome"`
	Endereco string `json:"endereco"`
	Telefone string `json:"telefone"`
	Email    string `json:"email"`
	CNPJ     string `json:"cnpj"`
}

// LojaResponse representação de loja na API.
type LojaResponse struct {
	ID       string `json:"id"`
	Nome     string `json:"nome"`
	Endereco string `json:"endereco"`
	Telefone string `json:"telefone,omitempty"`
	Email    string `json:"email,omitempty"`
	CNPJ     string `json:"cnpj,omitempty"`
}
