package dto

// CreateFornecedorRequest dados para cadastrar um fornecedor.
type CreateFornecedorRequest struct {
	Nome     string `json:"nome"`
	CNPJ     string `json:"cnpj"`
	Telefone string `json:"telefone"`
	Email    string `json:"email"`
}

// FornecedorResponse representação de fornecedor na API.
type FornecedorResponse struct {
	ID       string `json:"id"`
	Nome     string `json:"nome"`
	CNPJ     string `json:"cnpj,omitempty"`
	Telefone string `json:"telefone,omitempty"`
	Email    string `json:"email,omitempty"`
}
